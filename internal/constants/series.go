package constants

// Convergent series for the irrational constants. Iteration counts are
// fixed so the approximations are deterministic across runs.
const (
	piTerms = 32
	eTerms  = 20
)

// seriesPi approximates pi with Machin's formula,
// pi = 16*atan(1/5) - 4*atan(1/239), each arctangent by its Taylor
// series. 32 terms take atan(1/5) far past float64 precision.
func seriesPi(terms int) float64 {
	return 16*atanSeries(1.0/5, terms) - 4*atanSeries(1.0/239, terms)
}

// atanSeries sums the Taylor series atan(x) = x - x^3/3 + x^5/5 - ...
func atanSeries(x float64, terms int) float64 {
	sum := 0.0
	power := x
	sign := 1.0
	for k := 0; k < terms; k++ {
		sum += sign * power / float64(2*k+1)
		power *= x * x
		sign = -sign
	}
	return sum
}

// seriesE sums the reciprocal-factorial series e = sum 1/k!.
func seriesE(terms int) float64 {
	sum := 1.0
	term := 1.0
	for k := 1; k < terms; k++ {
		term /= float64(k)
		sum += term
	}
	return sum
}
