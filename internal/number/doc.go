// Package number defines the closed set of number kinds of the aleph
// universe and the explicit operations over them.
//
// The hierarchy is flat by construction: a sealed Number interface with one
// concrete variant per kind, dispatched by type switch rather than
// inheritance. Linear kinds (Zero, Infinite, Integer, Natural, Real,
// Rational, Irrational) are ordered, signed and zero-testable; structural
// kinds (Complex, NaturalComplex) are unordered-axis pairs.
//
// Arithmetic is exposed as named package functions (Add, Sub, Mul, Neg)
// with absorption by Infinite and saturation at coercion boundaries as
// explicit case arms. There are no implicit conversions; see the convert
// package for the named cross-kind maps.
package number
