package harness

import (
	"github.com/google/uuid"
)

// LawID names one checkable algebraic law.
type LawID string

const (
	// LawDoubleNegation checks -(-b) == b and that -b is a Void with the
	// identical member set.
	LawDoubleNegation LawID = "double-negation"

	// LawDualityRoundTrip checks Zero -> Infinite -> Zero preserves
	// polarity while each leg inverts it.
	LawDualityRoundTrip LawID = "duality-round-trip"

	// LawZeroVoidRoundTrip checks Zero -> Void -> Zero preserves the
	// member set.
	LawZeroVoidRoundTrip LawID = "zero-void-round-trip"

	// LawAbsorption checks Infinite ⊕ x == Infinite for +, -, ×, with
	// polarity preserved.
	LawAbsorption LawID = "absorption"

	// LawRotationClosure checks I4 == I0 and I2 == -I0.
	LawRotationClosure LawID = "rotation-closure"

	// LawChunkedPow checks chunked exponentiation one above the direct
	// ceiling against an arbitrary-precision reference.
	LawChunkedPow LawID = "chunked-pow"
)

// AllLaws lists every law in canonical order.
var AllLaws = []LawID{
	LawDoubleNegation,
	LawDualityRoundTrip,
	LawZeroVoidRoundTrip,
	LawAbsorption,
	LawRotationClosure,
	LawChunkedPow,
}

// Suite is a named selection of laws, usually loaded from YAML.
type Suite struct {
	Name string  `yaml:"name" json:"name"`
	Laws []LawID `yaml:"laws" json:"laws"`
}

// Result is the outcome of one law check.
type Result struct {
	Law     LawID             `json:"law"`
	Passed  bool              `json:"passed"`
	Details map[string]string `json:"details,omitempty"`
}

// Report is the outcome of a suite run. RunToken correlates a run across
// logs; it is excluded from serialized reports so golden comparison stays
// deterministic.
type Report struct {
	Suite    string   `json:"suite"`
	RunToken string   `json:"-"`
	Results  []Result `json:"results"`
}

// Passed reports whether every law in the run passed.
func (r *Report) Passed() bool {
	for _, res := range r.Results {
		if !res.Passed {
			return false
		}
	}
	return true
}

// NewRunToken returns a fresh correlation token for a suite run.
func NewRunToken() string {
	return "run-" + uuid.NewString()
}
