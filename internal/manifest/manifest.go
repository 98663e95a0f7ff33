// Package manifest loads and compiles CUE universe manifests: declarative
// files naming the values a demo session wants evaluated.
//
// A manifest looks like:
//
//	values: twelve: {kind: "factored", factors: [{base: 2, exp: 2}, {base: 3, exp: 1}]}
//	values: half:   {kind: "rational", num: 1, den: 2}
//	values: answer: {kind: "integer", value: 42}
package manifest

import (
	"fmt"

	"cuelang.org/go/cue"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
)

// ValueKind names the declarable kinds.
type ValueKind string

const (
	KindInteger  ValueKind = "integer"
	KindNatural  ValueKind = "natural"
	KindReal     ValueKind = "real"
	KindRational ValueKind = "rational"
	KindFactored ValueKind = "factored"
)

// ValueSpec is one compiled manifest entry.
type ValueSpec struct {
	Name string    `json:"name"`
	Kind ValueKind `json:"kind"`

	// Int carries the value for integer/natural kinds.
	Int int64 `json:"value,omitempty"`

	// Num/Den carry the pair for the rational kind.
	Num float64 `json:"num,omitempty"`
	Den float64 `json:"den,omitempty"`

	// Real carries the value for the real kind.
	Real float64 `json:"real,omitempty"`

	// Factors carries the product for the factored kind.
	Factors []FactorSpec `json:"factors,omitempty"`
}

// FactorSpec is one (base, exponent) pair. Exp and Tower are mutually
// exclusive: a plain exponent or a nested factor product.
type FactorSpec struct {
	Base  int64        `json:"base"`
	Exp   int64        `json:"exp,omitempty"`
	Tower []FactorSpec `json:"tower,omitempty"`
}

// CompileError is a manifest compilation error with CUE position info.
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return err
	}
	first := errs[0]
	return &CompileError{
		Field:   "cue",
		Message: first.Error(),
		Pos:     first.Position(),
	}
}

// CompileValue parses one manifest entry into a ValueSpec.
func CompileValue(name string, v cue.Value) (*ValueSpec, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	spec := &ValueSpec{Name: name}

	kindVal := v.LookupPath(cue.ParsePath("kind"))
	if !kindVal.Exists() {
		return nil, &CompileError{Field: "kind", Message: "kind is required", Pos: v.Pos()}
	}
	kind, err := kindVal.String()
	if err != nil {
		return nil, formatCUEError(err)
	}
	spec.Kind = ValueKind(kind)

	switch spec.Kind {
	case KindInteger, KindNatural:
		iv := v.LookupPath(cue.ParsePath("value"))
		if !iv.Exists() {
			return nil, &CompileError{Field: "value", Message: "value is required", Pos: v.Pos()}
		}
		spec.Int, err = iv.Int64()
		if err != nil {
			return nil, formatCUEError(err)
		}
		if spec.Kind == KindNatural && spec.Int < 0 {
			return nil, &CompileError{Field: "value", Message: "natural value must be non-negative", Pos: iv.Pos()}
		}

	case KindReal:
		rv := v.LookupPath(cue.ParsePath("value"))
		if !rv.Exists() {
			return nil, &CompileError{Field: "value", Message: "value is required", Pos: v.Pos()}
		}
		spec.Real, err = rv.Float64()
		if err != nil {
			return nil, formatCUEError(err)
		}

	case KindRational:
		spec.Num, err = requireFloat(v, "num")
		if err != nil {
			return nil, err
		}
		spec.Den, err = requireFloat(v, "den")
		if err != nil {
			return nil, err
		}
		if spec.Den == 0 {
			return nil, &CompileError{Field: "den", Message: "denominator must not be zero", Pos: v.Pos()}
		}

	case KindFactored:
		fv := v.LookupPath(cue.ParsePath("factors"))
		if !fv.Exists() {
			return nil, &CompileError{Field: "factors", Message: "factors is required", Pos: v.Pos()}
		}
		spec.Factors, err = parseFactors(fv)
		if err != nil {
			return nil, err
		}

	default:
		return nil, &CompileError{
			Field:   "kind",
			Message: fmt.Sprintf("unknown kind %q", kind),
			Pos:     kindVal.Pos(),
		}
	}

	return spec, nil
}

func requireFloat(v cue.Value, field string) (float64, error) {
	fv := v.LookupPath(cue.ParsePath(field))
	if !fv.Exists() {
		return 0, &CompileError{Field: field, Message: field + " is required", Pos: v.Pos()}
	}
	f, err := fv.Float64()
	if err != nil {
		return 0, formatCUEError(err)
	}
	return f, nil
}

func parseFactors(v cue.Value) ([]FactorSpec, error) {
	iter, err := v.List()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var out []FactorSpec
	for iter.Next() {
		fv := iter.Value()
		var f FactorSpec

		bv := fv.LookupPath(cue.ParsePath("base"))
		if !bv.Exists() {
			return nil, &CompileError{Field: "base", Message: "base is required", Pos: fv.Pos()}
		}
		f.Base, err = bv.Int64()
		if err != nil {
			return nil, formatCUEError(err)
		}
		if f.Base < 0 {
			return nil, &CompileError{Field: "base", Message: "base must be non-negative", Pos: bv.Pos()}
		}

		tv := fv.LookupPath(cue.ParsePath("tower"))
		if tv.Exists() {
			f.Tower, err = parseFactors(tv)
			if err != nil {
				return nil, err
			}
		} else {
			ev := fv.LookupPath(cue.ParsePath("exp"))
			if !ev.Exists() {
				f.Exp = 1
			} else {
				f.Exp, err = ev.Int64()
				if err != nil {
					return nil, formatCUEError(err)
				}
				if f.Exp < 0 {
					return nil, &CompileError{Field: "exp", Message: "exponent must be non-negative", Pos: ev.Pos()}
				}
			}
		}

		out = append(out, f)
	}
	return out, nil
}
