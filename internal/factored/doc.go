// Package factored provides an arbitrary-precision integer represented as
// a product of (base, exponent) pairs, where an exponent is itself a
// factored integer. Exponent towers can therefore exceed any native range.
//
// Values materialize through chunked exponentiation (FullRangePow): direct
// exponentiation is never called with an exponent above the chunk ceiling.
//
// Equality and digests are defined on the materialized value, never on the
// factor-list shape: two factorizations of the same integer compare equal.
package factored
