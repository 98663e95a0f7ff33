// Package harness executes the algebraic law suites of the universe and
// produces deterministic reports.
//
// A suite is a YAML file naming the laws to check. Each law exercises one
// invariant end to end (structural negation, the zero/infinity duality,
// absorption, rotation closure, chunked exponentiation) and reports a
// pass/fail with stable details. Reports serialize deterministically so
// golden files can serve as the source of truth for expected behavior.
package harness
