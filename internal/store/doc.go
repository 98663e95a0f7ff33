// Package store provides SQLite-backed caching of materialized factored
// integers.
//
// Chunked exponentiation is the one extended computation in the system, so
// results are cached by the content-addressed digest of the materialized
// value. The cache is append-only and idempotent: writing the same digest
// twice is a no-op.
//
// Patterns carried by the schema:
//   - digest PRIMARY KEY: one row per distinct integer, regardless of the
//     factor shape that produced it
//   - seq INTEGER logical clock, never wall-clock timestamps, so reads
//     order deterministically
//   - all queries ORDER BY seq ASC, digest ASC for replay-stable results
package store
