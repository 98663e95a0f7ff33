// Package existence provides the structural foundation of the aleph
// universe: immutable entities defined solely by a finite, unordered,
// deduplicated set of sub-entities.
//
// This package contains the base variants only. All other internal packages
// import existence; existence imports nothing internal. This keeps it the
// foundational layer with no circular dependencies.
//
// Key design constraints:
//   - Two entities are equal iff their member sets are equal, recursively.
//   - Equality and hashing derive from a content-addressed digest; member
//     digests are combined order-independently.
//   - A member set never contains a nil entity.
//   - Every value is immutable after construction.
package existence
