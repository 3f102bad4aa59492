// Package backend provides the persistence backends for the roster.
//
// A backend stores exactly one opaque document: the serialized roster.
// The store reads it once at startup and rewrites it in full after every
// mutation, so backends only need whole-document Read and Write.
//
// # Implementations
//
//   - File: a JSON file on disk. Writes go to a sibling temp file that is
//     renamed over the target, so a crash mid-write leaves the previous
//     document intact.
//   - SQLite: the document is kept as a single row of a documents table.
//     WAL mode, NORMAL synchronous, 5s busy timeout, one connection.
//
// Read returns ErrNotExist when nothing has been written yet. Callers treat
// that as an empty roster, not a failure.
package backend
