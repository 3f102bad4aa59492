// Package store holds the employee roster and keeps it in step with a
// persistence backend.
//
// The roster is an ordered slice of records. Insertion order is the only
// ordering guarantee; lookups are linear scans where the first match wins.
//
// # Lifecycle
//
//	Uninitialized --Load--> Ready
//
// Load runs once at startup. A missing backend document yields an empty
// roster. An unreadable or malformed document also yields an empty roster,
// but the error is returned so the caller can report it. Every CRUD
// operation requires Ready.
//
// # Persistence
//
// After every successful mutation the full roster is serialized and handed
// to the backend. If that write fails, the in-memory change is rolled back
// and a PERSIST_FAILED error is returned, so memory never runs ahead of
// what is stored.
//
// # Duplicate ids
//
// By default ids are not checked on Add: duplicates coexist and Find,
// Update and Delete act on the first match in roster order. WithUniqueIDs
// rejects a colliding Add with DUPLICATE_ID instead.
//
// The Store is not safe for concurrent use. It has exactly one caller, the
// command being executed.
package store
