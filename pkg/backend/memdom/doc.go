// Package memdom provides an in-memory backend.Backend implementation.
//
// It serves two roles: the test double for verifying the engine's
// minimal-operation properties (every primitive call is counted), and a
// stand-in "server-rendered" document for hydration tests - mount a tree
// into one DOM, then hydrate the same tree against the result.
package memdom
