// Package mount turns vtree nodes into live platform nodes through a
// backend, and keeps them converged as new trees arrive.
//
// The lifecycle is Mount, any number of Patch calls, then Unmount.
// Mount returns a State that mirrors the tree shape and owns the
// platform handles plus any live-source subscriptions; Patch diffs a
// State against a fresh tree and applies the narrowest set of backend
// mutations that reconciles them; Unmount cancels the subscriptions and
// detaches the nodes.
//
// Keyed siblings reconcile by identity: survivors are patched in place
// and reordered with the fewest possible insertions, new keys mount,
// missing keys unmount. Unkeyed siblings pair up by position.
//
// Hydrate adopts platform nodes that already exist, as produced by a
// markup encoder on a previous run, instead of creating fresh ones.
// When the existing structure does not line up, HydrateOrMount falls
// back to a clean remount.
package mount
