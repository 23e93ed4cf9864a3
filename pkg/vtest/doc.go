// Package vtest provides test helpers for tree-rendering code: a
// harness that mounts trees into an in-memory document with assertions
// on markup and operation counts, and standalone assertions over
// encoded markup.
package vtest
