// Package errors provides structured errors with stable codes.
//
// Each error carries a code (A001...), a category, and optionally a
// detail and fix suggestion. Codes are registered centrally in
// registry.go so messages stay consistent across the codebase.
package errors
