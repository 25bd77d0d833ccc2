// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package results

import "github.com/playbymail/vb6parse/internal/diagnostics"

// ParseResult pairs an optional result with accumulated diagnostics.
// Constructing with a nil value is legal; consumers check HasResult
// and HasFailures independently.
type ParseResult[T any] struct {
	result   *T
	failures []diagnostics.Diagnostic
}

// New returns a result holding value and failures. Value may be nil.
func New[T any](value *T, failures []diagnostics.Diagnostic) ParseResult[T] {
	return ParseResult[T]{result: value, failures: failures}
}

// Ok returns a result holding value and no failures.
func Ok[T any](value *T) ParseResult[T] {
	return ParseResult[T]{result: value}
}

// Fail returns a result holding no value and the given failures.
func Fail[T any](failures ...diagnostics.Diagnostic) ParseResult[T] {
	return ParseResult[T]{failures: failures}
}

// HasResult returns true if a value is present.
func (r ParseResult[T]) HasResult() bool {
	return r.result != nil
}

// HasFailures returns true if any diagnostics were collected.
func (r ParseResult[T]) HasFailures() bool {
	return len(r.failures) > 0
}

// Result returns the value, or nil if none was produced.
func (r ParseResult[T]) Result() *T {
	return r.result
}

// Failures returns the collected diagnostics in production order.
func (r ParseResult[T]) Failures() []diagnostics.Diagnostic {
	return r.failures
}

// Unpack returns the value and the diagnostics.
func (r ParseResult[T]) Unpack() (*T, []diagnostics.Diagnostic) {
	return r.result, r.failures
}

// Extend appends failures collected by an upstream stage.
func (r *ParseResult[T]) Extend(failures []diagnostics.Diagnostic) {
	r.failures = append(r.failures, failures...)
}
