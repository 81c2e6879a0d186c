// Package errors provides structured error types for the host-bridge library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type carries the offending dynamic value so callers
// can render a precise diagnostic; level-set mismatches additionally carry
// both the found and the expected label sets.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseConvert, errors.KindExpectedScalar).
//		Value(v).
//		Detail("length %d, want 1", n).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.ExpectedScalar(errors.PhaseConvert, v)
//	err := errors.InvalidLevels(found, expected)
//
// All errors implement the standard error interface and support errors.Is/As.
// Two errors match under errors.Is when their Phase and Kind agree.
//
// Propagation is purely local: conversion functions return a result; nothing
// is swallowed or logged inside the library, and a failed conversion never
// leaves host value memory in an inconsistent state.
package errors
