// Package errors provides structured error handling for securekit.
// It implements a single error type with machine-readable codes, HTTP status
// hints for web-facing consumers, and explicit cause chains.
//
// Every failure in the kit surfaces as an *AppError; nothing is logged and
// swallowed. All kit error codes are non-retryable: they signal deterministic
// platform or input conditions, not transient faults.
package errors
