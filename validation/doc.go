// Package validation provides input validation for securekit applications.
//
// It offers three layers:
//   - standalone predicates for ad-hoc checks (IsBlank, IsValidEmail,
//     IsValidPhoneNumber)
//   - a fluent Validator that collects field errors for request-shaped input
//   - struct-tag validation backed by go-playground/validator
//
// The predicates are deliberately pragmatic format checks, not full RFC
// grammars: they reject the common malformed shapes and accept the rest.
package validation
