package errors

// ErrorCode is a machine-readable error code.
type ErrorCode string

// Platform errors
const (
	// ErrCodeRandomSourceUnavailable indicates the secure random source could
	// not be read. Fatal to the calling operation: the caller must abort
	// rather than continue with a predictable value.
	ErrCodeRandomSourceUnavailable ErrorCode = "RANDOM_SOURCE_UNAVAILABLE"
	// ErrCodeUnsupportedAlgorithm indicates the requested digest algorithm is
	// not available. Recoverable: the caller decides fallback or abort.
	ErrCodeUnsupportedAlgorithm ErrorCode = "UNSUPPORTED_ALGORITHM"
	// ErrCodeEncodingFailure indicates input text could not be encoded to the
	// expected byte representation.
	ErrCodeEncodingFailure ErrorCode = "ENCODING_FAILURE"
)

// Input errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeInvalidFormat indicates a field has an invalid format.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	// ErrCodeWeakPassword indicates a password does not meet policy.
	ErrCodeWeakPassword ErrorCode = "WEAK_PASSWORD"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// IsRetryableCode returns true if the error code indicates a transient
// condition worth retrying. Every securekit failure is deterministic (platform
// capability or input shape), so nothing in the kit taxonomy retries.
func IsRetryableCode(ErrorCode) bool { return false }
