package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Source errors
const (
	// ErrCodeSourceRead indicates a file could not be read or decoded.
	ErrCodeSourceRead ErrorCode = "SOURCE_READ_FAILED"
	// ErrCodeDecodeShape indicates a decoder produced a value that is not a record.
	ErrCodeDecodeShape ErrorCode = "DECODE_SHAPE"
)

// Validation errors
const (
	// ErrCodeValidation indicates the merged input does not satisfy the schema.
	ErrCodeValidation ErrorCode = "VALIDATION_FAILED"
)

// Usage errors
const (
	// ErrCodeInvalidSchema indicates the schema cannot be used for loading.
	ErrCodeInvalidSchema ErrorCode = "INVALID_SCHEMA"
)

// sourceCodes are the codes raised while collecting sources, before validation.
var sourceCodes = map[ErrorCode]bool{
	ErrCodeSourceRead:  true,
	ErrCodeDecodeShape: true,
}

// IsSourceCode returns true if the code reports a failure to read a source.
func IsSourceCode(code ErrorCode) bool {
	return sourceCodes[code]
}
