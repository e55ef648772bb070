package errors

// ErrorCode represents a unique identifier for error types. Codes are
// organized by category; the E1xxx parse, E2xxx resolve, and E3xxx emit
// bands are defined by the stages that produce them. The transform stage
// owns the E4xxx band.
type ErrorCode string

const (
	// Transform errors (E4xxx)
	E4001 ErrorCode = "E4001" // Syntax not enabled by the source type
	E4002 ErrorCode = "E4002" // Unsupported decorator proposal
	E4003 ErrorCode = "E4003" // Decorator in unsupported position
	E4004 ErrorCode = "E4004" // Invalid JSX pragma
	E4005 ErrorCode = "E4005" // Unresolved JSX reference
)

// codeDescriptions maps error codes to their short descriptions.
var codeDescriptions = map[ErrorCode]string{
	E4001: "syntax not enabled by the source type",
	E4002: "unsupported decorator proposal",
	E4003: "decorator in unsupported position",
	E4004: "invalid JSX pragma",
	E4005: "unresolved JSX reference",
}

// Description returns the short description for an error code, or an empty
// string for unknown codes.
func (c ErrorCode) Description() string {
	return codeDescriptions[c]
}
