package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeResourceExhausted  Code = "RESOURCE_EXHAUSTED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeUnimplemented      Code = "UNIMPLEMENTED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

// Metadata keys shared across layers
const (
	MetaEntry     = "entry"
	MetaKind      = "kind"
	MetaCommitted = "committed"
	MetaPath      = "path"
	MetaColor     = "color"
	MetaField     = "field"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Exit returns the process exit status used by the command line tools
func (c Code) Exit() int {
	switch c {
	case CodeOK:
		return 0
	case CodeInvalidArgument, CodeNotFound:
		return 2
	case CodeFailedPrecondition, CodeAlreadyExists:
		return 3
	default:
		return 1
	}
}
