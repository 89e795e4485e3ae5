package vision

import "fmt"

// Code classifies toolkit errors.
type Code int

const (
	// CodeBadParameter reports an invalid control parameter.
	CodeBadParameter Code = 1301
	// CodeBadImage reports an image with an unsupported type or channel count.
	CodeBadImage Code = 3010
	// CodeFileIO reports a failure decoding or encoding an image file.
	CodeFileIO Code = 5001
	// CodeFileNotFound reports a missing input file.
	CodeFileNotFound Code = 5200
)

// Error is returned by every toolkit operator.
type Error struct {
	Code     Code
	Operator string
	Message  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (error #%d)", e.Operator, e.Message, e.Code)
}

// StepDetail is the text recorded in the demo report.
func (e *Error) StepDetail() string {
	return "Vision Error: " + e.Message
}

func newError(code Code, op, format string, args ...any) *Error {
	return &Error{Code: code, Operator: op, Message: fmt.Sprintf(format, args...)}
}
