package imaging

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package matches exactly one of
// these with errors.Is.
var (
	// ErrInvalidParameters reports caller-supplied values that violate a
	// precondition (zero dimension, out-of-range quality, empty overlay list).
	ErrInvalidParameters = errors.New("invalid parameters")

	// ErrInvalidImageData reports bytes that cannot be detransported (base64)
	// or recognized as any supported image container.
	ErrInvalidImageData = errors.New("invalid image data")

	// ErrUnsupportedFormat reports a format with no decode or encode path.
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// ErrImage reports a failure surfaced from an underlying codec.
	ErrImage = errors.New("image processing error")

	// ErrIO reports a file-system failure in the loader.
	ErrIO = errors.New("io error")

	// ErrFileNotFound reports a missing file or directory.
	ErrFileNotFound = errors.New("file not found")

	// ErrPermissionDenied reports an unwritable destination.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrSaveFailed reports a write that failed for a reason other than permissions.
	ErrSaveFailed = errors.New("save operation failed")
)

// Error is the error type returned by every operation in this package.
//
// The kind is one of the Err* sentinels above; Msg is a human-readable detail
// and Err an optional underlying cause.
type Error struct {
	kind error
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	s := e.kind.Error()
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

// Is reports whether target is this error's kind.
func (e *Error) Is(target error) bool {
	return target == e.kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Kind returns the sentinel this error belongs to.
func (e *Error) Kind() error {
	return e.kind
}

func newError(kind error, cause error, format string, args ...interface{}) *Error {
	return &Error{kind: kind, Msg: fmt.Sprintf(format, args...), Err: cause}
}

func invalidParams(format string, args ...interface{}) *Error {
	return newError(ErrInvalidParameters, nil, format, args...)
}

func unsupportedFormat(format string, args ...interface{}) *Error {
	return newError(ErrUnsupportedFormat, nil, format, args...)
}
