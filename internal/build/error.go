package build

import "fmt"

// ErrorKind classifies the fatal build failures.
type ErrorKind int

const (
	// ErrSourceNotFound means the source document could not be read.
	ErrSourceNotFound ErrorKind = iota
	// ErrUnresolvedComponent means a declared component has no descriptor.
	ErrUnresolvedComponent
	// ErrMissingAttribute means a required attribute is absent or blank,
	// either on a matched element (Visual) or on the declaration (Service).
	ErrMissingAttribute
	// ErrDisallowedTag means a Visual component matched an element whose tag
	// is not in the component's allowed set.
	ErrDisallowedTag
)

// Error is the single fatal build failure type. Any Error aborts the build
// before artifacts are written.
type Error struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string { return e.Message }

// Errorf constructs a fatal build error of the given kind.
func Errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
