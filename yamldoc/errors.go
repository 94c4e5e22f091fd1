package yamldoc

import (
	"errors"
	"fmt"
)

var (
	ErrMissingField = errors.New("missing field")
	ErrBadValue     = errors.New("bad value")
	ErrClassType    = errors.New("class type mismatch")
	ErrFinished     = errors.New("document already finished")
	ErrOpenFrames   = errors.New("unbalanced enter/leave")
)

// FieldError describes a field that could not be read. It is recorded on
// the Reader and the read carries on with the zero value.
type FieldError struct {
	Path  string
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s: %v %q: %q", e.Path, e.Err, e.Field, e.Value)
	}
	return fmt.Sprintf("%s: %v %q", e.Path, e.Err, e.Field)
}

func (e *FieldError) Unwrap() error { return e.Err }
