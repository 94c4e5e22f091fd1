package stream

import (
	"errors"
	"fmt"
)

// ErrParse is wrapped by every *Error.
var ErrParse = errors.New("parse error")

// Error represents a stream error.
type Error struct {
	Msg  string
	Path string
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%v: %s", ErrParse, e.Msg)
	}
	return fmt.Sprintf("%v: %s at %s", ErrParse, e.Msg, e.Path)
}

func (e *Error) Unwrap() error { return ErrParse }
