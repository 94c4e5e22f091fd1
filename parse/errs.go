package parse

import (
	"errors"

	"github.com/dnakit/athena/stream"
)

var (
	ErrParse   = stream.ErrParse
	ErrNoInput = errors.New("no document")
)
