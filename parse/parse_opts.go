package parse

import (
	"log/slog"

	"github.com/dnakit/athena/stream"
)

type parseOpts struct {
	logger    *slog.Logger
	maxEvents int
	document  int
}

type ParseOption func(*parseOpts)

// ParseLogger sets the logger parse failures are reported to at debug
// level.
func ParseLogger(l *slog.Logger) ParseOption {
	return func(o *parseOpts) { o.logger = l }
}

// ParseMaxEvents bounds the size of the expanded document.
func ParseMaxEvents(n int) ParseOption {
	return func(o *parseOpts) { o.maxEvents = n }
}

// ParseDocument selects the document to parse from a multi-document input,
// counting from zero.
func ParseDocument(i int) ParseOption {
	return func(o *parseOpts) { o.document = i }
}

func (o *parseOpts) streamOpts() []stream.StreamOption {
	if o.maxEvents == 0 {
		return nil
	}
	return []stream.StreamOption{stream.WithMaxEvents(o.maxEvents)}
}
