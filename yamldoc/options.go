package yamldoc

import (
	"log/slog"

	"github.com/dnakit/athena/encode"
	"github.com/dnakit/athena/parse"
)

type Option func(*options)

type options struct {
	logger *slog.Logger
	encode []encode.EncodeOption
	parse  []parse.ParseOption
}

func newOptions(opts []Option) *options {
	o := &options{logger: slog.Default()}
	for _, f := range opts {
		f(o)
	}
	return o
}

// WithLogger sets the logger missing fields and bad values are reported to.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithEncodeOptions adds options for the emitter used by Writer.Finish.
func WithEncodeOptions(opts ...encode.EncodeOption) Option {
	return func(o *options) { o.encode = append(o.encode, opts...) }
}

// WithParseOptions adds options for the parser used by Parse.
func WithParseOptions(opts ...parse.ParseOption) Option {
	return func(o *options) { o.parse = append(o.parse, opts...) }
}
