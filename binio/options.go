package binio

import "log/slog"

// DefaultBlockSize is the chunk size used by LoadFile and Writer.Save.
const DefaultBlockSize = 32 * 1024

// Option configures a Reader or Writer.
type Option func(*options)

type options struct {
	endian    Endian
	logger    *slog.Logger
	blockSize int
	progress  func(done, total int64)
}

func newOptions(opts []Option) *options {
	o := &options{
		endian:    Little,
		blockSize: DefaultBlockSize,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.endian == DefaultEndian {
		o.endian = Little
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.blockSize <= 0 {
		o.blockSize = DefaultBlockSize
	}
	return o
}

// WithEndian sets the stream endian used by the unsuffixed scalar methods.
func WithEndian(e Endian) Option {
	return func(o *options) { o.endian = e }
}

// WithLogger sets the logger that recoverable conditions, such as invalid
// wide string data, are reported to. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithBlockSize sets the chunk size for file loads and saves.
func WithBlockSize(n int) Option {
	return func(o *options) { o.blockSize = n }
}

// WithProgress registers a callback invoked after each block of a file load
// or save.
func WithProgress(f func(done, total int64)) Option {
	return func(o *options) { o.progress = f }
}
