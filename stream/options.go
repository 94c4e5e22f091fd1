package stream

// DefaultMaxAliasEvents bounds the events one document may expand to
// through aliases.
const DefaultMaxAliasEvents = 1 << 20

// StreamOption configures a Decoder.
type StreamOption func(*streamOpts)

type streamOpts struct {
	maxEvents int
}

// WithMaxEvents limits the number of events a single document may produce,
// guarding against alias bombs. Zero or less means no limit.
func WithMaxEvents(n int) StreamOption {
	return func(opts *streamOpts) {
		opts.maxEvents = n
	}
}
