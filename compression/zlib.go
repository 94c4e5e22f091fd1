// Package compression wraps stream buffers in zlib, the container most
// record files are shipped in.
package compression

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/dnakit/athena/binio"
	"github.com/klauspost/compress/zlib"
)

const (
	NoCompression      = zlib.NoCompression
	BestSpeed          = zlib.BestSpeed
	BestCompression    = zlib.BestCompression
	DefaultCompression = zlib.DefaultCompression
)

var ErrCorrupt = errors.New("corrupt zlib stream")

// Deflate compresses data into a zlib stream.
func Deflate(data []byte, level int) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, level)
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(data); err != nil {
		zw.Close()
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Inflate decompresses a whole zlib stream.
func Inflate(data []byte) ([]byte, error) {
	res, _, err := inflate(data)
	return res, err
}

func inflate(data []byte) ([]byte, int, error) {
	src := bytes.NewReader(data)
	zr, err := zlib.NewReader(src)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	defer zr.Close()
	res, err := io.ReadAll(zr)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return res, len(data) - src.Len(), nil
}

// InflateReader decompresses the zlib stream starting at r's position and
// returns an owned Reader over the result. r is advanced past the
// compressed stream.
func InflateReader(r *binio.Reader, opts ...binio.Option) (*binio.Reader, error) {
	if err := r.Err(); err != nil {
		return nil, err
	}
	res, n, err := inflate(r.Data()[r.Position():])
	if err != nil {
		return nil, err
	}
	if _, err := r.Seek(int64(n), io.SeekCurrent); err != nil {
		return nil, err
	}
	return binio.NewReaderCopy(res, opts...), nil
}

// DeflateWriter compresses everything written to w so far.
func DeflateWriter(w *binio.Writer, level int) ([]byte, error) {
	if err := w.Err(); err != nil {
		return nil, err
	}
	return Deflate(w.Bytes(), level)
}
