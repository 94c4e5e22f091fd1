package athena

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/dnakit/athena/binio"
	"github.com/dnakit/athena/debug"
	"github.com/dnakit/athena/dna"
	"github.com/dnakit/athena/format"
	"github.com/dnakit/athena/yamldoc"
)

var (
	// ErrClassType is returned when a document's DNAType does not name the
	// record it is read into.
	ErrClassType = yamldoc.ErrClassType

	// ErrSizeMismatch is returned when a record writes a different number
	// of bytes than its BinarySize predicts.
	ErrSizeMismatch = errors.New("binary size mismatch")
)

// MarshalBinary writes rec into a buffer sized by rec.BinarySize(0).
func MarshalBinary(rec interface {
	dna.BinaryWriter
	dna.BinarySizer
}, opts ...binio.Option) ([]byte, error) {
	w, err := writeBinary(rec, opts)
	if err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

func writeBinary(rec interface {
	dna.BinaryWriter
	dna.BinarySizer
}, opts []binio.Option) (*binio.Writer, error) {
	size := rec.BinarySize(0)
	w := binio.NewGrowableWriter(size, opts...)
	if err := rec.Write(w); err != nil {
		return nil, err
	}
	if err := w.Err(); err != nil {
		return nil, err
	}
	if end := w.Position(); end != int64(size) {
		return nil, fmt.Errorf("%w: %T wrote %d bytes, sized %d", ErrSizeMismatch, rec, end, size)
	}
	if debug.Binary() {
		debug.Logf("binary: wrote %T, %d bytes\n", rec, size)
	}
	return w, nil
}

// UnmarshalBinary reads rec from data. data is borrowed for the duration of
// the call.
func UnmarshalBinary(data []byte, rec dna.BinaryReader, opts ...binio.Option) error {
	r := binio.NewReader(data, opts...)
	if err := rec.Read(r); err != nil {
		return err
	}
	if debug.Binary() {
		debug.Logf("binary: read %T, %d of %d bytes\n", rec, r.Position(), r.Length())
		debug.LogAny(rec)
	}
	return r.Err()
}

// MarshalYAML writes rec as one YAML document.
func MarshalYAML(rec interface {
	dna.YAMLWriter
	dna.Typed
}, opts ...yamldoc.Option) ([]byte, error) {
	w := yamldoc.NewWriter(rec.DNAType(), opts...)
	if err := rec.WriteYAML(w); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := w.Finish(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalYAML reads rec from a YAML document whose DNAType must match
// rec.DNAType(). The DNAType is checked before the document is parsed. Missing or malformed fields leave zero values and are
// logged; they are not returned.
func UnmarshalYAML(data []byte, rec interface {
	dna.YAMLReader
	dna.Typed
}, opts ...yamldoc.Option) error {
	want := rec.DNAType()
	// A peek error is left for the full parse to report.
	if ok, err := yamldoc.PeekClassType(data, want); err == nil && !ok {
		return fmt.Errorf("%w: want %q", ErrClassType, want)
	}
	r, err := yamldoc.Parse(data, opts...)
	if err != nil {
		return err
	}
	if !r.ClassType(want) {
		return fmt.Errorf("%w: want %q", ErrClassType, want)
	}
	return rec.ReadYAML(r)
}

// Marshal writes rec in format f.
func Marshal(rec dna.Record, f format.Format) ([]byte, error) {
	switch {
	case f.IsBinary():
		return MarshalBinary(rec)
	case f.IsYAML():
		return MarshalYAML(rec)
	}
	return nil, fmt.Errorf("%w: %v", format.ErrBadFormat, f)
}

// Unmarshal reads rec from data in format f.
func Unmarshal(data []byte, rec dna.Record, f format.Format) error {
	switch {
	case f.IsBinary():
		return UnmarshalBinary(data, rec)
	case f.IsYAML():
		return UnmarshalYAML(data, rec)
	}
	return fmt.Errorf("%w: %v", format.ErrBadFormat, f)
}

// LoadBinary reads rec from the file at path.
func LoadBinary(path string, rec dna.BinaryReader, opts ...binio.Option) error {
	r, err := binio.LoadFile(path, opts...)
	if err != nil {
		return err
	}
	if err := rec.Read(r); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := r.Err(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// SaveBinary writes rec to the file at path.
func SaveBinary(path string, rec interface {
	dna.BinaryWriter
	dna.BinarySizer
}, opts ...binio.Option) error {
	w, err := writeBinary(rec, opts)
	if err != nil {
		return err
	}
	return w.Save(path)
}
