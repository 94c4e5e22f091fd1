package dna

import "github.com/dnakit/athena/binio"

// ReadVector reads count elements with fn. It stops at the first element
// that fails the stream, returning the elements read before it.
func ReadVector[T any](r *binio.Reader, count int, fn func(*binio.Reader) T) []T {
	if count <= 0 {
		return nil
	}
	items := make([]T, 0, count)
	for range count {
		v := fn(r)
		if r.Err() != nil {
			break
		}
		items = append(items, v)
	}
	return items
}

// WriteVector writes every element of items with fn.
func WriteVector[T any](w *binio.Writer, items []T, fn func(*binio.Writer, T)) {
	for _, v := range items {
		if w.Err() != nil {
			return
		}
		fn(w, v)
	}
}

// ReadValues reads count scalars in byte order e.
func ReadValues[T Scalar](r *binio.Reader, count int, e binio.Endian) []T {
	return ReadVector(r, count, func(r *binio.Reader) T { return Read[T](r, e) })
}

// WriteValues writes items in byte order e.
func WriteValues[T Scalar](w *binio.Writer, items []T, e binio.Endian) {
	WriteVector(w, items, func(w *binio.Writer, v T) { Write(w, v, e) })
}

// ReadRecords reads count records in sequence, stopping at the first error.
func ReadRecords[T any, PT interface {
	*T
	BinaryReader
}](r *binio.Reader, count int) ([]T, error) {
	if count <= 0 {
		return nil, r.Err()
	}
	items := make([]T, count)
	for i := range items {
		if err := PT(&items[i]).Read(r); err != nil {
			return items[:i], err
		}
	}
	return items, r.Err()
}

// WriteRecords writes items in sequence, stopping at the first error.
func WriteRecords[T any, PT interface {
	*T
	BinaryWriter
}](w *binio.Writer, items []T) error {
	for i := range items {
		if err := PT(&items[i]).Write(w); err != nil {
			return err
		}
	}
	return w.Err()
}
