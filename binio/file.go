package binio

import (
	"fmt"
	"io"
	"os"
)

// LoadFile reads the whole file at path into an owned Reader, block by block,
// reporting progress after each block.
func LoadFile(path string, opts ...Option) (*Reader, error) {
	o := newOptions(opts)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat %q: %w", path, err)
	}
	total := st.Size()
	data := make([]byte, total)
	var done int64
	for done < total {
		end := min(done+int64(o.blockSize), total)
		n, err := io.ReadFull(f, data[done:end])
		done += int64(n)
		if o.progress != nil {
			o.progress(done, total)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %q at %d: %w", path, done, err)
		}
	}
	return newReader(data, true, o), nil
}

// Save writes Bytes() to path block by block. A stream that already failed
// is not saved.
func (w *Writer) Save(path string) error {
	if w.err != nil {
		return w.err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	total := w.Length()
	var done int64
	for done < total {
		end := min(done+int64(w.opts.blockSize), total)
		n, err := f.Write(w.data[done:end])
		done += int64(n)
		if w.opts.progress != nil {
			w.opts.progress(done, total)
		}
		if err != nil {
			f.Close()
			return fmt.Errorf("failed to write %q at %d: %w", path, done, err)
		}
	}
	return f.Close()
}
