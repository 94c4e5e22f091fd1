package yamldoc

// ReadVector reads every element of the sequence called name with fn. The
// name fn passes to the Reader is ignored inside a sequence.
func ReadVector[T any](r *Reader, name string, fn func(*Reader) T) []T {
	n, ok := r.EnterSubVector(name)
	if !ok {
		return nil
	}
	defer r.LeaveSubVector()
	items := make([]T, 0, n)
	for range n {
		items = append(items, fn(r))
	}
	return items
}

// WriteVector writes items as the sequence called name.
func WriteVector[T any](w *Writer, name string, items []T, fn func(*Writer, T)) {
	w.EnterSubVector(name)
	for _, v := range items {
		fn(w, v)
	}
	w.LeaveSubVector()
}

// ReadRecord reads rec from the record called name.
func ReadRecord(r *Reader, name string, rec interface{ ReadYAML(*Reader) error }) error {
	if !r.EnterSubRecord(name) {
		return nil
	}
	defer r.LeaveSubRecord()
	return rec.ReadYAML(r)
}

// WriteRecord writes rec as the record called name.
func WriteRecord(w *Writer, name string, rec interface{ WriteYAML(*Writer) error }) error {
	w.EnterSubRecord(name)
	defer w.LeaveSubRecord()
	return rec.WriteYAML(w)
}

// ReadRecords reads the sequence called name as records, stopping at the
// first error.
func ReadRecords[T any, PT interface {
	*T
	ReadYAML(*Reader) error
}](r *Reader, name string) ([]T, error) {
	n, ok := r.EnterSubVector(name)
	if !ok {
		return nil, nil
	}
	defer r.LeaveSubVector()
	items := make([]T, n)
	for i := range items {
		if err := ReadRecord(r, "", PT(&items[i])); err != nil {
			return items[:i], err
		}
	}
	return items, nil
}

// WriteRecords writes items as the sequence called name, stopping at the
// first error.
func WriteRecords[T any, PT interface {
	*T
	WriteYAML(*Writer) error
}](w *Writer, name string, items []T) error {
	w.EnterSubVector(name)
	defer w.LeaveSubVector()
	for i := range items {
		if err := WriteRecord(w, "", PT(&items[i])); err != nil {
			return err
		}
	}
	return nil
}
