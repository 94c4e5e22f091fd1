package dna

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/dnakit/athena/binio"
	"github.com/google/go-cmp/cmp"
)

type point struct {
	X, Y int16
}

func (p *point) Read(r *binio.Reader) error {
	p.X = Read[int16](r, binio.DefaultEndian)
	p.Y = Read[int16](r, binio.Big)
	return r.Err()
}

func (p *point) Write(w *binio.Writer) error {
	Write(w, p.X, binio.DefaultEndian)
	Write(w, p.Y, binio.Big)
	return w.Err()
}

func (p *point) BinarySize(start int) int {
	s := NewSizer(start)
	SizeOfValue[int16](s)
	SizeOfValue[int16](s)
	return s.Total()
}

// shape exercises every descriptor kind, including a relative seek and two
// alignments.
type shape struct {
	Kind   uint8
	Name   string
	Label  string
	Tag    string
	Points []point
	Blob   []byte
}

func (v *shape) Read(r *binio.Reader) error {
	v.Kind = Read[uint8](r, binio.DefaultEndian)
	r.Align(4)
	count := Read[uint32](r, binio.Big)
	v.Name = r.ReadString()
	if _, err := r.Seek(2, io.SeekCurrent); err != nil {
		return err
	}
	v.Label = r.ReadWStringAsString(binio.DefaultEndian)
	v.Tag = r.ReadFixedString(6)
	var err error
	if v.Points, err = ReadRecords[point](r, int(count)); err != nil {
		return err
	}
	v.Blob = r.ReadBytes(3)
	r.Align(8)
	return r.Err()
}

func (v *shape) Write(w *binio.Writer) error {
	Write(w, v.Kind, binio.DefaultEndian)
	w.Align(4)
	Write(w, uint32(len(v.Points)), binio.Big)
	w.WriteString(v.Name)
	if _, err := w.Seek(2, io.SeekCurrent); err != nil {
		return err
	}
	w.WriteWStringAsString(v.Label, binio.DefaultEndian)
	w.WriteFixedString(v.Tag, 6)
	if err := WriteRecords(w, v.Points); err != nil {
		return err
	}
	w.WriteBytes(v.Blob)
	w.Align(8)
	return w.Err()
}

func (v *shape) BinarySize(start int) int {
	s := NewSizer(start)
	SizeOfValue[uint8](s)
	s.Align(4)
	SizeOfValue[uint32](s)
	s.String(v.Name)
	s.Seek(2, io.SeekCurrent)
	s.WStringAsString(v.Label)
	s.FixedString(6)
	SizeRecords(s, v.Points)
	s.Buffer(3)
	s.Align(8)
	return s.Total()
}

func TestSizeMatchesWrite(t *testing.T) {
	in := shape{
		Kind:   7,
		Name:   "triangle",
		Label:  "tri\U0001F600",
		Tag:    "abc",
		Points: []point{{1, 2}, {-3, 4}, {5, -6}},
		Blob:   []byte{0xde, 0xad, 0xbe},
	}
	for _, start := range []int{0, 1, 5, 13} {
		w := binio.NewGrowableWriter(0)
		if _, err := w.Seek(int64(start), io.SeekStart); err != nil {
			t.Fatal(err)
		}
		if err := in.Write(w); err != nil {
			t.Fatalf("start %d: Write: %v", start, err)
		}
		if got, want := in.BinarySize(start), int(w.Length()); got != want {
			t.Errorf("start %d: BinarySize = %d, written length %d", start, got, want)
		}

		r := binio.NewReader(w.Bytes())
		if _, err := r.Seek(int64(start), io.SeekStart); err != nil {
			t.Fatal(err)
		}
		var out shape
		if err := out.Read(r); err != nil {
			t.Fatalf("start %d: Read: %v", start, err)
		}
		if diff := cmp.Diff(in, out); diff != "" {
			t.Errorf("start %d: round trip (-want +got):\n%s", start, diff)
		}
		if !r.AtEnd() {
			t.Errorf("start %d: reader stopped at %d of %d", start, r.Position(), r.Length())
		}
	}
}

func TestSizerSeek(t *testing.T) {
	s := NewSizer(4)
	s.Add(10)
	s.Seek(-2, io.SeekCurrent)
	if s.Total() != 12 {
		t.Errorf("relative seek: Total() = %d, want 12", s.Total())
	}
	s.Seek(100, io.SeekStart)
	s.Add(1)
	if s.Total() != 101 {
		t.Errorf("absolute seek: Total() = %d, want 101", s.Total())
	}
}

func TestSizerAlign(t *testing.T) {
	tests := []struct {
		name  string
		start int
		add   int
		align int
		want  int
	}{
		{"power of two", 0, 5, 4, 8},
		{"already aligned", 8, 0, 8, 8},
		{"not a power of two", 1, 3, 6, 6},
		{"not a power of two rounding", 0, 7, 6, 12},
		{"one", 3, 0, 1, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSizer(tt.start)
			s.Add(tt.add)
			s.Align(tt.align)
			if s.Total() != tt.want {
				t.Errorf("Total() = %d, want %d", s.Total(), tt.want)
			}
		})
	}
}

func TestSizerSeekEndPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("end-relative seek did not panic")
		}
	}()
	NewSizer(0).Seek(0, io.SeekEnd)
}

func TestSizerStrings(t *testing.T) {
	s := NewSizer(0)
	s.String("hi")
	s.WString([]uint16{'a', 'b'})
	s.WStringAsString("\uFEFFa\U0001F600")
	s.FixedWString(4)
	if got, want := s.Total(), 3+6+8+8; got != want {
		t.Errorf("Total() = %d, want %d", got, want)
	}
}

func TestScalarRoundTrip(t *testing.T) {
	for _, e := range []binio.Endian{binio.Little, binio.Big} {
		w := binio.NewGrowableWriter(0)
		Write(w, true, e)
		Write(w, int8(-5), e)
		Write(w, uint16(0xBEEF), e)
		Write(w, int32(-70000), e)
		Write(w, uint64(math.MaxUint64-1), e)
		Write(w, float32(1.5), e)
		Write(w, math.SmallestNonzeroFloat64, e)
		Write(w, binio.Vec3f{1, -2, 3}, e)
		Write(w, binio.Vec2d{math.Pi, -math.E}, e)

		r := binio.NewReader(w.Bytes())
		got := []any{
			Read[bool](r, e), Read[int8](r, e), Read[uint16](r, e),
			Read[int32](r, e), Read[uint64](r, e), Read[float32](r, e),
			Read[float64](r, e), Read[binio.Vec3f](r, e), Read[binio.Vec2d](r, e),
		}
		want := []any{
			true, int8(-5), uint16(0xBEEF), int32(-70000), uint64(math.MaxUint64 - 1),
			float32(1.5), math.SmallestNonzeroFloat64, binio.Vec3f{1, -2, 3}, binio.Vec2d{math.Pi, -math.E},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%v (-want +got):\n%s", e, diff)
		}
		if !r.AtEnd() || r.Err() != nil {
			t.Errorf("%v: position %d of %d, err %v", e, r.Position(), r.Length(), r.Err())
		}
	}
}

func TestSizeOf(t *testing.T) {
	got := []int{
		SizeOf[bool](), SizeOf[uint8](), SizeOf[int16](), SizeOf[uint32](),
		SizeOf[float32](), SizeOf[int64](), SizeOf[float64](),
		SizeOf[binio.Vec2f](), SizeOf[binio.Vec3f](), SizeOf[binio.Vec4f](),
		SizeOf[binio.Vec2d](), SizeOf[binio.Vec3d](), SizeOf[binio.Vec4d](),
	}
	want := []int{1, 1, 2, 4, 4, 8, 8, 8, 12, 16, 16, 24, 32}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SizeOf (-want +got):\n%s", diff)
	}
}

func TestValues(t *testing.T) {
	w := binio.NewGrowableWriter(0)
	WriteValues(w, []uint16{1, 0x0203}, binio.Big)
	if diff := cmp.Diff([]byte{0, 1, 2, 3}, w.Bytes()); diff != "" {
		t.Fatalf("bytes (-want +got):\n%s", diff)
	}
	got := ReadValues[uint16](binio.NewReader(w.Bytes()), 2, binio.Big)
	if diff := cmp.Diff([]uint16{1, 0x0203}, got); diff != "" {
		t.Errorf("values (-want +got):\n%s", diff)
	}
	if got := ReadValues[uint16](binio.NewReader(nil), 0, binio.Big); got != nil {
		t.Errorf("zero count = %v", got)
	}
}

func TestReadRecordsStopsOnFailure(t *testing.T) {
	r := binio.NewReader([]byte{1, 0, 0, 2, 3})
	pts, err := ReadRecords[point](r, 3)
	if !errors.Is(err, binio.ErrBounds) {
		t.Fatalf("err = %v, want bounds error", err)
	}
	if diff := cmp.Diff([]point{{1, 2}}, pts); diff != "" {
		t.Errorf("records (-want +got):\n%s", diff)
	}
}

func TestReadVectorStopsOnFailure(t *testing.T) {
	r := binio.NewReader([]byte{1, 2, 3})
	got := ReadVector(r, 10, func(r *binio.Reader) uint8 { return r.ReadUint8() })
	if diff := cmp.Diff([]uint8{1, 2, 3}, got); diff != "" {
		t.Errorf("elements (-want +got):\n%s", diff)
	}
}
