package athena

import (
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/dnakit/athena/binio"
	"github.com/dnakit/athena/dna"
	"github.com/dnakit/athena/format"
	"github.com/dnakit/athena/parse"
	"github.com/dnakit/athena/yamldoc"
	"github.com/google/go-cmp/cmp"
)

type scenario struct {
	A uint16
	B string
	C []uint8
}

func (s *scenario) DNAType() string { return "Scenario" }

func (s *scenario) Read(r *binio.Reader) error {
	s.A = dna.Read[uint16](r, binio.Big)
	s.B = r.ReadString()
	s.C = dna.ReadValues[uint8](r, 3, binio.DefaultEndian)
	return r.Err()
}

func (s *scenario) Write(w *binio.Writer) error {
	dna.Write(w, s.A, binio.Big)
	w.WriteString(s.B)
	dna.WriteValues(w, s.C, binio.DefaultEndian)
	return w.Err()
}

func (s *scenario) BinarySize(start int) int {
	sz := dna.NewSizer(start)
	dna.SizeOfValue[uint16](sz)
	sz.String(s.B)
	sz.Values(3, dna.SizeOf[uint8]())
	return sz.Total()
}

func (s *scenario) ReadYAML(r *yamldoc.Reader) error {
	s.A = r.ReadUint16("a")
	s.B = r.ReadString("b")
	s.C = yamldoc.ReadVector(r, "c", func(r *yamldoc.Reader) uint8 { return r.ReadUint8("") })
	return nil
}

func (s *scenario) WriteYAML(w *yamldoc.Writer) error {
	w.WriteUint16("a", s.A)
	w.WriteString("b", s.B)
	yamldoc.WriteVector(w, "c", s.C, func(w *yamldoc.Writer, v uint8) { w.WriteUint8("", v) })
	return nil
}

var want = scenario{A: 0x1234, B: "hi", C: []uint8{1, 2, 3}}

func quiet() yamldoc.Option {
	return yamldoc.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestScenarioBinary(t *testing.T) {
	rec := want
	if got := rec.BinarySize(0); got != 8 {
		t.Errorf("BinarySize(0) = %d", got)
	}
	data, err := MarshalBinary(&rec)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]byte{0x12, 0x34, 'h', 'i', 0, 1, 2, 3}, data); diff != "" {
		t.Errorf("bytes (-want +got):\n%s", diff)
	}
	var back scenario
	if err := UnmarshalBinary(data, &back); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, back); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestScenarioYAML(t *testing.T) {
	rec := want
	data, err := MarshalYAML(&rec, quiet())
	if err != nil {
		t.Fatal(err)
	}
	text := "---\nDNAType: Scenario\na: \"0x1234\"\nb: hi\nc: [\"0x01\", \"0x02\", \"0x03\"]\n"
	if diff := cmp.Diff(text, string(data)); diff != "" {
		t.Errorf("text (-want +got):\n%s", diff)
	}
	var back scenario
	if err := UnmarshalYAML(data, &back, quiet()); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, back); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestUnmarshalYAMLClassType(t *testing.T) {
	var rec scenario
	err := UnmarshalYAML([]byte("---\nDNAType: Other\na: 1\n"), &rec, quiet())
	if !errors.Is(err, ErrClassType) {
		t.Errorf("err = %v", err)
	}
	err = UnmarshalYAML([]byte("a: 1\n"), &rec, quiet())
	if !errors.Is(err, ErrClassType) {
		t.Errorf("no DNAType: err = %v", err)
	}
}

// A mismatched DNAType is rejected without building the document: the
// event budget here is too small for a full parse to succeed.
func TestUnmarshalYAMLChecksClassTypeFirst(t *testing.T) {
	var rec scenario
	data := []byte("---\nDNAType: Other\na: 1\nb: [1, 2, 3]\n")
	small := yamldoc.WithParseOptions(parse.ParseMaxEvents(3))
	if err := UnmarshalYAML(data, &rec, quiet(), small); !errors.Is(err, ErrClassType) {
		t.Errorf("err = %v", err)
	}
	data = []byte("---\nDNAType: Scenario\na: 1\nb: [1, 2, 3]\n")
	if err := UnmarshalYAML(data, &rec, quiet(), small); !errors.Is(err, parse.ErrParse) {
		t.Errorf("matching type: err = %v", err)
	}
}

func TestUnmarshalBinaryShort(t *testing.T) {
	var rec scenario
	err := UnmarshalBinary([]byte{0x12, 0x34, 'h', 'i', 0, 1}, &rec)
	if !errors.Is(err, binio.ErrBounds) {
		t.Errorf("err = %v", err)
	}
}

type liar struct{ scenario }

func (l *liar) BinarySize(start int) int { return start + 4 }

func TestSizeMismatch(t *testing.T) {
	rec := liar{want}
	if _, err := MarshalBinary(&rec); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("err = %v", err)
	}
}

func TestMarshalByFormat(t *testing.T) {
	for _, f := range format.AllFormats() {
		t.Run(f.String(), func(t *testing.T) {
			rec := want
			data, err := Marshal(&rec, f)
			if err != nil {
				t.Fatal(err)
			}
			var back scenario
			if err := Unmarshal(data, &back, f); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(want, back); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
	var rec scenario
	if _, err := Marshal(&rec, format.Format(9)); !errors.Is(err, format.ErrBadFormat) {
		t.Errorf("err = %v", err)
	}
}

func TestSaveLoadBinary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rec"+format.BinaryFormat.Suffix())
	rec := want
	if err := SaveBinary(path, &rec, binio.WithBlockSize(3)); err != nil {
		t.Fatal(err)
	}
	var back scenario
	if err := LoadBinary(path, &back, binio.WithBlockSize(3)); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, back); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if err := LoadBinary(filepath.Join(t.TempDir(), "missing"), &back); err == nil {
		t.Error("expected an error")
	}
}
