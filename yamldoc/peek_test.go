package yamldoc

import (
	"bytes"
	"testing"
)

func TestPeekClassType(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
		want     bool
	}{
		{"match", doc, "Test", true},
		{"other", doc, "Other", false},
		{"absent", "a: 1\n", "Test", false},
		{"not a string", "DNAType: [1]\n", "Test", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := []byte(tt.in)
			orig := bytes.Clone(in)
			got, err := PeekClassType(in, tt.expected)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
			if !bytes.Equal(orig, in) {
				t.Error("input modified")
			}
		})
	}
}

func TestClassTypeAgreesWithReader(t *testing.T) {
	w := NewWriter("Mesh", quiet())
	w.WriteUint32("count", 3)
	var buf bytes.Buffer
	if err := w.Finish(&buf); err != nil {
		t.Fatal(err)
	}
	name, err := ClassType(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	r := mustParse(t, buf.String())
	if name != "Mesh" || !r.ClassType(name) {
		t.Errorf("ClassType = %q", name)
	}
}
