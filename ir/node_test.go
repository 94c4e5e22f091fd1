package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sample() *Node {
	return FromKeyVals([]KeyVal{
		{Key: "a", Val: FromString("1")},
		{Key: "list", Val: FromSlice([]*Node{FromString("x"), FromString("y")})},
		{Key: "a", Val: FromString("2")},
		{Key: "", Val: NewMapping()},
	})
}

func TestGet(t *testing.T) {
	y := sample()
	tests := []struct {
		name  string
		field string
		want  *Node
	}{
		{"first match wins", "a", FromString("1")},
		{"sequence", "list", FromSlice([]*Node{FromString("x"), FromString("y")})},
		{"unnamed", "", NewMapping()},
		{"missing", "b", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Get(y, tt.field)
			if !Equal(tt.want, got) {
				t.Errorf("Get(%q) = %+v, want %+v", tt.field, got, tt.want)
			}
		})
	}
	if Get(FromString("a"), "a") != nil {
		t.Error("Get on a scalar returned a node")
	}
}

func TestSetAndAppendField(t *testing.T) {
	y := NewMapping()
	y.AppendField("k", FromString("1"))
	y.AppendField("k", FromString("2"))
	y.Set("k", FromString("3"))
	y.Set("j", FromString("4"))
	want := []KeyVal{
		{Key: "k", Val: FromString("3")},
		{Key: "k", Val: FromString("2")},
		{Key: "j", Val: FromString("4")},
	}
	if diff := cmp.Diff(want, y.KeyVals()); diff != "" {
		t.Errorf("KeyVals (-want +got):\n%s", diff)
	}
	if y.Len() != 3 {
		t.Errorf("Len() = %d", y.Len())
	}
}

func TestCloneIsDeep(t *testing.T) {
	y := sample()
	c := y.Clone()
	if !Equal(y, c) {
		t.Fatal("clone differs")
	}
	Get(c, "list").Values[0].String = "changed"
	c.Fields[0].String = "renamed"
	if Get(y, "list").Values[0].String != "x" || y.Fields[0].String != "a" {
		t.Error("mutating the clone changed the original")
	}
	if Equal(y, c) {
		t.Error("Equal ignored the changes")
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Node
		want bool
	}{
		{"scalars", FromString("x"), FromString("x"), true},
		{"scalar text", FromString("x"), FromString("y"), false},
		{"types", FromString(""), NewSequence(), false},
		{"empty sequences", NewSequence(), FromSlice(nil), true},
		{"order", FromSlice([]*Node{FromString("1"), FromString("2")}), FromSlice([]*Node{FromString("2"), FromString("1")}), false},
		{"keys", FromKeyVals([]KeyVal{{"a", FromString("1")}}), FromKeyVals([]KeyVal{{"b", FromString("1")}}), false},
		{"nil", nil, FromString(""), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVisit(t *testing.T) {
	var order []string
	err := sample().Visit(func(y *Node, isPost bool) (bool, error) {
		if !isPost {
			order = append(order, y.Type.String()+":"+y.String)
		}
		return y.Type != SequenceType, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Mapping:", "Scalar:1", "Sequence:", "Scalar:2", "Mapping:"}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Errorf("visit order (-want +got):\n%s", diff)
	}

	stop := errors.New("stop")
	err = sample().Visit(func(y *Node, _ bool) (bool, error) {
		if y.Type == ScalarType {
			return false, stop
		}
		return true, nil
	})
	if !errors.Is(err, stop) {
		t.Errorf("Visit() err = %v", err)
	}
}

func TestTypeText(t *testing.T) {
	for _, ty := range Types() {
		d, err := ty.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil || back != ty {
			t.Errorf("%v: got %v, %v", ty, back, err)
		}
	}
	var ty Type
	if err := ty.UnmarshalText([]byte("Object")); err == nil {
		t.Error("UnmarshalText accepted an unknown type")
	}
}
