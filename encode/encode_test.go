package encode

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/dnakit/athena/ir"
	"github.com/dnakit/athena/parse"
	"github.com/google/go-cmp/cmp"
)

func strs(vs ...string) []*ir.Node {
	res := make([]*ir.Node, len(vs))
	for i, v := range vs {
		res[i] = ir.FromString(v)
	}
	return res
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		node *ir.Node
		opts []EncodeOption
		want string
	}{
		{
			name: "record",
			node: ir.FromKeyVals([]ir.KeyVal{
				{Key: "DNAType", Val: ir.FromString("Test")},
				{Key: "a", Val: ir.FromString("0x1234")},
				{Key: "b", Val: ir.FromString("hi")},
				{Key: "c", Val: ir.FromSlice(strs("0x01", "0x02", "0x03"))},
			}),
			want: "DNAType: Test\na: \"0x1234\"\nb: hi\nc: [\"0x01\", \"0x02\", \"0x03\"]\n",
		},
		{
			name: "short sequence is flow",
			node: ir.FromSlice(strs("1", "2", "3")),
			want: "[\"1\", \"2\", \"3\"]\n",
		},
		{
			name: "seven short scalars are block",
			node: ir.FromSlice(strs("a", "b", "c", "d", "e", "f", "g")),
			want: "- a\n- b\n- c\n- d\n- e\n- f\n- g\n",
		},
		{
			name: "six short scalars stay flow",
			node: ir.FromSlice(strs("a", "b", "c", "d", "e", "f")),
			want: "[a, b, c, d, e, f]\n",
		},
		{
			name: "long scalar is block",
			node: ir.FromSlice(strs(strings.Repeat("x", 70))),
			want: "- " + strings.Repeat("x", 70) + "\n",
		},
		{
			name: "empty collections are flow",
			node: ir.FromKeyVals([]ir.KeyVal{
				{Key: "s", Val: ir.NewSequence()},
				{Key: "m", Val: ir.NewMapping()},
			}),
			want: "s: []\nm: {}\n",
		},
		{
			name: "small mapping is flow",
			node: ir.FromKeyVals([]ir.KeyVal{
				{Key: "x", Val: ir.FromString("1.5")},
				{Key: "", Val: ir.FromString("a,b")},
			}),
			want: "{x: \"1.5\", \"\": \"a,b\"}\n",
		},
		{
			name: "literal forces block parent",
			node: ir.FromKeyVals([]ir.KeyVal{
				{Key: "s", Val: ir.FromString("one\ntwo")},
			}),
			want: "s: |-\n  one\n  two\n",
		},
		{
			name: "literal chomping",
			node: ir.FromSlice(strs("a\n", "a\n\n", "\n")),
			want: "- |\n  a\n- |+\n  a\n\n- |+\n\n",
		},
		{
			name: "literal indent indicator",
			node: ir.FromKeyVals([]ir.KeyVal{
				{Key: "s", Val: ir.FromString("  lead\nx")},
			}),
			want: "s: |-2\n    lead\n  x\n",
		},
		{
			name: "nested",
			node: ir.FromKeyVals([]ir.KeyVal{
				{Key: "list", Val: ir.FromSlice([]*ir.Node{
					ir.FromKeyVals([]ir.KeyVal{
						{Key: "p", Val: ir.FromSlice(strs("1", "2"))},
						{Key: "q", Val: ir.FromSlice([]*ir.Node{ir.NewMapping()})},
					}),
					ir.FromSlice([]*ir.Node{ir.FromSlice(nil), ir.FromString("z")}),
				})},
			}),
			want: "list:\n  - p: [\"1\", \"2\"]\n    q:\n      - {}\n  - - []\n    - z\n",
		},
		{
			name: "control characters are quoted",
			node: ir.FromSlice(strs("cr\r\nlf")),
			want: "[\"cr\\r\\nlf\"]\n",
		},
		{
			name: "line starting with a tab is quoted",
			node: ir.FromKeyVals([]ir.KeyVal{
				{Key: "s", Val: ir.FromString("\t\nx")},
			}),
			want: "{s: \"\\t\\nx\"}\n",
		},
		{
			name: "later line starting with a tab is quoted",
			node: ir.FromSlice(strs("y\n\tz", strings.Repeat("w", 70))),
			want: "- \"y\\n\\tz\"\n- " + strings.Repeat("w", 70) + "\n",
		},
		{
			name: "indicators are quoted in flow",
			node: ir.FromKeyVals([]ir.KeyVal{
				{Key: "q", Val: ir.FromString("?x")},
				{Key: "d", Val: ir.FromString("-x")},
				{Key: "c", Val: ir.FromString(":x")},
			}),
			want: "{q: \"?x\", d: \"-x\", c: \":x\"}\n",
		},
		{
			name: "document start and indent",
			node: ir.FromKeyVals([]ir.KeyVal{
				{Key: "m", Val: ir.FromKeyVals([]ir.KeyVal{{Key: "k", Val: ir.FromSlice(strs("0", "1", "2", "3", "4", "5", "6"))}})},
			}),
			opts: []EncodeOption{DocStart(true), Indent(4)},
			want: "---\nm:\n    k:\n        - \"0\"\n        - \"1\"\n        - \"2\"\n        - \"3\"\n        - \"4\"\n        - \"5\"\n        - \"6\"\n",
		},
		{
			name: "scalar root",
			node: ir.FromString("true"),
			want: "\"true\"\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			if err := Encode(tt.node, buf, tt.opts...); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, buf.String()); diff != "" {
				t.Errorf("Encode (-want +got):\n%s", diff)
			}
			back, err := parse.Parse(buf.Bytes())
			if err != nil {
				t.Fatalf("output does not parse: %v\n%s", err, buf.String())
			}
			if !ir.Equal(tt.node, back) {
				t.Errorf("output does not read back as the input:\n%s", buf.String())
			}
		})
	}
}

func TestEncodeLiteralInSequenceEntryMapping(t *testing.T) {
	node := ir.FromSlice([]*ir.Node{
		ir.FromKeyVals([]ir.KeyVal{
			{Key: "a", Val: ir.FromString(" indented\nnext\n")},
			{Key: "b", Val: ir.FromString("x")},
		}),
		ir.FromString("  two\n"),
	})
	out := MustString(node)
	back, err := parse.Parse([]byte(out))
	if err != nil {
		t.Fatalf("%v\n%s", err, out)
	}
	if !ir.Equal(node, back) {
		t.Errorf("round trip changed the tree:\n%s", out)
	}
}

func TestFlow(t *testing.T) {
	tests := []struct {
		name string
		node *ir.Node
		want bool
	}{
		{"scalar", ir.FromString("x"), false},
		{"weight six", ir.FromSlice(strs(strings.Repeat("x", 30), strings.Repeat("y", 30))), true},
		{"weight seven", ir.FromSlice(strs(strings.Repeat("x", 30), strings.Repeat("y", 40))), false},
		{"nested", ir.FromSlice([]*ir.Node{ir.NewSequence()}), false},
		{"newline", ir.FromSlice(strs("a\nb")), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Flow(tt.node); got != tt.want {
				t.Errorf("Flow() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEncodeErrors(t *testing.T) {
	if err := Encode(ir.FromString("x"), &bytes.Buffer{}, Indent(0)); !errors.Is(err, ErrEncoding) {
		t.Errorf("Indent(0) err = %v", err)
	}
	if err := Encode(nil, &bytes.Buffer{}); !errors.Is(err, ErrEncoding) {
		t.Errorf("nil node err = %v", err)
	}
}

func TestColors(t *testing.T) {
	c := &Colors{
		Default: colorDefault,
		Map: map[Colorable]func(string, ...any) string{
			{Type: ir.MappingType, Attr: FieldColor}: func(s string, _ ...any) string { return "<" + s + ">" },
		},
	}
	got := MustString(ir.FromKeyVals([]ir.KeyVal{{Key: "k", Val: ir.FromString("v")}}), EncodeColors(c))
	if got != "{<k>: v}" {
		t.Errorf("colored = %q", got)
	}
	if NewColors().Get(ir.ScalarType, ValueColor) == nil {
		t.Error("no scalar value color")
	}
}
