package encode

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dnakit/athena/ir"
	"github.com/dnakit/athena/token"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	line     int
	indent   int
	docStart bool

	Color func(ir.Type, ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.indent < 1 || es.indent > 9 {
		return fmt.Errorf("%w: indent %d not in 1..9", ErrEncoding, es.indent)
	}
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrEncoding)
	}
	if es.docStart {
		if err := writeLine(w, es, applyColor(es, node.Type, DocColor, "---")); err != nil {
			return err
		}
	}
	switch {
	case node.Type == ir.ScalarType:
		return encodeScalar(node, w, es, "", "")
	case Flow(node):
		return writeLine(w, es, flowString(node, es))
	case node.Type == ir.MappingType:
		return encodeMapping(node, w, es, "", "")
	case node.Type == ir.SequenceType:
		return encodeSequence(node, w, es, "", "")
	}
	return fmt.Errorf("%w: unknown node type %v", ErrEncoding, node.Type)
}

// Flow reports whether a sequence or mapping is written in flow style.
func Flow(node *ir.Node) bool {
	if node.Type == ir.ScalarType {
		return false
	}
	weight := 0
	for _, v := range node.Values {
		if v.Type != ir.ScalarType || doBlockLit(v) {
			return false
		}
		weight += Weight(v.String)
	}
	return weight <= 6
}

// Weight is the contribution of one scalar to the style decision of its
// parent.
func Weight(s string) int {
	return max(1, len(s)/10)
}

// Helper functions for writing

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func writeLine(w io.Writer, es *EncState, s string) error {
	es.line++
	return writeString(w, s+"\n")
}

func (es *EncState) indentString() string {
	return strings.Repeat(" ", es.indent)
}

// encodeMapping writes a non-empty mapping in block style. The first field
// starts after lead, which is already positioned on the current line; the
// others start on new lines indented by prefix.
func encodeMapping(node *ir.Node, w io.Writer, es *EncState, lead, prefix string) error {
	for i, v := range node.Values {
		p := prefix
		if i == 0 {
			p = lead
		}
		k := node.Fields[i].String
		kv := quoteString(k, false, es)
		kv = applyColor(es, ir.MappingType, FieldColor, kv)
		sep := applyColor(es, ir.MappingType, SepColor, ":")
		if err := writeString(w, p+kv+sep); err != nil {
			return err
		}
		if err := encodeValue(v, w, es, prefix); err != nil {
			return err
		}
	}
	return nil
}

// encodeSequence writes a non-empty sequence in block style.
func encodeSequence(node *ir.Node, w io.Writer, es *EncState, lead, prefix string) error {
	dash := applyColor(es, ir.SequenceType, SepColor, "-")
	for i, v := range node.Values {
		p := prefix
		if i == 0 {
			p = lead
		}
		if err := writeString(w, p+dash); err != nil {
			return err
		}
		switch {
		case v.Type == ir.ScalarType:
			if err := encodeScalar(v, w, es, " ", prefix); err != nil {
				return err
			}
		case Flow(v):
			if err := writeLine(w, es, " "+flowString(v, es)); err != nil {
				return err
			}
		case v.Type == ir.MappingType:
			if err := encodeMapping(v, w, es, " ", prefix+"  "); err != nil {
				return err
			}
		default:
			if err := encodeSequence(v, w, es, " ", prefix+"  "); err != nil {
				return err
			}
		}
	}
	return nil
}

// encodeValue writes the value of a mapping field whose key, at column
// len(base), has just been written.
func encodeValue(v *ir.Node, w io.Writer, es *EncState, base string) error {
	switch {
	case v.Type == ir.ScalarType:
		return encodeScalar(v, w, es, " ", base)
	case Flow(v):
		return writeLine(w, es, " "+flowString(v, es))
	}
	if err := writeLine(w, es, ""); err != nil {
		return err
	}
	child := base + es.indentString()
	if v.Type == ir.MappingType {
		return encodeMapping(v, w, es, child, child)
	}
	return encodeSequence(v, w, es, child, child)
}

// encodeScalar writes lead and the scalar, ending the line. base is the
// indentation of the key or dash the scalar belongs to.
func encodeScalar(node *ir.Node, w io.Writer, es *EncState, lead, base string) error {
	if doBlockLit(node) {
		return encodeBlockLit(node, w, es, lead, base)
	}
	v := applyStringColor(es, quoteString(node.String, false, es))
	return writeLine(w, es, lead+v)
}

func encodeBlockLit(node *ir.Node, w io.Writer, es *EncState, lead, base string) error {
	v := node.String
	trailing := len(v) - len(strings.TrimRight(v, "\n"))
	startBLit := "|"
	body := strings.TrimRight(v, "\n")
	switch {
	case trailing == 0:
		startBLit += "-"
	case trailing == 1 && body != "":
		v = v[:len(v)-1]
	default:
		startBLit += "+"
		v = v[:len(v)-1]
	}
	lines := strings.Split(v, "\n")
	for _, ln := range lines {
		if ln == "" {
			continue
		}
		if ln[0] == ' ' {
			startBLit += strconv.Itoa(es.indent)
		}
		break
	}
	hdr := applyColor(es, ir.ScalarType, SepColor, startBLit)
	if err := writeLine(w, es, lead+hdr); err != nil {
		return err
	}
	content := base + es.indentString()
	for _, ln := range lines {
		if ln == "" {
			if err := writeLine(w, es, ""); err != nil {
				return err
			}
			continue
		}
		if err := writeLine(w, es, content+applyColor(es, ir.ScalarType, LiteralMultiColor, ln)); err != nil {
			return err
		}
	}
	return nil
}

func flowString(node *ir.Node, es *EncState) string {
	sep := applyColor(es, node.Type, SepColor, ", ")
	parts := make([]string, len(node.Values))
	for i, v := range node.Values {
		s := applyStringColor(es, quoteString(v.String, true, es))
		if node.Type == ir.MappingType {
			k := applyColor(es, ir.MappingType, FieldColor, quoteString(node.Fields[i].String, true, es))
			s = k + applyColor(es, ir.MappingType, SepColor, ":") + " " + s
		}
		parts[i] = s
	}
	open, closer := "[", "]"
	if node.Type == ir.MappingType {
		open, closer = "{", "}"
	}
	open = applyColor(es, node.Type, SepColor, open)
	closer = applyColor(es, node.Type, SepColor, closer)
	return open + strings.Join(parts, sep) + closer
}

// doBlockLit reports whether a scalar is written as a literal block. Text
// with line breaks other than \n, other unprintable characters, or a line
// starting with a tab is double quoted instead.
func doBlockLit(node *ir.Node) bool {
	if node.Type != ir.ScalarType || !strings.Contains(node.String, "\n") {
		return false
	}
	for _, line := range strings.Split(node.String, "\n") {
		if strings.HasPrefix(line, "\t") {
			return false
		}
	}
	for _, r := range node.String {
		if r != '\n' && !token.Printable(r) {
			return false
		}
	}
	return true
}

// String quoting helper

func quoteString(v string, flow bool, es *EncState) string {
	if token.NeedsQuote(v, flow) {
		return token.Quote(v, false)
	}
	return v
}

// Color application helpers

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

func applyStringColor(es *EncState, v string) string {
	attr := LiteralSingleColor
	if strings.HasPrefix(v, "\"") {
		attr = ValueColor
	}
	return applyColor(es, ir.ScalarType, attr, v)
}
