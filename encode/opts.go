package encode

type EncodeOption func(*EncState)

// Indent sets the number of spaces per nesting level, 1 to 9.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// DocStart writes a "---" document marker before the tree.
func DocStart(v bool) EncodeOption {
	return func(es *EncState) { es.docStart = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}
