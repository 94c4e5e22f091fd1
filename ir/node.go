package ir

type Node struct {
	Type   Type
	Fields []*Node
	Values []*Node
	String string
}

type KeyVal struct {
	Key string
	Val *Node
}

func FromString(v string) *Node {
	return &Node{Type: ScalarType, String: v}
}

func FromSlice(ySlice []*Node) *Node {
	res := NewSequence()
	res.Values = append(res.Values, ySlice...)
	return res
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{
		Type:   MappingType,
		Fields: make([]*Node, len(kvs)),
		Values: make([]*Node, len(kvs)),
	}
	for i := range kvs {
		res.Fields[i] = FromString(kvs[i].Key)
		res.Values[i] = kvs[i].Val
	}
	return res
}

func NewMapping() *Node {
	return &Node{Type: MappingType, Fields: []*Node{}, Values: []*Node{}}
}

func NewSequence() *Node {
	return &Node{Type: SequenceType, Values: []*Node{}}
}

// Get returns the value of the first field named field, or nil.
func Get(y *Node, field string) *Node {
	if y == nil || y.Type != MappingType {
		return nil
	}
	for i, f := range y.Fields {
		if f.String == field {
			return y.Values[i]
		}
	}
	return nil
}

// Len returns the number of elements or fields; scalars have none.
func (y *Node) Len() int {
	return len(y.Values)
}

// Append adds v as the last element of a sequence.
func (y *Node) Append(v *Node) {
	y.Values = append(y.Values, v)
}

// AppendField adds a field to a mapping, even if one with the same key
// already exists.
func (y *Node) AppendField(key string, v *Node) {
	y.Fields = append(y.Fields, FromString(key))
	y.Values = append(y.Values, v)
}

// Set replaces the value of the first field named key, or appends one.
func (y *Node) Set(key string, v *Node) {
	for i, f := range y.Fields {
		if f.String == key {
			y.Values[i] = v
			return
		}
	}
	y.AppendField(key, v)
}

// KeyVals returns the fields of a mapping in order.
func (y *Node) KeyVals() []KeyVal {
	res := make([]KeyVal, len(y.Fields))
	for i := range y.Fields {
		res[i] = KeyVal{Key: y.Fields[i].String, Val: y.Values[i]}
	}
	return res
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	dst := &Node{Type: y.Type, String: y.String}
	if y.Fields != nil {
		dst.Fields = make([]*Node, len(y.Fields))
		for i, f := range y.Fields {
			dst.Fields[i] = f.Clone()
		}
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			dst.Values[i] = v.Clone()
		}
	}
	return dst
}

// Visit calls f before (isPost false) and after (isPost true) visiting the
// children of y. Children are visited only if the pre call returns true.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

// Equal reports whether a and b have the same type, text, keys and
// children, in the same order.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case ScalarType:
		return a.String == b.String
	case MappingType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for i := range a.Fields {
			if a.Fields[i].String != b.Fields[i].String {
				return false
			}
		}
	}
	if len(a.Values) != len(b.Values) {
		return false
	}
	for i := range a.Values {
		if !Equal(a.Values[i], b.Values[i]) {
			return false
		}
	}
	return true
}
