// Package ir provides the node tree behind YAML documents.
//
// A Node is a recursive tagged union. The Type field says which of the other
// fields are meaningful:
//
//   - ScalarType: the text is in String
//   - SequenceType: the elements are in Values
//   - MappingType: Fields[i] is the key of Values[i]; keys are scalar nodes
//
// Mapping keys need not be unique. Lookups return the first match and
// insertion order is preserved. A parent owns its children exclusively:
// there are no parent pointers and no sharing between trees, so Clone is a
// plain deep copy.
//
//	rec := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "a", Val: ir.FromString("0x1234")},
//	    {Key: "c", Val: ir.FromSlice([]*ir.Node{ir.FromString("0x01")})},
//	})
//	a := ir.Get(rec, "a")
//
// The package holds no I/O; see parse and encode.
package ir
