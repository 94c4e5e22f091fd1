// Package stream turns YAML text into a balanced stream of structural
// events and builds ir node trees from such streams.
//
// A Decoder walks the documents of its input with gopkg.in/yaml.v3 and
// emits, per document, events of the form
//
//	BeginMapping Key("a") Scalar("1") Key("c") BeginSequence Scalar("x") EndSequence EndMapping
//
// Aliases are expanded in place. Keys must be scalars.
//
// A State checks that a sequence of events is balanced; a Builder consumes
// events into an *ir.Node. Any imbalance is reported as an *Error, which
// wraps ErrParse.
package stream
