// Package athena serializes DNA records in two formats: a flat, field-ordered
// binary wire format and a YAML document carrying the record's schema name
// under the reserved DNAType key.
//
// Records implement the capability interfaces of package dna, usually
// through generated glue. The functions here wire a record to a stream:
//
//	data, err := athena.MarshalBinary(&hdr)
//	...
//	var back Header
//	err = athena.UnmarshalYAML(text, &back)
//
// The lower layers are usable on their own: binio for byte streams, dna for
// field helpers and sizing, yamldoc for document navigation, and ir, parse
// and encode for the YAML node tree.
package athena
