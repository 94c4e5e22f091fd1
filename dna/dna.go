// Package dna provides the operations that DNA field descriptors compile
// down to: typed scalar access, symmetric vector and record enumeration,
// and a size accumulator that predicts the ending offset of a write without
// touching a buffer.
//
// Generated record glue implements the capability interfaces in this
// package and calls the helpers field by field:
//
//	func (r *Header) Read(rd *binio.Reader) error {
//		r.Magic = dna.Read[uint32](rd, binio.Big)
//		r.Name = rd.ReadString()
//		r.Entries, _ = dna.ReadRecords[Entry](rd, int(r.Count))
//		return rd.Err()
//	}
package dna

import (
	"github.com/dnakit/athena/binio"
	"github.com/dnakit/athena/yamldoc"
)

// BinaryReader reads a record from the binary wire format.
type BinaryReader interface {
	Read(*binio.Reader) error
}

// BinaryWriter writes a record to the binary wire format.
type BinaryWriter interface {
	Write(*binio.Writer) error
}

// BinarySizer returns the offset at which a write of the record starting at
// start would end.
type BinarySizer interface {
	BinarySize(start int) int
}

type BinaryRecord interface {
	BinaryReader
	BinaryWriter
	BinarySizer
}

// YAMLReader reads a record from the document reader's current frame.
type YAMLReader interface {
	ReadYAML(*yamldoc.Reader) error
}

// YAMLWriter writes a record into the document writer's current frame.
type YAMLWriter interface {
	WriteYAML(*yamldoc.Writer) error
}

// Typed records carry a schema name, stored under the reserved DNAType key
// of their YAML documents.
type Typed interface {
	DNAType() string
}

type YAMLRecord interface {
	YAMLReader
	YAMLWriter
	Typed
}

// Record is a record supporting both formats.
type Record interface {
	BinaryRecord
	YAMLRecord
}
