// Package binio provides the memory-backed binary streams records are
// serialized through.
//
// A Reader is a cursor over a byte slice: either a view over the caller's
// bytes (NewReader), an owned copy (NewReaderCopy), or a whole file loaded in
// blocks (LoadFile). A Writer is either in-place over a fixed caller buffer
// (NewWriter) or growable (NewGrowableWriter).
//
// Scalar operations come in four flavours:
//
//	r.ReadUint32()          // stream endian
//	r.ReadUint32Little()    // always little endian
//	r.ReadUint32Big()       // always big endian
//	r.ReadUint32Endian(e)   // e, or the stream endian for DefaultEndian
//
// Every scalar operation first moves a pending bit cursor to the next byte
// boundary. Bits are addressed LSB first with SeekBit, ReadBit and WriteBit.
//
// # Errors
//
// Running past the end of a Reader, or of a fixed-capacity Writer, records a
// sticky *BoundsError. Afterwards reads return zero values and writes are
// dropped; Err reports the first failure. This lets generated record code
// issue a run of field operations and check once:
//
//	func (h *Header) Read(r *binio.Reader) error {
//		h.Magic = r.ReadUint32Big()
//		h.Count = r.ReadUint16()
//		h.Name = r.ReadString()
//		return r.Err()
//	}
//
// Shrinking a buffer is a programmer error and panics with an
// *AllocationPolicyError.
package binio
