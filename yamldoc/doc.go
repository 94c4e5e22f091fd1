// Package yamldoc reads and writes records as YAML documents.
//
// A Reader navigates an immutable ir tree with a stack of frames. Generated
// record glue enters sub-records and vectors by name and reads typed
// scalars from the frame on top:
//
//	r, err := yamldoc.Parse(data)
//	if !r.ClassType("Header") { ... }
//	h.Magic = r.ReadUint32("magic")
//	if n, ok := r.EnterSubVector("entries"); ok {
//		h.Entries = make([]Entry, n)
//		for i := range h.Entries {
//			if r.EnterSubRecord("") {
//				h.Entries[i].ReadYAML(r)
//				r.LeaveSubRecord()
//			}
//		}
//		r.LeaveSubVector()
//	}
//
// Inside a sequence frame names are ignored and each read takes the next
// element. Missing fields do not stop a read: they are logged, counted,
// and read as the zero value.
//
// A Writer builds a tree the same way and emits it once with Finish. When a
// sub-record ends up holding a single unnamed field, the Writer replaces the
// sub-record by that field; the Reader undoes this on EnterSubRecord.
package yamldoc
