// Package libdiff compares document trees.
//
// Diff walks two trees and reports the fields and elements that were
// inserted, deleted or replaced, addressed by paths like "$.items[2].x".
// Sequences are aligned with a text diff over per-element summaries, so an
// element inserted in the middle of a vector is reported once rather than
// as a replacement of every element after it.
package libdiff
