// Package encode writes ir node trees as YAML text.
//
// The style of each sequence and mapping is chosen from its contents:
//
//   - a collection with a non-scalar child, or with a scalar containing a
//     newline, is written in block style;
//   - otherwise each scalar child weighs max(1, len/10) and a total weight
//     above 6 selects block style;
//   - everything else, including every empty collection, is written in flow
//     style on one line.
//
// Scalars containing newlines become literal block scalars (|, |- or |+
// depending on trailing newlines). Scalars that a YAML reader would not read
// back verbatim are double quoted; see token.NeedsQuote.
package encode
