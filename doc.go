// Command-line exploration of this package lives in cmd/ewahctl.
//
// See the package comment in bitmap.go for the data structure's
// contract; this file collects cross-cutting notes that don't belong to
// any single type.
//
// Word-stream layout: a Bitmap's buffer is a flat []uint64 read as a
// sequence of blocks, each a Marker word followed by the literal words
// it announces. Every exported operation that walks a buffer — Get,
// Cardinality, Not, Iterator, And/Or/Xor/AndNot, Intersects — does so
// through one of two small cursor types (wordCursor in cursor.go for
// whole-marker scans, opCursor in combinator.go for the two-operand
// set-algebra walk) rather than re-deriving the layout ad hoc.

package ewah
