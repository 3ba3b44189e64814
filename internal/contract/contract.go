// Package contract describes the pluggable-bitmap-implementation surface
// that ewah.Bitmap satisfies. The teacher this package is adapted from
// (jfbus/bitmap's ewah package) depended on an external interface package,
// github.com/zhenjl/bitmap, so that multiple bitmap encodings could be
// swapped behind one interface. That external module isn't something we
// can responsibly pin a version of here, so the interface lives in this
// module instead; the segregation it provides is still exercised by
// ewah.Bitmap's compile-time assertion.
package contract

// Bitmap is the shape any compressed-bitmap implementation in this module
// family is expected to expose.
type Bitmap interface {
	Set(i uint64) bool
	Get(i uint64) bool
	Cardinality() uint64
	Size() uint64
	SizeInBytes() uint64
	Not()
}
