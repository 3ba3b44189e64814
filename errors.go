package ewah

import "github.com/pkg/errors"

// Domain violations are reported as boolean "did not apply" results
// throughout this package (see Bitmap.Set, Bitmap.SetLength); they never
// surface as errors. The sentinels below cover a malformed or truncated
// compact serialization, plus ErrDescendingPositions, which the
// FromPositions constructor returns for input that is not strictly
// ascending.
var (
	// ErrTruncated is returned when a compact byte stream ends before its
	// declared header or buffer is fully present.
	ErrTruncated = errors.New("ewah: truncated compact bitmap stream")

	// ErrCorruptHeader is returned when the header's declared fields are
	// internally inconsistent (negative sizes, word_count that can't hold
	// the declared active marker).
	ErrCorruptHeader = errors.New("ewah: corrupt compact bitmap header")

	// ErrCorruptMarker is returned when the Marker at active_marker_position
	// does not describe a well-formed block ending exactly at word_count.
	ErrCorruptMarker = errors.New("ewah: active marker position is not well-formed")

	// ErrDescendingPositions is returned by FromPositions when the input
	// is not strictly ascending.
	ErrDescendingPositions = errors.New("ewah: positions must be strictly ascending")
)
