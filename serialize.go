package ewah

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// header is the fixed-size prefix of the compact wire format: three
// signed 32-bit fields — length_in_bits, word_count, and
// active_marker_position (the buffer index of the Marker currently
// accepting appends).
const headerSize = 4 + 4 + 4

// WriteTo serializes b in the compact little-endian format described
// above: the fixed header followed by word_count
// raw 64-bit words. It implements io.WriterTo.
func (b *Bitmap) WriteTo(w io.Writer) (int64, error) {
	var hdr [headerSize]byte
	binary.LittleEndian.PutUint32(hdr[0:4], uint32(int32(b.lengthInBits)))
	binary.LittleEndian.PutUint32(hdr[4:8], uint32(int32(len(b.buffer))))
	binary.LittleEndian.PutUint32(hdr[8:12], uint32(int32(b.activeMarkerPosition)))

	n, err := w.Write(hdr[:])
	if err != nil {
		return int64(n), errors.Wrap(err, "ewah: writing header")
	}
	total := int64(n)

	buf := make([]byte, 8*len(b.buffer))
	for i, word := range b.buffer {
		binary.LittleEndian.PutUint64(buf[i*8:], word)
	}
	n, err = w.Write(buf)
	total += int64(n)
	if err != nil {
		return total, errors.Wrap(err, "ewah: writing buffer")
	}
	return total, nil
}

// ReadFrom decodes a compact stream previously produced by WriteTo into
// b, replacing its contents. It implements io.ReaderFrom and validates
// the header and the active marker before accepting the decoded state.
func (b *Bitmap) ReadFrom(r io.Reader) (int64, error) {
	var hdr [headerSize]byte
	n, err := io.ReadFull(r, hdr[:])
	if err != nil {
		return int64(n), errors.Wrap(ErrTruncated, "ewah: reading header")
	}
	total := int64(n)

	lengthInBits := int32(binary.LittleEndian.Uint32(hdr[0:4]))
	wordCount := int32(binary.LittleEndian.Uint32(hdr[4:8]))
	activeMarkerPosition := int32(binary.LittleEndian.Uint32(hdr[8:12]))

	if lengthInBits < 0 || wordCount <= 0 || activeMarkerPosition < 0 || activeMarkerPosition >= wordCount {
		return total, errors.WithStack(ErrCorruptHeader)
	}

	buf := make([]byte, 8*int(wordCount))
	n, err = io.ReadFull(r, buf)
	total += int64(n)
	if err != nil {
		return total, errors.Wrap(ErrTruncated, "ewah: reading buffer")
	}

	words := make([]uint64, wordCount)
	for i := range words {
		words[i] = binary.LittleEndian.Uint64(buf[i*8:])
	}

	if err := validateActiveMarker(words, int(activeMarkerPosition)); err != nil {
		return total, err
	}

	b.buffer = words
	b.lengthInBits = uint64(lengthInBits)
	b.activeMarkerPosition = int(activeMarkerPosition)
	return total, nil
}

// validateActiveMarker confirms the Marker at pos describes a block that
// ends exactly at the end of the buffer — the one structural invariant a
// corrupt or truncated stream is most likely to violate.
func validateActiveMarker(words []uint64, pos int) error {
	m := unpackMarker(words[pos])
	end := pos + 1 + int(m.LiteralCount)
	if end != len(words) {
		return errors.WithStack(ErrCorruptMarker)
	}
	return nil
}

// MarshalBinary returns the compact serialization of b.
func (b *Bitmap) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := b.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary replaces b's contents with the bitmap encoded in data.
func (b *Bitmap) UnmarshalBinary(data []byte) error {
	_, err := b.ReadFrom(bytes.NewReader(data))
	return err
}
