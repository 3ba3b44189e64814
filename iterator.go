package ewah

import "math/bits"

// Iterator yields the positions of set bits in ascending order. It is
// lazy (computes one batch of positions at a time from the compressed
// buffer), single-pass, and finite (Next returns false once the
// underlying Bitmap is exhausted). A zero-value Iterator is not usable;
// obtain one via Bitmap.Iterator.
type Iterator struct {
	buf    []uint64
	limit  int
	length uint64 // lengthInBits of the Bitmap at the time the Iterator was created
	cur    *wordCursor
	base   uint64 // bit position of the start of the Marker most recently loaded
	batch  []uint64
	bi     int
}

// Iterator returns a fresh ascending position iterator over b. Mutating
// b after creating an Iterator and before exhausting it is not supported.
func (b *Bitmap) Iterator() *Iterator {
	it := &Iterator{buf: b.buffer, limit: len(b.buffer), length: b.lengthInBits}
	it.Reset()
	return it
}

// Reset rewinds the iterator back to the first position, re-using its
// already-allocated prefetch buffer. It is the only supported way to
// restart an Iterator once exhausted or partway consumed.
func (it *Iterator) Reset() {
	it.cur = newWordCursor(it.buf, it.limit)
	it.base = 0
	it.batch = it.batch[:0]
	it.bi = -1
}

// Next advances the iterator and reports whether a position is
// available; call Position to read it.
func (it *Iterator) Next() bool {
	it.bi++
	for it.bi >= len(it.batch) {
		if !it.fill() {
			return false
		}
		it.bi = 0
	}
	return true
}

// Position returns the position most recently made available by Next.
// Calling Position without a preceding successful Next is a programming
// error and panics, matching the teacher's own fail-fast convention for
// iterator misuse.
func (it *Iterator) Position() uint64 {
	if it.bi < 0 || it.bi >= len(it.batch) {
		panic("ewah: Position called without a successful Next")
	}
	return it.batch[it.bi]
}

// fill decodes the next Marker into it.batch, skipping markers that
// contribute nothing (a run-of-zeros with no literals). It returns false
// once the underlying buffer is exhausted.
func (it *Iterator) fill() bool {
	it.batch = it.batch[:0]

	for it.cur.hasNext() {
		pos := it.cur.advance()
		m := readMarker(it.buf, pos)
		base := it.base
		lit := it.cur.literalBase()

		if m.RunValue && m.RunLength > 0 {
			for w := uint64(0); w < uint64(m.RunLength); w++ {
				wordBase := base + w*64
				for bitIdx := 0; bitIdx < 64; bitIdx++ {
					// Positions at or past lengthInBits are padding and must
					// never be yielded.
					if p := wordBase + uint64(bitIdx); p < it.length {
						it.batch = append(it.batch, p)
					}
				}
			}
		}
		base += 64 * uint64(m.RunLength)

		for i := 0; i < int(m.LiteralCount); i++ {
			word := it.buf[lit+i]
			wordBase := base + uint64(i)*64
			for word != 0 {
				tz := bits.TrailingZeros64(word)
				// I2 guarantees the tail literal's padding bits are already
				// zero; this guard is defense-in-depth, not load-bearing.
				if p := wordBase + uint64(tz); p < it.length {
					it.batch = append(it.batch, p)
				}
				word &= word - 1
			}
		}
		base += 64 * uint64(m.LiteralCount)
		it.base = base

		if len(it.batch) > 0 {
			return true
		}
	}
	return false
}

