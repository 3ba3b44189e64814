package ewah

// sink receives the output of a two-cursor combinator walk. *Bitmap
// satisfies it directly for AND/OR/XOR/AND-NOT, which materialize a
// result. Intersects does not use a sink: it runs its own walk that
// stops at the first shared bit instead of storing anything.
type sink interface {
	takeEmptyWords(value bool, n uint64) (stop bool)
	takeLiteralWord(w uint64) (stop bool)
}

func (b *Bitmap) takeEmptyWords(value bool, n uint64) bool {
	b.appendEmptyWords(value, n)
	return false
}

func (b *Bitmap) takeLiteralWord(w uint64) bool {
	b.appendLiteralWord(w)
	return false
}

// opCursor is the combinator engine's per-operand cursor: the "prey" of
// spec's prey/predator walk. It tracks how many words remain in the
// current Marker's run and literal portions and hands them out in
// arbitrarily small chunks via takeRun/takeLiterals, advancing to the
// next Marker transparently when the current one is exhausted.
type opCursor struct {
	buf          []uint64
	limit        int
	pos          int
	runValue     bool
	runRemaining uint64
	litRemaining uint64
	litTotal     int // original LiteralCount of the marker at pos
	litNext      int // buffer index of the next unconsumed literal word
	done         bool
}

func newOpCursor(buf []uint64, limit int) *opCursor {
	c := &opCursor{buf: buf, limit: limit}
	c.loadMarker()
	return c
}

func (c *opCursor) loadMarker() {
	if c.pos >= c.limit {
		c.done = true
		return
	}
	m := readMarker(c.buf, c.pos)
	c.runValue = m.RunValue
	c.runRemaining = uint64(m.RunLength)
	c.litRemaining = uint64(m.LiteralCount)
	c.litTotal = int(m.LiteralCount)
	c.litNext = c.pos + 1
	if c.runRemaining == 0 && c.litRemaining == 0 {
		c.pos = c.pos + 1 + c.litTotal
		c.loadMarker()
	}
}

func (c *opCursor) advanceIfExhausted() {
	if c.runRemaining == 0 && c.litRemaining == 0 {
		c.pos = c.pos + 1 + c.litTotal
		c.loadMarker()
	}
}

// inRun reports whether the cursor's next word comes from a run (true)
// or a literal (false). Only meaningful while !done.
func (c *opCursor) inRun() bool { return c.runRemaining > 0 }

func (c *opCursor) takeRun(n uint64) {
	c.runRemaining -= n
	c.advanceIfExhausted()
}

func (c *opCursor) literalWord(offset uint64) uint64 {
	return c.buf[c.litNext+int(offset)]
}

func (c *opCursor) takeLiterals(n uint64) {
	c.litNext += int(n)
	c.litRemaining -= n
	c.advanceIfExhausted()
}

// op identifies which boolean combinator the engine below performs.
// andNot is asymmetric (a &^ b); the other three are commutative.
type op int

const (
	opAnd op = iota
	opOr
	opXor
	opAndNot
)

func combineRun(o op, a, b bool) bool {
	switch o {
	case opAnd:
		return a && b
	case opOr:
		return a || b
	case opXor:
		return a != b
	default: // opAndNot
		return a && !b
	}
}

// combineMixed computes the result of op applied to a uniform run word
// (runValue, replicated across all 64 bits) and a literal word, where
// runIsA reports whether the run side is the left-hand (a) operand.
func combineMixed(o op, runValue bool, lit uint64, runIsA bool) uint64 {
	allOnes := ^uint64(0)
	var runWord uint64
	if runValue {
		runWord = allOnes
	}
	if runIsA {
		return combineLiteral(o, runWord, lit)
	}
	return combineLiteral(o, lit, runWord)
}

func combineLiteral(o op, a, b uint64) uint64 {
	switch o {
	case opAnd:
		return a & b
	case opOr:
		return a | b
	case opXor:
		return a ^ b
	default: // opAndNot
		return a &^ b
	}
}

// tailIdentity reports whether op(x, absent) == x, i.e. whether the
// operation's identity element lets one operand's remainder be copied
// verbatim once the other operand is exhausted. True for OR and XOR, and
// for AND-NOT when the remainder belongs to a; false for AND, and for
// AND-NOT when the remainder belongs to b (the remainder of the result
// is then all zero).
func tailIdentity(o op, remainderIsA bool) (copyVerbatim bool, negate bool, fixed bool) {
	switch o {
	case opOr:
		return true, false, false
	case opXor:
		return true, false, false
	case opAnd:
		return false, false, false // remainder is all zero
	default: // opAndNot
		if remainderIsA {
			return true, false, false // a &^ (exhausted b) == a
		}
		return false, false, false // (exhausted a) &^ b == all zero
	}
}

// combine runs the two-cursor walk described in spec section 4.8: at
// each step it takes the smaller of the two cursors' current remaining
// counts (each cursor's run if it is in one, else its literals) as the
// step size, combines that many
// words, and feeds the result to dst. Once one side is exhausted, the
// other's remainder is resolved via tailIdentity.
func combine(o op, a, b *Bitmap) *Bitmap {
	dst := New()
	ca := newOpCursor(a.buffer, len(a.buffer))
	cb := newOpCursor(b.buffer, len(b.buffer))

	for !ca.done && !cb.done {
		switch {
		case ca.inRun() && cb.inRun():
			n := min64(ca.runRemaining, cb.runRemaining)
			if debugEnabled() {
				log.WithFields(logFields{"op": o, "prey": "run/run", "words": n}).Debug("combinator consuming run against run")
			}
			dst.takeEmptyWords(combineRun(o, ca.runValue, cb.runValue), n)
			ca.takeRun(n)
			cb.takeRun(n)

		case ca.inRun() && !cb.inRun():
			// The run belongs to a.
			n := min64(ca.runRemaining, cb.litRemaining)
			if debugEnabled() {
				log.WithFields(logFields{"op": o, "prey": "a-run/b-literal", "words": n}).Debug("combinator consuming run against literals")
			}
			for i := uint64(0); i < n; i++ {
				dst.takeLiteralWord(combineMixed(o, ca.runValue, cb.literalWord(i), true))
			}
			ca.takeRun(n)
			cb.takeLiterals(n)

		case !ca.inRun() && cb.inRun():
			// The run belongs to b.
			n := min64(ca.litRemaining, cb.runRemaining)
			if debugEnabled() {
				log.WithFields(logFields{"op": o, "prey": "b-run/a-literal", "words": n}).Debug("combinator consuming run against literals")
			}
			for i := uint64(0); i < n; i++ {
				dst.takeLiteralWord(combineMixed(o, cb.runValue, ca.literalWord(i), false))
			}
			ca.takeLiterals(n)
			cb.takeRun(n)

		default:
			n := min64(ca.litRemaining, cb.litRemaining)
			if debugEnabled() {
				log.WithFields(logFields{"op": o, "prey": "literal/literal", "words": n}).Debug("combinator consuming literals against literals")
			}
			for i := uint64(0); i < n; i++ {
				dst.takeLiteralWord(combineLiteral(o, ca.literalWord(i), cb.literalWord(i)))
			}
			ca.takeLiterals(n)
			cb.takeLiterals(n)
		}
	}

	drainTail(dst, o, ca, a.lengthInBits, true)
	drainTail(dst, o, cb, b.lengthInBits, false)

	dst.lengthInBits = max64(a.lengthInBits, b.lengthInBits)
	return dst
}

// drainTail disposes of whatever a single exhausted-vs-not cursor still
// holds once its counterpart has run dry, per tailIdentity. The literal
// verbatim-copy case is the consumer spec section 4.8 describes for the
// bulk literal-splicing primitive: rather than re-appending one literal
// word at a time, the remaining run of literal words is spliced straight
// from the source buffer via appendLiteralRun.
func drainTail(dst *Bitmap, o op, c *opCursor, _ uint64, isA bool) {
	copyVerbatim, negate, _ := tailIdentity(o, isA)
	for !c.done {
		if c.inRun() {
			n := c.runRemaining
			value := c.runValue
			if copyVerbatim {
				if negate {
					value = !value
				}
				dst.takeEmptyWords(value, n)
			} else {
				dst.takeEmptyWords(false, n)
			}
			if debugEnabled() {
				log.WithFields(logFields{"words": n, "value": value, "verbatim": copyVerbatim}).Debug("combinator drained trailing run")
			}
			c.takeRun(n)
		} else {
			n := c.litRemaining
			if copyVerbatim {
				dst.appendLiteralRun(c.buf, c.litNext, int(n), negate)
			} else {
				for i := uint64(0); i < n; i++ {
					dst.takeLiteralWord(0)
				}
			}
			if debugEnabled() {
				log.WithFields(logFields{"words": n, "negate": negate, "verbatim": copyVerbatim}).Debug("combinator drained trailing literals")
			}
			c.takeLiterals(n)
		}
	}
}

func min64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}

// And returns a new Bitmap holding the bitwise intersection of a and b.
// Neither operand is modified.
func And(a, b *Bitmap) *Bitmap { return combine(opAnd, a, b) }

// Or returns a new Bitmap holding the bitwise union of a and b.
func Or(a, b *Bitmap) *Bitmap { return combine(opOr, a, b) }

// Xor returns a new Bitmap holding the bitwise symmetric difference.
func Xor(a, b *Bitmap) *Bitmap { return combine(opXor, a, b) }

// AndNot returns a new Bitmap holding the bits set in a but not in b.
func AndNot(a, b *Bitmap) *Bitmap { return combine(opAndNot, a, b) }

// And is a convenience method equivalent to And(b, other).
func (b *Bitmap) And(other *Bitmap) *Bitmap { return And(b, other) }

// Or is a convenience method equivalent to Or(b, other).
func (b *Bitmap) Or(other *Bitmap) *Bitmap { return Or(b, other) }

// Xor is a convenience method equivalent to Xor(b, other).
func (b *Bitmap) Xor(other *Bitmap) *Bitmap { return Xor(b, other) }

// AndNot is a convenience method equivalent to AndNot(b, other).
func (b *Bitmap) AndNot(other *Bitmap) *Bitmap { return AndNot(b, other) }

// Intersects reports whether a and b share any set bit, without
// materializing the intersection. It walks both cursors exactly like
// combine's opAnd case but returns true the instant it sees any
// contribution that isn't provably all-zero, and never allocates.
func Intersects(a, b *Bitmap) bool {
	ca := newOpCursor(a.buffer, len(a.buffer))
	cb := newOpCursor(b.buffer, len(b.buffer))

	for !ca.done && !cb.done {
		switch {
		case ca.inRun() && cb.inRun():
			n := min64(ca.runRemaining, cb.runRemaining)
			if ca.runValue && cb.runValue {
				return true
			}
			ca.takeRun(n)
			cb.takeRun(n)

		case ca.inRun() && !cb.inRun():
			n := min64(ca.runRemaining, cb.litRemaining)
			if ca.runValue {
				for i := uint64(0); i < n; i++ {
					if cb.literalWord(i) != 0 {
						return true
					}
				}
			}
			ca.takeRun(n)
			cb.takeLiterals(n)

		case !ca.inRun() && cb.inRun():
			n := min64(ca.litRemaining, cb.runRemaining)
			if cb.runValue {
				for i := uint64(0); i < n; i++ {
					if ca.literalWord(i) != 0 {
						return true
					}
				}
			}
			ca.takeLiterals(n)
			cb.takeRun(n)

		default:
			n := min64(ca.litRemaining, cb.litRemaining)
			for i := uint64(0); i < n; i++ {
				if ca.literalWord(i)&cb.literalWord(i) != 0 {
					return true
				}
			}
			ca.takeLiterals(n)
			cb.takeLiterals(n)
		}
	}
	return false
}

// Intersects is a convenience method equivalent to Intersects(b, other).
func (b *Bitmap) Intersects(other *Bitmap) bool { return Intersects(b, other) }
