package ewah

// wordCursor walks a buffer marker by marker, front to back. It is the
// simple, non-consuming traversal used by whole-bitmap scans (Cardinality,
// Get, Not, String); the combinator engine in combinator.go layers a
// partial-consumption view on top of the same buffer layout for the
// two-cursor set-algebra walk.
type wordCursor struct {
	buf         []uint64
	limit       int
	pos         int
	lastMarker  int
}

func newWordCursor(buf []uint64, limit int) *wordCursor {
	return &wordCursor{buf: buf, limit: limit}
}

func (c *wordCursor) hasNext() bool {
	return c.pos < c.limit
}

// advance returns the position of the next Marker and moves past it and
// its literal words, leaving literalBase() valid until the next advance.
func (c *wordCursor) advance() int {
	pos := c.pos
	m := readMarker(c.buf, pos)
	c.lastMarker = pos
	c.pos = pos + 1 + int(m.LiteralCount)
	return pos
}

// literalBase returns the buffer index of the first literal word that
// belongs to the Marker most recently returned by advance.
func (c *wordCursor) literalBase() int {
	return c.lastMarker + 1
}
