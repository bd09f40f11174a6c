package glob

import "errors"

// ErrEndOfStream signals the cursor ran off the end of the pattern. The
// compiler catches this to terminate parsing loops; it is never surfaced to
// a library caller as a pattern-compile error (§7).
var ErrEndOfStream = errors.New("glob: end of pattern stream")

// CharStream is a position-tracked cursor over a decoded pattern (§4.1). It
// operates on runes so byte patterns (already decoded to their Latin-1
// code-unit runes, §3) and text patterns share the same cursor logic.
type CharStream struct {
	runes []rune
	pos   int
}

// NewCharStream creates a cursor over pattern, starting at position 0.
func NewCharStream(pattern string) *CharStream {
	return &CharStream{runes: []rune(pattern)}
}

// Len returns the total number of code units in the stream.
func (c *CharStream) Len() int { return len(c.runes) }

// Pos returns the current absolute cursor index.
func (c *CharStream) Pos() int { return c.pos }

// AtEnd reports whether the cursor has reached the end of the stream.
func (c *CharStream) AtEnd() bool { return c.pos >= len(c.runes) }

// Peek returns the rune at the cursor without advancing it. It returns
// ErrEndOfStream once the cursor is at or past the end.
func (c *CharStream) Peek() (rune, error) {
	return c.PeekAt(0)
}

// PeekAt returns the rune offset code units ahead of the cursor, without
// advancing it.
func (c *CharStream) PeekAt(offset int) (rune, error) {
	idx := c.pos + offset
	if idx < 0 || idx >= len(c.runes) {
		return 0, ErrEndOfStream
	}
	return c.runes[idx], nil
}

// Next returns the rune at the cursor and advances past it.
func (c *CharStream) Next() (rune, error) {
	r, err := c.Peek()
	if err != nil {
		return 0, err
	}
	c.pos++
	return r, nil
}

// Advance moves the cursor forward by n code units (never past the end).
func (c *CharStream) Advance(n int) {
	c.pos += n
	if c.pos > len(c.runes) {
		c.pos = len(c.runes)
	}
}

// Rewind moves the cursor backward by k code units (never before zero).
func (c *CharStream) Rewind(k int) {
	c.pos -= k
	if c.pos < 0 {
		c.pos = 0
	}
}

// SeekTo moves the cursor to an absolute index.
func (c *CharStream) SeekTo(idx int) { c.pos = idx }

// Remaining returns the decoded text from the cursor to the end of stream.
func (c *CharStream) Remaining() string { return string(c.runes[c.pos:]) }

// Slice returns the decoded text between two absolute indices.
func (c *CharStream) Slice(start, end int) string { return string(c.runes[start:end]) }
