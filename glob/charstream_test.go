package glob

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCharStreamWalksRunes(t *testing.T) {
	cs := NewCharStream("ab*")

	assert.Equal(t, 3, cs.Len())
	assert.Equal(t, 0, cs.Pos())
	assert.False(t, cs.AtEnd())

	r, err := cs.Peek()
	assert.Nil(t, err)
	assert.Equal(t, 'a', r)
	assert.Equal(t, 0, cs.Pos(), "Peek must not advance the cursor")

	r, err = cs.Next()
	assert.Nil(t, err)
	assert.Equal(t, 'a', r)
	assert.Equal(t, 1, cs.Pos())

	r, err = cs.PeekAt(1)
	assert.Nil(t, err)
	assert.Equal(t, '*', r)

	cs.Advance(2)
	assert.True(t, cs.AtEnd())

	_, err = cs.Next()
	assert.ErrorIs(t, err, ErrEndOfStream)
}

func TestCharStreamRewindAndSeek(t *testing.T) {
	cs := NewCharStream("xyz")

	cs.Advance(3)
	assert.True(t, cs.AtEnd())

	cs.Rewind(1)
	assert.Equal(t, 2, cs.Pos())

	r, err := cs.Peek()
	assert.Nil(t, err)
	assert.Equal(t, 'z', r)

	cs.SeekTo(0)
	assert.Equal(t, "xyz", cs.Remaining())
	assert.Equal(t, "xy", cs.Slice(0, 2))
}

func TestCharStreamRewindNeverGoesNegative(t *testing.T) {
	cs := NewCharStream("a")
	cs.Rewind(5)
	assert.Equal(t, 0, cs.Pos())
}
