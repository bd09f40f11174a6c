package glob_test

import (
	"testing"

	"github.com/koblas/wcglob/glob"
	"github.com/stretchr/testify/assert"
)

func TestCompileBytesMatchesRawBytePattern(t *testing.T) {
	m, err := glob.CompileBytes([][]byte{[]byte("data-[0-9][0-9].bin")}, glob.Flags(0))
	assert.Nil(t, err)

	ok, err := m.MatchBytes([]byte("data-42.bin"))
	assert.Nil(t, err)
	assert.True(t, ok)

	ok, err = m.MatchBytes([]byte("data-xy.bin"))
	assert.Nil(t, err)
	assert.False(t, ok)
}

func TestCompileBytesHandlesHighByteValues(t *testing.T) {
	m, err := glob.CompileBytes([][]byte{[]byte("*")}, glob.Flags(0))
	assert.Nil(t, err)

	ok, err := m.MatchBytes([]byte{0x80, 0xFF, 'a'})
	assert.Nil(t, err)
	assert.True(t, ok, "Latin-1 decoding must round-trip every byte value, including non-ASCII")
}

func TestCompileBytesUsesASCIIPosixClasses(t *testing.T) {
	m, err := glob.CompileBytes([][]byte{[]byte("[[:digit:]]+(b)")}, glob.EXTMATCH)
	assert.Nil(t, err)

	ok, err := m.MatchBytes([]byte("5bbb"))
	assert.Nil(t, err)
	assert.True(t, ok)
}

func TestCompileBytesMatchesHighByteInPattern(t *testing.T) {
	// The class body itself contains a raw 0x80-0xFF byte: only a
	// pattern-side Latin-1 decode (not just a subject-side one) lets this
	// byte land in the compiled character class as the single code unit
	// it represents, rather than being mis-decoded as invalid UTF-8.
	m, err := glob.CompileBytes([][]byte{{'[', 0x80, '-', 0xFF, ']', '.', 'b', 'i', 'n'}}, glob.Flags(0))
	assert.Nil(t, err)

	ok, err := m.MatchBytes([]byte{0xA0, '.', 'b', 'i', 'n'})
	assert.Nil(t, err)
	assert.True(t, ok)

	ok, err = m.MatchBytes([]byte{0x10, '.', 'b', 'i', 'n'})
	assert.Nil(t, err)
	assert.False(t, ok)
}
