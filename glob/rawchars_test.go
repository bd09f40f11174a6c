package glob_test

import (
	"testing"

	"github.com/koblas/wcglob/glob"
	"github.com/stretchr/testify/assert"
)

func TestRawCharsInterpretsNewlineAndTabEscapes(t *testing.T) {
	m := compileOne(t, `line1\nline2\ttabbed`, glob.RAWCHARS)

	assert.True(t, m.Match("line1\nline2\ttabbed"))
	assert.False(t, m.Match(`line1\nline2\ttabbed`), "the escape sequences must be interpreted, not left literal")
}

func TestRawCharsInterpretsHexEscape(t *testing.T) {
	m := compileOne(t, `\x61\x62c`, glob.RAWCHARS)

	assert.True(t, m.Match("abc"))
}

func TestRawCharsInterpretsUnicodeEscape(t *testing.T) {
	m := compileOne(t, "caf\\u00E9", glob.RAWCHARS)

	assert.True(t, m.Match("café"))
}

func TestRawCharsLeavesUnicodeNameEscapeUntouched(t *testing.T) {
	m := compileOne(t, `a\N{DEGREE SIGN}b`, glob.RAWCHARS)

	assert.True(t, m.Match(`aN{DEGREE SIGN}b`), `\N{...} is not interpreted; its backslash escapes the N as anywhere else in a pattern`)
}
