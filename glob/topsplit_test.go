package glob_test

import (
	"testing"

	"github.com/koblas/wcglob/glob"
	"github.com/stretchr/testify/assert"
)

func TestSplitWithoutFlagIsNoop(t *testing.T) {
	r := glob.Split("a|b|c", glob.Flags(0))
	assert.Equal(t, []string{"a|b|c"}, r)
}

func TestSplitTopLevelBar(t *testing.T) {
	r := glob.Split("a|b|c", glob.SPLIT)
	assert.Equal(t, []string{"a", "b", "c"}, r)
}

func TestSplitIgnoresBarInsideGroup(t *testing.T) {
	r := glob.Split("a(b|c)d", glob.SPLIT)
	assert.Equal(t, []string{"a(b|c)d"}, r)
}

func TestSplitIgnoresBarInsideClass(t *testing.T) {
	r := glob.Split("a[|]b", glob.SPLIT)
	assert.Equal(t, []string{"a[|]b"}, r)
}

func TestSplitIgnoresEscapedBar(t *testing.T) {
	r := glob.Split(`a\|b`, glob.SPLIT)
	assert.Equal(t, []string{`a\|b`}, r)
}
