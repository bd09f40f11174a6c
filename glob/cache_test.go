package glob_test

import (
	"testing"

	"github.com/koblas/wcglob/glob"
	"github.com/stretchr/testify/assert"
)

func TestCompileReusesCachedMatcher(t *testing.T) {
	a, err := glob.Compile([]string{"cache-fixture-*.log"}, glob.PATHNAME)
	assert.Nil(t, err)

	b, err := glob.Compile([]string{"cache-fixture-*.log"}, glob.PATHNAME)
	assert.Nil(t, err)

	assert.Same(t, a, b, "identical (patterns, flags) should hit the process-wide cache")
}

func TestCompileDistinguishesFlags(t *testing.T) {
	a, err := glob.Compile([]string{"cache-fixture-flags.log"}, glob.Flags(0))
	assert.Nil(t, err)

	b, err := glob.Compile([]string{"cache-fixture-flags.log"}, glob.IGNORECASE)
	assert.Nil(t, err)

	assert.False(t, a.Equal(b))
}
