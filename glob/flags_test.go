package glob_test

import (
	"runtime"
	"testing"

	"github.com/koblas/wcglob/glob"
	"github.com/stretchr/testify/assert"
)

func TestFlagsHas(t *testing.T) {
	f := glob.NEGATE | glob.BRACE

	assert.True(t, f.Has(glob.NEGATE))
	assert.True(t, f.Has(glob.BRACE))
	assert.False(t, f.Has(glob.GLOBSTAR))
	assert.True(t, f.Has(glob.NEGATE|glob.BRACE))
}

func TestCaseSensitiveOverrides(t *testing.T) {
	assert.True(t, glob.CaseSensitive(glob.FORCECASE))
	assert.False(t, glob.CaseSensitive(glob.IGNORECASE))
}

func TestCaseSensitivePlatformDefault(t *testing.T) {
	want := runtime.GOOS != "windows" && runtime.GOOS != "darwin"
	assert.Equal(t, want, glob.CaseSensitive(glob.Flags(0)))
}

func TestSeparatorFollowsUnixStyleOnNonWindows(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix-style separator assumption doesn't hold on windows")
	}
	assert.True(t, glob.UnixStyle(glob.Flags(0)))
	assert.Equal(t, '/', glob.Separator(glob.Flags(0)))
}
