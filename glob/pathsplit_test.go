package glob_test

import (
	"testing"

	"github.com/koblas/wcglob/glob"
	"github.com/stretchr/testify/assert"
)

func TestPathSplitLiteralAndMagicSegments(t *testing.T) {
	segs, err := glob.PathSplit("a/*.go", glob.Flags(0))

	assert.Nil(t, err)
	assert.Len(t, segs, 2)

	assert.Equal(t, "a", segs[0].Text)
	assert.False(t, segs[0].Magic)
	assert.True(t, segs[0].DirOnly)

	assert.Equal(t, "*.go", segs[1].Text)
	assert.True(t, segs[1].Magic)
	assert.False(t, segs[1].DirOnly)
	assert.NotNil(t, segs[1].Matcher)
}

func TestPathSplitLeadingSlashIsDriveSegment(t *testing.T) {
	segs, err := glob.PathSplit("/a/b", glob.Flags(0))

	assert.Nil(t, err)
	assert.Len(t, segs, 3)
	assert.True(t, segs[0].Drive)
	assert.Equal(t, "/", segs[0].Text)
	assert.Equal(t, "a", segs[1].Text)
	assert.True(t, segs[1].DirOnly)
	assert.Equal(t, "b", segs[2].Text)
	assert.False(t, segs[2].DirOnly)
}

func TestPathSplitGlobstarSegment(t *testing.T) {
	segs, err := glob.PathSplit("a/**/b", glob.GLOBSTAR)

	assert.Nil(t, err)
	assert.Len(t, segs, 3)
	assert.True(t, segs[1].Globstar)
	assert.True(t, segs[1].Magic)
	assert.Equal(t, "**", segs[1].Text)
}

func TestPathSplitMatchBaseInjectsGlobstarPrefix(t *testing.T) {
	segs, err := glob.PathSplit("file.txt", glob.MATCHBASE)

	assert.Nil(t, err)
	assert.Len(t, segs, 2)
	assert.True(t, segs[0].Globstar)
	assert.Equal(t, "file.txt", segs[1].Text)
}

func TestPathSplitMatchBaseLeavesMultiSegmentPatternsAlone(t *testing.T) {
	segs, err := glob.PathSplit("a/file.txt", glob.MATCHBASE)

	assert.Nil(t, err)
	assert.Len(t, segs, 2)
	assert.False(t, segs[0].Globstar)
	assert.Equal(t, "a", segs[0].Text)
}
