package kvp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripComment_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"; only a comment",
		"Object = body.csv ; trailing",
		"a;b;c",
		"no comment here",
		";;",
	}
	for _, in := range inputs {
		once := StripComment(in, ';')
		twice := StripComment(once, ';')
		assert.Equal(t, once, twice, "input %q", in)
	}
}

func TestNormalize_KeepsLineNumbersPositional(t *testing.T) {
	// GIVEN text with comment-only and blank lines between content
	text := ";comment\n\n[Car0]\r\nObject = Body.CSV ; the body\n"

	// WHEN normalized
	lines := Normalize(text, IndexedDialect)

	// THEN every source line has a logical line with its 1-based number
	require.Len(t, lines, 4)
	for i, l := range lines {
		assert.Equal(t, i+1, l.Number)
	}
	assert.True(t, lines[0].Empty())
	assert.True(t, lines[1].Empty())
	assert.Equal(t, "[Car0]", lines[2].Text)
	assert.Equal(t, "[car0]", lines[2].Folded)

	// AND the original case survives next to the folded copy
	assert.Equal(t, "Object = Body.CSV", lines[3].Text)
	assert.Equal(t, "object = body.csv", lines[3].Folded)
}

func TestNormalize_StripsByteOrderMark(t *testing.T) {
	lines := Normalize("\ufeffBVE2000000\n", OrderedDialect)
	require.Len(t, lines, 1)
	assert.Equal(t, "BVE2000000", lines[0].Text)
}

func TestNormalize_EmptyInput(t *testing.T) {
	assert.Empty(t, Normalize("", IndexedDialect))
}
