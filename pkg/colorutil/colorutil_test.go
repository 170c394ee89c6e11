package colorutil

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupColorDeterministic(t *testing.T) {
	hexPattern := regexp.MustCompile(`^#[0-9a-f]{6}$`)
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		c := GroupColor(i)
		assert.Regexp(t, hexPattern, c)
		assert.Equal(t, c, GroupColor(i))
		seen[c] = true
	}
	// Golden-ratio stepping keeps nearby indices visually distinct.
	assert.Len(t, seen, 20)
}

func TestParseHex(t *testing.T) {
	r, g, b := ParseHex("#888888")
	assert.Equal(t, uint8(0x88), r)
	assert.Equal(t, uint8(0x88), g)
	assert.Equal(t, uint8(0x88), b)

	r, g, b = ParseHex("#00aa00")
	assert.Equal(t, uint8(0), r)
	assert.Equal(t, uint8(0xaa), g)
	assert.Equal(t, uint8(0), b)

	r, g, b = ParseHex("not-a-color")
	assert.Zero(t, r)
	assert.Zero(t, g)
	assert.Zero(t, b)
}
