// Package colorutil provides shared color utilities for the schematic tracer.
package colorutil

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// goldenRatio steps hues so that consecutive group colors stay far apart on
// the color wheel no matter how many groups a page produces.
const goldenRatio = 0.618033988749

// Fixed colors used for non-structural output.
const (
	TextLikeGrey = "#888888"
	DefaultGreen = "#00aa00"
)

// GroupColor returns a deterministic, perceptually-spread hex color for the
// i-th structural group (golden-ratio hue stepping, fixed saturation and
// value).
func GroupColor(i int) string {
	hue := math.Mod(float64(i)*goldenRatio, 1.0)
	return colorful.Hsv(hue*360, 0.8, 0.9).Hex()
}

// ParseHex parses "#rrggbb" into 0-255 component values. Malformed input
// yields black.
func ParseHex(hex string) (r, g, b uint8) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0, 0, 0
	}
	cr, cg, cb := c.RGB255()
	return cr, cg, cb
}
