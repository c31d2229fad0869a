// Package visual maps scores to display colors.
package visual

import (
	"fmt"
	"math"
)

const (
	saturation = 75
	lightness  = 45
)

// Neutral is used for entities without a score.
var Neutral = Color{Hue: 0, Saturation: 0, Lightness: 60}

// Color is an HSL triple; saturation and lightness are percentages.
type Color struct {
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Lightness  float64 `json:"lightness"`
}

// ColorFor maps a score onto a red (0) to green (100) scale, hue = score * 1.2.
// Out of range scores are clamped. A nil score maps to Neutral.
func ColorFor(score *int) Color {
	if score == nil {
		return Neutral
	}
	s := min(max(*score, 0), 100)
	return Color{
		Hue:        float64(s*6) / 5,
		Saturation: saturation,
		Lightness:  lightness,
	}
}

func (c Color) String() string {
	return fmt.Sprintf("hsl(%g, %g%%, %g%%)", c.Hue, c.Saturation, c.Lightness)
}

// Hex renders the color as #rrggbb.
func (c Color) Hex() string {
	s := c.Saturation / 100
	l := c.Lightness / 100
	h := math.Mod(c.Hue, 360)

	chroma := (1 - math.Abs(2*l-1)) * s
	x := chroma * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - chroma/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = chroma, x, 0
	case h < 120:
		r, g, b = x, chroma, 0
	case h < 180:
		r, g, b = 0, chroma, x
	case h < 240:
		r, g, b = 0, x, chroma
	case h < 300:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	return fmt.Sprintf("#%02x%02x%02x", channel(r+m), channel(g+m), channel(b+m))
}

func channel(v float64) uint8 {
	return uint8(math.Round(min(max(v, 0), 1) * 255))
}
