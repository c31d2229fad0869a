package visual

import "github.com/labstack/gommon/color"

// Terminal wraps s in the ANSI color closest to the score's hue: red below
// 40, yellow below 80, green otherwise, grey for absent scores.
func Terminal(score *int, s string) string {
	if score == nil {
		return color.Grey(s)
	}

	switch hue := ColorFor(score).Hue; {
	case hue < 40:
		return color.Red(s)
	case hue < 80:
		return color.Yellow(s)
	default:
		return color.Green(s)
	}
}
