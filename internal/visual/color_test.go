package visual

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestColorFor_Boundaries(t *testing.T) {
	tests := []struct {
		name  string
		score *int
		hsl   string
		hex   string
	}{
		{"zero is red", intPtr(0), "hsl(0, 75%, 45%)", "#c91d1d"},
		{"fifty", intPtr(50), "hsl(60, 75%, 45%)", "#c9c91d"},
		{"hundred is green", intPtr(100), "hsl(120, 75%, 45%)", "#1dc91d"},
		{"absent is neutral", nil, "hsl(0, 0%, 60%)", "#999999"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ColorFor(tt.score)
			assert.Equal(t, tt.hsl, c.String())
			assert.Equal(t, tt.hex, c.Hex())
		})
	}
}

func TestColorFor_Distinct(t *testing.T) {
	zero, hundred, absent := ColorFor(intPtr(0)), ColorFor(intPtr(100)), ColorFor(nil)
	assert.NotEqual(t, zero, hundred)
	assert.NotEqual(t, zero, absent)
	assert.NotEqual(t, hundred, absent)
}

func TestColorFor_Monotonic(t *testing.T) {
	prev := ColorFor(intPtr(0)).Hue
	for s := 1; s <= 100; s++ {
		h := ColorFor(intPtr(s)).Hue
		assert.Greater(t, h, prev, "score %d", s)
		prev = h
	}
}

func TestColorFor_Clamps(t *testing.T) {
	assert.Equal(t, ColorFor(intPtr(0)), ColorFor(intPtr(-20)))
	assert.Equal(t, ColorFor(intPtr(100)), ColorFor(intPtr(250)))
}
