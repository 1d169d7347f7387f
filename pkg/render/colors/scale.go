// Package colors provides the diverging colour scale shared by every prefgrid
// output that colours cells: the heatmap, the colour bar, the spreadsheet
// export and the terminal preview.
//
// The scale is Moreland's smooth blue-red diverging map ("coolwarm"), pinned
// to [-1, +1] so that 0 always lands on the neutral midpoint no matter which
// values a matrix actually contains.
package colors

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// Bounds of the scale.
const (
	Min = -1.0
	Max = 1.0
)

// darkLightness is the CIE L* (0-1) below which a background counts as
// dark and gets light text.
const darkLightness = 0.6

// Scale maps cell values onto the diverging colour map.
type Scale struct {
	cm palette.ColorMap
}

// NewScale returns the blue-red diverging scale over [Min, Max].
func NewScale() *Scale {
	cm := moreland.SmoothBlueRed()
	cm.SetMin(Min)
	cm.SetMax(Max)
	return &Scale{cm: cm}
}

// ColorMap exposes the underlying map, for colour bars.
func (s *Scale) ColorMap() palette.ColorMap { return s.cm }

// Palette returns n evenly spaced colours from Min to Max.
func (s *Scale) Palette(n int) palette.Palette { return s.cm.Palette(n) }

// Color returns the colour for v. Values outside [Min, Max] are clamped.
func (s *Scale) Color(v float64) color.Color {
	v = max(Min, min(Max, v))
	c, err := s.cm.At(v)
	if err != nil {
		// Unreachable after clamping; fall back to the midpoint grey.
		return color.Gray{Y: 0xdd}
	}
	return c
}

// Hex returns the colour for v as "#rrggbb".
func (s *Scale) Hex(v float64) string {
	c, _ := colorful.MakeColor(s.Color(v))
	return c.Clamped().Hex()
}

// TextColor returns black or white, whichever reads better on the colour
// for v.
func (s *Scale) TextColor(v float64) color.Color {
	if IsDark(s.Color(v)) {
		return color.White
	}
	return color.Black
}

// IsDark reports whether c has a perceptual lightness below the threshold
// used for annotation text.
func IsDark(c color.Color) bool {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return false
	}
	l, _, _ := cf.Lab()
	return l < darkLightness
}
