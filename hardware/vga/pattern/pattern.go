// This file is part of VGAGen.
//
// VGAGen is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// VGAGen is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with VGAGen.  If not, see <https://www.gnu.org/licenses/>.

// Package pattern defines the test patterns that can be put on the visible
// area of the raster.
//
// A Pattern is a pure function from visible column number to colour. The
// generator calls the pattern through this one narrow contract, meaning
// patterns can be swapped without any change to the counter or sync logic.
package pattern

import (
	"github.com/jetsetilly/vgagen/hardware/vga/signal"
)

// Pattern maps a visible column number to a colour. Patterns are only ever
// called with columns in the range 0 <= column < hDisplay.
type Pattern func(column int) signal.Color

// PatternList is the list of pattern names recognised by the New() function.
var PatternList = []string{"bands", "bars", "gradient", "white"}

// Bands is the default test pattern. The visible width is divided into three
// vertical bands; full red on the left, full green in the middle and full
// blue on the right.
func Bands(hDisplay int) Pattern {
	// band boundaries by integer division. any remainder falls into the
	// rightmost band
	b1 := hDisplay / 3
	b2 := 2 * hDisplay / 3

	return func(column int) signal.Color {
		if column < b1 {
			return signal.Color{R: signal.ChannelMax}
		}
		if column < b2 {
			return signal.Color{G: signal.ChannelMax}
		}
		return signal.Color{B: signal.ChannelMax}
	}
}

// Bars is a seven bar colour pattern in the SMPTE order, quantised to the
// 3-bit channel depth.
func Bars(hDisplay int) Pattern {
	bars := [7]signal.Color{
		{R: 5, G: 5, B: 5}, // gray
		{R: 5, G: 5},       // yellow
		{G: 5, B: 5},       // cyan
		{G: 5},             // green
		{R: 5, B: 5},       // magenta
		{R: 5},             // red
		{B: 5},             // blue
	}

	barWidth := hDisplay / len(bars)

	return func(column int) signal.Color {
		idx := column / barWidth
		if idx >= len(bars) {
			idx = len(bars) - 1
		}
		return bars[idx]
	}
}

// HGradient ramps every channel from zero at the left edge of the display to
// ChannelMax at the right edge, giving a grayscale staircase at the 3-bit
// depth.
func HGradient(hDisplay int) Pattern {
	return func(column int) signal.Color {
		v := uint8(column * (signal.ChannelMax + 1) / hDisplay)
		if v > signal.ChannelMax {
			v = signal.ChannelMax
		}
		return signal.Color{R: v, G: v, B: v}
	}
}

// Solid fills the entire display area with a single colour.
func Solid(col signal.Color) Pattern {
	return func(_ int) signal.Color {
		return col
	}
}

// New returns the named pattern, sized for the display width. The names in
// PatternList are recognised; anything else returns nil.
func New(name string, hDisplay int) Pattern {
	switch name {
	case "bands":
		return Bands(hDisplay)
	case "bars":
		return Bars(hDisplay)
	case "gradient":
		return HGradient(hDisplay)
	case "white":
		return Solid(signal.Color{R: signal.ChannelMax, G: signal.ChannelMax, B: signal.ChannelMax})
	}
	return nil
}
