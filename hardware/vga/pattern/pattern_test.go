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

package pattern_test

import (
	"testing"

	"github.com/jetsetilly/vgagen/hardware/vga/pattern"
	"github.com/jetsetilly/vgagen/hardware/vga/signal"
	"github.com/jetsetilly/vgagen/test"
)

func TestBandBoundaries(t *testing.T) {
	pat := pattern.Bands(640)

	red := signal.Color{R: signal.ChannelMax}
	green := signal.Color{G: signal.ChannelMax}
	blue := signal.Color{B: signal.ChannelMax}

	// for a display width of 640 the bands are columns 0 to 212, 213 to 425
	// and 426 to 639
	for column := 0; column < 640; column++ {
		var expected signal.Color
		switch {
		case column <= 212:
			expected = red
		case column <= 425:
			expected = green
		default:
			expected = blue
		}
		test.ExpectEquality(t, pat(column), expected, "column", column)
	}

	// transitions at exactly 213 and 426
	test.ExpectEquality(t, pat(212), red)
	test.ExpectEquality(t, pat(213), green)
	test.ExpectEquality(t, pat(425), green)
	test.ExpectEquality(t, pat(426), blue)
	test.ExpectEquality(t, pat(639), blue)
}

func TestBandsNarrowDisplay(t *testing.T) {
	// a width that divides by three exactly
	pat := pattern.Bands(6)
	test.ExpectEquality(t, pat(1), signal.Color{R: signal.ChannelMax})
	test.ExpectEquality(t, pat(2), signal.Color{G: signal.ChannelMax})
	test.ExpectEquality(t, pat(4), signal.Color{B: signal.ChannelMax})
}

func TestBars(t *testing.T) {
	pat := pattern.Bars(700)

	// first bar is gray, last bar is blue. the remainder columns fall into
	// the final bar
	test.ExpectEquality(t, pat(0), signal.Color{R: 5, G: 5, B: 5})
	test.ExpectEquality(t, pat(99), signal.Color{R: 5, G: 5, B: 5})
	test.ExpectEquality(t, pat(600), signal.Color{B: 5})
	test.ExpectEquality(t, pat(699), signal.Color{B: 5})
}

func TestHGradient(t *testing.T) {
	pat := pattern.HGradient(640)

	test.ExpectEquality(t, pat(0), signal.Color{})
	test.ExpectEquality(t, pat(639), signal.Color{R: 7, G: 7, B: 7})

	// intensities never decrease across the display
	prev := uint8(0)
	for column := 0; column < 640; column++ {
		col := pat(column)
		test.ExpectSuccess(t, col.R >= prev, "column", column)
		prev = col.R
	}
}

func TestNew(t *testing.T) {
	for _, name := range pattern.PatternList {
		pat := pattern.New(name, 640)
		test.ExpectSuccess(t, pat != nil, name)
	}
	test.ExpectSuccess(t, pattern.New("plasma", 640) == nil)
}
