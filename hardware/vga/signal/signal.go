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

// Package signal exposes the interface between the generator and whatever is
// consuming the generated picture.
package signal

import (
	"fmt"
	"strings"
)

// ChannelMax is the maximum intensity of a single colour channel. The
// generator models a 3-bit DAC per channel, as found on simple VGA pmod
// boards.
const ChannelMax = 7

// Color is the colour put on the red, green and blue lines for one pixel.
// Each channel is in the range 0 to ChannelMax.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// VideoBlack is the Color value for all parts of the raster outside of the
// visible display area.
var VideoBlack = Color{}

// RGB8 expands the 3-bit channel intensities to the 8-bit range used by
// renderers. ChannelMax maps to 255 and zero maps to zero.
func (col Color) RGB8() (uint8, uint8, uint8) {
	return uint8(int(col.R) * 255 / ChannelMax),
		uint8(int(col.G) * 255 / ChannelMax),
		uint8(int(col.B) * 255 / ChannelMax)
}

func (col Color) String() string {
	return fmt.Sprintf("(%d, %d, %d)", col.R, col.G, col.B)
}

// SignalAttributes represents the signal line states for a single tick of
// the pixel clock.
//
// The HSync and VSync fields are true when the pulse is asserted. By VGA
// convention an asserted sync pulse is the electrically low level; the
// boolean records assertion, not voltage.
type SignalAttributes struct {
	HSync         bool
	VSync         bool
	DisplayEnable bool
	Color         Color
}

func (a SignalAttributes) String() string {
	s := strings.Builder{}
	if a.HSync {
		s.WriteString("HSYNC ")
	}
	if a.VSync {
		s.WriteString("VSYNC ")
	}
	if a.DisplayEnable {
		s.WriteString("DE ")
	}
	s.WriteString(a.Color.String())
	return s.String()
}
