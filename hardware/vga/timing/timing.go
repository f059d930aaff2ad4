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

// Package timing contains the definitions of the VGA timings supported by
// the generator.
//
// A scan line is divided into four phases: the display area, the front
// porch, the sync pulse and the back porch. The frame is divided the same
// way vertically, measured in whole scan lines. A Timing value records the
// length of each phase; everything else about the raster is derived from
// those eight numbers.
package timing

import (
	"fmt"
	"math"

	"github.com/jetsetilly/vgagen/curated"
)

// Error patterns raised by the Validate() function.
const (
	InvalidTiming = "timing: %v"
)

// TimingList is the list of preset timings that the generator knows about.
var TimingList = []string{"640x480", "800x600", "1024x768"}

// Timing is the parameter set for one raster. All phase lengths are measured
// in pixel clocks for the horizontal phases; and in scan lines for the
// vertical phases.
//
// A Timing value is immutable by convention. It is shared read-only by every
// part of the generator and is only ever passed by value.
type Timing struct {
	ID string

	HDisplay int
	HFront   int
	HSync    int
	HBack    int

	VDisplay int
	VFront   int
	VSync    int
	VBack    int

	// the pixel clock frequency (MHz) and refresh rate (Hz) that a real
	// monitor would expect for this timing. informational; the generator
	// itself has no notion of real time
	PixelClock  float64
	RefreshRate float32
}

// HTotal returns the length of a complete scan line in pixel clocks. It is
// the wraparound modulus for the horizontal counter.
func (tim Timing) HTotal() int {
	return tim.HDisplay + tim.HFront + tim.HSync + tim.HBack
}

// VTotal returns the length of a complete frame in scan lines. It is the
// wraparound modulus for the vertical counter.
func (tim Timing) VTotal() int {
	return tim.VDisplay + tim.VFront + tim.VSync + tim.VBack
}

// HSyncActive returns true if the horizontal sync pulse is asserted at clock
// h. By VGA convention an asserted sync pulse is electrically low.
//
// The pulse window is the half-open interval starting at the end of the
// horizontal front porch.
func (tim Timing) HSyncActive(h int) bool {
	start := tim.HDisplay + tim.HFront
	return h >= start && h < start+tim.HSync
}

// VSyncActive returns true if the vertical sync pulse is asserted at
// scanline v. The same convention applies as for HSyncActive().
func (tim Timing) VSyncActive(v int) bool {
	start := tim.VDisplay + tim.VFront
	return v >= start && v < start+tim.VSync
}

// Visible returns true if the position (h, v) is inside the visible display
// area. The display area starts at counter value zero on both axes, so the
// position needs no translation to be used as a visible pixel coordinate.
func (tim Timing) Visible(h, v int) bool {
	return h < tim.HDisplay && v < tim.VDisplay
}

// Validate checks that the Timing describes a raster the generator can run.
// Every phase length must be a positive integer and the phase totals must
// not overflow the counters. Returns an error with the InvalidTiming pattern
// on the first problem found.
//
// A Timing that fails validation must not be used to construct a generator.
// A Timing that passes can be ticked forever without further checks.
func (tim Timing) Validate() error {
	phases := []struct {
		name  string
		value int
	}{
		{"hDisplay", tim.HDisplay},
		{"hFront", tim.HFront},
		{"hSync", tim.HSync},
		{"hBack", tim.HBack},
		{"vDisplay", tim.VDisplay},
		{"vFront", tim.VFront},
		{"vSync", tim.VSync},
		{"vBack", tim.VBack},
	}

	total := 0
	for _, p := range phases {
		if p.value <= 0 {
			return curated.Errorf(InvalidTiming, fmt.Sprintf("%s phase must be a positive length (%d)", p.name, p.value))
		}
		if total > math.MaxInt-p.value {
			return curated.Errorf(InvalidTiming, "phase totals overflow the raster counters")
		}
		total += p.value
	}

	return nil
}

func (tim Timing) String() string {
	return fmt.Sprintf("%s h: %d/%d/%d/%d (%d) v: %d/%d/%d/%d (%d)",
		tim.ID,
		tim.HDisplay, tim.HFront, tim.HSync, tim.HBack, tim.HTotal(),
		tim.VDisplay, tim.VFront, tim.VSync, tim.VBack, tim.VTotal(),
	)
}

// VGA640x480 is the 640x480@60Hz industry standard timing. It is the default
// timing for the generator.
var VGA640x480 Timing

// VGA800x600 is the SVGA 800x600@60Hz timing.
var VGA800x600 Timing

// VGA1024x768 is the XGA 1024x768@60Hz timing.
var VGA1024x768 Timing

// GetTiming returns the preset timing with the specified ID.
func GetTiming(id string) (Timing, error) {
	switch id {
	case "640x480":
		return VGA640x480, nil
	case "800x600":
		return VGA800x600, nil
	case "1024x768":
		return VGA1024x768, nil
	}
	return Timing{}, curated.Errorf(InvalidTiming, fmt.Sprintf("unsupported timing (%s)", id))
}

func init() {
	VGA640x480 = Timing{
		ID:          "640x480",
		HDisplay:    640,
		HFront:      16,
		HSync:       96,
		HBack:       48,
		VDisplay:    480,
		VFront:      10,
		VSync:       2,
		VBack:       33,
		PixelClock:  25.175,
		RefreshRate: 60.0,
	}

	VGA800x600 = Timing{
		ID:          "800x600",
		HDisplay:    800,
		HFront:      40,
		HSync:       128,
		HBack:       88,
		VDisplay:    600,
		VFront:      1,
		VSync:       4,
		VBack:       23,
		PixelClock:  40.0,
		RefreshRate: 60.0,
	}

	VGA1024x768 = Timing{
		ID:          "1024x768",
		HDisplay:    1024,
		HFront:      24,
		HSync:       136,
		HBack:       160,
		VDisplay:    768,
		VFront:      3,
		VSync:       6,
		VBack:       29,
		PixelClock:  65.0,
		RefreshRate: 60.0,
	}
}
