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

package timing_test

import (
	"testing"

	"github.com/jetsetilly/vgagen/curated"
	"github.com/jetsetilly/vgagen/hardware/vga/timing"
	"github.com/jetsetilly/vgagen/test"
)

func TestPresets(t *testing.T) {
	for _, id := range timing.TimingList {
		tim, err := timing.GetTiming(id)
		test.DemandSuccess(t, err, id)
		test.ExpectSuccess(t, tim.Validate(), id)
		test.ExpectEquality(t, tim.ID, id)
	}

	_, err := timing.GetTiming("160x120")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, timing.InvalidTiming))
}

func TestDerivedTotals(t *testing.T) {
	test.ExpectEquality(t, timing.VGA640x480.HTotal(), 800)
	test.ExpectEquality(t, timing.VGA640x480.VTotal(), 525)
	test.ExpectEquality(t, timing.VGA800x600.HTotal(), 1056)
	test.ExpectEquality(t, timing.VGA800x600.VTotal(), 628)
	test.ExpectEquality(t, timing.VGA1024x768.HTotal(), 1344)
	test.ExpectEquality(t, timing.VGA1024x768.VTotal(), 806)
}

func TestValidate(t *testing.T) {
	// every phase length must be positive. zero a field at a time and check
	// that validation fails
	zero := []func(*timing.Timing){
		func(tim *timing.Timing) { tim.HDisplay = 0 },
		func(tim *timing.Timing) { tim.HFront = 0 },
		func(tim *timing.Timing) { tim.HSync = 0 },
		func(tim *timing.Timing) { tim.HBack = 0 },
		func(tim *timing.Timing) { tim.VDisplay = 0 },
		func(tim *timing.Timing) { tim.VFront = 0 },
		func(tim *timing.Timing) { tim.VSync = 0 },
		func(tim *timing.Timing) { tim.VBack = -2 },
	}

	for i, f := range zero {
		tim := timing.VGA640x480
		f(&tim)
		err := tim.Validate()
		test.ExpectFailure(t, err, i)
		test.ExpectSuccess(t, curated.Is(err, timing.InvalidTiming), i)
	}

	// overflowing phase totals are also rejected
	tim := timing.VGA640x480
	tim.HBack = int(^uint(0) >> 1)
	test.ExpectFailure(t, tim.Validate())
}

func TestSyncWindows(t *testing.T) {
	tim := timing.VGA640x480

	// hsync window is [656, 752) for the default timing
	for h := 0; h < tim.HTotal(); h++ {
		inWindow := h >= 656 && h < 752
		test.ExpectEquality(t, tim.HSyncActive(h), inWindow, "clock", h)
	}

	// vsync window is [490, 492)
	for v := 0; v < tim.VTotal(); v++ {
		inWindow := v >= 490 && v < 492
		test.ExpectEquality(t, tim.VSyncActive(v), inWindow, "scanline", v)
	}
}

func TestVisible(t *testing.T) {
	tim := timing.VGA640x480
	test.ExpectSuccess(t, tim.Visible(0, 0))
	test.ExpectSuccess(t, tim.Visible(639, 479))
	test.ExpectFailure(t, tim.Visible(640, 0))
	test.ExpectFailure(t, tim.Visible(0, 480))
	test.ExpectFailure(t, tim.Visible(799, 524))
}
