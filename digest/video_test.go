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

package digest_test

import (
	"testing"

	"github.com/jetsetilly/vgagen/digest"
	"github.com/jetsetilly/vgagen/hardware/vga"
	"github.com/jetsetilly/vgagen/hardware/vga/pattern"
	"github.com/jetsetilly/vgagen/hardware/vga/signal"
	"github.com/jetsetilly/vgagen/hardware/vga/timing"
	"github.com/jetsetilly/vgagen/test"
)

var testTiming = timing.Timing{
	ID:       "small",
	HDisplay: 4, HFront: 1, HSync: 2, HBack: 1,
	VDisplay: 3, VFront: 1, VSync: 1, VBack: 1,
}

// run a generator for the specified number of frames and return the video
// fingerprint.
func fingerprint(t *testing.T, frames int, opts ...vga.Option) string {
	t.Helper()

	gen, err := vga.NewVGA(testTiming, opts...)
	test.DemandSuccess(t, err)

	dig := digest.NewVideo(testTiming)
	gen.AddPixelRenderer(dig)

	_, err = gen.Tick(true)
	test.DemandSuccess(t, err)

	for k := 0; k < frames*testTiming.HTotal()*testTiming.VTotal(); k++ {
		_, err := gen.Tick(false)
		test.DemandSuccess(t, err)
	}

	return dig.Hash()
}

func TestDeterministicFingerprint(t *testing.T) {
	a := fingerprint(t, 3)
	b := fingerprint(t, 3)
	test.ExpectEquality(t, a, b)

	// a different number of frames gives a different fingerprint
	c := fingerprint(t, 4)
	test.ExpectInequality(t, a, c)

	// a different pattern gives a different fingerprint
	d := fingerprint(t, 3, vga.WithPattern(pattern.Solid(signal.Color{B: signal.ChannelMax})))
	test.ExpectInequality(t, a, d)
}

func TestResetDigest(t *testing.T) {
	dig := digest.NewVideo(testTiming)
	test.ExpectEquality(t, dig.Hash(), "0000000000000000000000000000000000000000")

	test.ExpectSuccess(t, dig.SetPixel(0, 0, 255, 0, 0, true))
	test.ExpectSuccess(t, dig.NewFrame(1))
	test.ExpectInequality(t, dig.Hash(), "0000000000000000000000000000000000000000")

	dig.ResetDigest()
	test.ExpectEquality(t, dig.Hash(), "0000000000000000000000000000000000000000")
}
