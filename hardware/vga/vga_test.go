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

package vga_test

import (
	"testing"

	"github.com/jetsetilly/vgagen/hardware/vga"
	"github.com/jetsetilly/vgagen/hardware/vga/pattern"
	"github.com/jetsetilly/vgagen/hardware/vga/signal"
	"github.com/jetsetilly/vgagen/hardware/vga/timing"
	"github.com/jetsetilly/vgagen/test"
)

// a small raster keeps the whole-frame property tests quick. totals are 8
// clocks per scanline and 6 scanlines per frame
var smallTiming = timing.Timing{
	ID:       "small",
	HDisplay: 4, HFront: 1, HSync: 2, HBack: 1,
	VDisplay: 3, VFront: 1, VSync: 1, VBack: 1,
}

func TestNewVGA(t *testing.T) {
	gen, err := vga.NewVGA(timing.VGA640x480)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, gen != nil)

	// construction fails fast on a bad timing
	bad := timing.VGA640x480
	bad.HSync = 0
	gen, err = vga.NewVGA(bad)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, gen == nil)
}

func TestCounterAdvancement(t *testing.T) {
	gen, err := vga.NewVGA(smallTiming)
	test.DemandSuccess(t, err)

	hTotal := smallTiming.HTotal()
	vTotal := smallTiming.VTotal()

	// after k ticks without reset, the clock counter is k modulo hTotal and
	// the scanline counter has advanced once for every clock wraparound
	for k := 1; k <= hTotal*vTotal*3; k++ {
		_, err := gen.Tick(false)
		if err != nil {
			t.Fatalf("unexpected error at tick %d: %v", k, err)
		}

		h := k % hTotal
		v := (k / hTotal) % vTotal
		if gen.GetState(vga.ReqClock) != h || gen.GetState(vga.ReqScanline) != v {
			t.Fatalf("counters out of step at tick %d: %s", k, gen)
		}
	}

	// three complete frames have passed
	test.ExpectEquality(t, gen.GetState(vga.ReqFramenum), 3)
}

func TestDerivedSignals(t *testing.T) {
	gen, err := vga.NewVGA(timing.VGA640x480)
	test.DemandSuccess(t, err)

	tim := timing.VGA640x480
	hTotal := tim.HTotal()

	// sweep a full frame and compare every derived signal against the
	// numbers in the VGA standard, computed from the tick count alone
	for k := 1; k <= hTotal*tim.VTotal(); k++ {
		sig, err := gen.Tick(false)
		if err != nil {
			t.Fatalf("unexpected error at tick %d: %v", k, err)
		}

		h := k % hTotal
		v := (k / hTotal) % tim.VTotal()

		hsync := h >= 656 && h < 752
		vsync := v >= 490 && v < 492
		enable := h < 640 && v < 480

		if sig.HSync != hsync || sig.VSync != vsync || sig.DisplayEnable != enable {
			t.Fatalf("bad signal derivation at (%d, %d): %s", h, v, sig)
		}

		// colour is black everywhere outside of the display area
		if !sig.DisplayEnable && sig.Color != signal.VideoBlack {
			t.Fatalf("non-black colour in blanking region at (%d, %d): %s", h, v, sig)
		}
	}
}

func TestResetSample(t *testing.T) {
	gen, err := vga.NewVGA(timing.VGA640x480)
	test.DemandSuccess(t, err)

	// move to an arbitrary position deep in the frame
	for k := 0; k < 123456; k++ {
		_, err := gen.Tick(false)
		test.DemandSuccess(t, err)
	}

	// reset returns the raster to the top left of the display area. the
	// sample is derived from the home position: inside the display area,
	// showing the first band of the default pattern, with both sync pulses
	// deasserted
	sig, err := gen.Tick(true)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, gen.GetState(vga.ReqClock), 0)
	test.ExpectEquality(t, gen.GetState(vga.ReqScanline), 0)
	test.ExpectEquality(t, gen.GetState(vga.ReqFramenum), 0)
	test.ExpectEquality(t, sig.HSync, false)
	test.ExpectEquality(t, sig.VSync, false)
	test.ExpectEquality(t, sig.DisplayEnable, true)
	test.ExpectEquality(t, sig.Color, signal.Color{R: signal.ChannelMax})

	// reset is idempotent
	again, err := gen.Tick(true)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, again, sig)
}

func TestHSyncOnset(t *testing.T) {
	gen, err := vga.NewVGA(timing.VGA640x480)
	test.DemandSuccess(t, err)

	// settle at the home position
	_, err = gen.Tick(true)
	test.DemandSuccess(t, err)

	// the horizontal front porch ends at clock 656 (640+16). the sync pulse
	// must be deasserted on the tick before and newly asserted exactly on
	// the tick that reaches clock 656
	var sig signal.SignalAttributes
	for k := 0; k < 655; k++ {
		sig, err = gen.Tick(false)
		test.DemandSuccess(t, err)
	}
	test.ExpectEquality(t, sig.HSync, false, "clock 655")

	sig, err = gen.Tick(false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, gen.GetState(vga.ReqClock), 656)
	test.ExpectEquality(t, sig.HSync, true, "clock 656")
	test.ExpectEquality(t, sig.DisplayEnable, false, "clock 656")
}

func TestDeterminism(t *testing.T) {
	genA, err := vga.NewVGA(smallTiming)
	test.DemandSuccess(t, err)
	genB, err := vga.NewVGA(smallTiming)
	test.DemandSuccess(t, err)

	// replaying an identical sequence of reset flags against two fresh
	// instances produces an identical sequence of samples
	for k := 0; k < 10000; k++ {
		reset := k%97 == 0
		sigA, errA := genA.Tick(reset)
		sigB, errB := genB.Tick(reset)
		test.DemandSuccess(t, errA)
		test.DemandSuccess(t, errB)
		if sigA != sigB {
			t.Fatalf("instances diverged at tick %d: %s != %s", k, sigA, sigB)
		}
	}
}

func TestWithPattern(t *testing.T) {
	white := signal.Color{R: signal.ChannelMax, G: signal.ChannelMax, B: signal.ChannelMax}

	gen, err := vga.NewVGA(timing.VGA640x480, vga.WithPattern(pattern.Solid(white)))
	test.DemandSuccess(t, err)

	sig, err := gen.Tick(true)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, sig.Color, white)

	// the pattern has no influence outside of the display area
	for k := 0; k < 700; k++ {
		sig, err = gen.Tick(false)
		test.DemandSuccess(t, err)
	}
	test.ExpectEquality(t, sig.Color, signal.VideoBlack)
}

// mockRenderer counts renderer events.
type mockRenderer struct {
	newFrame    int
	newScanline int
	setPixel    int
	ended       bool
}

func (m *mockRenderer) NewFrame(_ int) error {
	m.newFrame++
	return nil
}

func (m *mockRenderer) NewScanline(_ int) error {
	m.newScanline++
	return nil
}

func (m *mockRenderer) SetPixel(_, _ int, _, _, _ uint8, _ bool) error {
	m.setPixel++
	return nil
}

func (m *mockRenderer) EndRendering() error {
	m.ended = true
	return nil
}

// frameCounter is a minimal FrameTrigger implementation.
type frameCounter struct {
	frames int
}

func (f *frameCounter) NewFrame(_ int) error {
	f.frames++
	return nil
}

func TestRendererEvents(t *testing.T) {
	gen, err := vga.NewVGA(smallTiming)
	test.DemandSuccess(t, err)

	mock := &mockRenderer{}
	gen.AddPixelRenderer(mock)

	ct := &frameCounter{}
	gen.AddFrameTrigger(ct)

	// run two full frames
	ticks := smallTiming.HTotal() * smallTiming.VTotal() * 2
	for k := 0; k < ticks; k++ {
		_, err := gen.Tick(false)
		test.DemandSuccess(t, err)
	}

	test.ExpectEquality(t, mock.setPixel, ticks)
	test.ExpectEquality(t, mock.newFrame, 2)
	test.ExpectEquality(t, ct.frames, 2)

	// every scanline wrap that is not also a frame wrap
	test.ExpectEquality(t, mock.newScanline, (smallTiming.VTotal()-1)*2)

	test.ExpectSuccess(t, gen.End())
	test.ExpectSuccess(t, mock.ended)
}

func BenchmarkTick(b *testing.B) {
	gen, err := vga.NewVGA(timing.VGA640x480)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		_, _ = gen.Tick(false)
	}
}
