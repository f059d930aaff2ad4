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

package vga

import (
	"fmt"

	"github.com/jetsetilly/vgagen/curated"
	"github.com/jetsetilly/vgagen/hardware/vga/pattern"
	"github.com/jetsetilly/vgagen/hardware/vga/signal"
	"github.com/jetsetilly/vgagen/hardware/vga/timing"
)

// Error patterns raised by the vga package.
const (
	RendererError = "vga: %v"
)

// VGA is the timing generator. Every instance owns its raster counters
// exclusively; independent instances never share state and can be ticked
// from different goroutines without coordination. A single instance however,
// expects exactly one caller driving the virtual pixel clock.
type VGA struct {
	tim timing.Timing
	pat pattern.Pattern

	// the only state carried across ticks. clock is the horizontal counter
	// and scanline the vertical counter
	//
	//	0 <= clock < tim.HTotal()
	//	0 <= scanline < tim.VTotal()
	//
	// the scanline counter advances only on the tick that wraps the clock
	// counter
	clock    int
	scanline int

	// completed frame count. not part of the raster state proper but useful
	// to renderers and for reporting
	frameNum int

	lastSignal signal.SignalAttributes

	renderers     []PixelRenderer
	frameTriggers []FrameTrigger
}

// Option types modify the behaviour of a new VGA instance.
type Option func(*VGA)

// WithPattern replaces the default three band test pattern.
func WithPattern(pat pattern.Pattern) Option {
	return func(vga *VGA) {
		vga.pat = pat
	}
}

// NewVGA is the preferred method of initialisation for the VGA type. The
// timing is validated before anything else; an invalid timing is the only
// reason construction can fail and once construction has succeeded, ticking
// can never leave the valid counter range.
func NewVGA(tim timing.Timing, opts ...Option) (*VGA, error) {
	if err := tim.Validate(); err != nil {
		return nil, err
	}

	vga := &VGA{
		tim: tim,
		pat: pattern.Bands(tim.HDisplay),
	}

	for _, opt := range opts {
		opt(vga)
	}

	vga.lastSignal = vga.derive()

	return vga, nil
}

func (vga *VGA) String() string {
	return fmt.Sprintf("FR=%d SL=%03d CL=%03d", vga.frameNum, vga.scanline, vga.clock)
}

// AddPixelRenderer registers an (additional) implementation of
// PixelRenderer.
func (vga *VGA) AddPixelRenderer(rnd PixelRenderer) {
	vga.renderers = append(vga.renderers, rnd)
}

// AddFrameTrigger registers an (additional) implementation of FrameTrigger.
func (vga *VGA) AddFrameTrigger(ft FrameTrigger) {
	vga.frameTriggers = append(vga.frameTriggers, ft)
}

// GetTiming returns the timing the generator was constructed with.
func (vga *VGA) GetTiming() timing.Timing {
	return vga.tim
}

// GetLastSignal returns a copy of the most recently derived
// SignalAttributes.
func (vga *VGA) GetLastSignal() signal.SignalAttributes {
	return vga.lastSignal
}

// GetState returns the generator attribute identified by the StateReq
// argument.
func (vga *VGA) GetState(req StateReq) int {
	switch req {
	case ReqFramenum:
		return vga.frameNum
	case ReqScanline:
		return vga.scanline
	case ReqClock:
		return vga.clock
	}
	return 0
}

// Reset the generator unconditionally. Equivalent to Tick(true) except that
// no sample is produced and no renderers are notified.
func (vga *VGA) Reset() {
	vga.clock = 0
	vga.scanline = 0
	vga.frameNum = 0
	vga.lastSignal = vga.derive()
}

// derive computes the output sample from the current counter values. It is
// the combinational half of the generator; it reads the counters and the
// timing and touches nothing else.
func (vga *VGA) derive() signal.SignalAttributes {
	sig := signal.SignalAttributes{
		HSync:         vga.tim.HSyncActive(vga.clock),
		VSync:         vga.tim.VSyncActive(vga.scanline),
		DisplayEnable: vga.tim.Visible(vga.clock, vga.scanline),
		Color:         signal.VideoBlack,
	}
	if sig.DisplayEnable {
		sig.Color = vga.pat(vga.clock)
	}
	return sig
}

// Tick advances the raster by exactly one pixel clock and returns the
// signal line states for the new raster position.
//
// If reset is true the raster counters are returned to the top left of the
// frame instead of advancing; reset takes priority over advancement. Either
// way the returned sample is derived from the counters as they stand after
// the update.
//
// The returned error can only be non-nil when an attached PixelRenderer has
// failed. With no renderers attached, Tick never fails.
func (vga *VGA) Tick(reset bool) (signal.SignalAttributes, error) {
	if reset {
		vga.clock = 0
		vga.scanline = 0
		vga.frameNum = 0
	} else {
		vga.clock++
		if vga.clock >= vga.tim.HTotal() {
			vga.clock = 0
			vga.scanline++
			if vga.scanline >= vga.tim.VTotal() {
				vga.scanline = 0
				vga.frameNum++
				if err := vga.newFrame(); err != nil {
					return signal.SignalAttributes{}, curated.Errorf(RendererError, err)
				}
			} else {
				for _, rnd := range vga.renderers {
					if err := rnd.NewScanline(vga.scanline); err != nil {
						return signal.SignalAttributes{}, curated.Errorf(RendererError, err)
					}
				}
			}
		}
	}

	sig := vga.derive()
	vga.lastSignal = sig

	red, green, blue := sig.Color.RGB8()
	for _, rnd := range vga.renderers {
		if err := rnd.SetPixel(vga.clock, vga.scanline, red, green, blue, sig.DisplayEnable); err != nil {
			return signal.SignalAttributes{}, curated.Errorf(RendererError, err)
		}
	}

	return sig, nil
}

func (vga *VGA) newFrame() error {
	for _, rnd := range vga.renderers {
		if err := rnd.NewFrame(vga.frameNum); err != nil {
			return err
		}
	}
	for _, ft := range vga.frameTriggers {
		if err := ft.NewFrame(vga.frameNum); err != nil {
			return err
		}
	}
	return nil
}

// End gently closes all attached renderers. The generator should be
// considered unusable after End() has been called.
func (vga *VGA) End() error {
	for _, rnd := range vga.renderers {
		if err := rnd.EndRendering(); err != nil {
			return curated.Errorf(RendererError, err)
		}
	}
	return nil
}
