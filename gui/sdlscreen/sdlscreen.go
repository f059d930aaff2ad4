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

// Package sdlscreen is a simple SDL implementation of the vga.PixelRenderer
// interface. It shows the visible area of the generated picture in a window,
// paced at the refresh rate of the timing.
//
// SDL requires that window creation and event handling happen in the main
// thread. Keep the generator loop that is driving the screen in the main
// thread and everything is fine.
package sdlscreen

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/vgagen/assert"
	"github.com/jetsetilly/vgagen/curated"
	"github.com/jetsetilly/vgagen/hardware/vga/timing"
	"github.com/jetsetilly/vgagen/logger"
	"github.com/jetsetilly/vgagen/performance/limiter"
	"github.com/jetsetilly/vgagen/version"
)

// Error patterns raised by the sdlscreen package.
const (
	SDL = "sdlscreen: %v"
)

const pixelDepth = 4

// SdlScreen is a simple SDL implementation of the vga.PixelRenderer
// interface.
type SdlScreen struct {
	tim timing.Timing

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels is the byte array that we copy to the texture on every
	// NewFrame(). it covers the visible display area only
	pixels []byte

	// limit screen updates to the refresh rate of the timing
	lmtr *limiter.FpsLimiter

	// the user has asked for the window to close
	done bool
}

// NewSdlScreen is the preferred method of initialisation for SdlScreen.
func NewSdlScreen(tim timing.Timing, scale float32) (*SdlScreen, error) {
	assert.MainGoroutine()

	scr := &SdlScreen{tim: tim}

	var err error

	if err = sdl.Init(uint32(sdl.INIT_VIDEO)); err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	w := int32(float32(tim.HDisplay) * scale)
	h := int32(float32(tim.VDisplay) * scale)

	scr.window, err = sdl.CreateWindow(fmt.Sprintf("%s (%s)", version.ApplicationName, tim.ID),
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		w, h,
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC))
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	// texture is the same size as the visible display area. the renderer
	// scales it to the window
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		int32(tim.HDisplay), int32(tim.VDisplay))
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	scr.pixels = make([]byte, tim.HDisplay*tim.VDisplay*pixelDepth)

	// preset alpha channel - we never change the value of this channel
	for i := pixelDepth - 1; i < len(scr.pixels); i += pixelDepth {
		scr.pixels[i] = 255
	}

	scr.lmtr, err = limiter.NewFPSLimiter(int(tim.RefreshRate))
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	logger.Logf(logger.Allow, "sdlscreen", "window %dx%d (scale %.1f)", w, h, scale)

	return scr, nil
}

// Done returns true once the user has asked for the window to close.
func (scr *SdlScreen) Done() bool {
	return scr.done
}

// NewFrame implements the vga.PixelRenderer interface. The completed frame
// is copied to the texture and presented, the event queue is serviced and
// the generator loop is stalled to the refresh rate.
func (scr *SdlScreen) NewFrame(frameNum int) error {
	if err := scr.texture.Update(nil, scr.pixels, scr.tim.HDisplay*pixelDepth); err != nil {
		return curated.Errorf(SDL, err)
	}
	if err := scr.renderer.Clear(); err != nil {
		return curated.Errorf(SDL, err)
	}
	if err := scr.renderer.Copy(scr.texture, nil, nil); err != nil {
		return curated.Errorf(SDL, err)
	}
	scr.renderer.Present()

	scr.service()
	scr.lmtr.Wait()

	return nil
}

// NewScanline implements the vga.PixelRenderer interface.
func (scr *SdlScreen) NewScanline(scanline int) error {
	return nil
}

// SetPixel implements the vga.PixelRenderer interface. Only pixels in the
// visible display area reach the window; the texture has no blanking region.
func (scr *SdlScreen) SetPixel(x, y int, red, green, blue uint8, enable bool) error {
	if !enable {
		return nil
	}

	i := (y*scr.tim.HDisplay + x) * pixelDepth
	if i <= len(scr.pixels)-pixelDepth {
		scr.pixels[i] = red
		scr.pixels[i+1] = green
		scr.pixels[i+2] = blue
	}

	return nil
}

// EndRendering implements the vga.PixelRenderer interface.
func (scr *SdlScreen) EndRendering() error {
	scr.texture.Destroy()
	scr.renderer.Destroy()
	scr.window.Destroy()
	sdl.Quit()
	return nil
}

// service the SDL event queue. a window close request or the escape key
// flags the screen as done.
func (scr *SdlScreen) service() {
	assert.MainGoroutine()

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.done = true

		case *sdl.KeyboardEvent:
			if ev.Type == sdl.KEYDOWN && ev.Keysym.Sym == sdl.K_ESCAPE {
				scr.done = true
			}
		}
	}
}
