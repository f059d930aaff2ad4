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

// PixelRenderer implementations display, or otherwise work with, the visual
// output of the generator. For example digest.Video.
//
// PixelRenderer implementations often find it convenient to maintain a
// reference to the VGA instance they are attached to.
type PixelRenderer interface {
	// NewFrame and NewScanline are called as the raster counters wrap into a
	// new frame/scanline
	NewFrame(frameNum int) error
	NewScanline(scanline int) error

	// SetPixel is called for every tick of the pixel clock, regardless of
	// whether the position is in the visible display area. The x argument can
	// therefore reach the full scanline length and y the full frame height.
	//
	// The red, green and blue values have been expanded from the 3-bit DAC
	// depth to the full 8-bit range. When enable is false the colour values
	// are always zero; renderers producing an accurate image can simply set
	// the pixel unconditionally.
	SetPixel(x, y int, red, green, blue uint8, enable bool) error

	// some renderers may need to conclude and/or dispose of resources
	// gently. for simplicity, the PixelRenderer should be considered
	// unusable after EndRendering() has been called
	EndRendering() error
}

// FrameTrigger implementations listen for new frame events. FrameTrigger is
// a subset of PixelRenderer.
type FrameTrigger interface {
	NewFrame(frameNum int) error
}

// StateReq is used to identify which generator attribute is being asked for
// with the GetState() function.
type StateReq int

// List of valid state requests.
const (
	ReqFramenum StateReq = iota
	ReqScanline
	ReqClock
)
