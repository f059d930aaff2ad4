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

// Package capture saves frames of the generated picture as PNG files. Only
// the visible display area is saved; the blanking regions carry no picture
// information.
package capture

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/jetsetilly/vgagen/curated"
	"github.com/jetsetilly/vgagen/hardware/vga/timing"
)

// Error patterns raised by the capture package.
const (
	CaptureError = "capture: %v"
)

// Image is an implementation of the vga.PixelRenderer interface. It draws
// into an off-screen image which can be saved to disk with the Save()
// function.
type Image struct {
	tim timing.Timing

	// currFrameData is the image we write to, until NewFrame() is called
	// again. lastFrameData is the most recently completed frame
	currFrameData *image.NRGBA
	currFrameNum  int
	lastFrameData *image.NRGBA
	lastFrameNum  int
}

// NewImage is the preferred method of initialisation for the Image type.
func NewImage(tim timing.Timing) *Image {
	img := &Image{tim: tim}
	img.currFrameData = image.NewNRGBA(image.Rect(0, 0, tim.HDisplay, tim.VDisplay))
	return img
}

// NewFrame implements the vga.PixelRenderer interface.
func (img *Image) NewFrame(frameNum int) error {
	img.lastFrameData = img.currFrameData
	img.lastFrameNum = img.currFrameNum

	img.currFrameData = image.NewNRGBA(image.Rect(0, 0, img.tim.HDisplay, img.tim.VDisplay))
	img.currFrameNum = frameNum

	return nil
}

// NewScanline implements the vga.PixelRenderer interface.
func (img *Image) NewScanline(scanline int) error {
	return nil
}

// SetPixel implements the vga.PixelRenderer interface. Pixels outside of the
// visible display area are discarded.
func (img *Image) SetPixel(x, y int, red, green, blue uint8, enable bool) error {
	if !enable {
		return nil
	}
	img.currFrameData.SetNRGBA(x, y, color.NRGBA{R: red, G: green, B: blue, A: 255})
	return nil
}

// EndRendering implements the vga.PixelRenderer interface.
func (img *Image) EndRendering() error {
	return nil
}

// Save the most recently completed frame to disk. The frame number and the
// png extension are appended to the file name base. Existing files are never
// overwritten.
func (img *Image) Save(fileNameBase string) error {
	if img.lastFrameData == nil {
		return curated.Errorf(CaptureError, "no completed frame to save")
	}

	imageName := fmt.Sprintf("%s_%d.png", fileNameBase, img.lastFrameNum)

	f, err := os.Open(imageName)
	if f != nil {
		f.Close()
		return curated.Errorf(CaptureError, fmt.Sprintf("image file (%s) already exists", imageName))
	}
	if err != nil && !os.IsNotExist(err) {
		return curated.Errorf(CaptureError, err)
	}

	f, err = os.Create(imageName)
	if err != nil {
		return curated.Errorf(CaptureError, err)
	}
	defer f.Close()

	if err := png.Encode(f, img.lastFrameData); err != nil {
		return curated.Errorf(CaptureError, err)
	}

	return nil
}
