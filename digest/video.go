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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/vgagen/curated"
	"github.com/jetsetilly/vgagen/hardware/vga/timing"
)

// Error patterns raised by the digest package.
const (
	DigestError = "digest: %v"
)

const pixelDepth = 3

// Video is an implementation of the vga.PixelRenderer interface that
// fingerprints every frame.
type Video struct {
	tim      timing.Timing
	digest   [sha1.Size]byte
	pixels   []byte
	frameNum int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo(tim timing.Timing) *Video {
	dig := &Video{tim: tim}

	// the pixel array leaves room at the head for the previous frame's
	// digest value. every position in the raster is recorded, not just the
	// visible area
	l := len(dig.digest)
	l += tim.HTotal() * tim.VTotal() * pixelDepth
	dig.pixels = make([]byte, l)

	return dig
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
}

// NewFrame implements the vga.PixelRenderer interface.
func (dig *Video) NewFrame(frameNum int) error {
	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the video data
	n := copy(dig.pixels, dig.digest[:])
	if n != len(dig.digest) {
		return curated.Errorf(DigestError, "digest error during new frame")
	}
	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum = frameNum
	return nil
}

// NewScanline implements the vga.PixelRenderer interface.
func (dig *Video) NewScanline(scanline int) error {
	return nil
}

// SetPixel implements the vga.PixelRenderer interface. Pixels are recorded
// regardless of the state of the display enable flag.
func (dig *Video) SetPixel(x, y int, red, green, blue uint8, enable bool) error {
	// preserve the first few bytes for the chained fingerprint
	i := len(dig.digest)
	i += (y*dig.tim.HTotal() + x) * pixelDepth

	if i <= len(dig.pixels)-pixelDepth {
		dig.pixels[i] = red
		dig.pixels[i+1] = green
		dig.pixels[i+2] = blue
	}

	return nil
}

// EndRendering implements the vga.PixelRenderer interface.
func (dig *Video) EndRendering() error {
	return nil
}
