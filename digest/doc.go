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

// Package digest fingerprints the video output of the generator. The Video
// type implements the vga.PixelRenderer interface and folds every completed
// frame into a rolling SHA-1 sum, with each frame's fingerprint chained to
// the fingerprint of the frame before it.
//
// Two runs of the generator with the same timing, the same pattern and the
// same tick sequence produce the same fingerprint. Any divergence, on any
// clock of any frame, produces a different one. This is the foundation of
// the project's regression testing.
//
// SHA-1 is sufficient for this purpose; fingerprinting frames is not a
// cryptographic task.
package digest
