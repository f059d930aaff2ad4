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

// Package vga implements the timing core of the generator.
//
// The only state carried from tick to tick is the pair of raster counters;
// the clock (horizontal) counter and the scanline (vertical) counter. The
// sync pulses, the display enable flag and the pixel colour are all derived
// from the current counter values on every tick. There are no latched
// outputs to fall out of step with the counters.
//
// The Tick() function advances the raster by exactly one pixel clock.
// Simulated time is therefore entirely in the hands of the caller; the
// generator knows nothing of real time or of the pixel clock frequency a
// real monitor would require.
//
// Renderers can be attached with AddPixelRenderer(). The generator forwards
// every derived sample to every attached renderer, along with new scanline
// and new frame events as the counters wrap.
package vga
