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

// Package curated provides the error type used throughout the project. A
// curated error remembers the pattern string it was created with, meaning
// that errors can be compared regardless of the specific values interpolated
// into the message.
//
// For example, the timing package rejects a bad phase length with:
//
//	curated.Errorf(timing.InvalidTiming, ...)
//
// and a caller interested in whether construction failed for that reason can
// test with:
//
//	curated.Is(err, timing.InvalidTiming)
//
// The Error() function de-duplicates adjacent identical parts of the message
// chain, keeping messages short when errors are wrapped as they rise through
// the call stack.
package curated
