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

//go:build assertions
// +build assertions

package assert

// MainGoroutine panics if called from any goroutine other than the main
// goroutine. SDL requires that window creation and event handling happen in
// the main thread; this assertion catches code that has drifted off it.
func MainGoroutine() {
	if GetGoRoutineID() != 1 {
		panic("not called from the main goroutine")
	}
}
