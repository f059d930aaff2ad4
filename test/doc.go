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

// Package test contains helper functions to remove common boilerplate from
// the project tests.
//
// The "Expect" functions mark the test as failed but allow it to continue.
// The "Demand" functions halt the test immediately. Demand is preferred when
// subsequent test steps would be meaningless if the value is wrong.
//
// The ExpectSuccess/ExpectFailure pair test a value for a success or failure
// condition appropriate to the type. The nil type is interpreted as a
// success, which is consistent with how the error type works (nil indicating
// no error).
//
// All functions accept optional trailing tags which are added to any test
// failure message. Useful when the same expectation is made many times in a
// loop and the failing iteration needs to be identified.
package test
