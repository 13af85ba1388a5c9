/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package types

// ValueType classifies a transposition table entry's relationship to the
// true minimax value: Exact, Lowerbound (failed high, a beta cutoff), or
// Upperbound (failed low, no improvement on alpha).
type ValueType int8

const (
	VtNone       ValueType = 0
	VtExact      ValueType = 1
	VtUpperbound ValueType = 2
	VtLowerbound ValueType = 3
	VtLength     int       = 4
)

// IsValid reports whether vt is one of the defined value types.
func (vt ValueType) IsValid() bool {
	return vt >= VtNone && vt < ValueType(VtLength)
}

var valueTypeToString = [VtLength]string{"NoValue", "Exact", "Upperbound", "Lowerbound"}

// String returns a string representation of the value type.
func (vt ValueType) String() string {
	return valueTypeToString[vt]
}
