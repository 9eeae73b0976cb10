/*
 * YakGo - bitboard chess move generation engine in GO
 *
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

// Orientation is an index type for the eight ray directions from a square.
// Other than Direction (which is a square offset) Orientation is a dense
// 0-7 index usable for table lookups.
type Orientation uint8

// Orientation is an index type for the eight ray directions from a square
//noinspection GoVarAndConstTypeMayBeOmitted
const (
	N  Orientation = 0
	NE Orientation = 1
	E  Orientation = 2
	SE Orientation = 3
	S  Orientation = 4
	SW Orientation = 5
	W  Orientation = 6
	NW Orientation = 7
)

// OrientationLength number of orientations
const OrientationLength int = 8

// orientation to single step direction
var orientationDirections = [OrientationLength]Direction{
	North, Northeast, East, Southeast, South, Southwest, West, Northwest}

// Direction returns the single step Direction of the Orientation
func (o Orientation) Direction() Direction {
	return orientationDirections[o]
}

// IsPositive returns true if stepping in this orientation increases the
// square index. Used to decide between Lsb and Msb when looking for the
// closest blocker on a ray.
func (o Orientation) IsPositive() bool {
	return o <= E || o == NW
}

// String returns a string representation of an Orientation
func (o Orientation) String() string {
	return o.Direction().String()
}
