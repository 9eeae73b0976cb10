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

import "fmt"

// Colour represents constants for each chess colour Black and White.
// Black is 0 and White is 1 so the colour can be used directly as an
// array index.
type Colour uint8

// Constants for each colour
const (
	Black        Colour = 0
	White        Colour = 1
	ColourNone   Colour = 2
	ColourLength int    = 2
)

// Flip returns the opposite colour
func (c Colour) Flip() Colour {
	return c ^ 1
}

// IsValid checks if c represents a valid colour
func (c Colour) IsValid() bool {
	return c < 2
}

// String returns a string representation of colour as "b" or "w"
func (c Colour) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		panic(fmt.Sprintf("Invalid colour %d", c))
	}
}

// Colour pawn move direction
var pawnDir = [2]Direction{South, North}

// MoveDirection returns the direction of a pawn move for the colour
func (c Colour) MoveDirection() Direction {
	return pawnDir[c]
}

var promRankBb = [2]Bitboard{Rank1_Bb, Rank8_Bb}

// PromotionRankBb returns the rank on which the given colour promotes
func (c Colour) PromotionRankBb() Bitboard {
	return promRankBb[c]
}

var promPawnRankBb = [2]Bitboard{Rank2_Bb, Rank7_Bb}

// PromotablePawnRankBb returns the rank from which pawns of the given
// colour promote with their next single push
func (c Colour) PromotablePawnRankBb() Bitboard {
	return promPawnRankBb[c]
}

var doublePushRankBb = [2]Bitboard{Rank5_Bb, Rank4_Bb}

// DoublePushRankBb returns the rank on which a pawn double push of the
// given colour lands
func (c Colour) DoublePushRankBb() Bitboard {
	return doublePushRankBb[c]
}
