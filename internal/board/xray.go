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

package board

import (
	. "github.com/frankkopp/YakGo/internal/types"
)

// XRayAttacks returns the squares a sliding piece of the given type on
// sq would attack if the first blocker of the given blocker set were
// removed from each ray:
//  attacks(sq, occ) ^ attacks(sq, occ ^ (attacks(sq, occ) & blockers))
// Only Rook, Bishop and Queen are meaningful piece types here.
func XRayAttacks(pt PieceType, sq Square, occupied Bitboard, blockers Bitboard) Bitboard {
	attacks := GetAttacksBb(pt, sq, occupied)
	blockers &= attacks
	return attacks ^ GetAttacksBb(pt, sq, occupied^blockers)
}

// Pinners returns the opponent sliders which pin a piece of the given
// colour against its king
func (b *Board) Pinners(c Colour) Bitboard {
	king := b.GetPosition(c, King)
	if king == BbZero {
		return BbZero
	}
	kingSq := king.Lsb()
	occupied := b.OccupiedSquares()
	own := b.colourBb[c]
	them := c.Flip()

	pinners := XRayAttacks(Rook, kingSq, occupied, own) &
		(b.GetPosition(them, Rook) | b.GetPosition(them, Queen))
	pinners |= XRayAttacks(Bishop, kingSq, occupied, own) &
		(b.GetPosition(them, Bishop) | b.GetPosition(them, Queen))
	return pinners
}

// Pinned returns the pieces of the given colour which are absolutely
// pinned against their own king - the pieces between the king and each
// pinner found by the x-ray attacks
func (b *Board) Pinned(c Colour) Bitboard {
	king := b.GetPosition(c, King)
	if king == BbZero {
		return BbZero
	}
	kingSq := king.Lsb()
	own := b.colourBb[c]

	pinned := BbZero
	pinners := b.Pinners(c)
	for pinners != BbZero {
		pinner := pinners.PopLsb()
		pinned |= Intermediate(kingSq, pinner) & own
	}
	return pinned
}
