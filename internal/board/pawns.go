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

// Pawn source-target relations. All pawn moves are derived purely from
// bitboard shifts parameterised by colour. The source functions are the
// inverse shifts of the target functions so that sources and targets can
// be popped in lockstep during move generation.

// pawnSinglePushTargets returns the squares reached by single pushing
// the given pawns
func pawnSinglePushTargets(c Colour, source Bitboard) Bitboard {
	if c == White {
		return ShiftBitboard(source, North)
	}
	return ShiftBitboard(source, South)
}

// pawnSinglePushSources returns the squares pawns have to be on to
// reach the given targets with a single push
func pawnSinglePushSources(c Colour, target Bitboard) Bitboard {
	if c == White {
		return ShiftBitboard(target, South)
	}
	return ShiftBitboard(target, North)
}

// pawnWestAttackTargets returns the squares attacked by the given pawns
// towards the west
func pawnWestAttackTargets(c Colour, source Bitboard) Bitboard {
	if c == White {
		return ShiftBitboard(source, Northwest)
	}
	return ShiftBitboard(source, Southwest)
}

// pawnWestAttackSources returns the squares pawns have to be on to
// attack the given targets towards the west
func pawnWestAttackSources(c Colour, target Bitboard) Bitboard {
	if c == White {
		return ShiftBitboard(target, Southeast)
	}
	return ShiftBitboard(target, Northeast)
}

// pawnEastAttackTargets returns the squares attacked by the given pawns
// towards the east
func pawnEastAttackTargets(c Colour, source Bitboard) Bitboard {
	if c == White {
		return ShiftBitboard(source, Northeast)
	}
	return ShiftBitboard(source, Southeast)
}

// pawnEastAttackSources returns the squares pawns have to be on to
// attack the given targets towards the east
func pawnEastAttackSources(c Colour, target Bitboard) Bitboard {
	if c == White {
		return ShiftBitboard(target, Southwest)
	}
	return ShiftBitboard(target, Northwest)
}

// promotablePawns returns the pawns which promote with their next push
// (white pawns on rank 7, black pawns on rank 2)
func promotablePawns(c Colour, pawns Bitboard) Bitboard {
	return c.PromotablePawnRankBb() & pawns
}

// nonPromotablePawns returns the pawns not on the pre-promotion rank
func nonPromotablePawns(c Colour, pawns Bitboard) Bitboard {
	return pawns &^ c.PromotablePawnRankBb()
}

// pawnAttacks returns all squares attacked by the given pawns
func pawnAttacks(c Colour, pawns Bitboard) Bitboard {
	return pawnWestAttackTargets(c, pawns) | pawnEastAttackTargets(c, pawns)
}
