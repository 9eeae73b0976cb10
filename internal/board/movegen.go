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
	"github.com/frankkopp/YakGo/internal/moveslice"
	. "github.com/frankkopp/YakGo/internal/types"
)

// GenerateMoves generates all legal moves for the side to move into
// the internal move buffer and returns it. The buffer is reused and
// invalidated by the next call to GenerateMoves or IsCheckmate - use
// GenerateMovesTo with a caller owned buffer when moves need to
// survive recursion (e.g. perft).
func (b *Board) GenerateMoves() *moveslice.MoveSlice {
	b.GenerateMovesTo(b.legalMoves)
	return b.legalMoves
}

// GenerateMovesTo generates all legal moves for the side to move into
// the given buffer. The buffer is cleared first.
//
// Generation runs in phases: pawn moves (pushes, double pushes,
// captures, each with and without promotion), en passant captures,
// then knight, king, bishop, rook and queen moves from the attack
// tables. The pseudo legal moves are filtered for king safety by trial
// application; moves of unpinned pieces while not in check skip the
// trial. Castling moves are generated last with their own legality
// conditions.
func (b *Board) GenerateMovesTo(ml *moveslice.MoveSlice) {
	ml.Clear()
	us := b.state.SideToMove()

	pseudo := b.pseudoLegalMoves
	pseudo.Clear()
	b.generatePawnMoves(us, pseudo)
	b.generateEpCaptures(us, pseudo)
	b.generatePieceMoves(Knight, us, pseudo)
	b.generatePieceMoves(King, us, pseudo)
	b.generatePieceMoves(Bishop, us, pseudo)
	b.generatePieceMoves(Rook, us, pseudo)
	b.generatePieceMoves(Queen, us, pseudo)

	inCheck := b.IsCheckColour(us)
	pinned := b.Pinned(us)

	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		// a move of an unpinned piece other than the king cannot expose
		// the own king while not in check - except en passant where the
		// captured pawn might have been the shield
		if !inCheck && !m.IsEnPassant() && m.Moved() != King && !pinned.Has(m.From()) {
			ml.PushBack(m)
			continue
		}
		_ = b.MakeMove(m)
		if !b.IsCheckColour(us) {
			ml.PushBack(m)
		}
		_ = b.UndoMove()
	}

	b.generateCastlingMoves(us, ml)
}

// AttackedBy returns a bitboard of all squares attacked by the given
// colour. Squares occupied by pieces of the same colour are not
// included (defended squares are not attacks).
func (b *Board) AttackedBy(c Colour) Bitboard {
	attacks := pawnAttacks(c, b.GetPosition(c, Pawn))
	for pt := Knight; pt <= King; pt++ {
		attacks |= b.pieceAttacks(pt, c)
	}
	return attacks &^ b.colourBb[c]
}

// IsCheck returns true if the king of the side to move is attacked
func (b *Board) IsCheck() bool {
	return b.IsCheckColour(b.state.SideToMove())
}

// IsCheckColour returns true if the king of the given colour is
// attacked by the opponent
func (b *Board) IsCheckColour(c Colour) bool {
	king := b.GetPosition(c, King)
	return king&b.AttackedBy(c.Flip()) != 0
}

// IsCheckmate returns true if the side to move is in check and has no
// legal move. Invalidates the internal move buffer.
func (b *Board) IsCheckmate() bool {
	if !b.IsCheck() {
		return false
	}
	return b.GenerateMoves().Len() == 0
}

// //////////////////////////////////////////////////////
// // Private
// //////////////////////////////////////////////////////

// pieceAttacks returns the union of the attacks of all pieces of the
// given type and colour with the current occupancy
func (b *Board) pieceAttacks(pt PieceType, c Colour) Bitboard {
	attacks := BbZero
	occupied := b.OccupiedSquares()
	pieces := b.GetPosition(c, pt)
	for pieces != BbZero {
		attacks |= GetAttacksBb(pt, pieces.PopLsb(), occupied)
	}
	return attacks
}

// generatePawnMoves emits all pseudo legal pawn moves except en
// passant captures - first the non promoting moves, then the
// promotions (four moves per promotion target)
func (b *Board) generatePawnMoves(us Colour, ml *moveslice.MoveSlice) {
	pawns := b.GetPosition(us, Pawn)
	empty := b.EmptySquares()

	b.generatePawnSinglePushes(us, false, pawns, empty, ml)
	b.generatePawnDoublePushes(us, pawns, empty, ml)
	b.generatePawnWestCaptures(us, false, pawns, ml)
	b.generatePawnEastCaptures(us, false, pawns, ml)

	b.generatePawnSinglePushes(us, true, pawns, empty, ml)
	b.generatePawnWestCaptures(us, true, pawns, ml)
	b.generatePawnEastCaptures(us, true, pawns, ml)
}

// generatePawnSinglePushes emits quiet pawn pushes. Sources and
// targets are popped in lockstep - the shift preserves the bit order.
func (b *Board) generatePawnSinglePushes(us Colour, promotions bool, pawns Bitboard, empty Bitboard, ml *moveslice.MoveSlice) {
	if promotions {
		pawns = promotablePawns(us, pawns)
	} else {
		pawns = nonPromotablePawns(us, pawns)
	}
	sources := pawnSinglePushSources(us, empty) & pawns
	targets := pawnSinglePushTargets(us, sources)

	for sources != BbZero {
		from := sources.PopLsb()
		to := targets.PopLsb()
		if promotions {
			ml.PushBack(MakeQuietPromotion(from, to, Knight))
			ml.PushBack(MakeQuietPromotion(from, to, Bishop))
			ml.PushBack(MakeQuietPromotion(from, to, Rook))
			ml.PushBack(MakeQuietPromotion(from, to, Queen))
		} else {
			ml.PushBack(MakeQuiet(from, to, Pawn))
		}
	}
}

// generatePawnDoublePushes emits pawn double pushes. Targets are the
// squares reachable with two pushes over empty squares which lie on
// the double push rank of the colour.
func (b *Board) generatePawnDoublePushes(us Colour, pawns Bitboard, empty Bitboard, ml *moveslice.MoveSlice) {
	targets := pawnSinglePushTargets(us, pawns) & empty
	targets = pawnSinglePushTargets(us, targets) & empty & us.DoublePushRankBb()
	sources := pawnSinglePushSources(us, pawnSinglePushSources(us, targets))

	for sources != BbZero {
		ml.PushBack(MakeDoublePush(sources.PopLsb(), targets.PopLsb()))
	}
}

// generatePawnWestCaptures emits pawn captures towards the west
func (b *Board) generatePawnWestCaptures(us Colour, promotions bool, pawns Bitboard, ml *moveslice.MoveSlice) {
	opponents := b.colourBb[us.Flip()]
	if promotions {
		pawns = promotablePawns(us, pawns)
	} else {
		pawns = nonPromotablePawns(us, pawns)
	}
	sources := pawnWestAttackSources(us, opponents) & pawns
	targets := pawnWestAttackTargets(us, sources)

	for sources != BbZero {
		from := sources.PopLsb()
		to := targets.PopLsb()
		captured := b.PieceTypeOn(to)
		if promotions {
			ml.PushBack(MakeCapturePromotion(from, to, Knight, captured))
			ml.PushBack(MakeCapturePromotion(from, to, Bishop, captured))
			ml.PushBack(MakeCapturePromotion(from, to, Rook, captured))
			ml.PushBack(MakeCapturePromotion(from, to, Queen, captured))
		} else {
			ml.PushBack(MakeCapture(from, to, Pawn, captured))
		}
	}
}

// generatePawnEastCaptures emits pawn captures towards the east
func (b *Board) generatePawnEastCaptures(us Colour, promotions bool, pawns Bitboard, ml *moveslice.MoveSlice) {
	opponents := b.colourBb[us.Flip()]
	if promotions {
		pawns = promotablePawns(us, pawns)
	} else {
		pawns = nonPromotablePawns(us, pawns)
	}
	sources := pawnEastAttackSources(us, opponents) & pawns
	targets := pawnEastAttackTargets(us, sources)

	for sources != BbZero {
		from := sources.PopLsb()
		to := targets.PopLsb()
		captured := b.PieceTypeOn(to)
		if promotions {
			ml.PushBack(MakeCapturePromotion(from, to, Knight, captured))
			ml.PushBack(MakeCapturePromotion(from, to, Bishop, captured))
			ml.PushBack(MakeCapturePromotion(from, to, Rook, captured))
			ml.PushBack(MakeCapturePromotion(from, to, Queen, captured))
		} else {
			ml.PushBack(MakeCapture(from, to, Pawn, captured))
		}
	}
}

// generateEpCaptures emits the en passant captures onto the current en
// passant target square. There are at most two of these.
func (b *Board) generateEpCaptures(us Colour, ml *moveslice.MoveSlice) {
	epTarget := b.EpTarget()
	if epTarget == BbZero {
		return
	}
	pawns := b.GetPosition(us, Pawn)

	sources := pawnWestAttackSources(us, epTarget) & pawns
	targets := pawnWestAttackTargets(us, sources)
	for sources != BbZero {
		ml.PushBack(MakeEpCapture(sources.PopLsb(), targets.PopLsb()))
	}

	sources = pawnEastAttackSources(us, epTarget) & pawns
	targets = pawnEastAttackTargets(us, sources)
	for sources != BbZero {
		ml.PushBack(MakeEpCapture(sources.PopLsb(), targets.PopLsb()))
	}
}

// generatePieceMoves emits all pseudo legal moves of the given piece
// type from the pre-computed attack tables - quiet moves to empty
// squares and captures against opponent pieces
func (b *Board) generatePieceMoves(pt PieceType, us Colour, ml *moveslice.MoveSlice) {
	pieces := b.GetPosition(us, pt)
	occupied := b.OccupiedSquares()
	empty := ^occupied
	opponents := b.colourBb[us.Flip()]

	for pieces != BbZero {
		from := pieces.PopLsb()
		attacks := GetAttacksBb(pt, from, occupied)

		quiet := attacks & empty
		for quiet != BbZero {
			ml.PushBack(MakeQuiet(from, quiet.PopLsb(), pt))
		}

		captures := attacks & opponents
		for captures != BbZero {
			to := captures.PopLsb()
			ml.PushBack(MakeCapture(from, to, pt, b.PieceTypeOn(to)))
		}
	}
}

// generateCastlingMoves emits the legal castle moves for the side to
// move. Castling requires the right to still be held, the king not to
// be in check, the squares the king crosses and lands on to be empty
// and unattacked and - for the queen side - the square next to the
// rook to be empty as well.
func (b *Board) generateCastlingMoves(us Colour, ml *moveslice.MoveSlice) {
	canKingSide := b.CanKingSideCastle(us)
	canQueenSide := b.CanQueenSideCastle(us)
	if !canKingSide && !canQueenSide {
		return
	}

	king := b.GetPosition(us, King)
	if king == BbZero || b.IsCheckColour(us) {
		return
	}

	occupied := b.OccupiedSquares()
	attacked := b.AttackedBy(us.Flip())

	if canKingSide {
		kingPath := ShiftBitboard(king, East) | ShiftBitboard(ShiftBitboard(king, East), East)
		if kingPath&occupied == BbZero && kingPath&attacked == BbZero {
			ml.PushBack(MakeKingSideCastle())
		}
	}

	if canQueenSide {
		kingPath := ShiftBitboard(king, West) | ShiftBitboard(ShiftBitboard(king, West), West)
		rookPath := kingPath | ShiftBitboard(kingPath, West)
		if rookPath&occupied == BbZero && kingPath&attacked == BbZero {
			ml.PushBack(MakeQueenSideCastle())
		}
	}
}
