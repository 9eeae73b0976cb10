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
	"errors"

	. "github.com/frankkopp/YakGo/internal/types"
)

// Move rejection and undo errors. MakeMove only returns an error when
// the move is structurally inconsistent with the current board - moves
// coming from GenerateMoves always succeed.
var (
	// ErrNoPieceToMove is returned when the moved piece encoded in the
	// move is not on the from square - for a castle move when the king
	// or the castling rook is not on its starting square
	ErrNoPieceToMove = errors.New("no piece to move on from square")
	// ErrNoPieceToCapture is returned when the captured piece encoded in
	// the move is not on the capture square
	ErrNoPieceToCapture = errors.New("no piece to capture on to square")
	// ErrInvalidToOrFrom is returned when from and to square of a non
	// castle move do not form a move
	ErrInvalidToOrFrom = errors.New("invalid to or from square")
	// ErrEmptyStack is returned by UndoMove when there is no move to undo
	ErrEmptyStack = errors.New("undo on empty game state stack")
)

// castling squares - the from and to squares for castling are fixed
// per side and colour (index is the Colour: Black 0, White 1)
var (
	kingCastleSource    = [ColourLength]Bitboard{SqE8.Bb(), SqE1.Bb()}
	kingSideKingTarget  = [ColourLength]Bitboard{SqG8.Bb(), SqG1.Bb()}
	queenSideKingTarget = [ColourLength]Bitboard{SqC8.Bb(), SqC1.Bb()}
	kingSideRookSource  = [ColourLength]Bitboard{SqH8.Bb(), SqH1.Bb()}
	kingSideRookTarget  = [ColourLength]Bitboard{SqF8.Bb(), SqF1.Bb()}
	queenSideRookSource = [ColourLength]Bitboard{SqA8.Bb(), SqA1.Bb()}
	queenSideRookTarget = [ColourLength]Bitboard{SqD8.Bb(), SqD1.Bb()}
)

// MakeMove commits a move to the board. The move is applied to the
// bitboards and a new game state node is pushed. There is no check if
// the move is legal on the current position - legality is handled by
// the move generation. A structurally inconsistent move is rejected
// with an error and leaves the board unchanged. The to square of a non
// capturing move is not checked for occupancy.
func (b *Board) MakeMove(m Move) error {
	if err := b.processMove(m, b.state.SideToMove(), false); err != nil {
		return err
	}
	b.state.Update(m)
	return nil
}

// UndoMove resets the board to the state before the last move. The
// state node is popped and the same XOR operations are re-applied -
// XOR is its own inverse. Returns ErrEmptyStack when called on the
// root position.
func (b *Board) UndoMove() error {
	m, ok := b.state.Pop()
	if !ok {
		return ErrEmptyStack
	}
	// after the pop the side to move is the side which made the move
	return b.processMove(m, b.state.SideToMove(), true)
}

// processMove executes a move on the bitboards. With undo set the
// exact same XOR operations revert a previously applied move - in that
// case the structural validation is skipped as the piece placement is
// the post-move one.
func (b *Board) processMove(m Move, c Colour, undo bool) error {
	if m.IsCastle() {
		if !undo {
			rookSource := kingSideRookSource[c]
			if m.CastleSideOf() != KingSideCastle {
				rookSource = queenSideRookSource[c]
			}
			if b.pieceTypeBb[King]&b.colourBb[c]&kingCastleSource[c] == 0 ||
				b.pieceTypeBb[Rook]&b.colourBb[c]&rookSource == 0 {
				return ErrNoPieceToMove
			}
		}
		b.processCastle(m.CastleSideOf(), c)
		return nil
	}
	if m.IsEnPassant() {
		return b.processEp(m, c, undo)
	}

	from := m.From()
	to := m.To()
	moved := m.Moved()

	if !undo {
		switch {
		case from == to:
			return ErrInvalidToOrFrom
		case b.pieceTypeBb[moved]&b.colourBb[c]&from.Bb() == 0:
			return ErrNoPieceToMove
		case m.IsCapture() && b.pieceTypeBb[m.Captured()]&b.colourBb[c.Flip()]&to.Bb() == 0:
			return ErrNoPieceToCapture
		}
	}

	fromTo := from.Bb() ^ to.Bb()

	// the basic move
	b.pieceTypeBb[moved] ^= fromTo
	b.colourBb[c] ^= fromTo

	// remove the captured piece
	if m.IsCapture() {
		b.pieceTypeBb[m.Captured()] ^= to.Bb()
		b.colourBb[c.Flip()] ^= to.Bb()
	}

	// swap the pawn for the promoted piece type
	if m.IsPromotion() {
		b.pieceTypeBb[Pawn] ^= to.Bb()
		b.pieceTypeBb[m.PromotionType()] ^= to.Bb()
	}

	return nil
}

// processCastle moves king and rook of a castle move. The squares are
// fixed per side and colour so the move word itself only carries the
// castle side.
func (b *Board) processCastle(side CastleSide, c Colour) {
	var kingFromTo, rookFromTo Bitboard
	if side == KingSideCastle {
		kingFromTo = kingCastleSource[c] ^ kingSideKingTarget[c]
		rookFromTo = kingSideRookSource[c] ^ kingSideRookTarget[c]
	} else {
		kingFromTo = kingCastleSource[c] ^ queenSideKingTarget[c]
		rookFromTo = queenSideRookSource[c] ^ queenSideRookTarget[c]
	}
	b.pieceTypeBb[King] ^= kingFromTo
	b.colourBb[c] ^= kingFromTo
	b.pieceTypeBb[Rook] ^= rookFromTo
	b.colourBb[c] ^= rookFromTo
}

// processEp executes an en passant capture. The captured pawn square is
// derived from the to square of the move (one rank behind the target)
// instead of the state's ep square so that the exact same operation
// works for the undo as well.
func (b *Board) processEp(m Move, c Colour, undo bool) error {
	from := m.From()
	to := m.To()
	captureSquare := pawnSinglePushSources(c, to.Bb())

	if !undo {
		switch {
		case from == to:
			return ErrInvalidToOrFrom
		case b.pieceTypeBb[Pawn]&b.colourBb[c]&from.Bb() == 0:
			return ErrNoPieceToMove
		case b.pieceTypeBb[Pawn]&b.colourBb[c.Flip()]&captureSquare == 0:
			return ErrNoPieceToCapture
		}
	}

	fromTo := from.Bb() ^ to.Bb()
	b.pieceTypeBb[Pawn] ^= fromTo
	b.colourBb[c] ^= fromTo
	b.pieceTypeBb[Pawn] ^= captureSquare
	b.colourBb[c.Flip()] ^= captureSquare
	return nil
}
