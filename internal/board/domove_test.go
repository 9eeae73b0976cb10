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
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/YakGo/internal/types"
)

// snapshot of the full board representation for restore checks
type boardSnapshot struct {
	pieceTypeBb [PtLength]Bitboard
	colourBb    [ColourLength]Bitboard
	fen         string
	depth       int
}

func snapshot(b *Board) boardSnapshot {
	return boardSnapshot{
		pieceTypeBb: b.pieceTypeBb,
		colourBb:    b.colourBb,
		fen:         b.Fen(),
		depth:       b.state.Depth(),
	}
}

// make/undo of every legal move must restore the board bitwise
func assertMakeUndoRestores(t *testing.T, fen string) {
	t.Helper()
	b, err := NewBoardFen(fen)
	assert.NoError(t, err)
	before := snapshot(b)
	moves := b.GenerateMoves().Clone()
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		assert.NoError(t, b.MakeMove(m))
		assertBoardInvariants(t, b)
		assert.NoError(t, b.UndoMove())
		assert.Equal(t, before, snapshot(b), "make/undo of %s changed the board", m.StringUci())
	}
}

func TestMakeUndoRestores(t *testing.T) {
	fens := []string{
		StartFen,
		// positions with castling, en passant, promotions and pins
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 b - - 0 1",
		"n1n5/PPPk4/8/8/8/8/4Kppp/5N1N w - - 0 1",
		"8/8/8/8/Pp6/1P6/8/8 b - a3 0 1",
	}
	for _, fen := range fens {
		assertMakeUndoRestores(t, fen)
	}
}

// scenario: the double push a2-a4 sets the en passant target a3
func TestDoublePushSetsEpTarget(t *testing.T) {
	b := NewBoard()
	assert.NoError(t, b.MakeMove(MakeDoublePush(SqA2, SqA4)))
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/P7/8/1PPPPPPP/RNBQKBNR b KQkq a3 0 1", b.Fen())
	assertBoardInvariants(t, b)
}

// scenario: en passant capture b4xa3 removes the white a4 pawn
func TestEnPassantCapture(t *testing.T) {
	b, err := NewBoardFen("8/8/8/8/Pp6/1P6/8/8 b KQkq a3 0 1")
	assert.NoError(t, err)
	assert.NoError(t, b.MakeMove(MakeEpCapture(SqB4, SqA3)))
	assert.Equal(t, "8/8/8/8/8/pP6/8/8 w KQkq - 0 2", b.Fen())
	assertBoardInvariants(t, b)

	assert.NoError(t, b.UndoMove())
	assert.Equal(t, "8/8/8/8/Pp6/1P6/8/8 b KQkq a3 0 1", b.Fen())
}

func TestCastleMoves(t *testing.T) {
	fen := "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1"

	// white king side
	b, _ := NewBoardFen(fen)
	assert.NoError(t, b.MakeMove(MakeKingSideCastle()))
	assert.Equal(t, SqG1.Bb(), b.GetPosition(White, King))
	assert.Equal(t, SqA1.Bb()|SqF1.Bb(), b.GetPosition(White, Rook))
	assert.Equal(t, "kq", b.CastlingRights().String())
	assertBoardInvariants(t, b)
	assert.NoError(t, b.UndoMove())
	assert.Equal(t, fen, b.Fen())

	// white queen side
	assert.NoError(t, b.MakeMove(MakeQueenSideCastle()))
	assert.Equal(t, SqC1.Bb(), b.GetPosition(White, King))
	assert.Equal(t, SqD1.Bb()|SqH1.Bb(), b.GetPosition(White, Rook))
	assert.NoError(t, b.UndoMove())

	// black king side
	b.MakeMove(MakeQuiet(SqE2, SqE3, Pawn))
	assert.NoError(t, b.MakeMove(MakeKingSideCastle()))
	assert.Equal(t, SqG8.Bb(), b.GetPosition(Black, King))
	assert.Equal(t, SqA8.Bb()|SqF8.Bb(), b.GetPosition(Black, Rook))
	assert.Equal(t, "KQ", b.CastlingRights().String())
	assert.NoError(t, b.UndoMove())

	// black queen side
	assert.NoError(t, b.MakeMove(MakeQueenSideCastle()))
	assert.Equal(t, SqC8.Bb(), b.GetPosition(Black, King))
	assert.Equal(t, SqD8.Bb()|SqH8.Bb(), b.GetPosition(Black, Rook))
	assertBoardInvariants(t, b)
}

func TestPromotionMoves(t *testing.T) {
	b, _ := NewBoardFen("1r6/P7/8/8/8/8/8/8 w - - 0 1")

	// quiet promotion
	assert.NoError(t, b.MakeMove(MakeQuietPromotion(SqA7, SqA8, Queen)))
	assert.Equal(t, BbZero, b.GetPosition(White, Pawn))
	assert.Equal(t, SqA8.Bb(), b.GetPosition(White, Queen))
	assertBoardInvariants(t, b)
	assert.NoError(t, b.UndoMove())
	assert.Equal(t, SqA7.Bb(), b.GetPosition(White, Pawn))
	assert.Equal(t, BbZero, b.GetPosition(White, Queen))

	// capture promotion
	assert.NoError(t, b.MakeMove(MakeCapturePromotion(SqA7, SqB8, Knight, Rook)))
	assert.Equal(t, SqB8.Bb(), b.GetPosition(White, Knight))
	assert.Equal(t, BbZero, b.GetPosition(Black, Rook))
	assertBoardInvariants(t, b)
	assert.NoError(t, b.UndoMove())
	assert.Equal(t, SqB8.Bb(), b.GetPosition(Black, Rook))
}

func TestMakeMoveRejections(t *testing.T) {
	b := NewBoard()

	// no piece on the from square
	assert.Equal(t, ErrNoPieceToMove, b.MakeMove(MakeQuiet(SqE4, SqE5, Pawn)))
	// wrong piece type on the from square
	assert.Equal(t, ErrNoPieceToMove, b.MakeMove(MakeQuiet(SqE2, SqE3, Knight)))
	// piece of the opponent on the from square
	assert.Equal(t, ErrNoPieceToMove, b.MakeMove(MakeQuiet(SqE7, SqE6, Pawn)))
	// no piece to capture on the to square
	assert.Equal(t, ErrNoPieceToCapture, b.MakeMove(MakeCapture(SqG1, SqF3, Knight, Pawn)))
	// from and to equal
	assert.Equal(t, ErrInvalidToOrFrom, b.MakeMove(MakeQuiet(SqE2, SqE2, Pawn)))

	// the board is unchanged after rejections
	assert.Equal(t, StartFen, b.Fen())
}

func TestUndoOnEmptyStack(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, ErrEmptyStack, b.UndoMove())

	assert.NoError(t, b.MakeMove(MakeDoublePush(SqE2, SqE4)))
	assert.NoError(t, b.UndoMove())
	assert.Equal(t, ErrEmptyStack, b.UndoMove())
	assert.Equal(t, StartFen, b.Fen())
}
