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

// assertBoardInvariants checks the structural bitboard invariants:
// piece type bitboards are pairwise disjoint, colour bitboards are
// disjoint and both families cover the same occupied set
func assertBoardInvariants(t *testing.T, b *Board) {
	t.Helper()
	typeUnion := BbZero
	for t1 := Pawn; t1 <= King; t1++ {
		for t2 := t1 + 1; t2 <= King; t2++ {
			assert.Equal(t, BbZero, b.GetPositionType(t1)&b.GetPositionType(t2),
				"piece type bitboards %s and %s overlap", t1.String(), t2.String())
		}
		typeUnion |= b.GetPositionType(t1)
	}
	assert.Equal(t, BbZero, b.GetPositionColour(White)&b.GetPositionColour(Black),
		"colour bitboards overlap")
	colourUnion := b.GetPositionColour(White) | b.GetPositionColour(Black)
	assert.Equal(t, typeUnion, colourUnion)
	assert.Equal(t, typeUnion, b.OccupiedSquares())
	assert.Equal(t, ^typeUnion, b.EmptySquares())
}

func TestSetupStartPosition(t *testing.T) {
	b := NewBoard()
	assert.NotNil(t, b)

	assert.Equal(t, White, b.SideToMove())
	assert.Equal(t, Rank2_Bb, b.GetPosition(White, Pawn))
	assert.Equal(t, Rank7_Bb, b.GetPosition(Black, Pawn))
	assert.Equal(t, SqE1.Bb(), b.GetPosition(White, King))
	assert.Equal(t, SqE8.Bb(), b.GetPosition(Black, King))
	assert.Equal(t, SqA1.Bb()|SqH1.Bb(), b.GetPosition(White, Rook))
	assert.Equal(t, Rank1_Bb|Rank2_Bb, b.GetPositionColour(White))
	assert.Equal(t, Rank7_Bb|Rank8_Bb, b.GetPositionColour(Black))
	assert.Equal(t, 32, b.OccupiedSquares().PopCount())

	assert.Equal(t, CastlingAny, b.CastlingRights())
	assert.Equal(t, SqNone, b.EpTargetSquare())
	assert.Equal(t, BbZero, b.EpTarget())
	assert.Equal(t, uint8(0), b.HalfMoveClock())
	assert.Equal(t, uint16(1), b.MoveClock())
	assert.Equal(t, SqE1, b.KingSquare(White))
	assert.Equal(t, SqE8, b.KingSquare(Black))

	assertBoardInvariants(t, b)
}

func TestPieceProbes(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, Pawn, b.PieceTypeOn(SqE2))
	assert.Equal(t, White, b.PieceColourOn(SqE2))
	assert.Equal(t, Queen, b.PieceTypeOn(SqD8))
	assert.Equal(t, Black, b.PieceColourOn(SqD8))
	assert.Equal(t, PtNone, b.PieceTypeOn(SqE4))
	assert.Equal(t, ColourNone, b.PieceColourOn(SqE4))
}

func TestFenRoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbqkbnr/ppp2ppp/3p4/1B2p3/4P3/5N2/PPPP1PPP/RNBQK2R b KQkq - 0 1",
		"r2q1bkr/ppp3pp/2n1B3/4p3/8/5Q2/PPPP1PPP/RNB1K2R b KQkq - 0 1",
		"8/8/8/8/Pp6/1P6/8/8 b KQkq a3 0 1",
		"4k3/8/8/8/8/8/8/4K2R w K - 12 42",
		"8/8/4r3/8/8/8/8/4K2R w K - 0 1",
	}
	for _, fen := range fens {
		b, err := NewBoardFen(fen)
		assert.NoError(t, err, "fen %s should parse", fen)
		assert.Equal(t, fen, b.Fen(), "fen round trip failed for %s", fen)
		assertBoardInvariants(t, b)
	}
}

func TestFenErrors(t *testing.T) {
	fens := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP", // missing last rank
		"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",  // invalid digit
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPPP/RNBQKBNR w KQkq - 0 1", // rank too long
		"rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",   // rank too short
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",  // invalid side
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQxq - 0 1",  // invalid castling
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq a9 0 1", // invalid ep square
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x 1",  // invalid half move clock
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 x",  // invalid move number
		"rnbqkbnr/pppppppp/8/8/8/8/XPPPPPPP/RNBQKBNR w KQkq - 0 1",  // invalid piece letter
	}
	for _, fen := range fens {
		b, err := NewBoardFen(fen)
		assert.Error(t, err, "fen %s should not parse", fen)
		assert.Nil(t, b)
	}
}

// after a failed reset the board is in a defined empty state
func TestResetErrorLeavesEmptyBoard(t *testing.T) {
	b := NewBoard()
	err := b.Reset("not a fen")
	assert.Error(t, err)
	assert.Equal(t, BbZero, b.OccupiedSquares())
	assert.Equal(t, White, b.SideToMove())
	assert.Equal(t, CastlingNone, b.CastlingRights())
	assert.Equal(t, SqNone, b.EpTargetSquare())

	// the board can be reused after a failed reset
	assert.NoError(t, b.Reset(StartFen))
	assert.Equal(t, StartFen, b.Fen())
}

func TestFenMissingOptionalFields(t *testing.T) {
	// only the piece placement is required - everything else defaults
	b, err := NewBoardFen("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR")
	assert.NoError(t, err)
	assert.Equal(t, White, b.SideToMove())
	assert.Equal(t, CastlingNone, b.CastlingRights())
	assert.Equal(t, SqNone, b.EpTargetSquare())
	assert.Equal(t, uint8(0), b.HalfMoveClock())
	assert.Equal(t, uint16(1), b.MoveClock())
}

func TestAttackedBy(t *testing.T) {
	b := NewBoard()
	attackedByWhite := b.AttackedBy(White)
	// in the start position white attacks the whole third rank plus the
	// squares of the knight jumps back to the first rank are defended
	// and therefore not included
	assert.Equal(t, Rank3_Bb, attackedByWhite&Rank3_Bb)
	assert.Equal(t, BbZero, attackedByWhite&Rank4_Bb)
	assert.False(t, attackedByWhite.Has(SqE2))

	attackedByBlack := b.AttackedBy(Black)
	assert.Equal(t, Rank6_Bb, attackedByBlack&Rank6_Bb)
	assert.Equal(t, BbZero, attackedByBlack&Rank5_Bb)

	// black rook on e6 - the ray south stops at and includes the white king
	b, _ = NewBoardFen("8/8/4r3/8/8/8/8/4K2R w K - 0 1")
	expected := squaresBb(SqE7, SqE8) | // north
		squaresBb(SqE5, SqE4, SqE3, SqE2, SqE1) | // south up to the king
		squaresBb(SqF6, SqG6, SqH6) | // east
		squaresBb(SqD6, SqC6, SqB6, SqA6) // west
	assert.Equal(t, expected, b.AttackedBy(Black))
}

func squaresBb(sqs ...Square) Bitboard {
	b := BbZero
	for _, sq := range sqs {
		b.PushSquare(sq)
	}
	return b
}

func TestStringBoard(t *testing.T) {
	b := NewBoard()
	s := b.StringBoard()
	assert.Contains(t, s, "| r | n | b | q | k | b | n | r |")
	assert.Contains(t, s, "| R | N | B | Q | K | B | N | R |")
	assert.Contains(t, b.String(), StartFen)
}
