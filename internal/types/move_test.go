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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeQuiet(t *testing.T) {
	m := MakeQuiet(SqG1, SqF3, Knight)
	assert.Equal(t, SqG1, m.From())
	assert.Equal(t, SqF3, m.To())
	assert.Equal(t, Knight, m.Moved())
	assert.False(t, m.IsPawnMove())
	assert.False(t, m.IsDoublePush())
	assert.False(t, m.IsEnPassant())
	assert.False(t, m.IsCapture())
	assert.False(t, m.IsPromotion())
	assert.False(t, m.IsCastle())
	assert.Equal(t, "g1f3", m.StringUci())
}

func TestMakeQuietPawn(t *testing.T) {
	m := MakeQuiet(SqE2, SqE3, Pawn)
	assert.Equal(t, Pawn, m.Moved())
	assert.True(t, m.IsPawnMove())
	assert.False(t, m.IsDoublePush())
}

func TestMakeDoublePush(t *testing.T) {
	m := MakeDoublePush(SqE2, SqE4)
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
	assert.Equal(t, Pawn, m.Moved())
	assert.True(t, m.IsPawnMove())
	assert.True(t, m.IsDoublePush())
	assert.False(t, m.IsCapture())
	assert.False(t, m.IsEnPassant())
}

func TestMakeCapture(t *testing.T) {
	m := MakeCapture(SqD4, SqE5, Pawn, Knight)
	assert.Equal(t, SqD4, m.From())
	assert.Equal(t, SqE5, m.To())
	assert.Equal(t, Pawn, m.Moved())
	assert.Equal(t, Knight, m.Captured())
	assert.True(t, m.IsCapture())
	assert.True(t, m.IsPawnMove())
	assert.False(t, m.IsEnPassant())
	assert.False(t, m.IsPromotion())

	m = MakeCapture(SqA1, SqA8, Rook, Queen)
	assert.Equal(t, Rook, m.Moved())
	assert.Equal(t, Queen, m.Captured())
	assert.False(t, m.IsPawnMove())
}

func TestMakeEpCapture(t *testing.T) {
	m := MakeEpCapture(SqB4, SqA3)
	assert.Equal(t, SqB4, m.From())
	assert.Equal(t, SqA3, m.To())
	assert.Equal(t, Pawn, m.Moved())
	assert.Equal(t, Pawn, m.Captured())
	assert.True(t, m.IsCapture())
	assert.True(t, m.IsEnPassant())
	assert.True(t, m.IsPawnMove())
	assert.False(t, m.IsPromotion())
	assert.False(t, m.IsDoublePush())
}

func TestMakePromotions(t *testing.T) {
	for _, pt := range []PieceType{Knight, Bishop, Rook, Queen} {
		m := MakeQuietPromotion(SqA7, SqA8, pt)
		assert.Equal(t, SqA7, m.From())
		assert.Equal(t, SqA8, m.To())
		assert.Equal(t, Pawn, m.Moved())
		assert.Equal(t, pt, m.PromotionType())
		assert.True(t, m.IsPromotion())
		assert.True(t, m.IsPawnMove())
		assert.False(t, m.IsCapture())

		mc := MakeCapturePromotion(SqA7, SqB8, pt, Rook)
		assert.Equal(t, pt, mc.PromotionType())
		assert.Equal(t, Rook, mc.Captured())
		assert.True(t, mc.IsPromotion())
		assert.True(t, mc.IsCapture())
	}
	m := MakeQuietPromotion(SqE7, SqE8, Queen)
	assert.Equal(t, "e7e8Q", m.StringUci())
}

func TestMakeCastles(t *testing.T) {
	k := MakeKingSideCastle()
	assert.True(t, k.IsCastle())
	assert.True(t, k.IsKingSideCastle())
	assert.False(t, k.IsQueenSideCastle())
	assert.Equal(t, KingSideCastle, k.CastleSideOf())
	assert.Equal(t, "O-O", k.StringUci())

	q := MakeQueenSideCastle()
	assert.True(t, q.IsCastle())
	assert.True(t, q.IsQueenSideCastle())
	assert.False(t, q.IsKingSideCastle())
	assert.Equal(t, QueenSideCastle, q.CastleSideOf())
	assert.Equal(t, "O-O-O", q.StringUci())

	assert.NotEqual(t, k, q)
	assert.False(t, k.IsCapture())
	assert.False(t, k.IsPawnMove())
}

// encoding round trip - all fields of a constructible move must be
// recoverable from the packed word
func TestMoveEncodingRoundTrip(t *testing.T) {
	for from := SqA1; from <= SqH8; from += 7 {
		for to := SqA1; to <= SqH8; to += 5 {
			for _, moved := range []PieceType{Pawn, Knight, Bishop, Rook, Queen, King} {
				m := MakeQuiet(from, to, moved)
				assert.Equal(t, from, m.From())
				assert.Equal(t, to, m.To())
				assert.Equal(t, moved, m.Moved())
				for _, captured := range []PieceType{Pawn, Knight, Bishop, Rook, Queen} {
					mc := MakeCapture(from, to, moved, captured)
					assert.Equal(t, from, mc.From())
					assert.Equal(t, to, mc.To())
					assert.Equal(t, moved, mc.Moved())
					assert.Equal(t, captured, mc.Captured())
				}
			}
		}
	}
}

func TestMoveNone(t *testing.T) {
	assert.Equal(t, Move(0), MoveNone)
	assert.False(t, MoveNone.IsCastle())
	assert.False(t, MoveNone.IsCapture())
	assert.Equal(t, "Move: { MoveNone }", MoveNone.String())
}
