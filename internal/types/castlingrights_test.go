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

func TestCastlingRights(t *testing.T) {
	cr := CastlingAny
	assert.True(t, cr.Has(CastlingWhiteOO))
	assert.True(t, cr.Has(CastlingBlackOOO))
	assert.Equal(t, "KQkq", cr.String())

	cr.Remove(CastlingWhite)
	assert.False(t, cr.Has(CastlingWhiteOO))
	assert.False(t, cr.Has(CastlingWhiteOOO))
	assert.True(t, cr.Has(CastlingBlack))
	assert.Equal(t, "kq", cr.String())

	cr.Remove(CastlingBlackOO)
	assert.Equal(t, "q", cr.String())

	cr.Remove(CastlingBlackOOO)
	assert.Equal(t, CastlingNone, cr)
	assert.Equal(t, "-", cr.String())

	cr.Add(CastlingWhiteOO)
	assert.Equal(t, "K", cr.String())
}

func TestCastlingRightsOfColour(t *testing.T) {
	assert.Equal(t, CastlingWhite, CastlingRightsOf(White))
	assert.Equal(t, CastlingBlack, CastlingRightsOf(Black))
	assert.Equal(t, CastlingWhiteOO, KingSideRightOf(White))
	assert.Equal(t, CastlingBlackOO, KingSideRightOf(Black))
	assert.Equal(t, CastlingWhiteOOO, QueenSideRightOf(White))
	assert.Equal(t, CastlingBlackOOO, QueenSideRightOf(Black))
}

// the per square table drives the castling right invalidation of the
// game state update
func TestCastlingRightsPerSquare(t *testing.T) {
	assert.Equal(t, CastlingWhite, GetCastlingRights(SqE1))
	assert.Equal(t, CastlingWhiteOO, GetCastlingRights(SqH1))
	assert.Equal(t, CastlingWhiteOOO, GetCastlingRights(SqA1))
	assert.Equal(t, CastlingBlack, GetCastlingRights(SqE8))
	assert.Equal(t, CastlingBlackOO, GetCastlingRights(SqH8))
	assert.Equal(t, CastlingBlackOOO, GetCastlingRights(SqA8))
	assert.Equal(t, CastlingNone, GetCastlingRights(SqE4))
	assert.Equal(t, CastlingNone, GetCastlingRights(SqB1))
}
