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

package moveslice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/YakGo/internal/types"
)

func TestMoveSliceBasics(t *testing.T) {
	ms := NewMoveSlice(MaxMoves)
	assert.Equal(t, 0, ms.Len())
	assert.Equal(t, MaxMoves, ms.Cap())

	m1 := MakeQuiet(SqE2, SqE3, Pawn)
	m2 := MakeQuiet(SqG1, SqF3, Knight)
	m3 := MakeDoublePush(SqE2, SqE4)

	ms.PushBack(m1)
	ms.PushBack(m2)
	ms.PushBack(m3)
	assert.Equal(t, 3, ms.Len())
	assert.Equal(t, m1, ms.Front())
	assert.Equal(t, m3, ms.Back())
	assert.Equal(t, m2, ms.At(1))
	assert.True(t, ms.Contains(m2))
	assert.False(t, ms.Contains(MakeQuiet(SqA1, SqA2, Rook)))

	assert.Equal(t, m3, ms.PopBack())
	assert.Equal(t, 2, ms.Len())

	ms.Set(1, m3)
	assert.Equal(t, m3, ms.At(1))

	ms.Clear()
	assert.Equal(t, 0, ms.Len())
	assert.Equal(t, MaxMoves, ms.Cap())
}

func TestMoveSliceFilter(t *testing.T) {
	ms := NewMoveSlice(MaxMoves)
	for sq := SqA2; sq <= SqH2; sq++ {
		ms.PushBack(MakeQuiet(sq, sq+8, Pawn))
	}
	assert.Equal(t, 8, ms.Len())

	// keep only moves from the queen side files
	ms.Filter(func(i int) bool {
		return ms.At(i).From().FileOf() <= FileD
	})
	assert.Equal(t, 4, ms.Len())

	dest := NewMoveSlice(MaxMoves)
	ms.FilterCopy(dest, func(i int) bool {
		return ms.At(i).From() != SqA2
	})
	assert.Equal(t, 3, dest.Len())
}

func TestMoveSliceCloneEquals(t *testing.T) {
	ms := NewMoveSlice(MaxMoves)
	ms.PushBack(MakeQuiet(SqE2, SqE3, Pawn))
	ms.PushBack(MakeKingSideCastle())

	clone := ms.Clone()
	assert.True(t, ms.Equals(clone))

	clone.PushBack(MakeQueenSideCastle())
	assert.False(t, ms.Equals(clone))
}

func TestMoveSliceStringUci(t *testing.T) {
	ms := NewMoveSlice(MaxMoves)
	ms.PushBack(MakeQuiet(SqE2, SqE3, Pawn))
	ms.PushBack(MakeQuietPromotion(SqE7, SqE8, Queen))
	assert.Equal(t, "e2e3 e7e8Q", ms.StringUci())
}
