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

package perft

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/YakGo/internal/board"
)

// expected node counts for the standard start position
var startPositionResults = []uint64{
	0, // depth 0 placeholder
	20,
	400,
	8_902,
	197_281,
	4_865_609,
	119_060_324,
	3_195_901_860,
}

func TestStartPerft(t *testing.T) {
	maxDepth := 5
	p := NewPerft()
	for depth := 1; depth <= maxDepth; depth++ {
		p.StartPerft(board.StartFen, depth)
		assert.Equal(t, startPositionResults[depth], p.Nodes,
			"perft depth %d on the start position", depth)
	}
}

// spot checks of the leaf counters on the start position
func TestStartPerftCounters(t *testing.T) {
	p := NewPerft()

	p.StartPerft(board.StartFen, 3)
	assert.Equal(t, uint64(8_902), p.Nodes)
	assert.Equal(t, uint64(34), p.CaptureCounter)
	assert.Equal(t, uint64(0), p.EnpassantCounter)
	assert.Equal(t, uint64(12), p.CheckCounter)
	assert.Equal(t, uint64(0), p.CheckMateCounter)

	p.StartPerft(board.StartFen, 4)
	assert.Equal(t, uint64(197_281), p.Nodes)
	assert.Equal(t, uint64(1_576), p.CaptureCounter)
	assert.Equal(t, uint64(0), p.EnpassantCounter)
	assert.Equal(t, uint64(469), p.CheckCounter)
	assert.Equal(t, uint64(8), p.CheckMateCounter)
}

// "kiwipete" - a position with heavy castling, pinning and en passant
// traffic (https://www.chessprogramming.org/Perft_Results)
func TestKiwipetePerft(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	expected := []uint64{0, 48, 2_039, 97_862}
	p := NewPerft()
	for depth := 1; depth <= 3; depth++ {
		p.StartPerft(fen, depth)
		assert.Equal(t, expected[depth], p.Nodes, "kiwipete perft depth %d", depth)
	}
}

// position 3 of the chessprogramming wiki perft suite - en passant
// discovered checks
func TestPosition3Perft(t *testing.T) {
	fen := "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	expected := []uint64{0, 14, 191, 2_812, 43_238}
	p := NewPerft()
	for depth := 1; depth <= 4; depth++ {
		p.StartPerft(fen, depth)
		assert.Equal(t, expected[depth], p.Nodes, "position 3 perft depth %d", depth)
	}
}

// position 5 - promotion heavy
func TestPosition5Perft(t *testing.T) {
	fen := "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
	expected := []uint64{0, 44, 1_486, 62_379}
	p := NewPerft()
	for depth := 1; depth <= 3; depth++ {
		p.StartPerft(fen, depth)
		assert.Equal(t, expected[depth], p.Nodes, "position 5 perft depth %d", depth)
	}
}

func TestStartPerftDepth6(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping depth 6 perft in short mode")
	}
	p := NewPerft()
	p.StartPerft(board.StartFen, 6)
	assert.Equal(t, startPositionResults[6], p.Nodes)
}

func TestInvalidFen(t *testing.T) {
	p := NewPerft()
	p.StartPerft("not a fen", 2)
	assert.Equal(t, uint64(0), p.Nodes)
}

func TestStartPerftMulti(t *testing.T) {
	p := NewPerft()
	p.StartPerftMulti(board.StartFen, 1, 3)
	assert.Equal(t, startPositionResults[3], p.Nodes)
}
