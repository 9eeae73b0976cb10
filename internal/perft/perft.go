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

// Package perft implements the standard move generation correctness
// benchmark: the node count of the full legal move tree from a
// position to a given depth.
package perft

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/YakGo/internal/board"
	"github.com/frankkopp/YakGo/internal/moveslice"
	"github.com/frankkopp/YakGo/internal/util"
	. "github.com/frankkopp/YakGo/internal/types"
)

var out = message.NewPrinter(language.German)

// Perft is a class to test the move generation of the engine.
type Perft struct {
	Nodes            uint64
	CheckCounter     uint64
	CheckMateCounter uint64
	CaptureCounter   uint64
	EnpassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64
	stopFlag         bool
}

// NewPerft creates a new empty Perft instance
func NewPerft() *Perft {
	return &Perft{}
}

// Stop can be used when perft has been started
// in a goroutine to stop the currently running
// perft test
func (perft *Perft) Stop() {
	perft.stopFlag = true
}

// StartPerftMulti runs perft for all depths from startDepth to
// endDepth on the given position.
func (perft *Perft) StartPerftMulti(fen string, startDepth int, endDepth int) {
	perft.stopFlag = false
	for i := startDepth; i <= endDepth; i++ {
		if perft.stopFlag {
			out.Print("Perft multi depth stopped\n")
			return
		}
		perft.StartPerft(fen, i)
	}
}

// StartPerft runs perft to the given depth on the given position and
// prints the node count and the counters for captures, en passant,
// castlings, promotions, checks and checkmates of the leaf level.
func (perft *Perft) StartPerft(fen string, depth int) {
	perft.stopFlag = false

	// set 1 as minimum
	if depth <= 0 {
		depth = 1
	}

	// prepare
	perft.resetCounter()
	b, err := board.NewBoardFen(fen)
	if err != nil {
		out.Printf("Perft aborted. Invalid fen: %s\n", fen)
		return
	}

	// one move buffer per depth - the board's internal buffer would be
	// overwritten by the recursion
	buffers := make([]moveslice.MoveSlice, depth+1)
	for i := 0; i <= depth; i++ {
		buffers[i] = *moveslice.NewMoveSlice(MaxMoves)
	}

	out.Printf("Performing PERFT Test for Depth %d\n", depth)
	out.Printf("FEN: %s\n", fen)
	out.Printf("-----------------------------------------\n")

	start := time.Now()
	result := perft.miniMax(depth, b, buffers)
	elapsed := time.Since(start)

	if perft.stopFlag {
		out.Print("Perft stopped\n")
		return
	}

	perft.Nodes = result

	out.Printf("Time         : %s\n", elapsed)
	out.Printf("NPS          : %d nps\n", util.Nps(perft.Nodes, elapsed))
	out.Printf("Results:\n")
	out.Printf("   Nodes     : %d\n", perft.Nodes)
	out.Printf("   Captures  : %d\n", perft.CaptureCounter)
	out.Printf("   EnPassant : %d\n", perft.EnpassantCounter)
	out.Printf("   Checks    : %d\n", perft.CheckCounter)
	out.Printf("   CheckMates: %d\n", perft.CheckMateCounter)
	out.Printf("   Castles   : %d\n", perft.CastleCounter)
	out.Printf("   Promotions: %d\n", perft.PromotionCounter)
	out.Printf("-----------------------------------------\n")
	out.Printf("Finished PERFT Test for Depth %d\n\n", depth)
}

func (perft *Perft) miniMax(depth int, b *board.Board, buffers []moveslice.MoveSlice) uint64 {
	totalNodes := uint64(0)
	// generate into the buffer of this depth - the moves are legal
	// so no additional check is necessary after MakeMove
	moves := &buffers[depth]
	b.GenerateMovesTo(moves)
	for i := 0; i < moves.Len(); i++ {
		move := moves.At(i)
		if perft.stopFlag {
			return 0
		}
		if depth > 1 {
			_ = b.MakeMove(move)
			totalNodes += perft.miniMax(depth-1, b, buffers)
			_ = b.UndoMove()
		} else {
			totalNodes++
			if move.IsEnPassant() {
				perft.EnpassantCounter++
			}
			if move.IsCapture() {
				perft.CaptureCounter++
			}
			if move.IsCastle() {
				perft.CastleCounter++
			}
			if move.IsPromotion() {
				perft.PromotionCounter++
			}
			_ = b.MakeMove(move)
			if b.IsCheck() {
				perft.CheckCounter++
				if b.IsCheckmate() {
					perft.CheckMateCounter++
				}
			}
			_ = b.UndoMove()
		}
	}
	return totalNodes
}

func (perft *Perft) resetCounter() {
	perft.Nodes = 0
	perft.CheckCounter = 0
	perft.CheckMateCounter = 0
	perft.CaptureCounter = 0
	perft.EnpassantCounter = 0
	perft.CastleCounter = 0
	perft.PromotionCounter = 0
}
