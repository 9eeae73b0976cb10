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

// Package cli renders boards and moves for the terminal front end.
package cli

import (
	"strings"

	"github.com/fatih/color"

	"github.com/frankkopp/YakGo/internal/board"
	. "github.com/frankkopp/YakGo/internal/types"
)

var (
	whitePiece = color.New(color.FgHiWhite, color.Bold)
	blackPiece = color.New(color.FgHiBlack, color.Bold)
	frame      = color.New(color.FgCyan)
	label      = color.New(color.FgYellow)
)

// fen letters for piece types - the terminal board uses upper case
// letters for both colours and distinguishes by colour attribute
var pieceChars = "PNBRQK"

// SprintBoard renders the given board as a coloured 8x8 matrix with
// file and rank labels. Ranks are printed 8 down to 1.
func SprintBoard(b *board.Board) string {
	var os strings.Builder
	os.WriteString(frame.Sprint("  +---+---+---+---+---+---+---+---+\n"))
	for r := Rank1; r <= Rank8; r++ {
		rank := Rank8 - r
		os.WriteString(label.Sprint(rank.String()))
		os.WriteString(" ")
		for f := FileA; f <= FileH; f++ {
			sq := SquareOf(f, rank)
			os.WriteString(frame.Sprint("| "))
			pt := b.PieceTypeOn(sq)
			switch {
			case pt == PtNone:
				os.WriteString(" ")
			case b.PieceColourOn(sq) == White:
				os.WriteString(whitePiece.Sprint(string(pieceChars[pt])))
			default:
				os.WriteString(blackPiece.Sprint(string(pieceChars[pt])))
			}
			os.WriteString(" ")
		}
		os.WriteString(frame.Sprint("|\n"))
		os.WriteString(frame.Sprint("  +---+---+---+---+---+---+---+---+\n"))
	}
	os.WriteString(label.Sprint("    a   b   c   d   e   f   g   h\n"))
	return os.String()
}

// SprintMoves renders the legal moves of the given board as a space
// separated list
func SprintMoves(b *board.Board) string {
	return b.GenerateMoves().StringUci()
}
