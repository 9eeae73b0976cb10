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

// Package board represents a chess board as a set of piece type and
// colour bitboards together with a stack of game states (castling
// rights, en passant target, move clocks, side to move). It implements
// legal move generation, reversible make/undo of moves and a FEN codec.
//
// Create a new instance with NewBoard() to get the standard chess start
// position or with NewBoardFen(fen) for an arbitrary position.
package board

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/op/go-logging"

	myLogging "github.com/frankkopp/YakGo/internal/logging"
	"github.com/frankkopp/YakGo/internal/moveslice"
	. "github.com/frankkopp/YakGo/internal/types"
)

var log *logging.Logger

// StartFen is a string with the fen position for a standard chess game
const StartFen string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Board represents a chess position as two simultaneous families of
// bitboards - one bitboard per piece type (both colours) and one
// bitboard per colour (all types). The auxiliary state needed for move
// generation lives in the embedded GameStateManager.
//
// Needs to be created with NewBoard() or NewBoardFen(fen)
type Board struct {
	pieceTypeBb [PtLength]Bitboard
	colourBb    [ColourLength]Bitboard

	state GameStateManager

	// reused buffers for move generation
	pseudoLegalMoves *moveslice.MoveSlice
	legalMoves       *moveslice.MoveSlice
}

// NewBoard creates a new board.
// When called without an argument the board will have the start position.
// When a fen string is given it will create a board based on this fen.
// Additional fens/strings are ignored.
func NewBoard(fen ...string) *Board {
	if len(fen) == 0 {
		b, _ := NewBoardFen(StartFen)
		return b
	}
	b, _ := NewBoardFen(fen[0])
	return b
}

// NewBoardFen creates a new board with the given fen string as
// position. It returns nil and an error if the fen was invalid.
func NewBoardFen(fen string) (*Board, error) {
	if log == nil {
		log = myLogging.GetLog()
	}
	b := &Board{
		state:            *NewGameStateManager(),
		pseudoLegalMoves: moveslice.NewMoveSlice(MaxMoves),
		legalMoves:       moveslice.NewMoveSlice(MaxMoves),
	}
	if err := b.Reset(fen); err != nil {
		log.Errorf("fen for board setup not valid and board can't be created: %s", err)
		return nil, err
	}
	return b, nil
}

// Reset restores the board to the position given by the fen string.
// On a parse error the board is left in a defined empty state (no
// pieces, white to move, no castling rights) and the error is returned.
func (b *Board) Reset(fen string) error {
	b.clear()
	if err := b.setupBoard(fen); err != nil {
		b.clear()
		b.state.resetTo(White, CastlingNone, SqNone, 0, 1)
		return err
	}
	return nil
}

// clear removes all pieces from the board and resets the state stack
func (b *Board) clear() {
	for pt := 0; pt < PtLength; pt++ {
		b.pieceTypeBb[pt] = BbZero
	}
	b.colourBb[Black] = BbZero
	b.colourBb[White] = BbZero
	b.state.Reset()
}

// //////////////////////////////////////////////////////
// // Getters
// //////////////////////////////////////////////////////

// SideToMove returns the colour of the side to move
func (b *Board) SideToMove() Colour {
	return b.state.SideToMove()
}

// GetPosition returns the bitboard for the given colour and piece type
func (b *Board) GetPosition(c Colour, pt PieceType) Bitboard {
	return b.colourBb[c] & b.pieceTypeBb[pt]
}

// GetPositionType returns the bitboard for the given piece type of
// both colours
func (b *Board) GetPositionType(pt PieceType) Bitboard {
	return b.pieceTypeBb[pt]
}

// GetPositionColour returns the bitboard of all pieces of the given colour
func (b *Board) GetPositionColour(c Colour) Bitboard {
	return b.colourBb[c]
}

// OccupiedSquares returns a bitboard of all occupied squares
func (b *Board) OccupiedSquares() Bitboard {
	return b.colourBb[Black] | b.colourBb[White]
}

// EmptySquares returns a bitboard of all empty squares
func (b *Board) EmptySquares() Bitboard {
	return ^b.OccupiedSquares()
}

// PieceTypeOn returns the piece type on the given square or PtNone for
// an empty square
func (b *Board) PieceTypeOn(sq Square) PieceType {
	sqBb := sq.Bb()
	for pt := Pawn; pt <= King; pt++ {
		if b.pieceTypeBb[pt]&sqBb != 0 {
			return pt
		}
	}
	return PtNone
}

// PieceColourOn returns the colour of the piece on the given square or
// ColourNone for an empty square
func (b *Board) PieceColourOn(sq Square) Colour {
	sqBb := sq.Bb()
	if b.colourBb[Black]&sqBb != 0 {
		return Black
	}
	if b.colourBb[White]&sqBb != 0 {
		return White
	}
	return ColourNone
}

// KingSquare returns the square of the king of the given colour or
// SqNone if the position has no such king
func (b *Board) KingSquare(c Colour) Square {
	return b.GetPosition(c, King).Lsb()
}

// CanKingSideCastle checks if the given colour still holds the king
// side castling right
func (b *Board) CanKingSideCastle(c Colour) bool {
	return b.state.CanKingSideCastle(c)
}

// CanQueenSideCastle checks if the given colour still holds the queen
// side castling right
func (b *Board) CanQueenSideCastle(c Colour) bool {
	return b.state.CanQueenSideCastle(c)
}

// CastlingRights returns the castling rights of the current state
func (b *Board) CastlingRights() CastlingRights {
	return b.state.CastlingRights()
}

// EpTargetSquare returns the en passant target square or SqNone
func (b *Board) EpTargetSquare() Square {
	return b.state.EpTargetSquare()
}

// EpTarget returns a bitboard of the en passant target square - BbZero
// when no en passant capture is possible
func (b *Board) EpTarget() Bitboard {
	return b.state.EpTarget()
}

// HalfMoveClock returns the half move clock of the current state
func (b *Board) HalfMoveClock() uint8 {
	return b.state.HalfMoveClock()
}

// MoveClock returns the full move clock of the current state
func (b *Board) MoveClock() uint16 {
	return b.state.MoveClock()
}

// LastMove returns the move which led to the current position or
// MoveNone for the root position
func (b *Board) LastMove() Move {
	return b.state.LastMove()
}

// //////////////////////////////////////////////////////
// // String
// //////////////////////////////////////////////////////

// String returns a string representing the board instance. This
// includes the fen and a board matrix.
func (b *Board) String() string {
	var os strings.Builder
	os.WriteString(b.Fen())
	os.WriteString("\n")
	os.WriteString(b.StringBoard())
	return os.String()
}

// StringBoard returns a visual matrix of the board and pieces
func (b *Board) StringBoard() string {
	var os strings.Builder
	os.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank1; r <= Rank8; r++ {
		for f := FileA; f <= FileH; f++ {
			os.WriteString("| ")
			os.WriteString(b.fenChar(SquareOf(f, Rank8-r)))
			os.WriteString(" ")
		}
		os.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return os.String()
}

// //////////////////////////////////////////////////////
// // FEN
// //////////////////////////////////////////////////////

// Fen returns a string with the FEN of the current position
func (b *Board) Fen() string {
	var fen strings.Builder
	// pieces
	for r := Rank1; r <= Rank8; r++ {
		emptySquares := 0
		for f := FileA; f <= FileH; f++ {
			sq := SquareOf(f, Rank8-r)
			if b.PieceTypeOn(sq) == PtNone {
				emptySquares++
			} else {
				if emptySquares > 0 {
					fen.WriteString(strconv.Itoa(emptySquares))
					emptySquares = 0
				}
				fen.WriteString(b.fenChar(sq))
			}
		}
		if emptySquares > 0 {
			fen.WriteString(strconv.Itoa(emptySquares))
		}
		if r < Rank8 {
			fen.WriteString("/")
		}
	}
	// side to move
	fen.WriteString(" ")
	fen.WriteString(b.state.SideToMove().String())
	// castling rights
	fen.WriteString(" ")
	fen.WriteString(b.state.CastlingRights().String())
	// en passant
	fen.WriteString(" ")
	fen.WriteString(b.state.EpTargetSquare().String())
	// half move clock
	fen.WriteString(" ")
	fen.WriteString(strconv.Itoa(int(b.state.HalfMoveClock())))
	// full move number
	fen.WriteString(" ")
	fen.WriteString(strconv.Itoa(int(b.state.MoveClock())))
	return fen.String()
}

// fen letters for piece types indexed by colour
var fenPieceChars = [ColourLength]string{"pnbrqk", "PNBRQK"}

// fenChar returns the fen letter of the piece on the given square or
// a space for an empty square
func (b *Board) fenChar(sq Square) string {
	pt := b.PieceTypeOn(sq)
	if pt == PtNone {
		return " "
	}
	return string(fenPieceChars[b.PieceColourOn(sq)][pt])
}

// regex for the piece placement part of a fen
var regexFenPos = regexp.MustCompile("^[0-8pPnNbBrRqQkK/]+$")

// regex for the side to move in a fen
var regexWorB = regexp.MustCompile("^[w|b]$")

// regex for castling rights in a fen
var regexCastlingRights = regexp.MustCompile("^(K?Q?k?q?|-)$")

// regex for the en passant square in a fen
var regexEnPassant = regexp.MustCompile("^([a-h][1-8]|-)$")

// setupBoard sets up the board from a fen. All six fields are read;
// missing optional fields get defaults (white to move, no castling
// rights, no en passant, clocks 0 and 1).
func (b *Board) setupBoard(fen string) error {

	fen = strings.TrimSpace(fen)
	fenParts := strings.Split(fen, " ")

	if len(fenParts) == 0 || fenParts[0] == "" {
		return errors.New("fen must not be empty")
	}

	// make sure only valid chars are used
	if !regexFenPos.MatchString(fenParts[0]) {
		return errors.New("fen position contains invalid characters")
	}

	// fen string starts at a8 and runs to h1
	// with / jumping to file A of the next lower rank
	rank := Rank8
	file := FileA
	for _, c := range fenParts[0] {
		switch {
		case c == '/': // rank separator
			if file != FileNone {
				return errors.New("fen position rank too short")
			}
			if rank == Rank1 {
				return errors.New("fen position has too many ranks")
			}
			rank--
			file = FileA
		case c >= '1' && c <= '8': // number of empty squares
			file += File(c - '0')
			if file > FileNone {
				return errors.New("fen position rank too long")
			}
		default: // piece
			if file == FileNone {
				return errors.New("fen position rank too long")
			}
			pt, pc := pieceFromFenChar(c)
			if pt == PtNone {
				return fmt.Errorf("invalid piece character: %s", string(c))
			}
			b.putPiece(pt, pc, SquareOf(file, rank))
			file++
		}
	}
	if rank != Rank1 || file != FileNone {
		return errors.New("not reached last square (h1) after reading fen")
	}

	// defaults for the optional fields
	side := White
	castling := CastlingNone
	epSquare := SqNone
	halfMoveClock := 0
	moveNumber := 1

	// side to move
	if len(fenParts) >= 2 {
		if !regexWorB.MatchString(fenParts[1]) {
			return errors.New("fen side to move contains invalid characters")
		}
		if fenParts[1] == "b" {
			side = Black
		}
	}

	// castling rights
	if len(fenParts) >= 3 {
		if !regexCastlingRights.MatchString(fenParts[2]) {
			return errors.New("fen castling rights contains invalid characters")
		}
		if fenParts[2] != "-" {
			for _, c := range fenParts[2] {
				switch c {
				case 'K':
					castling.Add(CastlingWhiteOO)
				case 'Q':
					castling.Add(CastlingWhiteOOO)
				case 'k':
					castling.Add(CastlingBlackOO)
				case 'q':
					castling.Add(CastlingBlackOOO)
				}
			}
		}
	}

	// en passant
	if len(fenParts) >= 4 {
		if !regexEnPassant.MatchString(fenParts[3]) {
			return errors.New("fen en passant square contains invalid characters")
		}
		if fenParts[3] != "-" {
			epSquare = MakeSquare(fenParts[3])
		}
	}

	// half move clock (50 moves rule)
	if len(fenParts) >= 5 {
		number, err := strconv.Atoi(fenParts[4])
		if err != nil {
			return fmt.Errorf("fen half move clock invalid: %w", err)
		}
		halfMoveClock = number
	}

	// full move number
	if len(fenParts) >= 6 {
		number, err := strconv.Atoi(fenParts[5])
		if err != nil {
			return fmt.Errorf("fen move number invalid: %w", err)
		}
		if number == 0 {
			number = 1
		}
		moveNumber = number
	}

	b.state.resetTo(side, castling, epSquare, uint8(halfMoveClock), uint16(moveNumber))
	return nil
}

// pieceFromFenChar maps a fen letter to piece type and colour.
// Returns PtNone/ColourNone for unknown letters.
func pieceFromFenChar(c rune) (PieceType, Colour) {
	colour := White
	idx := strings.IndexRune(fenPieceChars[White], c)
	if idx == -1 {
		colour = Black
		idx = strings.IndexRune(fenPieceChars[Black], c)
	}
	if idx == -1 {
		return PtNone, ColourNone
	}
	return PieceType(idx), colour
}

// putPiece sets the bits for a piece on the piece type and the colour
// bitboards
func (b *Board) putPiece(pt PieceType, c Colour, sq Square) {
	b.pieceTypeBb[pt].PushSquare(sq)
	b.colourBb[c].PushSquare(sq)
}
