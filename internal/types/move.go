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
	"fmt"
	"strings"
)

// Move is a 32bit unsigned int type for encoding chess moves as a
// primitive data type with disjoint bit fields.
//  BITMAP 32-bit
//  2 2 2 2 2 2 2 2 1 1 1 1 1 1 1 1 1 1 0 0 0 0 0 0 0 0 0 0
//  7 6 5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0
//  ----------------------------------------------------------------
//                                              1 1 1 1 1 1  from square
//                                  1 1 1 1 1 1              to square
//                                1                          pawn move flag
//                              1                            double push flag
//                            1                              en passant flag
//                          1                                capture flag
//                        1                                  promotion flag
//                    1 1                                    castle side (1 king, 2 queen)
//              1 1 1                                        promotion piece type
//        1 1 1                                              moved piece type
//  1 1 1                                                    captured piece type
type Move uint32

// MoveNone is an empty non valid move
const MoveNone Move = 0

// CastleSide encodes the castle field of a move
type CastleSide uint8

// Constants for the castle field of a move
const (
	CastleNone      CastleSide = 0
	KingSideCastle  CastleSide = 1
	QueenSideCastle CastleSide = 2
)

const (
	toShift       uint = 6
	pawnMoveShift uint = 12
	doublePushShift uint = 13
	epShift       uint = 14
	captureShift  uint = 15
	promFlagShift uint = 16
	castleShift   uint = 17
	promTypeShift uint = 19
	movedShift    uint = 22
	capturedShift uint = 25

	fromMask       Move = 0x3F
	toMask         Move = 0x3F << toShift
	pawnMoveMask   Move = 1 << pawnMoveShift
	doublePushMask Move = 1 << doublePushShift
	epMask         Move = 1 << epShift
	captureMask    Move = 1 << captureShift
	promFlagMask   Move = 1 << promFlagShift
	castleMask     Move = 3 << castleShift
	promTypeMask   Move = 7 << promTypeShift
	movedMask      Move = 7 << movedShift
	capturedMask   Move = 7 << capturedShift
)

// //////////////////////////////////////////////////////
// // Builders
// //////////////////////////////////////////////////////

// MakeQuiet constructs a quiet move of the given piece type
func MakeQuiet(from Square, to Square, moved PieceType) Move {
	return Move(from) | Move(to)<<toShift | makeMoved(moved)
}

// MakeDoublePush constructs a pawn double push. Use this instead of
// MakeQuiet for double pushes so that the en passant target is properly
// set by the game state update.
func MakeDoublePush(from Square, to Square) Move {
	return Move(from) | Move(to)<<toShift | makeMoved(Pawn) | doublePushMask
}

// MakeCapture constructs a capturing move
func MakeCapture(from Square, to Square, moved PieceType, captured PieceType) Move {
	return Move(from) | Move(to)<<toShift | makeMoved(moved) |
		Move(captured)<<capturedShift | captureMask
}

// MakeEpCapture constructs an en passant capture
func MakeEpCapture(from Square, to Square) Move {
	return Move(from) | Move(to)<<toShift | makeMoved(Pawn) |
		Move(Pawn)<<capturedShift | captureMask | epMask
}

// MakeQuietPromotion constructs a non capturing pawn promotion
func MakeQuietPromotion(from Square, to Square, promotion PieceType) Move {
	return Move(from) | Move(to)<<toShift | makeMoved(Pawn) |
		Move(promotion)<<promTypeShift | promFlagMask
}

// MakeCapturePromotion constructs a capturing pawn promotion
func MakeCapturePromotion(from Square, to Square, promotion PieceType, captured PieceType) Move {
	return Move(from) | Move(to)<<toShift | makeMoved(Pawn) |
		Move(promotion)<<promTypeShift | promFlagMask |
		Move(captured)<<capturedShift | captureMask
}

// MakeKingSideCastle constructs a king side castle move. From and to
// squares of castle moves are unused and read as a1.
func MakeKingSideCastle() Move {
	return Move(KingSideCastle) << castleShift
}

// MakeQueenSideCastle constructs a queen side castle move. From and to
// squares of castle moves are unused and read as a1.
func MakeQueenSideCastle() Move {
	return Move(QueenSideCastle) << castleShift
}

// moved piece field - pawn moves additionally carry the pawn move flag
// so the half move clock reset does not need the piece field
func makeMoved(moved PieceType) Move {
	m := Move(moved) << movedShift
	if moved == Pawn {
		m |= pawnMoveMask
	}
	return m
}

// //////////////////////////////////////////////////////
// // Accessors
// //////////////////////////////////////////////////////

// From returns the from-Square of the move
func (m Move) From() Square {
	return Square(m & fromMask)
}

// To returns the to-Square of the move
func (m Move) To() Square {
	return Square((m & toMask) >> toShift)
}

// Moved returns the piece type which is moved
func (m Move) Moved() PieceType {
	return PieceType((m & movedMask) >> movedShift)
}

// Captured returns the captured piece type.
// Only meaningful when IsCapture() is true.
func (m Move) Captured() PieceType {
	return PieceType((m & capturedMask) >> capturedShift)
}

// PromotionType returns the piece type promoted to.
// Only meaningful when IsPromotion() is true.
func (m Move) PromotionType() PieceType {
	return PieceType((m & promTypeMask) >> promTypeShift)
}

// IsPawnMove returns true if the moved piece is a pawn
func (m Move) IsPawnMove() bool {
	return m&pawnMoveMask != 0
}

// IsDoublePush returns true if the move is a pawn double push
func (m Move) IsDoublePush() bool {
	return m&doublePushMask != 0
}

// IsEnPassant returns true if the move is an en passant capture
func (m Move) IsEnPassant() bool {
	return m&epMask != 0
}

// IsCapture returns true if the move captures a piece
func (m Move) IsCapture() bool {
	return m&captureMask != 0
}

// IsPromotion returns true if the move promotes a pawn
func (m Move) IsPromotion() bool {
	return m&promFlagMask != 0
}

// CastleSideOf returns the castle side of the move or CastleNone
func (m Move) CastleSideOf() CastleSide {
	return CastleSide((m & castleMask) >> castleShift)
}

// IsCastle returns true if the move is a castle move
func (m Move) IsCastle() bool {
	return m&castleMask != 0
}

// IsKingSideCastle returns true if the move is a king side castle
func (m Move) IsKingSideCastle() bool {
	return m.CastleSideOf() == KingSideCastle
}

// IsQueenSideCastle returns true if the move is a queen side castle
func (m Move) IsQueenSideCastle() bool {
	return m.CastleSideOf() == QueenSideCastle
}

// StringUci returns a move notation of from and to square (e.g. e2e4)
// with an appended promotion piece letter where applicable (e.g. e7e8Q).
// Castle moves have no from/to encoding and are returned as O-O / O-O-O.
func (m Move) StringUci() string {
	switch m.CastleSideOf() {
	case KingSideCastle:
		return "O-O"
	case QueenSideCastle:
		return "O-O-O"
	}
	var os strings.Builder
	os.WriteString(m.From().String())
	os.WriteString(m.To().String())
	if m.IsPromotion() {
		os.WriteString(m.PromotionType().Char())
	}
	return os.String()
}

// String returns a detailed string representation of a move
func (m Move) String() string {
	if m == MoveNone {
		return "Move: { MoveNone }"
	}
	var flags strings.Builder
	if m.IsPawnMove() {
		flags.WriteString("p")
	}
	if m.IsDoublePush() {
		flags.WriteString("d")
	}
	if m.IsEnPassant() {
		flags.WriteString("e")
	}
	if m.IsCapture() {
		flags.WriteString("x")
	}
	if m.IsPromotion() {
		flags.WriteString("=")
	}
	return fmt.Sprintf("Move: { %-6s moved:%-6s captured:%-6s flags:%-5s (%d) }",
		m.StringUci(), m.Moved().String(), m.Captured().String(), flags.String(), uint32(m))
}
