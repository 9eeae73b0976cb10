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
	. "github.com/frankkopp/YakGo/internal/types"
)

// GameState is one node of the game state stack. It carries everything
// which can not be restored from the bitboards alone: side to move,
// castling rights, en passant target square and the move clocks. The
// move field stores the move which was applied to this state to reach
// the following state. It is only meaningful for states which are not
// the current head of the stack.
type GameState struct {
	sideToMove     Colour
	castlingRights CastlingRights
	epSquare       Square
	moveClock      uint16
	halfMoveClock  uint8
	move           Move
}

// GameStateManager owns the stack of game states of a board. The states
// are held in a contiguous growable slice with the last element being
// the current state. This keeps recent states hot in cache during deep
// recursive search and makes reset trivial.
type GameStateManager struct {
	states []GameState
}

// initialStackCap is the starting capacity of the state stack. The
// stack grows on demand for searches deeper than this.
const initialStackCap = 64

// NewGameStateManager creates a new manager holding the state of a
// standard chess game start (white to move, all castling rights, no
// en passant target).
func NewGameStateManager() *GameStateManager {
	gsm := &GameStateManager{
		states: make([]GameState, 0, initialStackCap),
	}
	gsm.Reset()
	return gsm
}

// Reset truncates the stack to a single standard start state
func (gsm *GameStateManager) Reset() {
	gsm.states = gsm.states[:0]
	gsm.states = append(gsm.states, GameState{
		sideToMove:     White,
		castlingRights: CastlingAny,
		epSquare:       SqNone,
		moveClock:      1,
		halfMoveClock:  0,
		move:           MoveNone,
	})
}

// resetTo truncates the stack to a single state with the given values.
// Used when loading a position from a fen.
func (gsm *GameStateManager) resetTo(side Colour, cr CastlingRights, ep Square, halfMoveClock uint8, moveClock uint16) {
	gsm.states = gsm.states[:0]
	gsm.states = append(gsm.states, GameState{
		sideToMove:     side,
		castlingRights: cr,
		epSquare:       ep,
		moveClock:      moveClock,
		halfMoveClock:  halfMoveClock,
		move:           MoveNone,
	})
}

// current returns a pointer to the current state (the top of the stack)
func (gsm *GameStateManager) current() *GameState {
	return &gsm.states[len(gsm.states)-1]
}

// Update stores the given move on the current state and pushes the
// state derived from it:
//  - the side to move flips
//  - a castle move clears both castling rights of the moving side; any
//    other move clears a right iff its from or to square is one of the
//    rook corner squares or the side's king starting square
//  - the en passant target is set one rank behind the target square of
//    a double push and cleared otherwise
//  - the full move clock increments after each black move
//  - the half move clock resets on pawn moves and captures and
//    increments otherwise
func (gsm *GameStateManager) Update(m Move) {
	cur := gsm.current()
	cur.move = m

	next := GameState{
		sideToMove:     cur.sideToMove.Flip(),
		castlingRights: cur.castlingRights,
		epSquare:       SqNone,
		moveClock:      cur.moveClock,
		move:           MoveNone,
	}

	if m.IsCastle() {
		next.castlingRights.Remove(CastlingRightsOf(cur.sideToMove))
	} else {
		next.castlingRights.Remove(GetCastlingRights(m.From()) | GetCastlingRights(m.To()))
	}

	if m.IsDoublePush() {
		if cur.sideToMove == White {
			next.epSquare = m.To() - 8
		} else {
			next.epSquare = m.To() + 8
		}
	}

	if cur.sideToMove == Black {
		next.moveClock++
	}

	if m.IsCapture() || m.IsPawnMove() {
		next.halfMoveClock = 0
	} else {
		next.halfMoveClock = cur.halfMoveClock + 1
	}

	gsm.states = append(gsm.states, next)
}

// Pop removes the current state and returns the move which produced it.
// Returns MoveNone and false when only the root state is left.
func (gsm *GameStateManager) Pop() (Move, bool) {
	if len(gsm.states) <= 1 {
		return MoveNone, false
	}
	gsm.states = gsm.states[:len(gsm.states)-1]
	return gsm.current().move, true
}

// Depth returns the number of moves made since the root state
func (gsm *GameStateManager) Depth() int {
	return len(gsm.states) - 1
}

// SideToMove returns the colour of the side to move
func (gsm *GameStateManager) SideToMove() Colour {
	return gsm.current().sideToMove
}

// CastlingRights returns the castling rights of the current state
func (gsm *GameStateManager) CastlingRights() CastlingRights {
	return gsm.current().castlingRights
}

// CanKingSideCastle checks if the given colour still holds the king
// side castling right
func (gsm *GameStateManager) CanKingSideCastle(c Colour) bool {
	if !c.IsValid() {
		return false
	}
	return gsm.current().castlingRights.Has(KingSideRightOf(c))
}

// CanQueenSideCastle checks if the given colour still holds the queen
// side castling right
func (gsm *GameStateManager) CanQueenSideCastle(c Colour) bool {
	if !c.IsValid() {
		return false
	}
	return gsm.current().castlingRights.Has(QueenSideRightOf(c))
}

// EpTargetSquare returns the en passant target square of the current
// state or SqNone
func (gsm *GameStateManager) EpTargetSquare() Square {
	return gsm.current().epSquare
}

// EpTarget returns a Bitboard of the en passant target square of the
// current state - BbZero when no en passant capture is possible
func (gsm *GameStateManager) EpTarget() Bitboard {
	if gsm.current().epSquare == SqNone {
		return BbZero
	}
	return gsm.current().epSquare.Bb()
}

// MoveClock returns the full move clock of the current state
func (gsm *GameStateManager) MoveClock() uint16 {
	return gsm.current().moveClock
}

// HalfMoveClock returns the half move clock of the current state
func (gsm *GameStateManager) HalfMoveClock() uint8 {
	return gsm.current().halfMoveClock
}

// LastMove returns the move which led to the current state or MoveNone
// for the root state
func (gsm *GameStateManager) LastMove() Move {
	if len(gsm.states) <= 1 {
		return MoveNone
	}
	return gsm.states[len(gsm.states)-2].move
}
