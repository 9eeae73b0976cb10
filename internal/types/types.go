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

// Package types defines the basic data types of the YakGo engine core:
// bitboards, squares, files, ranks, directions, piece types, colours,
// castling rights and the packed 32-bit move word. It also holds the
// pre-computed attack tables (rays, in-between squares, knight and king
// jump maps, pawn attacks and the magic bitboard tables for the sliding
// pieces) which are initialized once at program start and read-only
// afterwards.
package types

// MaxMoves is the size of the move generation buffers. The theoretical
// maximum number of legal moves in any reachable chess position is below
// 220 so 256 gives us a comfortable margin.
const MaxMoves = 256

// initialization of all pre computed data structures of this
// package. Order matters - rays are needed for the magics.
func init() {
	initBb()
}
