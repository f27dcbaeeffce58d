// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package board implements Board, a chess position together with the
// legal move generator and make/unmake state machine built on top of it.
//
// A Board owns every bitboard derived from its piece placement (attacks,
// pins, checkers) and keeps them consistent as it's mutated through a
// Modifier; nothing about a Board is safe for concurrent use, and a Board
// should be Clone-d rather than shared if two call sites need independent
// copies.
package board

import (
	"laptudirm.com/x/chesscore/pkg/bitboard"
	"laptudirm.com/x/chesscore/pkg/castle"
	"laptudirm.com/x/chesscore/pkg/move"
	"laptudirm.com/x/chesscore/pkg/piece"
	"laptudirm.com/x/chesscore/pkg/square"
	"laptudirm.com/x/chesscore/pkg/zobrist"
)

// Board is a complete chess position: piece placement, side to move,
// castling rights, en passant target, the halfmove/fullmove counters,
// and enough derived state (attacks/pins/checkers, a move history stack,
// an incremental Zobrist hash) to make and unmake moves without
// recomputing from scratch.
type Board struct {
	bitboards      [piece.N + 1]bitboard.Bitboard // +1 slot for piece.Empty
	colorBitboards [piece.NColor]bitboard.Bitboard
	pieces         [square.N]piece.Piece

	attacks  bitboard.Bitboard // squares attacked by the side not to move
	pins     bitboard.Bitboard // own pieces pinned to the king of the side to move
	checkers bitboard.Bitboard // enemy pieces currently giving check

	colorToMove  piece.Color
	castleRights castle.Rights
	epTarget     square.Square
	halfmove     int
	fullmove     int

	history []move.State

	keys *zobrist.Table
	hash zobrist.Key
}

// New creates a Board in the standard starting position.
func New() *Board {
	b := &Board{keys: zobrist.NewTable()}
	b.reset()

	for sq := square.H8; sq <= square.A1; sq++ {
		b.bitboards[piece.Empty].Set(sq)
		b.pieces[sq] = piece.Empty
	}

	// indexed by file, h=0..a=7: h/g/f/e/d/c/b/a -> R N B K Q B N R.
	back := [8]piece.Kind{
		piece.Rook, piece.Knight, piece.Bishop, piece.King,
		piece.Queen, piece.Bishop, piece.Knight, piece.Rook,
	}

	m := &Modifier{board: b}
	for i, kind := range back {
		file := square.File(i)
		m.Put(piece.New(kind, piece.Black), square.From(file, square.Rank8))
		m.Put(piece.New(piece.Pawn, piece.Black), square.From(file, square.Rank7))
		m.Put(piece.New(piece.Pawn, piece.White), square.From(file, square.Rank2))
		m.Put(piece.New(kind, piece.White), square.From(file, square.Rank1))
	}
	m.SetCastle(castle.All)
	m.complete()

	return b
}

// NewEmpty creates a Board with no pieces on it, White to move, no
// castling rights, and no en passant target. It's primarily useful as a
// starting point for Builder.
func NewEmpty() *Board {
	b := &Board{keys: zobrist.NewTable()}
	b.reset()

	for sq := square.H8; sq <= square.A1; sq++ {
		b.bitboards[piece.Empty].Set(sq)
		b.pieces[sq] = piece.Empty
	}

	return b
}

// reset sets the side to move, en passant target, and move counters to
// their starting values (White, none, 0 and 1) and clears the checkers.
func (b *Board) reset() {
	b.colorToMove = piece.White
	b.epTarget = square.None
	b.halfmove = 0
	b.fullmove = 1
	b.checkers = bitboard.Empty
}

// Clone returns an independent copy of b. Since Board holds no pointers
// except its (immutable, shared-by-value-semantics) key table, a shallow
// copy plus a fresh history slice suffices.
func (b *Board) Clone() *Board {
	clone := *b
	clone.history = append([]move.State(nil), b.history...)
	return &clone
}

// ColorToMove returns the color of the side to move.
func (b *Board) ColorToMove() piece.Color {
	return b.colorToMove
}

// CastleRights returns the current castling rights.
func (b *Board) CastleRights() castle.Rights {
	return b.castleRights
}

// EPTarget returns the current en passant target square, or square.None
// if there isn't one.
func (b *Board) EPTarget() square.Square {
	return b.epTarget
}

// Halfmove returns the halfmove clock (plies since the last capture or
// pawn move).
func (b *Board) Halfmove() int {
	return b.halfmove
}

// Fullmove returns the fullmove counter (incremented after Black moves).
func (b *Board) Fullmove() int {
	return b.fullmove
}

// Hash returns the Board's current Zobrist hash.
func (b *Board) Hash() zobrist.Key {
	return b.hash
}

// PieceAt returns the piece occupying sq, or piece.Empty.
func (b *Board) PieceAt(sq square.Square) piece.Piece {
	return b.pieces[sq]
}

// Pieces returns the bitboard of every square occupied by the given
// piece.
func (b *Board) Pieces(p piece.Piece) bitboard.Bitboard {
	return b.bitboards[p]
}

// Occupied returns the bitboard of every occupied square.
func (b *Board) Occupied() bitboard.Bitboard {
	return ^b.bitboards[piece.Empty]
}

// Empty returns the bitboard of every empty square.
func (b *Board) Empty() bitboard.Bitboard {
	return b.bitboards[piece.Empty]
}

// Color returns the bitboard of every square occupied by a piece of the
// given color.
func (b *Board) Color(c piece.Color) bitboard.Bitboard {
	return b.colorBitboards[c]
}

// Attacks returns the bitboard of every square attacked by the side NOT
// to move, used to filter king moves and castling legality.
func (b *Board) Attacks() bitboard.Bitboard {
	return b.attacks
}

// Pins returns the bitboard of every piece of the side to move that's
// currently pinned to its king.
func (b *Board) Pins() bitboard.Bitboard {
	return b.pins
}

// King returns the square of the king of the given color. It panics if
// that color has no king on the board; callers that build positions
// through Builder get this checked for them there.
func (b *Board) King(c piece.Color) square.Square {
	sq := b.bitboards[piece.New(piece.King, c)].FirstOne()
	if sq == square.None {
		panic("board: King called for a color with no king on the board")
	}
	return sq
}

// KingExists reports whether the given color has a king on the board.
func (b *Board) KingExists(c piece.Color) bool {
	return !b.bitboards[piece.New(piece.King, c)].IsEmpty()
}

// PinOnSquare returns the Ray along which the piece at sq is pinned to
// its king, and true, if it's pinned. Otherwise it returns false.
func (b *Board) PinOnSquare(sq square.Square) (bitboard.Ray, bool) {
	p := b.pieces[sq]
	if p.IsEmpty() || !b.pins.IsSet(sq) {
		return bitboard.Ray{}, false
	}
	return bitboard.RayFrom(b.King(p.Color()), sq), true
}

// CheckKind classifies how many pieces are currently giving check.
type CheckKind uint8

// the three ways a side to move can stand relative to check.
const (
	NoCheck CheckKind = iota
	SingleCheck
	DoubleCheck
)

// Check describes the current check status of the side to move.
type Check struct {
	Kind CheckKind
	// Checker is the square of the sole checking piece. It's only valid
	// when Kind is SingleCheck.
	Checker square.Square
}

// Check returns the current check status of the side to move.
func (b *Board) Check() Check {
	switch b.checkers.Count() {
	case 0:
		return Check{Kind: NoCheck}
	case 1:
		return Check{Kind: SingleCheck, Checker: b.checkers.FirstOne()}
	default:
		return Check{Kind: DoubleCheck}
	}
}

// modify runs fn against a fresh Modifier scoped to b, then brings b's
// derived state (attacks, pins, checkers) back in sync. Every mutating
// operation on a Board — making a move, building a position — goes
// through this so that expensive attack/pin/check recomputation happens
// at most once per batch of edits.
func (b *Board) modify(fn func(*Modifier)) {
	m := &Modifier{board: b}
	fn(m)
	m.complete()
}
