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

package board

import (
	"laptudirm.com/x/chesscore/pkg/castle"
	"laptudirm.com/x/chesscore/pkg/piece"
	"laptudirm.com/x/chesscore/pkg/square"
)

// Modifier is a scoped handle onto a Board's mutable state. Every edit
// made through a Modifier updates placement bitboards, the mailbox, and
// the Zobrist hash immediately, but leaves the expensive derived state
// (attacks/pins/checkers) stale until the Modifier's scope ends, so a
// batch of edits (e.g. a whole move) pays for recomputing that state at
// most once.
//
// A Modifier must not be used once the func it was passed to returns.
type Modifier struct {
	board *Board
}

// Put places p on sq unconditionally, overwriting whatever was there, and
// returns the piece that was replaced (possibly piece.Empty).
func (m *Modifier) Put(p piece.Piece, sq square.Square) piece.Piece {
	b := m.board

	replaced := b.pieces[sq]
	b.pieces[sq] = p

	b.bitboards[replaced].Unset(sq)
	if !replaced.IsEmpty() {
		b.colorBitboards[replaced.Color()].Unset(sq)
		b.hash ^= b.keys.PieceSquare[replaced][sq]
	}

	b.bitboards[p].Set(sq)
	if !p.IsEmpty() {
		b.colorBitboards[p.Color()].Set(sq)
		b.hash ^= b.keys.PieceSquare[p][sq]
	}

	return replaced
}

// Clear empties sq and returns the piece that was there.
func (m *Modifier) Clear(sq square.Square) piece.Piece {
	return m.Put(piece.Empty, sq)
}

// Move relocates whatever piece sits on origin to dest, leaving origin
// empty, and returns the piece that dest held before (the capture, if
// any).
func (m *Modifier) Move(origin, dest square.Square) piece.Piece {
	return m.MoveReplace(origin, dest, piece.Empty)
}

// MoveReplace places replacement on origin, then moves whatever piece had
// been on origin onto dest, returning the piece that dest held before.
// It's used both to make a move (replacement is piece.Empty) and to
// unmake one (replacement is the piece that should reappear where the
// mover came from, typically piece.Empty but occasionally a just-undone
// capture when origin and dest are swapped).
func (m *Modifier) MoveReplace(origin, dest square.Square, replacement piece.Piece) piece.Piece {
	p := m.Put(replacement, origin)
	return m.Put(p, dest)
}

// ToggleColorToMove flips whose turn it is to move.
func (m *Modifier) ToggleColorToMove() {
	b := m.board
	b.colorToMove = b.colorToMove.Other()
	b.hash ^= b.keys.SideToMove
}

// SetCastle replaces the board's castling rights wholesale.
func (m *Modifier) SetCastle(rights castle.Rights) {
	b := m.board
	b.hash ^= b.keys.CastlingKey(b.castleRights)
	b.castleRights = rights
	b.hash ^= b.keys.CastlingKey(rights)
}

// SetEPTarget replaces the board's en passant target square.
func (m *Modifier) SetEPTarget(sq square.Square) {
	b := m.board
	if b.epTarget != square.None {
		b.hash ^= b.keys.EnPassant[b.epTarget.File()]
	}
	b.epTarget = sq
	if sq != square.None {
		b.hash ^= b.keys.EnPassant[sq.File()]
	}
}

// complete recomputes attacks, pins, and checkers from the board's now-
// final placement, ending the Modifier's scope.
func (m *Modifier) complete() {
	m.board.updatePosition()
}
