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
	"laptudirm.com/x/chesscore/pkg/chesserr"
	"laptudirm.com/x/chesscore/pkg/direction"
	"laptudirm.com/x/chesscore/pkg/move"
	"laptudirm.com/x/chesscore/pkg/piece"
	"laptudirm.com/x/chesscore/pkg/square"
	"laptudirm.com/x/chesscore/pkg/util"
)

// Make plays mv if it's legal in the current position, returning an
// InvalidInput error and leaving the board untouched otherwise.
func (b *Board) Make(mv move.Move) error {
	const context = "board.Make"

	p := b.PieceAt(mv.Origin)
	if p.IsEmpty() || p.Color() != b.colorToMove {
		return chesserr.New(chesserr.InvalidInput, context, "no piece of the side to move on the origin square")
	}

	legal := false
	for _, candidate := range b.MovesFrom(mv.Origin) {
		if candidate == mv {
			legal = true
			break
		}
	}
	if !legal {
		return chesserr.New(chesserr.InvalidInput, context, "move is not legal in the current position")
	}

	b.MakeUnchecked(mv)
	return nil
}

// MakeUnchecked plays mv without checking its legality. Callers must only
// use this with moves already known to be legal, e.g. ones returned by
// LegalMoves; an illegal mv will corrupt the board's derived state.
func (b *Board) MakeUnchecked(mv move.Move) {
	p := b.PieceAt(mv.Origin)

	var state move.State

	var captured piece.Piece

	b.modify(func(m *Modifier) {
		isEP := b.epTarget == mv.Dest && p.Is(piece.Pawn)

		captured = m.Move(mv.Origin, mv.Dest)

		if isEP {
			capturedSq := square.From(mv.Dest.File(), mv.Origin.Rank())
			captured = m.Clear(capturedSq)
		}

		state = move.State{
			Move:     mv,
			Captured: captured,
			Castle:   b.castleRights,
			Halfmove: b.halfmove,
			EPTarget: b.epTarget,
		}

		if mv.Promotion != piece.NoKind {
			m.Put(piece.New(mv.Promotion, p.Color()), mv.Dest)
		}

		if p.Is(piece.King) && util.Abs(int(mv.Dest)-int(mv.Origin)) == 2 {
			rank := mv.Origin.Rank()
			if isKingsideCastleDest(mv.Origin, mv.Dest) {
				m.Move(square.From(square.FileH, rank), square.From(square.FileF, rank))
			} else {
				m.Move(square.From(square.FileA, rank), square.From(square.FileD, rank))
			}
		}

		m.ToggleColorToMove()

		switch {
		case p.Is(piece.Pawn) && util.Abs(int(mv.Dest)-int(mv.Origin)) == 16:
			origin, dest := mv.Origin, mv.Dest
			if origin < dest {
				m.SetEPTarget(origin.Shift(direction.South))
			} else {
				m.SetEPTarget(origin.Shift(direction.North))
			}
		default:
			m.SetEPTarget(square.None)
		}

		rights := b.castleRights
		if p.Is(piece.King) {
			rights = rights.Without(colorRights(p.Color()))
		}
		if p.Is(piece.Rook) {
			rights = rights.Without(rookHomeRight(p.Color(), mv.Origin))
		}
		if captured.Is(piece.Rook) {
			rights = rights.Without(rookHomeRight(captured.Color(), mv.Dest))
		}
		if rights != b.castleRights {
			m.SetCastle(rights)
		}
	})

	b.history = append(b.history, state)

	if p.Color() == piece.Black {
		b.fullmove++
	}
	// Reset on any capture or pawn move, even a quiet pawn push: the
	// stricter of two rules the source's history wavered between, and the
	// one that matches the canonical 50-move-rule definition.
	if state.Captured != piece.Empty || p.Is(piece.Pawn) {
		b.halfmove = 0
	} else {
		b.halfmove++
	}
}

// Unmake reverts the last move made, restoring the board to exactly the
// state it was in before MakeUnchecked was called. It's a no-op if no
// move has been made.
func (b *Board) Unmake() {
	n := len(b.history)
	if n == 0 {
		return
	}
	state := b.history[n-1]
	b.history = b.history[:n-1]

	mv := state.Move

	movedColor := b.colorToMove.Other()
	moved := b.PieceAt(mv.Dest)
	if mv.Promotion != piece.NoKind {
		moved = piece.New(piece.Pawn, movedColor)
	}

	b.modify(func(m *Modifier) {
		if mv.Promotion != piece.NoKind {
			m.Put(moved, mv.Dest)
		}
		m.MoveReplace(mv.Dest, mv.Origin, state.Captured)

		isEP := state.EPTarget == mv.Dest && moved.Is(piece.Pawn)
		if isEP {
			capturedSq := square.From(mv.Dest.File(), mv.Origin.Rank())
			m.Put(state.Captured, capturedSq)
			m.Clear(mv.Dest)
		}

		if moved.Is(piece.King) && util.Abs(int(mv.Dest)-int(mv.Origin)) == 2 {
			rank := mv.Origin.Rank()
			if isKingsideCastleDest(mv.Origin, mv.Dest) {
				m.Move(square.From(square.FileF, rank), square.From(square.FileH, rank))
			} else {
				m.Move(square.From(square.FileD, rank), square.From(square.FileA, rank))
			}
		}

		m.ToggleColorToMove()
		m.SetCastle(state.Castle)
		m.SetEPTarget(state.EPTarget)
	})

	if movedColor == piece.Black {
		b.fullmove--
	}
	b.halfmove = state.Halfmove
}

// isKingsideCastleDest reports whether a king move from origin to dest is
// a kingside castle, i.e. moves towards the h-file (lower square index).
func isKingsideCastleDest(origin, dest square.Square) bool {
	return dest < origin
}

// colorRights returns both castling rights belonging to color.
func colorRights(c piece.Color) castle.Rights {
	if c == piece.White {
		return castle.White
	}
	return castle.Black
}

// rookHomeRight returns the single castling right that a rook of color c
// standing on sq would guard, or castle.None if sq isn't either of that
// color's two home rook squares.
func rookHomeRight(c piece.Color, sq square.Square) castle.Rights {
	homeRank := square.Rank1
	if c == piece.Black {
		homeRank = square.Rank8
	}
	if sq.Rank() != homeRank {
		return castle.None
	}
	switch sq.File() {
	case square.FileH:
		if c == piece.White {
			return castle.WhiteKingside
		}
		return castle.BlackKingside
	case square.FileA:
		if c == piece.White {
			return castle.WhiteQueenside
		}
		return castle.BlackQueenside
	default:
		return castle.None
	}
}

