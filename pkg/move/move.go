// Copyright © 2022 Rak Laptudirm <raklaptudirm@gmail.com>
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

// Package move implements Move, the long algebraic notation chesscore
// uses on its external interfaces (e.g. "e7e8q"), and MoveState, the
// snapshot a Board keeps per ply so a move can be unmade losslessly.
package move

import (
	"strings"

	"laptudirm.com/x/chesscore/pkg/castle"
	"laptudirm.com/x/chesscore/pkg/chesserr"
	"laptudirm.com/x/chesscore/pkg/piece"
	"laptudirm.com/x/chesscore/pkg/square"
)

// Move is a single move in long algebraic notation: an origin square, a
// destination square, and an optional promotion kind. It carries no
// information about the piece moved or captured; that's recovered from
// the Board the move is played against.
type Move struct {
	Origin    square.Square
	Dest      square.Square
	Promotion piece.Kind
}

// New creates a non-promoting Move.
func New(origin, dest square.Square) Move {
	return Move{Origin: origin, Dest: dest}
}

// NewPromotion creates a promoting Move.
func NewPromotion(origin, dest square.Square, promotion piece.Kind) Move {
	return Move{Origin: origin, Dest: dest, Promotion: promotion}
}

// String renders m in long algebraic notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	str := m.Origin.String() + m.Dest.String()
	if m.Promotion != piece.NoKind {
		str += strings.ToLower(m.Promotion.String())
	}
	return str
}

// Parse reads a Move from its long algebraic notation. It rejects
// malformed strings and promotion suffixes that don't sit on a
// promotion rank for a pawn moving in a consistent direction, per
// spec.md's move string grammar.
func Parse(s string) (Move, error) {
	const context = "move.Parse"

	if len(s) != 4 && len(s) != 5 {
		return Move{}, chesserr.New(chesserr.InvalidInput, context,
			"move string must be 4 or 5 characters long")
	}

	for _, c := range s {
		if c > 127 {
			return Move{}, chesserr.New(chesserr.InvalidInput, context,
				"move string must be ASCII")
		}
	}

	for _, sq := range []string{s[0:2], s[2:4]} {
		if sq[0] < 'a' || sq[0] > 'h' || sq[1] < '1' || sq[1] > '8' {
			return Move{}, chesserr.New(chesserr.InvalidInput, context,
				"square must be a file a-h followed by a rank 1-8")
		}
	}

	origin := square.New(s[0:2])
	dest := square.New(s[2:4])

	m := Move{Origin: origin, Dest: dest}

	if len(s) == 5 {
		originRank := s[1]
		destRank := s[3]

		switch {
		case originRank == '7' && destRank == '8':
			// white pawn promoting
		case originRank == '2' && destRank == '1':
			// black pawn promoting
		default:
			return Move{}, chesserr.New(chesserr.InvalidInput, context,
				"promotion suffix requires a pawn move onto the first or eighth rank")
		}

		switch s[4] {
		case 'q':
			m.Promotion = piece.Queen
		case 'r':
			m.Promotion = piece.Rook
		case 'b':
			m.Promotion = piece.Bishop
		case 'n':
			m.Promotion = piece.Knight
		default:
			return Move{}, chesserr.New(chesserr.InvalidInput, context,
				"invalid promotion piece letter")
		}
	}

	return m, nil
}

// State snapshots everything about a position that a Move's application
// can't be reconstructed from alone: the move itself, whatever it
// captured, and the castling/halfmove/en-passant state from just before
// it was made. A Board's make/unmake pushes and pops these in a stack.
type State struct {
	Move     Move
	Captured piece.Piece
	Castle   castle.Rights
	Halfmove int
	EPTarget square.Square
}
