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
	"laptudirm.com/x/chesscore/pkg/piece"
	"laptudirm.com/x/chesscore/pkg/square"
)

// Builder assembles a Board field by field, deferring every consistency
// check (piece counts, castling rights, en passant legality, and check
// status) to Build, so a caller can stage an arbitrary placement without
// a partially-built Board ever needing to hold derived state.
type Builder struct {
	pieces   [square.N]piece.Piece
	color    piece.Color
	castle   castle.Rights
	epTarget square.Square
	halfmove int
	fullmove int
}

// NewBuilder creates a Builder with no pieces on the board, White to
// move, no castling rights, no en passant target, and the counters at
// their FEN defaults (halfmove 0, fullmove 1).
func NewBuilder() *Builder {
	b := &Builder{
		color:    piece.White,
		epTarget: square.None,
		halfmove: 0,
		fullmove: 1,
	}
	for sq := range b.pieces {
		b.pieces[sq] = piece.Empty
	}
	return b
}

// Put stages p on sq, overwriting whatever was staged there before.
func (b *Builder) Put(p piece.Piece, sq square.Square) *Builder {
	b.pieces[sq] = p
	return b
}

// SetColorToMove stages the side to move.
func (b *Builder) SetColorToMove(c piece.Color) *Builder {
	b.color = c
	return b
}

// SetCastle stages the castling rights.
func (b *Builder) SetCastle(rights castle.Rights) *Builder {
	b.castle = rights
	return b
}

// SetEPTarget stages the en passant target square.
func (b *Builder) SetEPTarget(sq square.Square) *Builder {
	b.epTarget = sq
	return b
}

// SetHalfmove stages the halfmove clock.
func (b *Builder) SetHalfmove(n int) *Builder {
	b.halfmove = n
	return b
}

// SetFullmove stages the fullmove counter.
func (b *Builder) SetFullmove(n int) *Builder {
	b.fullmove = n
	return b
}

// Build validates the staged position and, if valid, produces a Board
// from it. It rejects, with InvalidInput, a position that:
//   - doesn't have exactly one king per color;
//   - holds a castling right for a king that isn't on its starting
//     square;
//   - has an en passant target that isn't on rank 3 or rank 6, or that
//     has no pawn of the side not to move standing just beyond it;
//   - leaves the side that just moved in check;
//   - gives the side to move no legal move at all (this rejects
//     checkmates and stalemates as Builder input; such positions are
//     reached by playing moves with Make, which has no such check).
func (b *Builder) Build() (*Board, error) {
	const context = "board.Builder.Build"

	if err := b.validateKingCounts(); err != nil {
		return nil, err
	}

	board := NewEmpty()
	board.modify(func(m *Modifier) {
		for sq, p := range b.pieces {
			if !p.IsEmpty() {
				m.Put(p, square.Square(sq))
			}
		}
		if b.color == piece.Black {
			m.ToggleColorToMove()
		}
		m.SetCastle(b.castle)
		m.SetEPTarget(b.epTarget)
	})
	board.halfmove = b.halfmove
	board.fullmove = b.fullmove

	if err := validateCastleRights(board); err != nil {
		return nil, err
	}
	if err := validateEPTarget(board); err != nil {
		return nil, err
	}
	if err := validateOpponentNotInCheck(board); err != nil {
		return nil, err
	}
	if len(board.LegalMoves()) == 0 {
		return nil, chesserr.New(chesserr.InvalidInput, context,
			"side to move has no legal move")
	}

	return board, nil
}

// validateKingCounts checks that the staged position has exactly one
// king of each color. The original source's equivalent check inverted
// this condition, rejecting the valid case instead of the invalid one;
// this reimplements it from scratch with the correct sense.
func (b *Builder) validateKingCounts() error {
	const context = "board.Builder.Build"

	var white, black int
	for _, p := range b.pieces {
		if p.Is(piece.King) {
			if p.Color() == piece.White {
				white++
			} else {
				black++
			}
		}
	}
	if white != 1 || black != 1 {
		return chesserr.New(chesserr.InvalidInput, context,
			"position must have exactly one king per color")
	}
	return nil
}

// validateCastleRights checks that every staged castling right belongs
// to a king still standing on its starting square.
func validateCastleRights(b *Board) error {
	const context = "board.Builder.Build"

	if b.castleRights&castle.White != 0 && b.pieces[square.E1] != piece.WhiteKing {
		return chesserr.New(chesserr.InvalidInput, context,
			"white castling rights require the white king on e1")
	}
	if b.castleRights&castle.Black != 0 && b.pieces[square.E8] != piece.BlackKing {
		return chesserr.New(chesserr.InvalidInput, context,
			"black castling rights require the black king on e8")
	}
	return nil
}

// validateEPTarget checks that a staged en passant target, if any, sits
// on rank 3 or rank 6 with a pawn of the side not to move standing just
// beyond it, consistent with the direction/color pairing LegalMoves'
// epIsPinned check relies on: a rank 6 target implies a Black pawn
// just double-pushed from its home rank through rank 6, so White is to
// move and that pawn sits one step south of the target; a rank 3 target
// is the mirror image.
func validateEPTarget(b *Board) error {
	const context = "board.Builder.Build"

	if b.epTarget == square.None {
		return nil
	}

	var pawnColor piece.Color
	var pawnDir direction.Dir
	switch b.epTarget.Rank() {
	case square.Rank6:
		pawnColor, pawnDir = piece.Black, direction.South
	case square.Rank3:
		pawnColor, pawnDir = piece.White, direction.North
	default:
		return chesserr.New(chesserr.InvalidInput, context,
			"en passant target must be on rank 3 or rank 6")
	}

	if b.colorToMove == pawnColor {
		return chesserr.New(chesserr.InvalidInput, context,
			"en passant target is inconsistent with the side to move")
	}

	pawnSq := b.epTarget.Shift(pawnDir)
	if pawnSq == square.None || b.pieces[pawnSq] != piece.New(piece.Pawn, pawnColor) {
		return chesserr.New(chesserr.InvalidInput, context,
			"en passant target has no pawn standing just beyond it")
	}
	return nil
}

// validateOpponentNotInCheck checks that the side which just moved (the
// opposite of the side to move) doesn't have its king in check, which
// would mean the position was reached by a move that left its own king
// exposed.
func validateOpponentNotInCheck(b *Board) error {
	const context = "board.Builder.Build"

	them := b.colorToMove.Other()
	attacks := b.computeAttacks(b.colorToMove)
	if attacks.IsSet(b.King(them)) {
		return chesserr.New(chesserr.InvalidInput, context,
			"the side not to move is in check")
	}
	return nil
}
