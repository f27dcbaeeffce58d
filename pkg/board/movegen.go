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
	"laptudirm.com/x/chesscore/pkg/bitboard"
	"laptudirm.com/x/chesscore/pkg/castle"
	"laptudirm.com/x/chesscore/pkg/direction"
	"laptudirm.com/x/chesscore/pkg/move"
	"laptudirm.com/x/chesscore/pkg/piece"
	"laptudirm.com/x/chesscore/pkg/square"
)

// LegalMoves returns every legal move for the side to move.
func (b *Board) LegalMoves() []move.Move {
	us := b.colorToMove
	moves := make([]move.Move, 0, 48)

	b.pawnMoves(&moves, b.Pieces(piece.New(piece.Pawn, us)), us)
	b.knightMoves(&moves, b.Pieces(piece.New(piece.Knight, us)), us)
	b.slidingMoves(&moves, b.Pieces(piece.New(piece.Bishop, us)), us, piece.Bishop)
	b.slidingMoves(&moves, b.Pieces(piece.New(piece.Rook, us)), us, piece.Rook)
	b.slidingMoves(&moves, b.Pieces(piece.New(piece.Queen, us)), us, piece.Queen)
	b.kingMoves(&moves, us)

	return b.filterMovesByCheck(moves, us)
}

// MovesFrom returns every legal move originating from sq, or nil if sq is
// empty or holds a piece of the side not to move.
func (b *Board) MovesFrom(sq square.Square) []move.Move {
	p := b.PieceAt(sq)
	if p.IsEmpty() || p.Color() != b.colorToMove {
		return nil
	}

	moves := make([]move.Move, 0, 27)
	origin := bitboard.Squares[sq]

	switch p.Kind() {
	case piece.Pawn:
		b.pawnMoves(&moves, origin, p.Color())
	case piece.Knight:
		b.knightMoves(&moves, origin, p.Color())
	case piece.Bishop:
		b.slidingMoves(&moves, origin, p.Color(), piece.Bishop)
	case piece.Rook:
		b.slidingMoves(&moves, origin, p.Color(), piece.Rook)
	case piece.Queen:
		b.slidingMoves(&moves, origin, p.Color(), piece.Queen)
	case piece.King:
		b.kingMoves(&moves, p.Color())
	}

	return b.filterMovesByCheck(moves, b.colorToMove)
}

// filterMovesByCheck trims mvs down to moves that are legal given the
// current check status: any move when not in check, a move ending the
// check when singly checked (blocking the ray or capturing the checker,
// including en passant capturing a checking pawn), and no non-king move
// at all when doubly checked. King moves are always retained here; their
// destination safety was already enforced by kingMoves via Attacks.
func (b *Board) filterMovesByCheck(mvs []move.Move, us piece.Color) []move.Move {
	var epPawn bitboard.Bitboard
	if target := b.epTarget; target != square.None {
		if us == piece.White {
			epPawn = bitboard.Squares[target].Shift(direction.South)
		} else {
			epPawn = bitboard.Squares[target].Shift(direction.North)
		}
	}

	var limits bitboard.Bitboard
	switch check := b.Check(); check.Kind {
	case NoCheck:
		limits = bitboard.All
	case SingleCheck:
		limits = bitboard.Between(b.King(us), check.Checker) | bitboard.Squares[check.Checker]
	case DoubleCheck:
		limits = bitboard.Empty
	}

	kept := mvs[:0]
	for _, mv := range mvs {
		switch {
		case b.PieceAt(mv.Origin).Is(piece.King):
			kept = append(kept, mv)
		case limits.IsSet(mv.Dest):
			kept = append(kept, mv)
		case b.PieceAt(mv.Origin).Is(piece.Pawn) && mv.Dest == b.epTarget && epPawn == limits:
			kept = append(kept, mv)
		}
	}
	return kept
}

// kingMoves appends every step and castling move available to color's
// king, filtered against Attacks so the king never walks into or through
// check.
func (b *Board) kingMoves(mvs *[]move.Move, color piece.Color) {
	origin := b.King(color)
	free := (b.Empty() | b.Color(color.Other())) &^ b.attacks

	for targets := kingAttackTable[origin] & free; !targets.IsEmpty(); {
		*mvs = append(*mvs, move.New(origin, targets.Pop()))
	}

	if b.ableToCastleKingside(color) {
		dest := origin.Shift2(direction.East)
		*mvs = append(*mvs, move.New(origin, dest))
	}
	if b.ableToCastleQueenside(color) {
		dest := origin.Shift2(direction.West)
		*mvs = append(*mvs, move.New(origin, dest))
	}
}

// castle square groups used by ableToCastle{Kingside,Queenside}, indexed
// by color.
var (
	kingsideFilter = [piece.NColor]bitboard.Bitboard{
		piece.White: bitboard.Squares[square.G1] | bitboard.Squares[square.F1],
		piece.Black: bitboard.Squares[square.G8] | bitboard.Squares[square.F8],
	}
	kingsideCheck = [piece.NColor]bitboard.Bitboard{
		piece.White: bitboard.Squares[square.G1] | bitboard.Squares[square.F1] | bitboard.Squares[square.E1],
		piece.Black: bitboard.Squares[square.G8] | bitboard.Squares[square.F8] | bitboard.Squares[square.E8],
	}
	queensideFilter = [piece.NColor]bitboard.Bitboard{
		piece.White: bitboard.Squares[square.D1] | bitboard.Squares[square.C1] | bitboard.Squares[square.B1],
		piece.Black: bitboard.Squares[square.D8] | bitboard.Squares[square.C8] | bitboard.Squares[square.B8],
	}
	queensideCheck = [piece.NColor]bitboard.Bitboard{
		piece.White: bitboard.Squares[square.E1] | bitboard.Squares[square.D1] | bitboard.Squares[square.C1],
		piece.Black: bitboard.Squares[square.E8] | bitboard.Squares[square.D8] | bitboard.Squares[square.C8],
	}

	kingsideRight  = [piece.NColor]castle.Rights{piece.White: castle.WhiteKingside, piece.Black: castle.BlackKingside}
	queensideRight = [piece.NColor]castle.Rights{piece.White: castle.WhiteQueenside, piece.Black: castle.BlackQueenside}
)

func (b *Board) ableToCastleKingside(color piece.Color) bool {
	return b.castleRights.Has(kingsideRight[color]) &&
		b.Empty()&kingsideFilter[color] == kingsideFilter[color] &&
		b.attacks&kingsideCheck[color] == bitboard.Empty
}

func (b *Board) ableToCastleQueenside(color piece.Color) bool {
	return b.castleRights.Has(queensideRight[color]) &&
		b.Empty()&queensideFilter[color] == queensideFilter[color] &&
		b.attacks&queensideCheck[color] == bitboard.Empty
}

// pawnMoves appends every push, double push, capture, and en passant
// capture available to color's pawns set in origins.
func (b *Board) pawnMoves(mvs *[]move.Move, origins bitboard.Bitboard, color piece.Color) {
	them := color.Other()

	dir := direction.South
	dpRank := square.Rank5
	if color == piece.White {
		dir = direction.North
		dpRank = square.Rank4
	}

	dpFree := b.Empty() & b.Empty().Shift(dir) & rankMask(dpRank)

	cap := b.Color(them)
	if b.epTarget != square.None && !b.epIsPinned() {
		cap |= bitboard.Squares[b.epTarget]
	}

	leftAttack, rightAttack := direction.NorthWest, direction.NorthEast
	if color == piece.Black {
		leftAttack, rightAttack = direction.SouthWest, direction.SouthEast
	}

	for !origins.IsEmpty() {
		origin := origins.Pop()

		pin := bitboard.All
		if ray, ok := b.PinOnSquare(origin); ok {
			pin = ray.Mask()
		}

		free := b.Empty() & pin
		dp := dpFree & pin
		c := cap & pin

		if target := origin.Shift(dir); target.Valid() {
			if free.IsSet(target) {
				pushPawnMove(mvs, origin, target, color)
			}
			if dtarget := target.Shift(dir); dtarget.Valid() && dp.IsSet(dtarget) {
				pushPawnMove(mvs, origin, dtarget, color)
			}
		}

		if target := origin.Shift(leftAttack); target.Valid() && c.IsSet(target) {
			pushPawnMove(mvs, origin, target, color)
		}
		if target := origin.Shift(rightAttack); target.Valid() && c.IsSet(target) {
			pushPawnMove(mvs, origin, target, color)
		}
	}
}

// epIsPinned reports whether making the board's current en passant
// capture (if any) would expose the capturing side's king to a
// horizontal check along the 4th/5th rank: a pawn either side of the
// just-moved pawn, pinned to the king by an enemy rook or queen beyond
// it, can't capture en passant even though neither pawn individually
// blocks the check.
func (b *Board) epIsPinned() bool {
	target := b.epTarget
	if target == square.None {
		return true
	}

	var color piece.Color
	var dir direction.Dir
	if target.Rank() == square.Rank6 {
		color, dir = piece.White, direction.South
	} else {
		color, dir = piece.Black, direction.North
	}

	king := b.King(color)
	epPawn := target.Shift(dir)

	ray, ok := bitboard.TryRayFrom(king, epPawn)
	if !ok || (ray.Dir != direction.East && ray.Dir != direction.West) {
		return false
	}

	them := color.Other()
	squares := ray.Squares()

	var occupants []piece.Piece
	for _, sq := range squares {
		if p := b.PieceAt(sq); !p.IsEmpty() {
			occupants = append(occupants, p)
			if len(occupants) == 3 {
				break
			}
		}
	}

	if len(occupants) < 3 {
		return false
	}

	ownPawn := piece.New(piece.Pawn, color)
	theirPawn := piece.New(piece.Pawn, them)
	pawnsFacing := (occupants[0] == ownPawn && occupants[1] == theirPawn) ||
		(occupants[0] == theirPawn && occupants[1] == ownPawn)

	slider := occupants[2] == piece.New(piece.Rook, them) || occupants[2] == piece.New(piece.Queen, them)

	return pawnsFacing && slider
}

// pushPawnMove appends mv, or every promotion of mv if dest sits on the
// back rank for color.
func pushPawnMove(mvs *[]move.Move, origin, dest square.Square, color piece.Color) {
	backRank := square.Rank1
	if color == piece.White {
		backRank = square.Rank8
	}

	if dest.Rank() != backRank {
		*mvs = append(*mvs, move.New(origin, dest))
		return
	}

	for _, promo := range piece.Promotions {
		*mvs = append(*mvs, move.NewPromotion(origin, dest, promo))
	}
}

// rankMask returns the bitboard of every square on rank r.
func rankMask(r square.Rank) bitboard.Bitboard {
	var mask bitboard.Bitboard
	for f := square.FileH; f <= square.FileA; f++ {
		mask.Set(square.From(f, r))
	}
	return mask
}

// kindDirs maps a sliding piece kind to the directions it moves along.
func kindDirs(kind piece.Kind) []direction.Dir {
	switch kind {
	case piece.Rook:
		return direction.Rook[:]
	case piece.Bishop:
		return direction.Bishop[:]
	default: // Queen
		return direction.All[:]
	}
}

// slidingMoves appends every move available to color's sliding pieces of
// the given kind set in origins. Unpinned pieces walk freely; pinned
// pieces are constrained to the ray between the king and the pin, and
// only contribute moves at all if that ray's orientation matches a
// direction the piece kind can move in.
func (b *Board) slidingMoves(mvs *[]move.Move, origins bitboard.Bitboard, color piece.Color, kind piece.Kind) {
	dirs := kindDirs(kind)
	pinned := origins & b.pins
	unpinned := origins ^ pinned

	for !unpinned.IsEmpty() {
		origin := unpinned.Pop()
		for _, d := range dirs {
			bb := bitboard.Squares[origin]
			for {
				bb = bb.Shift(d)
				if bb.IsEmpty() {
					break
				}
				dest := bb.FirstOne()
				if b.PieceAt(dest).IsColor(color) {
					break
				}
				*mvs = append(*mvs, move.New(origin, dest))
				if b.PieceAt(dest).IsColor(color.Other()) {
					break
				}
			}
		}
	}

	for !pinned.IsEmpty() {
		origin := pinned.Pop()
		ray := bitboard.RayFrom(b.King(color), origin)
		if kind != piece.Queen && ray.Dir.Kind() != dirKindOf(kind) {
			continue
		}
		for _, dest := range ray.Squares() {
			if dest == origin {
				continue
			}
			if b.PieceAt(dest).IsColor(color) {
				break
			}
			*mvs = append(*mvs, move.New(origin, dest))
			if b.PieceAt(dest).IsColor(color.Other()) {
				break
			}
		}
	}
}

func dirKindOf(kind piece.Kind) direction.Kind {
	if kind == piece.Rook {
		return direction.RookKind
	}
	return direction.BishopKind
}

// knightMoves appends every move available to color's knights set in
// origins. A pinned knight has no legal moves: any square it can reach
// leaves the pin ray, so pinned knights are excluded outright rather than
// constrained like sliding pieces.
func (b *Board) knightMoves(mvs *[]move.Move, origins bitboard.Bitboard, color piece.Color) {
	cap := b.Color(color.Other()) | b.Empty()

	for knights := origins &^ b.pins; !knights.IsEmpty(); {
		origin := knights.Pop()
		for targets := knightAttackTable[origin] & cap; !targets.IsEmpty(); {
			*mvs = append(*mvs, move.New(origin, targets.Pop()))
		}
	}
}
