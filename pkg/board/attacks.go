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
	"laptudirm.com/x/chesscore/pkg/direction"
	"laptudirm.com/x/chesscore/pkg/piece"
	"laptudirm.com/x/chesscore/pkg/square"
)

// knightAttackTable and kingAttackTable hold the fixed attack set of a
// knight or king standing on a given square, precomputed once from rank
// and file deltas rather than rebuilt on every query.
var knightAttackTable [square.N]bitboard.Bitboard
var kingAttackTable [square.N]bitboard.Bitboard

func init() {
	knightDeltas := [8][2]int{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
	kingDeltas := [8][2]int{
		{0, 1}, {0, -1}, {1, 0}, {-1, 0},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}

	for s := square.H8; s <= square.A1; s++ {
		f, r := int(s.File()), int(s.Rank())

		for _, d := range knightDeltas {
			nf, nr := f+d[0], r+d[1]
			if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				knightAttackTable[s].Set(square.From(square.File(nf), square.Rank(nr)))
			}
		}

		for _, d := range kingDeltas {
			nf, nr := f+d[0], r+d[1]
			if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				kingAttackTable[s].Set(square.From(square.File(nf), square.Rank(nr)))
			}
		}
	}
}

// pawnAttacks returns the squares attacked by every pawn of the given
// color set in pawns.
func pawnAttacks(pawns bitboard.Bitboard, color piece.Color) bitboard.Bitboard {
	if color == piece.White {
		return pawns.Shift(direction.NorthEast) | pawns.Shift(direction.NorthWest)
	}
	return pawns.Shift(direction.SouthEast) | pawns.Shift(direction.SouthWest)
}

// slidingAttacks walks from sq along every direction in dirs, stopping
// (inclusive of the blocking square) at the first occupied square in
// occupied.
func slidingAttacks(sq square.Square, occupied bitboard.Bitboard, dirs [4]direction.Dir) bitboard.Bitboard {
	var attacks bitboard.Bitboard
	for _, d := range dirs {
		bb := bitboard.Squares[sq]
		for {
			bb = bb.Shift(d)
			if bb.IsEmpty() {
				break
			}
			attacks |= bb
			if occupied&bb != 0 {
				break
			}
		}
	}
	return attacks
}

// updatePosition recomputes attacks, pins, and checkers from the board's
// current placement. It's called once at the end of every Modifier
// scope.
func (b *Board) updatePosition() {
	us := b.colorToMove
	them := us.Other()

	if b.KingExists(them) {
		b.attacks = b.computeAttacks(them)
	} else {
		b.attacks = bitboard.Empty
	}

	if b.KingExists(us) {
		b.pins, b.checkers = b.computePinsAndCheckers(us)
	} else {
		b.pins, b.checkers = bitboard.Empty, bitboard.Empty
	}
}

// computeAttacks returns every square attacked by attacker's pieces.
// The defending king (attacker's opponent) is removed from the occupancy
// used for slider rays, so that squares "behind" it along a check ray are
// still marked attacked; otherwise the king could illegally step back
// along the same ray it's being checked on.
func (b *Board) computeAttacks(attacker piece.Color) bitboard.Bitboard {
	defender := attacker.Other()

	occupied := b.Occupied()
	if b.KingExists(defender) {
		occupied &^= bitboard.Squares[b.King(defender)]
	}

	var attacks bitboard.Bitboard

	attacks |= pawnAttacks(b.Pieces(piece.New(piece.Pawn, attacker)), attacker)

	knights := b.Pieces(piece.New(piece.Knight, attacker))
	for !knights.IsEmpty() {
		attacks |= knightAttackTable[knights.Pop()]
	}

	diagonal := b.Pieces(piece.New(piece.Bishop, attacker)) | b.Pieces(piece.New(piece.Queen, attacker))
	for !diagonal.IsEmpty() {
		attacks |= slidingAttacks(diagonal.Pop(), occupied, direction.Bishop)
	}

	orthogonal := b.Pieces(piece.New(piece.Rook, attacker)) | b.Pieces(piece.New(piece.Queen, attacker))
	for !orthogonal.IsEmpty() {
		attacks |= slidingAttacks(orthogonal.Pop(), occupied, direction.Rook)
	}

	if b.KingExists(attacker) {
		attacks |= kingAttackTable[b.King(attacker)]
	}

	return attacks
}

// computePinsAndCheckers walks every direction from us's king, classifying
// each ray by how many of us's pieces block it before an enemy slider of
// a matching kind: zero blockers means the slider is checking the king,
// exactly one means that blocker is pinned. Knight and pawn checks are
// found separately, since neither can be discovered by a ray walk.
func (b *Board) computePinsAndCheckers(us piece.Color) (pins, checkers bitboard.Bitboard) {
	them := us.Other()
	kingSq := b.King(us)

	ownOccupied := b.Color(us)
	theirOccupied := b.Color(them)

	for _, d := range direction.All {
		var blockers int
		var blocker square.Square

		bb := bitboard.Squares[kingSq]
		for {
			bb = bb.Shift(d)
			if bb.IsEmpty() {
				break
			}
			sq := bb.FirstOne()

			switch {
			case ownOccupied.IsSet(sq):
				blockers++
				blocker = sq

			case theirOccupied.IsSet(sq):
				kind := b.PieceAt(sq).Kind()
				slides := kind == piece.Queen ||
					(kind == piece.Rook && d.Kind() == direction.RookKind) ||
					(kind == piece.Bishop && d.Kind() == direction.BishopKind)

				if slides {
					switch blockers {
					case 0:
						checkers.Set(sq)
					case 1:
						pins.Set(blocker)
					}
				}
				blockers = 2 // force the ray walk to stop

			default:
				continue
			}

			if blockers > 1 {
				break
			}
		}
	}

	checkers |= knightAttackTable[kingSq] & b.Pieces(piece.New(piece.Knight, them))
	checkers |= pawnAttacks(bitboard.Squares[kingSq], us) & b.Pieces(piece.New(piece.Pawn, them))

	return pins, checkers
}
