// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
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

package bitboard

import (
	"laptudirm.com/x/chesscore/pkg/direction"
	"laptudirm.com/x/chesscore/pkg/square"
)

// Ray is a half-open line of squares starting just past Origin and
// running to the edge of the board in direction Dir. Rays are lazy,
// geometric values: they don't know what pieces (if any) occupy them.
type Ray struct {
	Origin square.Square
	Dir    direction.Dir
}

// RayFrom infers the Ray pointing from a towards b, assuming the two
// squares share a file, rank, diagonal, or anti-diagonal. It panics if a
// and b share none of those, or are the same square.
func RayFrom(a, b square.Square) Ray {
	r, ok := TryRayFrom(a, b)
	if !ok {
		panic("bitboard: RayFrom called with identical or unaligned squares")
	}
	return r
}

// TryRayFrom infers the Ray pointing from a towards b, reporting false if
// the two squares are identical or share none of a file, rank, diagonal,
// or anti-diagonal.
func TryRayFrom(a, b square.Square) (Ray, bool) {
	switch {
	case a == b:
		return Ray{}, false
	case a.File() == b.File():
		return rayBetween(a, b, direction.North, direction.South), true
	case a.Rank() == b.Rank():
		return rayBetween(a, b, direction.East, direction.West), true
	case a.Diagonal() == b.Diagonal():
		return rayBetween(a, b, direction.NorthEast, direction.SouthWest), true
	case a.AntiDiagonal() == b.AntiDiagonal():
		return rayBetween(a, b, direction.NorthWest, direction.SouthEast), true
	default:
		return Ray{}, false
	}
}

// rayBetween picks whichever of the two opposite directions leads from a
// towards b, given that a and b are aligned along that axis. Since
// squares are numbered little-endian, a < b along any of the 4 axes
// above corresponds to the "towards" direction being the positive
// (index-increasing) one of the pair.
func rayBetween(a, b square.Square, negative, positive direction.Dir) Ray {
	if a < b {
		return Ray{Origin: a, Dir: positive}
	}
	return Ray{Origin: a, Dir: negative}
}

// Mask returns the bitboard of every square the ray passes through,
// starting just past Origin and running to the board edge.
func (r Ray) Mask() Bitboard {
	var mask Bitboard
	bb := Squares[r.Origin]
	for {
		bb = bb.Shift(r.Dir)
		if bb.IsEmpty() {
			return mask
		}
		mask |= bb
	}
}

// Squares returns every square the ray passes through, in walk order
// starting closest to Origin.
func (r Ray) Squares() []square.Square {
	var squares []square.Square
	bb := Squares[r.Origin]
	for {
		bb = bb.Shift(r.Dir)
		if bb.IsEmpty() {
			return squares
		}
		squares = append(squares, bb.FirstOne())
	}
}

// Contains reports whether s lies on the ray (strictly past Origin).
func (r Ray) Contains(s square.Square) bool {
	return r.Mask().IsSet(s)
}

// Between returns the bitboard of squares strictly between a and b,
// exclusive of both endpoints. If a and b are adjacent, or aren't aligned
// (share no file, rank, diagonal, or anti-diagonal) — as with a king and
// a knight giving check — the result is Empty.
func Between(a, b square.Square) Bitboard {
	ray, ok := TryRayFrom(a, b)
	if !ok {
		return Empty
	}
	var mask Bitboard
	bb := Squares[ray.Origin]
	for {
		bb = bb.Shift(ray.Dir)
		if bb.IsEmpty() || bb.FirstOne() == b {
			return mask
		}
		mask |= bb
	}
}
