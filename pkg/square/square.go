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

// Package square declares constants representing every square on a
// chessboard, and related utility functions.
//
// Squares are numbered little-endian starting from h8=0, with the file
// running h -> a rather than a -> h, so that a1 is the highest index (63)
// and the bit for a1 sits at the most significant position of a Bitboard.
package square

import (
	"fmt"

	"laptudirm.com/x/chesscore/pkg/direction"
)

// New creates a new instance of a Square from the given identifier.
func New(id string) Square {
	switch {
	case id == "-":
		return None
	case len(id) != 2:
		panic("new square: invalid square id")
	}

	return From(fileFrom(string(id[0])), rankFrom(string(id[1])))
}

// From creates a new instance of a Square from the given file and rank.
func From(file File, rank Rank) Square {
	return Square(int(rank)<<3 | int(file))
}

// Square represents a square on a chessboard.
type Square int8

// None is the null square, used e.g. for an absent en passant target.
const None Square = -1

// constants representing various squares, h8=0 ... a1=63.
const (
	H8 Square = iota
	G8
	F8
	E8
	D8
	C8
	B8
	A8

	H7
	G7
	F7
	E7
	D7
	C7
	B7
	A7

	H6
	G6
	F6
	E6
	D6
	C6
	B6
	A6

	H5
	G5
	F5
	E5
	D5
	C5
	B5
	A5

	H4
	G4
	F4
	E4
	D4
	C4
	B4
	A4

	H3
	G3
	F3
	E3
	D3
	C3
	B3
	A3

	H2
	G2
	F2
	E2
	D2
	C2
	B2
	A2

	H1
	G1
	F1
	E1
	D1
	C1
	B1
	A1
)

// N is the number of squares on a board.
const N = 64

// String converts a square into it's algebraic string representation.
func (s Square) String() string {
	if s == None {
		return "-"
	}

	// <file><rank>
	return fmt.Sprintf("%s%s", s.File(), s.Rank())
}

// File returns the file of the given square.
func (s Square) File() File {
	return File(s) & 7
}

// Rank returns the rank of the given square.
func (s Square) Rank() Rank {
	return Rank(s) >> 3
}

// Diagonal returns the a1-h8-style diagonal index of the square, in 0..15.
// Squares sharing a diagonal share this value.
func (s Square) Diagonal() Diagonal {
	return (Diagonal(s.Rank()) - Diagonal(s.File())) & 15
}

// AntiDiagonal returns the a8-h1-style anti-diagonal index of the square,
// in 0..15. Squares sharing an anti-diagonal share this value.
func (s Square) AntiDiagonal() AntiDiagonal {
	return (Diagonal(s.Rank()) + Diagonal(s.File())) ^ 7
}

// Valid reports whether s is a real board square, as opposed to None.
func (s Square) Valid() bool {
	return s >= H8 && s <= A1
}

// dirDelta returns the (file, rank) step a single move in d takes,
// mirroring the flat index offsets direction.Dir declares.
func dirDelta(d direction.Dir) (df, dr int) {
	switch d {
	case direction.North:
		return 0, -1
	case direction.South:
		return 0, 1
	case direction.East:
		return -1, 0
	case direction.West:
		return 1, 0
	case direction.NorthEast:
		return -1, -1
	case direction.NorthWest:
		return 1, -1
	case direction.SouthEast:
		return -1, 1
	case direction.SouthWest:
		return 1, 1
	default:
		panic("square: dirDelta called with invalid direction")
	}
}

// Shift returns the square one step from s in direction d, or None if
// that step would leave the board.
func (s Square) Shift(d direction.Dir) Square {
	if !s.Valid() {
		return None
	}

	df, dr := dirDelta(d)
	f, r := int(s.File())+df, int(s.Rank())+dr
	if f < 0 || f >= FileN || r < 0 || r >= 8 {
		return None
	}
	return From(File(f), Rank(r))
}

// Shift2 returns the square two steps from s in direction d, or None if
// either step would leave the board. It's used for castling, where the
// king moves two squares in one direction.
func (s Square) Shift2(d direction.Dir) Square {
	mid := s.Shift(d)
	if mid == None {
		return None
	}
	return mid.Shift(d)
}
