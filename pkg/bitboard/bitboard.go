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

// Package bitboard implements a 64-bit bitboard and the Ray helper used
// to walk it in a single compass direction, plus other functions for
// manipulating both.
package bitboard

import (
	"math/bits"

	"laptudirm.com/x/chesscore/pkg/direction"
	"laptudirm.com/x/chesscore/pkg/square"
)

// Bitboard is a set of squares, one bit per square.Square.
type Bitboard uint64

// Empty and All are the bitboards with no squares and every square set.
const (
	Empty Bitboard = 0
	All   Bitboard = ^Bitboard(0)
)

// Squares holds a singleton Bitboard for every square, indexed by
// square.Square.
var Squares [square.N]Bitboard

func init() {
	for s := square.H8; s <= square.A1; s++ {
		Squares[s] = 1 << uint(s)
	}
}

// String returns an 8x8 rendering of b, one rank per line, '1' for a set
// square and '0' for an empty one.
func (b Bitboard) String() string {
	var str string
	for s := square.H8; s <= square.A1; s++ {
		if b.IsSet(s) {
			str += "1"
		} else {
			str += "0"
		}

		if s.File() == square.FileA {
			str += "\n"
		} else {
			str += " "
		}
	}

	return str
}

// Shift moves every set bit of b one step in direction d, discarding bits
// that would wrap around a board edge.
func (b Bitboard) Shift(d direction.Dir) Bitboard {
	return Bitboard(d.Shift(uint64(b)))
}

// Pop returns the first set square of b and clears it.
func (b *Bitboard) Pop() square.Square {
	sq := b.FirstOne()
	*b &= *b - 1
	return sq
}

// Count returns the number of set squares in b.
func (b Bitboard) Count() int {
	return bits.OnesCount64(uint64(b))
}

// IsEmpty reports whether b has no set squares.
func (b Bitboard) IsEmpty() bool {
	return b == Empty
}

// FirstOne returns the first set square of b, or square.None if b is
// empty.
func (b Bitboard) FirstOne() square.Square {
	if b == Empty {
		return square.None
	}
	return square.Square(bits.TrailingZeros64(uint64(b)))
}

// IsSet checks whether the given square is set in b.
func (b Bitboard) IsSet(s square.Square) bool {
	return s != square.None && b&Squares[s] != 0
}

// Set sets the given square in b. Setting square.None is a no-op.
func (b *Bitboard) Set(s square.Square) {
	if s == square.None {
		return
	}
	*b |= Squares[s]
}

// Unset clears the given square in b. Clearing square.None is a no-op.
func (b *Bitboard) Unset(s square.Square) {
	if s == square.None {
		return
	}
	*b &^= Squares[s]
}
