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

// Package piece implements a tagged-union-style representation of a
// chess piece: either one of the 12 (kind, color) combinations, or
// Empty. Every value fits in a single byte and doubles as a dense array
// index 0..12, matching the piece-square layout pkg/zobrist hashes.
package piece

// NewColor creates an instance of color from the given id.
func NewColor(id string) Color {
	switch id {
	case "w":
		return White
	case "b":
		return Black
	default:
		panic("new color: invalid color id")
	}
}

// Color represents the color of a Piece.
type Color uint8

// the two piece colors.
const (
	White Color = iota
	Black

	NColor = 2
)

// Other returns the opposing color.
func (c Color) Other() Color {
	return c ^ Black
}

// String converts a Color to it's string representation.
func (c Color) String() string {
	switch c {
	case Black:
		return "b"
	case White:
		return "w"
	default:
		panic("new color: invalid color id")
	}
}

// Piece is either Empty or one of the 12 colored chess pieces. Its
// integer value is a dense index usable directly into a [13]T array, with
// Empty occupying the last slot.
type Piece uint8

// the 12 colored pieces, plus Empty. Pieces are ordered color-major
// (white pieces 0..5, black pieces 6..11) so Kind and Color are cheap
// divmods instead of needing a lookup table.
const (
	WhitePawn Piece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing

	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing

	Empty
)

// N is the number of non-empty pieces, and the size of the piece-square
// component of a Zobrist key table.
const N = 12

// NumKinds is the number of piece kinds (excluding NoKind).
const NumKinds = 6

// Promotions lists the kinds a pawn may promote to, in the order the
// move generator emits them.
var Promotions = []Kind{Queen, Rook, Bishop, Knight}

// New creates the Piece of the given kind and color. It panics if k is
// NoKind.
func New(k Kind, c Color) Piece {
	if k == NoKind {
		panic("piece: New called with NoKind")
	}
	return Piece(c)*NumKinds + Piece(k-1)
}

// NewFromString creates an instance of Piece from its FEN letter.
func NewFromString(id string) Piece {
	switch id {
	case "P":
		return WhitePawn
	case "N":
		return WhiteKnight
	case "B":
		return WhiteBishop
	case "R":
		return WhiteRook
	case "Q":
		return WhiteQueen
	case "K":
		return WhiteKing
	case "p":
		return BlackPawn
	case "n":
		return BlackKnight
	case "b":
		return BlackBishop
	case "r":
		return BlackRook
	case "q":
		return BlackQueen
	case "k":
		return BlackKing
	default:
		panic("new piece: invalid piece id")
	}
}

// String converts a Piece into its FEN letter, or a blank space for
// Empty.
func (p Piece) String() string {
	const pieceToStr = "PNBRQKpnbrqk "
	return string(pieceToStr[p])
}

// IsEmpty reports whether p is the Empty piece.
func (p Piece) IsEmpty() bool {
	return p == Empty
}

// Kind returns the piece's kind, or NoKind if p is Empty.
func (p Piece) Kind() Kind {
	if p == Empty {
		return NoKind
	}
	return Kind(p%NumKinds) + 1
}

// Color returns the piece's color. It panics if p is Empty.
func (p Piece) Color() Color {
	if p == Empty {
		panic("piece: Color called on Empty")
	}
	return Color(p / NumKinds)
}

// Is reports whether p is a non-empty piece of the given kind.
func (p Piece) Is(k Kind) bool {
	return !p.IsEmpty() && p.Kind() == k
}

// IsColor reports whether p is a non-empty piece of the given color.
func (p Piece) IsColor(c Color) bool {
	return !p.IsEmpty() && p.Color() == c
}

// Kind represents the kind of a chess piece, independent of color.
type Kind uint8

// constants representing chess piece kinds.
const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String converts a Kind into its uppercase (white-style) FEN letter.
func (k Kind) String() string {
	const kindToStr = " PNBRQK"
	return string(kindToStr[k])
}
