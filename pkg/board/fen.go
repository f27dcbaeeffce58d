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
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"laptudirm.com/x/chesscore/pkg/castle"
	"laptudirm.com/x/chesscore/pkg/chesserr"
	"laptudirm.com/x/chesscore/pkg/piece"
	"laptudirm.com/x/chesscore/pkg/square"
)

// fenFieldPattern validates fields 2-4 of a FEN (side to move, castling
// rights, en passant target) against the grammar spec.md lays out; field
// 1 (placement) and fields 5-6 (the move counters) are checked
// separately since they aren't simple fixed patterns.
var fenFieldPattern = [3]*regexp.Regexp{
	regexp.MustCompile(`^(?:w|b)$`),
	regexp.MustCompile(`^(?:K?Q?k?q?|-)$`),
	regexp.MustCompile(`^(?:[a-h][36]|-)$`),
}

// FEN renders b in Forsyth–Edwards Notation. Squares are numbered h8=0
// internally, but a FEN's board field reads each rank a-file first, so
// this walks files in descending index order (a=7 down to h=0) to
// produce the conventional left-to-right string.
func (b *Board) FEN() string {
	var sb strings.Builder

	for rank := square.Rank8; rank <= square.Rank1; rank++ {
		empty := 0
		for file := square.FileA; file >= square.FileH; file-- {
			p := b.pieces[square.From(file, rank)]
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank != square.Rank1 {
			sb.WriteByte('/')
		}
	}

	fmt.Fprintf(&sb, " %s %s %s %d %d",
		b.colorToMove, b.castleRights, b.epTarget, b.halfmove, b.fullmove)

	return sb.String()
}

// pieceFromFENByte maps a FEN piece letter to its Piece, reporting false
// for anything else.
func pieceFromFENByte(c rune) (piece.Piece, bool) {
	switch c {
	case 'P':
		return piece.WhitePawn, true
	case 'N':
		return piece.WhiteKnight, true
	case 'B':
		return piece.WhiteBishop, true
	case 'R':
		return piece.WhiteRook, true
	case 'Q':
		return piece.WhiteQueen, true
	case 'K':
		return piece.WhiteKing, true
	case 'p':
		return piece.BlackPawn, true
	case 'n':
		return piece.BlackKnight, true
	case 'b':
		return piece.BlackBishop, true
	case 'r':
		return piece.BlackRook, true
	case 'q':
		return piece.BlackQueen, true
	case 'k':
		return piece.BlackKing, true
	default:
		return piece.Empty, false
	}
}

// FromFEN parses a FEN string into a Board, running it through Builder
// validation (see NewBuilder). Fields 5 and 6 (the halfmove clock and
// fullmove counter) may be omitted, defaulting to 0 and 1.
func FromFEN(fen string) (*Board, error) {
	const context = "board.FromFEN"

	fields := strings.Fields(fen)
	if len(fields) == 4 {
		fields = append(fields, "0", "1")
	}
	if len(fields) != 6 {
		return nil, chesserr.New(chesserr.InvalidInput, context,
			"fen must have 6 fields, or 4 with the halfmove/fullmove fields omitted")
	}

	for i, pattern := range fenFieldPattern {
		if !pattern.MatchString(fields[i+1]) {
			return nil, chesserr.New(chesserr.InvalidInput, context,
				fmt.Sprintf("malformed fen field %q", fields[i+1]))
		}
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, chesserr.New(chesserr.InvalidInput, context,
			"board field must have 8 ranks separated by '/'")
	}

	builder := NewBuilder()

	for r, rank := range ranks {
		// A FEN rank string reads a-file first, h-file last; file counts
		// down from FileA(7) to FileH(0) to match, with squaresLeft as
		// the authoritative per-rank total so digit runs and pieces
		// share one overflow check.
		file := square.FileA
		squaresLeft := square.FileN
		for _, c := range rank {
			switch {
			case c >= '1' && c <= '8':
				n := int(c - '0')
				if n > squaresLeft {
					return nil, chesserr.New(chesserr.InvalidInput, context,
						"rank overflows 8 files")
				}
				file -= square.File(n)
				squaresLeft -= n
			default:
				p, ok := pieceFromFENByte(c)
				if !ok {
					return nil, chesserr.New(chesserr.InvalidInput, context,
						fmt.Sprintf("invalid piece letter %q", c))
				}
				if squaresLeft == 0 {
					return nil, chesserr.New(chesserr.InvalidInput, context,
						"rank overflows 8 files")
				}
				builder.Put(p, square.From(file, square.Rank(r)))
				file--
				squaresLeft--
			}
		}
		if squaresLeft != 0 {
			return nil, chesserr.New(chesserr.InvalidInput, context,
				"rank must total exactly 8 files")
		}
	}

	builder.SetColorToMove(piece.NewColor(fields[1]))
	builder.SetCastle(castle.NewFromString(fields[2]))
	builder.SetEPTarget(square.New(fields[3]))

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return nil, chesserr.New(chesserr.InvalidInput, context,
			"halfmove clock must be a non-negative integer")
	}
	builder.SetHalfmove(halfmove)

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove <= 0 {
		return nil, chesserr.New(chesserr.InvalidInput, context,
			"fullmove counter must be a positive integer")
	}
	builder.SetFullmove(fullmove)

	return builder.Build()
}
