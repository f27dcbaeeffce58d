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

package board_test

import (
	"testing"

	"laptudirm.com/x/chesscore/pkg/board"
	"laptudirm.com/x/chesscore/pkg/castle"
	"laptudirm.com/x/chesscore/pkg/move"
	"laptudirm.com/x/chesscore/pkg/piece"
	"laptudirm.com/x/chesscore/pkg/square"
	"laptudirm.com/x/chesscore/pkg/zobrist"
)

// hashFromScratch recomputes a Board's Zobrist hash from its public
// state rather than trusting the incremental value Make/Unmake
// maintain, for an independent check of P2's invariant (spec.md §8).
// It uses a fresh key table: every Table is built from the same fixed
// seed, so it's bit-identical to whatever table the Board itself used.
func hashFromScratch(b *board.Board) zobrist.Key {
	keys := zobrist.NewTable()

	var hash zobrist.Key
	for sq := square.H8; sq <= square.A1; sq++ {
		if p := b.PieceAt(sq); !p.IsEmpty() {
			hash ^= keys.PieceSquare[p][sq]
		}
	}
	if b.ColorToMove() == piece.Black {
		hash ^= keys.SideToMove
	}
	hash ^= keys.CastlingKey(b.CastleRights())
	if ep := b.EPTarget(); ep != square.None {
		hash ^= keys.EnPassant[ep.File()]
	}
	return hash
}

// TestMakeUnmakeRoundTrip walks every legal move from a handful of
// reference positions one ply deep and checks that Make followed by
// Unmake restores the exact FEN and hash it started from (P1).
func TestMakeUnmakeRoundTrip(t *testing.T) {
	for _, fen := range referenceFENs {
		t.Run(fen, func(t *testing.T) {
			b, err := board.FromFEN(fen)
			if err != nil {
				t.Fatalf("FromFEN(%q): unexpected error: %v", fen, err)
			}

			before := b.FEN()
			beforeHash := b.Hash()

			for _, mv := range b.LegalMoves() {
				b.MakeUnchecked(mv)
				b.Unmake()

				if got := b.FEN(); got != before {
					t.Fatalf("after make/unmake %s: FEN = %q, want %q", mv, got, before)
				}
				if b.Hash() != beforeHash {
					t.Fatalf("after make/unmake %s: Hash = %d, want %d", mv, b.Hash(), beforeHash)
				}
			}
		})
	}
}

// TestHashMatchesFromScratch checks P2: the incrementally maintained
// hash agrees with one recomputed from scratch, both at the root and
// after a handful of played moves.
func TestHashMatchesFromScratch(t *testing.T) {
	b := board.New()
	if got, want := b.Hash(), hashFromScratch(b); got != want {
		t.Fatalf("New(): Hash() = %d, want %d", got, want)
	}

	for _, s := range []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1b5"} {
		mv, err := move.Parse(s)
		if err != nil {
			t.Fatalf("move.Parse(%q): unexpected error: %v", s, err)
		}
		if err := b.Make(mv); err != nil {
			t.Fatalf("Make(%s): unexpected error: %v", mv, err)
		}
		if got, want := b.Hash(), hashFromScratch(b); got != want {
			t.Fatalf("after %s: Hash() = %d, want %d", mv, got, want)
		}
	}
}

// TestHashDeterminism checks P4: a knight hopping out and back reaches a
// position identical to the start, and its hash must match exactly. The
// FEN differs from the start only in its move counters, which the hash
// doesn't cover.
func TestHashDeterminism(t *testing.T) {
	b := board.New()
	start := b.Hash()

	for _, s := range []string{"g1f3", "g8f6", "f3g1", "f6g8"} {
		mv, err := move.Parse(s)
		if err != nil {
			t.Fatalf("move.Parse(%q): unexpected error: %v", s, err)
		}
		if err := b.Make(mv); err != nil {
			t.Fatalf("Make(%s): unexpected error: %v", mv, err)
		}
	}

	if got := b.Hash(); got != start {
		t.Errorf("Hash() after round trip = %d, want %d", got, start)
	}
	// four quiet knight moves: halfmove clock 4, fullmove counter 3.
	const want = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 4 3"
	if got := b.FEN(); got != want {
		t.Errorf("FEN() after round trip = %q, want %q", got, want)
	}
}

// TestMakeEnPassant exercises the en passant capture itself (not just
// the ep_is_pinned legality filter covered indirectly by perft).
func TestMakeEnPassant(t *testing.T) {
	const fen = "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3"
	b, err := board.FromFEN(fen)
	if err != nil {
		t.Fatalf("FromFEN(%q): unexpected error: %v", fen, err)
	}

	mv := move.New(square.E5, square.D6)
	if err := b.Make(mv); err != nil {
		t.Fatalf("Make(%s): unexpected error: %v", mv, err)
	}

	if p := b.PieceAt(square.D6); p != piece.WhitePawn {
		t.Errorf("PieceAt(d6) = %s, want white pawn", p)
	}
	if p := b.PieceAt(square.D5); !p.IsEmpty() {
		t.Errorf("PieceAt(d5) = %s, want empty (captured en passant)", p)
	}
	if p := b.PieceAt(square.E5); !p.IsEmpty() {
		t.Errorf("PieceAt(e5) = %s, want empty (mover's origin)", p)
	}

	b.Unmake()
	if got := b.FEN(); got != fen {
		t.Errorf("after Unmake: FEN() = %q, want %q", got, fen)
	}
}

// TestMakeCastling exercises a kingside castle and its unmake.
func TestMakeCastling(t *testing.T) {
	const fen = "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
	b, err := board.FromFEN(fen)
	if err != nil {
		t.Fatalf("FromFEN(%q): unexpected error: %v", fen, err)
	}

	mv := move.New(square.E1, square.G1)
	if err := b.Make(mv); err != nil {
		t.Fatalf("Make(%s): unexpected error: %v", mv, err)
	}

	if p := b.PieceAt(square.G1); p != piece.WhiteKing {
		t.Errorf("PieceAt(g1) = %s, want white king", p)
	}
	if p := b.PieceAt(square.F1); p != piece.WhiteRook {
		t.Errorf("PieceAt(f1) = %s, want white rook", p)
	}
	if p := b.PieceAt(square.E1); !p.IsEmpty() {
		t.Errorf("PieceAt(e1) = %s, want empty", p)
	}
	if p := b.PieceAt(square.H1); !p.IsEmpty() {
		t.Errorf("PieceAt(h1) = %s, want empty", p)
	}
	if b.CastleRights()&castle.White != 0 {
		t.Errorf("CastleRights() = %s, want no white rights after castling", b.CastleRights())
	}

	b.Unmake()
	if got := b.FEN(); got != fen {
		t.Errorf("after Unmake: FEN() = %q, want %q", got, fen)
	}
}

// TestMakePromotion exercises a capturing promotion and its unmake,
// including that the captured piece reappears rather than the pawn.
func TestMakePromotion(t *testing.T) {
	const fen = "r3k2r/1P6/8/8/8/8/8/R3K2R w KQkq - 0 1"
	b, err := board.FromFEN(fen)
	if err != nil {
		t.Fatalf("FromFEN(%q): unexpected error: %v", fen, err)
	}

	mv := move.NewPromotion(square.B7, square.A8, piece.Queen)
	if err := b.Make(mv); err != nil {
		t.Fatalf("Make(%s): unexpected error: %v", mv, err)
	}

	if p := b.PieceAt(square.A8); p != piece.WhiteQueen {
		t.Errorf("PieceAt(a8) = %s, want white queen", p)
	}

	b.Unmake()
	if got := b.FEN(); got != fen {
		t.Errorf("after Unmake: FEN() = %q, want %q", got, fen)
	}
	if p := b.PieceAt(square.A8); p != piece.BlackRook {
		t.Errorf("after Unmake: PieceAt(a8) = %s, want black rook", p)
	}
}
