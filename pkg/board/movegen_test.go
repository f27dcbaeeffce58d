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
)

func containsMove(moves []move.Move, mv move.Move) bool {
	for _, m := range moves {
		if m == mv {
			return true
		}
	}
	return false
}

// TestEnPassantHorizontalPinExcluded covers the one legality rule §4.5
// calls out as unreachable from the plain pins bitboard: capturing en
// passant here would remove both the f5 and g5 pawns from the board in
// one move, exposing the king to the rook on h5 along the 5th rank.
func TestEnPassantHorizontalPinExcluded(t *testing.T) {
	b, err := board.NewBuilder().
		Put(piece.WhiteKing, square.E5).
		Put(piece.WhitePawn, square.G5).
		Put(piece.BlackPawn, square.F5).
		Put(piece.BlackRook, square.H5).
		Put(piece.BlackKing, square.A8).
		SetEPTarget(square.F6).
		Build()
	if err != nil {
		t.Fatalf("Build(): unexpected error: %v", err)
	}

	forbidden := move.New(square.G5, square.F6)
	if moves := b.MovesFrom(square.G5); containsMove(moves, forbidden) {
		t.Errorf("MovesFrom(g5) = %v, want it to exclude the pinned en passant capture %s", moves, forbidden)
	}
}

// TestEnPassantAllowedWithKingOffRank is the control case: the same shape
// but with the king off the 5th rank shouldn't trigger the horizontal
// pin check, so the en passant capture stays legal.
func TestEnPassantAllowedWithKingOffRank(t *testing.T) {
	b, err := board.NewBuilder().
		Put(piece.WhiteKing, square.E1).
		Put(piece.WhitePawn, square.G5).
		Put(piece.BlackPawn, square.F5).
		Put(piece.BlackRook, square.H5).
		Put(piece.BlackKing, square.A8).
		SetEPTarget(square.F6).
		Build()
	if err != nil {
		t.Fatalf("Build(): unexpected error: %v", err)
	}

	wanted := move.New(square.G5, square.F6)
	if moves := b.MovesFrom(square.G5); !containsMove(moves, wanted) {
		t.Errorf("MovesFrom(g5) = %v, want it to include the en passant capture %s", moves, wanted)
	}
}

// TestPinnedRookRestrictedToFile covers the general pin-ray restriction:
// a pinned slider may only move along the ray between the king and the
// pinning piece, including capturing the pinner itself.
func TestPinnedRookRestrictedToFile(t *testing.T) {
	b, err := board.NewBuilder().
		Put(piece.WhiteKing, square.E1).
		Put(piece.WhiteRook, square.E4).
		Put(piece.BlackRook, square.E8).
		Put(piece.BlackKing, square.A8).
		Build()
	if err != nil {
		t.Fatalf("Build(): unexpected error: %v", err)
	}

	moves := b.MovesFrom(square.E4)
	for _, mv := range moves {
		if mv.Dest.File() != square.FileE {
			t.Errorf("MovesFrom(e4) contains %s, want the pinned rook confined to the e-file", mv)
		}
	}
	if wanted := move.New(square.E4, square.E8); !containsMove(moves, wanted) {
		t.Errorf("MovesFrom(e4) = %v, want it to include capturing the pinner %s", moves, wanted)
	}
	if sideways := (move.Move{Origin: square.E4, Dest: square.D4}); containsMove(moves, sideways) {
		t.Errorf("MovesFrom(e4) contains %s, want sideways moves excluded by the pin", sideways)
	}
}

// TestDoubleCheckOnlyKingMoves covers §4.5's check-filtering rule for
// CheckKind Double: every legal move must move the king, even when
// another piece could otherwise block or capture one of the checkers.
func TestDoubleCheckOnlyKingMoves(t *testing.T) {
	// White king e1, attacked by a black rook down the e-file and a
	// black bishop down the h4-e1 diagonal: a double check neither a
	// block nor a single capture can resolve.
	b, err := board.NewBuilder().
		Put(piece.WhiteKing, square.E1).
		Put(piece.WhiteQueen, square.D2).
		Put(piece.BlackRook, square.E8).
		Put(piece.BlackBishop, square.H4).
		Put(piece.BlackKing, square.H8).
		SetColorToMove(piece.White).
		Build()
	if err != nil {
		t.Fatalf("Build(): unexpected error: %v", err)
	}

	if kind := b.Check().Kind; kind != board.DoubleCheck {
		t.Fatalf("Check().Kind = %v, want DoubleCheck", kind)
	}

	for _, mv := range b.LegalMoves() {
		if mv.Origin != square.E1 {
			t.Errorf("LegalMoves() contains non-king move %s under double check", mv)
		}
	}
}

// TestSingleCheckMustBlockOrCapture covers the Single-check branch of
// check filtering: a non-king move is only legal if it blocks the
// checking ray or captures the checker outright.
func TestSingleCheckMustBlockOrCapture(t *testing.T) {
	b, err := board.NewBuilder().
		Put(piece.WhiteKing, square.E1).
		Put(piece.WhiteRook, square.A4).
		Put(piece.WhiteBishop, square.C1).
		Put(piece.BlackRook, square.H1).
		Put(piece.BlackKing, square.H8).
		SetColorToMove(piece.White).
		Build()
	if err != nil {
		t.Fatalf("Build(): unexpected error: %v", err)
	}

	if kind := b.Check().Kind; kind != board.SingleCheck {
		t.Fatalf("Check().Kind = %v, want SingleCheck", kind)
	}

	// The check runs along the first rank from h1. The rook on a4 can't
	// reach f1 or g1 to interpose, nor capture the checker from there,
	// so it should have no legal moves at all.
	if moves := b.MovesFrom(square.A4); len(moves) != 0 {
		t.Errorf("MovesFrom(a4) = %v, want no moves while failing to address check", moves)
	}

	// Neither of c1's diagonals (d2-h6, b2-a3) reaches f1, g1 or h1, so
	// the bishop can't help.
	if moves := b.MovesFrom(square.C1); len(moves) != 0 {
		t.Errorf("MovesFrom(c1) = %v, want no moves while failing to address check", moves)
	}

	blockMove := move.New(square.A4, square.E4)
	if containsMove(b.LegalMoves(), blockMove) {
		t.Errorf("LegalMoves() contains %s, but e4 neither blocks the first-rank check nor captures the checker", blockMove)
	}
}

// TestCastlingBlockedByAttackedSquare covers §4.5's castling rule that
// the king's transit squares, not just its destination, must be free of
// attacks.
func TestCastlingBlockedByAttackedSquare(t *testing.T) {
	b, err := board.NewBuilder().
		Put(piece.WhiteKing, square.E1).
		Put(piece.WhiteRook, square.H1).
		Put(piece.BlackRook, square.F8). // attacks f1, the king's transit square
		Put(piece.BlackKing, square.A8).
		SetCastle(castle.WhiteKingside).
		SetColorToMove(piece.White).
		Build()
	if err != nil {
		t.Fatalf("Build(): unexpected error: %v", err)
	}

	castleMove := move.New(square.E1, square.G1)
	if containsMove(b.LegalMoves(), castleMove) {
		t.Errorf("LegalMoves() contains %s, want castling blocked by the attack on f1", castleMove)
	}
}

// TestCastlingAllowedWhenClear is the control case for
// TestCastlingBlockedByAttackedSquare: with nothing attacking e1, f1, or
// g1, the castle should appear among the king's legal moves.
func TestCastlingAllowedWhenClear(t *testing.T) {
	b, err := board.NewBuilder().
		Put(piece.WhiteKing, square.E1).
		Put(piece.WhiteRook, square.H1).
		Put(piece.BlackKing, square.A8).
		SetCastle(castle.WhiteKingside).
		SetColorToMove(piece.White).
		Build()
	if err != nil {
		t.Fatalf("Build(): unexpected error: %v", err)
	}

	castleMove := move.New(square.E1, square.G1)
	if !containsMove(b.LegalMoves(), castleMove) {
		t.Errorf("LegalMoves() = %v, want it to include the castle %s", b.LegalMoves(), castleMove)
	}
}
