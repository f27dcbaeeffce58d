package square_test

import (
	"testing"

	"laptudirm.com/x/chesscore/pkg/square"
)

func TestStringRoundTrip(t *testing.T) {
	tests := []struct {
		id string
		sq square.Square
	}{
		{"a1", square.A1},
		{"h8", square.H8},
		{"d4", square.D4},
		{"e4", square.E4},
		{"-", square.None},
	}

	for _, test := range tests {
		t.Run(test.id, func(t *testing.T) {
			if got := square.New(test.id); got != test.sq {
				t.Errorf("New(%q) = %d, want %d", test.id, got, test.sq)
			}
			if got := test.sq.String(); got != test.id {
				t.Errorf("%d.String() = %q, want %q", test.sq, got, test.id)
			}
		})
	}
}

func TestIndices(t *testing.T) {
	if square.A1 != 63 {
		t.Errorf("A1 = %d, want 63", square.A1)
	}
	if square.H8 != 0 {
		t.Errorf("H8 = %d, want 0", square.H8)
	}
	if square.D4 != 36 {
		t.Errorf("D4 = %d, want 36", square.D4)
	}
}

func TestFileRank(t *testing.T) {
	if square.E4.File() != square.FileE {
		t.Errorf("E4.File() = %s, want e", square.E4.File())
	}
	if square.E4.Rank() != square.Rank4 {
		t.Errorf("E4.Rank() = %s, want 4", square.E4.Rank())
	}
}

func TestDiagonal(t *testing.T) {
	// a1 and h8 share the a1-h8 diagonal.
	if square.A1.Diagonal() != square.H8.Diagonal() {
		t.Errorf("A1.Diagonal() = %d, H8.Diagonal() = %d, want equal",
			square.A1.Diagonal(), square.H8.Diagonal())
	}
	// a8 and h1 share the a8-h1 anti-diagonal.
	if square.A8.AntiDiagonal() != square.H1.AntiDiagonal() {
		t.Errorf("A8.AntiDiagonal() = %d, H1.AntiDiagonal() = %d, want equal",
			square.A8.AntiDiagonal(), square.H1.AntiDiagonal())
	}
}
