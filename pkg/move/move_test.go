package move_test

import (
	"testing"

	"laptudirm.com/x/chesscore/pkg/move"
	"laptudirm.com/x/chesscore/pkg/piece"
)

func TestParseStringRoundTrip(t *testing.T) {
	tests := []string{"e2e4", "g1f3", "e7e8q", "e2e1n"}
	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			m, err := move.Parse(s)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", s, err)
			}
			if got := m.String(); got != s {
				t.Errorf("Parse(%q).String() = %q", s, got)
			}
		})
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	tests := []string{"", "e2", "e2e4q5", "e2e9", "e2e9q"}
	for _, s := range tests {
		if _, err := move.Parse(s); err == nil {
			t.Errorf("Parse(%q) = nil error, want error", s)
		}
	}
}

func TestParseRejectsBadPromotionRank(t *testing.T) {
	// e2e4q: not a promotion-rank move.
	if _, err := move.Parse("e2e4q"); err == nil {
		t.Errorf("Parse(\"e2e4q\") = nil error, want error")
	}
}

func TestPromotionKind(t *testing.T) {
	m, err := move.Parse("a7a8r")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if m.Promotion != piece.Rook {
		t.Errorf("Promotion = %v, want Rook", m.Promotion)
	}
}
