package engine

import (
	"math"
	"strings"
	"testing"

	"github.com/chesslab/tapchess/internal/board"
)

// mirrorPlacement flips a placement vertically and swaps piece colors.
func mirrorPlacement(placement string) string {
	ranks := strings.Split(placement, "/")
	for i, j := 0, len(ranks)-1; i < j; i, j = i+1, j-1 {
		ranks[i], ranks[j] = ranks[j], ranks[i]
	}
	swapped := strings.Join(ranks, "/")
	var sb strings.Builder
	for _, c := range swapped {
		switch {
		case c >= 'a' && c <= 'z':
			sb.WriteByte(byte(c) - 'a' + 'A')
		case c >= 'A' && c <= 'Z':
			sb.WriteByte(byte(c) - 'A' + 'a')
		default:
			sb.WriteRune(c)
		}
	}
	return sb.String()
}

func TestEvaluateStartIsBalanced(t *testing.T) {
	if score := Evaluate(board.Starting()); math.Abs(score) > 1e-9 {
		t.Errorf("starting position should evaluate to 0, got %v", score)
	}
}

func TestEvaluateColorSymmetric(t *testing.T) {
	placements := []string{
		"r3k2r/pppq1ppp/2n2n2/3pp3/8/2N2N2/PPPQBPPP/R3K2R",
		"6k1/5ppp/8/8/8/8/8/3Q2K1",
		"8/2P5/8/8/3k4/8/5K2/8",
	}

	for _, placement := range placements {
		a := Evaluate(board.ParsePlacement(placement))
		b := Evaluate(board.ParsePlacement(mirrorPlacement(placement)))
		if math.Abs(a+b) > 1e-9 {
			t.Errorf("%q: %v is not the negation of mirror score %v", placement, a, b)
		}
	}
}

func TestEvaluateMaterialDominates(t *testing.T) {
	// White up a queen: the score must clearly favor white.
	b := board.ParsePlacement("4k3/8/8/8/8/8/4Q3/4K3")
	if score := Evaluate(b); score < 8 {
		t.Errorf("expected a decisive white advantage, got %v", score)
	}
}

func TestPawnAdvancementRewarded(t *testing.T) {
	home := Evaluate(board.ParsePlacement("4k3/8/8/8/8/8/4P3/4K3"))
	advanced := Evaluate(board.ParsePlacement("4k3/8/4P3/8/8/8/8/4K3"))
	if advanced <= home {
		t.Errorf("advanced pawn %v should outscore home pawn %v", advanced, home)
	}
}

func TestKnightCentralizationRewarded(t *testing.T) {
	rim := Evaluate(board.ParsePlacement("4k3/8/8/8/8/8/8/N3K3"))
	center := Evaluate(board.ParsePlacement("4k3/8/8/3N4/8/8/8/4K3"))
	if center <= rim {
		t.Errorf("central knight %v should outscore rim knight %v", center, rim)
	}
}
