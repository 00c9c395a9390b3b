package board

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStartingPosition(t *testing.T) {
	b := Starting()

	if got := b.Piece(E1); got != WhiteKing {
		t.Errorf("expected white king on e1, got %v", got)
	}
	if got := b.Piece(D8); got != BlackQueen {
		t.Errorf("expected black queen on d8, got %v", got)
	}
	for file := 0; file < 8; file++ {
		if got := b.Piece(NewSquare(file, 1)); got != WhitePawn {
			t.Errorf("expected white pawn on file %d rank 2, got %v", file, got)
		}
	}

	sq, ok := b.FindKing(Black)
	if !ok || sq != E8 {
		t.Errorf("FindKing(Black) = %v, %v; want e8, true", sq, ok)
	}
}

func TestApplyUndoRoundTrip(t *testing.T) {
	positions := []string{
		StartPlacement,
		"r3k2r/pppq1ppp/2n2n2/3pp3/1b1PP1b1/2N2N2/PPPQBPPP/R3K2R",
		"8/2P5/8/8/3k4/8/5K2/8",
	}

	for _, placement := range positions {
		b := ParsePlacement(placement)
		for _, c := range []Color{White, Black} {
			for _, m := range AllLegalMoves(b, c) {
				before := *b
				b.Apply(m)
				b.Undo(m)
				if diff := cmp.Diff(before, *b); diff != "" {
					t.Fatalf("apply/undo of %v did not restore %q:\n%s", m, placement, diff)
				}
			}
		}
	}
}

func TestApplyPromotionKeepsColor(t *testing.T) {
	b := ParsePlacement("8/2P5/8/8/3k4/8/5K2/8")

	moves := LegalMovesFrom(b, C7, nil)
	if len(moves) != 1 {
		t.Fatalf("expected 1 move for the c7 pawn, got %d", len(moves))
	}
	m := moves[0]
	if !m.IsPromotion() || m.Promotion != Queen {
		t.Fatalf("expected auto-queen promotion tag, got %v", m)
	}

	b.Apply(m)
	if got := b.Piece(C8); got != WhiteQueen {
		t.Errorf("expected white queen on c8 after promotion, got %v", got)
	}

	b.Undo(m)
	if got := b.Piece(C7); got != WhitePawn {
		t.Errorf("expected pawn restored to c7 after undo, got %v", got)
	}
	if got := b.Piece(C8); got != NoPiece {
		t.Errorf("expected c8 empty after undo, got %v", got)
	}
}

func TestCaptureRecordedInMove(t *testing.T) {
	b := ParsePlacement("8/8/8/3p4/4P3/8/4k2K/8")

	var capture Move
	for _, m := range LegalMovesFrom(b, E4, nil) {
		if m.To == D5 {
			capture = m
		}
	}
	if capture.Captured != BlackPawn {
		t.Fatalf("expected captured black pawn recorded, got %v", capture.Captured)
	}

	before := *b
	b.Apply(capture)
	b.Undo(capture)
	if diff := cmp.Diff(before, *b); diff != "" {
		t.Errorf("capture undo did not restore board:\n%s", diff)
	}
}
