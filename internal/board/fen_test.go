package board

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPlacementRoundTrip(t *testing.T) {
	placements := []string{
		StartPlacement,
		"r3k2r/pppq1ppp/2n2n2/3pp3/1b1PP1b1/2N2N2/PPPQBPPP/R3K2R",
		"8/2P5/8/8/3k4/8/5K2/8",
	}

	for _, placement := range placements {
		b := ParsePlacement(placement)
		if got := b.Placement(); got != placement {
			t.Errorf("round trip mismatch:\n got %q\nwant %q", got, placement)
		}
	}
}

func TestMalformedPlacementFallsBack(t *testing.T) {
	start := Starting()

	malformed := []string{
		"",
		"8/8/8/8",                                     // too few ranks
		"8/8/8/8/8/8/8/8/8",                           // too many ranks
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX", // bad piece letter
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN",  // short rank
		"9/8/8/8/8/8/8/8",                             // overlong empty run
	}

	for _, placement := range malformed {
		b := ParsePlacement(placement)
		if diff := cmp.Diff(*start, *b); diff != "" {
			t.Errorf("%q: expected fallback to starting position:\n%s", placement, diff)
		}
	}
}

func TestParsePlacementPieces(t *testing.T) {
	b := ParsePlacement("4k3/8/8/8/8/8/4Q3/4K3")

	if got := b.Piece(E2); got != WhiteQueen {
		t.Errorf("expected white queen on e2, got %v", got)
	}
	if got := b.Piece(E8); got != BlackKing {
		t.Errorf("expected black king on e8, got %v", got)
	}

	count := 0
	for sq := A1; sq < NoSquare; sq++ {
		if b.Piece(sq) != NoPiece {
			count++
		}
	}
	if count != 3 {
		t.Errorf("expected 3 pieces, got %d", count)
	}
}
