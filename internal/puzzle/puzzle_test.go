package puzzle

import (
	"testing"

	"github.com/chesslab/tapchess/internal/board"
)

func TestCatalogEntriesAreWellFormed(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range Catalog() {
		if p.ID == "" || p.Name == "" {
			t.Errorf("puzzle %+v missing ID or Name", p)
		}
		if seen[p.ID] {
			t.Errorf("duplicate puzzle ID %q", p.ID)
		}
		seen[p.ID] = true

		b := p.Setup()
		// A placement that fails to parse silently falls back to the
		// starting position; no catalog entry should do that.
		if b.Placement() != p.Placement {
			t.Errorf("puzzle %q: placement did not survive parsing: got %q",
				p.ID, b.Placement())
		}
		for _, c := range []board.Color{board.White, board.Black} {
			if _, ok := b.FindKing(c); !ok {
				t.Errorf("puzzle %q: no %v king on board", p.ID, c)
			}
		}
		// The side to move must not already be delivering check.
		if board.InCheck(b, p.SideToMove.Other()) {
			t.Errorf("puzzle %q: side not to move is in check", p.ID)
		}
	}
}

func TestPresetRightsForbidCastling(t *testing.T) {
	// Presets have no game history, so even a preset with king and rooks
	// on their home squares must never offer castling.
	for _, p := range Catalog() {
		rights := p.Rights()
		for _, c := range []board.Color{board.White, board.Black} {
			if rights.MayCastleKingside(c) || rights.MayCastleQueenside(c) {
				t.Errorf("puzzle %q: %v may still castle", p.ID, c)
			}
		}
	}
}

func TestCatalogReturnsCopy(t *testing.T) {
	a := Catalog()
	a[0].Name = "scribbled"
	b := Catalog()
	if b[0].Name == "scribbled" {
		t.Error("mutating Catalog result leaked into the package catalog")
	}
}

func TestByID(t *testing.T) {
	p, err := ByID("back-rank")
	if err != nil {
		t.Fatalf("ByID(back-rank): %v", err)
	}
	if p.SideToMove != board.White {
		t.Errorf("back-rank puzzle should be white to move")
	}
	if _, err := ByID("no-such-puzzle"); err == nil {
		t.Error("ByID should fail for unknown IDs")
	}
}
