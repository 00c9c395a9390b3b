// Package puzzle ships a small catalog of preset positions used for the
// practice mode: forced mates and instructive endings the player can load
// instead of the starting position.
package puzzle

import (
	"fmt"

	"github.com/chesslab/tapchess/internal/board"
)

// Puzzle is one preset position.
type Puzzle struct {
	ID         string
	Name       string
	Placement  string
	SideToMove board.Color
	Hint       string
}

// Setup builds the board for the puzzle from its stored placement.
func (p Puzzle) Setup() *board.Board {
	return board.ParsePlacement(p.Placement)
}

// Rights returns the castling rights for a preset. A preset carries no
// game history, so every flag is spent: castling is never offered even
// when kings and rooks happen to sit on their home squares.
func (p Puzzle) Rights() board.CastlingRights {
	var r board.CastlingRights
	r.MarkAllMoved()
	return r
}

var catalog = []Puzzle{
	{
		ID:         "back-rank",
		Name:       "Back-Rank Mate",
		Placement:  "6k1/5ppp/8/8/8/8/5PPP/3Q2K1",
		SideToMove: board.White,
		Hint:       "The black king cannot leave the back rank.",
	},
	{
		ID:         "rook-roller",
		Name:       "Rook Roller",
		Placement:  "7k/R7/1R6/8/8/8/8/6K1",
		SideToMove: board.White,
		Hint:       "Two rooks take turns cutting off ranks.",
	},
	{
		ID:         "queen-vs-king",
		Name:       "Queen Endgame",
		Placement:  "8/8/8/4k3/8/8/4Q3/4K3",
		SideToMove: board.White,
		Hint:       "Box the king in, then walk your own king up.",
	},
	{
		ID:         "smothered-corner",
		Name:       "Knight in the Corner",
		Placement:  "6rk/6pp/8/4N3/8/8/8/6K1",
		SideToMove: board.White,
		Hint:       "A knight check the king cannot answer.",
	},
	{
		ID:         "pawn-race",
		Name:       "Pawn Race",
		Placement:  "8/1k4p1/8/8/8/8/1P4K1/8",
		SideToMove: board.White,
		Hint:       "Count the tempi before you run.",
	},
	{
		ID:         "defend-the-draw",
		Name:       "Hold the Draw",
		Placement:  "8/8/8/8/5k2/5q2/8/6K1",
		SideToMove: board.Black,
		Hint:       "Careful: a careless queen move stalemates white.",
	},
}

// Catalog returns all preset puzzles in display order. The returned slice
// is a copy and safe to reorder.
func Catalog() []Puzzle {
	out := make([]Puzzle, len(catalog))
	copy(out, catalog)
	return out
}

// ByID looks up a puzzle by its identifier.
func ByID(id string) (Puzzle, error) {
	for _, p := range catalog {
		if p.ID == id {
			return p, nil
		}
	}
	return Puzzle{}, fmt.Errorf("unknown puzzle %q", id)
}
