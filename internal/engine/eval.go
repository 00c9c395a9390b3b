// Package engine implements the search opponent: a static evaluator,
// minimax with alpha-beta pruning and a captures-only quiescence
// extension, and time-boxed iterative deepening over seven skill levels.
package engine

import "github.com/chesslab/tapchess/internal/board"

// Material weights in pawns. The king carries no material weight; king
// loss is handled by the terminal checkmate score, never by material.
var pieceWeight = [6]float64{
	board.Pawn:   1.0,
	board.Knight: 3.2,
	board.Bishop: 3.2,
	board.Rook:   5.1,
	board.Queen:  9.5,
	board.King:   0,
}

// pawnRankBonus rewards advancement, indexed by the pawn's rank from its
// own side's perspective. Promotion itself is captured by the material
// swing, so the far rank entry stays modest.
var pawnRankBonus = [8]float64{0, 0, 0.04, 0.08, 0.14, 0.22, 0.32, 0}

// Evaluate returns a static heuristic score of the position in pawns,
// positive favoring white: material plus a positional bonus per piece,
// symmetric across colors.
func Evaluate(b *board.Board) float64 {
	score := 0.0
	for sq := board.A1; sq < board.NoSquare; sq++ {
		p := b.Piece(sq)
		if p == board.NoPiece {
			continue
		}
		v := pieceWeight[p.Type()] + positional(p.Type(), sq, p.Color())
		if p.Color() == board.White {
			score += v
		} else {
			score -= v
		}
	}
	return score
}

// positional returns the per-piece placement bonus from the piece
// owner's perspective.
func positional(pt board.PieceType, sq board.Square, c board.Color) float64 {
	switch pt {
	case board.Pawn:
		return pawnRankBonus[sq.RelativeRank(c)]
	case board.Knight:
		// Centralization: distance from the board's center, Chebyshev.
		df := centerDistance(sq.File())
		dr := centerDistance(sq.Rank())
		d := df
		if dr > d {
			d = dr
		}
		return 0.24 - 0.08*float64(d)
	case board.Bishop:
		return 0.05 * float64(edgeDistance(sq))
	case board.Queen:
		return 0.02 * float64(edgeDistance(sq))
	case board.Rook:
		// The 7th rank (6th from the owner's side) cuts off the enemy
		// king and attacks its pawn chain; the 6th gets a smaller nod.
		switch sq.RelativeRank(c) {
		case 6:
			return 0.25
		case 5:
			return 0.1
		}
		return 0
	case board.King:
		// Safety: stay home. Advancing the king is penalized linearly.
		r := sq.RelativeRank(c)
		if r <= 1 {
			return 0.15
		}
		return -0.1 * float64(r-1)
	}
	return 0
}

// centerDistance is the distance of a file or rank index from the board
// center (0 for the two middle lines, 3 at the edge).
func centerDistance(i int) int {
	if i <= 3 {
		return 3 - i
	}
	return i - 4
}

// edgeDistance is the minimum distance of a square to any board edge.
func edgeDistance(sq board.Square) int {
	d := sq.File()
	if v := 7 - sq.File(); v < d {
		d = v
	}
	if v := sq.Rank(); v < d {
		d = v
	}
	if v := 7 - sq.Rank(); v < d {
		d = v
	}
	return d
}
