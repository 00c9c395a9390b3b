package engine

import (
	"time"

	"github.com/chesslab/tapchess/internal/board"
)

// MateScore is the terminal score for checkmate; the sign always favors
// the side not to move. Stalemate scores 0.
const MateScore = 1e6

// Minimax scores a position for the side to move using alpha-beta
// pruning. White maximizes, black minimizes. A side with no legal move is
// terminal regardless of remaining depth; at the depth horizon the score
// is either the static evaluation or a quiescence extension.
func Minimax(b *board.Board, depth int, toMove board.Color, alpha, beta float64, quiesce bool) float64 {
	moves := board.AllLegalMoves(b, toMove)
	if len(moves) == 0 {
		if board.InCheck(b, toMove) {
			if toMove == board.White {
				return -MateScore
			}
			return MateScore
		}
		return 0
	}

	if depth <= 0 {
		if quiesce {
			return Quiescence(b, toMove, alpha, beta)
		}
		return Evaluate(b)
	}

	if toMove == board.White {
		best := -MateScore * 2
		for _, m := range moves {
			child := *b
			child.Apply(m)
			score := Minimax(&child, depth-1, board.Black, alpha, beta, quiesce)
			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
			if alpha >= beta {
				break
			}
		}
		return best
	}

	best := MateScore * 2
	for _, m := range moves {
		child := *b
		child.Apply(m)
		score := Minimax(&child, depth-1, board.White, alpha, beta, quiesce)
		if score < best {
			best = score
		}
		if best < beta {
			beta = best
		}
		if alpha >= beta {
			break
		}
	}
	return best
}

// Quiescence extends the horizon through capture sequences only. The
// stand-pat evaluation bounds the window immediately since the side to
// move is never forced to capture. No explicit depth limit: every
// recursion removes a piece, so capture chains are finite.
func Quiescence(b *board.Board, toMove board.Color, alpha, beta float64) float64 {
	standPat := Evaluate(b)

	if toMove == board.White {
		best := standPat
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			return best
		}
		for _, m := range board.AllLegalMoves(b, toMove) {
			if !m.IsCapture() {
				continue
			}
			child := *b
			child.Apply(m)
			score := Quiescence(&child, board.Black, alpha, beta)
			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
			if alpha >= beta {
				break
			}
		}
		return best
	}

	best := standPat
	if best < beta {
		beta = best
	}
	if alpha >= beta {
		return best
	}
	for _, m := range board.AllLegalMoves(b, toMove) {
		if !m.IsCapture() {
			continue
		}
		child := *b
		child.Apply(m)
		score := Quiescence(&child, board.White, alpha, beta)
		if score < best {
			best = score
		}
		if best < beta {
			beta = best
		}
		if alpha >= beta {
			break
		}
	}
	return best
}

// BestMove runs a fixed-depth root search for the color and returns the
// best move found, or false if the color has no legal move. Ties keep the
// first move in generation order; that is a reproducibility contract, not
// a claim about equal moves.
func BestMove(b *board.Board, c board.Color, depth int, quiesce bool) (board.Move, bool) {
	m, ok, _ := rootSearch(b, c, depth, quiesce, time.Time{})
	return m, ok
}

// rootSearch is the shared root loop. A non-zero deadline is honored
// between root moves: a ply in progress always finishes, and an aborted
// depth reports complete=false so its partial result is discarded.
func rootSearch(b *board.Board, c board.Color, depth int, quiesce bool, deadline time.Time) (best board.Move, ok bool, complete bool) {
	moves := board.AllLegalMoves(b, c)
	if len(moves) == 0 {
		return board.Move{}, false, true
	}

	alpha, beta := -MateScore*2, MateScore*2
	bestScore := beta
	if c == board.White {
		bestScore = alpha
	}

	for _, m := range moves {
		if !deadline.IsZero() && time.Now().After(deadline) {
			return board.Move{}, false, false
		}

		child := *b
		child.Apply(m)
		score := Minimax(&child, depth-1, c.Other(), alpha, beta, quiesce)

		if c == board.White {
			if !ok || score > bestScore {
				best, bestScore, ok = m, score, true
			}
			if bestScore > alpha {
				alpha = bestScore
			}
		} else {
			if !ok || score < bestScore {
				best, bestScore, ok = m, score, true
			}
			if bestScore < beta {
				beta = bestScore
			}
		}
	}
	return best, ok, true
}
