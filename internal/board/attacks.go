package board

// offset is a file/rank delta used for bounds-checked stepping on the
// 8x8 grid.
type offset struct {
	df, dr int
}

var (
	knightOffsets = [8]offset{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
	kingOffsets = [8]offset{
		{0, 1}, {1, 1}, {1, 0}, {1, -1},
		{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
	}
	orthogonalDirs = [4]offset{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	diagonalDirs   = [4]offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// step returns the square reached from sq by the offset, or NoSquare if
// it leaves the board.
func step(sq Square, o offset) Square {
	f := sq.File() + o.df
	r := sq.Rank() + o.dr
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return NoSquare
	}
	return NewSquare(f, r)
}

// IsAttacked answers whether the given square is attacked by any piece of
// color by. Knight and king use fixed offsets, pawns the reversed capture
// offsets, and sliders the first blocking piece along each ray.
func IsAttacked(b *Board, sq Square, by Color) bool {
	// Knights.
	for _, o := range knightOffsets {
		if t := step(sq, o); t != NoSquare && b.Piece(t) == NewPiece(Knight, by) {
			return true
		}
	}

	// Pawns: a white pawn attacks diagonally upward, so a square is
	// attacked by white from one rank below it.
	pawnDir := -1
	if by == Black {
		pawnDir = 1
	}
	for _, df := range [2]int{-1, 1} {
		if t := step(sq, offset{df, pawnDir}); t != NoSquare && b.Piece(t) == NewPiece(Pawn, by) {
			return true
		}
	}

	// Adjacent enemy king.
	for _, o := range kingOffsets {
		if t := step(sq, o); t != NoSquare && b.Piece(t) == NewPiece(King, by) {
			return true
		}
	}

	// Orthogonal rays: rook or queen.
	if rayHits(b, sq, orthogonalDirs[:], NewPiece(Rook, by), NewPiece(Queen, by)) {
		return true
	}
	// Diagonal rays: bishop or queen.
	return rayHits(b, sq, diagonalDirs[:], NewPiece(Bishop, by), NewPiece(Queen, by))
}

// rayHits walks each direction until the first occupied square and reports
// whether that blocker is one of the two attacker pieces.
func rayHits(b *Board, sq Square, dirs []offset, a, q Piece) bool {
	for _, d := range dirs {
		t := step(sq, d)
		for t != NoSquare {
			p := b.Piece(t)
			if p != NoPiece {
				if p == a || p == q {
					return true
				}
				break
			}
			t = step(t, d)
		}
	}
	return false
}

// InCheck returns true if the given color's king is attacked by the
// opposite color. A board without that king is never in check.
func InCheck(b *Board, c Color) bool {
	sq, ok := b.FindKing(c)
	if !ok {
		return false
	}
	return IsAttacked(b, sq, c.Other())
}
