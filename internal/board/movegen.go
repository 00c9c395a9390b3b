package board

// PseudoLegalMoves generates the pseudo-legal moves of the piece on from.
// Destinations occupied by own pieces are blocked; enemy occupancy is a
// capture. Pawn moves reaching the far rank carry an automatic queen
// promotion tag (the human-facing chooser overrides it later).
//
// Castling is generated only when rights is non-nil: the search path
// passes nil and never re-derives castling inside the tree, while the
// human-move boundary passes the game's rights. En passant is not
// generated.
func PseudoLegalMoves(b *Board, from Square, rights *CastlingRights) []Move {
	p := b.Piece(from)
	if p == NoPiece {
		return nil
	}

	var moves []Move
	switch p.Type() {
	case Pawn:
		moves = pawnMoves(b, from, p.Color())
	case Knight:
		moves = offsetMoves(b, from, p.Color(), knightOffsets[:])
	case Bishop:
		moves = slidingMoves(b, from, p.Color(), diagonalDirs[:])
	case Rook:
		moves = slidingMoves(b, from, p.Color(), orthogonalDirs[:])
	case Queen:
		moves = slidingMoves(b, from, p.Color(), orthogonalDirs[:])
		moves = append(moves, slidingMoves(b, from, p.Color(), diagonalDirs[:])...)
	case King:
		moves = offsetMoves(b, from, p.Color(), kingOffsets[:])
		if rights != nil {
			moves = append(moves, castlingMoves(b, from, p.Color(), rights)...)
		}
	}
	return moves
}

// offsetMoves generates fixed-offset moves for knights and kings.
func offsetMoves(b *Board, from Square, c Color, offsets []offset) []Move {
	moves := make([]Move, 0, 8)
	for _, o := range offsets {
		to := step(from, o)
		if to == NoSquare {
			continue
		}
		target := b.Piece(to)
		if target != NoPiece && target.Color() == c {
			continue
		}
		moves = append(moves, NewMove(b, from, to))
	}
	return moves
}

// slidingMoves ray-casts along each direction until blocked. The blocking
// square is included only when it holds an enemy piece.
func slidingMoves(b *Board, from Square, c Color, dirs []offset) []Move {
	moves := make([]Move, 0, 14)
	for _, d := range dirs {
		to := step(from, d)
		for to != NoSquare {
			target := b.Piece(to)
			if target == NoPiece {
				moves = append(moves, NewMove(b, from, to))
				to = step(to, d)
				continue
			}
			if target.Color() != c {
				moves = append(moves, NewMove(b, from, to))
			}
			break
		}
	}
	return moves
}

// pawnMoves generates single and double pushes onto empty squares and
// diagonal captures onto enemy-occupied squares.
func pawnMoves(b *Board, from Square, c Color) []Move {
	dir, startRank, promoRank := 1, 1, 7
	if c == Black {
		dir, startRank, promoRank = -1, 6, 0
	}

	moves := make([]Move, 0, 4)
	add := func(to Square) {
		if to.Rank() == promoRank {
			moves = append(moves, NewPromotion(b, from, to, Queen))
		} else {
			moves = append(moves, NewMove(b, from, to))
		}
	}

	// Forward pushes.
	if one := step(from, offset{0, dir}); one != NoSquare && b.IsEmpty(one) {
		add(one)
		if from.Rank() == startRank {
			if two := step(one, offset{0, dir}); two != NoSquare && b.IsEmpty(two) {
				add(two)
			}
		}
	}

	// Diagonal captures.
	for _, df := range [2]int{-1, 1} {
		to := step(from, offset{df, dir})
		if to == NoSquare {
			continue
		}
		if target := b.Piece(to); target != NoPiece && target.Color() != c {
			add(to)
		}
	}
	return moves
}

// castlingMoves emits the two-file king moves still permitted by rights.
// Emitted only from the king's original square, and never while in check.
// Kingside needs f and g empty and both unattacked. Queenside needs b, c
// and d empty with c and d unattacked; b may be attacked since the king
// never crosses it.
func castlingMoves(b *Board, from Square, c Color, rights *CastlingRights) []Move {
	if from != kingStart(c) || rights.KingMoved[c] {
		return nil
	}
	enemy := c.Other()
	if IsAttacked(b, from, enemy) {
		return nil
	}

	rank := from.Rank()
	var moves []Move

	if rights.MayCastleKingside(c) && b.Piece(NewSquare(7, rank)) == NewPiece(Rook, c) {
		f, g := NewSquare(5, rank), NewSquare(6, rank)
		if b.IsEmpty(f) && b.IsEmpty(g) &&
			!IsAttacked(b, f, enemy) && !IsAttacked(b, g, enemy) {
			moves = append(moves, NewMove(b, from, g))
		}
	}

	if rights.MayCastleQueenside(c) && b.Piece(NewSquare(0, rank)) == NewPiece(Rook, c) {
		bsq, csq, dsq := NewSquare(1, rank), NewSquare(2, rank), NewSquare(3, rank)
		if b.IsEmpty(bsq) && b.IsEmpty(csq) && b.IsEmpty(dsq) &&
			!IsAttacked(b, csq, enemy) && !IsAttacked(b, dsq, enemy) {
			moves = append(moves, NewMove(b, from, csq))
		}
	}
	return moves
}
