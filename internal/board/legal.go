package board

// LegalMovesFrom filters the pseudo-legal moves of the piece on from down
// to the legal ones: each candidate is simulated on a scratch copy and
// kept only if the mover's own king is not left in check. No pin
// detection; simulate-then-filter is the deliberate design at 8x8 scale.
func LegalMovesFrom(b *Board, from Square, rights *CastlingRights) []Move {
	p := b.Piece(from)
	if p == NoPiece {
		return nil
	}

	pseudo := PseudoLegalMoves(b, from, rights)
	legal := pseudo[:0]
	for _, m := range pseudo {
		if isLegal(b, m, p.Color()) {
			legal = append(legal, m)
		}
	}
	return legal
}

// isLegal simulates m on a scratch copy, including the rook hop for a
// castling king move, and reports whether the mover's king stays safe.
func isLegal(b *Board, m Move, mover Color) bool {
	scratch := *b
	castling := m.IsCastling(b)
	scratch.Apply(m)
	if castling {
		rf, rt := m.RookHop()
		scratch.Apply(NewMove(&scratch, rf, rt))
	}
	return !InCheck(&scratch, mover)
}

// AllLegalMoves lists every legal move for the color across all 64 origin
// squares, in origin-square order. Castling is excluded: the search path
// never considers it, and a legal castle always implies a legal one-step
// king move toward the rook, so end-of-game detection is unaffected.
func AllLegalMoves(b *Board, c Color) []Move {
	var moves []Move
	for sq := A1; sq < NoSquare; sq++ {
		p := b.Piece(sq)
		if p == NoPiece || p.Color() != c {
			continue
		}
		moves = append(moves, LegalMovesFrom(b, sq, nil)...)
	}
	return moves
}

// HasLegalMove reports whether the color has at least one legal move.
// Same filter as AllLegalMoves with an early exit.
func HasLegalMove(b *Board, c Color) bool {
	for sq := A1; sq < NoSquare; sq++ {
		p := b.Piece(sq)
		if p == NoPiece || p.Color() != c {
			continue
		}
		for _, m := range PseudoLegalMoves(b, sq, nil) {
			if isLegal(b, m, c) {
				return true
			}
		}
	}
	return false
}

// IsCheckmate returns true if the color to move is in check with no legal
// reply.
func IsCheckmate(b *Board, toMove Color) bool {
	return InCheck(b, toMove) && !HasLegalMove(b, toMove)
}

// IsStalemate returns true if the color to move has no legal reply but is
// not in check.
func IsStalemate(b *Board, toMove Color) bool {
	return !InCheck(b, toMove) && !HasLegalMove(b, toMove)
}
