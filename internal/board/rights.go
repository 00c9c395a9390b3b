package board

// CastlingRights tracks the six monotone has-moved flags that gate
// castling: per color, whether the king, the a-rook, or the h-rook has
// left its original square. Once a flag is set it is never cleared.
type CastlingRights struct {
	KingMoved  [2]bool
	RookAMoved [2]bool
	RookHMoved [2]bool
}

// kingStart returns the original king square for a color.
func kingStart(c Color) Square {
	if c == White {
		return E1
	}
	return E8
}

// Update sets the relevant flags after a move by mover. A flag is set
// either when the piece moves off its original square, or when a capture
// lands on a rook's original square.
func (cr *CastlingRights) Update(m Move, mover Piece) {
	c := mover.Color()
	switch {
	case mover.Type() == King && m.From == kingStart(c):
		cr.KingMoved[c] = true
	case mover.Type() == Rook && (m.From == A1 || m.From == A8):
		if rookOwner(m.From) == c {
			cr.RookAMoved[c] = true
		}
	case mover.Type() == Rook && (m.From == H1 || m.From == H8):
		if rookOwner(m.From) == c {
			cr.RookHMoved[c] = true
		}
	}

	if !m.IsCapture() {
		return
	}
	switch m.To {
	case A1:
		cr.RookAMoved[White] = true
	case H1:
		cr.RookHMoved[White] = true
	case A8:
		cr.RookAMoved[Black] = true
	case H8:
		cr.RookHMoved[Black] = true
	}
}

// rookOwner maps a corner square to the color whose rook starts there.
func rookOwner(sq Square) Color {
	if sq.Rank() == 0 {
		return White
	}
	return Black
}

// MarkAllMoved sets every flag, disabling castling for both sides.
// Used for imported positions that carry no castling history at all.
func (cr *CastlingRights) MarkAllMoved() {
	for c := White; c <= Black; c++ {
		cr.KingMoved[c] = true
		cr.RookAMoved[c] = true
		cr.RookHMoved[c] = true
	}
}

// DeriveFromBoard resets the flags to match a board position: a flag
// stays clear only while the corresponding piece still sits on its
// original square. An approximation for imported positions, exact for
// the starting position.
func (cr *CastlingRights) DeriveFromBoard(b *Board) {
	cr.KingMoved[White] = b.Piece(E1) != WhiteKing
	cr.RookAMoved[White] = b.Piece(A1) != WhiteRook
	cr.RookHMoved[White] = b.Piece(H1) != WhiteRook
	cr.KingMoved[Black] = b.Piece(E8) != BlackKing
	cr.RookAMoved[Black] = b.Piece(A8) != BlackRook
	cr.RookHMoved[Black] = b.Piece(H8) != BlackRook
}

// MayCastleKingside returns whether the kingside (h-rook) flags still allow
// castling for the color. Path and safety checks live in the generator.
func (cr *CastlingRights) MayCastleKingside(c Color) bool {
	return !cr.KingMoved[c] && !cr.RookHMoved[c]
}

// MayCastleQueenside is the a-rook counterpart of MayCastleKingside.
func (cr *CastlingRights) MayCastleQueenside(c Color) bool {
	return !cr.KingMoved[c] && !cr.RookAMoved[c]
}
