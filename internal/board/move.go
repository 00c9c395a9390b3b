package board

// Move describes a single piece relocation. Captured records the piece that
// occupied To immediately before the move is applied (NoPiece for quiet
// moves) so that Undo can restore it. Promotion is set only for a pawn move
// landing on the far rank; elsewhere it is NoPieceType.
//
// Castling is expressed as the king's two-file move. The matching rook hop
// is not part of the Move value; the caller issues it as a second Apply.
type Move struct {
	From      Square
	To        Square
	Captured  Piece
	Promotion PieceType
}

// NewMove creates a move of the piece on from to the given destination,
// recording whatever currently occupies the destination.
func NewMove(b *Board, from, to Square) Move {
	return Move{From: from, To: to, Captured: b.Piece(to), Promotion: NoPieceType}
}

// NewPromotion creates a pawn promotion move.
func NewPromotion(b *Board, from, to Square, promo PieceType) Move {
	return Move{From: from, To: to, Captured: b.Piece(to), Promotion: promo}
}

// IsCapture returns true if the move takes a piece.
func (m Move) IsCapture() bool {
	return m.Captured != NoPiece
}

// IsPromotion returns true if the move carries a promotion tag.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoPieceType
}

// WithPromotion returns a copy of the move promoting to the given type.
// Used at the human-move boundary where the chooser overrides the
// generator's auto-queen tag.
func (m Move) WithPromotion(pt PieceType) Move {
	m.Promotion = pt
	return m
}

// String returns the move in coordinate notation (e.g. "e2e4", "e7e8q").
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		switch m.Promotion {
		case Knight:
			s += "n"
		case Bishop:
			s += "b"
		case Rook:
			s += "r"
		case Queen:
			s += "q"
		}
	}
	return s
}

// IsCastling reports whether the move is a castling king hop on the given
// board. Only meaningful before the move has been applied.
func (m Move) IsCastling(b *Board) bool {
	p := b.Piece(m.From)
	if p.Type() != King {
		return false
	}
	d := m.To.File() - m.From.File()
	return d == 2 || d == -2
}

// RookHop returns the rook relocation that accompanies a castling king
// move. The result is only meaningful when IsCastling is true.
func (m Move) RookHop() (from, to Square) {
	rank := m.From.Rank()
	if m.To.File() > m.From.File() {
		// Kingside: h-rook jumps to f.
		return NewSquare(7, rank), NewSquare(5, rank)
	}
	// Queenside: a-rook jumps to d.
	return NewSquare(0, rank), NewSquare(3, rank)
}
