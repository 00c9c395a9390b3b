package board

import "strings"

// Board is a flat 64-cell piece grid indexed by Square (rank*8+file).
// It is pure data: Apply and Undo relocate pieces without any legality
// checking. Being an array value, a scratch copy is a plain assignment.
type Board [64]Piece

// Piece returns the piece on the given square, or NoPiece.
func (b *Board) Piece(sq Square) Piece {
	return b[sq]
}

// SetPiece places a piece on a square, replacing whatever was there.
func (b *Board) SetPiece(p Piece, sq Square) {
	b[sq] = p
}

// Empty clears the given square.
func (b *Board) Empty(sq Square) {
	b[sq] = NoPiece
}

// IsEmpty returns true if no piece occupies the square.
func (b *Board) IsEmpty(sq Square) bool {
	return b[sq] == NoPiece
}

// Apply relocates the moving piece, clearing the source cell. If the move
// carries a promotion tag the moved piece's type is replaced, keeping its
// color. Castling's rook hop is the caller's responsibility.
func (b *Board) Apply(m Move) {
	p := b[m.From]
	b[m.From] = NoPiece
	if m.Promotion != NoPieceType {
		p = NewPiece(m.Promotion, p.Color())
	}
	b[m.To] = p
}

// Undo reverses Apply: the moved piece returns to From (demoted back to a
// pawn if the move promoted) and Captured is restored to To.
func (b *Board) Undo(m Move) {
	p := b[m.To]
	if m.Promotion != NoPieceType {
		p = NewPiece(Pawn, p.Color())
	}
	b[m.From] = p
	b[m.To] = m.Captured
}

// FindKing returns the square of the given color's king.
func (b *Board) FindKing(c Color) (Square, bool) {
	king := NewPiece(King, c)
	for sq := A1; sq < NoSquare; sq++ {
		if b[sq] == king {
			return sq, true
		}
	}
	return NoSquare, false
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	b := &Board{}
	for sq := A1; sq < NoSquare; sq++ {
		b[sq] = NoPiece
	}
	return b
}

// Starting returns a board set up in the standard starting position.
func Starting() *Board {
	return ParsePlacement(StartPlacement)
}

// String renders the board as ASCII, rank 8 first.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		sb.WriteByte(' ')
		for file := 0; file < 8; file++ {
			p := b.Piece(NewSquare(file, rank))
			if p == NoPiece {
				sb.WriteByte('.')
			} else {
				sb.WriteString(p.String())
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
