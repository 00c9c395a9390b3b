package board

import (
	"strconv"
	"strings"
)

// StartPlacement is the FEN placement field of the standard starting
// position.
const StartPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// ParsePlacement reads a FEN placement string (8 '/'-separated ranks,
// uppercase for white, digits for empty runs) into a Board.
//
// Fallback policy: malformed input — wrong rank count, an unknown piece
// letter, or a rank that does not add up to 8 files — yields the standard
// starting position rather than an error. Position import is a
// convenience surface and a bad preset must never wedge the game.
func ParsePlacement(placement string) *Board {
	b, ok := parsePlacement(placement)
	if !ok {
		b, _ = parsePlacement(StartPlacement)
	}
	return b
}

func parsePlacement(placement string) (*Board, bool) {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return nil, false
	}

	b := NewBoard()
	for i, rankStr := range ranks {
		rank := 7 - i // FEN lists rank 8 first
		file := 0
		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			p := PieceFromChar(c)
			if p == NoPiece || file > 7 {
				return nil, false
			}
			b.SetPiece(p, NewSquare(file, rank))
			file++
		}
		if file != 8 {
			return nil, false
		}
	}
	return b, true
}

// Placement returns the FEN placement field for the board, the inverse of
// ParsePlacement for well-formed positions.
func (b *Board) Placement() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.Piece(NewSquare(file, rank))
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}
