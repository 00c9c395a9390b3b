package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/chesslab/tapchess/internal/board"
	"github.com/chesslab/tapchess/internal/game"
)

// Theme defines the color scheme for the board and panel.
type Theme struct {
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	SelectedSquare color.RGBA
	TargetColor    color.RGBA
	CheckColor     color.RGBA
	Background     color.RGBA
	TextColor      color.RGBA
	TextMuted      color.RGBA
	ButtonColor    color.RGBA
	ButtonHover    color.RGBA
	OverlayColor   color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:    color.RGBA{240, 217, 181, 255},
		DarkSquare:     color.RGBA{181, 136, 99, 255},
		SelectedSquare: color.RGBA{247, 247, 105, 180},
		TargetColor:    color.RGBA{130, 151, 105, 200},
		CheckColor:     color.RGBA{255, 100, 100, 180},
		Background:     color.RGBA{40, 44, 52, 255},
		TextColor:      color.RGBA{220, 220, 220, 255},
		TextMuted:      color.RGBA{140, 145, 155, 255},
		ButtonColor:    color.RGBA{60, 64, 72, 255},
		ButtonHover:    color.RGBA{80, 84, 92, 255},
		OverlayColor:   color.RGBA{20, 22, 26, 200},
	}
}

// Renderer handles all board drawing.
type Renderer struct {
	sprites    *SpriteManager
	theme      *Theme
	boardSize  int
	squareSize int
}

// NewRenderer creates a renderer for a board of the given pixel size.
func NewRenderer(boardSize, squareSize int) *Renderer {
	return &Renderer{
		sprites:    NewSpriteManager(squareSize),
		theme:      DefaultTheme(),
		boardSize:  boardSize,
		squareSize: squareSize,
	}
}

// DrawBoard draws the checkered squares.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			x := float32(file * r.squareSize)
			y := float32((7 - rank) * r.squareSize) // rank 1 at the bottom

			c := r.theme.LightSquare
			if (rank+file)%2 == 0 {
				c = r.theme.DarkSquare
			}
			vector.DrawFilledRect(screen, x, y, float32(r.squareSize), float32(r.squareSize), c, false)
		}
	}
}

// DrawHighlights draws the selection, target, and check overlays from a
// controller snapshot.
func (r *Renderer) DrawHighlights(screen *ebiten.Image, snap game.Snapshot) {
	if board.InCheck(&snap.Board, snap.SideToMove) {
		if kingSq, ok := snap.Board.FindKing(snap.SideToMove); ok {
			r.highlightSquare(screen, kingSq, r.theme.CheckColor)
		}
	}

	if snap.Phase == game.PhaseSelected {
		r.highlightSquare(screen, snap.Selected, r.theme.SelectedSquare)
		for _, sq := range snap.Targets {
			r.drawTargetDot(screen, sq)
		}
	}
}

func (r *Renderer) highlightSquare(screen *ebiten.Image, sq board.Square, c color.RGBA) {
	if sq == board.NoSquare {
		return
	}
	x, y := r.SquareToScreen(sq)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(r.squareSize), float32(r.squareSize), c, false)
}

func (r *Renderer) drawTargetDot(screen *ebiten.Image, sq board.Square) {
	x, y := r.SquareToScreen(sq)
	cx := float32(x) + float32(r.squareSize)/2
	cy := float32(y) + float32(r.squareSize)/2
	vector.DrawFilledCircle(screen, cx, cy, float32(r.squareSize)*0.15, r.theme.TargetColor, false)
}

// DrawPieces draws every piece on the board.
func (r *Renderer) DrawPieces(screen *ebiten.Image, b *board.Board) {
	for sq := board.A1; sq <= board.H8; sq++ {
		p := b.Piece(sq)
		if p == board.NoPiece {
			continue
		}
		x, y := r.SquareToScreen(sq)
		r.sprites.DrawPieceAt(screen, p, x, y)
	}
}

// SquareToScreen converts a board square to pixel coordinates.
func (r *Renderer) SquareToScreen(sq board.Square) (int, int) {
	x := sq.File() * r.squareSize
	y := (7 - sq.Rank()) * r.squareSize
	return x, y
}

// ScreenToSquare converts pixel coordinates to a board square, or
// NoSquare when outside the board.
func (r *Renderer) ScreenToSquare(x, y int) board.Square {
	if x < 0 || x >= r.boardSize || y < 0 || y >= r.boardSize {
		return board.NoSquare
	}
	file := x / r.squareSize
	rank := 7 - (y / r.squareSize)
	return board.NewSquare(file, rank)
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}

// Sprites returns the sprite manager.
func (r *Renderer) Sprites() *SpriteManager {
	return r.sprites
}

// SquareSize returns the size of one square in pixels.
func (r *Renderer) SquareSize() int {
	return r.squareSize
}
