package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/chesslab/tapchess/internal/board"
	"github.com/chesslab/tapchess/internal/engine"
	"github.com/chesslab/tapchess/internal/game"
)

// Panel is the control strip to the right of the board.
type Panel struct {
	game    *Game
	buttons []*Button

	vsAIButton  *Button
	sideButton  *Button
	skillDown   *Button
	skillUp     *Button
	puzzleLabel string
}

// NewPanel creates the side panel and its buttons.
func NewPanel(g *Game) *Panel {
	p := &Panel{game: g}

	x := BoardSize + 20
	w := PanelWidth - 40
	y := 60
	bh := 36
	gap := 12

	add := func(b *Button) *Button {
		p.buttons = append(p.buttons, b)
		return b
	}

	add(NewButton(x, y, w, bh, "New Game", g.newGame))
	y += bh + gap

	p.vsAIButton = add(NewButton(x, y, w, bh, "", g.toggleVsAI))
	y += bh + gap

	p.sideButton = add(NewButton(x, y, w, bh, "", g.toggleAISide))
	y += bh + gap

	half := (w - gap) / 2
	p.skillDown = add(NewButton(x, y, half, bh, "Skill -", func() { g.adjustSkill(-1) }))
	p.skillUp = add(NewButton(x+half+gap, y, half, bh, "Skill +", func() { g.adjustSkill(+1) }))
	y += bh + gap

	add(NewButton(x, y, w, bh, "Next Puzzle", g.nextPuzzle))

	p.refreshLabels()
	return p
}

// refreshLabels syncs the toggle button labels with the controller config.
func (p *Panel) refreshLabels() {
	cfg := p.game.ctrl.Config()
	if cfg.VsAI {
		p.vsAIButton.Label = "Engine: On"
	} else {
		p.vsAIButton.Label = "Engine: Off"
	}
	p.sideButton.Label = fmt.Sprintf("Engine plays %v", cfg.AIColor)
}

// HandleInput processes panel clicks. Returns true if a click was consumed.
func (p *Panel) HandleInput(input *InputHandler) bool {
	consumed := false
	for _, b := range p.buttons {
		if b.Update(input) {
			consumed = true
		}
	}
	if consumed {
		p.refreshLabels()
	}
	return consumed
}

// Draw renders the panel background, status text, and buttons.
func (p *Panel) Draw(screen *ebiten.Image, snap game.Snapshot) {
	theme := p.game.renderer.Theme()
	x := BoardSize + 20

	drawLabel(screen, "tapchess", x, 16, GetBoldFace(), theme.TextColor)

	for _, b := range p.buttons {
		b.Draw(screen, theme)
	}

	cfg := p.game.ctrl.Config()
	y := 300

	drawLabel(screen, fmt.Sprintf("Skill level: %d", cfg.Skill), x, y, GetRegularFace(), theme.TextColor)
	y += 26

	drawLabel(screen, p.statusLine(snap), x, y, GetRegularFace(), theme.TextColor)
	y += 26

	if cfg.VsAI && p.game.stats.BySkill != nil {
		s := p.game.stats.BySkill[cfg.Skill]
		drawLabel(screen, fmt.Sprintf("Record: %dW %dL %dD", s.Wins, s.Losses, s.Draws),
			x, y, GetRegularFace(), theme.TextMuted)
		y += 26
	}

	if p.puzzleLabel != "" {
		drawLabel(screen, p.puzzleLabel, x, y, GetRegularFace(), theme.TextMuted)
	}
}

func (p *Panel) statusLine(snap game.Snapshot) string {
	switch {
	case snap.Phase == game.PhaseThinking:
		return "Engine is thinking..."
	case snap.Phase == game.PhasePendingPromotion:
		return "Choose a promotion piece"
	case snap.GameOver():
		switch snap.Result {
		case game.ResultWhiteWins:
			return "Checkmate - white wins"
		case game.ResultBlackWins:
			return "Checkmate - black wins"
		default:
			return "Stalemate - draw"
		}
	case board.InCheck(&snap.Board, snap.SideToMove):
		return fmt.Sprintf("%v to move - check!", snap.SideToMove)
	default:
		return fmt.Sprintf("%v to move", snap.SideToMove)
	}
}

// clampSkill keeps a skill adjustment inside the supported range.
func clampSkill(s engine.Skill) engine.Skill {
	if s < engine.Skill1 {
		return engine.Skill1
	}
	if s > engine.Skill7 {
		return engine.Skill7
	}
	return s
}
