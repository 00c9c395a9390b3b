package ui

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/chesslab/tapchess/internal/board"
	"github.com/chesslab/tapchess/internal/engine"
	"github.com/chesslab/tapchess/internal/game"
	"github.com/chesslab/tapchess/internal/puzzle"
	"github.com/chesslab/tapchess/internal/storage"
)

// UI constants.
const (
	ScreenWidth  = 960
	ScreenHeight = 640
	BoardSize    = 640
	SquareSize   = BoardSize / 8
	PanelWidth   = ScreenWidth - BoardSize
)

// Game implements ebiten.Game on top of the game controller.
type Game struct {
	ctrl  *game.Controller
	store *storage.Storage

	renderer *Renderer
	input    *InputHandler
	panel    *Panel

	puzzleIdx  int
	prevSide   board.Color
	prevResult game.Result

	stats storage.GameStats // cached; refreshed when a result is recorded
}

// NewGame creates the desktop game, restoring preferences and any saved
// game from storage.
func NewGame() *Game {
	g := &Game{
		renderer: NewRenderer(BoardSize, SquareSize),
		input:    NewInputHandler(),
	}

	var err error
	g.store, err = storage.NewStorage()
	if err != nil {
		log.Printf("Warning: failed to open storage: %v", err)
		g.store = nil
	}

	cfg := game.DefaultConfig()
	if g.store != nil {
		prefs, err := g.store.GetPreferences()
		if err != nil {
			log.Printf("Warning: failed to load preferences: %v", err)
		} else {
			cfg.VsAI = prefs.VsAI
			cfg.AIColor = prefs.AIColor
			cfg.Skill = prefs.Skill
		}
	}
	g.ctrl = game.New(cfg)

	g.restoreSavedGame()
	g.markFirstLaunch()
	g.refreshStats()

	snap := g.ctrl.Snapshot()
	g.prevSide = snap.SideToMove
	g.prevResult = snap.Result

	g.panel = NewPanel(g)
	return g
}

func (g *Game) restoreSavedGame() {
	if g.store == nil {
		return
	}
	saved, found, err := g.store.LoadGame()
	if err != nil {
		log.Printf("Warning: failed to load saved game: %v", err)
		return
	}
	if !found {
		return
	}
	g.ctrl.SetVsAI(saved.VsAI)
	g.ctrl.SetAIColor(saved.AIColor)
	g.ctrl.SetSkill(saved.Skill)
	g.ctrl.LoadPosition(board.ParsePlacement(saved.Placement), saved.SideToMove)
	g.ctrl.RestoreRights(saved.Rights)
}

func (g *Game) markFirstLaunch() {
	if g.store == nil {
		return
	}
	first, err := g.store.IsFirstLaunch()
	if err != nil {
		log.Printf("Warning: failed to check first launch: %v", err)
		return
	}
	if first {
		log.Printf("First launch: using default settings")
		if err := g.store.MarkFirstLaunchComplete(); err != nil {
			log.Printf("Warning: failed to mark first launch: %v", err)
		}
	}
}

// Update handles input and pumps the controller.
func (g *Game) Update() error {
	g.input.Update()
	g.ctrl.Update()

	g.trackProgress()

	snap := g.ctrl.Snapshot()

	if snap.Phase == game.PhasePendingPromotion {
		g.handlePromotionInput(snap)
		return nil
	}

	if g.panel.HandleInput(g.input) {
		return nil
	}

	g.handleBoardInput()
	return nil
}

// trackProgress persists the game after each committed move and records
// the result once when a game finishes.
func (g *Game) trackProgress() {
	snap := g.ctrl.Snapshot()

	if snap.Result != g.prevResult {
		g.prevResult = snap.Result
		if snap.Result != game.ResultNone {
			g.recordResult(snap.Result)
			g.clearSavedGame()
		}
	}

	if snap.SideToMove != g.prevSide {
		g.prevSide = snap.SideToMove
		if !snap.GameOver() {
			g.saveGame(snap)
		}
	}
}

func (g *Game) recordResult(res game.Result) {
	if g.store == nil {
		return
	}
	cfg := g.ctrl.Config()
	if !cfg.VsAI {
		return
	}

	var outcome storage.Outcome
	switch res {
	case game.ResultStalemate:
		outcome = storage.OutcomeDraw
	case game.ResultWhiteWins:
		if cfg.AIColor == board.White {
			outcome = storage.OutcomeLoss
		} else {
			outcome = storage.OutcomeWin
		}
	case game.ResultBlackWins:
		if cfg.AIColor == board.Black {
			outcome = storage.OutcomeLoss
		} else {
			outcome = storage.OutcomeWin
		}
	default:
		return
	}

	if err := g.store.RecordGame(cfg.Skill, outcome); err != nil {
		log.Printf("Warning: failed to record game result: %v", err)
	}
	g.refreshStats()
}

func (g *Game) refreshStats() {
	if g.store == nil {
		return
	}
	stats, err := g.store.GetStats()
	if err != nil {
		log.Printf("Warning: failed to load stats: %v", err)
		return
	}
	g.stats = stats
}

func (g *Game) saveGame(snap game.Snapshot) {
	if g.store == nil {
		return
	}
	cfg := g.ctrl.Config()
	err := g.store.SaveGame(storage.SavedGame{
		Placement:  snap.Board.Placement(),
		SideToMove: snap.SideToMove,
		Rights:     snap.Rights,
		VsAI:       cfg.VsAI,
		AIColor:    cfg.AIColor,
		Skill:      cfg.Skill,
	})
	if err != nil {
		log.Printf("Warning: failed to save game: %v", err)
	}
}

func (g *Game) clearSavedGame() {
	if g.store == nil {
		return
	}
	if err := g.store.ClearSavedGame(); err != nil {
		log.Printf("Warning: failed to clear saved game: %v", err)
	}
}

func (g *Game) savePreferences() {
	if g.store == nil {
		return
	}
	cfg := g.ctrl.Config()
	err := g.store.SavePreferences(storage.Preferences{
		VsAI:    cfg.VsAI,
		AIColor: cfg.AIColor,
		Skill:   cfg.Skill,
		Sound:   true,
	})
	if err != nil {
		log.Printf("Warning: failed to save preferences: %v", err)
	}
}

// handleBoardInput forwards board clicks to the controller.
func (g *Game) handleBoardInput() {
	if !g.input.IsLeftJustPressed() {
		return
	}
	mx, my := g.input.MousePosition()
	sq := g.renderer.ScreenToSquare(mx, my)
	if sq == board.NoSquare {
		return
	}
	g.ctrl.Select(sq)
}

// Panel callbacks.

func (g *Game) newGame() {
	g.ctrl.Reset()
	g.clearSavedGame()
	g.panel.puzzleLabel = ""
	snap := g.ctrl.Snapshot()
	g.prevSide = snap.SideToMove
	g.prevResult = snap.Result
}

func (g *Game) toggleVsAI() {
	g.ctrl.SetVsAI(!g.ctrl.Config().VsAI)
	g.savePreferences()
}

func (g *Game) toggleAISide() {
	g.ctrl.SetAIColor(g.ctrl.Config().AIColor.Other())
	g.savePreferences()
}

func (g *Game) adjustSkill(delta int) {
	cfg := g.ctrl.Config()
	g.ctrl.SetSkill(clampSkill(cfg.Skill + engine.Skill(delta)))
	g.savePreferences()
}

func (g *Game) nextPuzzle() {
	catalog := puzzle.Catalog()
	if len(catalog) == 0 {
		return
	}
	p := catalog[g.puzzleIdx%len(catalog)]
	g.puzzleIdx++

	g.ctrl.LoadPosition(p.Setup(), p.SideToMove)
	g.ctrl.RestoreRights(p.Rights())
	g.panel.puzzleLabel = p.Name + ": " + p.Hint
	snap := g.ctrl.Snapshot()
	g.prevSide = snap.SideToMove
	g.prevResult = snap.Result
}

// Promotion picker.

var promotionChoices = []board.PieceType{board.Queen, board.Rook, board.Bishop, board.Knight}

// promotionRects returns the clickable cell for each promotion choice.
func (g *Game) promotionRects() [][4]int {
	cell := SquareSize
	total := cell * len(promotionChoices)
	x0 := (BoardSize - total) / 2
	y0 := (BoardSize - cell) / 2

	rects := make([][4]int, len(promotionChoices))
	for i := range promotionChoices {
		rects[i] = [4]int{x0 + i*cell, y0, cell, cell}
	}
	return rects
}

func (g *Game) handlePromotionInput(snap game.Snapshot) {
	if !g.input.IsLeftJustPressed() {
		return
	}
	for i, rect := range g.promotionRects() {
		if g.input.IsInBounds(rect[0], rect[1], rect[2], rect[3]) {
			g.ctrl.ConfirmPromotion(promotionChoices[i])
			return
		}
	}
}

func (g *Game) drawPromotionPicker(screen *ebiten.Image, snap game.Snapshot) {
	theme := g.renderer.Theme()
	vector.DrawFilledRect(screen, 0, 0, BoardSize, BoardSize, theme.OverlayColor, false)

	for i, rect := range g.promotionRects() {
		vector.DrawFilledRect(screen, float32(rect[0]), float32(rect[1]),
			float32(rect[2]), float32(rect[3]), theme.LightSquare, false)
		p := board.NewPiece(promotionChoices[i], snap.Pending.Color)
		g.renderer.Sprites().DrawPieceAt(screen, p, rect[0], rect[1])
	}

	face := GetBoldFace()
	if face != nil {
		label := "Promote to:"
		w, _ := MeasureText(label, face)
		op := &text.DrawOptions{}
		op.GeoM.Translate((BoardSize-w)/2, float64(BoardSize/2-SquareSize))
		op.ColorScale.ScaleWithColor(theme.TextColor)
		text.Draw(screen, label, face, op)
	}
}

// Draw renders the whole frame.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.ctrl.Snapshot()

	screen.Fill(g.renderer.Theme().Background)
	g.renderer.DrawBoard(screen)
	g.renderer.DrawHighlights(screen, snap)
	g.renderer.DrawPieces(screen, &snap.Board)
	g.panel.Draw(screen, snap)

	if snap.Phase == game.PhasePendingPromotion {
		g.drawPromotionPicker(screen, snap)
	}
}

// Layout returns the fixed screen dimensions.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
