// Package game holds the rules state machine: selection, move commit,
// castling rights, promotion, end-of-game detection, and the engine
// handoff. Front ends observe it through Snapshot and Listener; they
// never touch the board directly.
package game

import (
	"log"

	"github.com/chesslab/tapchess/internal/board"
	"github.com/chesslab/tapchess/internal/engine"
)

// Phase is the controller's coarse state.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseSelected
	PhasePendingPromotion
	PhaseThinking
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseSelected:
		return "Selected"
	case PhasePendingPromotion:
		return "PendingPromotion"
	case PhaseThinking:
		return "Thinking"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Result is the terminal game outcome. It is only ever set when the side
// to move has zero legal moves.
type Result uint8

const (
	ResultNone Result = iota
	ResultWhiteWins
	ResultBlackWins
	ResultStalemate
)

// String returns a display string for the result.
func (r Result) String() string {
	switch r {
	case ResultWhiteWins:
		return "White wins by checkmate"
	case ResultBlackWins:
		return "Black wins by checkmate"
	case ResultStalemate:
		return "Draw by stalemate"
	default:
		return "In progress"
	}
}

// PendingPromotion exists only between a human pawn move reaching the
// last rank and the chooser's answer. Normal move input is blocked while
// it is present.
type PendingPromotion struct {
	From  board.Square
	To    board.Square
	Color board.Color
}

// Config selects who the engine plays and how strongly.
type Config struct {
	VsAI    bool
	AIColor board.Color
	Skill   engine.Skill
}

// DefaultConfig plays the engine as black at the middle skill level.
func DefaultConfig() Config {
	return Config{VsAI: true, AIColor: board.Black, Skill: engine.Skill4}
}

// Listener receives a state snapshot after every observable change.
type Listener interface {
	StateChanged(Snapshot)
}

// searchResult carries an engine move back from the worker goroutine.
type searchResult struct {
	move  board.Move
	ok    bool
	epoch int
}

// Controller owns the authoritative Board and CastlingRights; everything
// mutates through the commit path. The engine searches a private copy on
// a worker goroutine and hands its move back through a channel drained by
// Update, so at most one search is outstanding per game epoch.
type Controller struct {
	b      board.Board
	stm    board.Color
	rights board.CastlingRights

	phase    Phase
	selected board.Square
	targets  []board.Move
	pending  *PendingPromotion
	held     board.Move // move awaiting the promotion chooser
	result   Result

	cfg Config
	eng *engine.Engine

	thinking bool
	epoch    int // bumped on Reset/LoadPosition to drop stale results
	searchCh chan searchResult

	listeners []Listener
}

// New creates a controller in the starting position.
func New(cfg Config) *Controller {
	if !cfg.Skill.Valid() {
		cfg.Skill = engine.Skill4
	}
	c := &Controller{
		cfg:      cfg,
		eng:      engine.New(cfg.Skill),
		searchCh: make(chan searchResult, 1),
	}
	c.setup(board.Starting(), board.White)
	return c
}

// setup installs a position and resets all transient state.
func (c *Controller) setup(b *board.Board, stm board.Color) {
	c.b = *b
	c.stm = stm
	c.rights = board.CastlingRights{}
	c.rights.DeriveFromBoard(&c.b)
	c.phase = PhaseIdle
	c.selected = board.NoSquare
	c.targets = nil
	c.pending = nil
	c.result = ResultNone
	c.thinking = false
	c.epoch++

	// Drop any result from a previous epoch still sitting in the channel.
	select {
	case <-c.searchCh:
	default:
	}

	c.checkGameEnd()
	c.notify()
	c.maybeStartEngine()
}

// Reset returns the game to the standard starting position.
func (c *Controller) Reset() {
	c.setup(board.Starting(), board.White)
}

// LoadPosition installs an imported position (puzzle preset or saved
// game) with the given side to move. Castling rights are derived from
// piece placement.
func (c *Controller) LoadPosition(b *board.Board, stm board.Color) {
	c.setup(b, stm)
}

// RestoreRights overwrites the derived castling rights, for callers that
// persisted the exact flags alongside a saved position.
func (c *Controller) RestoreRights(r board.CastlingRights) {
	c.rights = r
	c.notify()
}

// SetVsAI enables or disables the engine opponent.
func (c *Controller) SetVsAI(v bool) {
	c.cfg.VsAI = v
	c.notify()
	c.maybeStartEngine()
}

// SetAIColor assigns the side the engine plays.
func (c *Controller) SetAIColor(col board.Color) {
	c.cfg.AIColor = col
	c.notify()
	c.maybeStartEngine()
}

// SetSkill changes the engine strength.
func (c *Controller) SetSkill(s engine.Skill) {
	if s.Valid() {
		c.cfg.Skill = s
		c.eng.SetSkill(s)
	}
}

// Config returns the current configuration.
func (c *Controller) Config() Config {
	return c.cfg
}

// AddListener subscribes to state-change notifications.
func (c *Controller) AddListener(l Listener) {
	c.listeners = append(c.listeners, l)
}

// Select processes a square tap from the human side.
//
// With nothing selected, a square holding the side-to-move's piece is
// selected and its legal targets cached. With a selection, tapping a
// cached target commits the move, tapping the selection clears it, and
// anything else clears the selection. Taps on empty or opponent squares
// recover locally; no error surfaces.
func (c *Controller) Select(sq board.Square) {
	if !sq.IsValid() {
		return
	}
	switch c.phase {
	case PhaseGameOver, PhasePendingPromotion, PhaseThinking:
		return
	}

	if c.phase == PhaseSelected {
		if sq == c.selected {
			c.clearSelection()
			c.notify()
			return
		}
		if m, ok := c.targetMove(sq); ok {
			c.commitHuman(m)
			return
		}
		c.clearSelection()
		c.notify()
		return
	}

	p := c.b.Piece(sq)
	if p == board.NoPiece || p.Color() != c.stm {
		return
	}
	c.selected = sq
	c.targets = board.LegalMovesFrom(&c.b, sq, &c.rights)
	c.phase = PhaseSelected
	c.notify()
}

// targetMove looks up a cached legal move ending on sq.
func (c *Controller) targetMove(sq board.Square) (board.Move, bool) {
	for _, m := range c.targets {
		if m.To == sq {
			return m, true
		}
	}
	return board.Move{}, false
}

// commitHuman applies a human move, diverting far-rank pawn moves into
// the promotion chooser first.
func (c *Controller) commitHuman(m board.Move) {
	p := c.b.Piece(m.From)
	if p.Type() == board.Pawn && (m.To.Rank() == 0 || m.To.Rank() == 7) {
		c.held = m
		c.pending = &PendingPromotion{From: m.From, To: m.To, Color: p.Color()}
		c.phase = PhasePendingPromotion
		c.selected = board.NoSquare
		c.targets = nil
		c.notify()
		return
	}
	c.clearSelection()
	c.commit(m)
}

// ConfirmPromotion applies the held pawn move with the chosen piece type
// and advances the game. Ignored unless a promotion is pending.
func (c *Controller) ConfirmPromotion(pt board.PieceType) {
	if c.phase != PhasePendingPromotion {
		return
	}
	switch pt {
	case board.Knight, board.Bishop, board.Rook, board.Queen:
	default:
		return
	}
	m := c.held.WithPromotion(pt)
	c.pending = nil
	c.phase = PhaseIdle
	c.commit(m)
}

// commit is the single path every move takes: apply to the board (with
// the rook hop for castling), update castling rights, flip the side to
// move, run the end-of-game check, and hand off to the engine when it
// owns the new side.
func (c *Controller) commit(m board.Move) {
	mover := c.b.Piece(m.From)
	castling := m.IsCastling(&c.b)

	c.b.Apply(m)
	if castling {
		rf, rt := m.RookHop()
		c.b.Apply(board.NewMove(&c.b, rf, rt))
	}
	c.rights.Update(m, mover)
	c.stm = c.stm.Other()
	c.phase = PhaseIdle

	c.checkGameEnd()
	c.notify()
	c.maybeStartEngine()
}

// checkGameEnd sets the terminal result when the side to move has no
// legal reply.
func (c *Controller) checkGameEnd() {
	if board.HasLegalMove(&c.b, c.stm) {
		return
	}
	if board.InCheck(&c.b, c.stm) {
		if c.stm == board.White {
			c.result = ResultBlackWins
		} else {
			c.result = ResultWhiteWins
		}
	} else {
		c.result = ResultStalemate
	}
	c.phase = PhaseGameOver
}

// engineOwns reports whether the engine controls the given color.
func (c *Controller) engineOwns(col board.Color) bool {
	return c.cfg.VsAI && col == c.cfg.AIColor
}

// maybeStartEngine kicks off a search when the engine owns the side to
// move. The thinking flag makes the transition exclusive: a second search
// can never start while one is outstanding for this epoch.
func (c *Controller) maybeStartEngine() {
	if c.phase == PhaseGameOver || c.thinking || !c.engineOwns(c.stm) {
		return
	}
	c.clearSelection()
	c.thinking = true
	c.phase = PhaseThinking
	c.notify()

	snapshot := c.b // private copy; the worker never sees the live board
	stm := c.stm
	epoch := c.epoch
	go func() {
		m, ok := c.eng.Search(&snapshot, stm)
		c.searchCh <- searchResult{move: m, ok: ok, epoch: epoch}
	}()
}

// Update pumps the controller: it collects a finished search result, if
// any, and commits the engine's move, which re-enters the same commit
// path and re-triggers the engine when it also owns the next side. Call
// it once per tick.
func (c *Controller) Update() {
	select {
	case res := <-c.searchCh:
		if res.epoch != c.epoch {
			return // stale result from before a reset
		}
		c.thinking = false
		if c.phase == PhaseThinking {
			c.phase = PhaseIdle
		}
		if !res.ok {
			// Budget expired before depth 1, or no legal move. Either
			// way: do nothing this tick; a terminal position has already
			// been flagged by checkGameEnd.
			log.Printf("[AI] search returned no move")
			c.notify()
			return
		}
		c.commit(res.move)
	default:
		// Still thinking.
	}
}

// Thinking reports whether a search is in flight.
func (c *Controller) Thinking() bool {
	return c.thinking
}

// clearSelection drops the cached selection and targets.
func (c *Controller) clearSelection() {
	c.selected = board.NoSquare
	c.targets = nil
	if c.phase == PhaseSelected {
		c.phase = PhaseIdle
	}
}

// notify publishes a snapshot to every listener.
func (c *Controller) notify() {
	if len(c.listeners) == 0 {
		return
	}
	snap := c.Snapshot()
	for _, l := range c.listeners {
		l.StateChanged(snap)
	}
}
