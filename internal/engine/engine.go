package engine

import (
	"sync"
	"time"

	"github.com/chesslab/tapchess/internal/board"
)

// SearchLimits specifies constraints on a search.
type SearchLimits struct {
	MaxDepth   int           // Deepest iteration to attempt
	MoveTime   time.Duration // Soft wall-clock budget (0 = no limit)
	Quiescence bool          // Extend the horizon through captures
}

// SearchInfo describes one completed iterative-deepening depth.
type SearchInfo struct {
	Depth int
	Move  board.Move
	Time  time.Duration
}

// Skill is a named strength level.
type Skill int

const (
	Skill1 Skill = 1 + iota
	Skill2
	Skill3
	Skill4
	Skill5
	Skill6
	Skill7
)

// SkillSettings maps each skill level to its search limits, from a
// 0.2-second depth-1 scan up to a 10-second depth-7 search with
// quiescence.
var SkillSettings = map[Skill]SearchLimits{
	Skill1: {MaxDepth: 1, MoveTime: 200 * time.Millisecond},
	Skill2: {MaxDepth: 2, MoveTime: 500 * time.Millisecond},
	Skill3: {MaxDepth: 3, MoveTime: time.Second},
	Skill4: {MaxDepth: 4, MoveTime: 2 * time.Second, Quiescence: true},
	Skill5: {MaxDepth: 5, MoveTime: 3 * time.Second, Quiescence: true},
	Skill6: {MaxDepth: 6, MoveTime: 5 * time.Second, Quiescence: true},
	Skill7: {MaxDepth: 7, MoveTime: 10 * time.Second, Quiescence: true},
}

// Valid reports whether s is one of the seven defined levels.
func (s Skill) Valid() bool {
	_, ok := SkillSettings[s]
	return ok
}

// Engine is the search opponent. It never touches a caller's board: the
// root search copies, and only the returned move reaches the caller.
// Search runs on a worker goroutine while SetSkill arrives from the UI
// thread, so the skill field is mutex-guarded; a search resolves its
// limits once at the start and is not affected by later SetSkill calls.
type Engine struct {
	mu    sync.Mutex
	skill Skill

	// OnInfo, when set, is called after every completed depth.
	OnInfo func(SearchInfo)
}

// New creates an engine at the given skill level.
func New(skill Skill) *Engine {
	if !skill.Valid() {
		skill = Skill3
	}
	return &Engine{skill: skill}
}

// SetSkill changes the engine strength.
func (e *Engine) SetSkill(s Skill) {
	if s.Valid() {
		e.mu.Lock()
		e.skill = s
		e.mu.Unlock()
	}
}

// Skill returns the current strength level.
func (e *Engine) Skill() Skill {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.skill
}

// Search finds the best move for the color using the current skill's
// limits. Returns false when the color has no legal move or the budget
// expired before depth 1 completed.
func (e *Engine) Search(b *board.Board, c board.Color) (board.Move, bool) {
	return e.SearchWithLimits(b, c, SkillSettings[e.Skill()])
}

// SearchWithLimits runs iterative deepening from depth 1 up to
// limits.MaxDepth. Each completed depth replaces the previous result in
// full; a depth aborted by the deadline contributes nothing, so a
// shallower result can never overwrite a deeper one. The deadline is soft:
// it is checked between depths and between root moves, never mid-ply.
func (e *Engine) SearchWithLimits(b *board.Board, c board.Color, limits SearchLimits) (board.Move, bool) {
	start := time.Now()
	var deadline time.Time
	if limits.MoveTime > 0 {
		deadline = start.Add(limits.MoveTime)
	}

	var best board.Move
	found := false

	for depth := 1; depth <= limits.MaxDepth; depth++ {
		if !deadline.IsZero() && time.Now().After(deadline) {
			break
		}

		m, ok, complete := rootSearch(b, c, depth, limits.Quiescence, deadline)
		if !complete {
			break
		}
		if !ok {
			// No legal moves; deeper iterations cannot change that.
			return board.Move{}, false
		}

		best, found = m, true
		if e.OnInfo != nil {
			e.OnInfo(SearchInfo{Depth: depth, Move: best, Time: time.Since(start)})
		}
	}

	return best, found
}
