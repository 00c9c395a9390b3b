package game

import "github.com/chesslab/tapchess/internal/board"

// Snapshot is the observable state the controller exposes to front ends:
// a value copy, safe to hold across ticks.
type Snapshot struct {
	Board      board.Board
	SideToMove board.Color
	Phase      Phase
	Selected   board.Square
	Targets    []board.Square
	Result     Result
	Pending    *PendingPromotion
	Rights     board.CastlingRights
}

// Snapshot captures the current observable state.
func (c *Controller) Snapshot() Snapshot {
	snap := Snapshot{
		Board:      c.b,
		SideToMove: c.stm,
		Phase:      c.phase,
		Selected:   c.selected,
		Result:     c.result,
		Rights:     c.rights,
	}
	if len(c.targets) > 0 {
		snap.Targets = make([]board.Square, len(c.targets))
		for i, m := range c.targets {
			snap.Targets[i] = m.To
		}
	}
	if c.pending != nil {
		p := *c.pending
		snap.Pending = &p
	}
	return snap
}

// IsTarget reports whether sq is one of the snapshot's legal targets.
func (s *Snapshot) IsTarget(sq board.Square) bool {
	for _, t := range s.Targets {
		if t == sq {
			return true
		}
	}
	return false
}

// GameOver reports whether the snapshot is terminal.
func (s *Snapshot) GameOver() bool {
	return s.Result != ResultNone
}
