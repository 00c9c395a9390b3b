package engine

import (
	"testing"
	"time"

	"github.com/chesslab/tapchess/internal/board"
)

func TestFindsMateInOne(t *testing.T) {
	// Back rank: Qd1-d8 mates the boxed-in black king.
	b := board.ParsePlacement("6k1/5ppp/8/8/8/8/5PPP/3Q2K1")
	eng := New(Skill1)

	m, ok := eng.Search(b, board.White)
	if !ok {
		t.Fatal("expected a move for white")
	}
	t.Log("engine move:", m)

	b.Apply(m)
	if len(board.AllLegalMoves(b, board.Black)) != 0 {
		t.Error("expected black to have zero legal moves")
	}
	if !board.InCheck(b, board.Black) {
		t.Error("expected black to be in check")
	}
	if !board.IsCheckmate(b, board.Black) {
		t.Error("expected checkmate")
	}
}

func TestKingShuffleIsNotMate(t *testing.T) {
	// Symmetric pawn shell, black to move, no mate available in one ply.
	b := board.ParsePlacement("6k1/5ppp/8/8/8/8/5PPP/6K1")

	for _, m := range board.AllLegalMoves(b, board.Black) {
		child := *b
		child.Apply(m)
		if board.IsCheckmate(&child, board.White) {
			t.Errorf("move %v must not be reported as mate", m)
		}
	}
}

// plainMinimax is an unpruned reference search used to verify that
// alpha-beta pruning changes the work done, never the score.
func plainMinimax(b *board.Board, depth int, toMove board.Color) float64 {
	moves := board.AllLegalMoves(b, toMove)
	if len(moves) == 0 {
		if board.InCheck(b, toMove) {
			if toMove == board.White {
				return -MateScore
			}
			return MateScore
		}
		return 0
	}
	if depth <= 0 {
		return Evaluate(b)
	}

	best := -2 * MateScore
	if toMove == board.Black {
		best = 2 * MateScore
	}
	for _, m := range moves {
		child := *b
		child.Apply(m)
		score := plainMinimax(&child, depth-1, toMove.Other())
		if toMove == board.White && score > best {
			best = score
		}
		if toMove == board.Black && score < best {
			best = score
		}
	}
	return best
}

func TestAlphaBetaMatchesPlainMinimax(t *testing.T) {
	positions := []struct {
		placement string
		toMove    board.Color
	}{
		{board.StartPlacement, board.White},
		{"6k1/5ppp/8/8/8/8/5PPP/3Q2K1", board.White},
		{"r3k2r/pppq1ppp/2n2n2/3pp3/1b1PP1b1/2N2N2/PPPQBPPP/R3K2R", board.Black},
	}

	for _, tc := range positions {
		b := board.ParsePlacement(tc.placement)
		for depth := 1; depth <= 3; depth++ {
			pruned := Minimax(b, depth, tc.toMove, -2*MateScore, 2*MateScore, false)
			plain := plainMinimax(b, depth, tc.toMove)
			if pruned != plain {
				t.Errorf("%q depth %d: alpha-beta %v != plain %v",
					tc.placement, depth, pruned, plain)
			}
		}
	}
}

func TestQuiescenceSeesHangingQueen(t *testing.T) {
	// White rook d5 wins the undefended queen on d8; static eval at the
	// horizon misses it, quiescence must not.
	b := board.ParsePlacement("3q3k/8/8/3R4/8/8/8/K7")

	static := Evaluate(b)
	q := Quiescence(b, board.White, -2*MateScore, 2*MateScore)
	if q < static+5 {
		t.Errorf("quiescence %v should exceed static %v by the queen swing", q, static)
	}
}

func TestQuiescenceStandPatIsFloor(t *testing.T) {
	// The side to move is never forced into a losing capture: white's
	// only capture loses the rook for a pawn.
	b := board.ParsePlacement("7k/8/8/3p4/3R4/8/8/K7")
	// Guard the pawn so RxP loses material outright.
	b.SetPiece(board.BlackPawn, board.C6)

	static := Evaluate(b)
	q := Quiescence(b, board.White, -2*MateScore, 2*MateScore)
	if q < static {
		t.Errorf("quiescence %v must not drop below stand-pat %v", q, static)
	}
}

func TestSearchWithNoLegalMoves(t *testing.T) {
	// Corner stalemate, black to move.
	b := board.ParsePlacement("k7/2Q5/K7/8/8/8/8/8")
	eng := New(Skill2)

	if _, ok := eng.Search(b, board.Black); ok {
		t.Error("expected no move in a terminal position")
	}
}

func TestExpiredBudgetYieldsNoMove(t *testing.T) {
	b := board.Starting()
	eng := New(Skill1)

	// A nanosecond budget always expires before depth 1 can complete.
	limits := SearchLimits{MaxDepth: 3, MoveTime: time.Nanosecond}

	if m, ok := eng.SearchWithLimits(b, board.White, limits); ok {
		t.Errorf("expected no move when the budget expires before depth 1, got %v", m)
	}
}

func TestIterativeDeepeningDepthsIncrease(t *testing.T) {
	b := board.Starting()
	eng := New(Skill3)

	var depths []int
	eng.OnInfo = func(info SearchInfo) {
		depths = append(depths, info.Depth)
	}

	m, ok := eng.SearchWithLimits(b, board.White, SearchLimits{MaxDepth: 3})
	if !ok {
		t.Fatal("expected a move from the starting position")
	}
	t.Log("best move:", m, "depths:", depths)

	if len(depths) != 3 {
		t.Fatalf("expected 3 completed depths, got %v", depths)
	}
	for i, d := range depths {
		if d != i+1 {
			t.Errorf("depth %d completed out of order: %v", d, depths)
		}
	}
}

func TestDeadlineAbortKeepsLastCompletedDepth(t *testing.T) {
	// An unreachable MaxDepth forces the budget to cut the search off
	// partway through a deeper iteration. The aborted depth must
	// contribute nothing: the returned move has to be the one reported
	// for the last depth that ran to completion.
	b := board.Starting()
	eng := New(Skill1)

	var infos []SearchInfo
	eng.OnInfo = func(info SearchInfo) {
		infos = append(infos, info)
	}

	limits := SearchLimits{MaxDepth: 50, MoveTime: 150 * time.Millisecond}
	m, ok := eng.SearchWithLimits(b, board.White, limits)
	if !ok {
		t.Fatal("expected a move from the starting position")
	}
	if len(infos) == 0 {
		t.Fatal("expected at least one completed depth")
	}

	last := infos[len(infos)-1]
	t.Logf("completed %d depths in budget, best %v", last.Depth, m)

	if last.Depth >= limits.MaxDepth {
		t.Fatalf("depth %d finished inside the budget; the abort path never ran", last.Depth)
	}
	if m != last.Move {
		t.Errorf("returned %v, want the last completed depth's move %v", m, last.Move)
	}
	for i, info := range infos {
		if info.Depth != i+1 {
			t.Errorf("completed depths out of order: %+v", infos)
		}
	}
}

func TestSetSkillDuringSearchIsSafe(t *testing.T) {
	// SetSkill arrives from the UI thread while a search worker is
	// running. The search must pin its limits at the start and return a
	// move untroubled by concurrent skill changes.
	b := board.Starting()
	eng := New(Skill2)

	done := make(chan struct{})
	var m board.Move
	var ok bool
	go func() {
		defer close(done)
		m, ok = eng.Search(b, board.White)
	}()

	for i := 0; ; i++ {
		select {
		case <-done:
			if !ok {
				t.Fatal("expected a move from the starting position")
			}
			t.Log("search survived", i, "skill changes, move:", m)
			if got := eng.Skill(); !got.Valid() {
				t.Errorf("skill left invalid: %d", got)
			}
			return
		default:
			eng.SetSkill(Skill1 + Skill(i%7))
		}
	}
}

func TestTieKeepsFirstGeneratedMove(t *testing.T) {
	// Depth-1 search without quiescence scores every quiet opening move
	// identically on material; the winner must be the first scoring move
	// in generation order on repeated runs.
	b := board.Starting()

	m1, ok1 := BestMove(b, board.White, 1, false)
	m2, ok2 := BestMove(b, board.White, 1, false)
	if !ok1 || !ok2 {
		t.Fatal("expected a move")
	}
	if m1 != m2 {
		t.Errorf("tie-break is not deterministic: %v vs %v", m1, m2)
	}
}

func TestSkillSettingsTable(t *testing.T) {
	if len(SkillSettings) != 7 {
		t.Fatalf("expected 7 skill levels, got %d", len(SkillSettings))
	}

	s1 := SkillSettings[Skill1]
	if s1.MaxDepth != 1 || s1.MoveTime != 200*time.Millisecond || s1.Quiescence {
		t.Errorf("unexpected Skill1 settings: %+v", s1)
	}
	s7 := SkillSettings[Skill7]
	if s7.MaxDepth != 7 || s7.MoveTime != 10*time.Second || !s7.Quiescence {
		t.Errorf("unexpected Skill7 settings: %+v", s7)
	}

	prev := 0
	for s := Skill1; s <= Skill7; s++ {
		if !s.Valid() {
			t.Errorf("skill %d should be valid", s)
		}
		if d := SkillSettings[s].MaxDepth; d <= prev {
			t.Errorf("skill depths should increase, got %d after %d", d, prev)
		} else {
			prev = d
		}
	}
	if Skill(0).Valid() || Skill(8).Valid() {
		t.Error("out-of-range skills must be invalid")
	}
}
