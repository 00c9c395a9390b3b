package storage

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/chesslab/tapchess/internal/board"
	"github.com/chesslab/tapchess/internal/engine"
)

func openTemp(t *testing.T) *Storage {
	t.Helper()
	s, err := NewStorageAt(t.TempDir())
	if err != nil {
		t.Fatalf("NewStorageAt: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPreferencesDefaultThenRoundTrip(t *testing.T) {
	s := openTemp(t)

	prefs, err := s.GetPreferences()
	if err != nil {
		t.Fatalf("GetPreferences: %v", err)
	}
	if diff := cmp.Diff(DefaultPreferences(), prefs); diff != "" {
		t.Errorf("fresh store prefs mismatch (-want +got):\n%s", diff)
	}

	prefs.VsAI = false
	prefs.Skill = engine.Skill7
	prefs.AIColor = board.White
	if err := s.SavePreferences(prefs); err != nil {
		t.Fatalf("SavePreferences: %v", err)
	}

	got, err := s.GetPreferences()
	if err != nil {
		t.Fatalf("GetPreferences after save: %v", err)
	}
	ignoreStamp := cmpopts.IgnoreFields(Preferences{}, "LastPlayed")
	if diff := cmp.Diff(prefs, got, ignoreStamp); diff != "" {
		t.Errorf("saved prefs mismatch (-want +got):\n%s", diff)
	}
	if got.LastPlayed.IsZero() {
		t.Error("SavePreferences should stamp LastPlayed")
	}
}

func TestInvalidSkillFallsBack(t *testing.T) {
	s := openTemp(t)

	if err := s.SavePreferences(Preferences{Skill: engine.Skill(99)}); err != nil {
		t.Fatalf("SavePreferences: %v", err)
	}
	got, err := s.GetPreferences()
	if err != nil {
		t.Fatalf("GetPreferences: %v", err)
	}
	if got.Skill != engine.Skill4 {
		t.Errorf("invalid stored skill should fall back to Skill4, got %d", got.Skill)
	}
}

func TestRecordGameAccumulates(t *testing.T) {
	s := openTemp(t)

	results := []Outcome{OutcomeWin, OutcomeWin, OutcomeLoss, OutcomeDraw}
	for _, r := range results {
		if err := s.RecordGame(engine.Skill3, r); err != nil {
			t.Fatalf("RecordGame: %v", err)
		}
	}
	if err := s.RecordGame(engine.Skill5, OutcomeWin); err != nil {
		t.Fatalf("RecordGame: %v", err)
	}

	stats, err := s.GetStats()
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	want := GameStats{BySkill: map[engine.Skill]SkillStats{
		engine.Skill3: {Wins: 2, Losses: 1, Draws: 1},
		engine.Skill5: {Wins: 1},
	}}
	if diff := cmp.Diff(want, stats); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
}

func TestSavedGameLifecycle(t *testing.T) {
	s := openTemp(t)

	if _, found, err := s.LoadGame(); err != nil || found {
		t.Fatalf("fresh store LoadGame = found=%v err=%v, want absent", found, err)
	}

	var rights board.CastlingRights
	rights.KingMoved[board.Black] = true
	saved := SavedGame{
		Placement:  board.StartPlacement,
		SideToMove: board.Black,
		Rights:     rights,
		VsAI:       true,
		AIColor:    board.White,
		Skill:      engine.Skill2,
	}
	if err := s.SaveGame(saved); err != nil {
		t.Fatalf("SaveGame: %v", err)
	}

	got, found, err := s.LoadGame()
	if err != nil || !found {
		t.Fatalf("LoadGame = found=%v err=%v, want present", found, err)
	}
	ignoreStamp := cmpopts.IgnoreFields(SavedGame{}, "SavedAt")
	if diff := cmp.Diff(saved, got, ignoreStamp); diff != "" {
		t.Errorf("saved game mismatch (-want +got):\n%s", diff)
	}

	if err := s.ClearSavedGame(); err != nil {
		t.Fatalf("ClearSavedGame: %v", err)
	}
	if _, found, _ := s.LoadGame(); found {
		t.Error("saved game should be gone after ClearSavedGame")
	}
	// Clearing an already-empty slot is not an error.
	if err := s.ClearSavedGame(); err != nil {
		t.Errorf("ClearSavedGame on empty store: %v", err)
	}
}

func TestFirstLaunch(t *testing.T) {
	s := openTemp(t)

	first, err := s.IsFirstLaunch()
	if err != nil {
		t.Fatalf("IsFirstLaunch: %v", err)
	}
	if !first {
		t.Error("fresh store should report first launch")
	}
	if err := s.MarkFirstLaunchComplete(); err != nil {
		t.Fatalf("MarkFirstLaunchComplete: %v", err)
	}
	first, err = s.IsFirstLaunch()
	if err != nil {
		t.Fatalf("IsFirstLaunch: %v", err)
	}
	if first {
		t.Error("store should not report first launch after marking")
	}
}
