package storage

import (
	"encoding/json"
	"fmt"
	"time"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/chesslab/tapchess/internal/board"
	"github.com/chesslab/tapchess/internal/engine"
)

const (
	keyPreferences = "preferences"
	keyStats       = "stats"
	keySavedGame   = "saved_game"
	keyFirstLaunch = "first_launch"
)

// Preferences holds the user-tunable settings that survive restarts.
type Preferences struct {
	VsAI       bool         `json:"vs_ai"`
	AIColor    board.Color  `json:"ai_color"`
	Skill      engine.Skill `json:"skill"`
	Sound      bool         `json:"sound"`
	LastPlayed time.Time    `json:"last_played"`
}

// DefaultPreferences returns the settings used on first launch.
func DefaultPreferences() Preferences {
	return Preferences{
		VsAI:    true,
		AIColor: board.Black,
		Skill:   engine.Skill4,
		Sound:   true,
	}
}

// SkillStats counts finished games against the engine at one skill level.
type SkillStats struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Draws  int `json:"draws"`
}

// GameStats aggregates results per skill level, keyed by the skill number.
type GameStats struct {
	BySkill map[engine.Skill]SkillStats `json:"by_skill"`
}

// Outcome is the human player's result in a finished game.
type Outcome int

const (
	OutcomeWin Outcome = iota
	OutcomeLoss
	OutcomeDraw
)

// SavedGame is a resumable snapshot of an in-progress game.
type SavedGame struct {
	Placement  string               `json:"placement"`
	SideToMove board.Color          `json:"side_to_move"`
	Rights     board.CastlingRights `json:"rights"`
	VsAI       bool                 `json:"vs_ai"`
	AIColor    board.Color          `json:"ai_color"`
	Skill      engine.Skill         `json:"skill"`
	SavedAt    time.Time            `json:"saved_at"`
}

// Storage wraps a BadgerDB instance holding all persisted state.
type Storage struct {
	db *badger.DB
}

// NewStorage opens the database in the platform data directory.
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, fmt.Errorf("getting database directory: %w", err)
	}
	return NewStorageAt(dbDir)
}

// NewStorageAt opens the database in an explicit directory.
func NewStorageAt(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return &Storage{db: db}, nil
}

// Close closes the underlying database.
func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) setJSON(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", key, err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

func (s *Storage) getJSON(key string, v interface{}) (bool, error) {
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})
	if err == badger.ErrKeyNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetPreferences retrieves preferences, falling back to defaults when the
// key has never been written.
func (s *Storage) GetPreferences() (Preferences, error) {
	var prefs Preferences
	found, err := s.getJSON(keyPreferences, &prefs)
	if err != nil {
		return DefaultPreferences(), fmt.Errorf("getting preferences: %w", err)
	}
	if !found {
		return DefaultPreferences(), nil
	}
	if !prefs.Skill.Valid() {
		prefs.Skill = engine.Skill4
	}
	return prefs, nil
}

// SavePreferences persists preferences, stamping LastPlayed.
func (s *Storage) SavePreferences(prefs Preferences) error {
	prefs.LastPlayed = time.Now()
	if err := s.setJSON(keyPreferences, prefs); err != nil {
		return fmt.Errorf("saving preferences: %w", err)
	}
	return nil
}

// GetStats retrieves the aggregated game statistics.
func (s *Storage) GetStats() (GameStats, error) {
	stats := GameStats{BySkill: make(map[engine.Skill]SkillStats)}
	found, err := s.getJSON(keyStats, &stats)
	if err != nil {
		return stats, fmt.Errorf("getting stats: %w", err)
	}
	if !found || stats.BySkill == nil {
		stats.BySkill = make(map[engine.Skill]SkillStats)
	}
	return stats, nil
}

// RecordGame adds one finished game at the given skill level to the stats.
func (s *Storage) RecordGame(skill engine.Skill, outcome Outcome) error {
	stats, err := s.GetStats()
	if err != nil {
		return err
	}

	entry := stats.BySkill[skill]
	switch outcome {
	case OutcomeWin:
		entry.Wins++
	case OutcomeLoss:
		entry.Losses++
	case OutcomeDraw:
		entry.Draws++
	}
	stats.BySkill[skill] = entry

	if err := s.setJSON(keyStats, stats); err != nil {
		return fmt.Errorf("saving stats: %w", err)
	}
	return nil
}

// SaveGame persists a resumable game snapshot, replacing any previous one.
func (s *Storage) SaveGame(g SavedGame) error {
	g.SavedAt = time.Now()
	if err := s.setJSON(keySavedGame, g); err != nil {
		return fmt.Errorf("saving game: %w", err)
	}
	return nil
}

// LoadGame retrieves the saved game, if any.
func (s *Storage) LoadGame() (SavedGame, bool, error) {
	var g SavedGame
	found, err := s.getJSON(keySavedGame, &g)
	if err != nil {
		return g, false, fmt.Errorf("loading game: %w", err)
	}
	return g, found, nil
}

// ClearSavedGame removes the saved game, e.g. once it finishes.
func (s *Storage) ClearSavedGame() error {
	err := s.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete([]byte(keySavedGame))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		return err
	})
	if err != nil {
		return fmt.Errorf("clearing saved game: %w", err)
	}
	return nil
}

// IsFirstLaunch reports whether the application has never run before.
func (s *Storage) IsFirstLaunch() (bool, error) {
	var marked bool
	found, err := s.getJSON(keyFirstLaunch, &marked)
	if err != nil {
		return false, fmt.Errorf("checking first launch: %w", err)
	}
	return !found, nil
}

// MarkFirstLaunchComplete records that the first launch happened.
func (s *Storage) MarkFirstLaunchComplete() error {
	if err := s.setJSON(keyFirstLaunch, true); err != nil {
		return fmt.Errorf("marking first launch: %w", err)
	}
	return nil
}
