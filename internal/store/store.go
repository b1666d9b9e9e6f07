package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/AndreasThinks/ankh-morpork-scramble/internal/game"
	"github.com/AndreasThinks/ankh-morpork-scramble/internal/logging"
	"github.com/AndreasThinks/ankh-morpork-scramble/internal/service"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// Store keeps live matches in memory and mirrors every mutation to the
// database as a JSON snapshot. Each match has its own lock, so actions on
// different games never contend; actions on the same game serialize, which
// is what gives every UpdateGame callback an exclusive, consistent view.
//
// A nil *gorm.DB is allowed: the store then runs memory-only, which the
// stdio MCP server and tests use.
type Store struct {
	db *gorm.DB

	mu    sync.Mutex
	games map[string]*gameEntry

	// loads deduplicates concurrent snapshot loads for the same game so a
	// burst of requests after a restart hits the database once.
	loads singleflight.Group
}

type gameEntry struct {
	mu    sync.Mutex
	state *game.GameState
}

// New creates a store over an optional database handle.
func New(db *gorm.DB) *Store {
	return &Store{db: db, games: make(map[string]*gameEntry)}
}

var _ service.GameStore = (*Store)(nil)

// CreateGame registers a new match and persists its first snapshot.
func (s *Store) CreateGame(gs *game.GameState) error {
	s.mu.Lock()
	if _, exists := s.games[gs.GameID]; exists {
		s.mu.Unlock()
		return fmt.Errorf("game %s already exists", gs.GameID)
	}
	s.games[gs.GameID] = &gameEntry{state: gs}
	s.mu.Unlock()

	return s.persist(gs)
}

// UpdateGame runs fn with exclusive access to the match state and persists
// the result when fn succeeds. State changes made by a failing fn are still
// in memory; callers must treat their fn as all-or-nothing.
func (s *Store) UpdateGame(gameID string, fn func(*game.GameState) error) error {
	entry, err := s.entry(gameID)
	if err != nil {
		return err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	if err := fn(entry.state); err != nil {
		return err
	}
	return s.persist(entry.state)
}

// ViewGame runs fn with shared access semantics: same lock as UpdateGame,
// but nothing is written back.
func (s *Store) ViewGame(gameID string, fn func(*game.GameState) error) error {
	entry, err := s.entry(gameID)
	if err != nil {
		return err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	return fn(entry.state)
}

// entry returns the live entry for a game, loading it from the database on
// first access after a restart.
func (s *Store) entry(gameID string) (*gameEntry, error) {
	s.mu.Lock()
	if e, ok := s.games[gameID]; ok {
		s.mu.Unlock()
		return e, nil
	}
	s.mu.Unlock()

	if s.db == nil {
		return nil, service.ErrGameNotFound
	}

	v, err, _ := s.loads.Do(gameID, func() (interface{}, error) {
		// Re-check under the map lock; another loader may have won.
		s.mu.Lock()
		if e, ok := s.games[gameID]; ok {
			s.mu.Unlock()
			return e, nil
		}
		s.mu.Unlock()

		gs, err := s.loadSnapshot(gameID)
		if err != nil {
			return nil, err
		}
		e := &gameEntry{state: gs}
		s.mu.Lock()
		s.games[gameID] = e
		s.mu.Unlock()
		return e, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*gameEntry), nil
}

func (s *Store) loadSnapshot(gameID string) (*game.GameState, error) {
	var rec GameRecord
	if err := s.db.Where("game_id = ?", gameID).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrGameNotFound
		}
		return nil, err
	}
	var gs game.GameState
	if err := json.Unmarshal(rec.Snapshot, &gs); err != nil {
		return nil, fmt.Errorf("decode snapshot for game %s: %w", gameID, err)
	}
	return &gs, nil
}

func (s *Store) persist(gs *game.GameState) error {
	if s.db == nil {
		return nil
	}
	snapshot, err := json.Marshal(gs)
	if err != nil {
		return fmt.Errorf("encode snapshot for game %s: %w", gs.GameID, err)
	}

	var rec GameRecord
	err = s.db.Where("game_id = ?", gs.GameID).First(&rec).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		rec = GameRecord{GameID: gs.GameID}
	case err != nil:
		return err
	}
	rec.Phase = string(gs.Phase)
	rec.Team1Name = gs.Team1.Name
	rec.Team2Name = gs.Team2.Name
	rec.Team1Score = gs.Team1.Score
	rec.Team2Score = gs.Team2.Score
	rec.Snapshot = snapshot
	return s.db.Save(&rec).Error
}

// RecordMatchResult accumulates a concluded match into both team profiles.
func (s *Store) RecordMatchResult(gs *game.GameState) error {
	if s.db == nil {
		return nil
	}
	if gs.Phase != game.PhaseConcluded {
		return fmt.Errorf("game %s is not concluded", gs.GameID)
	}

	type result struct {
		name       string
		won, drawn bool
		points     int
	}
	draw := gs.Team1.Score == gs.Team2.Score
	results := []result{
		{name: gs.Team1.Name, won: gs.Team1.Score > gs.Team2.Score, drawn: draw, points: gs.Team1.Score},
		{name: gs.Team2.Name, won: gs.Team2.Score > gs.Team1.Score, drawn: draw, points: gs.Team2.Score},
	}
	for _, r := range results {
		var profile TeamProfile
		err := s.db.Where("team_name = ?", r.name).First(&profile).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			profile = TeamProfile{TeamName: r.name}
		case err != nil:
			return err
		}
		profile.MatchesPlayed++
		if r.won {
			profile.Wins++
		}
		if r.drawn {
			profile.Draws++
		}
		profile.PointsScored += r.points
		if err := s.db.Save(&profile).Error; err != nil {
			return err
		}
	}
	logging.Info("match result recorded", logging.Fields{
		"game_id": gs.GameID,
		"team1":   gs.Team1.Score,
		"team2":   gs.Team2.Score,
	})
	return nil
}

// ListGames returns the most recently updated match records, newest first.
func (s *Store) ListGames(limit int) ([]GameRecord, error) {
	if s.db == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}
	var records []GameRecord
	if err := s.db.Order("updated_at desc").Limit(limit).Find(&records).Error; err != nil {
		return nil, err
	}
	// Snapshots are heavy and callers listing games never need them.
	for i := range records {
		records[i].Snapshot = nil
	}
	return records, nil
}

// TopTeams returns team profiles ordered by wins, then points scored.
func (s *Store) TopTeams(limit int) ([]TeamProfile, error) {
	if s.db == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 10
	}
	var profiles []TeamProfile
	if err := s.db.Model(&TeamProfile{}).
		Order("wins DESC").
		Order("points_scored DESC").
		Limit(limit).
		Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}
