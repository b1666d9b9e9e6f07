package service

import (
	"encoding/json"

	"github.com/AndreasThinks/ankh-morpork-scramble/internal/game"
)

// GetGame returns a detached snapshot of a match. The copy goes through
// JSON so callers can never mutate live state held by the store.
func GetGame(store GameStore, gameID string) (*game.GameState, error) {
	var snapshot game.GameState
	err := store.ViewGame(gameID, func(gs *game.GameState) error {
		raw, err := json.Marshal(gs)
		if err != nil {
			return err
		}
		return json.Unmarshal(raw, &snapshot)
	})
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// EventLog returns the most recent match events, newest last. A limit of
// zero or less returns the whole log.
func EventLog(store GameStore, gameID string, limit int) ([]string, error) {
	var events []string
	err := store.ViewGame(gameID, func(gs *game.GameState) error {
		log := gs.EventLog
		if limit > 0 && len(log) > limit {
			log = log[len(log)-limit:]
		}
		events = append([]string(nil), log...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}
