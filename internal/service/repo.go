package service

import (
	"errors"

	"github.com/AndreasThinks/ankh-morpork-scramble/internal/game"
)

// GameStore is the minimal store interface required by the service layer.
// Using a small interface simplifies testing. UpdateGame and ViewGame must
// serialize callbacks per game id: the engine's invariants only hold when at
// most one action mutates a game instance at a time.
type GameStore interface {
	CreateGame(g *game.GameState) error
	UpdateGame(id string, fn func(*game.GameState) error) error
	ViewGame(id string, fn func(*game.GameState) error) error
	RecordMatchResult(g *game.GameState) error
}

var (
	ErrGameNotFound     = errors.New("game not found")
	ErrMatchNotStarted  = errors.New("match has not started")
	ErrMatchConcluded   = errors.New("match has concluded")
	ErrNotDeployment    = errors.New("only allowed during the deployment phase")
	ErrNotActiveTeam    = errors.New("player is not on the active team")
	ErrUnknownTeam      = errors.New("unknown team")
	ErrUnknownRoster    = errors.New("unknown roster")
	ErrUnknownPosition  = errors.New("unknown roster position")
	ErrPositionLimitHit = errors.New("roster position limit reached")
)
