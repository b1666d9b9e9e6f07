package service

import (
	"fmt"
	"sort"

	"github.com/AndreasThinks/ankh-morpork-scramble/internal/engine"
	"github.com/AndreasThinks/ankh-morpork-scramble/internal/game"
)

// ValidActions summarizes what the active team may still do this turn,
// without rolling any dice.
func ValidActions(store GameStore, exec *engine.Executor, gameID string) (game.ValidActions, error) {
	var va game.ValidActions
	err := store.ViewGame(gameID, func(gs *game.GameState) error {
		va.Phase = string(gs.Phase)
		if gs.Turn == nil {
			return nil
		}
		va.CurrentTeam = gs.Turn.ActiveTeamID
		va.CanCharge = !gs.Turn.ChargeUsed
		va.CanHurl = !gs.Turn.HurlUsed
		va.CanQuickPass = !gs.Turn.QuickPassUsed
		va.CanBoot = !gs.Turn.BootUsed

		va.BallCarrier = gs.Pitch.BallCarrier
		va.BallOnGround = gs.Pitch.BallCarrier == "" && gs.Pitch.BallPosition != nil
		if gs.Pitch.BallPosition != nil {
			pos := *gs.Pitch.BallPosition
			va.BallPosition = &pos
		}

		combat := exec.Combat()
		va.BlockableTargets = map[string][]string{}
		for _, p := range gs.TeamPlayers(gs.Turn.ActiveTeamID) {
			if p.HasActed || !p.IsActive() {
				continue
			}
			va.MovablePlayers = append(va.MovablePlayers, p.ID)

			if !p.IsStanding() {
				continue
			}
			pos, onPitch := gs.Pitch.PositionOf(p.ID)
			if !onPitch {
				continue
			}
			for _, otherID := range gs.Pitch.AdjacentPlayers(pos) {
				other, err := gs.Player(otherID)
				if err != nil || other.TeamID == p.TeamID {
					continue
				}
				if ok, _ := combat.CanBlock(gs, p, other); ok {
					va.BlockableTargets[p.ID] = append(va.BlockableTargets[p.ID], otherID)
				}
			}
		}
		sort.Strings(va.MovablePlayers)
		for _, targets := range va.BlockableTargets {
			sort.Strings(targets)
		}
		return nil
	})
	if err != nil {
		return game.ValidActions{}, err
	}
	return va, nil
}

// SuggestPath runs the advisory path assessment for one player toward a
// target square. It never mutates game state or rolls dice.
func SuggestPath(store GameStore, exec *engine.Executor, gameID, playerID string, target game.Position) (engine.PathSuggestion, error) {
	var suggestion engine.PathSuggestion
	err := store.ViewGame(gameID, func(gs *game.GameState) error {
		if !target.InBounds() {
			return fmt.Errorf("target (%d,%d) is outside pitch bounds", target.X, target.Y)
		}
		var err error
		suggestion, err = exec.PathFinder().SuggestPath(gs, playerID, target)
		return err
	})
	if err != nil {
		return engine.PathSuggestion{}, err
	}
	return suggestion, nil
}
