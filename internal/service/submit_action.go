package service

import (
	"errors"

	"github.com/AndreasThinks/ankh-morpork-scramble/internal/engine"
	"github.com/AndreasThinks/ankh-morpork-scramble/internal/game"
	"github.com/AndreasThinks/ankh-morpork-scramble/internal/logging"
)

var ErrNoActiveTurn = errors.New("no active turn")

// SubmitAction validates and executes one action for the active team, then
// applies the hosting-side consequences the engine delegates: scoring
// detection after every action and the turn switch when the action signals
// a turnover. The first action of a match moves the opening scramble into
// active play.
func SubmitAction(store GameStore, exec *engine.Executor, gameID string, req game.ActionRequest) (game.ActionResult, error) {
	var result game.ActionResult

	err := store.UpdateGame(gameID, func(gs *game.GameState) error {
		switch gs.Phase {
		case game.PhaseOpeningScramble:
			if err := gs.BeginPlay(); err != nil {
				return err
			}
		case game.PhaseActivePlay:
			// in play, proceed
		case game.PhaseConcluded:
			return ErrMatchConcluded
		default:
			return ErrMatchNotStarted
		}
		if gs.Turn == nil {
			return ErrNoActiveTurn
		}

		// Unknown actor is caller misuse; wrong team is a rule denial.
		if _, err := gs.Player(req.PlayerID); err != nil {
			return err
		}
		if !gs.IsOnActiveTeam(req.PlayerID) {
			result = game.ActionResult{Success: false, Message: ErrNotActiveTeam.Error()}
			return nil
		}

		executed, err := exec.Execute(gs, req)
		if err != nil {
			return err
		}
		result = executed

		if scorer := gs.CheckScoring(); scorer != "" {
			logging.Info("score", logging.Fields{
				"game_id": gameID,
				"team_id": scorer,
				"team1":   gs.Team1.Score,
				"team2":   gs.Team2.Score,
			})
		}

		if result.Turnover {
			if err := gs.SwitchTurn(); err != nil {
				return err
			}
			gs.AddEvent("Turnover!")
			if gs.Phase == game.PhaseConcluded {
				if err := store.RecordMatchResult(gs); err != nil {
					logging.Error("failed to record match result", err, logging.Fields{"game_id": gameID})
				}
			}
		}
		return nil
	})
	if err != nil {
		return game.ActionResult{}, err
	}
	return result, nil
}
