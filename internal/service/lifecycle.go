package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sort"

	"github.com/AndreasThinks/ankh-morpork-scramble/internal/game"
	"github.com/AndreasThinks/ankh-morpork-scramble/internal/logging"
)

// newGameID returns a short random hex identifier for a match.
func newGameID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand only fails when the platform source is broken
		panic(err)
	}
	return hex.EncodeToString(b)
}

// CreateGame registers a new match in the deployment phase with the two
// default team shells. Rosters and players are configured afterwards.
func CreateGame(store GameStore) (*game.GameState, error) {
	gs := game.NewGameState(
		newGameID(),
		game.NewTeam("team1", "Team 1", game.TeamCityWatch),
		game.NewTeam("team2", "Team 2", game.TeamUnseenUniversity),
	)
	if err := store.CreateGame(gs); err != nil {
		return nil, err
	}
	logging.Info("created new game", logging.Fields{"game_id": gs.GameID})
	return gs, nil
}

// JoinTeam marks a side as joined; the match can start once both have.
func JoinTeam(store GameStore, gameID, teamID, teamName string) error {
	return store.UpdateGame(gameID, func(gs *game.GameState) error {
		team, err := gs.TeamByID(teamID)
		if err != nil {
			return ErrUnknownTeam
		}
		if teamName != "" {
			team.Name = teamName
		}
		switch teamID {
		case gs.Team1.ID:
			gs.Team1Joined = true
		case gs.Team2.ID:
			gs.Team2Joined = true
		}
		gs.AddEvent(fmt.Sprintf("%s joined the match", team.Name))
		return nil
	})
}

// SetupTeam creates players for a team from roster position counts. Only
// allowed during deployment.
func SetupTeam(store GameStore, rosters map[game.TeamType]game.Roster, gameID, teamID string, teamType game.TeamType, positionCounts map[string]int) error {
	return store.UpdateGame(gameID, func(gs *game.GameState) error {
		if gs.Phase != game.PhaseDeployment {
			return ErrNotDeployment
		}
		team, err := gs.TeamByID(teamID)
		if err != nil {
			return ErrUnknownTeam
		}
		roster, ok := rosters[teamType]
		if !ok {
			return ErrUnknownRoster
		}
		team.TeamType = teamType

		// Stable hiring order so player numbering is deterministic.
		keys := make([]string, 0, len(positionCounts))
		for positionKey := range positionCounts {
			keys = append(keys, positionKey)
		}
		sort.Strings(keys)
		for _, positionKey := range keys {
			for i := 0; i < positionCounts[positionKey]; i++ {
				if _, err := addRosteredPlayer(gs, team, roster, positionKey); err != nil {
					return err
				}
			}
		}

		logging.Info("configured team", logging.Fields{
			"game_id":   gameID,
			"team_id":   teamID,
			"team_type": string(teamType),
			"players":   len(team.PlayerIDs),
		})
		return nil
	})
}

// PlacePlayers puts a team's players on the pitch during deployment.
func PlacePlayers(store GameStore, gameID, teamID string, positions map[string]game.Position) error {
	return store.UpdateGame(gameID, func(gs *game.GameState) error {
		if gs.Phase != game.PhaseDeployment {
			return ErrNotDeployment
		}
		for playerID, pos := range positions {
			player, err := gs.Player(playerID)
			if err != nil {
				return err
			}
			if player.TeamID != teamID {
				return fmt.Errorf("player %s does not belong to team %s", playerID, teamID)
			}
			if !pos.InBounds() {
				return fmt.Errorf("position (%d,%d) is outside pitch bounds", pos.X, pos.Y)
			}
			if err := gs.Pitch.PlaceOnPitch(playerID, pos); err != nil {
				return err
			}
		}
		logging.Info("placed players", logging.Fields{
			"game_id": gameID,
			"team_id": teamID,
			"count":   len(positions),
		})
		return nil
	})
}

// StartMatch begins the opening scramble: both teams joined, turn state
// initialized, ball at the pitch center.
func StartMatch(store GameStore, gameID string) error {
	return store.UpdateGame(gameID, func(gs *game.GameState) error {
		if err := gs.StartMatch(); err != nil {
			return err
		}
		logging.Info("match started", logging.Fields{
			"game_id": gameID,
			"team1":   gs.Team1.Name,
			"team2":   gs.Team2.Name,
		})
		return nil
	})
}

// EndTurn hands control to the other team. A concluded match is persisted
// to the results table.
func EndTurn(store GameStore, gameID string) error {
	return store.UpdateGame(gameID, func(gs *game.GameState) error {
		if err := gs.SwitchTurn(); err != nil {
			return err
		}
		if gs.Phase == game.PhaseConcluded {
			if err := store.RecordMatchResult(gs); err != nil {
				logging.Error("failed to record match result", err, logging.Fields{"game_id": gameID})
			}
			return nil
		}
		active, err := gs.ActiveTeam()
		if err != nil {
			return err
		}
		gs.AddEvent(fmt.Sprintf("Turn ended. Now %s's turn", active.Name))
		return nil
	})
}

// BeginSecondHalf resumes play after the intermission.
func BeginSecondHalf(store GameStore, gameID string) error {
	return store.UpdateGame(gameID, func(gs *game.GameState) error {
		return gs.BeginSecondHalf()
	})
}

// ResetGame returns a match to the deployment phase, keeping join status
// and the event log.
func ResetGame(store GameStore, gameID string) error {
	return store.UpdateGame(gameID, func(gs *game.GameState) error {
		gs.ResetToDeployment()
		return nil
	})
}
