package service

import (
	"fmt"
	"sort"

	"github.com/AndreasThinks/ankh-morpork-scramble/internal/game"
	"github.com/AndreasThinks/ankh-morpork-scramble/internal/logging"
)

// addRosteredPlayer debits the team treasury for one roster position and
// creates the player. Enforces the position's quantity cap.
func addRosteredPlayer(gs *game.GameState, team *game.Team, roster game.Roster, positionKey string) (*game.Player, error) {
	arch, ok := roster.Positions[positionKey]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPosition, positionKey)
	}

	owned := 0
	for _, id := range team.PlayerIDs {
		if p, err := gs.Player(id); err == nil && p.Archetype.Role == arch.Role {
			owned++
		}
	}
	if owned >= arch.MaxQuantity {
		return nil, fmt.Errorf("%w: at most %d %s", ErrPositionLimitHit, arch.MaxQuantity, arch.Role)
	}

	if err := team.PurchaseItem(arch.Role, arch.Cost); err != nil {
		return nil, err
	}

	number := len(team.PlayerIDs) + 1
	playerID := fmt.Sprintf("%s_player_%d", team.ID, len(team.PlayerIDs))
	player := game.NewPlayer(playerID, team.ID, arch, number)
	gs.Players[playerID] = player
	team.PlayerIDs = append(team.PlayerIDs, playerID)
	return player, nil
}

// BuyPlayer purchases a single roster position for a team during deployment.
func BuyPlayer(store GameStore, rosters map[game.TeamType]game.Roster, gameID, teamID, positionKey string) (*game.Player, error) {
	var bought *game.Player
	err := store.UpdateGame(gameID, func(gs *game.GameState) error {
		if gs.Phase != game.PhaseDeployment {
			return ErrNotDeployment
		}
		team, err := gs.TeamByID(teamID)
		if err != nil {
			return ErrUnknownTeam
		}
		roster, ok := rosters[team.TeamType]
		if !ok {
			return ErrUnknownRoster
		}
		bought, err = addRosteredPlayer(gs, team, roster, positionKey)
		if err != nil {
			return err
		}
		gs.AddEvent(fmt.Sprintf("%s hired %s", team.Name, bought.DisplayName()))
		logging.Info("player purchased", logging.Fields{
			"game_id":   gameID,
			"team_id":   teamID,
			"position":  positionKey,
			"remaining": team.BudgetRemaining(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return bought, nil
}

// BuyReroll purchases one team reroll during deployment.
func BuyReroll(store GameStore, rosters map[game.TeamType]game.Roster, gameID, teamID string) error {
	return store.UpdateGame(gameID, func(gs *game.GameState) error {
		if gs.Phase != game.PhaseDeployment {
			return ErrNotDeployment
		}
		team, err := gs.TeamByID(teamID)
		if err != nil {
			return ErrUnknownTeam
		}
		roster, ok := rosters[team.TeamType]
		if !ok {
			return ErrUnknownRoster
		}
		if err := team.PurchaseReroll(roster.RerollCost, roster.MaxRerolls); err != nil {
			return err
		}
		gs.AddEvent(fmt.Sprintf("%s bought a team reroll", team.Name))
		return nil
	})
}

// BudgetStatus is a treasury summary for one team.
type BudgetStatus struct {
	TeamID    string   `json:"team_id"`
	Initial   int      `json:"initial"`
	Spent     int      `json:"spent"`
	Remaining int      `json:"remaining"`
	Rerolls   int      `json:"rerolls"`
	Purchases []string `json:"purchases"`
}

// TeamBudget reports a team's treasury and purchase history.
func TeamBudget(store GameStore, gameID, teamID string) (BudgetStatus, error) {
	var status BudgetStatus
	err := store.ViewGame(gameID, func(gs *game.GameState) error {
		team, err := gs.TeamByID(teamID)
		if err != nil {
			return ErrUnknownTeam
		}
		status = BudgetStatus{
			TeamID:    team.ID,
			Initial:   team.BudgetInitial,
			Spent:     team.BudgetSpent,
			Remaining: team.BudgetRemaining(),
			Rerolls:   team.RerollsTotal,
			Purchases: append([]string(nil), team.PurchaseHistory...),
		}
		return nil
	})
	return status, err
}

// PositionListing describes one purchasable roster slot.
type PositionListing struct {
	Key         string           `json:"key"`
	Role        string           `json:"role"`
	Cost        int              `json:"cost"`
	MaxQuantity int              `json:"max_quantity"`
	Owned       int              `json:"owned"`
	MA          int              `json:"ma"`
	ST          int              `json:"st"`
	AG          int              `json:"ag"`
	PA          int              `json:"pa"`
	AV          int              `json:"av"`
	Skills      []game.SkillType `json:"skills,omitempty"`
}

// AvailablePositions lists a team's roster catalog with current ownership
// counts, sorted by cost then key for stable output.
func AvailablePositions(store GameStore, rosters map[game.TeamType]game.Roster, gameID, teamID string) ([]PositionListing, error) {
	var listings []PositionListing
	err := store.ViewGame(gameID, func(gs *game.GameState) error {
		team, err := gs.TeamByID(teamID)
		if err != nil {
			return ErrUnknownTeam
		}
		roster, ok := rosters[team.TeamType]
		if !ok {
			return ErrUnknownRoster
		}

		ownedByRole := map[string]int{}
		for _, id := range team.PlayerIDs {
			if p, perr := gs.Player(id); perr == nil {
				ownedByRole[p.Archetype.Role]++
			}
		}

		for key, arch := range roster.Positions {
			listings = append(listings, PositionListing{
				Key:         key,
				Role:        arch.Role,
				Cost:        arch.Cost,
				MaxQuantity: arch.MaxQuantity,
				Owned:       ownedByRole[arch.Role],
				MA:          arch.MA,
				ST:          arch.ST,
				AG:          arch.AG,
				PA:          arch.PA,
				AV:          arch.AV,
				Skills:      arch.Skills,
			})
		}
		sort.Slice(listings, func(i, j int) bool {
			if listings[i].Cost != listings[j].Cost {
				return listings[i].Cost < listings[j].Cost
			}
			return listings[i].Key < listings[j].Key
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return listings, nil
}
