package mcptools

import (
	"context"

	"github.com/AndreasThinks/ankh-morpork-scramble/internal/engine"
	"github.com/AndreasThinks/ankh-morpork-scramble/internal/game"
	"github.com/AndreasThinks/ankh-morpork-scramble/internal/service"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CreateGameInput is empty: a match always starts from the same shell.
type CreateGameInput struct{}

// CreateGameResult identifies the new match and its two team slots.
type CreateGameResult struct {
	GameID string `json:"game_id" jsonschema:"identifier of the new match"`
	Team1  string `json:"team1" jsonschema:"id of the first team slot"`
	Team2  string `json:"team2" jsonschema:"id of the second team slot"`
}

func CreateGameHandler(deps *Deps) mcp.ToolHandlerFor[CreateGameInput, CreateGameResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ CreateGameInput) (*mcp.CallToolResult, CreateGameResult, error) {
		gs, err := service.CreateGame(deps.Store)
		if err != nil {
			return nil, CreateGameResult{}, err
		}
		return nil, CreateGameResult{GameID: gs.GameID, Team1: gs.Team1.ID, Team2: gs.Team2.ID}, nil
	}
}

type JoinTeamInput struct {
	GameID   string `json:"game_id" jsonschema:"match identifier"`
	TeamID   string `json:"team_id" jsonschema:"team slot to claim (team1 or team2)"`
	TeamName string `json:"team_name,omitempty" jsonschema:"optional display name for the team"`
}

type StatusResult struct {
	Status string `json:"status" jsonschema:"confirmation of the operation"`
}

func JoinTeamHandler(deps *Deps) mcp.ToolHandlerFor[JoinTeamInput, StatusResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input JoinTeamInput) (*mcp.CallToolResult, StatusResult, error) {
		if err := service.JoinTeam(deps.Store, input.GameID, input.TeamID, input.TeamName); err != nil {
			return nil, StatusResult{}, err
		}
		return nil, StatusResult{Status: "joined"}, nil
	}
}

type SetupTeamInput struct {
	GameID         string         `json:"game_id" jsonschema:"match identifier"`
	TeamID         string         `json:"team_id" jsonschema:"team to configure"`
	TeamType       string         `json:"team_type" jsonschema:"roster to use (city_watch or unseen_university)"`
	PositionCounts map[string]int `json:"position_counts" jsonschema:"how many players to hire per roster position key"`
}

func SetupTeamHandler(deps *Deps) mcp.ToolHandlerFor[SetupTeamInput, StatusResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input SetupTeamInput) (*mcp.CallToolResult, StatusResult, error) {
		err := service.SetupTeam(deps.Store, deps.Rosters, input.GameID, input.TeamID, game.TeamType(input.TeamType), input.PositionCounts)
		if err != nil {
			return nil, StatusResult{}, err
		}
		return nil, StatusResult{Status: "configured"}, nil
	}
}

type PlacePlayersInput struct {
	GameID    string                   `json:"game_id" jsonschema:"match identifier"`
	TeamID    string                   `json:"team_id" jsonschema:"team whose players are being placed"`
	Positions map[string]game.Position `json:"positions" jsonschema:"pitch square per player id"`
}

func PlacePlayersHandler(deps *Deps) mcp.ToolHandlerFor[PlacePlayersInput, StatusResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input PlacePlayersInput) (*mcp.CallToolResult, StatusResult, error) {
		if err := service.PlacePlayers(deps.Store, input.GameID, input.TeamID, input.Positions); err != nil {
			return nil, StatusResult{}, err
		}
		return nil, StatusResult{Status: "placed"}, nil
	}
}

type GameIDInput struct {
	GameID string `json:"game_id" jsonschema:"match identifier"`
}

func StartMatchHandler(deps *Deps) mcp.ToolHandlerFor[GameIDInput, StatusResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input GameIDInput) (*mcp.CallToolResult, StatusResult, error) {
		if err := service.StartMatch(deps.Store, input.GameID); err != nil {
			return nil, StatusResult{}, err
		}
		return nil, StatusResult{Status: "started"}, nil
	}
}

func GameStateHandler(deps *Deps) mcp.ToolHandlerFor[GameIDInput, game.GameState] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input GameIDInput) (*mcp.CallToolResult, game.GameState, error) {
		gs, err := service.GetGame(deps.Store, input.GameID)
		if err != nil {
			return nil, game.GameState{}, err
		}
		return nil, *gs, nil
	}
}

type SubmitActionInput struct {
	GameID           string          `json:"game_id" jsonschema:"match identifier"`
	ActionType       string          `json:"action_type" jsonschema:"one of move, stand_up, scuffle, charge, hurl, quick_pass, boot"`
	PlayerID         string          `json:"player_id" jsonschema:"acting player"`
	Path             []game.Position `json:"path,omitempty" jsonschema:"squares to move through, in order"`
	TargetPosition   *game.Position  `json:"target_position,omitempty" jsonschema:"target square for hurl or boot"`
	TargetPlayerID   string          `json:"target_player_id,omitempty" jsonschema:"opponent targeted by scuffle, charge or boot"`
	TargetReceiverID string          `json:"target_receiver_id,omitempty" jsonschema:"teammate receiving a quick_pass"`
}

func SubmitActionHandler(deps *Deps) mcp.ToolHandlerFor[SubmitActionInput, game.ActionResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input SubmitActionInput) (*mcp.CallToolResult, game.ActionResult, error) {
		req := game.ActionRequest{
			ActionType:       game.ActionType(input.ActionType),
			PlayerID:         input.PlayerID,
			Path:             input.Path,
			TargetPosition:   input.TargetPosition,
			TargetPlayerID:   input.TargetPlayerID,
			TargetReceiverID: input.TargetReceiverID,
		}
		result, err := service.SubmitAction(deps.Store, deps.Exec, input.GameID, req)
		if err != nil {
			return nil, game.ActionResult{}, err
		}
		return nil, result, nil
	}
}

func EndTurnHandler(deps *Deps) mcp.ToolHandlerFor[GameIDInput, StatusResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input GameIDInput) (*mcp.CallToolResult, StatusResult, error) {
		if err := service.EndTurn(deps.Store, input.GameID); err != nil {
			return nil, StatusResult{}, err
		}
		return nil, StatusResult{Status: "turn ended"}, nil
	}
}

func BeginSecondHalfHandler(deps *Deps) mcp.ToolHandlerFor[GameIDInput, StatusResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input GameIDInput) (*mcp.CallToolResult, StatusResult, error) {
		if err := service.BeginSecondHalf(deps.Store, input.GameID); err != nil {
			return nil, StatusResult{}, err
		}
		return nil, StatusResult{Status: "second half"}, nil
	}
}

func ValidActionsHandler(deps *Deps) mcp.ToolHandlerFor[GameIDInput, game.ValidActions] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input GameIDInput) (*mcp.CallToolResult, game.ValidActions, error) {
		va, err := service.ValidActions(deps.Store, deps.Exec, input.GameID)
		if err != nil {
			return nil, game.ValidActions{}, err
		}
		return nil, va, nil
	}
}

type SuggestPathInput struct {
	GameID   string        `json:"game_id" jsonschema:"match identifier"`
	PlayerID string        `json:"player_id" jsonschema:"player to move"`
	Target   game.Position `json:"target" jsonschema:"destination square"`
}

func SuggestPathHandler(deps *Deps) mcp.ToolHandlerFor[SuggestPathInput, engine.PathSuggestion] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input SuggestPathInput) (*mcp.CallToolResult, engine.PathSuggestion, error) {
		suggestion, err := service.SuggestPath(deps.Store, deps.Exec, input.GameID, input.PlayerID, input.Target)
		if err != nil {
			return nil, engine.PathSuggestion{}, err
		}
		return nil, suggestion, nil
	}
}

type BuyPlayerInput struct {
	GameID   string `json:"game_id" jsonschema:"match identifier"`
	TeamID   string `json:"team_id" jsonschema:"purchasing team"`
	Position string `json:"position" jsonschema:"roster position key to buy"`
}

func BuyPlayerHandler(deps *Deps) mcp.ToolHandlerFor[BuyPlayerInput, game.Player] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input BuyPlayerInput) (*mcp.CallToolResult, game.Player, error) {
		player, err := service.BuyPlayer(deps.Store, deps.Rosters, input.GameID, input.TeamID, input.Position)
		if err != nil {
			return nil, game.Player{}, err
		}
		return nil, *player, nil
	}
}

type TeamIDInput struct {
	GameID string `json:"game_id" jsonschema:"match identifier"`
	TeamID string `json:"team_id" jsonschema:"team to inspect"`
}

func BuyRerollHandler(deps *Deps) mcp.ToolHandlerFor[TeamIDInput, StatusResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input TeamIDInput) (*mcp.CallToolResult, StatusResult, error) {
		if err := service.BuyReroll(deps.Store, deps.Rosters, input.GameID, input.TeamID); err != nil {
			return nil, StatusResult{}, err
		}
		return nil, StatusResult{Status: "reroll purchased"}, nil
	}
}

func TeamBudgetHandler(deps *Deps) mcp.ToolHandlerFor[TeamIDInput, service.BudgetStatus] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input TeamIDInput) (*mcp.CallToolResult, service.BudgetStatus, error) {
		status, err := service.TeamBudget(deps.Store, input.GameID, input.TeamID)
		if err != nil {
			return nil, service.BudgetStatus{}, err
		}
		return nil, status, nil
	}
}

// ListPositionsResult wraps the catalog so the tool output is an object.
type ListPositionsResult struct {
	Positions []service.PositionListing `json:"positions" jsonschema:"purchasable roster slots"`
}

func ListPositionsHandler(deps *Deps) mcp.ToolHandlerFor[TeamIDInput, ListPositionsResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input TeamIDInput) (*mcp.CallToolResult, ListPositionsResult, error) {
		listings, err := service.AvailablePositions(deps.Store, deps.Rosters, input.GameID, input.TeamID)
		if err != nil {
			return nil, ListPositionsResult{}, err
		}
		return nil, ListPositionsResult{Positions: listings}, nil
	}
}
