// Package mcptools exposes the match engine over the Model Context
// Protocol so LLM agents can coach a team end to end: set up a roster,
// place players, and play out actions one dice roll at a time.
package mcptools

import (
	"github.com/AndreasThinks/ankh-morpork-scramble/internal/engine"
	"github.com/AndreasThinks/ankh-morpork-scramble/internal/game"
	"github.com/AndreasThinks/ankh-morpork-scramble/internal/store"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Deps carries the shared collaborators every tool handler needs.
type Deps struct {
	Store   *store.Store
	Exec    *engine.Executor
	Rosters map[game.TeamType]game.Roster
}

// Register adds every scramble tool to the MCP server.
func Register(server *mcp.Server, deps *Deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_game",
		Description: "Creates a new match in the deployment phase and returns its id and team ids",
	}, CreateGameHandler(deps))
	mcp.AddTool(server, &mcp.Tool{
		Name:        "join_team",
		Description: "Claims one side of a match, optionally renaming the team",
	}, JoinTeamHandler(deps))
	mcp.AddTool(server, &mcp.Tool{
		Name:        "setup_team",
		Description: "Hires players for a team from its roster during deployment",
	}, SetupTeamHandler(deps))
	mcp.AddTool(server, &mcp.Tool{
		Name:        "place_players",
		Description: "Places a team's players on the pitch during deployment",
	}, PlacePlayersHandler(deps))
	mcp.AddTool(server, &mcp.Tool{
		Name:        "start_match",
		Description: "Starts the match once both teams have joined",
	}, StartMatchHandler(deps))
	mcp.AddTool(server, &mcp.Tool{
		Name:        "game_state",
		Description: "Returns a full snapshot of a match: teams, players, pitch, ball and turn state",
	}, GameStateHandler(deps))
	mcp.AddTool(server, &mcp.Tool{
		Name:        "submit_action",
		Description: "Executes one action (move, stand_up, scuffle, charge, hurl, quick_pass, boot) and returns every die rolled",
	}, SubmitActionHandler(deps))
	mcp.AddTool(server, &mcp.Tool{
		Name:        "end_turn",
		Description: "Voluntarily ends the active team's turn",
	}, EndTurnHandler(deps))
	mcp.AddTool(server, &mcp.Tool{
		Name:        "begin_second_half",
		Description: "Resumes play after the intermission",
	}, BeginSecondHalfHandler(deps))
	mcp.AddTool(server, &mcp.Tool{
		Name:        "valid_actions",
		Description: "Summarizes what the active team may still do this turn",
	}, ValidActionsHandler(deps))
	mcp.AddTool(server, &mcp.Tool{
		Name:        "suggest_path",
		Description: "Assesses the risk of moving a player to a target square without rolling dice",
	}, SuggestPathHandler(deps))
	mcp.AddTool(server, &mcp.Tool{
		Name:        "buy_player",
		Description: "Purchases a single roster position for a team during deployment",
	}, BuyPlayerHandler(deps))
	mcp.AddTool(server, &mcp.Tool{
		Name:        "buy_reroll",
		Description: "Purchases one team reroll during deployment",
	}, BuyRerollHandler(deps))
	mcp.AddTool(server, &mcp.Tool{
		Name:        "team_budget",
		Description: "Reports a team's treasury and purchase history",
	}, TeamBudgetHandler(deps))
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_positions",
		Description: "Lists a team's roster catalog with costs, stats and ownership counts",
	}, ListPositionsHandler(deps))
}
