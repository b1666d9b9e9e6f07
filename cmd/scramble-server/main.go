package main

import (
	"github.com/AndreasThinks/ankh-morpork-scramble/internal/api"
	"github.com/AndreasThinks/ankh-morpork-scramble/internal/config"
	"github.com/AndreasThinks/ankh-morpork-scramble/internal/constants"
	"github.com/AndreasThinks/ankh-morpork-scramble/internal/engine"
	"github.com/AndreasThinks/ankh-morpork-scramble/internal/logging"
	"github.com/AndreasThinks/ankh-morpork-scramble/internal/store"

	"github.com/gin-gonic/gin"
)

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		logging.Fatal("Invalid environment configuration", err, nil)
	}

	rosters, err := config.LoadRosters(settings.ConfigPath)
	if err != nil {
		logging.Fatal("Missing or invalid roster configuration", err, logging.Fields{
			"config_path": settings.ConfigPath,
			"hint":        "provide a JSON file with a 'roster_list' array (team_type, reroll_cost, max_rerolls, positions)",
		})
	}

	db, err := store.OpenAndMigrate(settings.DatabasePath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	st := store.New(db)
	exec := engine.NewExecutor(nil)
	handler := api.NewGameHandler(st, exec, rosters)

	router := gin.Default()

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteVersion, api.Version)
		apiRoutes.GET(constants.RouteLeaderboard, handler.ListLeaderboard)
		apiRoutes.GET(constants.RouteRecentGames, handler.ListRecentGames)

		apiRoutes.POST(constants.RouteGames, handler.CreateGame)
		apiRoutes.GET(constants.RouteGameByID, handler.GetGame)
		apiRoutes.POST(constants.RouteGameJoin, handler.JoinTeam)
		apiRoutes.POST(constants.RouteGameSetup, handler.SetupTeam)
		apiRoutes.POST(constants.RouteGamePlace, handler.PlacePlayers)
		apiRoutes.POST(constants.RouteGameStart, handler.StartMatch)
		apiRoutes.POST(constants.RouteGameAction, handler.SubmitAction)
		apiRoutes.POST(constants.RouteGameEndTurn, handler.EndTurn)
		apiRoutes.POST(constants.RouteGameSecondHalf, handler.BeginSecondHalf)
		apiRoutes.POST(constants.RouteGameReset, handler.ResetGame)
		apiRoutes.GET(constants.RouteGameEvents, handler.GetEvents)
		apiRoutes.GET(constants.RouteGameValid, handler.GetValidActions)
		apiRoutes.POST(constants.RouteGamePath, handler.SuggestPath)

		apiRoutes.GET(constants.RouteGameBudget, handler.GetBudget)
		apiRoutes.GET(constants.RouteGamePositions, handler.GetPositions)
		apiRoutes.POST(constants.RouteGameBuyPlayer, handler.BuyPlayer)
		apiRoutes.POST(constants.RouteGameBuyReroll, handler.BuyReroll)
	}

	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: settings.Address})
	if err := router.Run(settings.Address); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
