package api

import (
	"net/http"
	"unicode/utf8"

	"github.com/AndreasThinks/ankh-morpork-scramble/internal/constants"
	"github.com/AndreasThinks/ankh-morpork-scramble/internal/game"
	"github.com/AndreasThinks/ankh-morpork-scramble/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateGame creates a new match in the deployment phase.
func (h *GameHandler) CreateGame(c *gin.Context) {
	gs, err := service.CreateGame(h.store)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateGame})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"game_id": gs.GameID,
		"team1":   gs.Team1.ID,
		"team2":   gs.Team2.ID,
	})
}

type JoinTeamPayload struct {
	TeamID   string `json:"team_id"`
	TeamName string `json:"team_name"`
}

// JoinTeam claims one side of a match, optionally renaming the team.
func (h *GameHandler) JoinTeam(c *gin.Context) {
	var req JoinTeamPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if utf8.RuneCountInString(req.TeamName) > 32 {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrTeamNameExceeds})
		return
	}
	if err := service.JoinTeam(h.store, c.Param("gameID"), req.TeamID, req.TeamName); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyStatus: "joined"})
}

type SetupTeamPayload struct {
	TeamID         string         `json:"team_id"`
	TeamType       game.TeamType  `json:"team_type"`
	PositionCounts map[string]int `json:"position_counts"`
}

// SetupTeam hires a team's players from its roster during deployment.
func (h *GameHandler) SetupTeam(c *gin.Context) {
	var req SetupTeamPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	err := service.SetupTeam(h.store, h.rosters, c.Param("gameID"), req.TeamID, req.TeamType, req.PositionCounts)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyStatus: "configured"})
}

type PlacePlayersPayload struct {
	TeamID    string                   `json:"team_id"`
	Positions map[string]game.Position `json:"positions"`
}

// PlacePlayers puts a team's players on the pitch during deployment.
func (h *GameHandler) PlacePlayers(c *gin.Context) {
	var req PlacePlayersPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if err := service.PlacePlayers(h.store, c.Param("gameID"), req.TeamID, req.Positions); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyStatus: "placed"})
}

// StartMatch begins the opening scramble.
func (h *GameHandler) StartMatch(c *gin.Context) {
	if err := service.StartMatch(h.store, c.Param("gameID")); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyStatus: "started"})
}

// EndTurn hands control to the other team.
func (h *GameHandler) EndTurn(c *gin.Context) {
	if err := service.EndTurn(h.store, c.Param("gameID")); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyStatus: "turn ended"})
}

// BeginSecondHalf resumes play after the intermission.
func (h *GameHandler) BeginSecondHalf(c *gin.Context) {
	if err := service.BeginSecondHalf(h.store, c.Param("gameID")); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyStatus: "second half"})
}

// ResetGame returns a match to the deployment phase.
func (h *GameHandler) ResetGame(c *gin.Context) {
	if err := service.ResetGame(h.store, c.Param("gameID")); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyStatus: "reset"})
}
