package api

import (
	"net/http"
	"strconv"

	"github.com/AndreasThinks/ankh-morpork-scramble/internal/constants"
	"github.com/AndreasThinks/ankh-morpork-scramble/internal/game"
	"github.com/AndreasThinks/ankh-morpork-scramble/internal/service"

	"github.com/gin-gonic/gin"
)

// GetGame returns a full snapshot of a match.
func (h *GameHandler) GetGame(c *gin.Context) {
	gs, err := service.GetGame(h.store, c.Param("gameID"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gs)
}

// GetEvents returns the match event log, newest last. The optional `limit`
// query parameter caps the number of entries.
func (h *GameHandler) GetEvents(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	events, err := service.EventLog(h.store, c.Param("gameID"), limit)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

// GetValidActions summarizes what the active team may still do.
func (h *GameHandler) GetValidActions(c *gin.Context) {
	va, err := service.ValidActions(h.store, h.exec, c.Param("gameID"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, va)
}

type SuggestPathPayload struct {
	PlayerID string        `json:"player_id"`
	Target   game.Position `json:"target"`
}

// SuggestPath runs the advisory path assessment for one player.
func (h *GameHandler) SuggestPath(c *gin.Context) {
	var req SuggestPathPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	suggestion, err := service.SuggestPath(h.store, h.exec, c.Param("gameID"), req.PlayerID, req.Target)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, suggestion)
}

// ListLeaderboard returns top team profiles ordered by wins.
func (h *GameHandler) ListLeaderboard(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	profiles, err := h.store.TopTeams(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLeaderboard})
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// ListRecentGames returns the most recently updated match records.
func (h *GameHandler) ListRecentGames(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	records, err := h.store.ListGames(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchGames})
		return
	}
	c.JSON(http.StatusOK, records)
}
