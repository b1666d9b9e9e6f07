package api

import (
	"errors"
	"net/http"

	"github.com/AndreasThinks/ankh-morpork-scramble/internal/constants"
	"github.com/AndreasThinks/ankh-morpork-scramble/internal/service"

	"github.com/gin-gonic/gin"
)

// purchaseStatus maps purchase failures: sentinel errors go through the
// shared translation, everything else (treasury and cap denials) is a 400
// carrying the denial message.
func purchaseStatus(c *gin.Context, err error) {
	if errors.Is(err, service.ErrGameNotFound) ||
		errors.Is(err, service.ErrNotDeployment) ||
		errors.Is(err, service.ErrUnknownTeam) ||
		errors.Is(err, service.ErrUnknownRoster) {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: err.Error()})
}

type BuyPlayerPayload struct {
	Position string `json:"position"`
}

// BuyPlayer purchases a single roster position during deployment.
func (h *GameHandler) BuyPlayer(c *gin.Context) {
	var req BuyPlayerPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	player, err := service.BuyPlayer(h.store, h.rosters, c.Param("gameID"), c.Param("teamID"), req.Position)
	if err != nil {
		purchaseStatus(c, err)
		return
	}
	c.JSON(http.StatusCreated, player)
}

// BuyReroll purchases one team reroll during deployment.
func (h *GameHandler) BuyReroll(c *gin.Context) {
	if err := service.BuyReroll(h.store, h.rosters, c.Param("gameID"), c.Param("teamID")); err != nil {
		purchaseStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyStatus: "reroll purchased"})
}

// GetBudget reports a team's treasury and purchase history.
func (h *GameHandler) GetBudget(c *gin.Context) {
	status, err := service.TeamBudget(h.store, c.Param("gameID"), c.Param("teamID"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// GetPositions lists a team's roster catalog with ownership counts.
func (h *GameHandler) GetPositions(c *gin.Context) {
	listings, err := service.AvailablePositions(h.store, h.rosters, c.Param("gameID"), c.Param("teamID"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, listings)
}
