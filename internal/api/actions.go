package api

import (
	"net/http"

	"github.com/AndreasThinks/ankh-morpork-scramble/internal/constants"
	"github.com/AndreasThinks/ankh-morpork-scramble/internal/game"
	"github.com/AndreasThinks/ankh-morpork-scramble/internal/logging"
	"github.com/AndreasThinks/ankh-morpork-scramble/internal/service"

	"github.com/gin-gonic/gin"
)

// SubmitAction executes one action for the active team and returns the
// full dice-by-dice result.
func (h *GameHandler) SubmitAction(c *gin.Context) {
	var req game.ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if req.PlayerID == "" || req.ActionType == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	gameID := c.Param("gameID")
	result, err := service.SubmitAction(h.store, h.exec, gameID, req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	logging.Info("action executed", logging.Fields{
		constants.LogFieldGameID:   gameID,
		constants.LogFieldPlayerID: req.PlayerID,
		constants.LogFieldAction:   string(req.ActionType),
		"success":                  result.Success,
		"turnover":                 result.Turnover,
	})
	c.JSON(http.StatusOK, result)
}
