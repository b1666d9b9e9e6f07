package api

import (
	"errors"
	"net/http"

	"github.com/AndreasThinks/ankh-morpork-scramble/internal/constants"
	"github.com/AndreasThinks/ankh-morpork-scramble/internal/engine"
	"github.com/AndreasThinks/ankh-morpork-scramble/internal/game"
	"github.com/AndreasThinks/ankh-morpork-scramble/internal/service"
	"github.com/AndreasThinks/ankh-morpork-scramble/internal/store"

	"github.com/gin-gonic/gin"
)

// GameHandler groups all match-related HTTP handlers.
type GameHandler struct {
	store   *store.Store
	exec    *engine.Executor
	rosters map[game.TeamType]game.Roster
}

// NewGameHandler creates a new GameHandler over the store, the action
// executor and the roster catalog.
func NewGameHandler(st *store.Store, exec *engine.Executor, rosters map[game.TeamType]game.Roster) *GameHandler {
	return &GameHandler{store: st, exec: exec, rosters: rosters}
}

// abortWithServiceError translates service-layer sentinel errors into HTTP
// statuses. Unknown errors become a 500 with a generic message.
func abortWithServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrGameNotFound})
	case errors.Is(err, service.ErrMatchNotStarted),
		errors.Is(err, service.ErrMatchConcluded),
		errors.Is(err, service.ErrNotDeployment),
		errors.Is(err, service.ErrNoActiveTurn):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: err.Error()})
	case errors.Is(err, service.ErrUnknownTeam),
		errors.Is(err, service.ErrUnknownRoster),
		errors.Is(err, service.ErrUnknownPosition),
		errors.Is(err, service.ErrPositionLimitHit),
		errors.Is(err, service.ErrNotActiveTeam):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedUpdateGame})
	}
}
