package api

import (
	"errors"
	"net/http"

	reqdto "salon-scheduler/internal/handler/dto/request"
	resdto "salon-scheduler/internal/handler/dto/response"
	"salon-scheduler/internal/handler/httperr"
	"salon-scheduler/internal/usecase/commands"
	"salon-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	sessionQueries  queries.SessionQueries
	sessionCommands commands.SessionCommands
}

func NewSessionHandler(sessionQueries queries.SessionQueries, sessionCommands commands.SessionCommands) *SessionHandler {
	return &SessionHandler{
		sessionQueries:  sessionQueries,
		sessionCommands: sessionCommands,
	}
}

// @Summary Read dialog state
// @Description Return the session's collected booking slots
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} response.SessionStateResponse
// @Failure 401 {object} map[string]string
// @Router /sessions/{id}/state [get]
func (h *SessionHandler) GetState(c *gin.Context) {
	state, err := h.sessionQueries.GetState(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSessionState(state))
}

// @Summary Update dialog state
// @Description Apply a partial update to the session's booking slots
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param request body request.UpdateSessionStateRequest true "Slot patch"
// @Success 200 {object} response.SessionStateResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /sessions/{id}/state [patch]
func (h *SessionHandler) UpdateState(c *gin.Context) {
	var req reqdto.UpdateSessionStateRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	state, err := h.sessionCommands.UpdateState(c.Request.Context(), c.Param("id"), req.Patch)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrUnknownSlot):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown dialog slot", nil)
		case errors.Is(err, commands.ErrInvalidSlotValue):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid dialog slot value", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromSessionState(state))
}
