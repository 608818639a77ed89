package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "salon-scheduler/internal/handler/dto/response"
	"salon-scheduler/internal/domain/schedule"
	"salon-scheduler/internal/handler/httperr"
	"salon-scheduler/internal/pkg/config"
	"salon-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	scheduleQueries queries.ScheduleQueries
	defaultLimit    int
}

func NewScheduleHandler(scheduleQueries queries.ScheduleQueries, cfg config.Config) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleQueries: scheduleQueries,
		defaultLimit:    cfg.Booking.DefaultLimit,
	}
}

// @Summary Current business time
// @Description Return the current instant in the business timezone
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.NowResponse
// @Failure 401 {object} map[string]string
// @Router /now [get]
func (h *ScheduleHandler) GetNow(c *gin.Context) {
	view, err := h.scheduleQueries.GetNow(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromNowView(view))
}

// @Summary Working hours for a date
// @Description Resolve working hours for a natural-language date phrase
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Param date query string false "Date phrase (default today)"
// @Success 200 {object} response.HoursResponse
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /hours [get]
func (h *ScheduleHandler) GetHours(c *gin.Context) {
	view, err := h.scheduleQueries.GetHours(c.Request.Context(), c.Query("date"))
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrDateNotUnderstood):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Could not understand that date", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromHoursView(view))
}

// @Summary Check availability
// @Description Compute open slots for a date, service and optional daypart
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Param date query string false "Date phrase (default today)"
// @Param service query string false "Service name"
// @Param limit query int false "Max slots to return"
// @Param daypart query string false "morning / afternoon / evening / night"
// @Success 200 {object} response.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /availability [get]
func (h *ScheduleHandler) CheckAvailability(c *gin.Context) {
	limit := h.defaultLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "limit must be an integer", nil)
			return
		}
		limit = parsed
	}

	view, err := h.scheduleQueries.CheckAvailability(c.Request.Context(), queries.AvailabilityParams{
		DatePhrase: c.Query("date"),
		Service:    c.Query("service"),
		Limit:      limit,
		Daypart:    c.Query("daypart"),
	})
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrDateNotUnderstood):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Could not understand that date", nil)
		case errors.Is(err, queries.ErrUnknownDaypart):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Unknown daypart", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}
