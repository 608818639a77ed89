package api

import (
	"errors"
	"net/http"

	reqdto "salon-scheduler/internal/handler/dto/request"
	resdto "salon-scheduler/internal/handler/dto/response"
	"salon-scheduler/internal/domain/schedule"
	"salon-scheduler/internal/handler/httperr"
	"salon-scheduler/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
}

func NewBookingHandler(bookingCommands commands.BookingCommands) *BookingHandler {
	return &BookingHandler{bookingCommands: bookingCommands}
}

// @Summary Book an appointment
// @Description Re-check availability and commit the slot to the calendar
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.CreateBookingRequest true "Booking request"
// @Success 201 {object} response.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	confirmation, err := h.bookingCommands.Book(c.Request.Context(), req.ToParams())
	if err != nil {
		var unavailable *commands.SlotUnavailableError
		switch {
		case errors.Is(err, schedule.ErrInvalidTime),
			errors.Is(err, schedule.ErrInvalidMinute),
			errors.Is(err, schedule.ErrInvalidRange):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Could not understand that time", nil)
		case errors.Is(err, schedule.ErrDateNotUnderstood):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Could not understand that date", nil)
		case errors.Is(err, commands.ErrClosedDay):
			httperr.AbortWithError(c, http.StatusConflict, err, "Closed that day", nil)
		case errors.As(err, &unavailable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slot not available", resdto.SlotUnavailableDetail{
				Date:            unavailable.Date,
				DurationMinutes: unavailable.DurationMinutes,
				Alternatives:    unavailable.Alternatives,
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromConfirmation(confirmation))
}
