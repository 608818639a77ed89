package response

import (
	"salon-scheduler/internal/domain/booking"
)

type BookingResponse struct {
	Date            string `json:"date"`
	Start           string `json:"start"`
	End             string `json:"end"`
	Service         string `json:"service,omitempty"`
	DurationMinutes int    `json:"durationMinutes"`
	ClientName      string `json:"clientName"`
}

// SlotUnavailableDetail rides along with the 409 so the caller can offer
// alternatives without another availability round trip.
type SlotUnavailableDetail struct {
	Date            string   `json:"date"`
	DurationMinutes int      `json:"durationMinutes"`
	Alternatives    []string `json:"alternatives"`
}

func FromConfirmation(c *booking.Confirmation) *BookingResponse {
	return &BookingResponse{
		Date:            c.Date,
		Start:           c.Start,
		End:             c.End,
		Service:         c.Service,
		DurationMinutes: c.DurationMinutes,
		ClientName:      c.ClientName,
	}
}
