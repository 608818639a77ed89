package request

import (
	"strings"

	"salon-scheduler/internal/domain/booking"
	"salon-scheduler/internal/usecase/commands"
)

type CreateBookingRequest struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	Service   string `json:"service,omitempty"`
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
}

func (r CreateBookingRequest) ToParams() commands.BookParams {
	return commands.BookParams{
		Date:      strings.TrimSpace(r.Date),
		StartTime: strings.TrimSpace(r.StartTime),
		Service:   strings.TrimSpace(r.Service),
		Client: booking.Client{
			Name:  strings.TrimSpace(r.Name),
			Phone: strings.TrimSpace(r.Phone),
			Email: strings.TrimSpace(r.Email),
		},
	}
}
