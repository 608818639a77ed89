package booking

import (
	"time"

	"github.com/google/uuid"
)

// Client is the contact captured with a booking. It is stored only in the
// append-only record log, never in the calendar.
type Client struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Record is the immutable contact/audit entry written after the calendar
// commit. The calendar, not this log, is the source of truth for occupancy.
type Record struct {
	ID              uuid.UUID `json:"id"`
	Date            string    `json:"date"`
	Start           string    `json:"start"`
	End             string    `json:"end"`
	Service         string    `json:"service,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
	Client          Client    `json:"client"`
	CreatedAt       time.Time `json:"created_at"`
}

func NewRecord(date, start, end, service string, durationMinutes int, client Client, createdAt time.Time) Record {
	return Record{
		ID:              uuid.New(),
		Date:            date,
		Start:           start,
		End:             end,
		Service:         service,
		DurationMinutes: durationMinutes,
		Client:          client,
		CreatedAt:       createdAt,
	}
}

// Confirmation is what a successful booking returns to the caller.
type Confirmation struct {
	Date            string
	Start           string
	End             string
	Service         string
	DurationMinutes int
	ClientName      string
}
