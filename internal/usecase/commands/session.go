package commands

import (
	"context"
	"strings"

	"salon-scheduler/internal/domain/conversation"
	"salon-scheduler/internal/domain/schedule"
	"salon-scheduler/internal/pkg/clock"
	"salon-scheduler/internal/pkg/errs"
	"salon-scheduler/internal/usecase/queries"
)

var (
	ErrUnknownSlot      = errs.New("unknown conversation slot")
	ErrInvalidSlotValue = errs.New("invalid conversation slot value")
)

type SessionRepository interface {
	Get(ctx context.Context, sessionID string) (conversation.State, bool, error)
	Save(ctx context.Context, sessionID string, state conversation.State) error
}

type SessionCommands interface {
	// UpdateState applies a patch of dialog slots. Date and time values are
	// normalized on the way in when they parse; raw text is kept otherwise
	// so the chat layer can re-ask without losing what the user said.
	UpdateState(ctx context.Context, sessionID string, patch map[string]any) (*conversation.State, error)
}

type sessionCommandsImpl struct {
	sessions SessionRepository
	hours    HoursRepository
	clock    clock.Clock
}

func NewSessionCommands(sessions SessionRepository, hours HoursRepository, clk clock.Clock) SessionCommands {
	return &sessionCommandsImpl{sessions: sessions, hours: hours, clock: clk}
}

func (c *sessionCommandsImpl) UpdateState(ctx context.Context, sessionID string, patch map[string]any) (*conversation.State, error) {
	for key := range patch {
		if !conversation.IsSlotName(key) {
			return nil, errs.Mark(errs.New("slot "+key), ErrUnknownSlot)
		}
	}

	state, _, err := c.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, errs.Mark(err, queries.ErrStoreFailure)
	}

	for key, value := range patch {
		if key == "confirmed" {
			confirmed, ok := value.(bool)
			if !ok {
				return nil, errs.Mark(errs.New("confirmed must be a boolean"), ErrInvalidSlotValue)
			}
			state.Confirmed = confirmed
			continue
		}

		text, ok := asString(value)
		if !ok {
			return nil, errs.Mark(errs.New(key+" must be a string"), ErrInvalidSlotValue)
		}

		switch key {
		case "service":
			state.Service = text
		case "date":
			state.Date = c.normalizeDate(ctx, text)
		case "time":
			state.Time = normalizeTimeOrKeep(text)
		case "name":
			state.Name = text
		case "phone":
			state.Phone = text
		case "email":
			state.Email = text
		}
	}

	if err := c.sessions.Save(ctx, sessionID, state); err != nil {
		return nil, errs.Mark(err, queries.ErrStoreFailure)
	}
	return &state, nil
}

func (c *sessionCommandsImpl) normalizeDate(ctx context.Context, text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	cfg, err := c.hours.Get(ctx)
	if err != nil {
		return text
	}
	cleaned, _ := schedule.ExtractDaypart(text)
	day, err := schedule.ParseNaturalDate(cleaned, c.clock.Now().In(cfg.Location()))
	if err != nil {
		return text
	}
	return day.Format(schedule.DateLayout)
}

func normalizeTimeOrKeep(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	normalized, err := schedule.NormalizeTime(text)
	if err != nil {
		return text
	}
	return normalized
}

func asString(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", true
	case string:
		return v, true
	default:
		return "", false
	}
}
