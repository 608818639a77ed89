package queries

import (
	"context"

	"salon-scheduler/internal/domain/conversation"
	"salon-scheduler/internal/pkg/errs"
)

type SessionReader interface {
	Get(ctx context.Context, sessionID string) (conversation.State, bool, error)
}

type SessionQueries interface {
	// GetState returns the session's dialog slots; unknown sessions yield an
	// empty state rather than an error.
	GetState(ctx context.Context, sessionID string) (*conversation.State, error)
}

type sessionQueriesImpl struct {
	sessions SessionReader
}

func NewSessionQueries(sessions SessionReader) SessionQueries {
	return &sessionQueriesImpl{sessions: sessions}
}

func (q *sessionQueriesImpl) GetState(ctx context.Context, sessionID string) (*conversation.State, error) {
	state, _, err := q.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return &state, nil
}
