package repository

import (
	"context"
	"errors"

	"salon-scheduler/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CalendarRepository persists booked intervals per ISO date. Intervals are
// stored as "HH:MM-HH:MM" strings so other tooling can read the table
// directly.
type CalendarRepository struct {
	pool *pgxpool.Pool
}

func NewCalendarRepository(pool *pgxpool.Pool) *CalendarRepository {
	return &CalendarRepository{pool: pool}
}

func (r *CalendarRepository) Read(ctx context.Context, date string) ([]string, error) {
	var intervals []string
	err := r.pool.QueryRow(ctx,
		`SELECT intervals FROM calendar_days WHERE day = $1`, date,
	).Scan(&intervals)
	if errors.Is(err, pgx.ErrNoRows) {
		return []string{}, nil
	}
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read calendar day", err)
	}
	return intervals, nil
}

// Write replaces the day's whole interval list in one statement, so the row
// is never observable in a half-updated state.
func (r *CalendarRepository) Write(ctx context.Context, date string, intervals []string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO calendar_days (day, intervals)
		VALUES ($1, $2)
		ON CONFLICT (day) DO UPDATE SET intervals = EXCLUDED.intervals
	`, date, intervals)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to write calendar day", err)
	}
	return nil
}
