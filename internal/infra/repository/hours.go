package repository

import (
	"context"
	"encoding/json"
	"errors"

	"salon-scheduler/internal/domain/schedule"
	"salon-scheduler/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HoursRepository struct {
	pool *pgxpool.Pool
}

func NewHoursRepository(pool *pgxpool.Pool) *HoursRepository {
	return &HoursRepository{pool: pool}
}

func (r *HoursRepository) Get(ctx context.Context) (schedule.Config, error) {
	var raw []byte
	err := r.pool.QueryRow(ctx,
		`SELECT config FROM working_hours WHERE id = 1`,
	).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return schedule.Config{}, infra.WrapRepoErr(infra.KindNotFound, "working hours config not seeded", err)
	}
	if err != nil {
		return schedule.Config{}, infra.WrapRepoErr(infra.KindDBFailure, "failed to read working hours", err)
	}

	var cfg schedule.Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return schedule.Config{}, infra.WrapRepoErr(infra.KindDBFailure, "malformed working hours config", err)
	}
	return cfg, nil
}
