package repository

import (
	"context"
	"encoding/json"
	"errors"

	"salon-scheduler/internal/domain/catalog"
	"salon-scheduler/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BusinessRepository struct {
	pool *pgxpool.Pool
}

func NewBusinessRepository(pool *pgxpool.Pool) *BusinessRepository {
	return &BusinessRepository{pool: pool}
}

func (r *BusinessRepository) Get(ctx context.Context) (catalog.BusinessInfo, error) {
	var raw []byte
	err := r.pool.QueryRow(ctx, `SELECT info FROM business_info WHERE id = 1`).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return catalog.BusinessInfo{}, nil
	}
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to load business info", err)
	}

	var info catalog.BusinessInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to decode business info", err)
	}
	return info, nil
}
