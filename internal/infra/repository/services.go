package repository

import (
	"context"
	"errors"

	"salon-scheduler/internal/domain/catalog"
	"salon-scheduler/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceRepository struct {
	pool *pgxpool.Pool
}

func NewServiceRepository(pool *pgxpool.Pool) *ServiceRepository {
	return &ServiceRepository{pool: pool}
}

func (r *ServiceRepository) FindByName(ctx context.Context, name string) (*catalog.Service, error) {
	var svc catalog.Service
	err := r.pool.QueryRow(ctx, `
		SELECT name, duration_minutes, price, description
		FROM services
		WHERE lower(name) = lower(trim($1))
	`, name).Scan(&svc.Name, &svc.DurationMinutes, &svc.Price, &svc.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find service", err)
	}
	return &svc, nil
}

func (r *ServiceRepository) List(ctx context.Context) ([]catalog.Service, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT name, duration_minutes, price, description
		FROM services
		ORDER BY lower(name)
	`)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list services", err)
	}
	defer rows.Close()

	var services []catalog.Service
	for rows.Next() {
		var svc catalog.Service
		if err := rows.Scan(&svc.Name, &svc.DurationMinutes, &svc.Price, &svc.Description); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan service", err)
		}
		services = append(services, svc)
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate services", rows.Err())
	}
	return services, nil
}
