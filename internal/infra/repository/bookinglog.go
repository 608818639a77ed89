package repository

import (
	"context"

	"salon-scheduler/internal/domain/booking"
	"salon-scheduler/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

// BookingLogRepository appends immutable contact records. There is no read
// path: availability is decided by the calendar alone.
type BookingLogRepository struct {
	pool *pgxpool.Pool
}

func NewBookingLogRepository(pool *pgxpool.Pool) *BookingLogRepository {
	return &BookingLogRepository{pool: pool}
}

func (r *BookingLogRepository) Append(ctx context.Context, rec booking.Record) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO booking_records
			(id, day, start_time, end_time, service, duration_minutes,
			 client_name, client_phone, client_email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, rec.ID, rec.Date, rec.Start, rec.End, rec.Service, rec.DurationMinutes,
		rec.Client.Name, rec.Client.Phone, rec.Client.Email, rec.CreatedAt)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to append booking record", err)
	}
	return nil
}
