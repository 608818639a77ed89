//go:build integration

package repository_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"salon-scheduler/internal/domain/booking"
	"salon-scheduler/internal/domain/schedule"
	"salon-scheduler/internal/infra"
	"salon-scheduler/internal/infra/repository"

	"github.com/docker/go-connections/nat"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "test"
	testPassword = "testpass"
)

func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 180*time.Second)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       "scheduler_test",
			},
			Tmpfs: map[string]string{
				"/var/lib/postgresql/data": "rw,size=256m",
			},
			Cmd: []string{"postgres", "-c", "fsync=off", "-c", "synchronous_commit=off"},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://%s:%s@%s:%s/scheduler_test?sslmode=disable",
					testUser, testPassword, host, port.Port())
			}).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err, "failed to start postgres container")
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = container.Terminate(ctx)
	})

	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)
	host, err := container.Host(ctx)
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/scheduler_test?sslmode=disable",
		testUser, testPassword, host, port.Port())
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, repository.Schema)
	require.NoError(t, err, "failed to apply schema")

	return pool
}

func TestCalendarRepository_ReadWrite(t *testing.T) {
	pool := startPostgres(t)
	repo := repository.NewCalendarRepository(pool)
	ctx := context.Background()

	got, err := repo.Read(ctx, "2026-09-05")
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, repo.Write(ctx, "2026-09-05", []string{"10:00-10:30"}))
	require.NoError(t, repo.Write(ctx, "2026-09-05", []string{"10:00-10:30", "11:00-11:45"}))

	got, err = repo.Read(ctx, "2026-09-05")
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00-10:30", "11:00-11:45"}, got)
}

func TestHoursRepository_Get(t *testing.T) {
	pool := startPostgres(t)
	repo := repository.NewHoursRepository(pool)
	ctx := context.Background()

	_, err := repo.Get(ctx)
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))

	cfg := schedule.Config{
		Timezone:            "America/New_York",
		SlotIntervalMinutes: 15,
		WeeklyHours:         map[string][]string{"Sat": {"10:00-14:00"}, "Sun": {}},
		Exceptions:          map[string][]string{"2026-12-25": {}},
	}
	raw, err := json.Marshal(cfg)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `INSERT INTO working_hours (id, config) VALUES (1, $1)`, raw)
	require.NoError(t, err)

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestServiceRepository_FindByName(t *testing.T) {
	pool := startPostgres(t)
	repo := repository.NewServiceRepository(pool)
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO services (name, duration_minutes, price, description)
		VALUES ('Skin Fade', 45, 45.0, 'Tight fade with clean transitions.')
	`)
	require.NoError(t, err)

	svc, err := repo.FindByName(ctx, "  skin fade ")
	require.NoError(t, err)
	require.NotNil(t, svc)
	assert.Equal(t, "Skin Fade", svc.Name)
	assert.Equal(t, 45, svc.DurationMinutes)

	svc, err = repo.FindByName(ctx, "perm")
	require.NoError(t, err)
	assert.Nil(t, svc)
}

func TestBookingLogRepository_Append(t *testing.T) {
	pool := startPostgres(t)
	repo := repository.NewBookingLogRepository(pool)
	ctx := context.Background()

	rec := booking.NewRecord("2026-09-05", "10:00", "10:30", "Basic Haircut", 30,
		booking.Client{Name: "Dana", Phone: "555-0100", Email: "dana@example.com"},
		time.Now().UTC().Truncate(time.Microsecond))
	require.NoError(t, repo.Append(ctx, rec))

	var name, day string
	err := pool.QueryRow(ctx,
		`SELECT client_name, day FROM booking_records WHERE id = $1`, rec.ID,
	).Scan(&name, &day)
	require.NoError(t, err)
	assert.Equal(t, "Dana", name)
	assert.Equal(t, "2026-09-05", day)
}
