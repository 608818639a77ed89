package components

import (
	"context"
	"fmt"

	"salon-scheduler/internal/infra/db"
	"salon-scheduler/internal/infra/repository"
	"salon-scheduler/internal/infra/repository/jsonfile"
	"salon-scheduler/internal/infra/repository/memory"
	"salon-scheduler/internal/pkg/config"
	"salon-scheduler/internal/usecase/commands"
	"salon-scheduler/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Stores bundles the persistence ports for one storage driver. The fields
// use the command-side interfaces, whose method sets are supersets of the
// query-side ones, so each field satisfies both consumers.
type Stores struct {
	Hours    commands.HoursRepository
	Services queries.ServiceReader
	Calendar commands.CalendarRepository
	Business queries.BusinessReader
	Log      commands.BookingLogRepository
	Sessions commands.SessionRepository
}

var StorageModule = fx.Module("storage",
	fx.Provide(
		NewStores,
		func(s *Stores) queries.HoursRepository { return s.Hours },
		func(s *Stores) commands.HoursRepository { return s.Hours },
		func(s *Stores) queries.ServiceReader { return s.Services },
		func(s *Stores) queries.CalendarReader { return s.Calendar },
		func(s *Stores) commands.CalendarRepository { return s.Calendar },
		func(s *Stores) queries.BusinessReader { return s.Business },
		func(s *Stores) commands.BookingLogRepository { return s.Log },
		func(s *Stores) queries.SessionReader { return s.Sessions },
		func(s *Stores) commands.SessionRepository { return s.Sessions },
	),
)

func NewStores(lc fx.Lifecycle, cfg config.Config) (*Stores, error) {
	var stores *Stores

	switch cfg.Storage.Driver {
	case "postgres":
		pool, cleanup, err := db.Connect(cfg.DB)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				_, err := pool.Exec(ctx, repository.Schema)
				return err
			},
			OnStop: func(_ context.Context) error {
				cleanup()
				return nil
			},
		})
		stores = &Stores{
			Hours:    repository.NewHoursRepository(pool),
			Services: repository.NewServiceRepository(pool),
			Calendar: repository.NewCalendarRepository(pool),
			Business: repository.NewBusinessRepository(pool),
			Log:      repository.NewBookingLogRepository(pool),
		}

	case "jsonfile":
		store, err := jsonfile.NewStore(cfg.Storage.DataDir)
		if err != nil {
			return nil, err
		}
		stores = &Stores{
			Hours:    store.Hours(),
			Services: store,
			Calendar: store,
			Business: store.Business(),
			Log:      store,
		}

	case "memory":
		store := memory.NewStore()
		stores = &Stores{
			Hours:    store.Hours(),
			Services: store,
			Calendar: store,
			Business: store.Business(),
			Log:      store,
			Sessions: store.Sessions(),
		}

	default:
		return nil, fmt.Errorf("unknown storage driver: %q", cfg.Storage.Driver)
	}

	// Sessions live in redis when configured; otherwise keep them in-process.
	if stores.Sessions == nil {
		if cfg.Redis.Addr != "" {
			rdb := redis.NewClient(&redis.Options{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			lc.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					return rdb.Ping(ctx).Err()
				},
				OnStop: func(_ context.Context) error {
					return rdb.Close()
				},
			})
			stores.Sessions = repository.NewRedisSessionRepository(rdb, cfg.Redis.SessionTTL)
		} else {
			stores.Sessions = memory.NewStore().Sessions()
		}
	}

	return stores, nil
}
