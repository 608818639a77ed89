package queries

import (
	"context"

	"salon-scheduler/internal/domain/catalog"
	"salon-scheduler/internal/pkg/errs"
)

type BusinessReader interface {
	Get(ctx context.Context) (catalog.BusinessInfo, error)
}

type ServicesView struct {
	Services []catalog.Service
	Missing  []string
}

type BusinessView struct {
	Data    map[string]any
	Missing []string
}

type CatalogQueries interface {
	// ListServices returns the whole catalog, or — when names are given —
	// the matching subset plus the names that matched nothing.
	ListServices(ctx context.Context, names []string) (*ServicesView, error)
	BusinessInfo(ctx context.Context, keys []string) (*BusinessView, error)
}

type catalogQueriesImpl struct {
	services ServiceReader
	business BusinessReader
}

func NewCatalogQueries(services ServiceReader, business BusinessReader) CatalogQueries {
	return &catalogQueriesImpl{services: services, business: business}
}

func (q *catalogQueriesImpl) ListServices(ctx context.Context, names []string) (*ServicesView, error) {
	all, err := q.services.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	if len(names) == 0 {
		return &ServicesView{Services: all, Missing: []string{}}, nil
	}

	view := &ServicesView{Services: []catalog.Service{}, Missing: []string{}}
	for _, name := range names {
		found := false
		for _, svc := range all {
			if catalog.MatchName(svc.Name, name) {
				view.Services = append(view.Services, svc)
				found = true
				break
			}
		}
		if !found {
			view.Missing = append(view.Missing, name)
		}
	}
	return view, nil
}

func (q *catalogQueriesImpl) BusinessInfo(ctx context.Context, keys []string) (*BusinessView, error) {
	info, err := q.business.Get(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	found, missing := info.Lookup(keys)
	if missing == nil {
		missing = []string{}
	}
	return &BusinessView{Data: found, Missing: missing}, nil
}
