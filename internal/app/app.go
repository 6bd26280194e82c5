// Package app implements the use cases of bound on top of the collection toolkit.
package app

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.trai.ch/bound/internal/core/domain"
	"go.trai.ch/bound/internal/core/ports"
	"go.trai.ch/bound/internal/engine/collection"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const maxParallelLoads = 4

// App represents the main application logic.
type App struct {
	loader ports.EntityLoader
	repo   ports.EntityRepository[*domain.BaseEntity]
	logger ports.Logger
	now    func() time.Time
}

// New creates a new App instance.
func New(
	loader ports.EntityLoader,
	repo ports.EntityRepository[*domain.BaseEntity],
	log ports.Logger,
) *App {
	return &App{
		loader: loader,
		repo:   repo,
		logger: log,
		now:    time.Now,
	}
}

// WithClock replaces the clock used to validate creation timestamps.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// Report summarizes an inspected entity collection.
type Report struct {
	Source     string
	Count      int
	HasNew     bool
	Valid      bool
	MostRecent *domain.BaseEntity
	Duplicates []uuid.UUID
	// Largest names the source holding the most entities. It is only set
	// when more than one file was inspected.
	Largest string
}

// Inspect replaces the repository contents with the entities of the files at
// paths and reports on them. Files are read concurrently but saved in
// argument order.
func (a *App) Inspect(ctx context.Context, paths ...string) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, zerr.Wrap(err, "inspect canceled")
	}

	loaded, err := a.loadAll(ctx, paths)
	if err != nil {
		return nil, err
	}

	a.repo.Reset()
	sources := make([]string, 0, len(loaded))
	for _, sourced := range loaded {
		sources = append(sources, sourced.Source)
		for _, e := range sourced.Value {
			if err := a.repo.Save(e); err != nil {
				return nil, zerr.With(zerr.Wrap(err, "failed to save entity"), "entity", e.String())
			}
		}
	}
	source := strings.Join(sources, ", ")

	entities := a.repo.Entities()
	now := a.now()

	report := &Report{
		Source: source,
		Count:  len(entities),
		HasNew: collection.HasNewEntities(entities),
		Valid: collection.IsValidCollection(entities, func(e domain.Entity) bool {
			created := e.CreatedOn()
			return !created.IsZero() && !created.After(now)
		}),
		Duplicates: duplicateIDs(entities),
	}
	if len(loaded) > 1 {
		report.Largest = largestSource(loaded)
	}

	latest, err := collection.FindMostRecentlyCreatedEntity(entities)
	switch {
	case errors.Is(err, domain.ErrEmptyInput):
		a.logger.Warn(fmt.Sprintf("no entities in %s", source))
	case err != nil:
		return nil, err
	default:
		report.MostRecent = latest
	}

	return report, nil
}

// loadAll loads every path, at most maxParallelLoads at a time.
func (a *App) loadAll(ctx context.Context, paths []string) ([]domain.Sourced[[]*domain.BaseEntity], error) {
	loaded := make([]domain.Sourced[[]*domain.BaseEntity], len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelLoads)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return zerr.Wrap(err, "inspect canceled")
			}
			sourced, err := a.loader.Load(path)
			if err != nil {
				return zerr.Wrap(err, "failed to load entities")
			}
			loaded[i] = sourced
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return loaded, nil
}

// largestSource returns the source of the biggest file, the earliest one on ties.
func largestSource(loaded []domain.Sourced[[]*domain.BaseEntity]) string {
	largest, _ := collection.FindMax(slices.Values(loaded), func(x, y domain.Sourced[[]*domain.BaseEntity]) int {
		return domain.ComparableCollection[*domain.BaseEntity](x.Value).
			Compare(domain.ComparableCollection[*domain.BaseEntity](y.Value))
	})
	return largest.Source
}

// duplicateIDs lists, in order of first appearance, every identifier shared by more than one entity.
func duplicateIDs(entities []*domain.BaseEntity) []uuid.UUID {
	var ids []uuid.UUID
	for _, e := range entities {
		id := e.ID()
		if !id.Valid || slices.Contains(ids, id.UUID) {
			continue
		}
		if collection.HasDuplicates(entities, e) {
			ids = append(ids, id.UUID)
		}
	}
	return ids
}

// Max parses values as decimals and returns the greatest one.
// It returns false when values is empty.
func (a *App) Max(values []string) (decimal.Decimal, bool, error) {
	numbers := make([]decimal.Decimal, 0, len(values))
	for _, v := range values {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Decimal{}, false, zerr.With(zerr.Wrap(domain.ErrInvalidNumber, "max"), "value", v)
		}
		numbers = append(numbers, d)
	}

	found, ok := collection.FindMax(slices.Values(numbers), func(x, y decimal.Decimal) int {
		return x.Cmp(y)
	})
	return found, ok, nil
}

// Swap returns a copy of values with the elements at i and j exchanged.
func (a *App) Swap(values []string, i, j int) ([]string, error) {
	out := slices.Clone(values)
	if err := collection.Swap(out, i, j); err != nil {
		return nil, err
	}
	return out, nil
}

// Welcome returns the welcome message.
func (a *App) Welcome() string {
	return domain.WelcomeMessage()
}

// Encode encodes msg with the given encoding.
func (a *App) Encode(msg string, enc domain.Encoding) (string, error) {
	return domain.EncodeMessage(msg, enc)
}
