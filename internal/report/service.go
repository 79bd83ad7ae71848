// Package report builds monthly and multi-month reports from the
// aggregated summaries.
package report

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/carbonledger/backend/internal/models"
	"github.com/carbonledger/backend/internal/store"
	"github.com/carbonledger/backend/internal/types"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	// MaxMonths is the maximum number of months in a ranged report.
	MaxMonths = 36

	// DefaultConcurrency is the default number of months aggregated in parallel.
	DefaultConcurrency = 4
)

var ErrCountOutOfRange = fmt.Errorf("the month count must be between 1 and %d", MaxMonths)

// Aggregator brings the summaries of a month up to date.
type Aggregator interface {
	Aggregate(ctx context.Context, userID uuid.UUID, month types.Month) ([]models.Summary, error)
	Reset(ctx context.Context, userID uuid.UUID, month types.Month) error
	Rebuild(ctx context.Context, userID uuid.UUID, month types.Month) ([]models.Summary, error)
}

// Service serves the reports.
type Service struct {
	users       store.UserStore
	categories  store.CategoryStore
	aggregator  Aggregator
	concurrency int
}

type Option func(*Service)

// WithConcurrency sets how many months of a ranged report are aggregated in parallel.
func WithConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

func NewService(users store.UserStore, categories store.CategoryStore, aggregator Aggregator, opts ...Option) *Service {
	s := &Service{
		users:       users,
		categories:  categories,
		aggregator:  aggregator,
		concurrency: DefaultConcurrency,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// GetMonthlySummary aggregates the month and returns its report.
func (s *Service) GetMonthlySummary(ctx context.Context, userID uuid.UUID, month types.Month) (MonthlySummary, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return MonthlySummary{}, err
	}

	summaries, err := s.aggregator.Aggregate(ctx, userID, month)
	if err != nil {
		return MonthlySummary{}, err
	}

	return s.summarize(ctx, month, summaries, newCategoryNames(s.categories))
}

// GetRangedSummary returns the report for count months ending with end.
func (s *Service) GetRangedSummary(ctx context.Context, userID uuid.UUID, end types.Month, count int) (RangedSummary, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return RangedSummary{}, err
	}

	return s.Range(ctx, userID, end, count)
}

// Range aggregates count months ending with end and combines their reports.
// Months are aggregated concurrently.
func (s *Service) Range(ctx context.Context, userID uuid.UUID, end types.Month, count int) (RangedSummary, error) {
	if count < 1 || count > MaxMonths {
		return RangedSummary{}, fmt.Errorf("%w, got %d", ErrCountOutOfRange, count)
	}

	months := end.Range(count)
	monthly := make([]MonthlySummary, len(months))
	names := newCategoryNames(s.categories)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, month := range months {
		g.Go(func() error {
			summaries, err := s.aggregator.Aggregate(gctx, userID, month)
			if err != nil {
				return err
			}

			summary, err := s.summarize(gctx, month, summaries, names)
			if err != nil {
				return err
			}

			monthly[i] = summary
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return RangedSummary{}, err
	}

	return Combine(monthly), nil
}

// ResetMonth deletes the summaries of the month. The next report
// aggregates it from scratch.
func (s *Service) ResetMonth(ctx context.Context, userID uuid.UUID, month types.Month) error {
	if err := s.checkUser(ctx, userID); err != nil {
		return err
	}

	return s.aggregator.Reset(ctx, userID, month)
}

// RebuildMonth aggregates the month from scratch and returns its report.
func (s *Service) RebuildMonth(ctx context.Context, userID uuid.UUID, month types.Month) (MonthlySummary, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return MonthlySummary{}, err
	}

	summaries, err := s.aggregator.Rebuild(ctx, userID, month)
	if err != nil {
		return MonthlySummary{}, err
	}

	return s.summarize(ctx, month, summaries, newCategoryNames(s.categories))
}

func (s *Service) checkUser(ctx context.Context, userID uuid.UUID) error {
	_, err := s.users.FindUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("user %s: %w", userID, err)
	}
	return nil
}

func (s *Service) summarize(ctx context.Context, month types.Month, summaries []models.Summary, names *categoryNames) (MonthlySummary, error) {
	byID := make(map[uuid.UUID]string, len(summaries))
	for _, summary := range summaries {
		name, err := names.lookup(ctx, summary.CategoryID)
		if err != nil {
			return MonthlySummary{}, err
		}
		byID[summary.CategoryID] = name
	}

	return Summarize(month, summaries, byID), nil
}

// categoryNames caches category names for the duration of a request.
type categoryNames struct {
	categories store.CategoryStore
	mu         sync.Mutex
	names      map[uuid.UUID]string
}

func newCategoryNames(categories store.CategoryStore) *categoryNames {
	return &categoryNames{
		categories: categories,
		names:      make(map[uuid.UUID]string),
	}
}

func (c *categoryNames) lookup(ctx context.Context, id uuid.UUID) (string, error) {
	c.mu.Lock()
	name, ok := c.names[id]
	c.mu.Unlock()

	if ok {
		return name, nil
	}

	category, err := c.categories.FindCategory(ctx, id)
	if errors.Is(err, models.ErrResourceNotFound) {
		return "", fmt.Errorf("summary references unknown category %s: %w", id, models.ErrGeneral)
	}

	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.names[id] = category.Name
	c.mu.Unlock()

	return category.Name, nil
}
