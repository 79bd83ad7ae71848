// Package aggregation maintains the monthly category summaries incrementally.
//
// Every summary of a user and month carries the same watermark: the time
// up to which ingested transactions have been folded in. A run only scans
// transactions ingested after the watermark and up to the moment the run
// started, then merges the deltas and the new watermark in one database
// transaction.
package aggregation

import (
	"bytes"
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/carbonledger/backend/internal/metrics"
	"github.com/carbonledger/backend/internal/models"
	"github.com/carbonledger/backend/internal/store"
	"github.com/carbonledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the default number of pages fetched in parallel.
const DefaultConcurrency = 4

// Engine aggregates transactions into monthly summaries.
type Engine struct {
	summaries    store.SummaryStore
	transactions store.TransactionStore
	now          func() time.Time
	pageSize     int
	concurrency  int
	locks        *keyLocks
}

type Option func(*Engine)

// WithClock sets the clock the scan start is taken from. It must be the
// clock transactions are stamped with.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

func WithPageSize(size int) Option {
	return func(e *Engine) {
		if size > 0 {
			e.pageSize = size
		}
	}
}

// WithConcurrency sets how many pages are fetched in parallel.
func WithConcurrency(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

func New(summaries store.SummaryStore, transactions store.TransactionStore, opts ...Option) *Engine {
	e := &Engine{
		summaries:    summaries,
		transactions: transactions,
		now:          time.Now,
		pageSize:     store.DefaultPageSize,
		concurrency:  DefaultConcurrency,
		locks:        newKeyLocks(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Aggregate brings the summaries of the user and month up to date and
// returns all of them, ordered by category ID.
//
// Runs for the same user and month are serialized. A cancelled run
// changes nothing.
func (e *Engine) Aggregate(ctx context.Context, userID uuid.UUID, month types.Month) ([]models.Summary, error) {
	key := models.Key{UserID: userID, Month: month}

	unlock, err := e.locks.lock(ctx, key)
	if err != nil {
		return nil, err
	}
	defer unlock()

	return e.aggregate(ctx, key)
}

// Reset deletes all summaries of the user and month.
func (e *Engine) Reset(ctx context.Context, userID uuid.UUID, month types.Month) error {
	key := models.Key{UserID: userID, Month: month}

	unlock, err := e.locks.lock(ctx, key)
	if err != nil {
		return err
	}
	defer unlock()

	return e.reset(ctx, key)
}

// Rebuild resets the summaries of the user and month and aggregates them
// from scratch without releasing the lock in between.
func (e *Engine) Rebuild(ctx context.Context, userID uuid.UUID, month types.Month) ([]models.Summary, error) {
	key := models.Key{UserID: userID, Month: month}

	unlock, err := e.locks.lock(ctx, key)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if err := e.reset(ctx, key); err != nil {
		return nil, err
	}

	return e.aggregate(ctx, key)
}

func (e *Engine) reset(ctx context.Context, key models.Key) error {
	if err := e.summaries.DeleteAllFor(ctx, key.UserID, key.Month); err != nil {
		return fmt.Errorf("resetting summaries for %s: %w", key, err)
	}

	log.Info().Str("user", key.UserID.String()).Str("month", key.Month.String()).Msg("summaries reset")
	return nil
}

func (e *Engine) aggregate(ctx context.Context, key models.Key) (summaries []models.Summary, err error) {
	start := time.Now()
	result := "unchanged"

	defer func() {
		if err != nil {
			result = "failed"
			if ctx.Err() != nil {
				result = "cancelled"
			}
		}

		metrics.AggregationRuns.WithLabelValues(result).Inc()
		metrics.AggregationDuration.Observe(time.Since(start).Seconds())
	}()

	existing, err := e.summaries.FindAllFor(ctx, key.UserID, key.Month)
	if err != nil {
		return nil, fmt.Errorf("loading summaries for %s: %w", key, err)
	}

	// The scan start must be taken before the first page is read. Rows
	// ingested later belong to the next run.
	window := store.Window{
		Since: lowWaterMark(existing),
		Until: e.now().UTC(),
	}

	acc, scanned, err := e.scan(ctx, key, window)
	if err != nil {
		// The driver reports interrupted queries with its own error
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, err
	}

	deltas := acc.deltas()
	if len(deltas) == 0 {
		sortSummaries(existing)
		return existing, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	merged := merge(key, existing, deltas, window.Until)
	if err := e.summaries.SaveAll(ctx, merged); err != nil {
		return nil, fmt.Errorf("merging summaries for %s: %w", key, err)
	}

	result = "merged"
	metrics.AggregatedTransactions.Add(float64(scanned))

	log.Debug().
		Str("user", key.UserID.String()).
		Str("month", key.Month.String()).
		Int("scanned", scanned).
		Int("categories", len(deltas)).
		Time("watermark", window.Until).
		Msg("aggregation")

	sortSummaries(merged)
	return merged, nil
}

// scan folds all transactions in the window into an accumulator.
//
// The first page is read on its own to learn the total. The remaining
// pages are fetched concurrently. Cancellation is checked before every page.
func (e *Engine) scan(ctx context.Context, key models.Key, window store.Window) (*accumulator, int, error) {
	acc := newAccumulator()

	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	first, err := e.transactions.Page(ctx, key.UserID, key.Month, window, store.PageRequest{Number: 0, Size: e.pageSize})
	if err != nil {
		return nil, 0, fmt.Errorf("scanning transactions for %s: %w", key, err)
	}

	var scanned atomic.Int64
	scanned.Add(int64(acc.add(first.Items)))

	if first.IsLast {
		return acc, int(scanned.Load()), nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	for n := 1; n < first.Pages(e.pageSize); n++ {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			page, err := e.transactions.Page(gctx, key.UserID, key.Month, window, store.PageRequest{Number: n, Size: e.pageSize})
			if err != nil {
				return fmt.Errorf("scanning transactions for %s: %w", key, err)
			}

			scanned.Add(int64(acc.add(page.Items)))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	return acc, int(scanned.Load()), nil
}

// lowWaterMark returns the oldest watermark of the summaries. It is the
// zero time when there are no summaries.
func lowWaterMark(summaries []models.Summary) time.Time {
	var low time.Time
	for _, s := range summaries {
		if low.IsZero() || s.LastAggregatedAt.Before(low) {
			low = s.LastAggregatedAt
		}
	}
	return low
}

// merge adds the deltas to copies of the existing summaries and creates
// summaries for new categories. All summaries get the new watermark.
func merge(key models.Key, existing []models.Summary, deltas map[uuid.UUID]*bucket, watermark time.Time) []models.Summary {
	merged := make([]models.Summary, len(existing))
	copy(merged, existing)

	index := make(map[uuid.UUID]int, len(merged))
	for i := range merged {
		merged[i].LastAggregatedAt = watermark
		index[merged[i].CategoryID] = i
	}

	for categoryID, delta := range deltas {
		if i, ok := index[categoryID]; ok {
			merged[i].TotalAmount = merged[i].TotalAmount.Add(delta.amount)
			merged[i].TotalEmission = merged[i].TotalEmission.Add(delta.emission)
			continue
		}

		merged = append(merged, models.Summary{
			UserID:           key.UserID,
			Month:            key.Month,
			CategoryID:       categoryID,
			TotalAmount:      delta.amount,
			TotalEmission:    delta.emission,
			LastAggregatedAt: watermark,
		})
	}

	return merged
}

func sortSummaries(summaries []models.Summary) {
	slices.SortFunc(summaries, func(a, b models.Summary) int {
		return bytes.Compare(a.CategoryID[:], b.CategoryID[:])
	})
}
