// Package ingest turns single requests and import files into categorized transactions.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/carbonledger/backend/internal/emission"
	"github.com/carbonledger/backend/internal/mapping"
	"github.com/carbonledger/backend/internal/metrics"
	"github.com/carbonledger/backend/internal/models"
	"github.com/carbonledger/backend/internal/store"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// Result summarizes an import.
type Result struct {
	Accepted    int       `json:"accepted" example:"8"` // Number of persisted transactions
	Skipped     int       `json:"skipped" example:"2"`  // Number of rows that could not be imported
	SkippedRows []Skipped `json:"skippedRows"`          // The skipped rows with the reason
}

func (r *Result) skip(line int, err error) {
	r.SkippedRows = append(r.SkippedRows, Skipped{Line: line, Reason: err.Error()})
	r.Skipped = len(r.SkippedRows)
}

// Ingestor categorizes and persists transactions.
type Ingestor struct {
	users        store.UserStore
	transactions store.TransactionStore
	normalizer   *mapping.Normalizer
	resolver     *mapping.Resolver
	now          func() time.Time
	pageSize     int
}

type Option func(*Ingestor)

// WithClock sets the clock used as default transaction date.
func WithClock(now func() time.Time) Option {
	return func(i *Ingestor) {
		i.now = now
	}
}

// WithPageSize sets the number of transactions persisted per database transaction.
func WithPageSize(size int) Option {
	return func(i *Ingestor) {
		if size > 0 {
			i.pageSize = size
		}
	}
}

func New(users store.UserStore, transactions store.TransactionStore, normalizer *mapping.Normalizer, resolver *mapping.Resolver, opts ...Option) *Ingestor {
	i := &Ingestor{
		users:        users,
		transactions: transactions,
		normalizer:   normalizer,
		resolver:     resolver,
		now:          time.Now,
		pageSize:     store.DefaultPageSize,
	}

	for _, opt := range opts {
		opt(i)
	}

	return i
}

// AddOne categorizes and persists a single transaction.
func (i *Ingestor) AddOne(ctx context.Context, req Request, userID uuid.UUID) (models.Transaction, error) {
	if err := i.checkUser(ctx, userID); err != nil {
		return models.Transaction{}, err
	}

	req, err := req.normalize()
	if err != nil {
		return models.Transaction{}, err
	}

	rules, err := i.normalizer.Rules(ctx, userID)
	if err != nil {
		return models.Transaction{}, err
	}

	transaction, err := i.build(ctx, req, userID, rules, nil)
	if err != nil {
		return models.Transaction{}, err
	}

	transactions := []models.Transaction{transaction}
	if err := i.transactions.SaveAll(ctx, transactions); err != nil {
		return models.Transaction{}, fmt.Errorf("persisting transaction: %w", err)
	}

	return transactions[0], nil
}

// ImportBatch parses, categorizes and persists import rows.
//
// Rows that cannot be parsed are skipped and reported in the result.
// Valid rows are persisted in pages, each in its own database transaction.
// When resolution or persistence fails, the import stops and the result
// up to that point is returned with the error. Pages persisted before
// stay persisted.
func (i *Ingestor) ImportBatch(ctx context.Context, rows []Row, userID uuid.UUID) (Result, error) {
	result := Result{SkippedRows: make([]Skipped, 0)}

	if err := i.checkUser(ctx, userID); err != nil {
		return result, err
	}

	rules, err := i.normalizer.Rules(ctx, userID)
	if err != nil {
		return result, err
	}

	resolved := make(map[string]models.Mapping)
	page := make([]models.Transaction, 0, i.pageSize)

	flush := func() error {
		if len(page) == 0 {
			return nil
		}

		if err := i.transactions.SaveAll(ctx, page); err != nil {
			return fmt.Errorf("persisting page of %d transactions: %w", len(page), err)
		}

		result.Accepted += len(page)
		page = make([]models.Transaction, 0, i.pageSize)
		return nil
	}

	defer func() {
		metrics.ImportRows.WithLabelValues("accepted").Add(float64(result.Accepted))
		metrics.ImportRows.WithLabelValues("skipped").Add(float64(result.Skipped))
	}()

	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		req, err := ParseRow(row.Fields)
		if err != nil {
			result.skip(row.Line, err)
			continue
		}

		transaction, err := i.build(ctx, req, userID, rules, resolved)
		if err != nil {
			return result, err
		}

		page = append(page, transaction)
		if len(page) == i.pageSize {
			if err := flush(); err != nil {
				return result, err
			}
		}
	}

	if err := flush(); err != nil {
		return result, err
	}

	log.Info().Str("user", userID.String()).Int("accepted", result.Accepted).Int("skipped", result.Skipped).Msg("import")
	return result, nil
}

// ImportCSV reads an import file and imports its rows.
func (i *Ingestor) ImportCSV(ctx context.Context, r io.Reader, userID uuid.UUID) (Result, error) {
	rows, skipped, err := ReadCSV(r)
	if err != nil {
		return Result{SkippedRows: make([]Skipped, 0)}, err
	}

	result, err := i.ImportBatch(ctx, rows, userID)
	if len(skipped) > 0 {
		result.SkippedRows = append(result.SkippedRows, skipped...)
		slices.SortFunc(result.SkippedRows, func(a, b Skipped) int {
			return a.Line - b.Line
		})
		result.Skipped = len(result.SkippedRows)
	}

	return result, err
}

func (i *Ingestor) checkUser(ctx context.Context, userID uuid.UUID) error {
	_, err := i.users.FindUser(ctx, userID)
	if errors.Is(err, models.ErrResourceNotFound) {
		return fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}

	return err
}

// build resolves the request to a transaction. Resolved mappings are
// cached by merchant name if a cache is passed.
func (i *Ingestor) build(ctx context.Context, req Request, userID uuid.UUID, rules []models.MerchantRule, cache map[string]models.Mapping) (models.Transaction, error) {
	merchant := mapping.Apply(req.MerchantName, rules)

	m, ok := cache[merchant]
	if !ok {
		var err error
		m, err = i.resolver.Resolve(ctx, merchant, userID)
		if err != nil {
			return models.Transaction{}, fmt.Errorf("%w: %w", ErrResolutionFailed, err)
		}

		if cache != nil {
			cache[merchant] = m
		}
	}

	date := req.Date
	if date.IsZero() {
		date = i.now()
	}

	transaction := models.Transaction{
		UserID:       userID,
		Amount:       req.Amount,
		PaymentMode:  req.PaymentMode,
		MerchantID:   req.MerchantID,
		MerchantName: merchant,
		Kind:         req.Kind,
		Date:         date.UTC(),
	}
	emission.Apply(&transaction, m)

	return transaction, nil
}
