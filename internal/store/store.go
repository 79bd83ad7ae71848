// Package store declares the repositories the ledger depends on and
// implements them on top of gorm.
package store

import (
	"context"
	"time"

	"github.com/carbonledger/backend/internal/models"
	"github.com/carbonledger/backend/internal/types"
	"github.com/google/uuid"
)

// DefaultPageSize is the number of rows fetched or written per page.
const DefaultPageSize = 500

type UserStore interface {
	FindUser(ctx context.Context, id uuid.UUID) (models.User, error)
}

type CategoryStore interface {
	FindCategory(ctx context.Context, id uuid.UUID) (models.Category, error)
	// FindCategoryByName finds a category by name. A nil owner searches global categories.
	FindCategoryByName(ctx context.Context, name string, owner *uuid.UUID) (models.Category, error)
	SaveCategory(ctx context.Context, category *models.Category) error
}

type MappingStore interface {
	// FindBestMapping returns the user's mapping for the merchant if one
	// exists, the global mapping otherwise. The Category is preloaded.
	FindBestMapping(ctx context.Context, merchantName string, userID uuid.UUID) (models.Mapping, error)
	// MerchantNames lists all merchant names with a mapping visible to the user.
	MerchantNames(ctx context.Context, userID uuid.UUID) ([]string, error)
	CreateMapping(ctx context.Context, mapping *models.Mapping) error
}

type MerchantRuleStore interface {
	// MerchantRules returns the rules applying to the user in the order they
	// are evaluated.
	MerchantRules(ctx context.Context, userID uuid.UUID) ([]models.MerchantRule, error)
}

// Window bounds a transaction scan by ingestion time. Since is exclusive
// and ignored when zero, Until is inclusive.
type Window struct {
	Since time.Time
	Until time.Time
}

// PageRequest selects a page. Numbers start at 0.
type PageRequest struct {
	Number int
	Size   int
}

// Page is a page of transactions.
type Page struct {
	Items  []models.Transaction
	Number int
	Total  int64
	IsLast bool
}

// Pages returns the number of pages needed for the total at the given size.
func (p Page) Pages(size int) int {
	if size <= 0 || p.Total == 0 {
		return 1
	}
	return int((p.Total + int64(size) - 1) / int64(size))
}

type TransactionStore interface {
	// Page returns debit transactions of the user dated in the month and
	// ingested within the window, ordered by ingestion time and id.
	Page(ctx context.Context, userID uuid.UUID, month types.Month, window Window, req PageRequest) (Page, error)
	// SaveAll persists all transactions in a single database transaction
	// and stamps them with the ingestion time.
	SaveAll(ctx context.Context, transactions []models.Transaction) error
}

type SummaryStore interface {
	FindAllFor(ctx context.Context, userID uuid.UUID, month types.Month) ([]models.Summary, error)
	// SaveAll creates or updates all summaries in a single database transaction.
	SaveAll(ctx context.Context, summaries []models.Summary) error
	DeleteAllFor(ctx context.Context, userID uuid.UUID, month types.Month) error
}
