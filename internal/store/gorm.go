package store

import (
	"context"
	"fmt"
	"time"

	"github.com/carbonledger/backend/internal/models"
	"github.com/carbonledger/backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Gorm implements all stores on a gorm database.
type Gorm struct {
	db  *gorm.DB
	now func() time.Time
}

type Option func(*Gorm)

// WithClock sets the clock used to stamp the ingestion time of transactions.
func WithClock(now func() time.Time) Option {
	return func(g *Gorm) {
		g.now = now
	}
}

// New returns a Gorm store using db.
func New(db *gorm.DB, opts ...Option) *Gorm {
	g := &Gorm{db: db, now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Gorm) FindUser(ctx context.Context, id uuid.UUID) (models.User, error) {
	var user models.User
	err := g.db.WithContext(ctx).First(&user, "id = ?", id).Error
	return user, err
}

func (g *Gorm) FindCategory(ctx context.Context, id uuid.UUID) (models.Category, error) {
	var category models.Category
	err := g.db.WithContext(ctx).First(&category, "id = ?", id).Error
	return category, err
}

func (g *Gorm) FindCategoryByName(ctx context.Context, name string, owner *uuid.UUID) (models.Category, error) {
	var category models.Category

	q := g.db.WithContext(ctx).Where("name = ?", name)
	if owner == nil {
		q = q.Where("user_id IS NULL")
	} else {
		q = q.Where("user_id = ?", *owner)
	}

	err := q.First(&category).Error
	return category, err
}

func (g *Gorm) SaveCategory(ctx context.Context, category *models.Category) error {
	return g.db.WithContext(ctx).Save(category).Error
}

func (g *Gorm) FindBestMapping(ctx context.Context, merchantName string, userID uuid.UUID) (models.Mapping, error) {
	var mapping models.Mapping

	// User mappings sort before global ones since NULL sorts last here
	err := g.db.WithContext(ctx).
		Preload("Category").
		Where("merchant_name = ? AND (user_id = ? OR user_id IS NULL)", merchantName, userID).
		Order("user_id IS NULL ASC").
		First(&mapping).Error

	return mapping, err
}

func (g *Gorm) MerchantNames(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var names []string
	err := g.db.WithContext(ctx).
		Model(&models.Mapping{}).
		Distinct("merchant_name").
		Where("user_id = ? OR user_id IS NULL", userID).
		Order("merchant_name ASC").
		Pluck("merchant_name", &names).Error

	return names, err
}

func (g *Gorm) CreateMapping(ctx context.Context, mapping *models.Mapping) error {
	return g.db.WithContext(ctx).Omit(clause.Associations).Create(mapping).Error
}

func (g *Gorm) MerchantRules(ctx context.Context, userID uuid.UUID) ([]models.MerchantRule, error) {
	var rules []models.MerchantRule
	err := g.db.WithContext(ctx).
		Where("user_id = ? OR user_id IS NULL", userID).
		Order(`priority ASC, "match" ASC`).
		Find(&rules).Error

	return rules, err
}

func (g *Gorm) Page(ctx context.Context, userID uuid.UUID, month types.Month, window Window, req PageRequest) (Page, error) {
	if req.Size <= 0 {
		req.Size = DefaultPageSize
	}

	q := g.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("user_id = ? AND month = ? AND kind = ?", userID, month, models.Debit).
		Where("created_at <= ?", window.Until.UTC())

	if !window.Since.IsZero() {
		q = q.Where("created_at > ?", window.Since.UTC())
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return Page{}, fmt.Errorf("counting transactions: %w", err)
	}

	var items []models.Transaction
	err := q.
		Order("created_at ASC, id ASC").
		Offset(req.Number * req.Size).
		Limit(req.Size).
		Find(&items).Error
	if err != nil {
		return Page{}, fmt.Errorf("fetching page %d: %w", req.Number, err)
	}

	return Page{
		Items:  items,
		Number: req.Number,
		Total:  total,
		IsLast: int64((req.Number+1)*req.Size) >= total,
	}, nil
}

func (g *Gorm) SaveAll(ctx context.Context, transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	// The ingestion time is taken while the transaction holds the
	// connection. An aggregation capturing a later scan start can only
	// read after the commit.
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		createdAt := g.now().UTC()
		for i := range transactions {
			transactions[i].CreatedAt = createdAt
		}

		return tx.Omit(clause.Associations).CreateInBatches(&transactions, DefaultPageSize).Error
	})
}

func (g *Gorm) FindAllFor(ctx context.Context, userID uuid.UUID, month types.Month) ([]models.Summary, error) {
	var summaries []models.Summary
	err := g.db.WithContext(ctx).
		Where("user_id = ? AND month = ?", userID, month).
		Order("category_id ASC").
		Find(&summaries).Error

	return summaries, err
}

// Summaries returns a SummaryStore. Summary persistence is separate from
// transaction persistence since both have a SaveAll.
func (g *Gorm) Summaries() SummaryStore {
	return gormSummaries{g}
}

type gormSummaries struct {
	*Gorm
}

func (s gormSummaries) SaveAll(ctx context.Context, summaries []models.Summary) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range summaries {
			if err := tx.Omit(clause.Associations).Save(&summaries[i]).Error; err != nil {
				return fmt.Errorf("saving summary for category %s: %w", summaries[i].CategoryID, err)
			}
		}
		return nil
	})
}

func (s gormSummaries) DeleteAllFor(ctx context.Context, userID uuid.UUID, month types.Month) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND month = ?", userID, month).
		Delete(&models.Summary{}).Error
}
