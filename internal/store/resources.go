package store

import (
	"context"

	"github.com/carbonledger/backend/internal/models"
	"github.com/carbonledger/backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// visibleTo limits a query to global records and, if userID is set, the
// records of that user.
func visibleTo(q *gorm.DB, userID *uuid.UUID) *gorm.DB {
	if userID == nil {
		return q.Where("user_id IS NULL")
	}
	return q.Where("user_id = ? OR user_id IS NULL", *userID)
}

func (g *Gorm) CreateUser(ctx context.Context, user *models.User) error {
	return g.db.WithContext(ctx).Create(user).Error
}

// Categories lists the global categories and those of the user, by name.
func (g *Gorm) Categories(ctx context.Context, userID *uuid.UUID) ([]models.Category, error) {
	categories := make([]models.Category, 0)
	err := visibleTo(g.db.WithContext(ctx), userID).
		Order("name ASC, user_id IS NULL ASC").
		Find(&categories).Error

	return categories, err
}

// Mappings lists the global mappings and those of the user, by merchant name.
func (g *Gorm) Mappings(ctx context.Context, userID *uuid.UUID) ([]models.Mapping, error) {
	mappings := make([]models.Mapping, 0)
	err := visibleTo(g.db.WithContext(ctx), userID).
		Order("merchant_name ASC, user_id IS NULL ASC").
		Find(&mappings).Error

	return mappings, err
}

// ListMerchantRules lists merchant rules in evaluation order. Without a
// user, only the rules applying to everyone are listed.
func (g *Gorm) ListMerchantRules(ctx context.Context, userID *uuid.UUID) ([]models.MerchantRule, error) {
	rules := make([]models.MerchantRule, 0)
	err := visibleTo(g.db.WithContext(ctx), userID).
		Order(`priority ASC, "match" ASC`).
		Find(&rules).Error

	return rules, err
}

func (g *Gorm) CreateMerchantRule(ctx context.Context, rule *models.MerchantRule) error {
	return g.db.WithContext(ctx).Create(rule).Error
}

// DeleteMerchantRule deletes the rule. It returns models.ErrResourceNotFound
// if there is no such rule.
func (g *Gorm) DeleteMerchantRule(ctx context.Context, id uuid.UUID) error {
	var rule models.MerchantRule
	if err := g.db.WithContext(ctx).First(&rule, "id = ?", id).Error; err != nil {
		return err
	}

	return g.db.WithContext(ctx).Delete(&rule).Error
}

// Transactions lists the transactions of the user by date. A zero month lists all of them.
func (g *Gorm) Transactions(ctx context.Context, userID uuid.UUID, month types.Month) ([]models.Transaction, error) {
	q := g.db.WithContext(ctx).Where("user_id = ?", userID)
	if !month.IsZero() {
		q = q.Where("month = ?", month)
	}

	transactions := make([]models.Transaction, 0)
	err := q.Order("date ASC, id ASC").Find(&transactions).Error
	return transactions, err
}

func (g *Gorm) FindTransaction(ctx context.Context, id uuid.UUID) (models.Transaction, error) {
	var transaction models.Transaction
	err := g.db.WithContext(ctx).First(&transaction, "id = ?", id).Error
	return transaction, err
}

// UpdateTransaction persists the categorization of an existing transaction.
// The ingestion time is never changed.
func (g *Gorm) UpdateTransaction(ctx context.Context, transaction *models.Transaction) error {
	return g.db.WithContext(ctx).
		Model(transaction).
		Omit(clause.Associations).
		Select("category_id", "counts_toward_index", "emission").
		Updates(transaction).Error
}
