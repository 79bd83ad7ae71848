package models

import (
	"time"

	"github.com/carbonledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Summary is the aggregated spending and emission of one category for one
// user in one month. It is derived state that can always be rebuilt from
// the transactions.
type Summary struct {
	ID               uuid.UUID       `json:"id" example:"5f1c9b0e-3d86-4c39-9c70-3e4bb87f6f64"`
	UserID           uuid.UUID       `json:"userId" gorm:"uniqueIndex:summary_key,priority:1" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`
	Month            types.Month     `json:"month" gorm:"uniqueIndex:summary_key,priority:2" example:"2024-03"`
	CategoryID       uuid.UUID       `json:"categoryId" gorm:"uniqueIndex:summary_key,priority:3" example:"cee2b3c2-8bb3-4b1a-9a63-0ab4f8ea9e0a"`
	Category         Category        `json:"-"`
	TotalAmount      decimal.Decimal `json:"totalAmount" gorm:"type:TEXT" example:"1520.50"`
	TotalEmission    decimal.Decimal `json:"totalEmission" gorm:"type:TEXT" example:"76.025"`
	LastAggregatedAt time.Time       `json:"lastAggregatedAt" example:"2024-03-31T18:00:00Z"` // Watermark: transactions ingested up to this time are included
	CreatedAt        time.Time       `json:"createdAt" example:"2024-03-02T08:00:00Z"`
	UpdatedAt        time.Time       `json:"updatedAt" example:"2024-03-31T18:00:00Z"`
}

// TableName keeps the table name explicit since "summaries" alone is ambiguous.
func (Summary) TableName() string {
	return "monthly_category_summaries"
}

func (s *Summary) BeforeCreate(_ *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func (s *Summary) BeforeSave(_ *gorm.DB) error {
	s.LastAggregatedAt = s.LastAggregatedAt.In(time.UTC)
	return nil
}

func (s *Summary) AfterFind(_ *gorm.DB) error {
	s.LastAggregatedAt = s.LastAggregatedAt.In(time.UTC)
	s.CreatedAt = s.CreatedAt.In(time.UTC)
	s.UpdatedAt = s.UpdatedAt.In(time.UTC)
	return nil
}

// Key identifies the user and month an aggregation runs for.
type Key struct {
	UserID uuid.UUID
	Month  types.Month
}

func (k Key) String() string {
	return k.UserID.String() + "/" + k.Month.String()
}
