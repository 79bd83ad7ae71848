package models

import (
	"strings"
	"time"

	"github.com/carbonledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is a single spending or income record of a user.
//
// Date is when the transaction happened and decides the month it is
// aggregated into. CreatedAt is when it was ingested and is what the
// aggregation watermark is compared against.
type Transaction struct {
	DefaultModel
	UserID            uuid.UUID       `json:"userId" gorm:"index:transaction_scan,priority:1" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`
	User              User            `json:"-"`
	Amount            decimal.Decimal `json:"amount" gorm:"type:TEXT" example:"100.00"`
	PaymentMode       PaymentMode     `json:"paymentMode" example:"UPI"`
	MerchantID        string          `json:"merchantId" example:"M-2231"`
	MerchantName      string          `json:"merchantName" example:"AMAZON"`
	Kind              TransactionKind `json:"kind" gorm:"index:transaction_scan,priority:3" example:"DEBIT"`
	CategoryID        *uuid.UUID      `json:"categoryId" example:"cee2b3c2-8bb3-4b1a-9a63-0ab4f8ea9e0a"`
	Category          *Category       `json:"-"`
	Emission          decimal.Decimal `json:"emission" gorm:"type:TEXT" example:"5.00"`
	CountsTowardIndex bool            `json:"countsTowardIndex" example:"true"` // Resolved through a global mapping and therefore part of the global emission index
	Date              time.Time       `json:"date" example:"2024-03-15T10:30:00Z"`
	Month             types.Month     `json:"month" gorm:"index:transaction_scan,priority:2" example:"2024-03"`
}

// AfterFind enforces UTC for all timestamps.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	return
}

// BeforeSave
//   - normalizes the merchant name
//   - sets the timezone for the Date to UTC and derives the Month
//   - enforces the emission invariant
func (t *Transaction) BeforeSave(_ *gorm.DB) (err error) {
	t.MerchantName = NormalizeMerchant(t.MerchantName)
	t.MerchantID = strings.TrimSpace(t.MerchantID)

	if t.CategoryID != nil && *t.CategoryID == uuid.Nil {
		t.CategoryID = nil
	}

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}
	t.Month = types.MonthOf(t.Date)

	if !t.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if t.Emission.IsNegative() {
		return ErrEmissionNegative
	}

	if !t.Emission.IsZero() && (t.Kind != Debit || !t.CountsTowardIndex) {
		return ErrEmissionNotCounted
	}

	return
}
