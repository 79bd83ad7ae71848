package ingest

import (
	"fmt"
	"strings"
	"time"

	"github.com/carbonledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Columns of an import file, in order.
const (
	ColumnAmount = iota
	ColumnPaymentMode
	ColumnMerchantID
	ColumnMerchantName
	ColumnKind
	ColumnTimestamp
	columnCount
)

var timestampLayouts = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02",
}

// Request is a single transaction to ingest.
type Request struct {
	Amount       decimal.Decimal        `json:"amount" example:"100.00"`
	PaymentMode  models.PaymentMode     `json:"paymentMode" example:"UPI"`
	MerchantID   string                 `json:"merchantId" example:"M-2231"`
	MerchantName string                 `json:"merchantName" example:"Amazon"` // Raw merchant name, merchant rules are applied to it
	Kind         models.TransactionKind `json:"kind" example:"DEBIT"`
	Date         time.Time              `json:"date" example:"2024-03-15T10:30:00Z"` // When the transaction happened. Defaults to the ingestion time
}

// normalize validates the request and canonicalizes its enum tokens.
func (r Request) normalize() (Request, error) {
	if !r.Amount.IsPositive() {
		return Request{}, fmt.Errorf("%w: %s", models.ErrAmountNotPositive, r.Amount)
	}

	mode, err := models.ParsePaymentMode(string(r.PaymentMode))
	if err != nil {
		return Request{}, err
	}
	r.PaymentMode = mode

	kind, err := models.ParseTransactionKind(string(r.Kind))
	if err != nil {
		return Request{}, err
	}
	r.Kind = kind

	if models.NormalizeMerchant(r.MerchantName) == "" {
		return Request{}, models.ErrMerchantNameEmpty
	}

	r.MerchantID = strings.TrimSpace(r.MerchantID)
	return r, nil
}

// ParseRow parses the fields of one import row.
func ParseRow(fields []string) (Request, error) {
	if len(fields) < columnCount {
		return Request{}, fmt.Errorf("%w: expected %d, got %d", ErrTooFewColumns, columnCount, len(fields))
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(fields[ColumnAmount]))
	if err != nil {
		return Request{}, fmt.Errorf("%w: %q", ErrAmountInvalid, fields[ColumnAmount])
	}

	date, err := parseTimestamp(fields[ColumnTimestamp])
	if err != nil {
		return Request{}, err
	}

	return Request{
		Amount:       amount,
		PaymentMode:  models.PaymentMode(fields[ColumnPaymentMode]),
		MerchantID:   fields[ColumnMerchantID],
		MerchantName: fields[ColumnMerchantName],
		Kind:         models.TransactionKind(fields[ColumnKind]),
		Date:         date,
	}.normalize()
}

func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrTimestampInvalid, s)
}
