package test

import (
	"testing"

	"github.com/carbonledger/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Create saves the record and fails the test if that is not possible.
func Create[T any](t *testing.T, db *gorm.DB, record T) T {
	err := db.Create(&record).Error
	require.Nil(t, err, "Record could not be saved: %#v", record)
	return record
}

// Fallback provisions the global MISCELLANEOUS mapping with the factor.
func Fallback(t *testing.T, db *gorm.DB, factor string) models.Mapping {
	require.Nil(t, models.SeedFallback(db, decimal.RequireFromString(factor)))

	var mapping models.Mapping
	require.Nil(t, db.Preload("Category").First(&mapping, "merchant_name = ? AND user_id IS NULL", models.Miscellaneous).Error)
	return mapping
}
