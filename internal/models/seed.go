package models

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SeedFallback provisions the global MISCELLANEOUS category and mapping
// if they do not exist yet. Existing records are left untouched.
func SeedFallback(db *gorm.DB, emissionFactor decimal.Decimal) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var mapping Mapping
		err := tx.Where("merchant_name = ? AND user_id IS NULL", Miscellaneous).First(&mapping).Error
		if err == nil {
			return nil
		}

		if !errors.Is(err, ErrResourceNotFound) {
			return fmt.Errorf("looking up fallback mapping: %w", err)
		}

		var category Category
		err = tx.Where("name = ? AND user_id IS NULL", Miscellaneous).First(&category).Error
		if errors.Is(err, ErrResourceNotFound) {
			category = Category{Name: Miscellaneous, EmissionFactor: emissionFactor}
			err = tx.Create(&category).Error
		}

		if err != nil {
			return fmt.Errorf("provisioning fallback category: %w", err)
		}

		mapping = Mapping{MerchantName: Miscellaneous, CategoryID: category.ID}
		if err := tx.Create(&mapping).Error; err != nil {
			return fmt.Errorf("provisioning fallback mapping: %w", err)
		}

		return nil
	})
}
