// Package emission computes the carbon emission of transactions.
package emission

import (
	"github.com/carbonledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Compute returns amount × emission factor of the category for debit
// transactions resolved through a global mapping. All other
// transactions have no emission.
func Compute(transaction models.Transaction, category models.Category, mappingIsGlobal bool) decimal.Decimal {
	if transaction.Kind != models.Debit || !mappingIsGlobal {
		return decimal.Zero
	}

	return transaction.Amount.Mul(category.EmissionFactor)
}

// Apply sets the category, emission and index flag of the transaction from the mapping.
func Apply(transaction *models.Transaction, mapping models.Mapping) {
	categoryID := mapping.Category.ID
	transaction.CategoryID = &categoryID
	transaction.CountsTowardIndex = mapping.Global
	transaction.Emission = Compute(*transaction, mapping.Category, mapping.Global)
}

// Override moves the transaction to a category chosen by its owner. An
// overridden transaction no longer counts toward the global emission index.
func Override(transaction *models.Transaction, category models.Category) {
	categoryID := category.ID
	transaction.CategoryID = &categoryID
	transaction.CountsTowardIndex = false
	transaction.Emission = decimal.Zero
}
