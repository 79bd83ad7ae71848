// Package mapping resolves merchant names to categories.
package mapping

import (
	"context"
	"errors"
	"fmt"

	"github.com/carbonledger/backend/internal/models"
	"github.com/carbonledger/backend/internal/store"
	"github.com/google/uuid"
)

var ErrMappingNotFound = errors.New("no mapping found for the merchant and the global MISCELLANEOUS fallback does not exist")

// Resolver finds the mapping for a merchant.
type Resolver struct {
	mappings store.MappingStore
}

func NewResolver(mappings store.MappingStore) *Resolver {
	return &Resolver{mappings: mappings}
}

// Resolve returns the first mapping that exists in this order:
//
//  1. the user's mapping for the merchant
//  2. the global mapping for the merchant
//  3. the user's MISCELLANEOUS mapping
//  4. the global MISCELLANEOUS mapping
//
// The merchant name is normalized before the lookup. The returned
// mapping has its Category loaded.
func (r *Resolver) Resolve(ctx context.Context, merchantName string, userID uuid.UUID) (models.Mapping, error) {
	name := models.NormalizeMerchant(merchantName)

	candidates := []string{name, models.Miscellaneous}
	if name == models.Miscellaneous {
		candidates = candidates[1:]
	}

	for _, candidate := range candidates {
		mapping, err := r.mappings.FindBestMapping(ctx, candidate, userID)
		if err == nil {
			return mapping, nil
		}

		if !errors.Is(err, models.ErrResourceNotFound) {
			return models.Mapping{}, fmt.Errorf("looking up mapping for %s: %w", candidate, err)
		}
	}

	return models.Mapping{}, fmt.Errorf("%w: %s", ErrMappingNotFound, name)
}
