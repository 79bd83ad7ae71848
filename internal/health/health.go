// Package health verifies that the ledger can categorize transactions.
package health

import (
	"context"
	"errors"
	"fmt"

	"github.com/carbonledger/backend/internal/models"
	"github.com/carbonledger/backend/internal/store"
	"github.com/google/uuid"
)

var ErrFallbackMissing = errors.New("the global MISCELLANEOUS mapping does not exist, set SEED_FALLBACK=true or provision it")

// CheckFallback returns ErrFallbackMissing if there is no global
// MISCELLANEOUS mapping. Without it, merchants without a mapping cannot be
// resolved and every import fails.
func CheckFallback(ctx context.Context, mappings store.MappingStore) error {
	// No user has the nil ID, so only the global mapping can match
	mapping, err := mappings.FindBestMapping(ctx, models.Miscellaneous, uuid.Nil)
	if errors.Is(err, models.ErrResourceNotFound) {
		return ErrFallbackMissing
	}

	if err != nil {
		return fmt.Errorf("checking the fallback mapping: %w", err)
	}

	if !mapping.Global {
		return ErrFallbackMissing
	}

	return nil
}
