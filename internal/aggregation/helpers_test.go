package aggregation_test

import (
	"context"
	"errors"
	"sync"

	"github.com/carbonledger/backend/internal/models"
	"github.com/carbonledger/backend/internal/store"
	"github.com/carbonledger/backend/internal/types"
	"github.com/google/uuid"
)

func background() context.Context {
	return context.Background()
}

var errMerge = errors.New("constraint violated")

// failingSummaries fails every merge.
type failingSummaries struct {
	store.SummaryStore
}

func (failingSummaries) SaveAll(context.Context, []models.Summary) error {
	return errMerge
}

// staleSummaries always returns the same summaries, as if other writes
// had not happened.
type staleSummaries struct {
	store.SummaryStore
	snapshot []models.Summary
}

func (s *staleSummaries) FindAllFor(context.Context, uuid.UUID, types.Month) ([]models.Summary, error) {
	return append([]models.Summary(nil), s.snapshot...), nil
}

// hookedTransactions calls a hook before each page is fetched.
type hookedTransactions struct {
	store.TransactionStore
	mu     sync.Mutex
	before func(n int)
	pages  []int
}

func (h *hookedTransactions) Page(ctx context.Context, userID uuid.UUID, month types.Month, window store.Window, req store.PageRequest) (store.Page, error) {
	h.mu.Lock()
	h.pages = append(h.pages, req.Number)
	before := h.before
	h.mu.Unlock()

	if before != nil {
		before(req.Number)
	}

	return h.TransactionStore.Page(ctx, userID, month, window, req)
}
