package aggregation

import (
	"sync"

	"github.com/carbonledger/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// bucket holds the deltas of one category.
type bucket struct {
	mu       sync.Mutex
	amount   decimal.Decimal
	emission decimal.Decimal
	count    int
}

// accumulator collects per category deltas from concurrently fetched pages.
type accumulator struct {
	mu      sync.Mutex
	buckets map[uuid.UUID]*bucket
}

func newAccumulator() *accumulator {
	return &accumulator{buckets: make(map[uuid.UUID]*bucket)}
}

func (a *accumulator) bucketFor(categoryID uuid.UUID) *bucket {
	a.mu.Lock()
	defer a.mu.Unlock()

	b, ok := a.buckets[categoryID]
	if !ok {
		b = &bucket{}
		a.buckets[categoryID] = b
	}
	return b
}

// add folds the transactions into their category buckets and returns how
// many were folded. Transactions without a category are ignored.
func (a *accumulator) add(transactions []models.Transaction) int {
	added := 0
	for _, t := range transactions {
		if t.CategoryID == nil {
			continue
		}

		b := a.bucketFor(*t.CategoryID)
		b.mu.Lock()
		b.amount = b.amount.Add(t.Amount)
		b.emission = b.emission.Add(t.Emission)
		b.count++
		b.mu.Unlock()

		added++
	}

	return added
}

// deltas returns the buckets. It must only be called once all adds are done.
func (a *accumulator) deltas() map[uuid.UUID]*bucket {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.buckets
}
