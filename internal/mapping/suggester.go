package mapping

import (
	"context"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/carbonledger/backend/internal/models"
	"github.com/carbonledger/backend/internal/store"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// maxRelativeDistance is the largest edit distance, relative to the longer
// name, for which a merchant is still suggested.
const maxRelativeDistance = 0.4

// Suggestion is a merchant name with an existing mapping that looks like
// the one searched for.
type Suggestion struct {
	MerchantName string `json:"merchantName" example:"AMAZON"`
	Distance     int    `json:"distance" example:"2"` // Levenshtein distance to the searched merchant name
}

// Suggester proposes existing mappings for unknown merchants.
type Suggester struct {
	mappings store.MappingStore
}

func NewSuggester(mappings store.MappingStore) *Suggester {
	return &Suggester{mappings: mappings}
}

// Suggest returns up to limit merchant names visible to the user, closest first.
func (s *Suggester) Suggest(ctx context.Context, merchant string, userID uuid.UUID, limit int) ([]Suggestion, error) {
	name := models.NormalizeMerchant(merchant)
	if name == "" {
		return nil, models.ErrMerchantNameEmpty
	}

	names, err := s.mappings.MerchantNames(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing merchant names: %w", err)
	}

	suggestions := make([]Suggestion, 0)
	for _, candidate := range names {
		if candidate == models.Miscellaneous {
			continue
		}

		distance := levenshtein.ComputeDistance(name, candidate)
		longest := max(len(name), len(candidate))
		if float64(distance)/float64(longest) >= maxRelativeDistance {
			continue
		}

		suggestions = append(suggestions, Suggestion{MerchantName: candidate, Distance: distance})
	}

	slices.SortFunc(suggestions, func(a, b Suggestion) int {
		if a.Distance != b.Distance {
			return a.Distance - b.Distance
		}
		return strings.Compare(a.MerchantName, b.MerchantName)
	})

	if limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}

	return suggestions, nil
}
