package mapping

import (
	"context"
	"fmt"

	"github.com/carbonledger/backend/internal/models"
	"github.com/carbonledger/backend/internal/store"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
)

// Normalizer turns raw merchant strings into the names mappings are keyed by.
type Normalizer struct {
	rules store.MerchantRuleStore
}

func NewNormalizer(rules store.MerchantRuleStore) *Normalizer {
	return &Normalizer{rules: rules}
}

// Rules loads the merchant rules for the user in evaluation order.
func (n *Normalizer) Rules(ctx context.Context, userID uuid.UUID) ([]models.MerchantRule, error) {
	rules, err := n.rules.MerchantRules(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading merchant rules: %w", err)
	}
	return rules, nil
}

// Normalize trims and upper-cases the name, then applies the first
// merchant rule matching it.
func (n *Normalizer) Normalize(ctx context.Context, raw string, userID uuid.UUID) (string, error) {
	rules, err := n.Rules(ctx, userID)
	if err != nil {
		return "", err
	}

	return Apply(raw, rules), nil
}

// Apply normalizes the name with already loaded rules.
func Apply(raw string, rules []models.MerchantRule) string {
	name := models.NormalizeMerchant(raw)

	// Rules are sorted, the first match wins
	for _, rule := range rules {
		if glob.Glob(rule.Match, name) {
			return rule.Merchant
		}
	}

	return name
}
