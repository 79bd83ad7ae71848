package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MerchantRule rewrites raw merchant names matching a glob pattern to a
// canonical merchant name before mapping resolution.
type MerchantRule struct {
	DefaultModel
	UserID   *uuid.UUID `json:"userId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"` // Owner of the rule, null for rules applying to everyone
	Priority uint       `json:"priority" example:"3"`                                  // Rules with a lower priority value are applied first
	Match    string     `json:"match" example:"AMZN*"`                                 // Glob pattern, matched against the upper-cased merchant name
	Merchant string     `json:"merchant" example:"AMAZON"`                             // Merchant name to use when the rule matches
}

func (r *MerchantRule) BeforeSave(_ *gorm.DB) error {
	r.Match = NormalizeMerchant(r.Match)
	r.Merchant = NormalizeMerchant(r.Merchant)

	if r.Match == "" {
		return ErrMatchEmpty
	}

	if r.Merchant == "" {
		return ErrMerchantNameEmpty
	}

	if r.UserID != nil && *r.UserID == uuid.Nil {
		r.UserID = nil
	}

	return nil
}
