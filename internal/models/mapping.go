package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Miscellaneous is the merchant name of the catch-all mapping.
const Miscellaneous = "MISCELLANEOUS"

// Mapping maps a normalized merchant name to a category, either for
// a single user or globally.
type Mapping struct {
	DefaultModel
	MerchantName string     `json:"merchantName" gorm:"uniqueIndex:mapping_user_merchant;uniqueIndex:mapping_global_merchant,where:user_id IS NULL" example:"AMAZON"` // Upper-cased merchant name
	Global       bool       `json:"global" example:"true"`                                                                                                            // Is the mapping shared between all users?
	UserID       *uuid.UUID `json:"userId" gorm:"uniqueIndex:mapping_user_merchant" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`                                   // Owner of the mapping, null for global mappings
	CategoryID   uuid.UUID  `json:"categoryId" example:"cee2b3c2-8bb3-4b1a-9a63-0ab4f8ea9e0a"`                                                                        // Category the merchant maps to
	Category     Category   `json:"-"`
}

func (m *Mapping) BeforeSave(_ *gorm.DB) error {
	m.MerchantName = NormalizeMerchant(m.MerchantName)
	if m.MerchantName == "" {
		return ErrMerchantNameEmpty
	}

	if m.UserID != nil && *m.UserID == uuid.Nil {
		m.UserID = nil
	}
	m.Global = m.UserID == nil

	return nil
}
