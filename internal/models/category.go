package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Category is a spending category. Global categories have no owner.
type Category struct {
	DefaultModel
	Name           string          `json:"name" gorm:"uniqueIndex:category_user_name;uniqueIndex:category_global_name,where:user_id IS NULL" example:"Groceries"` // Name of the category
	Global         bool            `json:"global" example:"true"`                                                                                                 // Is the category shared between all users?
	EmissionFactor decimal.Decimal `json:"emissionFactor" gorm:"type:TEXT" example:"0.05"`                                                                        // Emission per currency unit spent
	UserID         *uuid.UUID      `json:"userId" gorm:"uniqueIndex:category_user_name" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`                           // Owner of the category, null for global categories
}

// BeforeSave
//   - trims the name
//   - derives the global flag from the owner
//   - validates the emission factor
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return ErrCategoryNameEmpty
	}

	if c.UserID != nil && *c.UserID == uuid.Nil {
		c.UserID = nil
	}
	c.Global = c.UserID == nil

	if c.EmissionFactor.IsNegative() {
		return ErrEmissionFactorNegative
	}

	return nil
}

// VisibleTo reports whether the user may categorize with this category.
func (c Category) VisibleTo(userID uuid.UUID) bool {
	return c.Global || (c.UserID != nil && *c.UserID == userID)
}
