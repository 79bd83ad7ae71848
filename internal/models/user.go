package models

import (
	"strings"

	"gorm.io/gorm"
)

// User owns transactions, private categories and private mappings.
type User struct {
	DefaultModel
	Name string `json:"name" gorm:"uniqueIndex" example:"Aditi"` // Name of the user
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Name = strings.TrimSpace(u.Name)
	if u.Name == "" {
		return ErrUserNameEmpty
	}

	return nil
}
