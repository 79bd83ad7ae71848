package mapping

import (
	"context"
	"errors"
	"fmt"

	"github.com/carbonledger/backend/internal/models"
	"github.com/carbonledger/backend/internal/store"
	"github.com/google/uuid"
)

var (
	ErrCategoryNotVisible = errors.New("the category is neither global nor owned by the user")
	ErrCategoryNotGlobal  = errors.New("global mappings must point to a global category")
)

// Service manages user defined mappings.
type Service struct {
	users      store.UserStore
	categories store.CategoryStore
	mappings   store.MappingStore
}

func NewService(users store.UserStore, categories store.CategoryStore, mappings store.MappingStore) *Service {
	return &Service{users: users, categories: categories, mappings: mappings}
}

// AddCustom creates a mapping of the merchant to the category for the user.
//
// The category must be global or belong to the user.
func (s *Service) AddCustom(ctx context.Context, userID uuid.UUID, merchant string, categoryID uuid.UUID) (models.Mapping, error) {
	if _, err := s.users.FindUser(ctx, userID); err != nil {
		return models.Mapping{}, err
	}

	category, err := s.categories.FindCategory(ctx, categoryID)
	if err != nil {
		return models.Mapping{}, err
	}

	if !category.VisibleTo(userID) {
		return models.Mapping{}, ErrCategoryNotVisible
	}

	mapping := models.Mapping{
		MerchantName: merchant,
		UserID:       &userID,
		CategoryID:   category.ID,
	}

	if err := s.mappings.CreateMapping(ctx, &mapping); err != nil {
		return models.Mapping{}, fmt.Errorf("creating mapping: %w", err)
	}

	mapping.Category = category
	return mapping, nil
}

// AddGlobal creates a mapping of the merchant to the category for all users.
func (s *Service) AddGlobal(ctx context.Context, merchant string, categoryID uuid.UUID) (models.Mapping, error) {
	category, err := s.categories.FindCategory(ctx, categoryID)
	if err != nil {
		return models.Mapping{}, err
	}

	if !category.Global {
		return models.Mapping{}, ErrCategoryNotGlobal
	}

	mapping := models.Mapping{
		MerchantName: merchant,
		CategoryID:   category.ID,
	}

	if err := s.mappings.CreateMapping(ctx, &mapping); err != nil {
		return models.Mapping{}, fmt.Errorf("creating mapping: %w", err)
	}

	mapping.Category = category
	return mapping, nil
}
