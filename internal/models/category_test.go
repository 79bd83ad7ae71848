package models_test

import (
	"testing"

	"github.com/carbonledger/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCategoryGlobalFlagFromOwner() {
	user := suite.createTestUser(models.User{})

	global := suite.createTestCategory(models.Category{Name: "Travel"})
	suite.Assert().True(global.Global)
	suite.Assert().Nil(global.UserID)

	private := suite.createTestCategory(models.Category{Name: "Travel", UserID: &user.ID})
	suite.Assert().False(private.Global)

	nilOwner := uuid.Nil
	normalized := suite.createTestCategory(models.Category{Name: "Rent", UserID: &nilOwner})
	suite.Assert().True(normalized.Global, "a nil UUID owner must be treated as global")
	suite.Assert().Nil(normalized.UserID)
}

func (suite *TestSuiteStandard) TestCategoryNameUniqueness() {
	user := suite.createTestUser(models.User{})
	other := suite.createTestUser(models.User{})

	_ = suite.createTestCategory(models.Category{Name: "Food"})
	err := models.DB.Create(&models.Category{Name: "Food"}).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryNameNotUnique, "global names must be unique")

	_ = suite.createTestCategory(models.Category{Name: "Food", UserID: &user.ID})
	err = models.DB.Create(&models.Category{Name: "Food", UserID: &user.ID}).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryNameNotUnique, "names must be unique per user")

	err = models.DB.Create(&models.Category{Name: "Food", UserID: &other.ID}).Error
	suite.Assert().Nil(err, "different users may use the same name")
}

func (suite *TestSuiteStandard) TestCategoryValidation() {
	tests := []struct {
		name     string
		category models.Category
		err      error
	}{
		{"Empty name", models.Category{Name: "  "}, models.ErrCategoryNameEmpty},
		{"Negative factor", models.Category{Name: "Fuel", EmissionFactor: decimal.NewFromFloat(-0.1)}, models.ErrEmissionFactorNegative},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.category).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoryVisibleTo() {
	user := suite.createTestUser(models.User{})
	other := suite.createTestUser(models.User{})

	global := suite.createTestCategory(models.Category{})
	private := suite.createTestCategory(models.Category{UserID: &user.ID})

	suite.Assert().True(global.VisibleTo(other.ID))
	suite.Assert().True(private.VisibleTo(user.ID))
	suite.Assert().False(private.VisibleTo(other.ID))
}
