package models_test

import (
	"github.com/carbonledger/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestNotFoundErrorNamesResource() {
	var category models.Category
	err := models.DB.First(&category, "id = ?", uuid.New()).Error

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Equal("there is no category matching your query", err.Error())

	var summary models.Summary
	err = models.DB.First(&summary, "id = ?", uuid.New()).Error
	suite.Assert().Equal("there is no monthly category summary matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestClosedDatabaseIsGeneralError() {
	suite.CloseDB()

	var users []models.User
	err := models.DB.Find(&users).Error
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestUserNameUnique() {
	_ = suite.createTestUser(models.User{Name: "kiran"})
	err := models.DB.Create(&models.User{Name: "kiran"}).Error
	suite.Assert().ErrorIs(err, models.ErrUserNameNotUnique)
}

func (suite *TestSuiteStandard) TestSeedFallback() {
	factor := decimal.NewFromFloat(0.01)
	suite.Require().Nil(models.SeedFallback(models.DB, factor))

	var mapping models.Mapping
	suite.Require().Nil(models.DB.Preload("Category").Where("merchant_name = ? AND user_id IS NULL", models.Miscellaneous).First(&mapping).Error)
	suite.Assert().True(mapping.Global)
	suite.Assert().Equal(models.Miscellaneous, mapping.Category.Name)
	suite.Assert().True(mapping.Category.EmissionFactor.Equal(factor))

	// Seeding twice leaves a single fallback
	suite.Require().Nil(models.SeedFallback(models.DB, decimal.NewFromInt(9)))

	var count int64
	models.DB.Model(&models.Mapping{}).Where("merchant_name = ?", models.Miscellaneous).Count(&count)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestSeedFallbackReusesCategory() {
	category := suite.createTestCategory(models.Category{Name: models.Miscellaneous, EmissionFactor: decimal.NewFromInt(2)})
	suite.Require().Nil(models.SeedFallback(models.DB, decimal.Zero))

	var mapping models.Mapping
	suite.Require().Nil(models.DB.Where("merchant_name = ?", models.Miscellaneous).First(&mapping).Error)
	suite.Assert().Equal(category.ID, mapping.CategoryID)
}
