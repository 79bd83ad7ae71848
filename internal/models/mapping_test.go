package models_test

import (
	"github.com/carbonledger/backend/internal/models"
)

func (suite *TestSuiteStandard) TestMappingNormalizesMerchant() {
	category := suite.createTestCategory(models.Category{})

	mapping := models.Mapping{MerchantName: " amazon ", CategoryID: category.ID}
	suite.Require().Nil(models.DB.Create(&mapping).Error)
	suite.Assert().Equal("AMAZON", mapping.MerchantName)
	suite.Assert().True(mapping.Global)
}

func (suite *TestSuiteStandard) TestMappingUniqueness() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{})

	suite.Require().Nil(models.DB.Create(&models.Mapping{MerchantName: "AMAZON", CategoryID: category.ID}).Error)
	err := models.DB.Create(&models.Mapping{MerchantName: "amazon", CategoryID: category.ID}).Error
	suite.Assert().ErrorIs(err, models.ErrMappingNotUnique)

	// A user mapping may shadow the global one
	suite.Require().Nil(models.DB.Create(&models.Mapping{MerchantName: "AMAZON", UserID: &user.ID, CategoryID: category.ID}).Error)
	err = models.DB.Create(&models.Mapping{MerchantName: "AMAZON", UserID: &user.ID, CategoryID: category.ID}).Error
	suite.Assert().ErrorIs(err, models.ErrMappingNotUnique)
}

func (suite *TestSuiteStandard) TestMappingEmptyMerchant() {
	category := suite.createTestCategory(models.Category{})
	err := models.DB.Create(&models.Mapping{MerchantName: " ", CategoryID: category.ID}).Error
	suite.Assert().ErrorIs(err, models.ErrMerchantNameEmpty)
}

func (suite *TestSuiteStandard) TestMerchantRuleNormalizes() {
	rule := models.MerchantRule{Match: "amzn*", Merchant: "amazon"}
	suite.Require().Nil(models.DB.Create(&rule).Error)
	suite.Assert().Equal("AMZN*", rule.Match)
	suite.Assert().Equal("AMAZON", rule.Merchant)

	err := models.DB.Create(&models.MerchantRule{Match: "", Merchant: "X"}).Error
	suite.Assert().ErrorIs(err, models.ErrMatchEmpty)
}
