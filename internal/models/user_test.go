package models_test

import (
	"github.com/carbonledger/backend/internal/models"
)

func (suite *TestSuiteStandard) TestUserTrimWhitespace() {
	user := suite.createTestUser(models.User{Name: "\t  Aditi \n"})
	suite.Assert().Equal("Aditi", user.Name)
}

func (suite *TestSuiteStandard) TestUserNameEmpty() {
	err := models.DB.Create(&models.User{Name: "   "}).Error
	suite.Assert().ErrorIs(err, models.ErrUserNameEmpty)
}

func (suite *TestSuiteStandard) TestUserNameNotUnique() {
	suite.createTestUser(models.User{Name: "Aditi"})

	err := models.DB.Create(&models.User{Name: "Aditi"}).Error
	suite.Assert().ErrorIs(err, models.ErrUserNameNotUnique)
}
