package mapping_test

import (
	"context"

	"github.com/carbonledger/backend/internal/mapping"
	"github.com/carbonledger/backend/internal/models"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestAddCustom() {
	user := suite.user()
	other := suite.user()

	global := suite.category("Food", nil, "0.1")
	own := suite.category("Coffee", &user.ID, "0")
	foreign := suite.category("Coffee", &other.ID, "0")

	service := mapping.NewService(suite.store, suite.store, suite.store)

	m, err := service.AddCustom(context.Background(), user.ID, " blue tokai ", own.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal("BLUE TOKAI", m.MerchantName)
	suite.Assert().False(m.Global)
	suite.Assert().Equal(own.ID, m.Category.ID)

	_, err = service.AddCustom(context.Background(), user.ID, "swiggy", global.ID)
	suite.Assert().Nil(err)

	_, err = service.AddCustom(context.Background(), user.ID, "third wave", foreign.ID)
	suite.Assert().ErrorIs(err, mapping.ErrCategoryNotVisible)

	_, err = service.AddCustom(context.Background(), user.ID, "blue tokai", global.ID)
	suite.Assert().ErrorIs(err, models.ErrMappingNotUnique)

	_, err = service.AddCustom(context.Background(), uuid.New(), "blue tokai", global.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	_, err = service.AddCustom(context.Background(), user.ID, "blue tokai", uuid.New())
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestAddGlobal() {
	user := suite.user()
	global := suite.category("Travel", nil, "0.2")
	own := suite.category("Trips", &user.ID, "0.2")

	service := mapping.NewService(suite.store, suite.store, suite.store)

	m, err := service.AddGlobal(context.Background(), "indigo", global.ID)
	suite.Require().Nil(err)
	suite.Assert().True(m.Global)
	suite.Assert().Nil(m.UserID)
	suite.Assert().Equal("INDIGO", m.MerchantName)

	_, err = service.AddGlobal(context.Background(), "INDIGO", global.ID)
	suite.Assert().ErrorIs(err, models.ErrMappingNotUnique)

	_, err = service.AddGlobal(context.Background(), "vistara", own.ID)
	suite.Assert().ErrorIs(err, mapping.ErrCategoryNotGlobal)
}
