package mapping_test

import (
	"context"

	"github.com/carbonledger/backend/internal/mapping"
	"github.com/carbonledger/backend/internal/models"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestResolvePriority() {
	user := suite.user()
	other := suite.user()

	shopping := suite.category("Shopping", nil, "0.05")
	personal := suite.category("Personal shopping", &user.ID, "0.5")
	misc := suite.category(models.Miscellaneous, nil, "0.01")
	userMisc := suite.category("My misc", &user.ID, "0.02")

	suite.mapping("AMAZON", nil, shopping)
	suite.mapping("AMAZON", &user.ID, personal)
	suite.mapping(models.Miscellaneous, nil, misc)
	suite.mapping(models.Miscellaneous, &user.ID, userMisc)

	resolver := mapping.NewResolver(suite.store)

	tests := []struct {
		name     string
		merchant string
		user     uuid.UUID
		category uuid.UUID
		global   bool
	}{
		{"User exact match wins", "amazon", user.ID, personal.ID, false},
		{"Global exact match", " Amazon ", other.ID, shopping.ID, true},
		{"User fallback", "UNKNOWN SHOP", user.ID, userMisc.ID, false},
		{"Global fallback", "unknown shop", other.ID, misc.ID, true},
		{"Fallback by name", "miscellaneous", other.ID, misc.ID, true},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			m, err := resolver.Resolve(context.Background(), tt.merchant, tt.user)
			suite.Require().Nil(err)
			suite.Assert().Equal(tt.category, m.CategoryID)
			suite.Assert().Equal(tt.category, m.Category.ID, "Category must be loaded")
			suite.Assert().Equal(tt.global, m.Global)
		})
	}
}

func (suite *TestSuiteStandard) TestResolveWithoutFallback() {
	user := suite.user()
	shopping := suite.category("Shopping", nil, "0.05")
	suite.mapping("AMAZON", nil, shopping)

	resolver := mapping.NewResolver(suite.store)

	m, err := resolver.Resolve(context.Background(), "AMAZON", user.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(shopping.ID, m.CategoryID)

	_, err = resolver.Resolve(context.Background(), "FLIPKART", user.ID)
	suite.Assert().ErrorIs(err, mapping.ErrMappingNotFound)
}

func (suite *TestSuiteStandard) TestResolveDatabaseError() {
	resolver := mapping.NewResolver(suite.store)

	sqlDB, _ := models.DB.DB()
	sqlDB.Close()

	_, err := resolver.Resolve(context.Background(), "AMAZON", uuid.New())
	suite.Assert().ErrorIs(err, models.ErrGeneral)
	suite.Assert().NotErrorIs(err, mapping.ErrMappingNotFound)
}
