package mapping_test

import (
	"context"

	"github.com/carbonledger/backend/internal/mapping"
	"github.com/carbonledger/backend/internal/models"
)

func (suite *TestSuiteStandard) TestSuggest() {
	user := suite.user()
	other := suite.user()
	category := suite.category("Shopping", nil, "0.05")

	suite.mapping("AMAZON", nil, category)
	suite.mapping("AMAZONE", &user.ID, category)
	suite.mapping("AMAZON PAY", &other.ID, category)
	suite.mapping("ZOMATO", nil, category)
	suite.mapping(models.Miscellaneous, nil, category)

	suggester := mapping.NewSuggester(suite.store)

	suggestions, err := suggester.Suggest(context.Background(), "amazn", user.ID, 5)
	suite.Require().Nil(err)
	suite.Assert().Equal([]mapping.Suggestion{
		{MerchantName: "AMAZON", Distance: 1},
		{MerchantName: "AMAZONE", Distance: 2},
	}, suggestions)

	suggestions, err = suggester.Suggest(context.Background(), "amazn", user.ID, 1)
	suite.Require().Nil(err)
	suite.Assert().Len(suggestions, 1)

	_, err = suggester.Suggest(context.Background(), " ", user.ID, 1)
	suite.Assert().ErrorIs(err, models.ErrMerchantNameEmpty)
}
