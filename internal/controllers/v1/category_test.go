package v1_test

import (
	"net/http"

	v1 "github.com/carbonledger/backend/internal/controllers/v1"
	"github.com/carbonledger/backend/internal/models"
	"github.com/carbonledger/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCategoriesCreate() {
	user := suite.createTestUser()

	tests := []struct {
		name   string
		body   v1.CategoryEditable
		global bool
	}{
		{"Global", v1.CategoryEditable{Name: "Groceries", EmissionFactor: decimal.RequireFromString("0.05")}, true},
		{"For user", v1.CategoryEditable{Name: "Groceries", EmissionFactor: decimal.RequireFromString("0.02"), UserID: &user.ID}, false},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.T(), suite.controller, http.MethodPost, "http://example.com/v1/categories", tt.body)
			test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

			var response v1.CategoryResponse
			test.DecodeResponse(suite.T(), &r, &response)
			suite.Assert().Equal(tt.global, response.Data.Global)
			suite.Assert().True(tt.body.EmissionFactor.Equal(response.Data.EmissionFactor))
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesCreateFails() {
	unknown := uuid.New()
	suite.createTestCategory("Travel", "0.2", nil)

	tests := []struct {
		name   string
		body   v1.CategoryEditable
		status int
		err    string
	}{
		{"Unknown user", v1.CategoryEditable{Name: "Food", UserID: &unknown}, http.StatusNotFound, ""},
		{"Negative factor", v1.CategoryEditable{Name: "Food", EmissionFactor: decimal.NewFromInt(-1)}, http.StatusBadRequest, models.ErrEmissionFactorNegative.Error()},
		{"Empty name", v1.CategoryEditable{Name: ""}, http.StatusBadRequest, models.ErrCategoryNameEmpty.Error()},
		{"Duplicate global name", v1.CategoryEditable{Name: "Travel"}, http.StatusBadRequest, models.ErrCategoryNameNotUnique.Error()},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.T(), suite.controller, http.MethodPost, "http://example.com/v1/categories", tt.body)
			test.AssertHTTPStatus(suite.T(), &r, tt.status)
			suite.Assert().Contains(test.DecodeError(suite.T(), &r), tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesGet() {
	user := suite.createTestUser()
	other := suite.createTestUser()

	suite.createTestCategory("Food", "0.1", nil)
	suite.createTestCategory("Hobbies", "0", &user.ID)
	suite.createTestCategory("Secret", "0", &other.ID)

	tests := []struct {
		name  string
		query string
		names []string
	}{
		{"Global only", "", []string{"Food", models.Miscellaneous}},
		{"With user", "?user=" + user.ID.String(), []string{"Food", "Hobbies", models.Miscellaneous}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/categories"+tt.query, "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

			var response v1.CategoryListResponse
			test.DecodeResponse(suite.T(), &r, &response)

			names := make([]string, 0, len(response.Data))
			for _, c := range response.Data {
				names = append(names, c.Name)
			}
			suite.Assert().Equal(tt.names, names)
		})
	}

	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/categories?user=nope", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
