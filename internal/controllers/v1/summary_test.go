package v1_test

import (
	"bytes"
	"net/http"

	v1 "github.com/carbonledger/backend/internal/controllers/v1"
	"github.com/carbonledger/backend/internal/models"
	"github.com/carbonledger/backend/test"
	"github.com/google/uuid"
)

// march books 170 in March and 30 in April. AMAZON has a factor of 0.1,
// unmapped merchants fall back to MISCELLANEOUS at 0.01.
func (suite *TestSuiteStandard) march() (models.User, models.Category) {
	user := suite.createTestUser()
	category := suite.createTestMapping("AMAZON", "0.1")

	suite.createTestTransaction(user.ID, "Amazon", "100", "2024-03-02T10:00:00Z")
	suite.createTestTransaction(user.ID, "Amazon", "50", "2024-03-20T10:00:00Z")
	suite.createTestTransaction(user.ID, "Corner Kiosk", "20", "2024-03-31T23:59:59Z")
	suite.createTestTransaction(user.ID, "Amazon", "30", "2024-04-01T00:00:00Z")

	return user, category
}

func (suite *TestSuiteStandard) monthly(user models.User, month string) v1.MonthlySummaryResponse {
	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/summaries/monthly?month="+month+"&user="+user.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthlySummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	return response
}

func (suite *TestSuiteStandard) TestMonthlySummary() {
	user, category := suite.march()

	summary := suite.monthly(user, "2024-03").Data
	suite.Assert().Equal("2024-03", summary.YearMonth.String())
	suite.Assert().Equal("170.00", summary.TotalSpending.StringFixed(2))
	suite.Assert().Equal("15.20", summary.TotalEmission.StringFixed(2))

	suite.Require().Len(summary.CategorySummaries, 2)
	suite.Assert().Equal(category.ID, summary.CategorySummaries[0].CategoryID)
	suite.Assert().Equal("98.68", summary.CategorySummaries[0].EmissionPercentage.StringFixed(2))
	suite.Assert().Equal(models.Miscellaneous, summary.CategorySummaries[1].CategoryName)
	suite.Assert().Equal("1.32", summary.CategorySummaries[1].EmissionPercentage.StringFixed(2))

	// Transactions ingested after the last aggregation are added to it
	suite.createTestTransaction(user.ID, "Amazon", "10", "2024-03-05T10:00:00Z")
	summary = suite.monthly(user, "2024-03").Data
	suite.Assert().Equal("180.00", summary.TotalSpending.StringFixed(2))
	suite.Assert().Equal("16.20", summary.TotalEmission.StringFixed(2))
}

func (suite *TestSuiteStandard) TestMonthlySummaryEmpty() {
	user := suite.createTestUser()

	summary := suite.monthly(user, "2020-01").Data
	suite.Assert().Empty(summary.CategorySummaries)
	suite.Assert().True(summary.TotalSpending.IsZero())
}

func (suite *TestSuiteStandard) TestMonthlySummaryTable() {
	user, _ := suite.march()

	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/summaries/monthly?format=table&month=2024-03&user="+user.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	suite.Assert().Equal("text/plain; charset=utf-8", r.Header().Get("Content-Type"))
	suite.Assert().Contains(r.Body.String(), "AMAZON category")
	suite.Assert().Contains(r.Body.String(), "170.00")
	suite.Assert().Contains(r.Body.String(), "98.68 %")
}

func (suite *TestSuiteStandard) TestMonthlySummaryFails() {
	user := suite.createTestUser()

	tests := []struct {
		name   string
		query  string
		status int
		err    string
	}{
		{"No user", "?month=2024-03", http.StatusBadRequest, "the user parameter must be set"},
		{"No month", "?user=" + user.ID.String(), http.StatusBadRequest, "the month parameter must be set"},
		{"Invalid month", "?month=March&user=" + user.ID.String(), http.StatusBadRequest, ""},
		{"Unknown format", "?format=xml&month=2024-03&user=" + user.ID.String(), http.StatusBadRequest, "the format parameter must be one of json, table"},
		{"Unknown user", "?month=2024-03&user=" + uuid.NewString(), http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/summaries/monthly"+tt.query, "")
			test.AssertHTTPStatus(suite.T(), &r, tt.status)
			suite.Assert().Contains(test.DecodeError(suite.T(), &r), tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestResetMonthlySummary() {
	user, _ := suite.march()
	suite.monthly(user, "2024-03")

	r := test.Request(suite.T(), suite.controller, http.MethodDelete, "http://example.com/v1/summaries/monthly?month=2024-03&user="+user.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Summary{}).Where("user_id = ?", user.ID).Count(&count).Error)
	suite.Assert().Zero(count)

	// Aggregating from scratch arrives at the same totals
	suite.Assert().Equal("170.00", suite.monthly(user, "2024-03").Data.TotalSpending.StringFixed(2))

	r = test.Request(suite.T(), suite.controller, http.MethodDelete, "http://example.com/v1/summaries/monthly?month=2024-03&user="+uuid.NewString(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// Category overrides only show up in the summary once the month is rebuilt.
func (suite *TestSuiteStandard) TestRebuildMonthlySummary() {
	user, _ := suite.march()
	gifts := suite.createTestCategory("Gifts", "0", &user.ID)
	suite.monthly(user, "2024-03")

	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/transactions?month=2024-03&user="+user.ID.String(), "")
	var transactions v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &transactions)

	r = test.Request(suite.T(), suite.controller, http.MethodPatch, "http://example.com/v1/transactions/"+transactions.Data[0].ID.String(), v1.TransactionOverride{CategoryID: gifts.ID})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	suite.Assert().Equal("15.20", suite.monthly(user, "2024-03").Data.TotalEmission.StringFixed(2))

	r = test.Request(suite.T(), suite.controller, http.MethodPost, "http://example.com/v1/summaries/monthly/rebuild?month=2024-03&user="+user.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var rebuilt v1.MonthlySummaryResponse
	test.DecodeResponse(suite.T(), &r, &rebuilt)

	suite.Assert().Equal("170.00", rebuilt.Data.TotalSpending.StringFixed(2))
	suite.Assert().Equal("5.20", rebuilt.Data.TotalEmission.StringFixed(2))
	suite.Require().Len(rebuilt.Data.CategorySummaries, 3)

	var found bool
	for _, c := range rebuilt.Data.CategorySummaries {
		if c.CategoryID == gifts.ID {
			found = true
			suite.Assert().Equal("100.00", c.TotalAmount.StringFixed(2))
			suite.Assert().True(c.TotalEmission.IsZero())
		}
	}
	suite.Assert().True(found, "The overridden transaction is summarized in its new category")
}

func (suite *TestSuiteStandard) TestRangedSummary() {
	user, _ := suite.march()

	tests := []struct {
		name     string
		query    string
		start    string
		months   int
		spending string
		emission string
	}{
		{"Two months", "&count=2", "2024-03", 2, "200.00", "18.20"},
		{"Default count", "", "2023-12", 5, "200.00", "18.20"},
		{"Single month", "&count=1", "2024-04", 1, "30.00", "3.00"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/summaries/range?month=2024-04&user="+user.ID.String()+tt.query, "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

			var response v1.RangedSummaryResponse
			test.DecodeResponse(suite.T(), &r, &response)

			suite.Assert().Equal(tt.start, response.Data.StartYearMonth.String())
			suite.Assert().Equal("2024-04", response.Data.EndYearMonth.String())
			suite.Assert().Len(response.Data.MonthlySummaries, tt.months)
			suite.Assert().Len(response.Data.MonthlyTotals, tt.months)
			suite.Assert().Equal(tt.spending, response.Data.TotalSpendingAllMonths.StringFixed(2))
			suite.Assert().Equal(tt.emission, response.Data.TotalEmissionAllMonths.StringFixed(2))
		})
	}
}

func (suite *TestSuiteStandard) TestRangedSummaryFails() {
	user := suite.createTestUser()

	tests := []struct {
		name   string
		query  string
		status int
	}{
		{"Zero count", "?count=0&month=2024-03&user=" + user.ID.String(), http.StatusBadRequest},
		{"Too many months", "?count=37&month=2024-03&user=" + user.ID.String(), http.StatusBadRequest},
		{"Invalid count", "?count=many&month=2024-03&user=" + user.ID.String(), http.StatusBadRequest},
		{"No month", "?user=" + user.ID.String(), http.StatusBadRequest},
		{"Unknown user", "?month=2024-03&user=" + uuid.NewString(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			for _, path := range []string{"range", "range/chart"} {
				r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/summaries/"+path+tt.query, "")
				test.AssertHTTPStatus(suite.T(), &r, tt.status)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestRangedSummaryChart() {
	user, _ := suite.march()

	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/summaries/range/chart?count=3&month=2024-04&user="+user.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	suite.Assert().Equal("image/png", r.Header().Get("Content-Type"))
	suite.Assert().True(bytes.HasPrefix(r.Body.Bytes(), []byte("\x89PNG")))
}
