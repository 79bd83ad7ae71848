package v1_test

import (
	"net/http"
	"testing"

	"github.com/carbonledger/backend/internal/models"
	"github.com/carbonledger/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsHeaderResources() {
	optionsHeaderTests := []struct {
		path     string
		response string
	}{
		{"http://example.com/v1", "OPTIONS, GET"},
		{"http://example.com/v1/users", "OPTIONS, POST"},
		{"http://example.com/v1/categories", "OPTIONS, GET, POST"},
		{"http://example.com/v1/emissions/calculate", "OPTIONS, POST"},
		{"http://example.com/v1/mappings", "OPTIONS, GET, POST"},
		{"http://example.com/v1/mappings/suggestions", "OPTIONS, GET"},
		{"http://example.com/v1/merchant-rules", "OPTIONS, GET, POST"},
		{"http://example.com/v1/merchant-rules/" + uuid.NewString(), "OPTIONS, DELETE"},
		{"http://example.com/v1/transactions", "OPTIONS, GET, POST"},
		{"http://example.com/v1/imports", "OPTIONS, POST"},
		{"http://example.com/v1/summaries/monthly", "OPTIONS, GET, DELETE"},
		{"http://example.com/v1/summaries/monthly/rebuild", "OPTIONS, POST"},
		{"http://example.com/v1/summaries/range", "OPTIONS, GET"},
		{"http://example.com/v1/summaries/range/chart", "OPTIONS, GET"},
	}

	for _, tt := range optionsHeaderTests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := test.Request(t, suite.controller, http.MethodOptions, tt.path, "")

			assert.Equal(t, http.StatusNoContent, recorder.Code)
			assert.Equal(t, tt.response, recorder.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestOptionsDetail() {
	user := suite.createTestUser()
	suite.createTestMapping("SHOP", "0.1")
	transaction := suite.createTestTransaction(user.ID, "Shop", "10", "2024-03-02T10:00:00Z")

	tests := []struct {
		name   string
		path   string
		status int
		allow  string
	}{
		{"User", "http://example.com/v1/users/" + user.ID.String(), http.StatusNoContent, "OPTIONS, GET"},
		{"Unknown user", "http://example.com/v1/users/" + uuid.NewString(), http.StatusNotFound, ""},
		{"Invalid user ID", "http://example.com/v1/users/not-a-uuid", http.StatusBadRequest, ""},
		{"Transaction", "http://example.com/v1/transactions/" + transaction.ID.String(), http.StatusNoContent, "OPTIONS, GET, PATCH"},
		{"Unknown transaction", "http://example.com/v1/transactions/" + uuid.NewString(), http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.controller, http.MethodOptions, tt.path, "")
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestDatabaseClosed() {
	user := suite.createTestUser()
	suite.CloseDB()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "http://example.com/v1/users/" + user.ID.String()},
		{http.MethodGet, "http://example.com/v1/categories"},
		{http.MethodGet, "http://example.com/v1/mappings"},
		{http.MethodGet, "http://example.com/v1/merchant-rules"},
		{http.MethodGet, "http://example.com/v1/transactions?user=" + user.ID.String()},
		{http.MethodGet, "http://example.com/v1/summaries/monthly?month=2024-03&user=" + user.ID.String()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			r := test.Request(t, suite.controller, tt.method, tt.path, "")
			test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)
			assert.Contains(t, test.DecodeError(t, &r), models.ErrGeneral.Error())
		})
	}
}
