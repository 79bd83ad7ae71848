package v1_test

import (
	"net/http"

	v1 "github.com/carbonledger/backend/internal/controllers/v1"
	"github.com/carbonledger/backend/test"
	"github.com/google/uuid"
)

const importHeader = "amount,paymentMode,merchantId,merchantName,kind,timestamp\n"

func (suite *TestSuiteStandard) TestImport() {
	user := suite.createTestUser()
	suite.createTestMapping("AMAZON", "0.1")

	body, headers := test.CSVUpload(suite.T(), "march.csv", importHeader+
		"100,UPI,M1,Amazon,DEBIT,2024-03-01T10:00:00\n"+
		"ten,UPI,M2,Shop,DEBIT,2024-03-02\n"+
		"5,CARD,M3,Shop,CREDIT,2024-03-03\n"+
		"7,CHEQUE,M4,Shop,DEBIT,2024-03-04\n")

	r := test.Request(suite.T(), suite.controller, http.MethodPost, "http://example.com/v1/imports?user="+user.ID.String(), body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Nil(response.Error)
	suite.Assert().Equal(2, response.Data.Accepted)
	suite.Assert().Equal(2, response.Data.Skipped)
	suite.Require().Len(response.Data.SkippedRows, 2)
	suite.Assert().Equal(3, response.Data.SkippedRows[0].Line)
	suite.Assert().Equal(5, response.Data.SkippedRows[1].Line)

	r = test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/transactions?user="+user.ID.String(), "")
	var transactions v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &transactions)
	suite.Require().Len(transactions.Data, 2)
	suite.Assert().Equal("AMAZON", transactions.Data[0].MerchantName)
	suite.Assert().Equal("10.00", transactions.Data[0].Emission.StringFixed(2))
}

func (suite *TestSuiteStandard) TestImportFails() {
	user := suite.createTestUser()
	valid := importHeader + "1,UPI,M1,Shop,DEBIT,2024-03-01\n"

	tests := []struct {
		name   string
		query  string
		file   string
		status int
		err    string
	}{
		{"No user", "", "a.csv", http.StatusBadRequest, "the user parameter must be set"},
		{"Unknown user", "?user=" + uuid.NewString(), "a.csv", http.StatusNotFound, "the user does not exist"},
		{"Wrong suffix", "?user=" + user.ID.String(), "a.json", http.StatusBadRequest, "this endpoint only supports .csv files"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			body, headers := test.CSVUpload(suite.T(), tt.file, valid)
			r := test.Request(suite.T(), suite.controller, http.MethodPost, "http://example.com/v1/imports"+tt.query, body, headers)
			test.AssertHTTPStatus(suite.T(), &r, tt.status)
			suite.Assert().Contains(test.DecodeError(suite.T(), &r), tt.err)
		})
	}

	r := test.Request(suite.T(), suite.controller, http.MethodPost, "http://example.com/v1/imports?user="+user.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal("you must send a file to this endpoint", test.DecodeError(suite.T(), &r))
}
