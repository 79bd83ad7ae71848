package ingest_test

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/carbonledger/backend/internal/ingest"
	"github.com/carbonledger/backend/internal/mapping"
	"github.com/carbonledger/backend/internal/models"
	"github.com/carbonledger/backend/internal/store"
	"github.com/carbonledger/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// failingStore fails to persist after a number of successful pages.
type failingStore struct {
	store.TransactionStore
	pages     []int
	succeeded int
}

var errPersistence = errors.New("disk full")

func (f *failingStore) SaveAll(ctx context.Context, transactions []models.Transaction) error {
	if len(f.pages) >= f.succeeded {
		return errPersistence
	}

	f.pages = append(f.pages, len(transactions))
	return f.TransactionStore.SaveAll(ctx, transactions)
}

func (suite *TestSuiteStandard) TestAddOne() {
	user := suite.user()
	amazon := suite.globalMapping("AMAZON", "0.05")
	test.Fallback(suite.T(), models.DB, "0.01")

	ingestor := suite.ingestor(suite.store)

	transaction, err := ingestor.AddOne(context.Background(), ingest.Request{
		Amount:       decimal.RequireFromString("100.00"),
		PaymentMode:  "upi",
		MerchantID:   "M-1",
		MerchantName: " amazon ",
		Kind:         "debit",
		Date:         time.Date(2024, 2, 29, 23, 0, 0, 0, time.UTC),
	}, user.ID)
	suite.Require().Nil(err)

	suite.Assert().Equal("AMAZON", transaction.MerchantName)
	suite.Assert().Equal(models.PaymentModeUPI, transaction.PaymentMode)
	suite.Assert().Equal(models.Debit, transaction.Kind)
	suite.Assert().Equal(amazon.CategoryID, *transaction.CategoryID)
	suite.Assert().True(transaction.CountsTowardIndex)
	suite.Assert().True(transaction.Emission.Equal(decimal.RequireFromString("5")), "Emission is %s", transaction.Emission)
	suite.Assert().Equal("2024-02", transaction.Month.String())
	suite.Assert().False(transaction.CreatedAt.IsZero())

	var found models.Transaction
	suite.Require().Nil(models.DB.First(&found, "id = ?", transaction.ID).Error)
	suite.Assert().True(found.Emission.Equal(decimal.RequireFromString("5")))
}

func (suite *TestSuiteStandard) TestAddOneDefaultsDate() {
	user := suite.user()
	test.Fallback(suite.T(), models.DB, "0")

	transaction, err := suite.ingestor(suite.store).AddOne(context.Background(), ingest.Request{
		Amount:       decimal.NewFromInt(1),
		PaymentMode:  models.PaymentModeCash,
		MerchantName: "Tea stall",
		Kind:         models.Credit,
	}, user.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal("2024-03", transaction.Month.String())
	suite.Assert().True(transaction.Emission.IsZero())
}

func (suite *TestSuiteStandard) TestAddOnePrivateMapping() {
	user := suite.user()
	test.Fallback(suite.T(), models.DB, "0.01")

	category := test.Create(suite.T(), models.DB, models.Category{Name: "Books", UserID: &user.ID, EmissionFactor: decimal.NewFromInt(1)})
	test.Create(suite.T(), models.DB, models.Mapping{MerchantName: "BOOKSHOP", UserID: &user.ID, CategoryID: category.ID})

	transaction, err := suite.ingestor(suite.store).AddOne(context.Background(), ingest.Request{
		Amount:       decimal.NewFromInt(100),
		PaymentMode:  models.PaymentModeCard,
		MerchantName: "bookshop",
		Kind:         models.Debit,
	}, user.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(category.ID, *transaction.CategoryID)
	suite.Assert().False(transaction.CountsTowardIndex)
	suite.Assert().True(transaction.Emission.IsZero())
}

func (suite *TestSuiteStandard) TestAddOneAppliesMerchantRules() {
	user := suite.user()
	amazon := suite.globalMapping("AMAZON", "0.05")
	test.Fallback(suite.T(), models.DB, "0.01")
	test.Create(suite.T(), models.DB, models.MerchantRule{Match: "AMZN*", Merchant: "AMAZON"})

	transaction, err := suite.ingestor(suite.store).AddOne(context.Background(), ingest.Request{
		Amount:       decimal.NewFromInt(10),
		PaymentMode:  models.PaymentModeCard,
		MerchantName: "amzn mktp in",
		Kind:         models.Debit,
	}, user.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal("AMAZON", transaction.MerchantName)
	suite.Assert().Equal(amazon.CategoryID, *transaction.CategoryID)
}

func (suite *TestSuiteStandard) TestAddOneErrors() {
	user := suite.user()
	valid := ingest.Request{
		Amount:       decimal.NewFromInt(10),
		PaymentMode:  models.PaymentModeCard,
		MerchantName: "Shop",
		Kind:         models.Debit,
	}

	ingestor := suite.ingestor(suite.store)

	_, err := ingestor.AddOne(context.Background(), valid, uuid.New())
	suite.Assert().ErrorIs(err, ingest.ErrUserNotFound)

	// There is no fallback yet
	_, err = ingestor.AddOne(context.Background(), valid, user.ID)
	suite.Assert().ErrorIs(err, ingest.ErrResolutionFailed)
	suite.Assert().ErrorIs(err, mapping.ErrMappingNotFound)

	test.Fallback(suite.T(), models.DB, "0")

	invalid := valid
	invalid.PaymentMode = "CHEQUE"
	_, err = ingestor.AddOne(context.Background(), invalid, user.ID)
	suite.Assert().ErrorIs(err, models.ErrPaymentModeInvalid)

	invalid = valid
	invalid.Amount = decimal.NewFromInt(-5)
	_, err = ingestor.AddOne(context.Background(), invalid, user.ID)
	suite.Assert().ErrorIs(err, models.ErrAmountNotPositive)

	suite.Assert().Equal(int64(0), suite.count(user.ID))
}

const partialImport = `amount,paymentMode,merchantId,merchantName,kind,timestamp
100.00,UPI,M1,Amazon,DEBIT,2024-03-01T10:00:00
20.50,CARD,M2,Swiggy,DEBIT,2024-03-02T11:00:00
15,CASH,M3,Tea stall,DEBIT,2024-03-03
42.00,UPI,M4,Amazon,DEBIT
10,netbanking,M5,Electricity,debit,2024-03-05T08:00:00Z
300,UPI,M6,Salary,CREDIT,2024-03-06T09:00:00
55.5,CHEQUE,M7,Amazon,DEBIT,2024-03-07T10:00:00
12,CARD,M8,Swiggy,DEBIT,2024-03-08T10:00:00
1.25,UPI,M9,Unknown merchant,DEBIT,2024-03-09T10:00:00
9.99,card,M10,amazon,Debit,2024-03-10T10:00:00
`

func (suite *TestSuiteStandard) TestImportPartialFailure() {
	user := suite.user()
	suite.globalMapping("AMAZON", "0.05")
	suite.globalMapping("SWIGGY", "0.1")
	test.Fallback(suite.T(), models.DB, "0.01")

	result, err := suite.ingestor(suite.store).ImportCSV(context.Background(), strings.NewReader(partialImport), user.ID)
	suite.Require().Nil(err)

	suite.Assert().Equal(8, result.Accepted)
	suite.Assert().Equal(2, result.Skipped)
	suite.Require().Len(result.SkippedRows, 2)
	suite.Assert().Equal(5, result.SkippedRows[0].Line)
	suite.Assert().Contains(result.SkippedRows[0].Reason, ingest.ErrTooFewColumns.Error())
	suite.Assert().Equal(8, result.SkippedRows[1].Line)
	suite.Assert().Contains(result.SkippedRows[1].Reason, models.ErrPaymentModeInvalid.Error())

	suite.Assert().Equal(int64(8), suite.count(user.ID))

	var credit models.Transaction
	suite.Require().Nil(models.DB.First(&credit, "user_id = ? AND kind = ?", user.ID, models.Credit).Error)
	suite.Assert().True(credit.Emission.IsZero())
}

func (suite *TestSuiteStandard) TestImportPages() {
	user := suite.user()
	test.Fallback(suite.T(), models.DB, "0.01")

	rows := make([]ingest.Row, 0)
	for i := range 5 {
		rows = append(rows, ingest.Row{Line: i + 2, Fields: []string{"1", "UPI", "", "Shop", "DEBIT", "2024-03-01"}})
	}

	paged := &failingStore{TransactionStore: suite.store, succeeded: 10}
	result, err := suite.ingestor(paged, ingest.WithPageSize(2)).ImportBatch(context.Background(), rows, user.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(5, result.Accepted)
	suite.Assert().Equal([]int{2, 2, 1}, paged.pages)
}

func (suite *TestSuiteStandard) TestImportPersistenceFailure() {
	user := suite.user()
	test.Fallback(suite.T(), models.DB, "0.01")

	rows := make([]ingest.Row, 0)
	for i := range 5 {
		rows = append(rows, ingest.Row{Line: i + 2, Fields: []string{"1", "UPI", "", "Shop", "DEBIT", "2024-03-01"}})
	}

	failing := &failingStore{TransactionStore: suite.store, succeeded: 1}
	result, err := suite.ingestor(failing, ingest.WithPageSize(2)).ImportBatch(context.Background(), rows, user.ID)
	suite.Assert().ErrorIs(err, errPersistence)
	suite.Assert().Equal(2, result.Accepted)
	suite.Assert().Equal(int64(2), suite.count(user.ID), "The first page stays persisted")
}

func (suite *TestSuiteStandard) TestImportWithoutFallback() {
	user := suite.user()
	suite.globalMapping("AMAZON", "0.05")

	rows := []ingest.Row{
		{Line: 2, Fields: []string{"1", "UPI", "", "Amazon", "DEBIT", "2024-03-01"}},
		{Line: 3, Fields: []string{"1", "UPI", "", "Flipkart", "DEBIT", "2024-03-01"}},
	}

	result, err := suite.ingestor(suite.store).ImportBatch(context.Background(), rows, user.ID)
	suite.Assert().ErrorIs(err, ingest.ErrResolutionFailed)
	suite.Assert().Equal(0, result.Accepted)
	suite.Assert().Equal(int64(0), suite.count(user.ID))
}

func (suite *TestSuiteStandard) TestImportCancelled() {
	user := suite.user()
	test.Fallback(suite.T(), models.DB, "0.01")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rows := []ingest.Row{{Line: 2, Fields: []string{"1", "UPI", "", "Shop", "DEBIT", "2024-03-01"}}}
	_, err := suite.ingestor(suite.store).ImportBatch(ctx, rows, user.ID)
	suite.Assert().ErrorIs(err, context.Canceled)
}
