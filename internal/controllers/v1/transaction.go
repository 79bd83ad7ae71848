package v1

import (
	"net/http"

	"github.com/carbonledger/backend/internal/emission"
	"github.com/carbonledger/backend/internal/httputil"
	"github.com/carbonledger/backend/internal/ingest"
	"github.com/carbonledger/backend/internal/mapping"
	"github.com/carbonledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsTransactionList)
		r.GET("", co.GetTransactions)
		r.POST("", co.CreateTransaction)
	}

	{
		r.OPTIONS("/:id", co.OptionsTransactionDetail)
		r.GET("/:id", co.GetTransaction)
		r.PATCH("/:id", co.UpdateTransaction)
	}
}

type TransactionResponse struct {
	Data models.Transaction `json:"data"` // Data for the transaction
}

type TransactionListResponse struct {
	Data []models.Transaction `json:"data"` // List of transactions
}

type TransactionOverride struct {
	CategoryID uuid.UUID `json:"categoryId" example:"cee2b3c2-8bb3-4b1a-9a63-0ab4f8ea9e0a"` // Category to move the transaction to
}

type TransactionOverrideResponse struct {
	Data            models.Transaction `json:"data"`                           // Data for the transaction
	RebuildRequired bool               `json:"rebuildRequired" example:"true"` // The monthly summary of the transaction is stale until the month is rebuilt
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func (co Controller) OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [options]
func (co Controller) OptionsTransactionDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		fail(c, err)
		return
	}

	if _, err := co.Store.FindTransaction(c.Request.Context(), uri.ID.UUID); err != nil {
		fail(c, err)
		return
	}

	httputil.OptionsGetPatch(c)
}

// @Summary		Get transactions
// @Description	Returns the transactions of a user by date, optionally for a single month
// @Tags			Transactions
// @Produce		json
// @Success		200		{object}	TransactionListResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			user	query		string	true	"ID of the user"
// @Param			month	query		string	false	"Year and month, e.g. 2024-03"
// @Router			/v1/transactions [get]
func (co Controller) GetTransactions(c *gin.Context) {
	var query QueryUserMonth
	if err := c.BindQuery(&query); err != nil {
		fail(c, err)
		return
	}

	userID, err := query.userID()
	if err != nil {
		fail(c, err)
		return
	}

	if _, err := co.Store.FindUser(c.Request.Context(), userID); err != nil {
		fail(c, err)
		return
	}

	transactions, err := co.Store.Transactions(c.Request.Context(), userID, query.Month)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: transactions})
}

// @Summary		Create transaction
// @Description	Categorizes and saves a single transaction
// @Tags			Transactions
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			user		query		string			true	"ID of the user"
// @Param			transaction	body		ingest.Request	true	"Transaction"
// @Router			/v1/transactions [post]
func (co Controller) CreateTransaction(c *gin.Context) {
	var query QueryUser
	if err := c.BindQuery(&query); err != nil {
		fail(c, err)
		return
	}

	userID, err := query.userID()
	if err != nil {
		fail(c, err)
		return
	}

	var req ingest.Request
	if err := httputil.BindData(c, &req); err != nil {
		fail(c, err)
		return
	}

	transaction, err := co.Ingestor.AddOne(c.Request.Context(), req, userID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, TransactionResponse{Data: transaction})
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [get]
func (co Controller) GetTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		fail(c, err)
		return
	}

	transaction, err := co.Store.FindTransaction(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: transaction})
}

// @Summary		Override transaction category
// @Description	Moves a transaction to a category of the user's choice. The transaction then no longer counts toward
// @Description	the global emission index and has no emission. Monthly summaries are not updated, rebuild the month
// @Description	of the transaction to include the change.
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	TransactionOverrideResponse
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			override	body		TransactionOverride	true	"Category override"
// @Router			/v1/transactions/{id} [patch]
func (co Controller) UpdateTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		fail(c, err)
		return
	}

	var override TransactionOverride
	if err := httputil.BindData(c, &override); err != nil {
		fail(c, err)
		return
	}

	transaction, err := co.Store.FindTransaction(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		fail(c, err)
		return
	}

	category, err := co.Store.FindCategory(c.Request.Context(), override.CategoryID)
	if err != nil {
		fail(c, err)
		return
	}

	if !category.VisibleTo(transaction.UserID) {
		fail(c, mapping.ErrCategoryNotVisible)
		return
	}

	emission.Override(&transaction, category)
	if err := co.Store.UpdateTransaction(c.Request.Context(), &transaction); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, TransactionOverrideResponse{
		Data:            transaction,
		RebuildRequired: true,
	})
}
