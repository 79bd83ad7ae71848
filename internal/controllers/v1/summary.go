package v1

import (
	"bytes"
	"net/http"

	"github.com/carbonledger/backend/internal/httputil"
	"github.com/carbonledger/backend/internal/render"
	"github.com/carbonledger/backend/internal/report"
	"github.com/carbonledger/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// defaultMonthCount is the number of months of a ranged summary if no count is given.
const defaultMonthCount = 5

// RegisterSummaryRoutes registers the routes for summaries with
// the RouterGroup that is passed.
func (co Controller) RegisterSummaryRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/monthly", co.OptionsMonthlySummary)
		r.GET("/monthly", co.GetMonthlySummary)
		r.DELETE("/monthly", co.ResetMonthlySummary)
	}

	{
		r.OPTIONS("/monthly/rebuild", co.OptionsRebuildMonthlySummary)
		r.POST("/monthly/rebuild", co.RebuildMonthlySummary)
	}

	{
		r.OPTIONS("/range", co.OptionsRangedSummary)
		r.GET("/range", co.GetRangedSummary)
		r.OPTIONS("/range/chart", co.OptionsRangedSummary)
		r.GET("/range/chart", co.GetRangedSummaryChart)
	}
}

type MonthlySummaryResponse struct {
	Data report.MonthlySummary `json:"data"` // Summary of the month
}

type RangedSummaryResponse struct {
	Data report.RangedSummary `json:"data"` // Summary of the months
}

type QueryMonthlySummary struct {
	QueryUserMonth
	Format string `form:"format" example:"table"` // Output format, json or table
}

type QueryRangedSummary struct {
	QueryUserMonth
	Count *int `form:"count" example:"5"` // Number of months, ending with month
}

// userMonth validates the query for user and month.
func userMonth(q QueryUserMonth) (uuid.UUID, types.Month, error) {
	userID, err := q.userID()
	if err != nil {
		return uuid.Nil, types.Month{}, err
	}

	month, err := q.month()
	if err != nil {
		return uuid.Nil, types.Month{}, err
	}

	return userID, month, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Summaries
// @Success		204
// @Router			/v1/summaries/monthly [options]
func (co Controller) OptionsMonthlySummary(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Summaries
// @Success		204
// @Router			/v1/summaries/monthly/rebuild [options]
func (co Controller) OptionsRebuildMonthlySummary(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Summaries
// @Success		204
// @Router			/v1/summaries/range [options]
// @Router			/v1/summaries/range/chart [options]
func (co Controller) OptionsRangedSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get monthly summary
// @Description	Aggregates all transactions of the month ingested since the last aggregation and returns the
// @Description	spending and emission per category. With format=table, the summary is returned as text table.
// @Tags			Summaries
// @Produce		json,plain
// @Success		200		{object}	MonthlySummaryResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			user	query		string	true	"ID of the user"
// @Param			month	query		string	true	"Year and month, e.g. 2024-03"
// @Param			format	query		string	false	"json (default) or table"
// @Router			/v1/summaries/monthly [get]
func (co Controller) GetMonthlySummary(c *gin.Context) {
	var query QueryMonthlySummary
	if err := c.BindQuery(&query); err != nil {
		fail(c, err)
		return
	}

	if query.Format != "" && query.Format != "json" && query.Format != "table" {
		fail(c, errFormatParameter)
		return
	}

	userID, month, err := userMonth(query.QueryUserMonth)
	if err != nil {
		fail(c, err)
		return
	}

	summary, err := co.Reports.GetMonthlySummary(c.Request.Context(), userID, month)
	if err != nil {
		fail(c, err)
		return
	}

	if query.Format == "table" {
		var buf bytes.Buffer
		render.Table(&buf, summary)
		c.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
		return
	}

	c.JSON(http.StatusOK, MonthlySummaryResponse{Data: summary})
}

// @Summary		Reset monthly summary
// @Description	Deletes the summaries of the month. The next request for the month aggregates it from scratch.
// @Tags			Summaries
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			user	query		string	true	"ID of the user"
// @Param			month	query		string	true	"Year and month, e.g. 2024-03"
// @Router			/v1/summaries/monthly [delete]
func (co Controller) ResetMonthlySummary(c *gin.Context) {
	var query QueryUserMonth
	if err := c.BindQuery(&query); err != nil {
		fail(c, err)
		return
	}

	userID, month, err := userMonth(query)
	if err != nil {
		fail(c, err)
		return
	}

	if err := co.Reports.ResetMonth(c.Request.Context(), userID, month); err != nil {
		fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Rebuild monthly summary
// @Description	Resets the month and aggregates it from scratch. Use this after overriding transaction categories.
// @Tags			Summaries
// @Produce		json
// @Success		200		{object}	MonthlySummaryResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			user	query		string	true	"ID of the user"
// @Param			month	query		string	true	"Year and month, e.g. 2024-03"
// @Router			/v1/summaries/monthly/rebuild [post]
func (co Controller) RebuildMonthlySummary(c *gin.Context) {
	var query QueryUserMonth
	if err := c.BindQuery(&query); err != nil {
		fail(c, err)
		return
	}

	userID, month, err := userMonth(query)
	if err != nil {
		fail(c, err)
		return
	}

	summary, err := co.Reports.RebuildMonth(c.Request.Context(), userID, month)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, MonthlySummaryResponse{Data: summary})
}

// rangedSummary parses the query and returns the ranged summary.
func (co Controller) rangedSummary(c *gin.Context) (report.RangedSummary, error) {
	var query QueryRangedSummary
	if err := c.BindQuery(&query); err != nil {
		return report.RangedSummary{}, err
	}

	userID, month, err := userMonth(query.QueryUserMonth)
	if err != nil {
		return report.RangedSummary{}, err
	}

	count := defaultMonthCount
	if query.Count != nil {
		count = *query.Count
	}

	return co.Reports.GetRangedSummary(c.Request.Context(), userID, month, count)
}

// @Summary		Get ranged summary
// @Description	Returns the monthly summaries for count months, ending with month, and their totals
// @Tags			Summaries
// @Produce		json
// @Success		200		{object}	RangedSummaryResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			user	query		string	true	"ID of the user"
// @Param			month	query		string	true	"Last month of the range, e.g. 2024-03"
// @Param			count	query		int		false	"Number of months, 1 to 36. Defaults to 5"
// @Router			/v1/summaries/range [get]
func (co Controller) GetRangedSummary(c *gin.Context) {
	summary, err := co.rangedSummary(c)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, RangedSummaryResponse{Data: summary})
}

// @Summary		Get ranged summary chart
// @Description	Returns a bar chart of the monthly emission for count months, ending with month
// @Tags			Summaries
// @Produce		png
// @Success		200
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			user	query		string	true	"ID of the user"
// @Param			month	query		string	true	"Last month of the range, e.g. 2024-03"
// @Param			count	query		int		false	"Number of months, 1 to 36. Defaults to 5"
// @Router			/v1/summaries/range/chart [get]
func (co Controller) GetRangedSummaryChart(c *gin.Context) {
	summary, err := co.rangedSummary(c)
	if err != nil {
		fail(c, err)
		return
	}

	var buf bytes.Buffer
	if err := render.Chart(&buf, summary); err != nil {
		fail(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
