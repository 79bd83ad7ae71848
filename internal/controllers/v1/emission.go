package v1

import (
	"net/http"

	"github.com/carbonledger/backend/internal/emission"
	"github.com/carbonledger/backend/internal/httputil"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegisterEmissionRoutes registers the routes for emission estimates with
// the RouterGroup that is passed.
func (co Controller) RegisterEmissionRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/calculate", co.OptionsEmissionCalculate)
	r.POST("/calculate", co.CalculateEmission)
}

type EmissionRequest struct {
	CategoryName string          `json:"categoryName" example:"Travel"`                         // Name of the category
	AmountSpent  decimal.Decimal `json:"amountSpent" example:"250.00"`                          // Amount spent
	UserID       *uuid.UUID      `json:"userId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"` // User whose categories are searched before the global ones
}

type EmissionResponse struct {
	Data emission.Estimate `json:"data"` // Data for the estimate
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Emissions
// @Success		204
// @Router			/v1/emissions/calculate [options]
func (co Controller) OptionsEmissionCalculate(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Calculate emission
// @Description	Estimates the emission of an amount spent in a category without booking a transaction.
// @Description	If a user is given, their category of that name is used before a global one.
// @Tags			Emissions
// @Produce		json
// @Success		200		{object}	EmissionResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			request	body		EmissionRequest	true	"Category and amount"
// @Router			/v1/emissions/calculate [post]
func (co Controller) CalculateEmission(c *gin.Context) {
	var request EmissionRequest
	if err := httputil.BindData(c, &request); err != nil {
		fail(c, err)
		return
	}

	if request.UserID != nil {
		if _, err := co.Store.FindUser(c.Request.Context(), *request.UserID); err != nil {
			fail(c, err)
			return
		}
	}

	estimate, err := co.Emissions.Calculate(c.Request.Context(), request.CategoryName, request.AmountSpent, request.UserID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, EmissionResponse{Data: estimate})
}
