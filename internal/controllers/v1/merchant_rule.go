package v1

import (
	"net/http"

	"github.com/carbonledger/backend/internal/httputil"
	"github.com/carbonledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RegisterMerchantRuleRoutes registers the routes for merchant rules with
// the RouterGroup that is passed.
func (co Controller) RegisterMerchantRuleRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsMerchantRuleList)
		r.GET("", co.GetMerchantRules)
		r.POST("", co.CreateMerchantRule)
	}

	{
		r.OPTIONS("/:id", co.OptionsMerchantRuleDetail)
		r.DELETE("/:id", co.DeleteMerchantRule)
	}
}

type MerchantRuleEditable struct {
	UserID   *uuid.UUID `json:"userId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"` // Owner of the rule. Omit for a rule applying to everyone
	Priority uint       `json:"priority" example:"3"`                                  // Rules with a lower priority value are applied first
	Match    string     `json:"match" example:"AMZN*"`                                 // Glob pattern, matched against the upper-cased merchant name
	Merchant string     `json:"merchant" example:"AMAZON"`                             // Merchant name to use when the rule matches
}

type MerchantRuleResponse struct {
	Data models.MerchantRule `json:"data"` // Data for the merchant rule
}

type MerchantRuleListResponse struct {
	Data []models.MerchantRule `json:"data"` // List of merchant rules in evaluation order
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Merchant Rules
// @Success		204
// @Router			/v1/merchant-rules [options]
func (co Controller) OptionsMerchantRuleList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Merchant Rules
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/merchant-rules/{id} [options]
func (co Controller) OptionsMerchantRuleDetail(c *gin.Context) {
	httputil.OptionsDelete(c)
}

// @Summary		Get merchant rules
// @Description	Returns the rules applying to everyone and, if a user is given, the rules of the user
// @Tags			Merchant Rules
// @Produce		json
// @Success		200		{object}	MerchantRuleListResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			user	query		string	false	"ID of the user"
// @Router			/v1/merchant-rules [get]
func (co Controller) GetMerchantRules(c *gin.Context) {
	var query QueryUser
	if err := c.BindQuery(&query); err != nil {
		fail(c, err)
		return
	}

	rules, err := co.Store.ListMerchantRules(c.Request.Context(), query.User.Ptr())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, MerchantRuleListResponse{Data: rules})
}

// @Summary		Create merchant rule
// @Description	Creates a new merchant rule
// @Tags			Merchant Rules
// @Produce		json
// @Success		201		{object}	MerchantRuleResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			rule	body		MerchantRuleEditable	true	"Merchant rule"
// @Router			/v1/merchant-rules [post]
func (co Controller) CreateMerchantRule(c *gin.Context) {
	var editable MerchantRuleEditable
	if err := httputil.BindData(c, &editable); err != nil {
		fail(c, err)
		return
	}

	if editable.UserID != nil {
		if _, err := co.Store.FindUser(c.Request.Context(), *editable.UserID); err != nil {
			fail(c, err)
			return
		}
	}

	rule := models.MerchantRule{
		UserID:   editable.UserID,
		Priority: editable.Priority,
		Match:    editable.Match,
		Merchant: editable.Merchant,
	}

	if err := co.Store.CreateMerchantRule(c.Request.Context(), &rule); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, MerchantRuleResponse{Data: rule})
}

// @Summary		Delete merchant rule
// @Description	Deletes a merchant rule
// @Tags			Merchant Rules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/merchant-rules/{id} [delete]
func (co Controller) DeleteMerchantRule(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		fail(c, err)
		return
	}

	if err := co.Store.DeleteMerchantRule(c.Request.Context(), uri.ID.UUID); err != nil {
		fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
