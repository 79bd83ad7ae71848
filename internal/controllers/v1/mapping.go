package v1

import (
	"net/http"

	"github.com/carbonledger/backend/internal/httputil"
	"github.com/carbonledger/backend/internal/mapping"
	"github.com/carbonledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RegisterMappingRoutes registers the routes for mappings with
// the RouterGroup that is passed.
func (co Controller) RegisterMappingRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsMappingList)
		r.GET("", co.GetMappings)
		r.POST("", co.CreateMapping)
	}

	{
		r.OPTIONS("/suggestions", co.OptionsMappingSuggestions)
		r.GET("/suggestions", co.GetMappingSuggestions)
	}
}

type MappingEditable struct {
	MerchantName string     `json:"merchantName" example:"Blue Tokai"`                         // Merchant name, upper-cased when saved
	CategoryID   uuid.UUID  `json:"categoryId" example:"cee2b3c2-8bb3-4b1a-9a63-0ab4f8ea9e0a"` // Category the merchant maps to
	UserID       *uuid.UUID `json:"userId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`     // User the mapping is for. Omit for a global mapping
}

type MappingResponse struct {
	Data models.Mapping `json:"data"` // Data for the mapping
}

type MappingListResponse struct {
	Data []models.Mapping `json:"data"` // List of mappings
}

type SuggestionListResponse struct {
	Data []mapping.Suggestion `json:"data"` // Merchants with a mapping, closest first
}

type QuerySuggestions struct {
	QueryUser
	Merchant string `form:"merchant" example:"blue tokay"` // Merchant name to find suggestions for
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Mappings
// @Success		204
// @Router			/v1/mappings [options]
func (co Controller) OptionsMappingList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Mappings
// @Success		204
// @Router			/v1/mappings/suggestions [options]
func (co Controller) OptionsMappingSuggestions(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get mappings
// @Description	Returns the global mappings and, if a user is given, the mappings of the user
// @Tags			Mappings
// @Produce		json
// @Success		200		{object}	MappingListResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			user	query		string	false	"ID of the user"
// @Router			/v1/mappings [get]
func (co Controller) GetMappings(c *gin.Context) {
	var query QueryUser
	if err := c.BindQuery(&query); err != nil {
		fail(c, err)
		return
	}

	mappings, err := co.Store.Mappings(c.Request.Context(), query.User.Ptr())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, MappingListResponse{Data: mappings})
}

// @Summary		Create mapping
// @Description	Creates a mapping for a user or, without a user, a global mapping.
// @Description	User mappings may use global categories and those of the user. Global mappings must use a global category.
// @Tags			Mappings
// @Produce		json
// @Success		201		{object}	MappingResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			mapping	body		MappingEditable	true	"Mapping"
// @Router			/v1/mappings [post]
func (co Controller) CreateMapping(c *gin.Context) {
	var editable MappingEditable
	if err := httputil.BindData(c, &editable); err != nil {
		fail(c, err)
		return
	}

	var (
		m   models.Mapping
		err error
	)

	if editable.UserID == nil {
		m, err = co.Mappings.AddGlobal(c.Request.Context(), editable.MerchantName, editable.CategoryID)
	} else {
		m, err = co.Mappings.AddCustom(c.Request.Context(), *editable.UserID, editable.MerchantName, editable.CategoryID)
	}

	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, MappingResponse{Data: m})
}

// @Summary		Get mapping suggestions
// @Description	Returns merchants with a mapping visible to the user whose names are close to the merchant
// @Tags			Mappings
// @Produce		json
// @Success		200			{object}	SuggestionListResponse
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			user		query		string	true	"ID of the user"
// @Param			merchant	query		string	true	"Merchant name"
// @Router			/v1/mappings/suggestions [get]
func (co Controller) GetMappingSuggestions(c *gin.Context) {
	var query QuerySuggestions
	if err := c.BindQuery(&query); err != nil {
		fail(c, err)
		return
	}

	userID, err := query.userID()
	if err != nil {
		fail(c, err)
		return
	}

	suggestions, err := co.Suggester.Suggest(c.Request.Context(), query.Merchant, userID, suggestionLimit)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, SuggestionListResponse{Data: suggestions})
}
