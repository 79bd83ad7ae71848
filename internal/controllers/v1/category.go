package v1

import (
	"net/http"

	"github.com/carbonledger/backend/internal/httputil"
	"github.com/carbonledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsCategoryList)
	r.GET("", co.GetCategories)
	r.POST("", co.CreateCategory)
}

type CategoryEditable struct {
	Name           string          `json:"name" example:"Groceries"`                              // Name of the category
	EmissionFactor decimal.Decimal `json:"emissionFactor" example:"0.05"`                         // Emission per currency unit spent
	UserID         *uuid.UUID      `json:"userId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"` // Owner of the category. Omit for a global category
}

type CategoryResponse struct {
	Data models.Category `json:"data"` // Data for the category
}

type CategoryListResponse struct {
	Data []models.Category `json:"data"` // List of categories
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func (co Controller) OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Get categories
// @Description	Returns the global categories and, if a user is given, the categories of the user
// @Tags			Categories
// @Produce		json
// @Success		200		{object}	CategoryListResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			user	query		string	false	"ID of the user"
// @Router			/v1/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	var query QueryUser
	if err := c.BindQuery(&query); err != nil {
		fail(c, err)
		return
	}

	categories, err := co.Store.Categories(c.Request.Context(), query.User.Ptr())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: categories})
}

// @Summary		Create category
// @Description	Creates a new category. Categories without a user are global.
// @Tags			Categories
// @Produce		json
// @Success		201			{object}	CategoryResponse
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories [post]
func (co Controller) CreateCategory(c *gin.Context) {
	var editable CategoryEditable
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

	category := models.Category{
		Name:           editable.Name,
		EmissionFactor: editable.EmissionFactor,
		UserID:         editable.UserID,
	}

	if err := co.Store.SaveCategory(c.Request.Context(), &category); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, CategoryResponse{Data: category})
}
