package v1

import (
	"net/http"

	"github.com/carbonledger/backend/internal/httputil"
	"github.com/carbonledger/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers the routes for users with
// the RouterGroup that is passed.
func (co Controller) RegisterUserRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsUserList)
		r.POST("", co.CreateUser)
	}

	{
		r.OPTIONS("/:id", co.OptionsUserDetail)
		r.GET("/:id", co.GetUser)
	}
}

type UserEditable struct {
	Name string `json:"name" example:"Aditi"` // Name of the user
}

type UserResponse struct {
	Data models.User `json:"data"` // Data for the user
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Router			/v1/users [options]
func (co Controller) OptionsUserList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/users/{id} [options]
func (co Controller) OptionsUserDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		fail(c, err)
		return
	}

	if _, err := co.Store.FindUser(c.Request.Context(), uri.ID.UUID); err != nil {
		fail(c, err)
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Create user
// @Description	Creates a new user
// @Tags			Users
// @Produce		json
// @Success		201		{object}	UserResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			user	body		UserEditable	true	"User"
// @Router			/v1/users [post]
func (co Controller) CreateUser(c *gin.Context) {
	var editable UserEditable
	if err := httputil.BindData(c, &editable); err != nil {
		fail(c, err)
		return
	}

	user := models.User{Name: editable.Name}
	if err := co.Store.CreateUser(c.Request.Context(), &user); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, UserResponse{Data: user})
}

// @Summary		Get user
// @Description	Returns a specific user
// @Tags			Users
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/users/{id} [get]
func (co Controller) GetUser(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		fail(c, err)
		return
	}

	user, err := co.Store.FindUser(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, UserResponse{Data: user})
}
