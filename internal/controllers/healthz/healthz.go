package healthz

import (
	"net/http"

	"github.com/carbonledger/backend/internal/health"
	"github.com/carbonledger/backend/internal/httputil"
	"github.com/carbonledger/backend/internal/models"
	"github.com/carbonledger/backend/internal/store"
	"github.com/gin-gonic/gin"
)

type httpError struct {
	Error string `json:"error" example:"the global MISCELLANEOUS mapping does not exist"`
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error.
// @Description	The backend is healthy when the database is reachable and the global MISCELLANEOUS mapping exists.
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	httpError
// @Router			/healthz [get]
func Get(c *gin.Context) {
	sqlDB, err := models.DB.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
		return
	}

	err = sqlDB.PingContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
		return
	}

	err = health.CheckFallback(c.Request.Context(), store.New(models.DB))
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
