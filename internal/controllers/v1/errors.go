package v1

import (
	"errors"
	"net/http"

	"github.com/carbonledger/backend/internal/ingest"
	"github.com/carbonledger/backend/internal/mapping"
	"github.com/carbonledger/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type httpError struct {
	Error string `json:"error" example:"the user parameter must be set"`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) || errors.Is(err, mapping.ErrMappingNotFound) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, ingest.ErrUserNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// fail writes the error with its status.
func fail(c *gin.Context, err error) {
	c.JSON(status(err), httpError{
		Error: err.Error(),
	})
}

var (
	errUserParameter   = errors.New("the user parameter must be set")
	errMonthParameter  = errors.New("the month parameter must be set")
	errFormatParameter = errors.New("the format parameter must be one of json, table")
)

// Import errors
var (
	errNoFilePost      = errors.New("you must send a file to this endpoint")
	errWrongFileSuffix = errors.New("this endpoint only supports .csv files")
)
