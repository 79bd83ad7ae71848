package v1

import (
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/carbonledger/backend/internal/httputil"
	"github.com/carbonledger/backend/internal/ingest"
	"github.com/gin-gonic/gin"
)

// RegisterImportRoutes registers the routes for imports with
// the RouterGroup that is passed.
func (co Controller) RegisterImportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsImport)
	r.POST("", co.Import)
}

type ImportResponse struct {
	Data  ingest.Result `json:"data"`                                                             // Result of the import
	Error *string       `json:"error" example:"the merchant could not be resolved to a category"` // The error, if any occurred
}

// getUploadedFile returns the file uploaded as "file" form field.
func getUploadedFile(c *gin.Context, suffix string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(strings.ToLower(formFile.Filename), suffix) {
		return nil, errWrongFileSuffix
	}

	return formFile.Open()
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/imports [options]
func (co Controller) OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Import transactions
// @Description	Imports transactions from a CSV file with the columns amount, payment mode, merchant id, merchant name,
// @Description	kind and timestamp. Rows that cannot be parsed are skipped and listed in the result.
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		201		{object}	ImportResponse
// @Failure		400		{object}	ImportResponse
// @Failure		404		{object}	ImportResponse
// @Failure		500		{object}	ImportResponse
// @Param			file	formData	file	true	"File to import"
// @Param			user	query		string	true	"ID of the user to import transactions for"
// @Router			/v1/imports [post]
func (co Controller) Import(c *gin.Context) {
	var query QueryUser
	if err := c.BindQuery(&query); err != nil {
		s := err.Error()
		c.JSON(status(err), ImportResponse{Error: &s})
		return
	}

	userID, err := query.userID()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportResponse{Error: &s})
		return
	}

	f, err := getUploadedFile(c, ".csv")
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportResponse{Error: &s})
		return
	}
	defer f.Close()

	result, err := co.Ingestor.ImportCSV(c.Request.Context(), f, userID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportResponse{Data: result, Error: &s})
		return
	}

	c.JSON(http.StatusCreated, ImportResponse{Data: result})
}
