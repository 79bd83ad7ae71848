package v1

import (
	"net/http"

	"github.com/carbonledger/backend/internal/httputil"
	"github.com/carbonledger/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Categories    string `json:"categories" example:"https://example.com/api/v1/categories"`         // URL of Category collection endpoint
	Emissions     string `json:"emissions" example:"https://example.com/api/v1/emissions/calculate"` // URL of the emission calculator
	Imports       string `json:"imports" example:"https://example.com/api/v1/imports"`               // URL of import endpoint
	Mappings      string `json:"mappings" example:"https://example.com/api/v1/mappings"`             // URL of Mapping collection endpoint
	MerchantRules string `json:"merchantRules" example:"https://example.com/api/v1/merchant-rules"`  // URL of Merchant Rule collection endpoint
	Summaries     string `json:"summaries" example:"https://example.com/api/v1/summaries/monthly"`   // URL of the monthly summary endpoint
	Transactions  string `json:"transactions" example:"https://example.com/api/v1/transactions"`     // URL of Transaction collection endpoint
	Users         string `json:"users" example:"https://example.com/api/v1/users"`                   // URL of User collection endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Categories:    url + "/v1/categories",
			Emissions:     url + "/v1/emissions/calculate",
			Imports:       url + "/v1/imports",
			Mappings:      url + "/v1/mappings",
			MerchantRules: url + "/v1/merchant-rules",
			Summaries:     url + "/v1/summaries/monthly",
			Transactions:  url + "/v1/transactions",
			Users:         url + "/v1/users",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
