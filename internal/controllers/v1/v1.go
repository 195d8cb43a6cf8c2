// Package v1 implements the v1 API of the expense tracker.
package v1

import (
	"net/http"

	"github.com/ckck22/geumjjok-backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterRootRoutes registers the routes for the v1 API root with
// the RouterGroup that is passed.
func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Expenses   string `json:"expenses" example:"https://example.com/v1/expenses"`     // URL of the Expense collection endpoint
	Month      string `json:"month" example:"https://example.com/v1/month"`           // URL of the monthly dashboard endpoint
	Statistics string `json:"statistics" example:"https://example.com/v1/statistics"` // URL of the statistics endpoint
	Users      string `json:"users" example:"https://example.com/v1/users"`           // URL of the participant list endpoint
	Categories string `json:"categories" example:"https://example.com/v1/categories"` // URL of the category list endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Links: Links{
			Expenses:   "/v1/expenses",
			Month:      "/v1/month",
			Statistics: "/v1/statistics",
			Users:      "/v1/users",
			Categories: "/v1/categories",
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
