package v1

import (
	"net/http"

	"github.com/ckck22/geumjjok-backend/internal/config"
	"github.com/ckck22/geumjjok-backend/internal/httputil"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterUserRoutes registers the routes for users with
// the RouterGroup that is passed.
func RegisterUserRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsUsers)
	r.GET("", GetUsers)
}

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCategories)
	r.GET("", GetCategories)
}

// User is a configured participant. The participant set is fixed
// configuration, there is no user management.
type User struct {
	UserName      string          `json:"userName" example:"Nayoon"`       // Name of the participant
	MonthlyTarget decimal.Decimal `json:"monthlyTarget" example:"1000.00"` // The monthly spending target
}

type UserListResponse struct {
	Data []User `json:"data"` // The configured participants, sorted by name
}

type CategoryListResponse struct {
	Data []string `json:"data" example:"food,cafe"` // The configured category labels
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Configuration
// @Success		204
// @Router			/v1/users [options]
func OptionsUsers(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		List users
// @Description	Returns the configured participants and their monthly targets
// @Tags			Configuration
// @Produce		json
// @Success		200	{object}	UserListResponse
// @Router			/v1/users [get]
func GetUsers(c *gin.Context) {
	cfg := config.Get()

	users := make([]User, 0, len(cfg.Targets))
	for _, name := range cfg.Users() {
		users = append(users, User{
			UserName:      name,
			MonthlyTarget: cfg.Targets[name],
		})
	}

	c.JSON(http.StatusOK, UserListResponse{Data: users})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Configuration
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategories(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		List categories
// @Description	Returns the configured category enumeration. The enumeration is advisory for new expenses, historical records may carry other labels.
// @Tags			Configuration
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, CategoryListResponse{Data: config.Get().Categories})
}
