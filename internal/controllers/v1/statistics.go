package v1

import (
	"net/http"
	"time"

	"github.com/ckck22/geumjjok-backend/internal/budget"
	"github.com/ckck22/geumjjok-backend/internal/config"
	"github.com/ckck22/geumjjok-backend/internal/httputil"
	"github.com/ckck22/geumjjok-backend/internal/models"
	"github.com/ckck22/geumjjok-backend/internal/types"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterStatisticsRoutes registers the routes for statistics with
// the RouterGroup that is passed.
func RegisterStatisticsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsStatistics)
	r.GET("", GetStatistics)
}

// StatisticsData is the monthly breakdown for the statistics page.
type StatisticsData struct {
	Month    types.Month `json:"month" example:"2024-03"`             // The month the statistics are for
	UserName string      `json:"userName,omitempty" example:"Nayoon"` // The participant the statistics are narrowed to, if any

	Summary    budget.Summary       `json:"summary"`    // Total, average and count over the selected records
	Categories []budget.CategorySum `json:"categories"` // Spending per category, largest first

	Months []string `json:"months" example:"2024-03,2024-02"` // All months that have records, newest first
}

type StatisticsResponse struct {
	Data  *StatisticsData `json:"data"`  // The statistics data
	Error *string         `json:"error"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Statistics
// @Success		204
// @Router			/v1/statistics [options]
func OptionsStatistics(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Monthly statistics
// @Description	Returns total, average, count and the category breakdown for a month, optionally narrowed to one participant. Defaults to the current month in the configured timezone.
// @Tags			Statistics
// @Produce		json
// @Success		200		{object}	StatisticsResponse
// @Failure		400		{object}	StatisticsResponse
// @Failure		500		{object}	StatisticsResponse
// @Param			month	query		string	false	"The month in YYYY-MM format"
// @Param			user	query		string	false	"Narrow the statistics to one participant"
// @Router			/v1/statistics [get]
func GetStatistics(c *gin.Context) {
	cfg := config.Get()

	month := types.MonthOf(time.Now().In(cfg.Timezone))
	if query := c.Query("month"); query != "" {
		parsed, err := types.ParseMonth(query, cfg.Timezone)
		if err != nil {
			e := errInvalidMonth.Error()
			c.JSON(http.StatusBadRequest, StatisticsResponse{Error: &e})
			return
		}
		month = parsed
	}

	user := c.Query("user")
	if user != "" {
		if _, ok := cfg.Targets[user]; !ok {
			e := errUnknownUser.Error()
			c.JSON(http.StatusBadRequest, StatisticsResponse{Error: &e})
			return
		}
	}

	// The statistics page needs the full history for its month picker, so
	// this is the one endpoint fetching all records.
	var expenses []models.Expense
	if err := models.DB.Order("datetime(expenses.created_at) DESC, expenses.id DESC").Find(&expenses).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), StatisticsResponse{Error: &e})
		return
	}

	selected := budget.FilterMonth(expenses, month)
	if user != "" {
		selected = budget.FilterUser(selected, user)
	}

	c.JSON(http.StatusOK, StatisticsResponse{
		Data: &StatisticsData{
			Month:      month,
			UserName:   user,
			Summary:    budget.Summarize(selected),
			Categories: budget.Categories(selected),
			Months:     recordedMonths(expenses, cfg.Timezone),
		},
	})
}

// recordedMonths returns the distinct months having records, newest first.
// The records are already sorted newest first.
func recordedMonths(records []models.Expense, loc *time.Location) []string {
	var months []string
	for _, record := range records {
		if record.CreatedAt.IsZero() {
			continue
		}

		month := types.MonthOf(record.CreatedAt.In(loc)).String()
		if !slices.Contains(months, month) {
			months = append(months, month)
		}
	}

	return months
}
