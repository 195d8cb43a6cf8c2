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
)

// RegisterMonthRoutes registers the routes for the monthly dashboard with
// the RouterGroup that is passed.
func RegisterMonthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsMonth)
	r.GET("", GetMonth)
}

// UserProgress is the monthly budget progress of one participant.
type UserProgress struct {
	UserName string `json:"userName" example:"Nayoon"` // Name of the participant
	budget.Progress
}

// MonthData is the dashboard for one month: every configured participant
// with their spending, target and progress.
type MonthData struct {
	Month    types.Month    `json:"month" example:"2024-03"` // The month the data is for
	Progress []UserProgress `json:"progress"`                // Progress per participant, sorted by name
}

type MonthResponse struct {
	Data  *MonthData `json:"data"`  // The dashboard data
	Error *string    `json:"error"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/month [options]
func OptionsMonth(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Monthly dashboard
// @Description	Returns every participant's total spend, remaining budget and progress for a month. Defaults to the current month in the configured timezone.
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			month	query		string	false	"The month in YYYY-MM format"
// @Router			/v1/month [get]
func GetMonth(c *gin.Context) {
	cfg := config.Get()

	// The window boundaries are derived once from a single reference
	// instant. For the current month that is "now" in the configured
	// timezone, for an explicitly requested month its first instant.
	reference := time.Now().In(cfg.Timezone)
	if query := c.Query("month"); query != "" {
		month, err := types.ParseMonth(query, cfg.Timezone)
		if err != nil {
			e := errInvalidMonth.Error()
			c.JSON(http.StatusBadRequest, MonthResponse{Error: &e})
			return
		}
		reference = month.FirstInstant()
	}

	month := types.MonthOf(reference)

	// Pre-filter the fetch to the window. The aggregation itself does not
	// rely on this, it re-checks every record against the window.
	var expenses []models.Expense
	err := models.DB.
		Where("expenses.created_at >= ?", month.FirstInstant().In(time.UTC)).
		Where("expenses.created_at < ?", month.NextMonth().FirstInstant().In(time.UTC)).
		Find(&expenses).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthResponse{Error: &e})
		return
	}

	totals := budget.MonthlyTotals(expenses, cfg.Targets, reference, cfg.Timezone)

	progress := make([]UserProgress, 0, len(totals))
	for _, name := range cfg.Users() {
		progress = append(progress, UserProgress{
			UserName: name,
			Progress: totals[name],
		})
	}

	c.JSON(http.StatusOK, MonthResponse{
		Data: &MonthData{
			Month:    month,
			Progress: progress,
		},
	})
}
