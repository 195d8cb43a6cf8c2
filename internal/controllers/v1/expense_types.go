package v1

import (
	"strings"
	"time"

	"github.com/ckck22/geumjjok-backend/internal/config"
	"github.com/ckck22/geumjjok-backend/internal/models"
	"github.com/shopspring/decimal"
)

// ExpenseEditable contains the fields settable on creation.
type ExpenseEditable struct {
	UserName string `json:"userName" example:"Nayoon"` // Name of the participant who spent the money

	// The amount spent. Must be greater than zero.
	Amount decimal.Decimal `json:"amount" example:"14.03" minimum:"0.01"`

	Description string `json:"description" example:"cafe"`              // Category label
	Memo        string `json:"memo" example:"birthday cake" default:""` // An optional note

	// Optional day the expense is attributed to, in YYYY-MM-DD format.
	// When set, the expense carries midnight UTC of that day instead of the
	// insertion time.
	Date string `json:"date" example:"2024-03-05" default:""`
}

// validate rejects submissions that must never reach the store.
func (editable ExpenseEditable) validate() error {
	if !editable.Amount.IsPositive() {
		return errAmountNotPositive
	}

	if _, ok := config.Get().Targets[editable.UserName]; !ok {
		return errUnknownUser
	}

	if strings.TrimSpace(editable.Description) == "" {
		return errCategoryMissing
	}

	return nil
}

// model returns the database resource for the API representation of the
// editable fields
func (editable ExpenseEditable) model() (models.Expense, error) {
	expense := models.Expense{
		UserName:    editable.UserName,
		Amount:      editable.Amount,
		Description: editable.Description,
		Memo:        editable.Memo,
	}

	if editable.Date != "" {
		day, err := time.ParseInLocation("2006-01-02", editable.Date, time.UTC)
		if err != nil {
			return models.Expense{}, errInvalidDate
		}

		// Backdated expenses are normalized to midnight UTC of the chosen day
		expense.CreatedAt = day
	}

	return expense, nil
}

// ExpenseUpdate contains the fields settable on update. Unset fields are
// left untouched.
type ExpenseUpdate struct {
	Amount      *decimal.Decimal `json:"amount" example:"14.03"`
	Description *string          `json:"description" example:"groceries"`
	Memo        *string          `json:"memo" example:""`
	Date        *string          `json:"date" example:"2024-03-05"`
}

// apply merges the update into an existing expense.
func (update ExpenseUpdate) apply(expense *models.Expense) error {
	if update.Amount != nil {
		if !update.Amount.IsPositive() {
			return errAmountNotPositive
		}
		expense.Amount = *update.Amount
	}

	if update.Description != nil {
		if strings.TrimSpace(*update.Description) == "" {
			return errCategoryMissing
		}
		expense.Description = *update.Description
	}

	if update.Memo != nil {
		expense.Memo = *update.Memo
	}

	if update.Date != nil {
		day, err := time.ParseInLocation("2006-01-02", *update.Date, time.UTC)
		if err != nil {
			return errInvalidDate
		}
		expense.CreatedAt = day
	}

	return nil
}

type ExpenseQueryFilter struct {
	UserName  string    `form:"user"`                                            // Filter by participant name
	Category  string    `form:"category"`                                        // Filter by category label
	FromDate  time.Time `form:"fromDate" time_format:"2006-01-02" time_utc:"1"`  // Expenses at and after this day
	UntilDate time.Time `form:"untilDate" time_format:"2006-01-02" time_utc:"1"` // Expenses before and at this day
	Memo      string    `form:"memo"`                                            // Filter by memo, glob patterns are supported
	Offset    uint      `form:"offset"`                                          // The offset of the first Expense returned. Defaults to 0.
	Limit     int       `form:"limit"`                                           // Maximum number of Expenses to return. Defaults to 50.
}

type ExpenseResponse struct {
	Data  *models.Expense `json:"data"`                                                    // The Expense data, if the request was successful
	Error *string         `json:"error" example:"there is no expense matching your query"` // The error, if any occurred
}

type ExpenseListResponse struct {
	Data       []models.Expense `json:"data"`       // List of expenses
	Error      *string          `json:"error"`      // The error, if any occurred
	Pagination *Pagination      `json:"pagination"` // Pagination information
}
