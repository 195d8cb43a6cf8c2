package v1

import (
	"net/http"

	"github.com/ckck22/geumjjok-backend/internal/httputil"
	"github.com/ckck22/geumjjok-backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsExpenseList)
		r.GET("", GetExpenses)
		r.POST("", CreateExpense)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", OptionsExpenseDetail)
		r.GET("/:id", GetExpense)
		r.PATCH("/:id", UpdateExpense)
		r.DELETE("/:id", DeleteExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
func OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID of the expense"
// @Router			/v1/expenses/{id} [options]
func OptionsExpenseDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Expense{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create expense
// @Description	Creates a new expense
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		201		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		500		{object}	ExpenseResponse
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses [post]
func CreateExpense(c *gin.Context) {
	var editable ExpenseEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	// Reject invalid submissions before any store call
	if err := editable.validate(); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ExpenseResponse{Error: &e})
		return
	}

	expense, err := editable.model()
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ExpenseResponse{Error: &e})
		return
	}

	if err := models.DB.Create(&expense).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, ExpenseResponse{Data: &expense})
}

// @Summary		Get expenses
// @Description	Returns a list of expenses, newest first
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseListResponse
// @Failure		400	{object}	ExpenseListResponse
// @Failure		500	{object}	ExpenseListResponse
// @Router			/v1/expenses [get]
// @Param			user		query	string	false	"Filter by participant name"
// @Param			category	query	string	false	"Filter by category label"
// @Param			fromDate	query	string	false	"Expenses at and after this day, in YYYY-MM-DD format"
// @Param			untilDate	query	string	false	"Expenses before and at this day, in YYYY-MM-DD format"
// @Param			memo		query	string	false	"Filter by memo, glob patterns are supported"
// @Param			offset		query	uint	false	"The offset of the first Expense returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Expenses to return. Defaults to 50."
func GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ExpenseListResponse{Error: &e})
		return
	}

	q := models.DB.Order("datetime(expenses.created_at) DESC, expenses.id DESC")

	if filter.UserName != "" {
		q = q.Where("expenses.user_name = ?", filter.UserName)
	}

	if filter.Category != "" {
		q = q.Where("expenses.description = ?", filter.Category)
	}

	if !filter.FromDate.IsZero() {
		q = q.Where("expenses.created_at >= ?", filter.FromDate)
	}

	// "untilDate" is inclusive on the day, so the upper bound is the
	// following midnight
	if !filter.UntilDate.IsZero() {
		q = q.Where("expenses.created_at < ?", filter.UntilDate.AddDate(0, 0, 1))
	}

	var expenses []models.Expense
	if err := q.Find(&expenses).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseListResponse{Error: &e})
		return
	}

	if filter.Memo != "" {
		matched := make([]models.Expense, 0, len(expenses))
		for _, expense := range expenses {
			if glob.Glob(filter.Memo, expense.Memo) {
				matched = append(matched, expense)
			}
		}
		expenses = matched
	}

	// The default limit is 50
	limit := filter.Limit
	if limit == 0 {
		limit = 50
	}

	total := int64(len(expenses))
	if filter.Offset < uint(len(expenses)) {
		expenses = expenses[filter.Offset:]
	} else {
		expenses = []models.Expense{}
	}

	// A negative limit returns all remaining records
	if limit > 0 && limit < len(expenses) {
		expenses = expenses[:limit]
	}

	c.JSON(http.StatusOK, ExpenseListResponse{
		Data: expenses,
		Pagination: &Pagination{
			Count:  len(expenses),
			Offset: filter.Offset,
			Limit:  limit,
			Total:  total,
		},
	})
}

// @Summary		Get expense
// @Description	Returns a specific expense
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseResponse
// @Failure		400	{object}	ExpenseResponse
// @Failure		404	{object}	ExpenseResponse
// @Failure		500	{object}	ExpenseResponse
// @Param			id	path		uint	true	"ID of the expense"
// @Router			/v1/expenses/{id} [get]
func GetExpense(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	var expense models.Expense
	if err := models.DB.First(&expense, uri.ID).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, ExpenseResponse{Data: &expense})
}

// @Summary		Update expense
// @Description	Updates an existing expense. Only values to be updated need to be specified.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		404		{object}	ExpenseResponse
// @Failure		500		{object}	ExpenseResponse
// @Param			id		path		uint			true	"ID of the expense"
// @Param			expense	body		ExpenseUpdate	true	"Expense"
// @Router			/v1/expenses/{id} [patch]
func UpdateExpense(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	var expense models.Expense
	if err := models.DB.First(&expense, uri.ID).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	var update ExpenseUpdate
	if err := httputil.BindData(c, &update); err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	if err := update.apply(&expense); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ExpenseResponse{Error: &e})
		return
	}

	if err := models.DB.Save(&expense).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, ExpenseResponse{Data: &expense})
}

// @Summary		Delete expense
// @Description	Deletes an expense
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID of the expense"
// @Router			/v1/expenses/{id} [delete]
func DeleteExpense(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var expense models.Expense
	if err := models.DB.First(&expense, uri.ID).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := models.DB.Delete(&expense).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
