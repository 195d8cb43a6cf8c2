package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/ckck22/geumjjok-backend/internal/controllers/v1"
	"github.com/ckck22/geumjjok-backend/internal/models"
	"github.com/ckck22/geumjjok-backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestOptionsExpenseList() {
	recorder := test.Request(suite.T(), http.MethodOptions, "/v1/expenses", "")

	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("GET, POST", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestOptionsExpenseDetail() {
	expense := suite.createTestExpense("Nayoon", "cafe", 4.50, time.Now())

	recorder := test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("/v1/expenses/%d", expense.ID), "")

	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("GET, PATCH, DELETE", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestOptionsExpenseDetailNotFound() {
	recorder := test.Request(suite.T(), http.MethodOptions, "/v1/expenses/4096", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCreateExpense() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/expenses", v1.ExpenseEditable{
		UserName:    "Nayoon",
		Amount:      decimal.NewFromFloat(14.03),
		Description: "cafe",
		Memo:        "two iced americanos",
	})

	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Greater(response.Data.ID, uint(0))
	suite.Assert().Equal("Nayoon", response.Data.UserName)
	suite.Assert().True(decimal.NewFromFloat(14.03).Equal(response.Data.Amount))
	suite.Assert().Equal("two iced americanos", response.Data.Memo)
	suite.Assert().WithinDuration(time.Now(), response.Data.CreatedAt, time.Minute)
}

func (suite *TestSuiteStandard) TestCreateExpenseBackdated() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/expenses", v1.ExpenseEditable{
		UserName:    "Chaerin",
		Amount:      decimal.NewFromInt(50),
		Description: "groceries",
		Date:        "2024-02-15",
	})

	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)

	// Backdated expenses carry midnight UTC of the chosen day
	expected := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	suite.Assert().True(expected.Equal(response.Data.CreatedAt), "expected %s, got %s", expected, response.Data.CreatedAt)
}

func (suite *TestSuiteStandard) TestCreateExpenseRejected() {
	tests := []struct {
		name string
		body any
	}{
		{"zero amount", v1.ExpenseEditable{UserName: "Nayoon", Amount: decimal.Zero, Description: "cafe"}},
		{"negative amount", v1.ExpenseEditable{UserName: "Nayoon", Amount: decimal.NewFromInt(-5), Description: "cafe"}},
		{"unknown user", v1.ExpenseEditable{UserName: "Stranger", Amount: decimal.NewFromInt(5), Description: "cafe"}},
		{"missing description", v1.ExpenseEditable{UserName: "Nayoon", Amount: decimal.NewFromInt(5), Description: "  "}},
		{"invalid date", v1.ExpenseEditable{UserName: "Nayoon", Amount: decimal.NewFromInt(5), Description: "cafe", Date: "soon"}},
		{"empty body", ""},
		{"broken json", `{ "amount": `},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "/v1/expenses", tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)

			var response v1.ExpenseResponse
			test.DecodeResponse(t, &recorder, &response)
			require.NotNil(t, response.Error)
		})
	}

	// No record may have been created by any of the rejected submissions
	var count int64
	suite.Require().Nil(models.DB.Model(&models.Expense{}).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)
}

func (suite *TestSuiteStandard) TestGetExpenses() {
	now := time.Now().In(time.UTC)
	suite.createTestExpense("Nayoon", "cafe", 10, now.Add(-2*time.Hour))
	suite.createTestExpense("Chaerin", "food", 20, now.Add(-time.Hour))
	suite.createTestExpense("Nayoon", "food", 30, now)

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/expenses", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 3)

	// Newest first
	suite.Assert().True(decimal.NewFromInt(30).Equal(response.Data[0].Amount))
	suite.Assert().True(decimal.NewFromInt(10).Equal(response.Data[2].Amount))

	suite.Require().NotNil(response.Pagination)
	suite.Assert().Equal(3, response.Pagination.Count)
	suite.Assert().Equal(int64(3), response.Pagination.Total)
	suite.Assert().Equal(50, response.Pagination.Limit)
}

func (suite *TestSuiteStandard) TestGetExpensesFilters() {
	suite.createTestExpense("Nayoon", "cafe", 10, time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC))
	suite.createTestExpense("Nayoon", "food", 20, time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC))
	suite.createTestExpense("Chaerin", "cafe", 30, time.Date(2024, 4, 2, 12, 0, 0, 0, time.UTC))

	expense := suite.createTestExpense("Chaerin", "other", 40, time.Date(2024, 4, 3, 12, 0, 0, 0, time.UTC))
	expense.Memo = "present for grandma"
	suite.Require().Nil(models.DB.Save(&expense).Error)

	tests := []struct {
		query string
		count int
	}{
		{"user=Nayoon", 2},
		{"category=cafe", 2},
		{"user=Chaerin&category=cafe", 1},
		{"fromDate=2024-04-01", 2},
		{"untilDate=2024-03-10", 2},
		{"fromDate=2024-03-10&untilDate=2024-04-02", 2},
		{"memo=*grandma*", 1},
		{"user=Nobody", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, "/v1/expenses?"+tt.query, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.ExpenseListResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestGetExpensesPagination() {
	for i := range 5 {
		suite.createTestExpense("Nayoon", "cafe", float64(i+1), time.Now().Add(-time.Duration(i)*time.Hour))
	}

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/expenses?offset=2&limit=2", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal(int64(5), response.Pagination.Total)
	suite.Assert().Equal(uint(2), response.Pagination.Offset)

	// The third newest expense is the first one on this page
	suite.Assert().True(decimal.NewFromInt(3).Equal(response.Data[0].Amount))
}

func (suite *TestSuiteStandard) TestGetExpense() {
	expense := suite.createTestExpense("Nayoon", "cafe", 4.50, time.Now())

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/expenses/%d", expense.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(expense.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestGetExpenseNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/expenses/4096", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGetExpenseInvalidID() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/expenses/definitely-not-a-number", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUpdateExpense() {
	expense := suite.createTestExpense("Nayoon", "cafe", 10, time.Now())

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/expenses/%d", expense.ID), map[string]any{
		"amount": 12.50,
		"memo":   "correction",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().True(decimal.NewFromFloat(12.50).Equal(response.Data.Amount))
	suite.Assert().Equal("correction", response.Data.Memo)

	// Untouched fields stay as they are
	suite.Assert().Equal("cafe", response.Data.Description)
}

func (suite *TestSuiteStandard) TestUpdateExpenseDate() {
	expense := suite.createTestExpense("Nayoon", "cafe", 10, time.Now())

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/expenses/%d", expense.ID), map[string]any{
		"date": "2024-02-15",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	expected := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	suite.Assert().True(expected.Equal(response.Data.CreatedAt), "expected %s, got %s", expected, response.Data.CreatedAt)
}

func (suite *TestSuiteStandard) TestUpdateExpenseRejected() {
	expense := suite.createTestExpense("Nayoon", "cafe", 10, time.Now())

	tests := []struct {
		name string
		body any
	}{
		{"zero amount", map[string]any{"amount": 0}},
		{"empty description", map[string]any{"description": ""}},
		{"invalid date", map[string]any{"date": "soon"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPatch, fmt.Sprintf("/v1/expenses/%d", expense.ID), tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestUpdateExpenseNotFound() {
	recorder := test.Request(suite.T(), http.MethodPatch, "/v1/expenses/4096", map[string]any{"memo": "nope"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteExpense() {
	expense := suite.createTestExpense("Nayoon", "cafe", 10, time.Now())

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/expenses/%d", expense.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	// Deleting the same expense again is a Not Found, not a crash
	recorder = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/expenses/%d", expense.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestExpenseDBClosed() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/expenses", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
