package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/ckck22/geumjjok-backend/internal/controllers/v1"
	"github.com/ckck22/geumjjok-backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestOptionsMonth() {
	recorder := test.Request(suite.T(), http.MethodOptions, "/v1/month", "")

	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("GET", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestGetMonth() {
	suite.createTestExpense("Nayoon", "cafe", 250, time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC))
	suite.createTestExpense("Chaerin", "food", 900, time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC))
	suite.createTestExpense("Nayoon", "food", 50, time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC))

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/month?month=2024-03", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Require().Len(response.Data.Progress, 2)

	// Sorted by participant name
	chaerin := response.Data.Progress[0]
	suite.Assert().Equal("Chaerin", chaerin.UserName)
	suite.Assert().True(decimal.NewFromInt(900).Equal(chaerin.Spent), "got %s", chaerin.Spent)
	suite.Assert().True(decimal.NewFromInt(100).Equal(chaerin.Remaining), "got %s", chaerin.Remaining)
	suite.Assert().Equal(int64(90), chaerin.Percentage)

	// The February expense does not count towards March
	nayoon := response.Data.Progress[1]
	suite.Assert().Equal("Nayoon", nayoon.UserName)
	suite.Assert().True(decimal.NewFromInt(250).Equal(nayoon.Spent), "got %s", nayoon.Spent)
	suite.Assert().True(decimal.NewFromInt(550).Equal(nayoon.Remaining), "got %s", nayoon.Remaining)
	suite.Assert().Equal(int64(31), nayoon.Percentage)
}

func (suite *TestSuiteStandard) TestGetMonthDefaultsToCurrent() {
	suite.createTestExpense("Nayoon", "cafe", 42, time.Now().In(time.UTC))

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/month", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Require().Len(response.Data.Progress, 2)

	nayoon := response.Data.Progress[1]
	suite.Assert().True(decimal.NewFromInt(42).Equal(nayoon.Spent), "got %s", nayoon.Spent)
}

func (suite *TestSuiteStandard) TestGetMonthEmpty() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/month?month=2022-01", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	for _, progress := range response.Data.Progress {
		suite.Assert().True(progress.Spent.IsZero())
		suite.Assert().True(progress.Target.Equal(progress.Remaining))
	}
}

func (suite *TestSuiteStandard) TestGetMonthInvalid() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/month?month=март", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetMonthDBClosed() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/month?month=2024-03", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
