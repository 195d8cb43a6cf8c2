package v1_test

import (
	"net/http"

	v1 "github.com/ckck22/geumjjok-backend/internal/controllers/v1"
	"github.com/ckck22/geumjjok-backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestOptionsV1() {
	recorder := test.Request(suite.T(), http.MethodOptions, "/v1", "")

	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("GET", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestGetV1() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal("/v1/expenses", response.Links.Expenses)
	suite.Assert().Equal("/v1/month", response.Links.Month)
	suite.Assert().Equal("/v1/statistics", response.Links.Statistics)
	suite.Assert().Equal("/v1/users", response.Links.Users)
	suite.Assert().Equal("/v1/categories", response.Links.Categories)
}

func (suite *TestSuiteStandard) TestGetV1NilBody() {
	// Requests without a body may pass nil instead of an empty string
	recorder := test.Request(suite.T(), http.MethodGet, "/v1", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
}

func (suite *TestSuiteStandard) TestOptionsUsers() {
	recorder := test.Request(suite.T(), http.MethodOptions, "/v1/users", "")

	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("GET", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestGetUsers() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/users", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.UserListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("Chaerin", response.Data[0].UserName)
	suite.Assert().True(decimal.NewFromInt(1000).Equal(response.Data[0].MonthlyTarget), "got %s", response.Data[0].MonthlyTarget)
	suite.Assert().Equal("Nayoon", response.Data[1].UserName)
	suite.Assert().True(decimal.NewFromInt(800).Equal(response.Data[1].MonthlyTarget), "got %s", response.Data[1].MonthlyTarget)
}

func (suite *TestSuiteStandard) TestOptionsCategories() {
	recorder := test.Request(suite.T(), http.MethodOptions, "/v1/categories", "")

	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("GET", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestGetCategories() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal([]string{"food", "cafe", "transport", "other"}, response.Data)
}
