package v1

import (
	"errors"
	"net/http"

	"github.com/ckck22/geumjjok-backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"an ID specified in the query string was not a valid number"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Validation errors. All of them reject the request before any store call.
var (
	errAmountNotPositive = errors.New("the amount must be greater than zero")
	errUnknownUser       = errors.New("the user is not one of the configured participants")
	errCategoryMissing   = errors.New("the description must be set")
	errInvalidDate       = errors.New("the date must be in YYYY-MM-DD format")
	errInvalidMonth      = errors.New("the month query parameter must be in YYYY-MM format")
)
