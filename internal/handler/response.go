package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taxihail/internal/repository"
	"taxihail/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrInvalidPassengerID),
		errors.Is(err, service.ErrInvalidDriverID),
		errors.Is(err, service.ErrInvalidRideID),
		errors.Is(err, service.ErrInvalidName):
		return http.StatusBadRequest

	// State conflicts - Bad Request
	case errors.Is(err, service.ErrRideNotPending),
		errors.Is(err, service.ErrRideNotAccepted),
		errors.Is(err, service.ErrDriverMismatch),
		errors.Is(err, service.ErrDriverUnavailable):
		return http.StatusBadRequest

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
