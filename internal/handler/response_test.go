package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"taxihail/internal/repository"
	"taxihail/internal/service"
)

func TestMapErrorToHTTPStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", repository.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("ride abc: %w", repository.ErrNotFound), http.StatusNotFound},
		{"invalid passenger id", service.ErrInvalidPassengerID, http.StatusBadRequest},
		{"invalid driver id", service.ErrInvalidDriverID, http.StatusBadRequest},
		{"invalid ride id", service.ErrInvalidRideID, http.StatusBadRequest},
		{"invalid name", service.ErrInvalidName, http.StatusBadRequest},
		{"ride not pending", service.ErrRideNotPending, http.StatusBadRequest},
		{"ride not accepted", service.ErrRideNotAccepted, http.StatusBadRequest},
		{"wrapped ride not accepted", fmt.Errorf("ride abc is completed: %w", service.ErrRideNotAccepted), http.StatusBadRequest},
		{"driver mismatch", service.ErrDriverMismatch, http.StatusBadRequest},
		{"driver unavailable", service.ErrDriverUnavailable, http.StatusBadRequest},
		{"unknown error", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapErrorToHTTPStatus(tt.err); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}
