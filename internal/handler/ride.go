package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taxihail/internal/domain"
	"taxihail/internal/service"
)

const timestampLayout = "2006-01-02T15:04:05Z07:00"

// RideHandler handles HTTP requests for rides.
type RideHandler struct {
	rideService *service.RideService
}

// NewRideHandler creates a new RideHandler.
func NewRideHandler(rideService *service.RideService) *RideHandler {
	return &RideHandler{rideService: rideService}
}

// RequestRideRequest is the HTTP request body for requesting a ride.
type RequestRideRequest struct {
	PassengerID string `json:"passenger_id"`
}

// RideResponse is the HTTP response for a ride record.
type RideResponse struct {
	ID          string `json:"ride_id"`
	PassengerID string `json:"passenger_id"`
	DriverID    string `json:"driver_id,omitempty"`
	Status      string `json:"status"`
	RequestedAt string `json:"requested_at"`
	AcceptedAt  string `json:"accepted_at,omitempty"`
	CompletedAt string `json:"completed_at,omitempty"`
}

func rideResponse(ride *domain.Ride) RideResponse {
	response := RideResponse{
		ID:          ride.ID,
		PassengerID: ride.PassengerID,
		DriverID:    ride.DriverID,
		Status:      string(ride.Status),
		RequestedAt: ride.RequestedAt.Format(timestampLayout),
	}
	if !ride.AcceptedAt.IsZero() {
		response.AcceptedAt = ride.AcceptedAt.Format(timestampLayout)
	}
	if !ride.CompletedAt.IsZero() {
		response.CompletedAt = ride.CompletedAt.Format(timestampLayout)
	}
	return response
}

// RequestRide handles POST /v1/rides
func (h *RideHandler) RequestRide(c *gin.Context) {
	var req RequestRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	ride, err := h.rideService.RequestRide(c.Request.Context(), service.RequestRideRequest{
		PassengerID: req.PassengerID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, rideResponse(ride))
}

// GetRide handles GET /v1/rides/:id
func (h *RideHandler) GetRide(c *gin.Context) {
	rideID := c.Param("id")

	ride, err := h.rideService.GetRideStatus(c.Request.Context(), rideID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, rideResponse(ride))
}

// ListPending handles GET /v1/rides/pending
func (h *RideHandler) ListPending(c *gin.Context) {
	rides, err := h.rideService.ListPendingRides(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]RideResponse, 0, len(rides))
	for _, r := range rides {
		response = append(response, rideResponse(r))
	}

	c.JSON(http.StatusOK, response)
}
