package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taxihail/internal/service"
)

// PassengerHandler handles HTTP requests for passengers.
type PassengerHandler struct {
	registrationService *service.RegistrationService
}

// NewPassengerHandler creates a new PassengerHandler.
func NewPassengerHandler(registrationService *service.RegistrationService) *PassengerHandler {
	return &PassengerHandler{registrationService: registrationService}
}

// RegisterPassengerRequest is the HTTP request body for passenger registration.
type RegisterPassengerRequest struct {
	Name string `json:"name"`
}

// PassengerResponse is the HTTP response for passenger data.
type PassengerResponse struct {
	ID   string `json:"passenger_id"`
	Name string `json:"name"`
}

// Register handles POST /v1/passengers/register
func (h *PassengerHandler) Register(c *gin.Context) {
	var req RegisterPassengerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	passenger, err := h.registrationService.RegisterPassenger(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, PassengerResponse{
		ID:   passenger.ID,
		Name: passenger.Name,
	})
}

// GetAll handles GET /v1/passengers
func (h *PassengerHandler) GetAll(c *gin.Context) {
	passengers, err := h.registrationService.ListPassengers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]PassengerResponse, 0, len(passengers))
	for _, p := range passengers {
		response = append(response, PassengerResponse{
			ID:   p.ID,
			Name: p.Name,
		})
	}

	c.JSON(http.StatusOK, response)
}
