package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taxihail/internal/service"
)

// DriverHandler handles HTTP requests for drivers.
type DriverHandler struct {
	dispatchService     *service.DispatchService
	registrationService *service.RegistrationService
}

// NewDriverHandler creates a new DriverHandler.
func NewDriverHandler(dispatchService *service.DispatchService, registrationService *service.RegistrationService) *DriverHandler {
	return &DriverHandler{
		dispatchService:     dispatchService,
		registrationService: registrationService,
	}
}

// RegisterDriverRequest is the HTTP request body for driver registration.
type RegisterDriverRequest struct {
	Name string `json:"name"`
}

// DriverResponse is the HTTP response for driver data.
type DriverResponse struct {
	ID        string `json:"driver_id"`
	Name      string `json:"name"`
	Available bool   `json:"available"`
}

// RideActionRequest is the HTTP request body for accepting or
// completing a ride.
type RideActionRequest struct {
	RideID string `json:"ride_id"`
}

// RideActionResponse is the HTTP response for a ride state transition.
type RideActionResponse struct {
	RideID   string `json:"ride_id"`
	DriverID string `json:"driver_id"`
	Status   string `json:"status"`
}

// Register handles POST /v1/drivers/register
func (h *DriverHandler) Register(c *gin.Context) {
	var req RegisterDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	driver, err := h.registrationService.RegisterDriver(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, DriverResponse{
		ID:        driver.ID,
		Name:      driver.Name,
		Available: driver.Available,
	})
}

// GetAll handles GET /v1/drivers
func (h *DriverHandler) GetAll(c *gin.Context) {
	drivers, err := h.registrationService.ListDrivers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]DriverResponse, 0, len(drivers))
	for _, d := range drivers {
		response = append(response, DriverResponse{
			ID:        d.ID,
			Name:      d.Name,
			Available: d.Available,
		})
	}

	c.JSON(http.StatusOK, response)
}

// AcceptRide handles POST /v1/drivers/:id/accept
func (h *DriverHandler) AcceptRide(c *gin.Context) {
	driverID := c.Param("id")

	var req RideActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	ride, err := h.dispatchService.Accept(c.Request.Context(), service.AcceptRequest{
		RideID:   req.RideID,
		DriverID: driverID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, RideActionResponse{
		RideID:   ride.ID,
		DriverID: ride.DriverID,
		Status:   string(ride.Status),
	})
}

// CompleteRide handles POST /v1/drivers/:id/complete
func (h *DriverHandler) CompleteRide(c *gin.Context) {
	driverID := c.Param("id")

	var req RideActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	ride, err := h.dispatchService.Complete(c.Request.Context(), service.CompleteRequest{
		RideID:   req.RideID,
		DriverID: driverID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, RideActionResponse{
		RideID:   ride.ID,
		DriverID: ride.DriverID,
		Status:   string(ride.Status),
	})
}
