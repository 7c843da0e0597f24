package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"taxihail/internal/handler"
	"taxihail/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	PassengerHandler *handler.PassengerHandler
	DriverHandler    *handler.DriverHandler
	RideHandler      *handler.RideHandler
	RedisClient      *redis.Client
	NewRelicApp      *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.Use(middleware.IdempotencyMiddleware(deps.RedisClient))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Prometheus exposition.
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Passenger routes.
		passengers := v1.Group("/passengers")
		{
			passengers.POST("/register", deps.PassengerHandler.Register)
			passengers.GET("", deps.PassengerHandler.GetAll)
		}

		// Ride routes.
		rides := v1.Group("/rides")
		{
			rides.POST("", deps.RideHandler.RequestRide)
			rides.GET("/pending", deps.RideHandler.ListPending)
			rides.GET("/:id", deps.RideHandler.GetRide)
		}

		// Driver routes.
		drivers := v1.Group("/drivers")
		{
			drivers.POST("/register", deps.DriverHandler.Register)
			drivers.GET("", deps.DriverHandler.GetAll)
			drivers.POST("/:id/accept", deps.DriverHandler.AcceptRide)
			drivers.POST("/:id/complete", deps.DriverHandler.CompleteRide)
		}
	}

	return router
}
