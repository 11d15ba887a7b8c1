package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"

	"rideshare/internal/handler"
	"rideshare/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	AccountHandler   *handler.AccountHandler
	PassengerHandler *handler.PassengerHandler
	DriverHandler    *handler.DriverHandler
	RideHandler      *handler.RideHandler
	ResponseCache    middleware.ResponseCache // nil disables idempotent replay
	NewRelicApp      *newrelic.Application
	Logger           *zerolog.Logger
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(deps.Logger))

	if deps.ResponseCache != nil {
		router.Use(middleware.Idempotency(deps.ResponseCache, deps.Logger))
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Account routes.
		accounts := v1.Group("/accounts")
		{
			accounts.POST("", deps.AccountHandler.Create)
			accounts.GET("", deps.AccountHandler.GetAll)
		}

		v1.POST("/addresses", deps.AccountHandler.ResolveAddress)

		// Driver routes.
		drivers := v1.Group("/drivers")
		{
			drivers.GET("/:email", deps.DriverHandler.Exists)
			drivers.GET("/:email/rating", deps.DriverHandler.AverageRating)
		}

		// Passenger routes.
		passengers := v1.Group("/passengers")
		{
			passengers.GET("/:email", deps.PassengerHandler.Exists)
			passengers.POST("/:email/favourites", deps.PassengerHandler.AddFavourite)
			passengers.GET("/:email/favourites", deps.PassengerHandler.Favourites)
		}

		// Ride request routes.
		requests := v1.Group("/ride-requests")
		{
			requests.POST("", deps.RideHandler.CreateRequest)
			requests.GET("/uncompleted", deps.RideHandler.Uncompleted)
		}

		// Ride routes.
		v1.POST("/rides", deps.RideHandler.RecordRide)
	}

	return router
}
