// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bumpr/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProfileHandler    *handler.ProfileHandler
	HandshakeHandler  *handler.HandshakeHandler
	MomentHandler     *handler.MomentHandler
	ReputationHandler *handler.ReputationHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	profileHandler    *handler.ProfileHandler
	handshakeHandler  *handler.HandshakeHandler
	momentHandler     *handler.MomentHandler
	reputationHandler *handler.ReputationHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		profileHandler:    params.ProfileHandler,
		handshakeHandler:  params.HandshakeHandler,
		momentHandler:     params.MomentHandler,
		reputationHandler: params.ReputationHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Profiles and discovery. Static segments are registered before :userId.
	usersGroup := api.Group("/users")
	{
		usersGroup.POST("", r.profileHandler.CreateProfile)
		usersGroup.GET("/nearby", r.profileHandler.FindNearby)
		usersGroup.GET("/:userId", r.profileHandler.GetProfile)
		usersGroup.PATCH("/:userId", r.profileHandler.UpdateProfile)
		usersGroup.PUT("/:userId/status", r.profileHandler.UpdateStatus)
		usersGroup.PUT("/:userId/location", r.profileHandler.UpdateLocation)
		usersGroup.GET("/:userId/moments", r.momentHandler.ListByUser)
		usersGroup.GET("/:userId/qr", r.profileHandler.GenerateHandshakeQR)
	}

	handshakesGroup := api.Group("/handshakes")
	{
		handshakesGroup.POST("", r.handshakeHandler.Send)
		handshakesGroup.POST("/qr", r.handshakeHandler.SendFromQR)
		handshakesGroup.POST("/:id/respond", r.handshakeHandler.Respond)
		handshakesGroup.GET("/pending/:userId", r.handshakeHandler.ListPending)
		handshakesGroup.GET("/sent/:userId", r.handshakeHandler.ListSent)
		handshakesGroup.GET("/accepted/:userId", r.handshakeHandler.ListAccepted)
	}

	momentsGroup := api.Group("/moments")
	{
		momentsGroup.POST("", r.momentHandler.Create)
		momentsGroup.GET("/nearby", r.momentHandler.FindNearby)
		momentsGroup.GET("/:id", r.momentHandler.Get)
		momentsGroup.POST("/:id/view", r.momentHandler.RecordView)
	}

	reputationGroup := api.Group("/reputation")
	{
		reputationGroup.POST("/preview", r.reputationHandler.PreviewScore)
		reputationGroup.GET("/:userId", r.reputationHandler.GetSummary)
	}
}
