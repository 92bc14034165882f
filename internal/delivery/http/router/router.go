// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"hokhau/internal/delivery/http/router/handler"
	"hokhau/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HouseholdHandler    *handler.HouseholdHandler
	CitizenHandler      *handler.CitizenHandler
	TransferHandler     *handler.TransferHandler
	RequestIDMiddleware *middleware.RequestIDMiddleware
	Registry            *prometheus.Registry
}

// router holds all the handlers that need to be registered.
type router struct {
	householdHandler    *handler.HouseholdHandler
	citizenHandler      *handler.CitizenHandler
	transferHandler     *handler.TransferHandler
	requestIDMiddleware *middleware.RequestIDMiddleware
	registry            *prometheus.Registry
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		householdHandler:    params.HouseholdHandler,
		citizenHandler:      params.CitizenHandler,
		transferHandler:     params.TransferHandler,
		requestIDMiddleware: params.RequestIDMiddleware,
		registry:            params.Registry,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check and metrics endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})))

	// Household routes
	householdGroup := e.Group("/households")
	{
		householdGroup.POST("", r.householdHandler.CreateHousehold)
		householdGroup.GET("", r.householdHandler.ListHouseholds)
		householdGroup.GET("/overview", r.householdHandler.Overview)
		householdGroup.GET("/:id", r.householdHandler.GetHousehold)
		householdGroup.GET("/:id/members", r.householdHandler.ListMembers)
		householdGroup.POST("/:id/members", r.householdHandler.AddMember)
	}

	// Citizen routes
	citizenGroup := e.Group("/citizens")
	{
		citizenGroup.GET("/:id", r.citizenHandler.GetCitizen)
		citizenGroup.PUT("/:id", r.citizenHandler.UpdateCitizen)
		citizenGroup.DELETE("/:id", r.citizenHandler.DeleteCitizen)
		citizenGroup.POST("/:id/promote", r.citizenHandler.PromoteToHead)
		citizenGroup.POST("/:id/temporary-residence", r.citizenHandler.RegisterTemporaryResidence)
		citizenGroup.DELETE("/:id/temporary-residence", r.citizenHandler.CancelTemporaryResidence)
		citizenGroup.POST("/:id/temporary-absence", r.citizenHandler.RegisterTemporaryAbsence)
		citizenGroup.DELETE("/:id/temporary-absence", r.citizenHandler.CancelTemporaryAbsence)
		citizenGroup.POST("/:id/death", r.citizenHandler.DeclareDeath)
	}

	// Transfer routes
	transferGroup := e.Group("/transfers")
	{
		transferGroup.POST("", r.transferHandler.Transfer)
		transferGroup.POST("/:id/confirm", r.transferHandler.ConfirmTransfer)
	}
}
