// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"atlas/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PointHandler   *handler.PointHandler
	PolygonHandler *handler.PolygonHandler
	SummaryHandler *handler.SummaryHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	pointHandler   *handler.PointHandler
	polygonHandler *handler.PolygonHandler
	summaryHandler *handler.SummaryHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		pointHandler:   params.PointHandler,
		polygonHandler: params.PolygonHandler,
		summaryHandler: params.SummaryHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	pointGroup := api.Group("/points")
	{
		// Query routes precede the :id routes so echo never captures
		// "nearby" or "bulk" as an ID.
		pointGroup.GET("/nearby", r.pointHandler.FindNearbyPoints)
		pointGroup.POST("/bulk", r.pointHandler.BulkCreatePoints)

		pointGroup.GET("", r.pointHandler.ListPoints)
		pointGroup.POST("", r.pointHandler.CreatePoint)
		pointGroup.GET("/:id", r.pointHandler.GetPoint)
		pointGroup.PUT("/:id", r.pointHandler.UpdatePoint)
		pointGroup.PATCH("/:id", r.pointHandler.PatchPoint)
		pointGroup.DELETE("/:id", r.pointHandler.DeletePoint)
	}

	polygonGroup := api.Group("/polygons")
	{
		polygonGroup.GET("/containing-point", r.polygonHandler.FindPolygonsContainingPoint)
		polygonGroup.POST("/bulk", r.polygonHandler.BulkCreatePolygons)

		polygonGroup.GET("", r.polygonHandler.ListPolygons)
		polygonGroup.POST("", r.polygonHandler.CreatePolygon)
		polygonGroup.GET("/:id", r.polygonHandler.GetPolygon)
		polygonGroup.PUT("/:id", r.polygonHandler.UpdatePolygon)
		polygonGroup.PATCH("/:id", r.polygonHandler.PatchPolygon)
		polygonGroup.DELETE("/:id", r.polygonHandler.DeletePolygon)
		polygonGroup.GET("/:id/intersecting", r.polygonHandler.FindIntersectingPolygons)
	}

	api.GET("/summary", r.summaryHandler.GetSummary)
}
