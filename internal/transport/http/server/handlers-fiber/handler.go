// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/GEK100/blocker-management-system-2024-sub001/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves analytics and blocker endpoints using service layer
// interfaces.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP handler with service dependencies.
func NewHandler(log *zap.SugaredLogger, uc usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  uc,
	}
}

// RegisterRoutes binds all API routes on the fiber app.
func RegisterRoutes(app *fiber.App, h *Handler) {
	v1 := app.Group("/api/v1")
	v1.Get("/report", h.GetReport)
	v1.Get("/report/trend", h.GetTrend)
	v1.Get("/report/response-weeks", h.GetWeeklyResponse)
	v1.Get("/actors/:actorId/performance", h.GetActorPerformance)
	v1.Get("/teams/:teamId/compare", h.GetTeamComparison)
	v1.Post("/blockers", h.PostBlocker)
	v1.Post("/blockers/:blockerId/status", h.PostBlockerStatus)
}
