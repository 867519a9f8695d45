package handlers_fiber

import (
	"net/http"

	"github.com/GEK100/blocker-management-system-2024-sub001/internal/entities"

	"github.com/gofiber/fiber/v2"
)

// GetActorPerformance returns the performance profile for one actor.
func (h *Handler) GetActorPerformance(c *fiber.Ctx) error {
	windowDays, err := queryInt(c, "window_days")
	if err != nil {
		return writeError(c, err)
	}

	profile, err := h.uc.ActorPerformance(c.Context(), c.Params("actorId"), windowDays)
	if err != nil {
		h.log.Errorw("failed to get actor performance", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(profile)
}

// GetTeamComparison contrasts a team's metrics with the population.
func (h *Handler) GetTeamComparison(c *fiber.Ctx) error {
	windowDays, err := queryInt(c, "window_days")
	if err != nil {
		return writeError(c, err)
	}

	metrics, err := h.uc.CompareTeam(c.Context(), c.Params("teamId"), windowDays)
	if err != nil {
		h.log.Errorw("failed to compare team", "error", err.Error())
		return writeError(c, err)
	}

	resp := struct {
		TeamID  string                       `json:"team_id"`
		Metrics []entities.ComparativeMetric `json:"metrics"`
	}{TeamID: c.Params("teamId"), Metrics: metrics}
	return c.Status(http.StatusOK).JSON(resp)
}
