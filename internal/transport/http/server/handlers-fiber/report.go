package handlers_fiber

import (
	"net/http"

	"github.com/GEK100/blocker-management-system-2024-sub001/internal/entities"

	"github.com/gofiber/fiber/v2"
)

// GetReport returns the full analytics snapshot for a window.
func (h *Handler) GetReport(c *fiber.Ctx) error {
	windowDays, err := queryInt(c, "window_days")
	if err != nil {
		return writeError(c, err)
	}
	topN, err := queryInt(c, "top_n")
	if err != nil {
		return writeError(c, err)
	}
	longestN, err := queryInt(c, "longest_n")
	if err != nil {
		return writeError(c, err)
	}

	report, err := h.uc.BuildReport(c.Context(), entities.ReportQuery{
		ProjectID:  c.Query("project_id"),
		WindowDays: windowDays,
		TopN:       topN,
		LongestN:   longestN,
		TrendUnit:  c.Query("unit"),
	})
	if err != nil {
		h.log.Errorw("failed to build report", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(report)
}

// GetTrend returns created/resolved counts per bucket.
func (h *Handler) GetTrend(c *fiber.Ctx) error {
	windowDays, err := queryInt(c, "window_days")
	if err != nil {
		return writeError(c, err)
	}

	trend, err := h.uc.Trend(c.Context(), c.Query("project_id"), windowDays, c.Query("unit"))
	if err != nil {
		h.log.Errorw("failed to build trend", "error", err.Error())
		return writeError(c, err)
	}

	resp := struct {
		Trend []entities.TrendBucket `json:"trend"`
	}{Trend: trend}
	return c.Status(http.StatusOK).JSON(resp)
}

// GetWeeklyResponse returns average first-touch response times per week.
func (h *Handler) GetWeeklyResponse(c *fiber.Ctx) error {
	windowDays, err := queryInt(c, "window_days")
	if err != nil {
		return writeError(c, err)
	}

	weeks, err := h.uc.WeeklyResponse(c.Context(), c.Query("project_id"), windowDays)
	if err != nil {
		h.log.Errorw("failed to build weekly response", "error", err.Error())
		return writeError(c, err)
	}

	resp := struct {
		Weeks []entities.WeeklyResponse `json:"weeks"`
	}{Weeks: weeks}
	return c.Status(http.StatusOK).JSON(resp)
}
