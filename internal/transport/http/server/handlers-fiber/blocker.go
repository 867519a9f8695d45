package handlers_fiber

import (
	"net/http"

	"github.com/GEK100/blocker-management-system-2024-sub001/internal/entities"
	"github.com/GEK100/blocker-management-system-2024-sub001/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostBlocker records a new blocker.
func (h *Handler) PostBlocker(c *fiber.Ctx) error {
	var body mapper.CreateBlockerRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(newErrorResponse(codeInvalidArgument, "invalid body"))
	}

	created, err := h.uc.ReportBlocker(c.Context(), mapper.FromCreateRequest(body))
	if err != nil {
		h.log.Errorw("failed to report blocker", "error", err.Error())
		return writeError(c, err)
	}

	resp := struct {
		Blocker mapper.BlockerDTO `json:"blocker"`
	}{Blocker: mapper.ToBlockerDTO(*created)}
	return c.Status(http.StatusCreated).JSON(resp)
}

// PostBlockerStatus transitions a blocker to a new lifecycle status.
func (h *Handler) PostBlockerStatus(c *fiber.Ctx) error {
	var body mapper.UpdateStatusRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(newErrorResponse(codeInvalidArgument, "invalid body"))
	}

	updated, err := h.uc.AdvanceBlocker(c.Context(), c.Params("blockerId"), entities.BlockerStatus(body.Status))
	if err != nil {
		h.log.Errorw("failed to advance blocker", "error", err.Error())
		return writeError(c, err)
	}

	resp := struct {
		Blocker mapper.BlockerDTO `json:"blocker"`
	}{Blocker: mapper.ToBlockerDTO(*updated)}
	return c.Status(http.StatusOK).JSON(resp)
}
