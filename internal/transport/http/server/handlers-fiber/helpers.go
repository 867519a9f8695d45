package handlers_fiber

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/GEK100/blocker-management-system-2024-sub001/internal/entities"

	"github.com/gofiber/fiber/v2"
)

// Transport error codes.
const (
	codeInvalidArgument = "INVALID_ARGUMENT"
	codeNotFound        = "NOT_FOUND"
	codeBlockerExists   = "BLOCKER_EXISTS"
	codeInternal        = "INTERNAL"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func newErrorResponse(code, msg string) errorResponse {
	return errorResponse{Error: errorBody{Code: code, Message: msg}}
}

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := codeInternal
	msg := err.Error()

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = codeInvalidArgument
	case errors.Is(err, entities.ErrBlockerNotFound),
		errors.Is(err, entities.ErrProjectNotFound),
		errors.Is(err, entities.ErrActorNotFound),
		errors.Is(err, entities.ErrTeamNotFound):
		status = http.StatusNotFound
		code = codeNotFound
		msg = "resource not found"
	case errors.Is(err, entities.ErrBlockerExists):
		status = http.StatusConflict
		code = codeBlockerExists
		msg = "blocker id already exists"
	}

	return c.Status(status).JSON(newErrorResponse(code, msg))
}

// queryInt parses an optional non-negative integer query parameter,
// returning 0 when absent so defaults apply downstream.
func queryInt(c *fiber.Ctx, name string) (int, error) {
	v := c.QueryInt(name, 0)
	if v < 0 {
		return 0, fmt.Errorf("%w: %s must not be negative", entities.ErrInvalidArgument, name)
	}
	return v, nil
}
