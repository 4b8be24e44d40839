package httpapi

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"github.com/moodframe/moodframe/internal/common"
)

// writeError maps a service error onto the HTTP status and envelope the
// clients expect. Unknown errors become an opaque 500; the detail goes to
// the log, never to the wire.
func (s *Server) writeError(c fiber.Ctx, err error) error {
	var weak *common.WeakPasswordError
	if errors.As(err, &weak) {
		return respondErrors(c, fiber.StatusBadRequest, "Password does not meet requirements", weak.Missing)
	}

	var validation *common.ValidationError
	if errors.As(err, &validation) {
		return respondErrors(c, fiber.StatusBadRequest, "Validation failed", validation.Violations)
	}

	var limited *common.RateLimitError
	if errors.As(err, &limited) {
		unit := "minute"
		if limited.RetryAfterMinutes > 1 {
			unit = "minutes"
		}
		msg := fmt.Sprintf("Too many verification requests. Please try again in %d %s", limited.RetryAfterMinutes, unit)
		return respond(c, fiber.StatusTooManyRequests, msg, nil)
	}

	var invalid *common.InvalidInputError
	if errors.As(err, &invalid) {
		return respond(c, fiber.StatusBadRequest, invalid.Message, nil)
	}

	switch {
	case errors.Is(err, common.ErrInvalidInput):
		return respond(c, fiber.StatusBadRequest, "Invalid input", nil)
	case errors.Is(err, common.ErrInvalidCredentials):
		return respond(c, fiber.StatusUnauthorized, "Invalid credentials", nil)
	case errors.Is(err, common.ErrTokenExpired):
		return respond(c, fiber.StatusUnauthorized, "Token expired", nil)
	case errors.Is(err, common.ErrTokenInvalid):
		return respond(c, fiber.StatusUnauthorized, "Invalid token", nil)
	case errors.Is(err, common.ErrNotFound):
		return respond(c, fiber.StatusNotFound, "Resource not found", nil)
	case errors.Is(err, common.ErrConflict):
		return respond(c, fiber.StatusConflict, "Conflict with existing resource", nil)
	case errors.Is(err, common.ErrDependency):
		s.logger.Error(c.Context(), "upstream dependency failed", "error", err)
		return respond(c, fiber.StatusBadGateway, "Upstream service unavailable", nil)
	default:
		s.logger.Error(c.Context(), "request failed", "error", err)
		return respond(c, fiber.StatusInternalServerError, "Internal server error", nil)
	}
}
