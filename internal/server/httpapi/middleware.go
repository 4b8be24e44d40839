package httpapi

import (
	"github.com/gofiber/fiber/v3"
	"github.com/moodframe/moodframe/internal/common"
	"github.com/moodframe/moodframe/internal/server/auth"
)

const accountIDKey = "account_id"

// requireAuth validates the access-token cookie and stores the account id
// for downstream handlers.
func (s *Server) requireAuth(c fiber.Ctx) error {
	token := c.Cookies(common.AccessTokenCookieName)
	if token == "" {
		return respond(c, fiber.StatusUnauthorized, "Access token required", nil)
	}

	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return s.writeError(c, err)
	}

	c.Locals(accountIDKey, claims.UserID)

	return c.Next()
}

func accountID(c fiber.Ctx) string {
	id, _ := c.Locals(accountIDKey).(string)
	return id
}
