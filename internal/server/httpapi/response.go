package httpapi

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/moodframe/moodframe/internal/common"
)

// envelope is the JSON body of every response. StatusCode always mirrors
// the HTTP status so browser clients can inspect it without reaching for
// the transport layer.
type envelope struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
	Data       any    `json:"data,omitempty"`
	Errors     any    `json:"errors,omitempty"`
}

func respond(c fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(envelope{StatusCode: status, Message: message, Data: data})
}

func respondErrors(c fiber.Ctx, status int, message string, errs any) error {
	return c.Status(status).JSON(envelope{StatusCode: status, Message: message, Errors: errs})
}

func (s *Server) setCookie(c fiber.Ctx, name, value string, maxAgeSeconds int) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		MaxAge:   maxAgeSeconds,
		HTTPOnly: true,
		Secure:   s.secureCookies,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

func (s *Server) setTokenCookies(c fiber.Ctx, accessToken, refreshToken string) {
	s.setCookie(c, common.AccessTokenCookieName, accessToken, int(s.accessMaxAge.Seconds()))
	s.setCookie(c, common.RefreshTokenCookieName, refreshToken, int(s.refreshMaxAge.Seconds()))
}

func (s *Server) clearCookie(c fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Expires:  time.Unix(0, 0).UTC(),
		HTTPOnly: true,
		Secure:   s.secureCookies,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

func (s *Server) clearTokenCookies(c fiber.Ctx) {
	s.clearCookie(c, common.AccessTokenCookieName)
	s.clearCookie(c, common.RefreshTokenCookieName)
}
