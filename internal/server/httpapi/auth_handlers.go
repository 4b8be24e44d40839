package httpapi

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/moodframe/moodframe/internal/common"
	"github.com/moodframe/moodframe/internal/server/services"
)

func (s *Server) register(c fiber.Ctx) error {
	var req registerRequest
	if err := c.Bind().Body(&req); err != nil {
		return respond(c, fiber.StatusBadRequest, "Invalid request body", nil)
	}
	if err := req.validate(); err != nil {
		return s.writeError(c, err)
	}

	// validate() already guarantees the timestamp parses.
	acceptedAt, _ := time.Parse(time.RFC3339, req.TermsAcceptedAt)

	_, pair, err := s.auth.Register(c.Context(), services.RegisterInput{
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		Email:               req.Email,
		Password:            req.Password,
		TermsAcceptedAt:     acceptedAt,
		TermsAcceptedIP:     c.IP(),
		TermsAcceptedDevice: req.TermsAcceptedDevice,
	})
	if err != nil {
		return s.writeError(c, err)
	}

	s.setTokenCookies(c, pair.AccessToken, pair.RefreshToken)

	return respond(c, fiber.StatusCreated, "User Created Successfully", nil)
}

func (s *Server) login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return respond(c, fiber.StatusBadRequest, "Invalid request body", nil)
	}
	if err := req.validate(); err != nil {
		return s.writeError(c, err)
	}

	pair, err := s.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return s.writeError(c, err)
	}

	s.setTokenCookies(c, pair.AccessToken, pair.RefreshToken)

	return respond(c, fiber.StatusOK, "Login Successful", nil)
}

// logout clears the token cookies. Without an access cookie there is no
// session to end, so the request is rejected rather than treated as a no-op.
func (s *Server) logout(c fiber.Ctx) error {
	if c.Cookies(common.AccessTokenCookieName) == "" {
		return respond(c, fiber.StatusBadRequest, "No active session found", nil)
	}

	if err := s.auth.Logout(c.Context()); err != nil {
		return s.writeError(c, err)
	}

	s.clearTokenCookies(c)

	return respond(c, fiber.StatusOK, "Logout Successful", nil)
}

func (s *Server) refreshToken(c fiber.Ctx) error {
	refresh := c.Cookies(common.RefreshTokenCookieName)
	if refresh == "" {
		return respond(c, fiber.StatusUnauthorized, "No refresh token provided", nil)
	}

	access, err := s.auth.Refresh(c.Context(), refresh)
	if err != nil {
		// A dead refresh token ends the session; make the client log in again.
		s.clearTokenCookies(c)
		return respond(c, fiber.StatusUnauthorized, "Invalid or expired refresh token", nil)
	}

	s.setCookie(c, common.AccessTokenCookieName, access, int(s.accessMaxAge.Seconds()))

	return respond(c, fiber.StatusOK, "New Access Token Generated", nil)
}

func (s *Server) requestVerification(c fiber.Ctx) error {
	if err := s.auth.RequestEmailVerification(c.Context(), accountID(c)); err != nil {
		return s.writeError(c, err)
	}

	return respond(c, fiber.StatusOK, "Verification email sent", nil)
}

func (s *Server) verifyEmail(c fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		return respond(c, fiber.StatusBadRequest, "Verification token required", nil)
	}

	if err := s.auth.VerifyEmail(c.Context(), token); err != nil {
		return s.writeError(c, err)
	}

	return respond(c, fiber.StatusOK, "Email verified successfully", nil)
}
