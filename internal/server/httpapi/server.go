// Package httpapi exposes the moodframe backend over HTTP. Handlers are thin:
// they decode and validate input, call a service, and translate the outcome
// into the response envelope and cookie side effects the clients expect.
package httpapi

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/moodframe/moodframe/internal/logging"
	"github.com/moodframe/moodframe/internal/server/models"
	"github.com/moodframe/moodframe/internal/server/services"
)

// AuthProvider is the authentication surface the handlers call into.
type AuthProvider interface {
	Register(ctx context.Context, input services.RegisterInput) (*models.Account, *services.TokenPair, error)
	Login(ctx context.Context, email, password string) (*services.TokenPair, error)
	Logout(ctx context.Context) error
	Refresh(ctx context.Context, refreshToken string) (string, error)
	RequestEmailVerification(ctx context.Context, accountID string) error
	VerifyEmail(ctx context.Context, token string) error
}

// UserProvider is the profile/task surface the handlers call into.
type UserProvider interface {
	GetAccount(ctx context.Context, accountID string) (*models.Account, error)
	SetMood(ctx context.Context, accountID string, mood models.Mood) error
	UpdateSettings(ctx context.Context, accountID string, input services.SettingsInput) error
	CreateTask(ctx context.Context, accountID string, input services.TaskInput) (*models.Task, error)
	ListTasks(ctx context.Context, accountID string, mood *models.Mood) ([]*models.Task, error)
	DeleteTask(ctx context.Context, accountID, taskID string) error
}

// Server registers the moodframe routes on a fiber app.
type Server struct {
	auth   AuthProvider
	user   UserProvider
	logger logging.Logger

	jwtSecret     []byte
	accessMaxAge  time.Duration
	refreshMaxAge time.Duration
	secureCookies bool
}

func NewServer(auth AuthProvider, user UserProvider, logger logging.Logger, jwtSecret []byte, accessMaxAge, refreshMaxAge time.Duration, secureCookies bool) *Server {
	return &Server{
		auth:          auth,
		user:          user,
		logger:        logger,
		jwtSecret:     jwtSecret,
		accessMaxAge:  accessMaxAge,
		refreshMaxAge: refreshMaxAge,
		secureCookies: secureCookies,
	}
}

// Register mounts every route under /api/v1.
func (s *Server) Register(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/ping", s.ping)

	authGroup := api.Group("/auth")
	authGroup.Post("/register", s.register)
	authGroup.Post("/login", s.login)
	authGroup.Post("/logout", s.logout)
	authGroup.Post("/refresh-token", s.refreshToken)
	authGroup.Post("/request-verification", s.requireAuth, s.requestVerification)
	authGroup.Get("/verify-email", s.verifyEmail)

	userGroup := api.Group("/user", s.requireAuth)
	userGroup.Get("/", s.getUser)
	userGroup.Post("/mood", s.setMood)
	userGroup.Patch("/settings", s.updateSettings)
	userGroup.Post("/task", s.createTask)
	userGroup.Get("/task", s.listTasks)
	userGroup.Delete("/task/:id", s.deleteTask)
}

func (s *Server) ping(c fiber.Ctx) error {
	return respond(c, fiber.StatusOK, "pong", nil)
}
