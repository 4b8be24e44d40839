package httpapi

import (
	"time"

	"github.com/moodframe/moodframe/internal/server/models"
	"github.com/moodframe/moodframe/internal/server/validation"
)

type registerRequest struct {
	FirstName           string `json:"first_name"`
	LastName            string `json:"last_name"`
	Email               string `json:"email"`
	Password            string `json:"password"`
	TermsAcceptedAt     string `json:"terms_accepted_at"`
	TermsAcceptedDevice string `json:"terms_accepted_device"`
}

func (r *registerRequest) validate() error {
	return validation.Evaluate([]validation.Rule{
		{Field: "first_name", Value: r.FirstName, Check: validation.NonEmpty, Message: "First Name Required"},
		{Field: "last_name", Value: r.LastName, Check: validation.NonEmpty, Message: "Last Name Required"},
		{Field: "email", Value: r.Email, Check: validation.EmailFormat, Message: "Invalid email address"},
		{Field: "password", Value: r.Password, Check: validation.MinLength(8), Message: "Password Must Have a Minimum of 8 Characters"},
		{Field: "terms_accepted_at", Value: r.TermsAcceptedAt, Check: validation.RFC3339, Message: "Terms Accepted At Required"},
		{Field: "terms_accepted_device", Value: r.TermsAcceptedDevice, Check: validation.NonEmpty, Message: "Device info is required"},
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *loginRequest) validate() error {
	return validation.Evaluate([]validation.Rule{
		{Field: "email", Value: r.Email, Check: validation.EmailFormat, Message: "Invalid Email Address"},
		{Field: "password", Value: r.Password, Check: validation.NonEmpty, Message: "Password is Required"},
	})
}

type moodRequest struct {
	Mood string `json:"mood"`
}

func (r *moodRequest) validate() error {
	return validation.Evaluate([]validation.Rule{
		{Field: "mood", Value: r.Mood, Check: validation.OneOf("energized", "neutral", "tired"), Message: "Mood must be one of energized, neutral, tired"},
	})
}

type settingsRequest struct {
	Username *string `json:"username"`
	Theme    string  `json:"theme"`
}

func (r *settingsRequest) validate() error {
	rules := []validation.Rule{
		{Field: "theme", Value: r.Theme, Check: validation.OneOf("light", "dark", "system"), Message: "Theme must be one of light, dark, system"},
	}
	if r.Username != nil {
		rules = append(rules, validation.Rule{Field: "username", Value: *r.Username, Check: validation.NonEmpty, Message: "Username must not be empty"})
	}
	return validation.Evaluate(rules)
}

type taskRequest struct {
	Name     string `json:"name"`
	Due      string `json:"due"`
	Priority string `json:"priority"`
	Mood     string `json:"mood"`
	Image    string `json:"image"`
}

func (r *taskRequest) validate() error {
	return validation.Evaluate([]validation.Rule{
		{Field: "name", Value: r.Name, Check: validation.NonEmpty, Message: "Task Name Required"},
		{Field: "due", Value: r.Due, Check: validation.RFC3339, Message: "Due Date Required"},
		{Field: "priority", Value: r.Priority, Check: validation.OneOf("high", "medium", "low"), Message: "Priority must be one of high, medium, low"},
		{Field: "mood", Value: r.Mood, Check: validation.OneOf("energized", "neutral", "tired"), Message: "Mood must be one of energized, neutral, tired"},
		{Field: "image", Value: r.Image, Check: validation.OneOf(models.TaskImages...), Message: "Image must be one of the available task avatars"},
	})
}

// accountView is the public projection of an account. The password hash and
// rate-limit bookkeeping never leave the server.
type accountView struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	Username   *string `json:"username"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Credits    int64   `json:"credits"`
	IsVerified bool    `json:"is_verified"`
	Mood       string  `json:"mood"`
	Theme      string  `json:"theme"`
	CreatedAt  string  `json:"created_at"`
}

func newAccountView(a *models.Account) accountView {
	return accountView{
		ID:         a.ID,
		Email:      a.Email,
		Username:   a.Username,
		FirstName:  a.FirstName,
		LastName:   a.LastName,
		Credits:    a.Credits,
		IsVerified: a.IsVerified,
		Mood:       string(a.Mood),
		Theme:      string(a.Theme),
		CreatedAt:  a.CreatedAt.UTC().Format(time.RFC3339),
	}
}

type taskView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Due       string `json:"due"`
	Priority  string `json:"priority"`
	Mood      string `json:"mood"`
	Image     string `json:"image"`
	CreatedAt string `json:"created_at"`
}

func newTaskView(t *models.Task) taskView {
	return taskView{
		ID:        t.ID,
		Name:      t.Name,
		Due:       t.Due.UTC().Format(time.RFC3339),
		Priority:  string(t.Priority),
		Mood:      string(t.Mood),
		Image:     t.Image,
		CreatedAt: t.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func newTaskViews(tasks []*models.Task) []taskView {
	views := make([]taskView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, newTaskView(t))
	}
	return views
}
