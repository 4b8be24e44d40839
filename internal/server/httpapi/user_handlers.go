package httpapi

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/moodframe/moodframe/internal/server/models"
	"github.com/moodframe/moodframe/internal/server/services"
)

func (s *Server) getUser(c fiber.Ctx) error {
	account, err := s.user.GetAccount(c.Context(), accountID(c))
	if err != nil {
		return s.writeError(c, err)
	}

	return respond(c, fiber.StatusOK, "User details fetched successfully", newAccountView(account))
}

func (s *Server) setMood(c fiber.Ctx) error {
	var req moodRequest
	if err := c.Bind().Body(&req); err != nil {
		return respond(c, fiber.StatusBadRequest, "Invalid request body", nil)
	}
	if err := req.validate(); err != nil {
		return s.writeError(c, err)
	}

	if err := s.user.SetMood(c.Context(), accountID(c), models.Mood(req.Mood)); err != nil {
		return s.writeError(c, err)
	}

	return respond(c, fiber.StatusOK, "Mood updated successfully", nil)
}

func (s *Server) updateSettings(c fiber.Ctx) error {
	var req settingsRequest
	if err := c.Bind().Body(&req); err != nil {
		return respond(c, fiber.StatusBadRequest, "Invalid request body", nil)
	}
	if err := req.validate(); err != nil {
		return s.writeError(c, err)
	}

	input := services.SettingsInput{Username: req.Username, Theme: models.Theme(req.Theme)}
	if err := s.user.UpdateSettings(c.Context(), accountID(c), input); err != nil {
		return s.writeError(c, err)
	}

	return respond(c, fiber.StatusOK, "Settings updated successfully", nil)
}

func (s *Server) createTask(c fiber.Ctx) error {
	var req taskRequest
	if err := c.Bind().Body(&req); err != nil {
		return respond(c, fiber.StatusBadRequest, "Invalid request body", nil)
	}
	if err := req.validate(); err != nil {
		return s.writeError(c, err)
	}

	// validate() already guarantees the timestamp parses.
	due, _ := time.Parse(time.RFC3339, req.Due)

	task, err := s.user.CreateTask(c.Context(), accountID(c), services.TaskInput{
		Name:     req.Name,
		Due:      due,
		Priority: models.TaskPriority(req.Priority),
		Mood:     models.Mood(req.Mood),
		Image:    req.Image,
	})
	if err != nil {
		return s.writeError(c, err)
	}

	return respond(c, fiber.StatusCreated, "Task created successfully", newTaskView(task))
}

func (s *Server) listTasks(c fiber.Ctx) error {
	var mood *models.Mood
	if q := c.Query("mood"); q != "" {
		m := models.Mood(q)
		if !m.Valid() {
			return respond(c, fiber.StatusBadRequest, "Mood must be one of energized, neutral, tired", nil)
		}
		mood = &m
	}

	tasks, err := s.user.ListTasks(c.Context(), accountID(c), mood)
	if err != nil {
		return s.writeError(c, err)
	}

	return respond(c, fiber.StatusOK, "Tasks fetched successfully", newTaskViews(tasks))
}

func (s *Server) deleteTask(c fiber.Ctx) error {
	if err := s.user.DeleteTask(c.Context(), accountID(c), c.Params("id")); err != nil {
		return s.writeError(c, err)
	}

	return respond(c, fiber.StatusOK, "Task deleted successfully", nil)
}
