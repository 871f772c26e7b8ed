package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"shopmate/internal/domain"
	applog "shopmate/internal/log"
	"shopmate/internal/services"
)

type SurveyHandler struct {
	Survey *services.SurveyService
}

// Submit stores one response and marks the survey completed for this browser.
func (h *SurveyHandler) Submit(c *fiber.Ctx) error {
	var resp domain.SurveyResponse
	if err := c.BodyParser(&resp); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad request body"})
	}
	if err := h.Survey.Submit(resp); err != nil {
		if errors.Is(err, services.ErrBadAnswer) {
			applog.Security(c, "validation.fail", map[string]any{"field": "survey"})
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid answers"})
		}
		applog.Error(c, "survey.insert.failed", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save response"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     "survey_completed",
		Value:    "true",
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: fiber.CookieSameSiteLaxMode,
		// Not HTTPOnly: the kiosk front-end reads it.
	})
	applog.Audit(c, "survey.submitted", nil)
	return c.JSON(fiber.Map{"success": true})
}

// List returns every response, newest first.
func (h *SurveyHandler) List(c *fiber.Ctx) error {
	rows, err := h.Survey.List()
	if err != nil {
		applog.Error(c, "survey.list.failed", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch responses"})
	}
	return c.JSON(fiber.Map{"responses": rows})
}
