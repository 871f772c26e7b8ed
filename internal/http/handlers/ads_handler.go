package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shopmate/internal/services"
)

type AdsHandler struct {
	Ads *services.AdsService
}

// List never fails: a missing or empty ads directory is an empty carousel.
func (h *AdsHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"images": h.Ads.List()})
}
