package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shopmate/internal/catalog"
)

type OffersHandler struct{}

func (h *OffersHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"offers": catalog.OffersByCategory(c.Query("category"))})
}
