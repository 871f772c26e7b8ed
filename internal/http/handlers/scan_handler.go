package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shopmate/internal/catalog"
	applog "shopmate/internal/log"
	"shopmate/internal/validate"
)

// ScanHandler backs the barcode scan simulator with the static catalog.
type ScanHandler struct {
	Catalog *catalog.Catalog
}

func (h *ScanHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"products": h.Catalog.List()})
}

func (h *ScanHandler) Lookup(c *fiber.Ctx) error {
	code, ok := validate.Barcode(c.Params("barcode"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "barcode"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid barcode"})
	}
	p, found := h.Catalog.ByBarcode(code)
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown barcode"})
	}
	return c.JSON(p)
}
