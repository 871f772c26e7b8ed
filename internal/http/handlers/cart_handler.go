package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"shopmate/internal/catalog"
	"shopmate/internal/domain"
	applog "shopmate/internal/log"
	"shopmate/internal/session"
	"shopmate/internal/validate"
)

type CartHandler struct {
	Sessions *session.Manager
	Catalog  *catalog.Catalog
}

type addItemRequest struct {
	Barcode  string  `json:"barcode"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	sess := h.Sessions.Get(ensureSID(c))
	return c.JSON(fiber.Map{"items": sess.Cart(), "total": sess.CartTotal()})
}

// Add accepts either a catalog barcode (scan flow, shelf price applies) or
// explicit item fields (manual list entry).
func (h *CartHandler) Add(c *fiber.Ctx) error {
	sess := h.Sessions.Get(ensureSID(c))

	var req addItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad request body"})
	}

	if req.Barcode != "" {
		code, ok := validate.Barcode(req.Barcode)
		if !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "barcode"})
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid barcode"})
		}
		p, found := h.Catalog.ByBarcode(code)
		if !found {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown barcode"})
		}
		sess.AddToCart(p)
		return c.JSON(fiber.Map{"items": sess.Cart(), "total": sess.CartTotal()})
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing name or barcode"})
	}
	category := req.Category
	if category == "" {
		category = "General"
	}
	sess.AddToCart(domain.Product{
		ID:       uuid.NewString(),
		Name:     name,
		Category: category,
		Price:    req.Price,
		Image:    req.Image,
	})
	return c.JSON(fiber.Map{"items": sess.Cart(), "total": sess.CartTotal()})
}

func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	sess := h.Sessions.Get(ensureSID(c))
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad request body"})
	}
	sess.UpdateQuantity(id, req.Quantity)
	return c.JSON(fiber.Map{"items": sess.Cart(), "total": sess.CartTotal()})
}

func (h *CartHandler) ToggleCheck(c *fiber.Ctx) error {
	sess := h.Sessions.Get(ensureSID(c))
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	sess.ToggleCheck(id)
	return c.JSON(fiber.Map{"items": sess.Cart()})
}

func (h *CartHandler) Edit(c *fiber.Ctx) error {
	sess := h.Sessions.Get(ensureSID(c))
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	var req struct {
		Name     *string  `json:"name"`
		Category *string  `json:"category"`
		Price    *float64 `json:"price"`
		Checked  *bool    `json:"checked"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad request body"})
	}
	sess.UpdateItem(id, session.ItemPatch{Name: req.Name, Category: req.Category, Price: req.Price, Checked: req.Checked})
	return c.JSON(fiber.Map{"items": sess.Cart(), "total": sess.CartTotal()})
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	sess := h.Sessions.Get(ensureSID(c))
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	sess.RemoveFromCart(id)
	return c.JSON(fiber.Map{"items": sess.Cart(), "total": sess.CartTotal()})
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	sess := h.Sessions.Get(ensureSID(c))
	sess.ClearCart()
	return c.JSON(fiber.Map{"items": []domain.CartItem{}, "total": 0})
}
