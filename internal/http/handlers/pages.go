package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shopmate/internal/catalog"
	"shopmate/internal/session"
)

// PageHandler renders the kiosk views. Markup is intentionally minimal; the
// kiosk front-end scripts drive the interactions against /api.
type PageHandler struct {
	Sessions *session.Manager
	Catalog  *catalog.Catalog
}

func (h *PageHandler) Home(c *fiber.Ctx) error {
	return c.Render("home", fiber.Map{"Title": "ShopMate"})
}

func (h *PageHandler) Chat(c *fiber.Ctx) error {
	sess := h.Sessions.Get(ensureSID(c))
	return c.Render("chat", fiber.Map{"Title": "Chat", "Messages": sess.Messages()})
}

func (h *PageHandler) List(c *fiber.Ctx) error {
	sess := h.Sessions.Get(ensureSID(c))
	return c.Render("list", fiber.Map{"Title": "Shopping List", "Items": sess.Cart(), "Total": sess.CartTotal()})
}

func (h *PageHandler) Scan(c *fiber.Ctx) error {
	return c.Render("scan", fiber.Map{"Title": "Scan Item", "Products": h.Catalog.List()})
}

func (h *PageHandler) Offers(c *fiber.Ctx) error {
	category := c.Query("category")
	return c.Render("offers", fiber.Map{
		"Title":    "Special Offers",
		"Category": category,
		"Offers":   catalog.OffersByCategory(category),
	})
}

func (h *PageHandler) Kids(c *fiber.Ctx) error {
	return c.Render("kids", fiber.Map{"Title": "Kids Mode"})
}

func (h *PageHandler) Survey(c *fiber.Ctx) error {
	return c.Render("survey", fiber.Map{"Title": "Survey"})
}
