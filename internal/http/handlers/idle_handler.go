package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "shopmate/internal/log"
	"shopmate/internal/session"
)

// IdleHandler exposes the idle lifecycle to the kiosk front-end: the page
// polls State, reports input events, and resolves the re-engagement prompt.
type IdleHandler struct {
	Sessions *session.Manager
}

func (h *IdleHandler) State(c *fiber.Ctx) error {
	sess := h.Sessions.Get(ensureSID(c))
	return c.JSON(sess.Idle.Snapshot())
}

// Activity records a tracked input event (pointer, touch, key, scroll).
func (h *IdleHandler) Activity(c *fiber.Ctx) error {
	sess := h.Sessions.Get(ensureSID(c))
	sess.Idle.Activity()
	return c.JSON(sess.Idle.Snapshot())
}

// Tap handles a screen touch while the carousel shows.
func (h *IdleHandler) Tap(c *fiber.Ctx) error {
	sess := h.Sessions.Get(ensureSID(c))
	sess.Idle.Tap()
	return c.JSON(sess.Idle.Snapshot())
}

// Continue is the "same customer" decision: session data untouched.
func (h *IdleHandler) Continue(c *fiber.Ctx) error {
	sess := h.Sessions.Get(ensureSID(c))
	sess.Idle.Continue()
	applog.Info(c, "idle.continue", nil)
	return c.JSON(sess.Idle.Snapshot())
}

// Reset is the "new customer" decision: transcript and cart are cleared and
// the kiosk returns to the home view.
func (h *IdleHandler) Reset(c *fiber.Ctx) error {
	sess := h.Sessions.Get(ensureSID(c))
	sess.Reset()
	sess.Idle.Dismiss()
	applog.Audit(c, "idle.reset", nil)
	return c.JSON(fiber.Map{"redirect": "/"})
}
