package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	applog "shopmate/internal/log"
)

// Always-allowed path prefixes: the survey flow itself, static assets, the
// API surface, ad imagery and the two logos.
var publicPrefixes = []string{
	"/survey",
	"/static",
	"/api",
	"/ads",
	"/favicon.ico",
	"/ShopMate_logo",
	"/fathallah_logo",
}

// SurveyGate is the soft UX gate in front of every non-public route: without
// an admin marker or a completed survey, the kiosk sends the customer to the
// survey first. It is deliberately not a security boundary.
func SurveyGate(adminSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := c.Path()
		for _, prefix := range publicPrefixes {
			if strings.HasPrefix(p, prefix) {
				return c.Next()
			}
		}

		// ?reset=survey wipes both markers and restarts the flow.
		if c.Query("reset") == "survey" {
			c.ClearCookie("admin_access", "survey_completed")
			applog.Audit(c, "gate.reset", nil)
			return c.Redirect("/survey")
		}

		// ?admin=<secret> grants the admin marker and clears the completion
		// marker so the full clean app is visible; redirect drops the query.
		// A wrong secret is logged and falls through to the marker check.
		if admin := c.Query("admin"); admin != "" {
			if admin == adminSecret {
				c.Cookie(&fiber.Cookie{
					Name:     "admin_access",
					Value:    "true",
					Path:     "/",
					MaxAge:   int((30 * 24 * time.Hour).Seconds()),
					SameSite: fiber.CookieSameSiteLaxMode,
					// Not HTTPOnly: the kiosk front-end reads it.
				})
				c.ClearCookie("survey_completed")
				applog.Audit(c, "gate.admin.granted", nil)
				return c.Redirect(p)
			}
			applog.Security(c, "gate.admin.bad_secret", nil)
		}

		if c.Cookies("admin_access") == "true" || c.Cookies("survey_completed") == "true" {
			return c.Next()
		}
		return c.Redirect("/survey")
	}
}
