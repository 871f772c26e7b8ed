package main

import (
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"shopmate/internal/assistant"
	"shopmate/internal/catalog"
	"shopmate/internal/config"
	"shopmate/internal/http/handlers"
	applog "shopmate/internal/log"
	"shopmate/internal/repos"
	"shopmate/internal/services"
	"shopmate/internal/session"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	cat, err := catalog.Load(cfg.Catalog)
	if err != nil {
		log.Fatal(err)
	}

	// Completion failover + per-kiosk-session state
	orc := assistant.New(cfg.APIKeys(), cfg.Models, assistant.NewGeminiFactory())
	ads := services.NewAdsService(cfg.AdsDir)
	sessions := session.NewManager(ads, cfg.IdleTimeout, cfg.AdRotateEvery, cfg.SessionMaxIdle)
	go func() {
		for range time.Tick(15 * time.Minute) {
			if n := sessions.Sweep(); n > 0 {
				log.Printf("[sessions] swept %d stale sessions", n)
			}
		}
	}()

	// Templates & app
	engine := html.New(cfg.Template, ".html")
	engine.Reload(true)

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			// Avoid leaking internals; best-effort render
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Something went wrong. Please try again.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
			}
			return nil
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			p := string(c.Request().URI().Path())
			return strings.HasPrefix(p, "/static/") || strings.HasPrefix(p, "/ads/")
		},
	}))
	app.Use(handlers.SurveyGate(cfg.AdminSecret))

	// ---------- Static assets ----------
	app.Static("/static", "./web/static")
	app.Static("/ads", cfg.AdsDir)

	// ---------- App handlers ----------
	deps := handlers.NewDeps(db, cfg, sessions, orc, cat)

	// Pages
	app.Get("/", deps.PageHandler.Home)
	app.Get("/chat", deps.PageHandler.Chat)
	app.Get("/list", deps.PageHandler.List)
	app.Get("/scan", deps.PageHandler.Scan)
	app.Get("/offers", deps.PageHandler.Offers)
	app.Get("/kids", deps.PageHandler.Kids)
	app.Get("/survey", deps.PageHandler.Survey)

	// API
	api := app.Group("/api")
	api.Post("/chat", limiter.New(limiter.Config{Max: 20, Expiration: time.Minute, LimitReached: func(c *fiber.Ctx) error {
		applog.Security(c, "rate.chat.hit", nil)
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
	}}), deps.ChatHandler.Send)
	api.Get("/chat", deps.ChatHandler.History)
	api.Get("/ads", deps.AdsHandler.List)
	api.Get("/offers", deps.OffersHandler.List)
	api.Get("/products", deps.ScanHandler.List)
	api.Get("/products/:barcode", deps.ScanHandler.Lookup)
	api.Post("/survey", deps.SurveyHandler.Submit)
	api.Get("/survey", deps.SurveyHandler.List)

	// Cart
	api.Get("/cart", deps.CartHandler.View)
	api.Post("/cart", deps.CartHandler.Add)
	api.Post("/cart/:id/quantity", deps.CartHandler.UpdateQuantity)
	api.Post("/cart/:id/check", deps.CartHandler.ToggleCheck)
	api.Post("/cart/:id", deps.CartHandler.Edit)
	api.Delete("/cart/:id", deps.CartHandler.Remove)
	api.Delete("/cart", deps.CartHandler.Clear)

	// Idle lifecycle
	api.Get("/idle", deps.IdleHandler.State)
	api.Post("/idle/activity", deps.IdleHandler.Activity)
	api.Post("/idle/tap", deps.IdleHandler.Tap)
	api.Post("/idle/continue", deps.IdleHandler.Continue)
	api.Post("/idle/reset", deps.IdleHandler.Reset)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
