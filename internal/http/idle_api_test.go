package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"shopmate/internal/domain"
	"shopmate/internal/http/handlers"
	"shopmate/internal/session"
)

func idleApp() (*fiber.App, *session.Manager) {
	sessions := session.NewManager(nil, time.Hour, time.Hour, time.Hour)
	h := &handlers.IdleHandler{Sessions: sessions}
	app := fiber.New()
	app.Get("/api/idle", h.State)
	app.Post("/api/idle/reset", h.Reset)
	app.Post("/api/idle/continue", h.Continue)
	return app, sessions
}

func TestIdleStateDefaultsActive(t *testing.T) {
	app, _ := idleApp()
	resp, err := app.Test(httptest.NewRequest("GET", "/api/idle", nil))
	if err != nil {
		t.Fatal(err)
	}
	var out session.IdleSnapshot
	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("bad body: %s", raw)
	}
	if out.Idle || out.Prompt {
		t.Fatalf("fresh session must be active, got %+v", out)
	}
}

func TestIdleResetClearsSessionAndRedirectsHome(t *testing.T) {
	app, sessions := idleApp()

	// Seed a session through the same sid cookie the handlers will see.
	sess := sessions.Get("kiosk-1")
	sess.AddToCart(domain.Product{ID: "p1", Name: "Milk"})
	sess.Append(domain.Message{ID: "m1", Text: "hello", Sender: domain.SenderUser})

	req := httptest.NewRequest("POST", "/api/idle/reset", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "kiosk-1"})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	var out struct {
		Redirect string `json:"redirect"`
	}
	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &out); err != nil || out.Redirect != "/" {
		t.Fatalf("want redirect to home, got %s", raw)
	}

	if len(sess.Cart()) != 0 {
		t.Fatal("reset must empty the cart")
	}
	if msgs := sess.Messages(); len(msgs) != 1 {
		t.Fatalf("reset must reseed only the greeting, got %d messages", len(msgs))
	}
}

func TestIdleContinuePreservesSession(t *testing.T) {
	app, sessions := idleApp()
	sess := sessions.Get("kiosk-2")
	sess.AddToCart(domain.Product{ID: "p1", Name: "Milk"})

	req := httptest.NewRequest("POST", "/api/idle/continue", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "kiosk-2"})
	if _, err := app.Test(req); err != nil {
		t.Fatal(err)
	}

	if len(sess.Cart()) != 1 {
		t.Fatal("continue must leave the cart unchanged")
	}
	if msgs := sess.Messages(); len(msgs) != 1 {
		t.Fatal("continue must leave the transcript unchanged")
	}
}
