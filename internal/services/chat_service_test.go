package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"shopmate/internal/domain"
	"shopmate/internal/services"
	"shopmate/internal/session"
)

type stubCompleter struct {
	raw        string
	err        error
	transcript []domain.Message
}

func (s *stubCompleter) Complete(_ context.Context, transcript []domain.Message) (string, error) {
	s.transcript = transcript
	return s.raw, s.err
}

func testSession(t *testing.T) *session.Session {
	t.Helper()
	m := session.NewManager(nil, time.Hour, time.Hour, time.Hour)
	return m.Get("chat-test")
}

func TestTurnAppendsBothMessages(t *testing.T) {
	sess := testSession(t)
	stub := &stubCompleter{raw: `{"reply":"hi","should_add_to_cart":false,"suggested_products":[]}`}
	svc := services.NewChatService(stub)

	raw, botMsg, err := svc.Turn(context.Background(), sess, "hello")
	if err != nil {
		t.Fatal(err)
	}
	if raw != stub.raw {
		t.Fatalf("raw payload not passed through: %q", raw)
	}
	if botMsg.Text != "hi" {
		t.Fatalf("want reply 'hi', got %q", botMsg.Text)
	}

	// Greeting + user + bot.
	msgs := sess.Messages()
	if len(msgs) != 3 {
		t.Fatalf("want 3 messages, got %d", len(msgs))
	}
	if msgs[1].Sender != domain.SenderUser || msgs[1].Text != "hello" {
		t.Fatalf("user message missing: %+v", msgs[1])
	}

	// The transcript the orchestrator saw ends with the new user message.
	last := stub.transcript[len(stub.transcript)-1]
	if last.Sender != domain.SenderUser || last.Text != "hello" {
		t.Fatalf("orchestrator transcript wrong: %+v", last)
	}
	if len(sess.Cart()) != 0 {
		t.Fatal("no cart mutation without should_add_to_cart")
	}
}

func TestTurnAutoAddsWithZeroPrice(t *testing.T) {
	sess := testSession(t)
	// A price-like field in the payload must be ignored.
	stub := &stubCompleter{raw: `{"reply":"added!","should_add_to_cart":true,"suggested_products":[` +
		`{"name":"Juhayna Milk","category":"Dairy","is_sponsored":true,"reason":"Partner Brand","price":99.9},` +
		`{"name":"Italiano Pasta","is_sponsored":true,"reason":"Partner Brand"}]}`}
	svc := services.NewChatService(stub)

	_, botMsg, err := svc.Turn(context.Background(), sess, "add them")
	if err != nil {
		t.Fatal(err)
	}

	cart := sess.Cart()
	if len(cart) != 2 {
		t.Fatalf("want 2 cart items, got %d", len(cart))
	}
	for _, it := range cart {
		if it.Price != 0 {
			t.Fatalf("auto-added item must be priced 0, got %v", it.Price)
		}
	}
	if cart[1].Category != "General" {
		t.Fatalf("missing category defaults to General, got %q", cart[1].Category)
	}
	if !strings.Contains(botMsg.Text, "added to cart") {
		t.Fatalf("confirmation suffix missing: %q", botMsg.Text)
	}
	if len(botMsg.SuggestedProducts) != 2 {
		t.Fatal("suggested products must ride on the bot message")
	}
}

func TestTurnMalformedPayloadDegradesGracefully(t *testing.T) {
	sess := testSession(t)
	stub := &stubCompleter{raw: "The model rambled instead of emitting JSON"}
	svc := services.NewChatService(stub)

	_, botMsg, err := svc.Turn(context.Background(), sess, "hi")
	if err != nil {
		t.Fatal(err)
	}
	if botMsg.Text != stub.raw {
		t.Fatalf("raw text must become the reply, got %q", botMsg.Text)
	}
	if len(sess.Cart()) != 0 {
		t.Fatal("malformed payload must not mutate the cart")
	}
}

func TestTurnOrchestratorFailureSurfaces(t *testing.T) {
	sess := testSession(t)
	boom := errors.New("all credentials failed")
	svc := services.NewChatService(&stubCompleter{err: boom})

	_, _, err := svc.Turn(context.Background(), sess, "hi")
	if !errors.Is(err, boom) {
		t.Fatalf("want orchestrator error surfaced, got %v", err)
	}
	// User message stays so a retry has context.
	msgs := sess.Messages()
	if msgs[len(msgs)-1].Sender != domain.SenderUser {
		t.Fatal("user message should remain in transcript on failure")
	}
}
