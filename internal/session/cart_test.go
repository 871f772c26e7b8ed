package session

import (
	"testing"
	"time"

	"shopmate/internal/domain"
)

func newTestSession() *Session {
	return &Session{
		ID:       "test",
		messages: []domain.Message{greeting()},
		Idle:     NewIdleController(nil, time.Hour, time.Hour),
	}
}

func TestAddToCartIncrementsExisting(t *testing.T) {
	s := newTestSession()
	p := domain.Product{ID: "p1", Name: "Juhayna Milk", Category: "Dairy", Price: 0}

	s.AddToCart(p)
	s.AddToCart(p)

	cart := s.Cart()
	if len(cart) != 1 {
		t.Fatalf("want 1 line, got %d", len(cart))
	}
	if cart[0].Quantity != 2 {
		t.Fatalf("want qty=2, got %d", cart[0].Quantity)
	}
	if cart[0].Checked {
		t.Fatal("new items start unchecked")
	}
}

func TestUpdateQuantityZeroRemoves(t *testing.T) {
	s := newTestSession()
	s.AddToCart(domain.Product{ID: "p1", Name: "Pasta"})
	s.UpdateQuantity("p1", 5)
	if got := s.Cart()[0].Quantity; got != 5 {
		t.Fatalf("want qty=5, got %d", got)
	}
	s.UpdateQuantity("p1", 0)
	if len(s.Cart()) != 0 {
		t.Fatal("qty<=0 should remove the item")
	}
}

func TestToggleCheckAndPatch(t *testing.T) {
	s := newTestSession()
	s.AddToCart(domain.Product{ID: "p1", Name: "Oil"})

	s.ToggleCheck("p1")
	if !s.Cart()[0].Checked {
		t.Fatal("item should be checked")
	}
	s.ToggleCheck("p1")
	if s.Cart()[0].Checked {
		t.Fatal("item should be unchecked again")
	}

	name := "Crystal Oil"
	price := 62.5
	s.UpdateItem("p1", ItemPatch{Name: &name, Price: &price})
	it := s.Cart()[0]
	if it.Name != "Crystal Oil" || it.Price != 62.5 {
		t.Fatalf("patch not applied: %+v", it)
	}
}

func TestCartTotalSkipsUnpriced(t *testing.T) {
	s := newTestSession()
	s.AddToCart(domain.Product{ID: "p1", Name: "Milk", Price: 30})
	s.AddToCart(domain.Product{ID: "p1", Name: "Milk", Price: 30}) // qty 2
	s.AddToCart(domain.Product{ID: "ai-1", Name: "Suggested", Price: 0})

	if got := s.CartTotal(); got != 60 {
		t.Fatalf("want total=60, got %v", got)
	}
}

func TestResetClearsTranscriptAndCart(t *testing.T) {
	s := newTestSession()
	s.AddToCart(domain.Product{ID: "p1", Name: "Milk"})
	s.Append(domain.Message{ID: "m1", Text: "hello", Sender: domain.SenderUser, Timestamp: time.Now()})

	s.Reset()

	if len(s.Cart()) != 0 {
		t.Fatal("cart should be empty after reset")
	}
	msgs := s.Messages()
	if len(msgs) != 1 || msgs[0].Sender != domain.SenderBot {
		t.Fatalf("transcript should hold only the reseeded greeting, got %d messages", len(msgs))
	}
}

func TestManagerReusesSession(t *testing.T) {
	m := NewManager(nil, time.Hour, time.Hour, time.Hour)
	a := m.Get("sid-1")
	b := m.Get("sid-1")
	if a != b {
		t.Fatal("same sid must map to the same session")
	}
	if c := m.Get("sid-2"); c == a {
		t.Fatal("different sids must not share a session")
	}
}

func TestManagerSweepDropsStale(t *testing.T) {
	m := NewManager(nil, time.Hour, time.Hour, 10*time.Millisecond)
	m.Get("sid-1")
	time.Sleep(30 * time.Millisecond)
	m.Get("sid-2")

	if dropped := m.Sweep(); dropped != 1 {
		t.Fatalf("want 1 stale session dropped, got %d", dropped)
	}
}
