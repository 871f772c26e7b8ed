// Package session holds the process-local, per-kiosk-session state: chat
// transcript, shopping cart and idle lifecycle. Nothing here survives a
// restart; the kiosk is intentionally stateless across reloads.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"shopmate/internal/domain"
)

const greetingText = "أهلاً بك في فتح الله! أنا مساعدك الذكي. تحب أساعدك في إيه النهاردة؟"

// AdLister supplies the idle carousel images, fetched once per session.
type AdLister interface {
	List() []string
}

type Session struct {
	ID string

	mu       sync.Mutex
	messages []domain.Message
	cart     []domain.CartItem
	lastSeen time.Time

	Idle *IdleController
}

// Manager owns every live session, keyed by the sid cookie.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	ads         AdLister
	idleTimeout time.Duration
	adRotate    time.Duration
	maxIdle     time.Duration
}

func NewManager(ads AdLister, idleTimeout, adRotate, maxIdle time.Duration) *Manager {
	return &Manager{
		sessions:    make(map[string]*Session),
		ads:         ads,
		idleTimeout: idleTimeout,
		adRotate:    adRotate,
		maxIdle:     maxIdle,
	}
}

// Get returns the session for sid, creating it on first sight.
func (m *Manager) Get(sid string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[sid]; ok {
		s.touch()
		return s
	}

	images := []string{}
	if m.ads != nil {
		images = m.ads.List()
	}
	s := &Session{
		ID:       sid,
		messages: []domain.Message{greeting()},
		lastSeen: time.Now(),
		Idle:     NewIdleController(images, m.idleTimeout, m.adRotate),
	}
	m.sessions[sid] = s
	return s
}

// Sweep drops sessions idle past the max-idle window and stops their timers.
func (m *Manager) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	dropped := 0
	cutoff := time.Now().Add(-m.maxIdle)
	for sid, s := range m.sessions {
		s.mu.Lock()
		stale := s.lastSeen.Before(cutoff)
		s.mu.Unlock()
		if stale {
			s.Idle.Stop()
			delete(m.sessions, sid)
			dropped++
		}
	}
	return dropped
}

func greeting() domain.Message {
	return domain.Message{
		ID:        uuid.NewString(),
		Text:      greetingText,
		Sender:    domain.SenderBot,
		Timestamp: time.Now(),
	}
}

func (s *Session) touch() {
	s.mu.Lock()
	s.lastSeen = time.Now()
	s.mu.Unlock()
}

// Messages returns a copy of the transcript in order.
func (s *Session) Messages() []domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *Session) Append(msg domain.Message) {
	s.mu.Lock()
	s.messages = append(s.messages, msg)
	s.mu.Unlock()
}

// Reset clears transcript and cart wholesale ("new customer" decision) and
// reseeds the greeting.
func (s *Session) Reset() {
	s.mu.Lock()
	s.messages = []domain.Message{greeting()}
	s.cart = nil
	s.mu.Unlock()
}
