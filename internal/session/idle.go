package session

import (
	"sync"
	"time"
)

// placeholderAd is shown when the ads listing is empty or unavailable.
const placeholderAd = "/static/ad-placeholder.svg"

type IdleState int

const (
	StateActive IdleState = iota
	StateIdle
	StateReengage
)

func (s IdleState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateReengage:
		return "reengage"
	default:
		return "active"
	}
}

// IdleSnapshot is the observable idle/carousel state of one session.
type IdleSnapshot struct {
	State   IdleState `json:"-"`
	Idle    bool      `json:"idle"`
	Prompt  bool      `json:"prompting"`
	AdIndex int       `json:"adIndex"`
	Image   string    `json:"image"`
}

// IdleController drives the Active -> Idle -> ReengagePrompt lifecycle for a
// single session. The inactivity timer restarts on every tracked input event
// while Active; while Idle the carousel index advances on a fixed interval and
// is suspended as soon as the re-engagement prompt shows.
type IdleController struct {
	mu      sync.Mutex
	state   IdleState
	adIndex int
	images  []string

	timeout time.Duration
	rotate  time.Duration

	idleTimer *time.Timer
	rotating  chan struct{}
	stopped   bool
}

func NewIdleController(images []string, timeout, rotate time.Duration) *IdleController {
	if len(images) == 0 {
		images = []string{placeholderAd}
	}
	c := &IdleController{
		state:   StateActive,
		images:  images,
		timeout: timeout,
		rotate:  rotate,
	}
	c.mu.Lock()
	c.armIdleTimerLocked()
	c.mu.Unlock()
	return c
}

// Activity records a tracked input event. While Active it restarts the
// inactivity window; in any other state it is ignored (leaving idle requires
// an explicit tap and customer decision).
func (c *IdleController) Activity() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped || c.state != StateActive {
		return
	}
	c.armIdleTimerLocked()
}

// Tap handles a screen touch while the ad carousel is showing: it raises the
// re-engagement prompt and suspends rotation. Taps in other states are no-ops.
func (c *IdleController) Tap() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped || c.state != StateIdle {
		return
	}
	c.state = StateReengage
	c.stopRotationLocked()
}

// Continue is the "same customer" branch: back to Active, nothing cleared.
func (c *IdleController) Continue() {
	c.resume()
}

// Dismiss is the "new customer" branch's controller half: back to Active with
// a fresh timer. Clearing the session data is the caller's job.
func (c *IdleController) Dismiss() {
	c.resume()
}

func (c *IdleController) resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped || c.state == StateActive {
		return
	}
	c.state = StateActive
	c.adIndex = 0
	c.stopRotationLocked()
	c.armIdleTimerLocked()
}

// Snapshot returns the current state for the polling endpoint.
func (c *IdleController) Snapshot() IdleSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return IdleSnapshot{
		State:   c.state,
		Idle:    c.state != StateActive,
		Prompt:  c.state == StateReengage,
		AdIndex: c.adIndex,
		Image:   c.images[c.adIndex%len(c.images)],
	}
}

// Stop tears down all timers; the controller is unusable afterwards.
func (c *IdleController) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopped = true
	if c.idleTimer != nil {
		c.idleTimer.Stop()
	}
	c.stopRotationLocked()
}

func (c *IdleController) armIdleTimerLocked() {
	if c.idleTimer != nil {
		c.idleTimer.Stop()
	}
	c.idleTimer = time.AfterFunc(c.timeout, c.becomeIdle)
}

func (c *IdleController) becomeIdle() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped || c.state != StateActive {
		return
	}
	c.state = StateIdle
	c.adIndex = 0
	c.startRotationLocked()
}

func (c *IdleController) startRotationLocked() {
	c.stopRotationLocked()
	done := make(chan struct{})
	c.rotating = done
	go func() {
		ticker := time.NewTicker(c.rotate)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.advanceAd()
			case <-done:
				return
			}
		}
	}()
}

func (c *IdleController) stopRotationLocked() {
	if c.rotating != nil {
		close(c.rotating)
		c.rotating = nil
	}
}

func (c *IdleController) advanceAd() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateIdle {
		return
	}
	c.adIndex = (c.adIndex + 1) % len(c.images)
}
