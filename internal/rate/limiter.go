package rate

import (
	"strings"
	"sync"
	"time"
)

// Config holds limiter tuning parameters. MaxAttempts <= 0 disables
// limiting entirely.
type Config struct {
	MaxAttempts int
	Cooldown    time.Duration
}

type window struct {
	count     int
	expiresAt time.Time
}

// Limiter tracks failed login attempts per identifier inside a cooldown
// window. A nil Limiter is valid and never limits.
type Limiter struct {
	cfg Config
	now func() time.Time

	mu      sync.Mutex
	windows map[string]window
}

// New creates a [Limiter], or nil when cfg disables limiting. The now
// function defaults to time.Now and exists for tests.
func New(cfg Config, now func() time.Time) *Limiter {
	if cfg.MaxAttempts <= 0 {
		return nil
	}
	if now == nil {
		now = time.Now
	}
	return &Limiter{
		cfg:     cfg,
		now:     now,
		windows: map[string]window{},
	}
}

func key(identifier string) string {
	return strings.ToLower(strings.TrimSpace(identifier))
}

// Check returns [ErrRateLimited] when the identifier has exhausted its
// attempt budget inside an active window.
func (l *Limiter) Check(identifier string) error {
	if l == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key(identifier)]
	if !ok {
		return nil
	}
	if l.now().After(w.expiresAt) {
		delete(l.windows, key(identifier))
		return nil
	}
	if w.count >= l.cfg.MaxAttempts {
		return ErrRateLimited
	}
	return nil
}

// Fail records a failed attempt and extends the cooldown window.
func (l *Limiter) Fail(identifier string) {
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	k := key(identifier)
	w := l.windows[k]
	if l.now().After(w.expiresAt) {
		w = window{}
	}
	w.count++
	w.expiresAt = l.now().Add(l.cfg.Cooldown)
	l.windows[k] = w
}

// Reset clears the failed-attempt counter for the identifier. Called
// after a successful login.
func (l *Limiter) Reset(identifier string) {
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.windows, key(identifier))
}

// Attempts reports the live failed-attempt count for the identifier.
func (l *Limiter) Attempts(identifier string) int {
	if l == nil {
		return 0
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key(identifier)]
	if !ok || l.now().After(w.expiresAt) {
		return 0
	}
	return w.count
}
