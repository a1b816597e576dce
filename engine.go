package goAuthLocal

import (
	"context"
	"sync"

	"github.com/MrEthical07/goAuthLocal/internal/accounts"
	internalaudit "github.com/MrEthical07/goAuthLocal/internal/audit"
	"github.com/MrEthical07/goAuthLocal/internal/flows"
	"github.com/MrEthical07/goAuthLocal/internal/rate"
)

// Engine is the authentication state machine. It owns the in-memory
// mirror of the session user and is the only writer of it. Construct
// through [Builder.Build]; the engine starts in StateInitializing and
// stays there until [Engine.Initialize] resolves the persisted session.
//
// Engine methods are safe to call from multiple goroutines, though the
// design assumes at most one in-flight mutating call, matching the
// single-user-per-device model.
type Engine struct {
	config   Config
	accounts *accounts.Repository
	limiter  *rate.Limiter
	flows    flows.Service
	audit    *internalaudit.Dispatcher
	metrics  *Metrics

	mu    sync.RWMutex
	state AuthState
	user  *SessionUser

	initOnce   sync.Once
	initResult AuthResult
	ready      chan struct{}

	subMu   sync.Mutex
	subs    map[int]chan StateChange
	nextSub int
}

// Initialize resolves the startup session exactly once per engine: a
// persisted session user transitions the engine to StateAuthenticated;
// no session, or any storage fault, transitions it to
// StateUnauthenticated. Later calls return the first resolution without
// touching storage. The Ready channel closes when resolution completes.
func (e *Engine) Initialize(ctx context.Context) AuthResult {
	e.initOnce.Do(func() {
		user, err := e.flows.Restore(ctx)
		switch {
		case err != nil:
			// A corrupted or unreachable session slot must never
			// block startup; degrade to logged-out.
			e.metricInc(MetricSessionRestoreFault)
			e.setState(StateUnauthenticated, nil)
			e.emitRestore(ctx, nil, err)
		case user != nil:
			su := SessionUser(*user)
			e.metricInc(MetricSessionRestored)
			e.setState(StateAuthenticated, &su)
			e.emitRestore(ctx, &su, nil)
		default:
			e.setState(StateUnauthenticated, nil)
		}
		e.initResult = success()
		close(e.ready)
	})
	return e.initResult
}

// Ready returns a channel that closes once startup resolution has
// completed. Callers must observe it (or Initialized) before racing UI
// against an unresolved session.
func (e *Engine) Ready() <-chan struct{} {
	return e.ready
}

// Initialized reports whether startup resolution has completed.
func (e *Engine) Initialized() bool {
	select {
	case <-e.ready:
		return true
	default:
		return false
	}
}

// State returns the engine's current state.
func (e *Engine) State() AuthState {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}

// CurrentUser returns a copy of the session user, or nil outside
// StateAuthenticated.
func (e *Engine) CurrentUser() *SessionUser {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.user == nil {
		return nil
	}
	user := *e.user
	return &user
}

// Subscribe registers a state-change observer and returns its channel
// together with a cancel function. Delivery is non-blocking: when the
// buffer is full the change is dropped for that subscriber, so a stalled
// observer can never wedge the auth path.
func (e *Engine) Subscribe(buffer int) (<-chan StateChange, func()) {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan StateChange, buffer)

	e.subMu.Lock()
	id := e.nextSub
	e.nextSub++
	e.subs[id] = ch
	e.subMu.Unlock()

	cancel := func() {
		e.subMu.Lock()
		defer e.subMu.Unlock()
		if c, ok := e.subs[id]; ok {
			delete(e.subs, id)
			close(c)
		}
	}
	return ch, cancel
}

// setState records the transition and notifies subscribers.
func (e *Engine) setState(state AuthState, user *SessionUser) {
	e.mu.Lock()
	e.state = state
	e.user = user
	e.mu.Unlock()

	change := StateChange{State: state}
	if user != nil {
		u := *user
		change.User = &u
	}

	e.subMu.Lock()
	defer e.subMu.Unlock()
	for _, ch := range e.subs {
		select {
		case ch <- change:
		default:
		}
	}
}

// Close shuts down the audit dispatcher, draining buffered events. The
// engine itself holds no other resources.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	if e.audit != nil {
		e.audit.Close()
	}
}

// AuditDropped reports how many audit events were dropped because the
// dispatch buffer was full.
func (e *Engine) AuditDropped() uint64 {
	if e == nil {
		return 0
	}
	return e.audit.Dropped()
}

// MetricsSnapshot returns a point-in-time copy of all counters. With
// metrics disabled every counter reads zero.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil {
		return MetricsSnapshot{Counters: map[MetricID]uint64{}}
	}
	return e.metrics.Snapshot()
}

// LoginAttempts reports the live failed-login count for an email, zero
// when throttling is disabled.
func (e *Engine) LoginAttempts(email string) int {
	return e.limiter.Attempts(email)
}

func (e *Engine) metricInc(id MetricID) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Inc(id)
}
