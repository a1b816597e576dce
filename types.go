package goAuthLocal

import (
	"io"

	internalaudit "github.com/MrEthical07/goAuthLocal/internal/audit"
	"github.com/MrEthical07/goAuthLocal/kvstore"
)

// AuthState represents the engine's session state machine position.
//
//	Initializing    — startup restore has not resolved yet
//	Unauthenticated — no active session
//	Authenticated   — a session user is present
type AuthState uint8

const (
	// StateInitializing is the state before startup restore resolves.
	StateInitializing AuthState = iota
	// StateUnauthenticated is the state with no active session.
	StateUnauthenticated
	// StateAuthenticated is the state with an active session user.
	StateAuthenticated
)

// String returns a stable lowercase name for the state.
func (s AuthState) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Account is a persisted registered credential record. Password holds the
// stored credential form: cleartext under [SchemePlaintext] (the legacy
// compatibility mode) or a PHC string under [SchemeArgon2id]. Email is
// unique across all accounts, compared case-insensitively.
type Account struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionUser is the password-stripped projection of an [Account]
// representing the currently authenticated identity. At most one exists
// at a time.
type SessionUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResult is the uniform outcome of every mutating engine operation.
// Error carries a single human-readable message and is empty exactly when
// Success is true. This is the sole failure channel across the engine
// boundary.
type AuthResult struct {
	Success bool
	Error   string
}

// LoginRequest is the input for [Engine.Login].
type LoginRequest struct {
	Email    string
	Password string
}

// SignupRequest is the input for [Engine.Signup].
type SignupRequest struct {
	Name     string
	Email    string
	Password string
}

// StateChange is delivered to subscribers whenever the engine's state
// resolves or transitions. User is non-nil only for StateAuthenticated.
type StateChange struct {
	State AuthState
	User  *SessionUser
}

// KVStore is the external persistence collaborator the engine reads and
// writes through. See the kvstore package for implementations.
type KVStore = kvstore.Store

// ErrKeyNotFound reports an absent key from a [KVStore].
var ErrKeyNotFound = kvstore.ErrNotFound

// AuditEvent is a structured audit record emitted by the engine.
type AuditEvent = internalaudit.Event

// AuditSink receives [AuditEvent] values from the engine's audit
// dispatcher.
type AuditSink = internalaudit.Sink

// NoOpSink is an [AuditSink] that silently discards all events.
type NoOpSink = internalaudit.NoOpSink

// ChannelSink is a buffered channel-based [AuditSink].
type ChannelSink = internalaudit.ChannelSink

// JSONWriterSink is an [AuditSink] that writes JSON-encoded events to an
// [io.Writer].
type JSONWriterSink = internalaudit.JSONWriterSink

// NewChannelSink creates a [ChannelSink] with the given buffer capacity.
func NewChannelSink(buffer int) *ChannelSink {
	return internalaudit.NewChannelSink(buffer)
}

// NewJSONWriterSink creates a [JSONWriterSink] that writes to w.
func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return internalaudit.NewJSONWriterSink(w)
}
