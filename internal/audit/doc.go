// Package audit defines the audit event model, sink implementations, and
// the asynchronous dispatcher used by the authentication engine.
//
// Events are emitted on every login, signup, logout, and session-restore
// attempt. Dispatch is decoupled from the engine's hot path: Emit never
// blocks the caller when DropIfFull is set, and dropped events are
// counted rather than silently lost.
package audit
