// Package goAuthLocal provides an embeddable authentication engine for
// single-user-per-device applications: a persisted credential store, a
// session state machine with startup restore, and form-field validation.
//
// The engine owns the currently authenticated user and is its only writer.
// All mutating operations (Login, Signup, Logout) report their outcome
// through [AuthResult]; no error ever crosses the engine boundary as a
// panic or a raw return. State changes are observable through
// [Engine.Subscribe].
//
// # Architecture boundaries
//
// goAuthLocal is the public surface. It exposes [Engine], [Builder],
// [Config], and value types (Account, SessionUser, AuthResult,
// StateChange). Flow orchestration, account and session persistence,
// login throttling, and audit dispatch live under internal/ and are never
// exported. Reusable leaf concerns live in their own public packages:
// validation (field rules), password (credential comparison and hashing),
// and kvstore (persistence collaborators).
//
// # What this package must NOT do
//
//   - Render UI or drive navigation; it only reports results and state.
//   - Expose storage clients or wire encodings in its public API beyond
//     the [KVStore] contract.
//   - Perform I/O outside of Engine methods (construction via Builder is
//     allocation-only until Build).
//
// # Persistence contract
//
// The engine reads and writes exactly two logical records through the
// configured [KVStore]: the session slot (default key "@auth_user") and
// the account collection (default key "@auth_users"). A corrupted session
// record degrades to the logged-out state and never blocks startup.
package goAuthLocal
