// Package sessionstore owns the single persisted "currently
// authenticated user" slot. Load fails open to logged-out: an absent,
// corrupt, or tampered record reads as no session, never as a partial
// user, so a bad slot can never block startup.
//
// When constructed with a signing key, the slot holds an HS256-signed
// token instead of a plain record, so on-device edits to the session
// slot are detected and degrade to logged-out.
package sessionstore
