// Package flows contains the engine's flow orchestration: login, signup,
// logout, and startup session restore as pure functions over explicit
// dependency structs.
//
// Each Run function receives everything it touches through its Deps
// value, so flows are testable without an engine and the root package
// stays a thin delegating surface. Flows return sentinel errors; mapping
// them to user-visible AuthResult messages happens at the public
// boundary, never here.
package flows
