// Package kvstore defines the key-value persistence contract used by the
// authentication engine and ships three implementations: an in-process
// map ([Memory]), a Redis-backed store ([Redis]), and a single-file JSON
// store ([File]) for device-local deployments.
//
// # Architecture boundaries
//
// This package owns the [Store] contract and its implementations. It
// knows nothing about accounts, sessions, or the engine; values are
// opaque byte slices.
//
// # What this package must NOT do
//
//   - Interpret stored values.
//   - Import goAuthLocal or any sibling package.
package kvstore
