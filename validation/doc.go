// Package validation computes field-level and form-level validation
// errors from raw input strings. All functions are pure and
// side-effect-free; the message constants are the exact strings shown to
// users.
//
// # What this package must NOT do
//
//   - Perform I/O or touch persisted state.
//   - Import goAuthLocal or any sibling package.
package validation
