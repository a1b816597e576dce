// Package accounts owns the persisted representation of the registered
// account collection. It reads and writes the full set through the
// key-value collaborator and enforces case-insensitive email uniqueness
// on insert.
package accounts
