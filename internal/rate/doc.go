// Package rate enforces a per-email failed-login cooldown with
// in-process counters. The single-user-per-device model needs no shared
// backend: the budget protects the local credential store from
// unattended brute force, not a fleet of servers.
package rate
