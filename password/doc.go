// Package password owns stored-credential comparison and hashing for the
// authentication engine.
//
// Two schemes exist. [Plaintext] stores and compares cleartext with a
// constant-time comparison; it reproduces the legacy on-device storage
// layout and is a documented functional gap, not a recommendation — do
// not use it where the credential store can leave the device.
// [Argon2id] produces PHC-formatted argon2id hashes.
//
// [Verify] dispatches on the stored form, so a collection written under
// either scheme keeps verifying after the configuration changes.
package password
