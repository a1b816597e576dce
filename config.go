package goAuthLocal

import (
	"crypto/rand"
	"errors"
	"time"

	"github.com/MrEthical07/goAuthLocal/password"
)

// PasswordScheme selects how account credentials are stored and
// compared.
type PasswordScheme uint8

const (
	// SchemePlaintext stores credentials in cleartext, reproducing the
	// legacy on-device layout. It is a documented functional gap: use it
	// only where byte compatibility with an existing store is required.
	SchemePlaintext PasswordScheme = iota
	// SchemeArgon2id stores PHC-formatted argon2id hashes.
	SchemeArgon2id
)

// Config holds all engine tuning. Configure before Build; treat as
// immutable afterwards.
type Config struct {
	Session  SessionConfig
	Accounts AccountsConfig
	Password PasswordConfig
	Login    LoginConfig
	Audit    AuditConfig
	Metrics  MetricsConfig
}

/*
====================================
SESSION CONFIG
====================================
*/

// SessionConfig controls the persisted session slot.
type SessionConfig struct {
	// Key is the storage key for the single session-user record.
	Key string
	// SigningKey, when set, switches the slot to HS256-signed records
	// so on-device tampering degrades to logged-out. Must be at least
	// 32 bytes. Leave empty for the plain-JSON layout.
	SigningKey []byte
}

/*
====================================
ACCOUNTS CONFIG
====================================
*/

// AccountsConfig controls the persisted account collection.
type AccountsConfig struct {
	// Key is the storage key for the full account collection.
	Key string
}

/*
====================================
PASSWORD CONFIG
====================================
*/

// PasswordConfig selects the credential scheme and its argon2id
// parameters. The parameters are ignored under SchemePlaintext.
type PasswordConfig struct {
	Scheme      PasswordScheme
	Memory      uint32 // in KB
	Time        uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

/*
====================================
LOGIN CONFIG
====================================
*/

// LoginConfig controls the optional failed-login cooldown.
// MaxAttempts <= 0 disables throttling.
type LoginConfig struct {
	MaxAttempts int
	Cooldown    time.Duration
}

/*
====================================
AUDIT CONFIG
====================================
*/

// AuditConfig controls audit event dispatch.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	// DropIfFull makes Emit never block the auth path; dropped events
	// are counted via Engine.AuditDropped.
	DropIfFull bool
}

/*
====================================
METRICS CONFIG
====================================
*/

// MetricsConfig controls the in-process counters.
type MetricsConfig struct {
	Enabled bool
}

// Storage keys of the original on-device layout.
const (
	defaultSessionKey  = "@auth_user"
	defaultAccountsKey = "@auth_users"
)

func defaultConfig() Config {
	pw := password.DefaultConfig()
	return Config{
		Session: SessionConfig{
			Key: defaultSessionKey,
		},
		Accounts: AccountsConfig{
			Key: defaultAccountsKey,
		},
		Password: PasswordConfig{
			Scheme:      SchemePlaintext,
			Memory:      pw.Memory,
			Time:        pw.Time,
			Parallelism: pw.Parallelism,
			SaltLength:  pw.SaltLength,
			KeyLength:   pw.KeyLength,
		},
		Login: LoginConfig{
			MaxAttempts: 0,
			Cooldown:    time.Minute,
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 256,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled: false,
		},
	}
}

// DefaultConfig returns the baseline configuration: the original storage
// layout and keys, plaintext credential scheme, throttling, audit, and
// metrics disabled.
func DefaultConfig() Config {
	return defaultConfig()
}

// CompatConfig returns a configuration byte-compatible with stores
// written by the original implementation: plaintext scheme, unsigned
// session slot, the "@auth_user"/"@auth_users" keys. Identical to
// DefaultConfig today; kept distinct so hardening the default later
// cannot silently break existing stores.
func CompatConfig() Config {
	return defaultConfig()
}

// HardenedConfig returns a configuration with argon2id credential
// hashing, a freshly generated session signing key, and login throttling
// enabled. The generated key is ephemeral: sessions will not survive a
// process restart unless the caller installs a persistent key.
func HardenedConfig() Config {
	cfg := defaultConfig()
	cfg.Password.Scheme = SchemeArgon2id
	cfg.Login.MaxAttempts = 5
	cfg.Login.Cooldown = time.Minute

	key := make([]byte, 32)
	if _, err := rand.Read(key); err == nil {
		cfg.Session.SigningKey = key
	}
	return cfg
}

func cloneConfig(cfg Config) Config {
	out := cfg
	if len(cfg.Session.SigningKey) > 0 {
		out.Session.SigningKey = append([]byte(nil), cfg.Session.SigningKey...)
	}
	return out
}

// Validate checks the configuration for internal consistency.
func (c Config) Validate() error {
	if c.Session.Key == "" {
		return errors.New("session key must not be empty")
	}
	if c.Accounts.Key == "" {
		return errors.New("accounts key must not be empty")
	}
	if c.Session.Key == c.Accounts.Key {
		return errors.New("session and accounts keys must differ")
	}
	if len(c.Session.SigningKey) > 0 && len(c.Session.SigningKey) < 32 {
		return errors.New("session signing key must be at least 32 bytes")
	}
	if c.Login.MaxAttempts > 0 && c.Login.Cooldown <= 0 {
		return errors.New("login cooldown must be positive when throttling is enabled")
	}
	if c.Password.Scheme == SchemeArgon2id {
		if _, err := password.NewArgon2(c.passwordConfig()); err != nil {
			return err
		}
	}
	return nil
}

func (c Config) passwordConfig() password.Config {
	return password.Config{
		Memory:      c.Password.Memory,
		Time:        c.Password.Time,
		Parallelism: c.Password.Parallelism,
		SaltLength:  c.Password.SaltLength,
		KeyLength:   c.Password.KeyLength,
	}
}
