package goAuthLocal

import (
	"errors"

	"github.com/google/uuid"

	"github.com/MrEthical07/goAuthLocal/internal/accounts"
	internalaudit "github.com/MrEthical07/goAuthLocal/internal/audit"
	"github.com/MrEthical07/goAuthLocal/internal/flows"
	"github.com/MrEthical07/goAuthLocal/internal/rate"
	"github.com/MrEthical07/goAuthLocal/internal/sessionstore"
	"github.com/MrEthical07/goAuthLocal/password"
	"github.com/MrEthical07/goAuthLocal/validation"
)

// Builder assembles an [Engine]. Construction is allocation-only: no I/O
// happens until [Engine.Initialize].
type Builder struct {
	config    Config
	store     KVStore
	auditSink AuditSink

	built bool
}

// New returns a Builder carrying the default configuration.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig replaces the builder's configuration with a deep copy of
// cfg.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithStore sets the persistence collaborator the engine reads and
// writes through. Required.
func (b *Builder) WithStore(store KVStore) *Builder {
	b.store = store
	return b
}

// WithAuditSink sets the sink receiving audit events. Events are only
// dispatched when Config.Audit.Enabled is true.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithMetricsEnabled toggles the in-process counters.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// Build validates the wiring and constructs the engine in
// StateInitializing. A Builder may be used once.
func (b *Builder) Build() (*Engine, error) {
	if b.built {
		return nil, ErrBuilderUsed
	}

	cfg := cloneConfig(b.config)

	if b.store == nil {
		return nil, errors.New("kv store required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var hasher password.Hasher
	switch cfg.Password.Scheme {
	case SchemeArgon2id:
		argon, err := password.NewArgon2(cfg.passwordConfig())
		if err != nil {
			return nil, err
		}
		hasher = argon
	default:
		hasher = password.Plaintext{}
	}

	repo := accounts.New(b.store, cfg.Accounts.Key)
	sessions := sessionstore.New(b.store, cfg.Session.Key, cfg.Session.SigningKey)
	limiter := rate.New(rate.Config{
		MaxAttempts: cfg.Login.MaxAttempts,
		Cooldown:    cfg.Login.Cooldown,
	}, nil)

	engine := &Engine{
		config:   cfg,
		accounts: repo,
		limiter:  limiter,
		state:    StateInitializing,
		ready:    make(chan struct{}),
		subs:     map[int]chan StateChange{},
	}

	engine.flows = flows.New(flows.Deps{
		Login: flows.LoginDeps{
			FindByEmail:    repo.FindByEmail,
			VerifyPassword: password.Verify,
			SaveSession:    sessions.Save,
			CheckLimiter:   limiter.Check,
			RecordFailure:  limiter.Fail,
			ResetLimiter:   limiter.Reset,
			Errors: flows.LoginErrors{
				InvalidInput:       ErrInvalidInput,
				InvalidCredentials: ErrInvalidCredentials,
			},
		},
		Signup: flows.SignupDeps{
			EmailValid:    validation.EmailValid,
			PasswordValid: validation.PasswordValid,
			NewID:         uuid.NewString,
			HashPassword:  hasher.Hash,
			Insert:        repo.Insert,
			SaveSession:   sessions.Save,
			Errors: flows.SignupErrors{
				InvalidInput:   ErrInvalidInput,
				EmailFormat:    ErrInvalidEmailFormat,
				PasswordLength: ErrPasswordTooShort,
			},
		},
		Logout: flows.LogoutDeps{
			ClearSession: sessions.Clear,
		},
		Restore: flows.RestoreDeps{
			LoadSession: sessions.Load,
		},
	})

	if cfg.Metrics.Enabled {
		engine.metrics = newMetrics()
	}
	engine.audit = internalaudit.NewDispatcher(internalaudit.Config{
		Enabled:    cfg.Audit.Enabled,
		BufferSize: cfg.Audit.BufferSize,
		DropIfFull: cfg.Audit.DropIfFull,
	}, b.auditSink)

	b.built = true
	return engine, nil
}
