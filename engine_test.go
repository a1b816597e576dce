package goAuthLocal

import (
	"context"
	"errors"
	"testing"

	"github.com/MrEthical07/goAuthLocal/kvstore"
)

// faultStore wraps a Memory store with switchable I/O faults so tests can
// exercise every storage failure path.
type faultStore struct {
	inner      *kvstore.Memory
	failGet    bool
	failSet    bool
	failDelete bool
}

var errInjected = errors.New("injected storage fault")

func newFaultStore() *faultStore {
	return &faultStore{inner: kvstore.NewMemory()}
}

func (f *faultStore) Get(ctx context.Context, key string) ([]byte, error) {
	if f.failGet {
		return nil, errInjected
	}
	return f.inner.Get(ctx, key)
}

func (f *faultStore) Set(ctx context.Context, key string, value []byte) error {
	if f.failSet {
		return errInjected
	}
	return f.inner.Set(ctx, key, value)
}

func (f *faultStore) Delete(ctx context.Context, key string) error {
	if f.failDelete {
		return errInjected
	}
	return f.inner.Delete(ctx, key)
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Metrics.Enabled = true
	return cfg
}

// newTestEngine builds and initializes an engine over the given store.
func newTestEngine(t *testing.T, cfg Config, store KVStore) *Engine {
	t.Helper()

	engine := newUninitializedEngine(t, cfg, store)
	res := engine.Initialize(context.Background())
	if !res.Success {
		t.Fatalf("Initialize failed: %+v", res)
	}
	return engine
}

func newUninitializedEngine(t *testing.T, cfg Config, store KVStore) *Engine {
	t.Helper()

	engine, err := New().WithConfig(cfg).WithStore(store).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t.Cleanup(engine.Close)
	return engine
}

func mustSignup(t *testing.T, engine *Engine, name, email, pass string) {
	t.Helper()

	res := engine.Signup(context.Background(), SignupRequest{Name: name, Email: email, Password: pass})
	if !res.Success {
		t.Fatalf("Signup(%s) failed: %+v", email, res)
	}
}

func TestBuildRequiresStore(t *testing.T) {
	if _, err := New().Build(); err == nil {
		t.Fatal("expected Build to fail without a store")
	}
}

func TestBuilderSingleUse(t *testing.T) {
	builder := New().WithStore(kvstore.NewMemory())

	if _, err := builder.Build(); err != nil {
		t.Fatalf("first Build failed: %v", err)
	}
	if _, err := builder.Build(); !errors.Is(err, ErrBuilderUsed) {
		t.Fatalf("expected ErrBuilderUsed, got %v", err)
	}
}

func TestBuildRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Session.Key = cfg.Accounts.Key

	if _, err := New().WithConfig(cfg).WithStore(kvstore.NewMemory()).Build(); err == nil {
		t.Fatal("expected Build to reject colliding keys")
	}
}

func TestBuildIsAllocationOnly(t *testing.T) {
	store := newFaultStore()
	store.failGet = true
	store.failSet = true
	store.failDelete = true

	// Construction must not touch storage; only Initialize may.
	if _, err := New().WithStore(store).Build(); err != nil {
		t.Fatalf("Build failed: %v", err)
	}
}
