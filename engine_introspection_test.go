package goAuthLocal

import (
	"context"
	"errors"
	"testing"
)

func TestAccountCount(t *testing.T) {
	store := newFaultStore()
	engine := newTestEngine(t, testConfig(), store)
	ctx := context.Background()

	count, err := engine.AccountCount(ctx)
	if err != nil || count != 0 {
		t.Fatalf("AccountCount on empty store = %d, %v", count, err)
	}

	mustSignup(t, engine, "John Doe", "a@b.com", "password123")
	engine.Logout(ctx)
	mustSignup(t, engine, "Jane Doe", "b@b.com", "password123")

	count, err = engine.AccountCount(ctx)
	if err != nil || count != 2 {
		t.Fatalf("AccountCount after two signups = %d, %v", count, err)
	}

	store.failGet = true
	if _, err := engine.AccountCount(ctx); !errors.Is(err, errInjected) {
		t.Fatalf("expected propagated storage fault, got %v", err)
	}
}

func TestAccountCountBeforeInitialize(t *testing.T) {
	engine := newUninitializedEngine(t, testConfig(), newFaultStore())

	if _, err := engine.AccountCount(context.Background()); !errors.Is(err, ErrEngineNotReady) {
		t.Fatalf("expected ErrEngineNotReady, got %v", err)
	}
}

func TestConfigReturnsIsolatedCopy(t *testing.T) {
	cfg := testConfig()
	cfg.Session.SigningKey = make([]byte, 32)
	engine := newTestEngine(t, cfg, newFaultStore())

	got := engine.Config()
	if got.Session.Key != cfg.Session.Key || got.Accounts.Key != cfg.Accounts.Key {
		t.Fatalf("Config mismatch: %+v", got)
	}

	got.Session.SigningKey[0] = 0xFF
	if engine.Config().Session.SigningKey[0] != 0 {
		t.Fatal("mutating the returned config leaked into the engine")
	}
}
