package sessionstore

import (
	"bytes"
	"context"
	"testing"

	"github.com/MrEthical07/goAuthLocal/kvstore"
)

const testKey = "@auth_user"

var testUser = User{ID: "u1", Name: "John Doe", Email: "john@example.com"}

func TestLoadAbsentSlot(t *testing.T) {
	store := New(kvstore.NewMemory(), testKey, nil)

	user, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if user != nil {
		t.Fatalf("expected no session, got %+v", user)
	}
}

func TestSaveLoadClearRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := New(kvstore.NewMemory(), testKey, nil)

	if err := store.Save(ctx, testUser); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	user, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if user == nil || *user != testUser {
		t.Fatalf("round trip mismatch: %+v", user)
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear error: %v", err)
	}
	user, err = store.Load(ctx)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if user != nil {
		t.Fatalf("expected cleared slot, got %+v", user)
	}

	// Clearing an absent slot is not an error.
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("second Clear error: %v", err)
	}
}

func TestLoadCorruptSlotFailsOpen(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()
	store := New(kv, testKey, nil)

	for _, corrupt := range [][]byte{
		[]byte("{broken"),
		[]byte(`"just a string"`),
		[]byte(`{"name":"No ID"}`),
	} {
		if err := kv.Set(ctx, testKey, corrupt); err != nil {
			t.Fatalf("Set error: %v", err)
		}

		user, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("corrupt slot must read as no session, got error %v", err)
		}
		if user != nil {
			t.Fatalf("corrupt slot %q produced a user: %+v", corrupt, user)
		}
	}
}

func TestSignedRoundTrip(t *testing.T) {
	ctx := context.Background()
	key := bytes.Repeat([]byte("k"), 32)
	store := New(kvstore.NewMemory(), testKey, key)

	if err := store.Save(ctx, testUser); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	user, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if user == nil || *user != testUser {
		t.Fatalf("signed round trip mismatch: %+v", user)
	}
}

func TestSignedSlotRejectsTampering(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()
	key := bytes.Repeat([]byte("k"), 32)
	store := New(kv, testKey, key)

	if err := store.Save(ctx, testUser); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	// A record signed under a different key must not load.
	other := New(kv, testKey, bytes.Repeat([]byte("x"), 32))
	user, err := other.Load(ctx)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if user != nil {
		t.Fatalf("foreign-key record loaded: %+v", user)
	}

	// A plain-JSON record in a signed store reads as no session.
	if err := kv.Set(ctx, testKey, []byte(`{"id":"u1","name":"J","email":"j@e.co"}`)); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	user, err = store.Load(ctx)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if user != nil {
		t.Fatalf("unsigned record loaded in signed mode: %+v", user)
	}
}
