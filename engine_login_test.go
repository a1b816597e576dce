package goAuthLocal

import (
	"context"
	"testing"
	"time"
)

func TestLoginRoundTrip(t *testing.T) {
	engine := newTestEngine(t, testConfig(), newFaultStore())
	ctx := context.Background()

	mustSignup(t, engine, "John Doe", "john@example.com", "password123")

	logout := engine.Logout(ctx)
	if !logout.Success {
		t.Fatalf("Logout failed: %+v", logout)
	}

	login := engine.Login(ctx, LoginRequest{Email: "john@example.com", Password: "password123"})
	if !login.Success {
		t.Fatalf("Login failed: %+v", login)
	}
	if login.Error != "" {
		t.Fatalf("successful result must carry no error, got %q", login.Error)
	}

	user := engine.CurrentUser()
	if user == nil || user.Name != "John Doe" || user.Email != "john@example.com" {
		t.Fatalf("session user mismatch after round trip: %+v", user)
	}
	if engine.State() != StateAuthenticated {
		t.Fatalf("expected StateAuthenticated, got %v", engine.State())
	}
}

func TestLoginEmailIsCaseInsensitive(t *testing.T) {
	engine := newTestEngine(t, testConfig(), newFaultStore())
	ctx := context.Background()

	mustSignup(t, engine, "John Doe", "john@example.com", "password123")
	engine.Logout(ctx)

	res := engine.Login(ctx, LoginRequest{Email: "JOHN@Example.COM", Password: "password123"})
	if !res.Success {
		t.Fatalf("expected case-insensitive email lookup, got %+v", res)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	engine := newTestEngine(t, testConfig(), newFaultStore())
	ctx := context.Background()

	res := engine.Login(ctx, LoginRequest{Email: "x@y.com", Password: "wrong"})
	if res.Success {
		t.Fatal("expected login failure with no matching account")
	}
	if res.Error != "Invalid email or password" {
		t.Fatalf("unexpected message %q", res.Error)
	}
	if engine.State() != StateUnauthenticated {
		t.Fatalf("failed login must not transition state, got %v", engine.State())
	}

	// Wrong password for an existing account reads identically.
	mustSignup(t, engine, "John Doe", "john@example.com", "password123")
	engine.Logout(ctx)

	res = engine.Login(ctx, LoginRequest{Email: "john@example.com", Password: "password124"})
	if res.Success || res.Error != "Invalid email or password" {
		t.Fatalf("expected indistinguishable failure, got %+v", res)
	}
}

func TestLoginEmptyFieldsCoarseGuard(t *testing.T) {
	engine := newTestEngine(t, testConfig(), newFaultStore())
	ctx := context.Background()

	for _, req := range []LoginRequest{
		{Email: "", Password: "password123"},
		{Email: "john@example.com", Password: ""},
		{},
	} {
		res := engine.Login(ctx, req)
		if res.Success || res.Error != msgInvalidInput {
			t.Fatalf("expected coarse input guard for %+v, got %+v", req, res)
		}
	}
}

func TestLoginStorageFaultSurfacesAsResult(t *testing.T) {
	store := newFaultStore()
	engine := newTestEngine(t, testConfig(), store)
	ctx := context.Background()

	mustSignup(t, engine, "John Doe", "john@example.com", "password123")
	engine.Logout(ctx)

	store.failGet = true
	res := engine.Login(ctx, LoginRequest{Email: "john@example.com", Password: "password123"})
	if res.Success || res.Error != msgStorage {
		t.Fatalf("expected storage-fault result, got %+v", res)
	}
	if engine.State() != StateUnauthenticated {
		t.Fatalf("storage fault must not transition state, got %v", engine.State())
	}

	snap := engine.MetricsSnapshot()
	if snap.Counters[MetricStorageFault] == 0 {
		t.Fatalf("expected storage-fault metric, got %v", snap.Counters)
	}
}

func TestLoginThrottleCooldown(t *testing.T) {
	cfg := testConfig()
	cfg.Login.MaxAttempts = 2
	cfg.Login.Cooldown = time.Minute

	engine := newTestEngine(t, cfg, newFaultStore())
	ctx := context.Background()

	mustSignup(t, engine, "John Doe", "john@example.com", "password123")
	engine.Logout(ctx)

	for i := 0; i < 2; i++ {
		res := engine.Login(ctx, LoginRequest{Email: "john@example.com", Password: "wrong"})
		if res.Success || res.Error != msgInvalidCredentials {
			t.Fatalf("attempt %d: expected credentials failure, got %+v", i, res)
		}
	}
	if got := engine.LoginAttempts("john@example.com"); got != 2 {
		t.Fatalf("expected 2 recorded attempts, got %d", got)
	}

	// Budget exhausted: even the correct password is rejected now.
	res := engine.Login(ctx, LoginRequest{Email: "john@example.com", Password: "password123"})
	if res.Success || res.Error != msgRateLimited {
		t.Fatalf("expected cooldown rejection, got %+v", res)
	}

	snap := engine.MetricsSnapshot()
	if snap.Counters[MetricLoginRateLimited] != 1 {
		t.Fatalf("expected rate-limited metric, got %v", snap.Counters)
	}
}

func TestLoginSuccessResetsThrottle(t *testing.T) {
	cfg := testConfig()
	cfg.Login.MaxAttempts = 3
	cfg.Login.Cooldown = time.Minute

	engine := newTestEngine(t, cfg, newFaultStore())
	ctx := context.Background()

	mustSignup(t, engine, "John Doe", "john@example.com", "password123")
	engine.Logout(ctx)

	engine.Login(ctx, LoginRequest{Email: "john@example.com", Password: "wrong"})
	res := engine.Login(ctx, LoginRequest{Email: "john@example.com", Password: "password123"})
	if !res.Success {
		t.Fatalf("Login failed: %+v", res)
	}

	if got := engine.LoginAttempts("john@example.com"); got != 0 {
		t.Fatalf("expected cleared budget after success, got %d", got)
	}
}
