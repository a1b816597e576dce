package flows

import (
	"context"
	"strings"

	"github.com/MrEthical07/goAuthLocal/internal/accounts"
	"github.com/MrEthical07/goAuthLocal/internal/sessionstore"
)

// LoginRequest carries raw login input.
type LoginRequest struct {
	Email    string
	Password string
}

// LoginErrors injects the root package's sentinels into the flow.
type LoginErrors struct {
	InvalidInput       error
	InvalidCredentials error
}

// LoginDeps captures login flow dependencies.
type LoginDeps struct {
	FindByEmail    func(ctx context.Context, email string) (*accounts.Record, error)
	VerifyPassword func(password, stored string) (bool, error)
	SaveSession    func(ctx context.Context, user sessionstore.User) error

	// Limiter hooks; all may be nil-safe no-ops when throttling is off.
	CheckLimiter  func(email string) error
	RecordFailure func(email string)
	ResetLimiter  func(email string)

	Errors LoginErrors
}

// RunLogin authenticates the request against the stored accounts and
// persists the derived session user. The empty-field guard is a coarse
// pre-check distinct from form validation: field-level rules belong to
// the UI layer.
func RunLogin(ctx context.Context, req LoginRequest, deps LoginDeps) (*sessionstore.User, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, deps.Errors.InvalidInput
	}

	if err := deps.CheckLimiter(req.Email); err != nil {
		return nil, err
	}

	account, err := deps.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	if account == nil {
		deps.RecordFailure(req.Email)
		return nil, deps.Errors.InvalidCredentials
	}

	ok, err := deps.VerifyPassword(req.Password, account.Password)
	if err != nil || !ok {
		// A malformed stored credential fails the same way a wrong
		// password does; nothing about the stored form may leak.
		deps.RecordFailure(req.Email)
		return nil, deps.Errors.InvalidCredentials
	}

	user := sessionstore.User{
		ID:    account.ID,
		Name:  account.Name,
		Email: account.Email,
	}
	if err := deps.SaveSession(ctx, user); err != nil {
		return nil, err
	}

	deps.ResetLimiter(req.Email)
	return &user, nil
}
