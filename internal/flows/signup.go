package flows

import (
	"context"

	"github.com/MrEthical07/goAuthLocal/internal/accounts"
	"github.com/MrEthical07/goAuthLocal/internal/sessionstore"
)

// SignupRequest carries raw signup input.
type SignupRequest struct {
	Name     string
	Email    string
	Password string
}

// SignupErrors injects the root package's sentinels into the flow.
type SignupErrors struct {
	InvalidInput   error
	EmailFormat    error
	PasswordLength error
}

// SignupDeps captures signup flow dependencies.
type SignupDeps struct {
	EmailValid    func(email string) bool
	PasswordValid func(password string) bool

	NewID        func() string
	HashPassword func(password string) (string, error)
	Insert       func(ctx context.Context, rec accounts.Record) error
	SaveSession  func(ctx context.Context, user sessionstore.User) error

	Errors SignupErrors
}

// RunSignup registers a new account and authenticates it in the same
// step; there is no registered-but-not-logged-in state. Email format and
// password length are re-checked here even though the UI already
// validated them: a caller can bypass the form layer.
func RunSignup(ctx context.Context, req SignupRequest, deps SignupDeps) (*sessionstore.User, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, deps.Errors.InvalidInput
	}

	if !deps.EmailValid(req.Email) {
		return nil, deps.Errors.EmailFormat
	}
	if !deps.PasswordValid(req.Password) {
		return nil, deps.Errors.PasswordLength
	}

	stored, err := deps.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	rec := accounts.Record{
		ID:       deps.NewID(),
		Name:     req.Name,
		Email:    req.Email,
		Password: stored,
	}

	// Insert enforces email uniqueness; a duplicate surfaces as
	// accounts.ErrDuplicateEmail.
	if err := deps.Insert(ctx, rec); err != nil {
		return nil, err
	}

	user := sessionstore.User{
		ID:    rec.ID,
		Name:  rec.Name,
		Email: rec.Email,
	}
	if err := deps.SaveSession(ctx, user); err != nil {
		return nil, err
	}

	return &user, nil
}
