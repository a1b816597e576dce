package flows

import (
	"context"

	"github.com/MrEthical07/goAuthLocal/internal/sessionstore"
)

// Deps groups all per-flow dependency wiring.
type Deps struct {
	Login   LoginDeps
	Signup  SignupDeps
	Logout  LogoutDeps
	Restore RestoreDeps
}

// Service is the centralized flow runner built once by the root engine.
type Service struct {
	deps Deps
}

// New returns a flow service with immutable dependency wiring.
func New(deps Deps) Service {
	return Service{deps: deps}
}

func (s Service) Login(ctx context.Context, req LoginRequest) (*sessionstore.User, error) {
	return RunLogin(ctx, req, s.deps.Login)
}

func (s Service) Signup(ctx context.Context, req SignupRequest) (*sessionstore.User, error) {
	return RunSignup(ctx, req, s.deps.Signup)
}

func (s Service) Logout(ctx context.Context) error {
	return RunLogout(ctx, s.deps.Logout)
}

func (s Service) Restore(ctx context.Context) (*sessionstore.User, error) {
	return RunRestore(ctx, s.deps.Restore)
}
