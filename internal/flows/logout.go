package flows

import "context"

// LogoutDeps captures logout flow dependencies.
type LogoutDeps struct {
	ClearSession func(ctx context.Context) error
}

// RunLogout clears the persisted session slot. It is idempotent:
// clearing an absent slot succeeds.
func RunLogout(ctx context.Context, deps LogoutDeps) error {
	return deps.ClearSession(ctx)
}
