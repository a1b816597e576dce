package flows

import (
	"context"

	"github.com/MrEthical07/goAuthLocal/internal/sessionstore"
)

// RestoreDeps captures startup-restore flow dependencies.
type RestoreDeps struct {
	LoadSession func(ctx context.Context) (*sessionstore.User, error)
}

// RunRestore loads the persisted session user. A nil user with a nil
// error means no session; an error means the persistence collaborator
// itself failed, which callers degrade to logged-out.
func RunRestore(ctx context.Context, deps RestoreDeps) (*sessionstore.User, error) {
	return deps.LoadSession(ctx)
}
