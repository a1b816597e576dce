package goAuthLocal

import (
	"context"

	internalaudit "github.com/MrEthical07/goAuthLocal/internal/audit"
)

// Logout clears the persisted session slot and transitions to
// StateUnauthenticated. It is idempotent: logging out while already
// logged out succeeds. The only failure mode is a persistence I/O
// fault, reported as a failed [AuthResult] with the engine state left
// unchanged.
func (e *Engine) Logout(ctx context.Context) AuthResult {
	if !e.Initialized() {
		return failure(ErrEngineNotReady)
	}

	userID, email := "", ""
	if user := e.CurrentUser(); user != nil {
		userID, email = user.ID, user.Email
	}

	e.metricInc(MetricLogout)

	if err := e.flows.Logout(ctx); err != nil {
		e.metricInc(MetricStorageFault)
		e.emitAuth(ctx, internalaudit.TypeLogout, userID, email, err)
		return failure(err)
	}

	e.setState(StateUnauthenticated, nil)
	e.emitAuth(ctx, internalaudit.TypeLogout, userID, email, nil)
	return success()
}
