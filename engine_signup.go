package goAuthLocal

import (
	"context"
	"errors"

	internalaudit "github.com/MrEthical07/goAuthLocal/internal/audit"
	"github.com/MrEthical07/goAuthLocal/internal/flows"
)

// Signup registers a new account and authenticates it in the same step;
// there is no registered-but-not-logged-in state. Email format and
// password length are re-checked engine-side even when the UI already
// validated them. A taken email fails with the duplicate-email message
// without storing anything.
func (e *Engine) Signup(ctx context.Context, req SignupRequest) AuthResult {
	if !e.Initialized() {
		return failure(ErrEngineNotReady)
	}

	user, err := e.flows.Signup(ctx, flows.SignupRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicateEmail):
			e.metricInc(MetricSignupDuplicate)
		default:
			e.metricInc(MetricSignupFailure)
		}
		if isStorageFault(err) {
			e.metricInc(MetricStorageFault)
		}
		e.emitAuth(ctx, internalaudit.TypeSignupFailure, "", req.Email, err)
		return failure(err)
	}

	su := SessionUser(*user)
	e.setState(StateAuthenticated, &su)

	e.metricInc(MetricSignupSuccess)
	e.emitAuth(ctx, internalaudit.TypeSignupSuccess, su.ID, su.Email, nil)
	return success()
}
