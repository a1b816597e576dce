package goAuthLocal

import (
	"context"
	"errors"

	internalaudit "github.com/MrEthical07/goAuthLocal/internal/audit"
	"github.com/MrEthical07/goAuthLocal/internal/flows"
)

// Login authenticates against the stored accounts by case-insensitive
// email and credential match. On success the derived session user is
// persisted, the engine transitions to StateAuthenticated, and
// subscribers are notified. Every failure — missing fields, unknown
// credentials, cooldown, storage fault — is reported through the
// returned [AuthResult]; the engine state is left untouched.
func (e *Engine) Login(ctx context.Context, req LoginRequest) AuthResult {
	if !e.Initialized() {
		return failure(ErrEngineNotReady)
	}

	user, err := e.flows.Login(ctx, flows.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		e.metricInc(MetricLoginFailure)
		if errors.Is(err, ErrLoginRateLimited) {
			e.metricInc(MetricLoginRateLimited)
		}
		if isStorageFault(err) {
			e.metricInc(MetricStorageFault)
		}
		e.emitAuth(ctx, internalaudit.TypeLoginFailure, "", req.Email, err)
		return failure(err)
	}

	su := SessionUser(*user)
	e.setState(StateAuthenticated, &su)

	e.metricInc(MetricLoginSuccess)
	e.emitAuth(ctx, internalaudit.TypeLoginSuccess, su.ID, su.Email, nil)
	return success()
}
