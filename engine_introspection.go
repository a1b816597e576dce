package goAuthLocal

import "context"

// Config returns a copy of the engine's effective configuration,
// including defaults the builder filled in.
func (e *Engine) Config() Config {
	return cloneConfig(e.config)
}

// AccountCount reports the number of stored accounts. Storage faults
// propagate as errors; this is an introspection API, not an auth
// operation, so it does not use the [AuthResult] contract.
func (e *Engine) AccountCount(ctx context.Context) (int, error) {
	if !e.Initialized() {
		return 0, ErrEngineNotReady
	}
	return e.accounts.Count(ctx)
}
