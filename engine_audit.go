package goAuthLocal

import (
	"context"
	"time"

	internalaudit "github.com/MrEthical07/goAuthLocal/internal/audit"
)

func (e *Engine) emitAuth(ctx context.Context, eventType, userID, email string, opErr error) {
	if e.audit == nil {
		return
	}

	event := internalaudit.Event{
		Timestamp: time.Now().UTC(),
		EventType: eventType,
		UserID:    userID,
		Email:     email,
		IP:        clientIPFromContext(ctx),
		DeviceID:  deviceIDFromContext(ctx),
		Success:   opErr == nil,
	}
	if opErr != nil {
		event.Error = opErr.Error()
	}

	e.audit.Emit(ctx, event)
}

func (e *Engine) emitRestore(ctx context.Context, user *SessionUser, opErr error) {
	if e.audit == nil {
		return
	}

	eventType := internalaudit.TypeRestoreSuccess
	userID, email := "", ""
	if user != nil {
		userID, email = user.ID, user.Email
	}
	if opErr != nil {
		eventType = internalaudit.TypeRestoreFailure
	}

	e.emitAuth(ctx, eventType, userID, email, opErr)
}
