package goAuthLocal

import (
	"errors"

	"github.com/MrEthical07/goAuthLocal/internal/accounts"
	"github.com/MrEthical07/goAuthLocal/internal/rate"
	"github.com/MrEthical07/goAuthLocal/validation"
)

var (
	// ErrInvalidInput reports a missing required field at the coarse
	// pre-check, distinct from field validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidEmailFormat reports an email that fails the format rule
	// during the signup server-side re-check.
	ErrInvalidEmailFormat = errors.New("invalid email format")
	// ErrPasswordTooShort reports a password below the minimum length
	// during the signup server-side re-check.
	ErrPasswordTooShort = errors.New("password too short")
	// ErrInvalidCredentials reports a failed login lookup.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrDuplicateEmail reports a signup uniqueness violation.
	ErrDuplicateEmail = accounts.ErrDuplicateEmail
	// ErrStorageFault names the I/O failure class from the persistence
	// collaborator. Store errors carry their own wrapped cause; any error
	// that is not one of the other sentinels is reported with this
	// class's message.
	ErrStorageFault = errors.New("storage fault")
	// ErrLoginRateLimited reports that the failed-login cooldown is
	// active for an email.
	ErrLoginRateLimited = rate.ErrRateLimited
	// ErrEngineNotReady reports a mutating call made before startup
	// restore resolved.
	ErrEngineNotReady = errors.New("engine not initialized")
	// ErrBuilderUsed reports a second Build call on the same Builder.
	ErrBuilderUsed = errors.New("builder already used")
)

// User-visible messages surfaced through AuthResult. Validation-shaped
// failures reuse the validation package's exact wording so UI and engine
// never disagree.
const (
	msgInvalidInput       = "All fields are required"
	msgInvalidCredentials = "Invalid email or password"
	msgDuplicateEmail     = "User with this email already exists"
	msgRateLimited        = "Too many failed attempts, try again later"
	msgNotReady           = "Authentication is still starting up"
	msgStorage            = "Could not access local storage"
)

// failure converts an internal error into the failed [AuthResult] for it.
// Unrecognized errors are treated as storage faults: everything else the
// flows can produce is a named sentinel.
func failure(err error) AuthResult {
	return AuthResult{Success: false, Error: errorMessage(err)}
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return msgInvalidInput
	case errors.Is(err, ErrInvalidEmailFormat):
		return validation.MsgEmailIncomplete
	case errors.Is(err, ErrPasswordTooShort):
		return validation.MsgPasswordTooShort
	case errors.Is(err, ErrInvalidCredentials):
		return msgInvalidCredentials
	case errors.Is(err, ErrDuplicateEmail):
		return msgDuplicateEmail
	case errors.Is(err, ErrLoginRateLimited):
		return msgRateLimited
	case errors.Is(err, ErrEngineNotReady):
		return msgNotReady
	default:
		return msgStorage
	}
}

func success() AuthResult {
	return AuthResult{Success: true}
}

// isStorageFault reports whether err is anything other than a named
// auth-domain sentinel, i.e. a persistence I/O failure.
func isStorageFault(err error) bool {
	for _, sentinel := range []error{
		ErrInvalidInput,
		ErrInvalidEmailFormat,
		ErrPasswordTooShort,
		ErrInvalidCredentials,
		ErrDuplicateEmail,
		ErrLoginRateLimited,
		ErrEngineNotReady,
	} {
		if errors.Is(err, sentinel) {
			return false
		}
	}
	return true
}
