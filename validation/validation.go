package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Canonical form field names.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
)

// User-visible validation messages. These are contract: changing one
// changes what every form renders.
const (
	MsgNameRequired     = "Name is required"
	MsgNameTooShort     = "Name must be at least 2 characters"
	MsgEmailRequired    = "Email is required"
	MsgEmailIncomplete  = "Email address is incomplete"
	MsgPasswordRequired = "Password is required"
	MsgPasswordTooShort = "Password must be at least 6 characters"
	MsgConfirmRequired  = "Please confirm your password"
	MsgConfirmMismatch  = "Passwords do not match"
)

const (
	// MinNameLength is the minimum trimmed name length in characters.
	MinNameLength = 2
	// MinPasswordLength is the minimum password length in characters.
	MinPasswordLength = 6
)

// One-or-more non-whitespace-non-@ runs around '@' and '.'. Deliberately
// loose; it rejects incomplete addresses, not unusual ones.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Context carries cross-field state a rule may depend on. Only the
// confirm-password rule reads it.
type Context struct {
	// Password is the current value of the password field, compared
	// exactly against confirmPassword.
	Password string
}

// Errors maps a field name to its human-readable message. Absence of a
// key means the field is currently valid.
type Errors map[string]string

// Valid reports whether no field carries an error.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// Field applies the rule for a single field and returns its message, or
// the empty string when the value is valid. Unknown fields have no rule
// and are always valid.
func Field(field, value string, ctx Context) string {
	switch field {
	case FieldName:
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return MsgNameRequired
		}
		if utf8.RuneCountInString(trimmed) < MinNameLength {
			return MsgNameTooShort
		}
	case FieldEmail:
		if strings.TrimSpace(value) == "" {
			return MsgEmailRequired
		}
		if !emailPattern.MatchString(value) {
			return MsgEmailIncomplete
		}
	case FieldPassword:
		if value == "" {
			return MsgPasswordRequired
		}
		if utf8.RuneCountInString(value) < MinPasswordLength {
			return MsgPasswordTooShort
		}
	case FieldConfirmPassword:
		if value == "" {
			return MsgConfirmRequired
		}
		if value != ctx.Password {
			return MsgConfirmMismatch
		}
	}
	return ""
}

// All runs every applicable rule over the given field values and returns
// the full error mapping. It never short-circuits: all invalid fields are
// reported together, matching submit-time "touch all fields" semantics.
func All(fields map[string]string) Errors {
	ctx := Context{Password: fields[FieldPassword]}

	errs := Errors{}
	for field, value := range fields {
		if msg := Field(field, value, ctx); msg != "" {
			errs[field] = msg
		}
	}
	return errs
}

// EmailValid reports whether value passes the email field rule. The
// engine uses it for its server-side signup re-check.
func EmailValid(value string) bool {
	return Field(FieldEmail, value, Context{}) == ""
}

// PasswordValid reports whether value passes the password field rule.
func PasswordValid(value string) bool {
	return Field(FieldPassword, value, Context{}) == ""
}
