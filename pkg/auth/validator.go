package auth

import (
	"crypto/subtle"
	"time"
)

// Principal is the authenticated identity produced by a successful token check.
// It lives for the duration of a single call and is never persisted.
type Principal struct {
	ClientID  string
	Scopes    []string
	ExpiresAt *time.Time
}

// Validator checks inbound bearer tokens against the single configured secret.
// It is read-only after construction and safe for concurrent use.
type Validator struct {
	token    string
	clientID string
}

// NewValidator creates a validator for the given shared secret. The clientID
// is the identifier stamped on every principal this validator produces.
func NewValidator(token, clientID string) *Validator {
	return &Validator{
		token:    token,
		clientID: clientID,
	}
}

// Validate compares a candidate token against the configured secret. On match
// it returns a principal with unrestricted scope and no expiry. A mismatch
// (including an empty candidate) returns ok=false; absence of a principal is
// the signal, not an error.
func (v *Validator) Validate(candidate string) (*Principal, bool) {
	if candidate == "" {
		return nil, false
	}

	// Use constant-time comparison to prevent timing attacks
	if subtle.ConstantTimeCompare([]byte(candidate), []byte(v.token)) != 1 {
		return nil, false
	}

	return &Principal{
		ClientID:  v.clientID,
		Scopes:    []string{"*"},
		ExpiresAt: nil,
	}, true
}
