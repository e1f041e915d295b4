package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Validate_Match(t *testing.T) {
	v := NewValidator("secret123", "careerintel-client")

	principal, ok := v.Validate("secret123")
	require.True(t, ok)
	require.NotNil(t, principal)

	assert.Equal(t, "careerintel-client", principal.ClientID)
	assert.Equal(t, []string{"*"}, principal.Scopes)
	assert.Nil(t, principal.ExpiresAt)
}

func TestValidator_Validate_Mismatch(t *testing.T) {
	v := NewValidator("secret123", "careerintel-client")

	tests := []struct {
		name      string
		candidate string
	}{
		{name: "wrong token", candidate: "wrong"},
		{name: "empty token", candidate: ""},
		{name: "case differs", candidate: "Secret123"},
		{name: "leading whitespace", candidate: " secret123"},
		{name: "trailing whitespace", candidate: "secret123 "},
		{name: "prefix of secret", candidate: "secret12"},
		{name: "secret plus suffix", candidate: "secret1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			principal, ok := v.Validate(tt.candidate)
			assert.False(t, ok)
			assert.Nil(t, principal)
		})
	}
}
