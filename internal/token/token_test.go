package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_IssueAndVerify(t *testing.T) {
	m := NewManager("secret", time.Hour)

	signed, err := m.Issue("jane@example.com")
	require.NoError(t, err)

	email, err := m.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", email)
}

func TestManager_ExpiredToken(t *testing.T) {
	m := NewManager("secret", -time.Minute)

	signed, err := m.Issue("jane@example.com")
	require.NoError(t, err)

	_, err = m.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_WrongSecret(t *testing.T) {
	issuer := NewManager("secret", time.Hour)
	verifier := NewManager("other-secret", time.Hour)

	signed, err := issuer.Issue("jane@example.com")
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_Garbage(t *testing.T) {
	m := NewManager("secret", time.Hour)

	_, err := m.Verify("definitely.not.a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
