package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSignAndVerifyRoundtrip(t *testing.T) {
	t.Parallel()

	kp, err := NewEphemeralKeypair("test-key")
	require.NoError(t, err)
	require.Equal(t, "EdDSA", kp.Alg())

	claims := NewAccessClaims(
		"user-id", "alice", "homeowner",
		time.Minute, "hoadues-test", time.Now().UTC(),
	)

	raw, err := kp.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	got, err := kp.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "user-id", got.Subject)
	require.Equal(t, "alice", got.Username)
	require.Equal(t, "homeowner", got.Role)
	require.NoError(t, got.ValidateIssuer("hoadues-test"))
	require.NoError(t, got.ValidateExpiry())
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	t.Parallel()

	a, err := NewEphemeralKeypair("a")
	require.NoError(t, err)
	b, err := NewEphemeralKeypair("b")
	require.NoError(t, err)

	raw, err := a.Sign(NewAccessClaims("sub", "u", "admin", time.Minute, "iss", time.Now().UTC()))
	require.NoError(t, err)

	_, err = b.Verify(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpired(t *testing.T) {
	t.Parallel()

	kp, err := NewEphemeralKeypair("k")
	require.NoError(t, err)

	past := time.Now().UTC().Add(-time.Hour)
	raw, err := kp.Sign(NewAccessClaims("sub", "u", "admin", time.Minute, "iss", past))
	require.NoError(t, err)

	_, err = kp.Verify(raw)
	require.ErrorIs(t, err, ErrExpired)
}

func TestValidateIssuer(t *testing.T) {
	t.Parallel()

	c := NewAccessClaims("s", "u", "admin", time.Minute, "right", time.Now().UTC())
	require.NoError(t, c.ValidateIssuer("right"))
	require.NoError(t, c.ValidateIssuer("")) // nothing to enforce
	require.ErrorIs(t, c.ValidateIssuer("wrong"), ErrIssuer)
}
