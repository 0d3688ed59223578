package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/elovate/library-api/pkg/auth"
)

var secret = []byte("test-secret")

func TestToken_RoundTrip(t *testing.T) {
	t.Parallel()
	token, err := auth.NewToken(secret, 42, time.Hour)
	require.NoError(t, err)

	userID, err := auth.ParseToken(secret, token)
	require.NoError(t, err)
	require.Equal(t, int64(42), userID)
}

func TestToken_WrongSecret(t *testing.T) {
	t.Parallel()
	token, err := auth.NewToken([]byte("other-secret"), 42, time.Hour)
	require.NoError(t, err)

	_, err = auth.ParseToken(secret, token)
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestToken_Expired(t *testing.T) {
	t.Parallel()
	token, err := auth.NewToken(secret, 42, -time.Minute)
	require.NoError(t, err)

	_, err = auth.ParseToken(secret, token)
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestToken_Garbage(t *testing.T) {
	t.Parallel()
	_, err := auth.ParseToken(secret, "not.a.token")
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}
