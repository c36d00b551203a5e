package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hiresphere/hiresphere/internal/common"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager([]byte("test-secret"), time.Hour)

	tok, err := m.Mint("acct-1")
	require.NoError(t, err)

	id, err := m.AccountID(tok)
	require.NoError(t, err)
	require.Equal(t, "acct-1", id)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	m1 := NewTokenManager([]byte("secret-one"), time.Hour)
	m2 := NewTokenManager([]byte("secret-two"), time.Hour)

	tok, err := m1.Mint("acct-1")
	require.NoError(t, err)

	_, err = m2.AccountID(tok)
	require.ErrorIs(t, err, common.ErrNotAuthenticated)
}

func TestTokenManager_Expired(t *testing.T) {
	m := NewTokenManager([]byte("test-secret"), -time.Minute)

	tok, err := m.Mint("acct-1")
	require.NoError(t, err)

	_, err = m.AccountID(tok)
	require.ErrorIs(t, err, common.ErrNotAuthenticated)
}

func TestTokenManager_Garbage(t *testing.T) {
	m := NewTokenManager([]byte("test-secret"), time.Hour)

	_, err := m.AccountID("not-a-token")
	require.ErrorIs(t, err, common.ErrNotAuthenticated)
}
