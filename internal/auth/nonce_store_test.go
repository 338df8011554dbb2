package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNonceStoreTakeOnce(t *testing.T) {
	s := newNonceStore(time.Minute)
	nonce, err := s.Issue()
	require.NoError(t, err)
	require.Len(t, nonce, 32)
	require.True(t, s.Has(nonce))

	require.True(t, s.Take(nonce))
	require.False(t, s.Take(nonce))
	require.False(t, s.Has(nonce))
}

func TestNonceStoreExpires(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	s := newNonceStore(time.Minute)
	s.now = func() time.Time { return now }

	nonce, err := s.Issue()
	require.NoError(t, err)
	now = now.Add(2 * time.Minute)
	require.False(t, s.Has(nonce))
	require.False(t, s.Take(nonce))
}
