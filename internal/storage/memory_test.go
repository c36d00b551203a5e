package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	value, err := s.Get(ctx, SlotAccounts)
	require.NoError(t, err)
	require.Nil(t, value)

	require.NoError(t, s.Set(ctx, SlotAccounts, []byte("ledger")))

	value, err = s.Get(ctx, SlotAccounts)
	require.NoError(t, err)
	require.Equal(t, []byte("ledger"), value)

	require.NoError(t, s.Delete(ctx, SlotAccounts))

	value, err = s.Get(ctx, SlotAccounts)
	require.NoError(t, err)
	require.Nil(t, value)
}

func TestMemoryStore_SetMany(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.SetMany(ctx, map[string][]byte{
		SlotJobs:         []byte("jobs"),
		SlotApplications: []byte("apps"),
	}))

	value, err := s.Get(ctx, SlotJobs)
	require.NoError(t, err)
	require.Equal(t, []byte("jobs"), value)

	value, err = s.Get(ctx, SlotApplications)
	require.NoError(t, err)
	require.Equal(t, []byte("apps"), value)
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	in := []byte("original")
	require.NoError(t, s.Set(ctx, SlotJobs, in))
	in[0] = 'X'

	out, err := s.Get(ctx, SlotJobs)
	require.NoError(t, err)
	require.Equal(t, []byte("original"), out)

	out[0] = 'Y'
	again, err := s.Get(ctx, SlotJobs)
	require.NoError(t, err)
	require.Equal(t, []byte("original"), again)
}
