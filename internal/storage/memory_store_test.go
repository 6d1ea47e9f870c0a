package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_CRUD(t *testing.T) {
	s := NewMemoryStore(0)

	_, ok, err := s.Get("tasks")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set("tasks", "[]"))
	require.NoError(t, s.Set("darkMode", "true"))
	v, ok, err := s.Get("tasks")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", v)

	keys, err := s.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"darkMode", "tasks"}, keys)

	require.NoError(t, s.Remove("tasks"))
	require.NoError(t, s.Remove("tasks"))
	_, ok, _ = s.Get("tasks")
	assert.False(t, ok)
}

func TestMemoryStore_Quota(t *testing.T) {
	// "tasks" + "[1]" = 8 bytes
	s := NewMemoryStore(10)

	require.NoError(t, s.Set("tasks", "[1]"))
	assert.ErrorIs(t, s.Set("countdowns", "[]"), ErrQuotaExceeded)

	// replacing a value only counts the difference
	require.NoError(t, s.Set("tasks", "[12]"))
	assert.ErrorIs(t, s.Set("tasks", "[1234]"), ErrQuotaExceeded)

	v, _, _ := s.Get("tasks")
	assert.Equal(t, "[12]", v)
}

func TestMemoryStore_Closed(t *testing.T) {
	s := NewMemoryStore(0)
	require.NoError(t, s.Close())

	_, _, err := s.Get("tasks")
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, s.Set("tasks", "[]"), ErrClosed)
	assert.ErrorIs(t, s.Remove("tasks"), ErrClosed)
	_, err = s.Keys()
	assert.ErrorIs(t, err, ErrClosed)
}
