package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetMiss(t *testing.T) {
	m := NewMemory()

	_, err := m.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemorySetGetDelete(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "k", []byte("v"), 0))

	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	require.NoError(t, m.Delete(ctx, "k"))

	_, err = m.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryTTLExpiry(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "short", []byte("v"), 10*time.Millisecond))
	require.NoError(t, m.Set(ctx, "forever", []byte("v"), 0))

	time.Sleep(20 * time.Millisecond)

	_, err := m.Get(ctx, "short")
	assert.ErrorIs(t, err, ErrMiss)

	_, err = m.Get(ctx, "forever")
	assert.NoError(t, err)
}

func TestMemoryDeleteAbsentKey(t *testing.T) {
	m := NewMemory()

	assert.NoError(t, m.Delete(context.Background(), "missing"))
}
