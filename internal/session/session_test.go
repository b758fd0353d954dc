package session

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EmptyAPIKey(t *testing.T) {
	_, err := New(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create model client")
}

func TestNew_OwnsStoreAndID(t *testing.T) {
	sess, err := New(context.Background(), "test-key")
	require.NoError(t, err)
	defer sess.Close() //nolint:errcheck

	assert.NotEqual(t, uuid.Nil, sess.ID())
	assert.NotNil(t, sess.Store())
	assert.Equal(t, 0, sess.Store().Len())
	assert.False(t, sess.CreatedAt().IsZero())
}

func TestManager_AcquireReusesSameKey(t *testing.T) {
	m := NewManager()
	defer m.Reset()

	first, err := m.Acquire(context.Background(), "key-a")
	require.NoError(t, err)

	second, err := m.Acquire(context.Background(), "key-a")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, first.ID(), second.ID())
}

func TestManager_AcquireRecreatesOnKeyChange(t *testing.T) {
	m := NewManager()
	defer m.Reset()

	first, err := m.Acquire(context.Background(), "key-a")
	require.NoError(t, err)

	second, err := m.Acquire(context.Background(), "key-b")
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.NotEqual(t, first.ID(), second.ID())
	assert.Same(t, second, m.Current())
}

func TestManager_AcquireFailureKeepsCurrent(t *testing.T) {
	m := NewManager()
	defer m.Reset()

	first, err := m.Acquire(context.Background(), "key-a")
	require.NoError(t, err)

	_, err = m.Acquire(context.Background(), "")
	require.Error(t, err)

	assert.Same(t, first, m.Current())
}

func TestManager_CurrentAndReset(t *testing.T) {
	m := NewManager()
	assert.Nil(t, m.Current())

	_, err := m.Acquire(context.Background(), "key-a")
	require.NoError(t, err)
	assert.NotNil(t, m.Current())

	m.Reset()
	assert.Nil(t, m.Current())
}
