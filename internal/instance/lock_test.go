package instance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/name-picker/internal/errors"
	"github.com/KirkDiggler/name-picker/internal/instance"
)

func TestSecondAcquireFails(t *testing.T) {
	first, err := instance.Acquire(0)
	require.NoError(t, err)
	defer func() { _ = first.Release() }()

	_, err = instance.Acquire(first.Port())
	require.Error(t, err)
	assert.True(t, errors.IsFailedPrecondition(err))
}

func TestReleaseFreesPort(t *testing.T) {
	first, err := instance.Acquire(0)
	require.NoError(t, err)
	port := first.Port()
	require.NoError(t, first.Release())
	require.NoError(t, first.Release())

	second, err := instance.Acquire(port)
	require.NoError(t, err)
	assert.Equal(t, port, second.Port())
	assert.NoError(t, second.Release())
}

func TestAcquireRejectsBadPort(t *testing.T) {
	_, err := instance.Acquire(70000)
	assert.True(t, errors.IsInvalidArgument(err))
}
