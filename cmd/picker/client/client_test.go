package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/name-picker/internal/entities"
	"github.com/KirkDiggler/name-picker/internal/errors"
)

func TestParseKindArg(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		expected entities.Kind
	}{
		{name: "defaults to names", expected: entities.KindPersonal},
		{name: "names", args: []string{"names"}, expected: entities.KindPersonal},
		{name: "groups", args: []string{"Groups"}, expected: entities.KindGroup},
		{name: "wire name", args: []string{"group"}, expected: entities.KindGroup},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			kind, err := parseKindArg(tc.args)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, kind)
		})
	}

	_, err := parseKindArg([]string{"tables"})
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestHistoryKindDefaultsToEveryRoster(t *testing.T) {
	kind, err := historyKind(nil)
	require.NoError(t, err)
	assert.Empty(t, kind)
}

func TestParseToggle(t *testing.T) {
	for _, arg := range []string{"on", "ON", "true", "yes", "1"} {
		enabled, err := parseToggle(arg)
		require.NoError(t, err)
		assert.True(t, enabled, arg)
	}
	for _, arg := range []string{"off", "false", "no", "0"} {
		enabled, err := parseToggle(arg)
		require.NoError(t, err)
		assert.False(t, enabled, arg)
	}

	_, err := parseToggle("maybe")
	assert.True(t, errors.IsInvalidArgument(err))
}
