package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/name-picker/internal/config"
	"github.com/KirkDiggler/name-picker/internal/errors"
)

func TestLoadSettingsDefaults(t *testing.T) {
	settings, err := config.LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, "config.json", settings.Config)
	assert.Equal(t, config.HistoryMemory, settings.HistoryBackend)
	assert.Equal(t, config.DefaultInstancePort, settings.InstancePort)
	assert.Equal(t, 50051, settings.GRPCPort)
	assert.Equal(t, "pcg", settings.RandomSource)
}

func TestLoadSettingsFromEnv(t *testing.T) {
	t.Setenv("PICKER_CONFIG", "roster.yaml")
	t.Setenv("PICKER_HISTORY_BACKEND", "sqlite")
	t.Setenv("PICKER_SQLITE_PATH", "/tmp/history.db")
	t.Setenv("PICKER_INSTANCE_PORT", "30000")
	t.Setenv("PICKER_RANDOM_SOURCE", "dice")

	settings, err := config.LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, "roster.yaml", settings.Config)
	assert.Equal(t, config.HistorySQLite, settings.HistoryBackend)
	assert.Equal(t, "/tmp/history.db", settings.SQLitePath)
	assert.Equal(t, 30000, settings.InstancePort)
	assert.Equal(t, "dice", settings.RandomSource)
}

func TestLoadSettingsRejectsBadValues(t *testing.T) {
	t.Setenv("PICKER_HISTORY_BACKEND", "postgres")
	t.Setenv("PICKER_GRPC_PORT", "70000")

	_, err := config.LoadSettings()
	require.Error(t, err)

	fields := errors.ValidationErrors(err)
	assert.Contains(t, fields, "HistoryBackend")
	assert.Contains(t, fields, "GRPCPort")
}

func TestLoadSettingsRejectsUnparsableNumbers(t *testing.T) {
	t.Setenv("PICKER_GRPC_PORT", "not-a-port")

	_, err := config.LoadSettings()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}
