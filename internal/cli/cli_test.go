package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	config, err := Parse(nil, []string{"PATH=/usr/bin"})

	require.NoError(t, err)
	assert.Equal(t, "text", config.LogFormat)
	assert.Equal(t, "info", config.LogLevel)
	assert.Empty(t, config.ConfigPath)
	assert.Empty(t, config.BaseDir)
	assert.False(t, config.DryRun)
	assert.Empty(t, config.ForwardArgs)
}

func TestParse_ForwardArgsStayVerbatim(t *testing.T) {
	t.Parallel()

	// Even flag-looking arguments belong to the delegate, untouched and
	// in order.
	args := []string{"--log-level", "debug", "-h", "module name with spaces", ""}

	config, err := Parse(args, []string{"PATH=/usr/bin"})

	require.NoError(t, err)
	assert.Equal(t, args, config.ForwardArgs)
}

func TestParse_SettingsFromEnvironment(t *testing.T) {
	t.Parallel()

	environ := []string{
		"MODLAUNCH_LOG_LEVEL=DEBUG",
		"MODLAUNCH_LOG_FORMAT=JSON",
		"MODLAUNCH_CONFIG=/etc/modlaunch.hcl",
		"MODLAUNCH_BASE_DIR=/opt/ard",
		"MODLAUNCH_DRY_RUN=1",
	}

	config, err := Parse([]string{"x"}, environ)

	require.NoError(t, err)
	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, "json", config.LogFormat)
	assert.Equal(t, "/etc/modlaunch.hcl", config.ConfigPath)
	assert.Equal(t, "/opt/ard", config.BaseDir)
	assert.True(t, config.DryRun)
	assert.Equal(t, environ, config.Environ)
}

func TestParse_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	_, err := Parse(nil, []string{"MODLAUNCH_LOG_LEVEL=loud"})

	require.Error(t, err)
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, exitErr.Message, "MODLAUNCH_LOG_LEVEL")
}

func TestParse_InvalidLogFormat(t *testing.T) {
	t.Parallel()

	_, err := Parse(nil, []string{"MODLAUNCH_LOG_FORMAT=xml"})

	require.Error(t, err)
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, exitErr.Message, "MODLAUNCH_LOG_FORMAT")
}

func TestParse_EmptySettingFallsBackToDefault(t *testing.T) {
	t.Parallel()

	config, err := Parse(nil, []string{"MODLAUNCH_LOG_LEVEL=", "MODLAUNCH_LOG_FORMAT="})

	require.NoError(t, err)
	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, "text", config.LogFormat)
}
