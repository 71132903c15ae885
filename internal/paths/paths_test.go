package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfigDir_FlagWins(t *testing.T) {
	t.Setenv(EnvConfigDir, "/tmp/env-config")

	dir, err := ResolveConfigDir("flagged")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(dir))
	assert.Equal(t, "flagged", filepath.Base(dir))
}

func TestResolveConfigDir_EnvFallback(t *testing.T) {
	t.Setenv(EnvConfigDir, "/tmp/env-config")

	dir, err := ResolveConfigDir("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/env-config", dir)
}

func TestResolveDataDir_Precedence(t *testing.T) {
	t.Setenv(EnvDataDir, "/tmp/env-data")

	dir, err := ResolveDataDir("/tmp/flag-data", "/tmp/cfg-data")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/flag-data", dir)

	dir, err = ResolveDataDir("", "/tmp/cfg-data")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/cfg-data", dir)

	dir, err = ResolveDataDir("", "")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/env-data", dir)
}

func TestResolveDataDir_DefaultIsCWDRelative(t *testing.T) {
	t.Setenv(EnvDataDir, "")

	dir, err := ResolveDataDir("", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultDataDirName, filepath.Base(dir))
}
