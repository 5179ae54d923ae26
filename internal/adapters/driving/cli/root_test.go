package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "recap", rootCmd.Use)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0)
	for _, cmd := range rootCmd.Commands() {
		names = append(names, cmd.Name())
	}

	for _, want := range []string{"classify", "resolve", "cache", "watch", "courts", "availability", "settings", "mcp", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	for _, name := range []string{"verbose", "config", "data-dir", "in-memory"} {
		require.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
	assert.Equal(t, "v", rootCmd.PersistentFlags().Lookup("verbose").Shorthand)
}

func TestSetServices_SkipsWiring(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	assert.True(t, servicesReady)
	assert.NotNil(t, classifierService)
	assert.NotNil(t, tabCacheService)
}

func TestSetVersion(t *testing.T) {
	original := version
	defer func() { version = original }()

	SetVersion("1.2.3")

	assert.Equal(t, "1.2.3", version)
}

func TestWireServices_InMemory(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	oldConfig, oldInMemory := configDir, inMemory
	configDir, inMemory = t.TempDir(), true
	defer func() { configDir, inMemory = oldConfig, oldInMemory }()

	require.NoError(t, wireServices())

	assert.NotNil(t, resolverService)
	assert.NotNil(t, availabilityService)
	assert.NoError(t, closeServices())
	closeServices = nil
}

func TestWireServices_SQLite(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	oldConfig, oldData := configDir, dataDir
	configDir, dataDir = t.TempDir(), t.TempDir()
	defer func() { configDir, dataDir = oldConfig, oldData }()

	require.NoError(t, wireServices())

	assert.NotNil(t, tabCacheService)
	require.NotNil(t, closeServices)
	assert.NoError(t, closeServices())
	closeServices = nil
}
