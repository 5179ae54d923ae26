package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPCmd_HasServe(t *testing.T) {
	names := make([]string, 0)
	for _, cmd := range mcpCmd.Commands() {
		names = append(names, cmd.Name())
	}
	assert.Contains(t, names, "serve")

	flag := mcpServeCmd.Flags().Lookup("port")
	require.NotNil(t, flag)
	assert.Equal(t, "p", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)
}

func TestNewMCPServer(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	server, err := newMCPServer()

	require.NoError(t, err)
	assert.NotNil(t, server)
}

func TestNewMCPServer_NotConfigured(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	classifierService = nil

	_, err := newMCPServer()

	assert.Error(t, err)
}
