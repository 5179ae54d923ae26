package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCmd_Use(t *testing.T) {
	assert.Equal(t, "resolve [file]", resolveCmd.Use)
}

func TestResolveCmd_PrintsIdentifiers(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "resolve", writePage(t, attachmentMenu), "--url", docURL, "--tab", "tab-1")

	require.NoError(t, err)
	assert.Contains(t, out, "Tab: tab-1")
	assert.Contains(t, out, "Court: dcd")
	assert.Contains(t, out, "Case ID: 178502")
	assert.Contains(t, out, "Document ID: 04503837920")
	assert.Contains(t, out, "Docket Number: (unknown)")
}

func TestResolveCmd_SharesTabState(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "resolve", writePage(t, docketReport), "--url", docketURL, "--tab", "tab-2")
	require.NoError(t, err)

	// The document page alone names no case.
	out, err := execute(t, "resolve", writePage(t, `<input type="submit" value="View Document">`),
		"--url", docURL, "--tab", "tab-2")

	require.NoError(t, err)
	assert.Contains(t, out, "Case ID: 178502")
}

func TestResolveCmd_GeneratesTabID(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "resolve", writePage(t, docketReport), "--url", docketURL, "--json")

	require.NoError(t, err)
	assert.Regexp(t, `"tab": "[0-9a-f-]{36}"`, out)
	assert.Contains(t, out, `"CaseID": "178502"`)
}

func TestResolveCmd_UntrustedOrigin(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "resolve", writePage(t, docketReport), "--url", "https://example.com/doc1/1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "untrusted")
}

func TestResolveCmd_NotConfigured(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	resolverService = nil

	_, err := execute(t, "resolve", writePage(t, docketReport), "--url", docketURL)

	assert.ErrorIs(t, err, errNotConfigured)
}
