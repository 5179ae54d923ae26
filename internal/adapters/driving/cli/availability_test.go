package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/recap-cli/internal/core/services"
)

func TestAvailabilityCmd_Use(t *testing.T) {
	assert.Equal(t, "availability [file]", availabilityCmd.Use)
}

func TestAvailabilityCmd_ReportsArchivedRecords(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "availability", writePage(t, docketReport), "--url", docketURL)

	require.NoError(t, err)
	assert.Contains(t, out, "Case ID: 178502")
	assert.Contains(t, out, "Docket archived: /docket/178502/")
	assert.Contains(t, out, "04503837920  recap/04503837920.pdf")
}

func TestAvailabilityCmd_NoArchive(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	availabilityService = services.NewAvailabilityService(nil, resolverService)

	_, err := execute(t, "availability", writePage(t, docketReport), "--url", docketURL)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "archive not configured")
}
