package cli

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/recap-cli/internal/core/domain"
	"github.com/custodia-labs/recap-cli/internal/core/services"
)

func withVersion(t *testing.T, v string) {
	t.Helper()
	original := version
	SetVersion(v)
	t.Cleanup(func() {
		version = original
		versionVerbose = false
	})
}

func TestVersionCmd_PrintsVersion(t *testing.T) {
	for _, v := range []string{"dev", "1.4.0"} {
		t.Run(v, func(t *testing.T) {
			withVersion(t, v)

			out, err := execute(t, "version")

			require.NoError(t, err)
			assert.Equal(t, "recap version "+v+"\n", out)
		})
	}
}

func TestVersionCmd_Details(t *testing.T) {
	withVersion(t, "1.4.0")

	out, err := execute(t, "version", "--details")

	require.NoError(t, err)
	assert.Contains(t, out, fmt.Sprintf("Page kinds: %d", len(domain.AllPageKinds())))
	assert.Contains(t, out, fmt.Sprintf("Classification rules: %d", len(services.DefaultRules())))
	assert.Contains(t, out, fmt.Sprintf("(%d appellate)", len(domain.AppellateCourts())))
}

func TestVersionCmd_SkipsWiring(t *testing.T) {
	assert.Equal(t, "true", versionCmd.Annotations[skipWiring])
}
