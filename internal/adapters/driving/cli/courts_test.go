package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/recap-cli/internal/core/domain"
)

func TestCourtsCmd_SkipsWiring(t *testing.T) {
	assert.Equal(t, "true", courtsCmd.Annotations[skipWiring])
}

func TestCourtsCmd_SingleCourt(t *testing.T) {
	out, err := execute(t, "courts", "azb")

	require.NoError(t, err)
	assert.Contains(t, out, "CODE")
	assert.Regexp(t, `azb\s+Bankr\.D\.Ariz\.\s+arb\s+district`, out)
}

func TestCourtsCmd_Appellate(t *testing.T) {
	out, err := execute(t, "courts", "ca9")

	require.NoError(t, err)
	assert.Regexp(t, `ca9\s+9th-Cir\.\s+ca9\s+appellate`, out)
}

func TestCourtsCmd_All(t *testing.T) {
	out, err := execute(t, "courts")

	require.NoError(t, err)
	assert.Contains(t, out, "cand")
	assert.Contains(t, out, "nysb")
}

func TestCourtsCmd_Unknown(t *testing.T) {
	_, err := execute(t, "courts", "zzz")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
