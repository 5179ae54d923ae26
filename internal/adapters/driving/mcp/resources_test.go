package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/recap-cli/internal/core/domain"
)

func readRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: uri}}
}

func TestExtractTabID(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "valid tab URI",
			uri:      "recap://tabs/tab-123",
			expected: "tab-123",
		},
		{
			name:     "invalid prefix",
			uri:      "file://tabs/tab-123",
			expected: "",
		},
		{
			name:     "nested path",
			uri:      "recap://tabs/tab-123/extra",
			expected: "",
		},
		{
			name:     "empty URI",
			uri:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractTabID(tt.uri))
		})
	}
}

func TestServer_handleCourtsResource(t *testing.T) {
	server, _ := setupServer(t, nil)

	result, err := server.handleCourtsResource(context.Background(), readRequest("recap://courts"))

	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	var courts []courtInfo
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &courts))
	assert.Contains(t, courts, courtInfo{Code: "azb", Abbreviation: "Bankr.D.Ariz.", ArchiveCode: "arb", Kind: "district"})
}

func TestServer_handleTabResources(t *testing.T) {
	ctx := context.Background()
	server, cache := setupServer(t, nil)

	result, err := server.handleTabsResource(ctx, readRequest("recap://tabs"))
	require.NoError(t, err)
	assert.Equal(t, "[]", result.Contents[0].Text)

	require.NoError(t, cache.Merge(ctx, "tab-1", domain.TabCachePatch{CaseID: domain.CaseIDPtr("178502")}))

	result, err = server.handleTabsResource(ctx, readRequest("recap://tabs"))
	require.NoError(t, err)
	assert.JSONEq(t, `["tab-1"]`, result.Contents[0].Text)

	result, err = server.handleTabResource(ctx, readRequest("recap://tabs/tab-1"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"caseId":"178502"}`, result.Contents[0].Text)
	assert.Equal(t, "application/json", result.Contents[0].MIMEType)
}

func TestServer_handleTabResource_NotFound(t *testing.T) {
	ctx := context.Background()
	server, _ := setupServer(t, nil)

	for _, uri := range []string{"recap://tabs/missing", "recap://tabs/", "recap://tabs/options"} {
		_, err := server.handleTabResource(ctx, readRequest(uri))
		assert.Error(t, err, uri)
	}
}
