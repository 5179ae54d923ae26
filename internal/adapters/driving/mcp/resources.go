package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/recap-cli/internal/core/domain"
)

const (
	// URIScheme is the custom URI scheme for recap resources.
	uriScheme = "recap://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "courts",
		Name:        "courts",
		Description: "Known court website codes with abbreviation, archive code and rule family",
		MIMEType:    "application/json",
	}, s.handleCourtsResource)

	if s.ports.TabCache == nil {
		return
	}

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "tabs",
		Name:        "tabs",
		Description: "Tabs with cached identifier state",
		MIMEType:    "application/json",
	}, s.handleTabsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "tabs/{tabId}",
		Name:        "tab",
		Description: "Identifier state learned by one tab",
		MIMEType:    "application/json",
	}, s.handleTabResource)
}

type courtInfo struct {
	Code         string `json:"code"`
	Abbreviation string `json:"abbreviation"`
	ArchiveCode  string `json:"archive_code"`
	Kind         string `json:"kind"`
}

// handleCourtsResource returns the static court table.
func (s *Server) handleCourtsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	courts := domain.KnownCourts()
	infos := make([]courtInfo, len(courts))
	for i, c := range courts {
		abbrev, _ := domain.CourtAbbreviation(c)
		infos[i] = courtInfo{
			Code:         string(c),
			Abbreviation: abbrev,
			ArchiveCode:  domain.ConvertToArchiveCourt(c),
			Kind:         string(domain.KindOf(c)),
		}
	}
	return jsonResult(req.Params.URI, infos)
}

// handleTabsResource lists the tabs with cached state.
func (s *Server) handleTabsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	tabs, err := s.ports.TabCache.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tabs: %w", err)
	}
	if tabs == nil {
		tabs = []string{}
	}
	return jsonResult(req.Params.URI, tabs)
}

// handleTabResource returns one tab's cached state.
func (s *Server) handleTabResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	tabID := extractTabID(req.Params.URI)
	if tabID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	entry, err := s.ports.TabCache.Get(ctx, tabID)
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidInput) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting tab: %w", err)
	}
	return jsonResult(req.Params.URI, entry)
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractTabID extracts the tab ID from a URI like recap://tabs/{tabId}.
func extractTabID(uri string) string {
	const prefix = uriScheme + "tabs/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
