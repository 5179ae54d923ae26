package mcp

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/recap-cli/internal/core/domain"
	"github.com/custodia-labs/recap-cli/internal/core/ports/driving"
)

// PageInput describes one page load sent by the client.
type PageInput struct {
	URL      string `json:"url" jsonschema:"the URL the page was loaded from"`
	HTML     string `json:"html" jsonschema:"the page's rendered HTML"`
	Referrer string `json:"referrer,omitempty" jsonschema:"URL of the page that linked here"`
	Cookie   string `json:"cookie,omitempty" jsonschema:"the page's document.cookie string"`
	TabID    string `json:"tab_id,omitempty" jsonschema:"browser tab id shared by related pages"`
}

// ClassifyOutput is the output schema for the classify tool.
type ClassifyOutput struct {
	Kind        string         `json:"kind"`
	Description string         `json:"description"`
	Rule        string         `json:"rule,omitempty"`
	Restricted  bool           `json:"restricted,omitempty"`
	Notes       []string       `json:"notes,omitempty"`
	Session     *SessionOutput `json:"session,omitempty"`
}

// SessionOutput is the login state read from the page's cookie.
type SessionOutput struct {
	LoggedIn         bool `json:"logged_in"`
	FilingAccount    bool `json:"filing_account"`
	ReceiptsDisabled bool `json:"receipts_disabled"`
}

// IdentifiersOutput is the output schema for the resolve tool.
type IdentifiersOutput struct {
	Court            string `json:"court,omitempty"`
	CaseID           string `json:"case_id,omitempty"`
	DocketNumber     string `json:"docket_number,omitempty"`
	DocumentID       string `json:"document_id,omitempty"`
	DocNumber        string `json:"doc_number,omitempty"`
	AttachmentNumber string `json:"attachment_number,omitempty"`
}

// AvailabilityOutput is the output schema for the availability tool.
type AvailabilityOutput struct {
	Identifiers        IdentifiersOutput        `json:"identifiers"`
	DocketURLs         []string                 `json:"docket_urls"`
	Documents          []ArchivedDocumentOutput `json:"documents"`
	DistrictDocketURLs []string                 `json:"district_docket_urls,omitempty"`
}

// ArchivedDocumentOutput is one archived document.
type ArchivedDocumentOutput struct {
	DocumentID string `json:"document_id"`
	Path       string `json:"path"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "classify_page",
		Description: "Identify which kind of court website page some HTML is",
	}, s.handleClassify)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "resolve_page",
		Description: "Resolve the case, docket and document identifiers of a court page",
	}, s.handleResolve)

	if s.ports.Availability != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "check_availability",
			Description: "Ask the public archive which of a page's records it already holds",
		}, s.handleAvailability)
	}
}

// handleClassify handles the classify tool invocation.
func (s *Server) handleClassify(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input PageInput,
) (*mcp.CallToolResult, ClassifyOutput, error) {
	page, err := s.page(input)
	if err != nil {
		return nil, ClassifyOutput{}, err
	}

	c := s.ports.Classifier.Explain(page)
	output := ClassifyOutput{
		Kind:        string(c.Kind),
		Description: c.Kind.Description(),
		Rule:        c.Rule,
		Restricted:  c.Restricted,
		Notes:       c.Notes,
	}
	if c.Session.Known {
		output.Session = &SessionOutput{
			LoggedIn:         c.Session.LoggedIn,
			FilingAccount:    c.Session.FilingAccount,
			ReceiptsDisabled: c.Session.ReceiptsDisabled,
		}
	}
	return nil, output, nil
}

// handleResolve handles the resolve tool invocation.
func (s *Server) handleResolve(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PageInput,
) (*mcp.CallToolResult, IdentifiersOutput, error) {
	page, err := s.page(input)
	if err != nil {
		return nil, IdentifiersOutput{}, err
	}

	ids, err := s.ports.Resolver.Resolve(ctx, page)
	if err != nil {
		return nil, IdentifiersOutput{}, err
	}
	return nil, identifiersOutput(ids), nil
}

// handleAvailability handles the availability tool invocation.
func (s *Server) handleAvailability(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PageInput,
) (*mcp.CallToolResult, AvailabilityOutput, error) {
	if s.ports.Availability == nil {
		return nil, AvailabilityOutput{}, errNoAvailability
	}
	page, err := s.page(input)
	if err != nil {
		return nil, AvailabilityOutput{}, err
	}

	result, err := s.ports.Availability.Check(ctx, page)
	if err != nil {
		return nil, AvailabilityOutput{}, err
	}

	output := AvailabilityOutput{
		Identifiers: identifiersOutput(result.Identifiers),
		DocketURLs:  make([]string, len(result.Dockets)),
		Documents:   make([]ArchivedDocumentOutput, len(result.Documents)),
	}
	for i, d := range result.Dockets {
		output.DocketURLs[i] = d.AbsoluteURL
	}
	for i, d := range result.Documents {
		output.Documents[i] = ArchivedDocumentOutput{DocumentID: string(d.DocumentID), Path: d.FilepathLocal}
	}
	for _, d := range result.DistrictDockets {
		output.DistrictDocketURLs = append(output.DistrictDocketURLs, d.AbsoluteURL)
	}
	return nil, output, nil
}

// page builds the page context for a tool call.
func (s *Server) page(input PageInput) (driving.PageContext, error) {
	if input.URL == "" {
		return driving.PageContext{}, fmt.Errorf("%w: url is required", domain.ErrInvalidInput)
	}
	u, err := url.Parse(input.URL)
	if err != nil {
		return driving.PageContext{}, fmt.Errorf("%w: url: %w", domain.ErrInvalidInput, err)
	}
	doc, err := s.ports.Parse(strings.NewReader(input.HTML))
	if err != nil {
		return driving.PageContext{}, fmt.Errorf("parsing html: %w", err)
	}

	page := driving.PageContext{
		TabID:    input.TabID,
		URL:      input.URL,
		Path:     u.Path,
		Referrer: input.Referrer,
		Cookie:   input.Cookie,
		Document: doc,
	}
	// Each call is a page load in its tab.
	if s.ports.Navigation != nil && input.TabID != "" {
		page.Generation = s.ports.Navigation.Navigate(input.TabID)
	}
	return page, nil
}

func identifiersOutput(ids domain.Identifiers) IdentifiersOutput {
	return IdentifiersOutput{
		Court:            string(ids.Court),
		CaseID:           string(ids.CaseID),
		DocketNumber:     string(ids.DocketNumber),
		DocumentID:       string(ids.DocumentID),
		DocNumber:        ids.DocNumber,
		AttachmentNumber: string(ids.AttachmentNumber),
	}
}
