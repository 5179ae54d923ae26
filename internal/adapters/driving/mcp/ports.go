package mcp

import (
	"io"

	"github.com/custodia-labs/recap-cli/internal/core/ports/driven"
	"github.com/custodia-labs/recap-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Classifier identifies page kinds.
	Classifier driving.ClassifierService

	// Resolver resolves page identifiers.
	Resolver driving.ResolverService

	// TabCache exposes per-tab state as resources. Optional.
	TabCache driving.TabCacheService

	// Availability answers archive lookups. Optional.
	Availability driving.AvailabilityService

	// Navigation numbers each tab's page loads so a resolution superseded
	// by a later call for the same tab writes nothing. Optional.
	Navigation driving.NavigationService

	// Parse turns the HTML sent by clients into a Document.
	Parse func(r io.Reader) (driven.Document, error)
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Classifier == nil {
		return ErrMissingClassifier
	}
	if p.Resolver == nil {
		return ErrMissingResolver
	}
	if p.Parse == nil {
		return ErrMissingParser
	}
	return nil
}
