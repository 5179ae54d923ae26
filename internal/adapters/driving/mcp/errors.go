// Package mcp provides an MCP (Model Context Protocol) server adapter for recap.
// It lets AI assistants and browser automation classify court pages and
// resolve their identifiers.
package mcp

import "errors"

// Errors returned when a required port is missing.
var (
	ErrMissingClassifier = errors.New("mcp: classifier service is required")
	ErrMissingResolver   = errors.New("mcp: resolver service is required")
	ErrMissingParser     = errors.New("mcp: html parser is required")
)

// errNoAvailability is returned by the availability tool when no archive
// service is wired.
var errNoAvailability = errors.New("mcp: availability checks are not configured")
