// Package mcp provides an MCP (Model Context Protocol) server adapter for kith.
// It lets AI assistants review and complete check-ins.
package mcp

import "errors"

// ErrMissingCheckInService is returned when the check-in service is not provided.
var ErrMissingCheckInService = errors.New("mcp: check-in service is required")
