package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/kith-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for kith resources.
	uriScheme = "kith://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "contacts",
		Name:        "contacts",
		Description: "All contacts with their categories",
		MIMEType:    "application/json",
	}, s.handleContactsResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "categories",
		Name:        "categories",
		Description: "All categories with their check-in frequency",
		MIMEType:    "application/json",
	}, s.handleCategoriesResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "dashboard",
		Name:        "dashboard",
		Description: "Overdue and upcoming counts and contacts per category",
		MIMEType:    "application/json",
	}, s.handleDashboardResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "contacts/{contactId}/checkins",
		Name:        "contact-checkins",
		Description: "Check-in history of a specific contact",
		MIMEType:    "application/json",
	}, s.handleContactCheckInsResource)
}

func (s *Server) handleContactsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Contacts == nil {
		return jsonResult(req.Params.URI, "[]"), nil
	}

	contacts, err := s.ports.Contacts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing contacts: %w", err)
	}

	type contactInfo struct {
		ID         string `json:"id"`
		Name       string `json:"name"`
		Email      string `json:"email,omitempty"`
		Phone      string `json:"phone,omitempty"`
		CategoryID string `json:"category_id,omitempty"`
		Timezone   string `json:"timezone,omitempty"`
	}

	infos := make([]contactInfo, len(contacts))
	for i := range contacts {
		c := contacts[i]
		infos[i] = contactInfo{
			ID:         c.ID.String(),
			Name:       c.Name,
			Email:      c.Email,
			Phone:      c.Phone,
			CategoryID: c.CategoryID.String(),
			Timezone:   c.Timezone,
		}
	}
	return marshalResult(req.Params.URI, infos)
}

func (s *Server) handleCategoriesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Categories == nil {
		return jsonResult(req.Params.URI, "[]"), nil
	}

	categories, err := s.ports.Categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}

	type categoryInfo struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		Frequency string `json:"frequency"`
		Color     string `json:"color,omitempty"`
	}

	infos := make([]categoryInfo, len(categories))
	for i := range categories {
		c := categories[i]
		infos[i] = categoryInfo{
			ID:        c.ID.String(),
			Name:      c.Name,
			Frequency: c.Frequency.String(),
			Color:     c.Color,
		}
	}
	return marshalResult(req.Params.URI, infos)
}

func (s *Server) handleDashboardResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Dashboard == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	summary, err := s.ports.Dashboard.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("building dashboard: %w", err)
	}
	return marshalResult(req.Params.URI, dashboardOutput(summary))
}

func (s *Server) handleContactCheckInsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	contactID := extractContactID(req.Params.URI)
	if contactID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	checkIns, err := s.ports.CheckIns.CheckInHistory(ctx, domain.ContactID(contactID))
	if err != nil {
		return nil, fmt.Errorf("listing check-ins: %w", err)
	}
	return marshalResult(req.Params.URI, s.checkInsOutput(ctx, checkIns))
}

func marshalResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return jsonResult(uri, string(data)), nil
}

func jsonResult(uri, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     text,
		}},
	}
}

// extractContactID extracts the contact ID from a URI like kith://contacts/{contactId}/checkins.
func extractContactID(uri string) string {
	const prefix = uriScheme + "contacts/"
	const suffix = "/checkins"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	uri = strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(uri, suffix) {
		return ""
	}

	return strings.TrimSuffix(uri, suffix)
}
