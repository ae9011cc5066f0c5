package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/kith-cli/internal/core/domain"
	"github.com/custodia-labs/kith-cli/internal/core/ports/driving"
)

// ListInput is the input schema for tools that take no arguments.
type ListInput struct{}

// UpcomingInput is the input schema for the upcoming tool.
type UpcomingInput struct {
	Days int `json:"days,omitempty" jsonschema:"days to look ahead (default from settings, usually 7)"`
}

// HistoryInput is the input schema for the history tool.
type HistoryInput struct {
	ContactID string `json:"contact_id" jsonschema:"the contact whose check-ins to list"`
}

// CompleteInput is the input schema for the complete tool.
type CompleteInput struct {
	CheckInID string `json:"checkin_id" jsonschema:"the check-in to complete"`
	Date      string `json:"date,omitempty" jsonschema:"completion date as YYYY-MM-DD or RFC 3339 (default now)"`
	Notes     string `json:"notes,omitempty" jsonschema:"what was talked about"`
}

// RescheduleInput is the input schema for the reschedule tool.
type RescheduleInput struct {
	CheckInID string `json:"checkin_id" jsonschema:"the check-in to move"`
	Date      string `json:"date" jsonschema:"new scheduled date as YYYY-MM-DD or RFC 3339"`
}

// CheckInsOutput is the output schema for tools returning check-ins.
type CheckInsOutput struct {
	CheckIns []CheckInOutput `json:"checkins"`
	Count    int             `json:"count"`
}

// CheckInOutput represents a single check-in.
type CheckInOutput struct {
	ID             string `json:"id"`
	ContactID      string `json:"contact_id"`
	ContactName    string `json:"contact_name,omitempty"`
	ScheduledDate  string `json:"scheduled_date"`
	CompletionDate string `json:"completion_date,omitempty"`
	Status         string `json:"status"`
	Notes          string `json:"notes,omitempty"`
}

// CompleteOutput is the output schema for the complete tool.
type CompleteOutput struct {
	Completed CheckInOutput `json:"completed"`
	Next      CheckInOutput `json:"next"`
}

// DashboardOutput is the output schema for the dashboard tool.
type DashboardOutput struct {
	OverdueCount       int            `json:"overdue_count"`
	UpcomingCount      int            `json:"upcoming_count"`
	TotalContacts      int            `json:"total_contacts"`
	ContactsByCategory map[string]int `json:"contacts_by_category"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "overdue",
		Description: "List check-ins that are past their scheduled date and not completed",
	}, s.handleOverdue)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "upcoming",
		Description: "List check-ins scheduled within the next few days",
	}, s.handleUpcoming)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "today",
		Description: "List check-ins scheduled for today",
	}, s.handleToday)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "history",
		Description: "List every check-in for a contact, oldest first",
	}, s.handleHistory)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "complete",
		Description: "Mark a check-in as completed; the next one is scheduled automatically",
	}, s.handleComplete)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "reschedule",
		Description: "Move a check-in to a new date",
	}, s.handleReschedule)

	if s.ports.Dashboard != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "dashboard",
			Description: "Summarise overdue and upcoming check-ins and contacts per category",
		}, s.handleDashboard)
	}
}

func (s *Server) handleOverdue(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListInput,
) (*mcp.CallToolResult, CheckInsOutput, error) {
	checkIns, err := s.ports.CheckIns.OverdueCheckIns(ctx)
	if err != nil {
		return nil, CheckInsOutput{}, err
	}
	return nil, s.checkInsOutput(ctx, checkIns), nil
}

func (s *Server) handleUpcoming(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input UpcomingInput,
) (*mcp.CallToolResult, CheckInsOutput, error) {
	checkIns, err := s.ports.CheckIns.UpcomingCheckIns(ctx, input.Days)
	if err != nil {
		return nil, CheckInsOutput{}, err
	}
	return nil, s.checkInsOutput(ctx, checkIns), nil
}

func (s *Server) handleToday(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListInput,
) (*mcp.CallToolResult, CheckInsOutput, error) {
	checkIns, err := s.ports.CheckIns.TodayCheckIns(ctx)
	if err != nil {
		return nil, CheckInsOutput{}, err
	}
	return nil, s.checkInsOutput(ctx, checkIns), nil
}

func (s *Server) handleHistory(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input HistoryInput,
) (*mcp.CallToolResult, CheckInsOutput, error) {
	contactID, err := domain.ParseContactID(input.ContactID)
	if err != nil {
		return nil, CheckInsOutput{}, err
	}
	checkIns, err := s.ports.CheckIns.CheckInHistory(ctx, contactID)
	if err != nil {
		return nil, CheckInsOutput{}, err
	}
	return nil, s.checkInsOutput(ctx, checkIns), nil
}

func (s *Server) handleComplete(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CompleteInput,
) (*mcp.CallToolResult, CompleteOutput, error) {
	id, err := domain.ParseCheckInID(input.CheckInID)
	if err != nil {
		return nil, CompleteOutput{}, err
	}

	completion, err := domain.NewCompletionDate(s.now())
	if err != nil {
		return nil, CompleteOutput{}, err
	}
	if input.Date != "" {
		if completion, err = domain.ParseCompletionDate(input.Date); err != nil {
			return nil, CompleteOutput{}, err
		}
	}
	notes, err := domain.NewCheckInNotes(input.Notes)
	if err != nil {
		return nil, CompleteOutput{}, err
	}

	result, err := s.ports.CheckIns.CompleteCheckIn(ctx, driving.CompleteInput{
		CheckInID:      id,
		CompletionDate: completion,
		Notes:          notes,
	})
	if err != nil {
		return nil, CompleteOutput{}, fmt.Errorf("completing check-in: %w", err)
	}

	names := make(map[domain.ContactID]string)
	return nil, CompleteOutput{
		Completed: s.checkInOutput(ctx, names, result.Completed),
		Next:      s.checkInOutput(ctx, names, result.Next),
	}, nil
}

func (s *Server) handleReschedule(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RescheduleInput,
) (*mcp.CallToolResult, CheckInOutput, error) {
	id, err := domain.ParseCheckInID(input.CheckInID)
	if err != nil {
		return nil, CheckInOutput{}, err
	}
	date, err := domain.ParseScheduledDate(input.Date)
	if err != nil {
		return nil, CheckInOutput{}, err
	}

	checkIn, err := s.ports.CheckIns.RescheduleCheckIn(ctx, driving.RescheduleInput{
		CheckInID:        id,
		NewScheduledDate: date,
	})
	if err != nil {
		return nil, CheckInOutput{}, fmt.Errorf("rescheduling check-in: %w", err)
	}
	return nil, s.checkInOutput(ctx, make(map[domain.ContactID]string), checkIn), nil
}

func (s *Server) handleDashboard(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListInput,
) (*mcp.CallToolResult, DashboardOutput, error) {
	summary, err := s.ports.Dashboard.Summary(ctx)
	if err != nil {
		return nil, DashboardOutput{}, err
	}
	return nil, dashboardOutput(summary), nil
}

func dashboardOutput(summary *domain.DashboardSummary) DashboardOutput {
	byCategory := summary.ContactsByCategory
	if byCategory == nil {
		byCategory = map[string]int{}
	}
	return DashboardOutput{
		OverdueCount:       summary.OverdueCount,
		UpcomingCount:      summary.UpcomingCount,
		TotalContacts:      summary.TotalContacts,
		ContactsByCategory: byCategory,
	}
}

func (s *Server) checkInsOutput(ctx context.Context, checkIns []domain.CheckIn) CheckInsOutput {
	names := make(map[domain.ContactID]string)
	output := CheckInsOutput{
		CheckIns: make([]CheckInOutput, len(checkIns)),
		Count:    len(checkIns),
	}
	for i := range checkIns {
		output.CheckIns[i] = s.checkInOutput(ctx, names, checkIns[i])
	}
	return output
}

func (s *Server) checkInOutput(
	ctx context.Context,
	names map[domain.ContactID]string,
	c domain.CheckIn,
) CheckInOutput {
	out := CheckInOutput{
		ID:            c.ID().String(),
		ContactID:     c.ContactID().String(),
		ContactName:   s.contactName(ctx, names, c.ContactID()),
		ScheduledDate: c.ScheduledDate().String(),
		Status:        c.Status().String(),
		Notes:         c.Notes().String(),
	}
	if c.IsCompleted() {
		out.CompletionDate = c.CompletionDate().String()
	}
	return out
}

// contactName resolves a display name, caching lookups per call.
// Empty when the contact port is missing or the lookup fails.
func (s *Server) contactName(ctx context.Context, names map[domain.ContactID]string, id domain.ContactID) string {
	if s.ports.Contacts == nil {
		return ""
	}
	if name, ok := names[id]; ok {
		return name
	}
	name := ""
	if contact, err := s.ports.Contacts.Get(ctx, id); err == nil {
		name = contact.Name
	}
	names[id] = name
	return name
}
