package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pfrederiksen/mmrda-holidays/internal/holiday"
	"github.com/pfrederiksen/mmrda-holidays/internal/service"
)

// FetchInput is the input schema for the fetch_holidays tool.
type FetchInput struct {
	Year         *int `json:"year,omitempty" jsonschema:"calendar year to load (default: current year)"`
	ForceRefresh bool `json:"force_refresh,omitempty" jsonschema:"re-fetch the source page even if the year is cached"`
}

// FetchOutput is the output schema for the fetch_holidays tool.
type FetchOutput struct {
	Year      int    `json:"year"`
	Count     int    `json:"count"`
	LastFetch string `json:"last_fetch"`
	Checksum  string `json:"checksum"`
	Changed   bool   `json:"changed"`
	Added     int    `json:"added"`
	Removed   int    `json:"removed"`
}

// IsHolidayInput is the input schema for the is_holiday tool.
type IsHolidayInput struct {
	Date string `json:"date" jsonschema:"ISO date to check (YYYY-MM-DD)"`
}

// IsHolidayOutput is the output schema for the is_holiday tool.
type IsHolidayOutput struct {
	IsHoliday bool             `json:"is_holiday"`
	Holiday   *holiday.Holiday `json:"holiday,omitempty"`
}

// FindInput is the input schema for the find_holidays tool.
type FindInput struct {
	Query      string `json:"query,omitempty" jsonschema:"case-insensitive substring of the holiday name"`
	Month      *int   `json:"month,omitempty" jsonschema:"month number 1-12 (0 or omitted: any month)"`
	RangeStart string `json:"range_start,omitempty" jsonschema:"inclusive start date (YYYY-MM-DD)"`
	RangeEnd   string `json:"range_end,omitempty" jsonschema:"inclusive end date (YYYY-MM-DD)"`
	Year       *int   `json:"year,omitempty" jsonschema:"calendar year (default: inferred from the range, else current year)"`
}

// FindOutput is the output schema for the find_holidays tool.
type FindOutput struct {
	Holidays []holiday.Holiday `json:"holidays"`
	Count    int               `json:"count"`
}

// ExportInput is the input schema for the export tool.
type ExportInput struct {
	Format       string `json:"format,omitempty" jsonschema:"ics or json (default ics)"`
	Year         *int   `json:"year,omitempty" jsonschema:"calendar year (default: current year)"`
	CalendarName string `json:"calendar_name,omitempty" jsonschema:"optional calendar display name for ics output"`
}

// ExportOutput is the output schema for the export tool.
type ExportOutput struct {
	Format  string `json:"format"`
	Year    int    `json:"year"`
	Content string `json:"content"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "fetch_holidays",
		Description: "Fetch and cache holidays from the MMRDA public holidays page",
	}, s.handleFetch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "is_holiday",
		Description: "Check if the given ISO date (YYYY-MM-DD) is a holiday",
	}, s.handleIsHoliday)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "find_holidays",
		Description: "Search holidays by name, month, and/or date range",
	}, s.handleFind)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "export",
		Description: "Export the cached holidays for a year as ICS or JSON",
	}, s.handleExport)
}

// handleFetch handles the fetch_holidays tool invocation.
func (s *Server) handleFetch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FetchInput,
) (*mcp.CallToolResult, FetchOutput, error) {
	res, err := s.ports.Holidays.Fetch(ctx, input.Year, input.ForceRefresh)
	if err != nil {
		return nil, FetchOutput{}, err
	}

	return nil, FetchOutput{
		Year:      res.Year,
		Count:     res.Count,
		LastFetch: res.LastFetch.UTC().Format(time.RFC3339),
		Checksum:  res.Checksum,
		Changed:   res.Changed,
		Added:     len(res.Added),
		Removed:   len(res.Removed),
	}, nil
}

// handleIsHoliday handles the is_holiday tool invocation.
func (s *Server) handleIsHoliday(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input IsHolidayInput,
) (*mcp.CallToolResult, IsHolidayOutput, error) {
	res, err := s.ports.Holidays.IsHoliday(ctx, input.Date)
	if err != nil {
		return nil, IsHolidayOutput{}, err
	}

	return nil, IsHolidayOutput{
		IsHoliday: res.IsHoliday,
		Holiday:   res.Holiday,
	}, nil
}

// handleFind handles the find_holidays tool invocation.
func (s *Server) handleFind(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FindInput,
) (*mcp.CallToolResult, FindOutput, error) {
	params := service.FindParams{
		Query:      input.Query,
		RangeStart: input.RangeStart,
		RangeEnd:   input.RangeEnd,
		Year:       input.Year,
	}
	if input.Month != nil {
		params.Month = *input.Month
	}

	hols, err := s.ports.Holidays.Find(ctx, params)
	if err != nil {
		return nil, FindOutput{}, err
	}
	if hols == nil {
		hols = []holiday.Holiday{}
	}

	return nil, FindOutput{
		Holidays: hols,
		Count:    len(hols),
	}, nil
}

// handleExport handles the export tool invocation.
func (s *Server) handleExport(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExportInput,
) (*mcp.CallToolResult, ExportOutput, error) {
	res, err := s.ports.Holidays.Export(ctx, service.ExportParams{
		Format:       input.Format,
		Year:         input.Year,
		CalendarName: input.CalendarName,
	})
	if err != nil {
		return nil, ExportOutput{}, err
	}

	return nil, ExportOutput{
		Format:  res.Format,
		Year:    res.Year,
		Content: res.Content,
	}, nil
}
