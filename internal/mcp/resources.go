package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for holiday resources.
	uriScheme = "holidays://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "metrics",
		Name:        "metrics",
		Description: "Fetch and cache counters and timings",
		MIMEType:    "application/json",
	}, s.handleMetricsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "years/{year}",
		Name:        "year-holidays",
		Description: "Cached holiday set for a calendar year",
		MIMEType:    "application/json",
	}, s.handleYearResource)
}

// handleMetricsResource returns the metrics snapshot.
func (s *Server) handleMetricsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(s.ports.Metrics(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling metrics: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleYearResource returns the cache entry for a year.
func (s *Server) handleYearResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	year, ok := extractYear(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	entry, err := s.ports.Holidays.Holidays(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("loading holidays: %w", err)
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling holidays: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractYear extracts the year from a URI like holidays://years/{year}.
func extractYear(uri string) (int, bool) {
	const prefix = uriScheme + "years/"

	if !strings.HasPrefix(uri, prefix) {
		return 0, false
	}

	year, err := strconv.Atoi(strings.TrimPrefix(uri, prefix))
	if err != nil || year < 1 || year > 9999 {
		return 0, false
	}
	return year, true
}
