package mcp

import (
	"context"

	"github.com/pfrederiksen/mmrda-holidays/internal/cache"
	"github.com/pfrederiksen/mmrda-holidays/internal/holiday"
	"github.com/pfrederiksen/mmrda-holidays/internal/service"
)

// HolidayService is the set of operations the server exposes.
// *service.Service implements it.
type HolidayService interface {
	Fetch(ctx context.Context, year *int, force bool) (*service.FetchResult, error)
	IsHoliday(ctx context.Context, date string) (*service.CheckResult, error)
	Find(ctx context.Context, p service.FindParams) ([]holiday.Holiday, error)
	Export(ctx context.Context, p service.ExportParams) (*service.ExportResult, error)
	Holidays(ctx context.Context, year int) (*cache.Entry, error)
}

// Ports aggregates the services required by the MCP server.
type Ports struct {
	// Holidays runs the holiday operations.
	Holidays HolidayService

	// Metrics returns a metrics snapshot. Optional; defaults to the
	// process-wide logger metrics.
	Metrics func() map[string]interface{}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Holidays == nil {
		return ErrMissingHolidayService
	}
	return nil
}
