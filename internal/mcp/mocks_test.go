package mcp

import (
	"context"
	"time"

	"github.com/pfrederiksen/mmrda-holidays/internal/cache"
	"github.com/pfrederiksen/mmrda-holidays/internal/holiday"
	"github.com/pfrederiksen/mmrda-holidays/internal/service"
)

// mockHolidayService is a mock implementation of HolidayService.
type mockHolidayService struct {
	fetch  *service.FetchResult
	check  *service.CheckResult
	found  []holiday.Holiday
	export *service.ExportResult
	entry  *cache.Entry
	err    error

	fetchYear  *int
	fetchForce bool
	findParams service.FindParams
	exportArgs service.ExportParams
	entryYear  int
}

func (m *mockHolidayService) Fetch(_ context.Context, year *int, force bool) (*service.FetchResult, error) {
	m.fetchYear = year
	m.fetchForce = force
	return m.fetch, m.err
}

func (m *mockHolidayService) IsHoliday(_ context.Context, _ string) (*service.CheckResult, error) {
	return m.check, m.err
}

func (m *mockHolidayService) Find(_ context.Context, p service.FindParams) ([]holiday.Holiday, error) {
	m.findParams = p
	return m.found, m.err
}

func (m *mockHolidayService) Export(_ context.Context, p service.ExportParams) (*service.ExportResult, error) {
	m.exportArgs = p
	return m.export, m.err
}

func (m *mockHolidayService) Holidays(_ context.Context, year int) (*cache.Entry, error) {
	m.entryYear = year
	return m.entry, m.err
}

const testURL = "https://mmrda.maharashtra.gov.in/public-holidays"

var testFetchTime = time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

func diwali() holiday.Holiday {
	return holiday.New("Diwali", "2024-11-01", "Friday", testURL)
}
