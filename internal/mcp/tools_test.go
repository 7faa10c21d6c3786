package mcp

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pfrederiksen/mmrda-holidays/internal/holiday"
	"github.com/pfrederiksen/mmrda-holidays/internal/service"
)

func ptr[T any](v T) *T {
	return &v
}

func newTestServer(t *testing.T, mock *mockHolidayService) *Server {
	t.Helper()
	server, err := NewServer(&Ports{Holidays: mock})
	require.NoError(t, err)
	return server
}

func TestServer_handleFetch(t *testing.T) {
	ctx := context.Background()

	t.Run("returns fetch summary", func(t *testing.T) {
		mock := &mockHolidayService{
			fetch: &service.FetchResult{
				Year:      2024,
				Count:     24,
				LastFetch: testFetchTime,
				Checksum:  "abc123",
				Changed:   true,
				Added:     []holiday.Holiday{diwali()},
			},
		}
		server := newTestServer(t, mock)

		_, output, err := server.handleFetch(ctx, nil, FetchInput{Year: ptr(2024), ForceRefresh: true})

		require.NoError(t, err)
		assert.Equal(t, 2024, output.Year)
		assert.Equal(t, 24, output.Count)
		assert.Equal(t, "2024-06-01T08:00:00Z", output.LastFetch)
		assert.Equal(t, "abc123", output.Checksum)
		assert.True(t, output.Changed)
		assert.Equal(t, 1, output.Added)
		assert.Equal(t, 0, output.Removed)
		require.NotNil(t, mock.fetchYear)
		assert.Equal(t, 2024, *mock.fetchYear)
		assert.True(t, mock.fetchForce)
	})

	t.Run("year defaults to nil", func(t *testing.T) {
		mock := &mockHolidayService{fetch: &service.FetchResult{Year: 2026}}
		server := newTestServer(t, mock)

		_, _, err := server.handleFetch(ctx, nil, FetchInput{})
		require.NoError(t, err)
		assert.Nil(t, mock.fetchYear)
		assert.False(t, mock.fetchForce)
	})

	t.Run("returns error on fetch failure", func(t *testing.T) {
		mock := &mockHolidayService{err: errors.New("unexpected status 503")}
		server := newTestServer(t, mock)

		_, _, err := server.handleFetch(ctx, nil, FetchInput{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "503")
	})
}

func TestServer_handleIsHoliday(t *testing.T) {
	ctx := context.Background()

	t.Run("holiday", func(t *testing.T) {
		h := diwali()
		mock := &mockHolidayService{check: &service.CheckResult{IsHoliday: true, Holiday: &h}}
		server := newTestServer(t, mock)

		_, output, err := server.handleIsHoliday(ctx, nil, IsHolidayInput{Date: "2024-11-01"})
		require.NoError(t, err)
		assert.True(t, output.IsHoliday)
		require.NotNil(t, output.Holiday)
		assert.Equal(t, "Diwali", output.Holiday.Name)
	})

	t.Run("invalid date", func(t *testing.T) {
		mock := &mockHolidayService{err: fmt.Errorf("%w: %q", service.ErrInvalidDate, "tomorrow")}
		server := newTestServer(t, mock)

		_, _, err := server.handleIsHoliday(ctx, nil, IsHolidayInput{Date: "tomorrow"})
		assert.ErrorIs(t, err, service.ErrInvalidDate)
	})
}

func TestServer_handleFind(t *testing.T) {
	ctx := context.Background()

	t.Run("passes criteria through", func(t *testing.T) {
		mock := &mockHolidayService{found: []holiday.Holiday{diwali()}}
		server := newTestServer(t, mock)

		input := FindInput{
			Query:      "diwali",
			Month:      ptr(11),
			RangeStart: "2024-10-01",
			RangeEnd:   "2024-11-30",
			Year:       ptr(2024),
		}
		_, output, err := server.handleFind(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, 1, output.Count)
		assert.Equal(t, "Diwali", output.Holidays[0].Name)
		assert.Equal(t, "diwali", mock.findParams.Query)
		assert.Equal(t, 11, mock.findParams.Month)
		assert.Equal(t, "2024-10-01", mock.findParams.RangeStart)
		assert.Equal(t, "2024-11-30", mock.findParams.RangeEnd)
		require.NotNil(t, mock.findParams.Year)
		assert.Equal(t, 2024, *mock.findParams.Year)
	})

	t.Run("empty result is an empty list", func(t *testing.T) {
		mock := &mockHolidayService{}
		server := newTestServer(t, mock)

		_, output, err := server.handleFind(ctx, nil, FindInput{Query: "holi"})
		require.NoError(t, err)
		assert.NotNil(t, output.Holidays)
		assert.Equal(t, 0, output.Count)
		assert.Equal(t, 0, mock.findParams.Month)
	})
}

func TestServer_handleExport(t *testing.T) {
	ctx := context.Background()

	t.Run("returns content", func(t *testing.T) {
		mock := &mockHolidayService{
			export: &service.ExportResult{Format: "ics", Year: 2024, Content: "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"},
		}
		server := newTestServer(t, mock)

		_, output, err := server.handleExport(ctx, nil, ExportInput{Format: "ICS", Year: ptr(2024), CalendarName: "MMRDA"})
		require.NoError(t, err)
		assert.Equal(t, "ics", output.Format)
		assert.Equal(t, 2024, output.Year)
		assert.Equal(t, "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n", output.Content)
		assert.Equal(t, "ICS", mock.exportArgs.Format)
		assert.Equal(t, "MMRDA", mock.exportArgs.CalendarName)
	})

	t.Run("unsupported format", func(t *testing.T) {
		mock := &mockHolidayService{err: fmt.Errorf("%w: %q", service.ErrUnsupportedFormat, "xml")}
		server := newTestServer(t, mock)

		_, _, err := server.handleExport(ctx, nil, ExportInput{Format: "xml"})
		assert.ErrorIs(t, err, service.ErrUnsupportedFormat)
	})
}
