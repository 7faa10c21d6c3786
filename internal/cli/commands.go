package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/mmrda-holidays/internal/config"
	"github.com/pfrederiksen/mmrda-holidays/internal/filter"
	"github.com/pfrederiksen/mmrda-holidays/internal/mcp"
	"github.com/pfrederiksen/mmrda-holidays/internal/service"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server",
		Long: `Start the Model Context Protocol server exposing the fetch_holidays,
is_holiday, find_holidays and export tools.

By default the server communicates over stdio. Use --http-addr to serve the
streamable HTTP transport instead.

Examples:
  # Stdio mode (default)
  holidays serve

  # HTTP mode
  holidays serve --http-addr 127.0.0.1:8080`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server, err := mcp.NewServer(&mcp.Ports{Holidays: a.svc})
			if err != nil {
				return err
			}

			if addr := a.cfg.HTTPAddr; addr != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://%s\n", addr)
				return server.RunHTTP(cmd.Context(), addr)
			}
			return server.Run(cmd.Context())
		},
	}

	cmd.Flags().String(config.KeyHTTPAddr, "", "HTTP listen address (empty = use stdio)")

	return cmd
}

func newFetchCmd(a *app) *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch the holidays for a year and print a summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			year, err := yearFlag(cmd)
			if err != nil {
				return err
			}

			res, err := a.svc.Fetch(cmd.Context(), year, refresh)
			if err != nil {
				return fmt.Errorf("fetching holidays: %w", err)
			}
			return WriteOutput(cmd.OutOrStdout(), res, a.format, a.verbose)
		},
	}

	cmd.Flags().Int("year", 0, "Calendar year (default: current year)")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "Re-fetch even if the year is cached")

	return cmd
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check DATE",
		Short: "Check whether an ISO date (YYYY-MM-DD) is a holiday",
		Long: `Check whether an ISO date (YYYY-MM-DD) is a holiday.

Exits 0 when the date is a holiday and 2 when it is not.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.svc.IsHoliday(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := WriteOutput(cmd.OutOrStdout(), res, a.format, a.verbose); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
			if !res.IsHoliday {
				return errNotHoliday
			}
			return nil
		},
	}
}

func newFindCmd(a *app) *cobra.Command {
	var (
		query  string
		month  string
		from   string
		to     string
		sortBy string
	)

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Search holidays by name, month, or date range",
		Long: `Search holidays by name, month, or date range.

Without --year, the year is taken from --from/--to when they fall in the same
year (or only one is given), otherwise the current year is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			order := SortOrder(sortBy)
			if order != SortByDate && order != SortByName {
				return fmt.Errorf("invalid sort order: %s (must be 'date' or 'name')", sortBy)
			}

			m, err := filter.ParseMonth(month)
			if err != nil {
				return fmt.Errorf("%w: %v", service.ErrInvalidArgument, err)
			}

			year, err := yearFlag(cmd)
			if err != nil {
				return err
			}

			hols, err := a.svc.Find(cmd.Context(), service.FindParams{
				Query:      query,
				Month:      int(m),
				RangeStart: from,
				RangeEnd:   to,
				Year:       year,
			})
			if err != nil {
				return err
			}

			sortHolidays(hols, order)
			return WriteOutput(cmd.OutOrStdout(), hols, a.format, a.verbose)
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Case-insensitive substring of the holiday name")
	cmd.Flags().StringVarP(&month, "month", "m", "", "Month as a number or name (e.g. 11, nov)")
	cmd.Flags().StringVar(&from, "from", "", "Inclusive start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Inclusive end date (YYYY-MM-DD)")
	cmd.Flags().Int("year", 0, "Calendar year")
	cmd.Flags().StringVar(&sortBy, "sort", string(SortByDate), "Sort order: date or name")

	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	var (
		format  string
		calName string
		outFile string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a year's holidays as iCalendar or JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			year, err := yearFlag(cmd)
			if err != nil {
				return err
			}

			res, err := a.svc.Export(cmd.Context(), service.ExportParams{
				Format:       format,
				Year:         year,
				CalendarName: calName,
			})
			if err != nil {
				return err
			}

			if outFile != "" {
				if err := os.WriteFile(outFile, []byte(res.Content), 0644); err != nil {
					return fmt.Errorf("writing export: %w", err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s export for %d to %s\n", res.Format, res.Year, outFile)
				return nil
			}

			return WriteOutput(cmd.OutOrStdout(), res, a.format, a.verbose)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", service.FormatICS, "Export format: ics or json")
	cmd.Flags().Int("year", 0, "Calendar year (default: current year)")
	cmd.Flags().StringVar(&calName, "calendar-name", "", "Calendar display name (ics only)")
	cmd.Flags().StringVar(&outFile, "out", "", "Write the content to a file instead of stdout")

	return cmd
}
