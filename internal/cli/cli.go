package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/mmrda-holidays/internal/cache"
	"github.com/pfrederiksen/mmrda-holidays/internal/config"
	"github.com/pfrederiksen/mmrda-holidays/internal/logger"
	"github.com/pfrederiksen/mmrda-holidays/internal/scraper"
	"github.com/pfrederiksen/mmrda-holidays/internal/service"
)

const (
	ExitSuccess    = 0
	ExitError      = 1
	ExitNotHoliday = 2
)

// errNotHoliday makes "check" exit with ExitNotHoliday
var errNotHoliday = errors.New("not a holiday")

// app holds state shared by all commands of one root command
type app struct {
	cfg     *config.Config
	svc     *service.Service
	format  OutputFormat
	verbose bool

	flagOutput string
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "holidays",
		Short: "Public holiday calendar scraped from the MMRDA portal",
		Long: `A CLI and MCP server for the public holidays published by MMRDA.
Holidays are scraped from the portal's HTML tables, normalized to ISO dates,
cached per year for the life of the process, and exported as iCalendar or JSON.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := cmd.PersistentFlags()
	pf.String(config.KeySourceURL, scraper.SourceURL, "Holiday page URL")
	pf.String(config.KeyUserAgent, scraper.UserAgent, "User-Agent header for fetches")
	pf.Duration(config.KeyTimeout, scraper.Timeout, "Fetch timeout")
	pf.Duration(config.KeyMinFetchInterval, scraper.MinFetchInterval, "Minimum interval between fetches (0 disables)")
	pf.String(config.KeyLogLevel, "info", "Log level: debug, info, warn, error")
	pf.String(config.KeyLogFile, "", "Write logs to a rotating file instead of stderr")
	pf.StringVarP(&a.flagOutput, "output", "o", "text", "Output format: text or json")
	pf.BoolVar(&a.verbose, "verbose", false, "Include fingerprints and sources in text output")

	cmd.AddCommand(
		newServeCmd(a),
		newFetchCmd(a),
		newCheckCmd(a),
		newFindCmd(a),
		newExportCmd(a),
	)

	return cmd
}

// setup resolves configuration and wires the service for the running command
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	format := OutputFormat(strings.ToLower(a.flagOutput))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid output format: %s (must be 'text' or 'json')", a.flagOutput)
	}
	a.format = format

	v := config.New()
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger.SetDefault(cfg.NewLogger())

	sc := scraper.New(cfg.ScraperOptions()...)
	a.svc = service.New(cache.New(sc))

	logger.Debug("Configuration loaded", logger.Fields{
		"source_url": cfg.SourceURL,
		"timeout":    cfg.Timeout.String(),
		"command":    cmd.Name(),
	})
	return nil
}

// yearFlag returns the --year value, or nil when the flag was not given
func yearFlag(cmd *cobra.Command) (*int, error) {
	if !cmd.Flags().Changed("year") {
		return nil, nil
	}
	year, err := cmd.Flags().GetInt("year")
	if err != nil {
		return nil, fmt.Errorf("getting year flag: %w", err)
	}
	return &year, nil
}

// Execute runs the CLI
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, NewRootCmd())
	stop()
	logger.Sync() //nolint:errcheck
	os.Exit(code)
}

// run executes cmd and maps its error to an exit code
func run(ctx context.Context, cmd *cobra.Command) int {
	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, errNotHoliday):
		return ExitNotHoliday
	default:
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return ExitError
	}
}
