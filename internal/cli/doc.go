// Package cli implements the command-line interface for the holiday calendar.
//
// The cli package provides the Cobra-based CLI with commands to serve the MCP
// server, fetch a year, check a date, search holidays, and export a year as
// iCalendar or JSON. Settings come from flags and HOLIDAYS_* environment
// variables through the config package; results are written as text or JSON.
package cli
