// Package mcp exposes the holiday operations as Model Context Protocol
// tools and resources, over stdio or streamable HTTP.
package mcp

import "errors"

// ErrMissingHolidayService is returned when the holiday service is not provided.
var ErrMissingHolidayService = errors.New("mcp: holiday service is required")
