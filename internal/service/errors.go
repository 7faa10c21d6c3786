package service

import "errors"

var (
	// ErrInvalidDate is returned when a date argument is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidArgument is returned for out-of-range years and months.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupportedFormat is returned by Export for formats other than ics and json.
	ErrUnsupportedFormat = errors.New("unsupported format")
)
