package names

import "errors"

var (
	// ErrUnknownStrategy is returned for a strategy tag outside the closed set.
	ErrUnknownStrategy = errors.New("unknown generation strategy")
	// ErrSectorRequired is returned when the sector strategy is invoked without a sector.
	ErrSectorRequired = errors.New("sector is required for sector-based generation")
)
