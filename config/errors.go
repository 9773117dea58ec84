package config

import "errors"

// ErrInvalidConfiguration is returned when a numeric flag or environment
// variable fails to parse, or parses to a value outside its accepted
// range (spec §7).
var ErrInvalidConfiguration = errors.New("config: invalid configuration")

// MinProgressInterval and MaxProgressInterval bound EXACT_PROGRESS_INTERVAL
// (spec §6: "accepted range [0.05, 600]").
const (
	MinProgressInterval = 0.05
	MaxProgressInterval = 600.0
)
