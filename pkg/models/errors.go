package models

import (
	"fmt"
	"time"
)

// OutOfRangeError reports a sidereal longitude outside [0, 360)
type OutOfRangeError struct {
	Longitude float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("longitude %f is outside [0, 360)", e.Longitude)
}

// InvalidDigitError reports a numerology digit outside 1-9
type InvalidDigitError struct {
	Digit int
}

func (e *InvalidDigitError) Error() string {
	return fmt.Sprintf("numerology digit %d is outside 1-9", e.Digit)
}

// ProviderError wraps a failure from the position provider. A trajectory
// aborts as a whole when any sample returns one.
type ProviderError struct {
	Planet  Planet
	Instant time.Time
	Err     error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("position provider failed for %s at %s: %v", e.Planet, e.Instant.Format(time.RFC3339), e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// ConfigurationError reports an invalid or incomplete fact table. It is
// raised at load time, never during scoring.
type ConfigurationError struct {
	Table  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s configuration: %s", e.Table, e.Reason)
}
