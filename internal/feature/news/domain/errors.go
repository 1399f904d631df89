// Package domain defines domain-level errors for the news feature.
package domain

import "fmt"

// ProviderError is returned when an upstream data provider answers with a non-2xx status.
// It is surfaced to the caller and never retried automatically.
type ProviderError struct {
	Provider   string
	StatusCode int
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s http %d", e.Provider, e.StatusCode)
}
