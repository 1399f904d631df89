// Package domain defines domain-level errors for the research feature.
package domain

import "errors"

var (
	// ErrInvalidCompanyName is returned when the company name is empty, too long or has disallowed characters.
	ErrInvalidCompanyName = errors.New("invalid company name")

	// ErrInvalidInvestmentAmount is returned when the investment amount is not a positive number.
	ErrInvalidInvestmentAmount = errors.New("investment amount must be positive")

	// ErrReportNotFound is returned when no archived report exists for a symbol.
	ErrReportNotFound = errors.New("research report not found")

	// ErrGeneratorUnavailable is returned while the AI provider is short-circuited.
	ErrGeneratorUnavailable = errors.New("research generator unavailable")
)
