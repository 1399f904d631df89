// Package domain defines domain-level errors for the company feature.
package domain

import "errors"

// ErrCompanyNotFound indicates that a company name could not be mapped to a ticker symbol.
// The caller can recover by asking the user for a different name.
var ErrCompanyNotFound = errors.New("company not found")
