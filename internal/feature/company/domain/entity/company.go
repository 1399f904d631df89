// Package entity defines the domain models for the company feature.
package entity

// ResolvedCompany is the canonical identity a free-text company name resolves to.
// It is a value type; callers must not rely on it outliving a single resolution.
type ResolvedCompany struct {
	Symbol      string // Canonical ticker symbol, upper-case (e.g., "AAPL", "KO")
	DisplayName string // Human-readable name (e.g., "Apple Inc.")
}

// SearchResult is a single hit from the live symbol-search provider.
type SearchResult struct {
	Symbol      string
	Description string
}
