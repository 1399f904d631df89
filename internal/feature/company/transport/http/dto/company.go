// Package dto defines data transfer objects for the company HTTP API.
package dto

// CompanyItem is a resolved company in API responses.
type CompanyItem struct {
	Symbol      string `json:"symbol"`
	DisplayName string `json:"display_name"`
}
