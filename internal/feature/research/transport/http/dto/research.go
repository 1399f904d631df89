package dto

import "time"

// ResearchRequest はレポート生成リクエストのDTOです。
type ResearchRequest struct {
	CompanyName      string  `json:"company_name" binding:"required"`
	InvestmentAmount float64 `json:"investment_amount" binding:"required,gt=0"`
}

// ResearchResponse はリサーチレポートのレスポンスDTOです。
type ResearchResponse struct {
	ID               string    `json:"id"`
	Symbol           string    `json:"symbol"`
	CompanyName      string    `json:"company_name"`
	InvestmentAmount float64   `json:"investment_amount"`
	Summary          string    `json:"summary"`
	Strengths        []string  `json:"strengths"`
	Risks            []string  `json:"risks"`
	Outlook          string    `json:"outlook"`
	Recommendation   string    `json:"recommendation"`
	Headlines        []string  `json:"headlines"`
	GeneratedAt      time.Time `json:"generated_at"`
}
