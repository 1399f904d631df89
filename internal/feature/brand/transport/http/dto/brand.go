package dto

// BrandMatchResponse は検出ブランドのレスポンスDTOです。
type BrandMatchResponse struct {
	Name        string  `json:"name"`       // 検出されたブランド名
	Confidence  float32 `json:"confidence"` // 信頼度スコア
	Symbol      string  `json:"symbol,omitempty"`
	DisplayName string  `json:"display_name,omitempty"`
	Resolved    bool    `json:"resolved"`
}
