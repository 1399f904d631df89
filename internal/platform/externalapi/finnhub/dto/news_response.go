package dto

// CompanyNewsItem は /company-news のレスポンス要素です。
type CompanyNewsItem struct {
	Category string `json:"category"`
	Datetime int64  `json:"datetime"` // Unix秒
	Headline string `json:"headline"`
	ID       int64  `json:"id"`
	Image    string `json:"image"`
	Related  string `json:"related"`
	Source   string `json:"source"`
	Summary  string `json:"summary"`
	URL      string `json:"url"`
}

// SymbolSearchResponse は /search のレスポンスです。
type SymbolSearchResponse struct {
	Count  int                  `json:"count"`
	Result []SymbolSearchResult `json:"result"`
}

// SymbolSearchResult は /search の検索結果1件です。
type SymbolSearchResult struct {
	Description   string `json:"description"`
	DisplaySymbol string `json:"displaySymbol"`
	Symbol        string `json:"symbol"`
	Type          string `json:"type"`
}
