package dto

// SentimentResponse は見出しの感情タグのレスポンスDTOです。
type SentimentResponse struct {
	Emoji string `json:"emoji"`
	Label string `json:"label"` // Positive / Negative / Neutral
}

// NewsResponse は関連度付きニュース記事のレスポンスDTOです。
type NewsResponse struct {
	Headline       string            `json:"headline"`
	Summary        string            `json:"summary"`
	URL            string            `json:"url"`
	Source         string            `json:"source"`
	ImageURL       string            `json:"image_url,omitempty"`
	PublishedAt    int64             `json:"published_at"` // エポックミリ秒
	RelevanceScore int               `json:"relevance_score"`
	Sentiment      SentimentResponse `json:"sentiment"`
}
