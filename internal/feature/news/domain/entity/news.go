// Package entity defines the domain models for the news feature.
package entity

// RawNewsItem is a news item as returned by the external news provider.
type RawNewsItem struct {
	Headline   string
	Summary    string
	URL        string
	SourceName string
	Datetime   int64  // Unix seconds
	ImageURL   string // Optional
}

// ScoredNewsItem is a RawNewsItem with its topical relevance to one company.
type ScoredNewsItem struct {
	RawNewsItem
	RelevanceScore int
}

// SentimentLabel is the coarse sentiment of a headline.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "Positive"
	SentimentNegative SentimentLabel = "Negative"
	SentimentNeutral  SentimentLabel = "Neutral"
)

// SentimentTag pairs a label with its display emoji.
type SentimentTag struct {
	Emoji string
	Label SentimentLabel
}

// NewsResult is the final, caller-facing news item.
type NewsResult struct {
	Headline       string
	Summary        string
	URL            string
	SourceName     string
	ImageURL       string
	PublishedAt    int64 // Unix milliseconds
	RelevanceScore int
	Sentiment      SentimentTag
}
