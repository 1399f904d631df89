package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"research_backend/internal/feature/news/domain/entity"
)

// TestClassify は見出しの感情分類をテーブル駆動テストで検証します。
func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		headline string
		expected entity.SentimentLabel
	}{
		{name: "positive", headline: "Stock soars after record profit", expected: entity.SentimentPositive},
		{name: "negative", headline: "Company warns of declining sales", expected: entity.SentimentNegative},
		{name: "neutral", headline: "Company announces quarterly report", expected: entity.SentimentNeutral},
		{name: "negation flips positive", headline: "Stock does not soar despite strong earnings", expected: entity.SentimentNegative},
		{name: "negation flips negative", headline: "No layoffs planned despite weak quarter", expected: entity.SentimentPositive},
		{name: "tie under negation is neutral", headline: "Stock does not rise or fall", expected: entity.SentimentNeutral},
		{name: "neutral outweighs positive", headline: "Apple releases update on growth plan", expected: entity.SentimentNeutral},
		{name: "no signal", headline: "Shares trade sideways", expected: entity.SentimentNeutral},
		{name: "empty", headline: "", expected: entity.SentimentNeutral},
		// "low" は "below" の部分文字列としてもマッチする
		{name: "substring false positive", headline: "Revenue comes in below estimates", expected: entity.SentimentNegative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Classify(tt.headline)
			assert.Equal(t, tt.expected, got.Label)
			assert.Equal(t, sentimentEmoji[tt.expected], got.Emoji)
		})
	}
}

// TestClassify_CaseInsensitive は大文字小文字に関係なく同じ分類になることを検証します。
func TestClassify_CaseInsensitive(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Classify("stock soars after record profit"), Classify("STOCK SOARS AFTER RECORD PROFIT"))
}

// TestClassify_Emoji は各ラベルに固定の絵文字が割り当てられていることを検証します。
func TestClassify_Emoji(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "🚀", sentimentEmoji[entity.SentimentPositive])
	assert.Equal(t, "📉", sentimentEmoji[entity.SentimentNegative])
	assert.Equal(t, "📊", sentimentEmoji[entity.SentimentNeutral])
}
