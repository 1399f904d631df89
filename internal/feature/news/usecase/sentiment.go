package usecase

import (
	"strings"

	"research_backend/internal/feature/news/domain/entity"
)

// Word stems are matched as plain substrings of the lower-cased headline,
// so "declin" covers both "decline" and "declining".
var (
	positiveWords = []string{
		"rise", "rising", "gain", "growth", "grow", "beat", "rally", "soar", "surge", "jump",
		"climb", "upgrade", "record", "profit", "strong", "boost", "outperform", "bullish", "expand", "win",
		"success", "breakthrough", "innovat", "optimis", "exceed", "rebound", "recover", "high", "top", "positive",
	}
	negativeWords = []string{
		"fall", "drop", "declin", "decrease", "miss", "downgrade", "crash", "plunge", "layoff", "loss",
		"lose", "cut", "weak", "slump", "sink", "tumble", "warn", "concern", "fear", "risk",
		"lawsuit", "probe", "investigat", "fraud", "recall", "bankrupt", "default", "low", "fail", "bearish",
	}
	neutralWords = []string{
		"announce", "report", "update", "release", "plan", "launch", "statement", "meeting",
		"schedule", "expect", "conference", "filing", "review", "unveil", "introduce",
	}
	negationWords = []string{"not", "no", "n't", "never", "without", "despite", "however"}
)

var sentimentEmoji = map[entity.SentimentLabel]string{
	entity.SentimentPositive: "🚀",
	entity.SentimentNegative: "📉",
	entity.SentimentNeutral:  "📊",
}

// Classify derives a coarse sentiment from a headline using fixed word lists.
//
// A negation word flips whichever of positive/negative leads.
func Classify(headline string) entity.SentimentTag {
	text := strings.ToLower(headline)

	pos := countMatches(text, positiveWords)
	neg := countMatches(text, negativeWords)
	neu := countMatches(text, neutralWords)
	negated := countMatches(text, negationWords) > 0

	var label entity.SentimentLabel
	switch {
	case negated && pos > neg:
		label = entity.SentimentNegative
	case negated && neg > pos:
		label = entity.SentimentPositive
	case pos > neg && pos > neu:
		label = entity.SentimentPositive
	case neg > pos && neg > neu:
		label = entity.SentimentNegative
	default:
		label = entity.SentimentNeutral
	}
	return entity.SentimentTag{Emoji: sentimentEmoji[label], Label: label}
}

// countMatches returns how many distinct words occur anywhere in text.
func countMatches(text string, words []string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(text, w) {
			n++
		}
	}
	return n
}
