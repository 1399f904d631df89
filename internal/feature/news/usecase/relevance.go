package usecase

import (
	"strings"
	"unicode/utf8"

	companyentity "research_backend/internal/feature/company/domain/entity"
	"research_backend/internal/feature/news/domain/entity"
)

// Relevance weights. Headline hits count for more than summary hits.
const (
	headlineNameScore   = 10
	headlineSymbolScore = 8
	headlineWordScore   = 5
	summaryNameScore    = 4
	summarySymbolScore  = 3
	summaryWordScore    = 2

	// minNameWordLength is the exclusive lower bound on a name word's rune count.
	minNameWordLength = 2
)

// Score returns how strongly item matches company. Each signal is a
// case-insensitive substring check; signals add up and are never capped.
// A score of 0 means the item is irrelevant.
func Score(item entity.RawNewsItem, company companyentity.ResolvedCompany) int {
	name := strings.ToLower(company.DisplayName)
	symbol := strings.ToLower(company.Symbol)
	words := nameWords(name)

	headline := strings.ToLower(item.Headline)
	summary := strings.ToLower(item.Summary)

	score := 0
	score += textScore(headline, name, symbol, words, headlineNameScore, headlineSymbolScore, headlineWordScore)
	score += textScore(summary, name, symbol, words, summaryNameScore, summarySymbolScore, summaryWordScore)
	return score
}

func textScore(text, name, symbol string, words []string, namePts, symbolPts, wordPts int) int {
	if text == "" {
		return 0
	}
	score := 0
	if name != "" && strings.Contains(text, name) {
		score += namePts
	}
	if symbol != "" && strings.Contains(text, symbol) {
		score += symbolPts
	}
	for _, w := range words {
		if strings.Contains(text, w) {
			score += wordPts
		}
	}
	return score
}

// nameWords splits a lower-cased display name into the words eligible for word-level matching.
func nameWords(name string) []string {
	fields := strings.Fields(name)
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) > minNameWordLength {
			words = append(words, f)
		}
	}
	return words
}
