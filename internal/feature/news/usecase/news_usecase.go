// Package usecase implements news relevance scoring, sentiment tagging and
// the pipeline that combines them.
package usecase

import (
	"cmp"
	"context"
	"slices"
	"time"

	companyentity "research_backend/internal/feature/company/domain/entity"
	"research_backend/internal/feature/news/domain/entity"
)

const (
	// DefaultWindowDays は取得対象期間のデフォルト日数です。
	DefaultWindowDays = 30
	// DefaultLimit は返却件数のデフォルト値です。
	DefaultLimit = 10
)

// CompanyResolver maps a free-text company name to a ticker symbol.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type CompanyResolver interface {
	Resolve(ctx context.Context, name string) (companyentity.ResolvedCompany, error)
}

// NewsProvider fetches raw company news for an inclusive date window.
type NewsProvider interface {
	CompanyNews(ctx context.Context, symbol string, from, to time.Time) ([]entity.RawNewsItem, error)
}

// NewsUsecase orchestrates resolve -> fetch -> score -> filter -> sort -> truncate -> tag.
type NewsUsecase struct {
	resolver CompanyResolver
	provider NewsProvider
	now      func() time.Time
}

// NewNewsUsecase creates a NewsUsecase.
func NewNewsUsecase(resolver CompanyResolver, provider NewsProvider) *NewsUsecase {
	return &NewsUsecase{resolver: resolver, provider: provider, now: time.Now}
}

// FetchRelevantNews returns the most relevant news items for companyQuery,
// published within the last windowDays, best first. Non-positive windowDays
// and limit fall back to the defaults.
//
// It returns the resolver's not-found error when the company cannot be
// resolved, and the provider's error (typically *domain.ProviderError) when
// the fetch fails. Neither is retried.
func (u *NewsUsecase) FetchRelevantNews(ctx context.Context, companyQuery string, windowDays, limit int) ([]entity.NewsResult, error) {
	company, err := u.resolver.Resolve(ctx, companyQuery)
	if err != nil {
		return nil, err
	}
	return u.FetchCompanyNews(ctx, company, windowDays, limit)
}

// FetchCompanyNews runs the pipeline for an already resolved company.
// Defaults and errors are the same as FetchRelevantNews, minus resolution.
func (u *NewsUsecase) FetchCompanyNews(ctx context.Context, company companyentity.ResolvedCompany, windowDays, limit int) ([]entity.NewsResult, error) {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	to := u.now()
	from := to.AddDate(0, 0, -windowDays)
	raw, err := u.provider.CompanyNews(ctx, company.Symbol, from, to)
	if err != nil {
		return nil, err
	}

	scored := make([]entity.ScoredNewsItem, 0, len(raw))
	for _, item := range raw {
		s := Score(item, company)
		if s == 0 {
			continue
		}
		scored = append(scored, entity.ScoredNewsItem{RawNewsItem: item, RelevanceScore: s})
	}

	// 同点の場合は入力順を維持する
	slices.SortStableFunc(scored, func(a, b entity.ScoredNewsItem) int {
		return cmp.Compare(b.RelevanceScore, a.RelevanceScore)
	})
	if len(scored) > limit {
		scored = scored[:limit]
	}

	out := make([]entity.NewsResult, 0, len(scored))
	for _, s := range scored {
		out = append(out, entity.NewsResult{
			Headline:       s.Headline,
			Summary:        s.Summary,
			URL:            s.URL,
			SourceName:     s.SourceName,
			ImageURL:       s.ImageURL,
			PublishedAt:    s.Datetime * 1000,
			RelevanceScore: s.RelevanceScore,
			Sentiment:      Classify(s.Headline),
		})
	}
	return out, nil
}
