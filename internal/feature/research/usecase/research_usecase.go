// Package usecase はresearchフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	companyentity "research_backend/internal/feature/company/domain/entity"
	newsentity "research_backend/internal/feature/news/domain/entity"
	"research_backend/internal/feature/research/domain"
	"research_backend/internal/feature/research/domain/entity"
	"research_backend/internal/platform/cache"
)

const (
	// DefaultCacheTTL はレポートをキャッシュする期間のデフォルト値です。
	DefaultCacheTTL = 24 * time.Hour
	// MaxCompanyNameLength は企業名の最大文字数（rune数）です。
	MaxCompanyNameLength = 100

	headlineWindowDays = 14
	headlineLimit      = 5

	promptTemplate = `You are an equity research analyst. Write a concise research note on %s (ticker %s)
for an investor considering a position of %s USD.

Recent headlines:
%s
Respond with JSON only, using the keys "summary", "strengths" (array of strings),
"risks" (array of strings), "outlook" and "recommendation". The recommendation must
take the investment amount into account.`
)

// validCompanyName は企業名に許可される文字パターンです（英数字・日本語・スペース・中黒など）。
var validCompanyName = regexp.MustCompile(`^[\p{L}\p{N}\s・\-\.&,']+$`)

// CompanyResolver は企業名をティッカーシンボルに解決します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type CompanyResolver interface {
	Resolve(ctx context.Context, name string) (companyentity.ResolvedCompany, error)
}

// HeadlineSource はプロンプトに含める関連ニュースを提供します。
// 解決済みの企業を受け取るため、名前解決は1回で済みます。
type HeadlineSource interface {
	FetchCompanyNews(ctx context.Context, company companyentity.ResolvedCompany, windowDays, limit int) ([]newsentity.NewsResult, error)
}

// ResearchGenerator はプロンプトからレポート本文を生成します。
type ResearchGenerator interface {
	Generate(ctx context.Context, prompt string) (entity.ResearchContent, error)
}

// ReportRepository は生成済みレポートを永続化します。
type ReportRepository interface {
	Save(ctx context.Context, key string, report *entity.ResearchReport) error
	LatestBySymbol(ctx context.Context, symbol string) (*entity.ResearchReport, error)
}

// ReportCache は生成結果を一定期間メモ化します。
type ReportCache interface {
	GetOrCompute(ctx context.Context, key string, ttl time.Duration, compute func(ctx context.Context) (*entity.ResearchReport, error)) (*entity.ResearchReport, error)
}

// ResearchUsecase はリサーチレポートの生成と参照を提供します。
type ResearchUsecase struct {
	resolver  CompanyResolver
	headlines HeadlineSource
	generator ResearchGenerator
	repo      ReportRepository
	cache     ReportCache
	ttl       time.Duration
	now       func() time.Time
}

// NewResearchUsecase はResearchUsecaseの新しいインスタンスを生成します。
// headlines と repo は nil を許容し、その場合はニュース参照・保存を行いません。
func NewResearchUsecase(
	resolver CompanyResolver,
	headlines HeadlineSource,
	generator ResearchGenerator,
	repo ReportRepository,
	reportCache ReportCache,
	ttl time.Duration,
) *ResearchUsecase {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &ResearchUsecase{
		resolver:  resolver,
		headlines: headlines,
		generator: generator,
		repo:      repo,
		cache:     reportCache,
		ttl:       ttl,
		now:       time.Now,
	}
}

// GenerateResearch は企業名と投資額に対するレポートを返します。
// 同じ企業名・投資額の組み合わせはTTLの間キャッシュから返されます。
func (u *ResearchUsecase) GenerateResearch(ctx context.Context, companyName string, investmentAmount float64) (*entity.ResearchReport, error) {
	name := strings.TrimSpace(companyName)
	if err := validateCompanyName(name); err != nil {
		return nil, err
	}
	if !(investmentAmount > 0) || math.IsInf(investmentAmount, 0) {
		return nil, domain.ErrInvalidInvestmentAmount
	}

	key := cache.Key(name, formatAmount(investmentAmount))
	return u.cache.GetOrCompute(ctx, key, u.ttl, func(ctx context.Context) (*entity.ResearchReport, error) {
		return u.generate(ctx, key, name, investmentAmount)
	})
}

// LatestReport はシンボルに対して最後に保存されたレポートを返します。
func (u *ResearchUsecase) LatestReport(ctx context.Context, symbol string) (*entity.ResearchReport, error) {
	if u.repo == nil {
		return nil, domain.ErrReportNotFound
	}
	return u.repo.LatestBySymbol(ctx, strings.ToUpper(strings.TrimSpace(symbol)))
}

func (u *ResearchUsecase) generate(ctx context.Context, key, name string, amount float64) (*entity.ResearchReport, error) {
	company, err := u.resolver.Resolve(ctx, name)
	if err != nil {
		return nil, err
	}

	headlines := u.recentHeadlines(ctx, company)
	prompt := fmt.Sprintf(promptTemplate, company.DisplayName, company.Symbol, formatAmount(amount), formatHeadlines(headlines))

	content, err := u.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate research for %s: %w", company.Symbol, err)
	}

	report := &entity.ResearchReport{
		ID:               uuid.NewString(),
		Symbol:           company.Symbol,
		CompanyName:      company.DisplayName,
		InvestmentAmount: amount,
		Content:          content,
		Headlines:        headlines,
		GeneratedAt:      u.now().UTC(),
	}

	if u.repo != nil {
		if err := u.repo.Save(ctx, key, report); err != nil {
			slog.Warn("failed to archive research report", "symbol", report.Symbol, "error", err)
		}
	}
	slog.Info("research report generated", "symbol", report.Symbol, "id", report.ID, "headlines", len(headlines))
	return report, nil
}

// recentHeadlines はニュース取得に失敗しても空で続行します。
func (u *ResearchUsecase) recentHeadlines(ctx context.Context, company companyentity.ResolvedCompany) []string {
	if u.headlines == nil {
		return nil
	}
	news, err := u.headlines.FetchCompanyNews(ctx, company, headlineWindowDays, headlineLimit)
	if err != nil {
		slog.Warn("failed to fetch headlines for research", "symbol", company.Symbol, "error", err)
		return nil
	}
	out := make([]string, 0, len(news))
	for _, n := range news {
		out = append(out, n.Headline)
	}
	return out
}

func validateCompanyName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: company name is required", domain.ErrInvalidCompanyName)
	}
	if utf8.RuneCountInString(name) > MaxCompanyNameLength {
		return fmt.Errorf("%w: exceeds maximum length of %d characters", domain.ErrInvalidCompanyName, MaxCompanyNameLength)
	}
	if !validCompanyName.MatchString(name) {
		return fmt.Errorf("%w: contains invalid characters", domain.ErrInvalidCompanyName)
	}
	return nil
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

func formatHeadlines(headlines []string) string {
	if len(headlines) == 0 {
		return "(none available)\n"
	}
	var b strings.Builder
	for _, h := range headlines {
		b.WriteString("- ")
		b.WriteString(h)
		b.WriteByte('\n')
	}
	return b.String()
}
