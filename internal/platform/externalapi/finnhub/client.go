package finnhub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	companyentity "research_backend/internal/feature/company/domain/entity"
	companyusecase "research_backend/internal/feature/company/usecase"
	newsdomain "research_backend/internal/feature/news/domain"
	"research_backend/internal/feature/news/domain/entity"
	newsusecase "research_backend/internal/feature/news/usecase"
	"research_backend/internal/platform/externalapi/finnhub/dto"
	"research_backend/internal/platform/metrics"
	"research_backend/internal/shared/ratelimiter"
)

const (
	providerName = "finnhub"
	// tokenHeader はAPIキーを渡すヘッダーです。キーはURLに含めない。
	tokenHeader = "X-Finnhub-Token"
)

// Client はFinnhub外部APIからニュースと銘柄検索結果を取得します。
type Client struct {
	cfg     Config
	client  *http.Client
	limiter ratelimiter.RateLimiterInterface
}

// ClientがNewsProviderとSymbolSearcherを実装していることをコンパイル時に検証します。
var (
	_ newsusecase.NewsProvider      = (*Client)(nil)
	_ companyusecase.SymbolSearcher = (*Client)(nil)
)

// NewClient は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
// limiter が nil の場合はリクエスト間隔を制御しません。
func NewClient(cfg Config, client *http.Client, limiter ratelimiter.RateLimiterInterface) *Client {
	return &Client{cfg: cfg, client: client, limiter: limiter}
}

// CompanyNews は指定期間（両端を含む）の企業ニュースを取得します。
// 2xx以外のレスポンスは *newsdomain.ProviderError として返します。
func (c *Client) CompanyNews(ctx context.Context, symbol string, from, to time.Time) ([]entity.RawNewsItem, error) {
	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("from", from.Format(time.DateOnly))
	q.Set("to", to.Format(time.DateOnly))

	var body []dto.CompanyNewsItem
	if err := c.get(ctx, "/company-news", q, &body); err != nil {
		return nil, err
	}

	items := make([]entity.RawNewsItem, 0, len(body))
	for _, n := range body {
		items = append(items, entity.RawNewsItem{
			Headline:   n.Headline,
			Summary:    n.Summary,
			URL:        n.URL,
			SourceName: n.Source,
			Datetime:   n.Datetime,
			ImageURL:   n.Image,
		})
	}
	return items, nil
}

// SearchSymbol は自由入力のクエリで銘柄を検索します。
func (c *Client) SearchSymbol(ctx context.Context, query string) ([]companyentity.SearchResult, error) {
	q := url.Values{}
	q.Set("q", query)

	var body dto.SymbolSearchResponse
	if err := c.get(ctx, "/search", q, &body); err != nil {
		return nil, err
	}

	results := make([]companyentity.SearchResult, 0, len(body.Result))
	for _, r := range body.Result {
		results = append(results, companyentity.SearchResult{Symbol: r.Symbol, Description: r.Description})
	}
	return results, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("finnhub rate limit: %w", err)
		}
	}

	u := fmt.Sprintf("%s%s?%s", c.cfg.BaseURL, path, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set(tokenHeader, c.cfg.APIKey)

	res, err := c.client.Do(req)
	if err != nil {
		metrics.RecordProvider(providerName, path, 0)
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()
	metrics.RecordProvider(providerName, path, res.StatusCode)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &newsdomain.ProviderError{Provider: providerName, StatusCode: res.StatusCode}
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("finnhub decode %s: %w", path, err)
	}
	return nil
}
