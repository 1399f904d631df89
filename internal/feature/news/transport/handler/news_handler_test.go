package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	companydomain "research_backend/internal/feature/company/domain"
	"research_backend/internal/feature/news/domain"
	"research_backend/internal/feature/news/domain/entity"
)

// mockNewsUsecase はNewsUsecaseインターフェースのモック実装です。
type mockNewsUsecase struct {
	FetchFunc func(ctx context.Context, companyQuery string, windowDays, limit int) ([]entity.NewsResult, error)
}

func (m *mockNewsUsecase) FetchRelevantNews(ctx context.Context, companyQuery string, windowDays, limit int) ([]entity.NewsResult, error) {
	return m.FetchFunc(ctx, companyQuery, windowDays, limit)
}

// TestNewsHandler_GetNews はGetNewsハンドラーの各種シナリオをテーブル駆動テストで検証します。
func TestNewsHandler_GetNews(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		query          string
		fetchFunc      func(ctx context.Context, companyQuery string, windowDays, limit int) ([]entity.NewsResult, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "success: query parameters are forwarded",
			query: "?company=apple&days=7&limit=1",
			fetchFunc: func(ctx context.Context, companyQuery string, windowDays, limit int) ([]entity.NewsResult, error) {
				if companyQuery != "apple" || windowDays != 7 || limit != 1 {
					return nil, fmt.Errorf("unexpected args %q %d %d", companyQuery, windowDays, limit)
				}
				return []entity.NewsResult{{
					Headline:       "Apple Inc. reports record profit",
					URL:            "https://example.com/1",
					SourceName:     "Reuters",
					PublishedAt:    1700000000000,
					RelevanceScore: 20,
					Sentiment:      entity.SentimentTag{Emoji: "🚀", Label: entity.SentimentPositive},
				}}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody: `[{"headline":"Apple Inc. reports record profit","summary":"","url":"https://example.com/1",
				"source":"Reuters","published_at":1700000000000,"relevance_score":20,
				"sentiment":{"emoji":"🚀","label":"Positive"}}]`,
		},
		{
			name:  "success: invalid numbers fall back to zero",
			query: "?company=apple&days=abc",
			fetchFunc: func(ctx context.Context, companyQuery string, windowDays, limit int) ([]entity.NewsResult, error) {
				if windowDays != 0 || limit != 0 {
					return nil, errors.New("defaults not applied")
				}
				return []entity.NewsResult{}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name:           "failure: missing company",
			query:          "",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"company is required"}`,
		},
		{
			name:  "failure: company not found",
			query: "?company=zzz",
			fetchFunc: func(ctx context.Context, companyQuery string, windowDays, limit int) ([]entity.NewsResult, error) {
				return nil, fmt.Errorf("%w: %q", companydomain.ErrCompanyNotFound, companyQuery)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"company not found"}`,
		},
		{
			name:  "failure: provider error",
			query: "?company=apple",
			fetchFunc: func(ctx context.Context, companyQuery string, windowDays, limit int) ([]entity.NewsResult, error) {
				return nil, &domain.ProviderError{Provider: "finnhub", StatusCode: 429}
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"finnhub http 429","status":429}`,
		},
		{
			name:           "failure: limit above maximum",
			query:          "?company=apple&limit=101",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"limit must not exceed 100"}`,
		},
		{
			name:  "success: limit at maximum is forwarded",
			query: "?company=apple&limit=100",
			fetchFunc: func(ctx context.Context, companyQuery string, windowDays, limit int) ([]entity.NewsResult, error) {
				if limit != 100 {
					return nil, fmt.Errorf("unexpected limit %d", limit)
				}
				return []entity.NewsResult{}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name:  "failure: unexpected error is not echoed",
			query: "?company=apple",
			fetchFunc: func(ctx context.Context, companyQuery string, windowDays, limit int) ([]entity.NewsResult, error) {
				return nil, errors.New("dial tcp 127.0.0.1:1: connect: connection refused")
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"failed to fetch news"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewNewsHandler(&mockNewsUsecase{FetchFunc: tt.fetchFunc})
			router := gin.New()
			router.GET("/v1/news", h.GetNews)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/v1/news"+tt.query, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

// TestNewsHandler_GetNews_DoesNotLeakUpstreamURL は上流のエラーに含まれるURLやAPIキーがレスポンスに出ないことを検証します。
func TestNewsHandler_GetNews_DoesNotLeakUpstreamURL(t *testing.T) {
	gin.SetMode(gin.TestMode)

	upstream := &url.Error{
		Op:  "Get",
		URL: "https://finnhub.io/api/v1/company-news?symbol=AAPL&token=SECRET-KEY",
		Err: errors.New("connection refused"),
	}
	h := NewNewsHandler(&mockNewsUsecase{FetchFunc: func(ctx context.Context, companyQuery string, windowDays, limit int) ([]entity.NewsResult, error) {
		return nil, upstream
	}})
	router := gin.New()
	router.GET("/v1/news", h.GetNews)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/v1/news?company=apple", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.NotContains(t, w.Body.String(), "SECRET-KEY")
	assert.NotContains(t, w.Body.String(), "finnhub.io")
}
