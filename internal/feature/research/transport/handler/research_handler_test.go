package handler_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	companydomain "research_backend/internal/feature/company/domain"
	"research_backend/internal/feature/research/domain"
	"research_backend/internal/feature/research/domain/entity"
	"research_backend/internal/feature/research/transport/handler"
)

// mockResearchUsecase はResearchUsecaseインターフェースのモック実装です。
type mockResearchUsecase struct {
	GenerateFunc func(ctx context.Context, companyName string, investmentAmount float64) (*entity.ResearchReport, error)
	LatestFunc   func(ctx context.Context, symbol string) (*entity.ResearchReport, error)
}

func (m *mockResearchUsecase) GenerateResearch(ctx context.Context, companyName string, investmentAmount float64) (*entity.ResearchReport, error) {
	return m.GenerateFunc(ctx, companyName, investmentAmount)
}

func (m *mockResearchUsecase) LatestReport(ctx context.Context, symbol string) (*entity.ResearchReport, error) {
	return m.LatestFunc(ctx, symbol)
}

var sampleReport = &entity.ResearchReport{
	ID:               "r-1",
	Symbol:           "AAPL",
	CompanyName:      "Apple Inc.",
	InvestmentAmount: 1000,
	Content: entity.ResearchContent{
		Summary:        "solid",
		Strengths:      []string{"brand"},
		Outlook:        "stable",
		Recommendation: "hold",
	},
	GeneratedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
}

const sampleReportJSON = `{"id":"r-1","symbol":"AAPL","company_name":"Apple Inc.","investment_amount":1000,
	"summary":"solid","strengths":["brand"],"risks":[],"outlook":"stable","recommendation":"hold",
	"headlines":[],"generated_at":"2026-03-01T00:00:00Z"}`

// TestResearchHandler_Generate はGenerateハンドラーの各種シナリオをテーブル駆動テストで検証します。
func TestResearchHandler_Generate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		body           string
		generateFunc   func(ctx context.Context, companyName string, investmentAmount float64) (*entity.ResearchReport, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success",
			body: `{"company_name":"apple","investment_amount":1000}`,
			generateFunc: func(ctx context.Context, companyName string, investmentAmount float64) (*entity.ResearchReport, error) {
				if companyName != "apple" || investmentAmount != 1000 {
					return nil, fmt.Errorf("unexpected args %q %v", companyName, investmentAmount)
				}
				return sampleReport, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   sampleReportJSON,
		},
		{
			name:           "failure: missing company name",
			body:           `{"investment_amount":1000}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"company_name and a positive investment_amount are required"}`,
		},
		{
			name:           "failure: negative amount",
			body:           `{"company_name":"apple","investment_amount":-5}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"company_name and a positive investment_amount are required"}`,
		},
		{
			name: "failure: invalid company name",
			body: `{"company_name":"<script>","investment_amount":1000}`,
			generateFunc: func(ctx context.Context, companyName string, investmentAmount float64) (*entity.ResearchReport, error) {
				return nil, fmt.Errorf("%w: contains invalid characters", domain.ErrInvalidCompanyName)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid company name: contains invalid characters"}`,
		},
		{
			name: "failure: company not found",
			body: `{"company_name":"zzz","investment_amount":1000}`,
			generateFunc: func(ctx context.Context, companyName string, investmentAmount float64) (*entity.ResearchReport, error) {
				return nil, fmt.Errorf("%w: %q", companydomain.ErrCompanyNotFound, companyName)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"company not found"}`,
		},
		{
			name: "failure: generator unavailable",
			body: `{"company_name":"apple","investment_amount":1000}`,
			generateFunc: func(ctx context.Context, companyName string, investmentAmount float64) (*entity.ResearchReport, error) {
				return nil, fmt.Errorf("generate research for AAPL: %w", domain.ErrGeneratorUnavailable)
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `{"error":"research generator temporarily unavailable"}`,
		},
		{
			name: "failure: generator error",
			body: `{"company_name":"apple","investment_amount":1000}`,
			generateFunc: func(ctx context.Context, companyName string, investmentAmount float64) (*entity.ResearchReport, error) {
				return nil, errors.New("gemini API request failed")
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"research generation failed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handler.NewResearchHandler(&mockResearchUsecase{GenerateFunc: tt.generateFunc})
			router := gin.New()
			router.POST("/v1/research", h.Generate)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPost, "/v1/research", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

// TestResearchHandler_Latest はLatestハンドラーの各種シナリオをテーブル駆動テストで検証します。
func TestResearchHandler_Latest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		query          string
		latestFunc     func(ctx context.Context, symbol string) (*entity.ResearchReport, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "success",
			query: "?symbol=AAPL",
			latestFunc: func(ctx context.Context, symbol string) (*entity.ResearchReport, error) {
				return sampleReport, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   sampleReportJSON,
		},
		{
			name:           "failure: missing symbol",
			query:          "",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"symbol is required"}`,
		},
		{
			name:  "failure: not found",
			query: "?symbol=MSFT",
			latestFunc: func(ctx context.Context, symbol string) (*entity.ResearchReport, error) {
				return nil, domain.ErrReportNotFound
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"research report not found"}`,
		},
		{
			name:  "failure: storage error",
			query: "?symbol=AAPL",
			latestFunc: func(ctx context.Context, symbol string) (*entity.ResearchReport, error) {
				return nil, errors.New("db down")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"failed to load research report"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handler.NewResearchHandler(&mockResearchUsecase{LatestFunc: tt.latestFunc})
			router := gin.New()
			router.GET("/v1/research/latest", h.Latest)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/v1/research/latest"+tt.query, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
