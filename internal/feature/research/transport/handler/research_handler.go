// Package handler はresearchフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	companydomain "research_backend/internal/feature/company/domain"
	"research_backend/internal/feature/research/domain"
	"research_backend/internal/feature/research/domain/entity"
	"research_backend/internal/feature/research/transport/http/dto"
)

// ResearchUsecase はリサーチレポートのユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ResearchUsecase interface {
	GenerateResearch(ctx context.Context, companyName string, investmentAmount float64) (*entity.ResearchReport, error)
	LatestReport(ctx context.Context, symbol string) (*entity.ResearchReport, error)
}

// ResearchHandler はリサーチレポートのHTTPリクエストを処理します。
type ResearchHandler struct {
	uc ResearchUsecase
}

// NewResearchHandler はResearchHandlerの新しいインスタンスを生成します。
func NewResearchHandler(uc ResearchUsecase) *ResearchHandler {
	return &ResearchHandler{uc: uc}
}

// Generate は企業名と投資額からリサーチレポートを生成します。
//
// エンドポイント: POST /v1/research
// Content-Type: application/json
func (h *ResearchHandler) Generate(c *gin.Context) {
	var req dto.ResearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("research request validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "company_name and a positive investment_amount are required"})
		return
	}

	report, err := h.uc.GenerateResearch(c.Request.Context(), req.CompanyName, req.InvestmentAmount)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCompanyName), errors.Is(err, domain.ErrInvalidInvestmentAmount):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, companydomain.ErrCompanyNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "company not found"})
		case errors.Is(err, domain.ErrGeneratorUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "research generator temporarily unavailable"})
		default:
			slog.Error("research generation failed", "error", err, "company", req.CompanyName)
			c.JSON(http.StatusBadGateway, gin.H{"error": "research generation failed"})
		}
		return
	}

	c.JSON(http.StatusOK, toResponse(report))
}

// Latest はシンボルに対して最後に生成されたレポートを返します。
//
// エンドポイント例:
// GET /v1/research/latest?symbol=AAPL
func (h *ResearchHandler) Latest(c *gin.Context) {
	symbol := c.Query("symbol")
	if strings.TrimSpace(symbol) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symbol is required"})
		return
	}

	report, err := h.uc.LatestReport(c.Request.Context(), symbol)
	if err != nil {
		if errors.Is(err, domain.ErrReportNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "research report not found"})
			return
		}
		slog.Error("failed to load research report", "error", err, "symbol", symbol)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load research report"})
		return
	}

	c.JSON(http.StatusOK, toResponse(report))
}

func toResponse(r *entity.ResearchReport) dto.ResearchResponse {
	return dto.ResearchResponse{
		ID:               r.ID,
		Symbol:           r.Symbol,
		CompanyName:      r.CompanyName,
		InvestmentAmount: r.InvestmentAmount,
		Summary:          r.Content.Summary,
		Strengths:        nonNil(r.Content.Strengths),
		Risks:            nonNil(r.Content.Risks),
		Outlook:          r.Content.Outlook,
		Recommendation:   r.Content.Recommendation,
		Headlines:        nonNil(r.Headlines),
		GeneratedAt:      r.GeneratedAt,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
