// Package handler はnewsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	companydomain "research_backend/internal/feature/company/domain"
	"research_backend/internal/feature/news/domain"
	"research_backend/internal/feature/news/domain/entity"
	"research_backend/internal/feature/news/transport/http/dto"
)

// MaxLimit は1リクエストで返却できる件数の上限です。
const MaxLimit = 100

// NewsUsecase は関連ニュース取得のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type NewsUsecase interface {
	FetchRelevantNews(ctx context.Context, companyQuery string, windowDays, limit int) ([]entity.NewsResult, error)
}

// NewsHandler は企業ニュースのHTTPリクエストを処理します。
type NewsHandler struct {
	uc NewsUsecase
}

// NewNewsHandler は指定されたusecaseでNewsHandlerの新しいインスタンスを生成します。
func NewNewsHandler(uc NewsUsecase) *NewsHandler {
	return &NewsHandler{uc: uc}
}

// GetNews は企業名を受け取り、関連度順のニュースを感情タグ付きで返します。
//
// エンドポイント例:
// GET /v1/news?company=apple&days=30&limit=10
func (h *NewsHandler) GetNews(c *gin.Context) {
	company := c.Query("company")
	if strings.TrimSpace(company) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "company is required"})
		return
	}
	// 不正値・未指定の場合は0となり、usecase側でデフォルト値が使われる
	days, _ := strconv.Atoi(c.Query("days"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	if limit > MaxLimit {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must not exceed " + strconv.Itoa(MaxLimit)})
		return
	}

	news, err := h.uc.FetchRelevantNews(c.Request.Context(), company, days, limit)
	if err != nil {
		var perr *domain.ProviderError
		switch {
		case errors.Is(err, companydomain.ErrCompanyNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "company not found"})
		case errors.As(err, &perr):
			slog.Warn("news provider failed", "company", company, "provider", perr.Provider, "status", perr.StatusCode)
			c.JSON(http.StatusBadGateway, gin.H{"error": perr.Error(), "status": perr.StatusCode})
		default:
			// 詳細はログのみに残す
			slog.Error("failed to fetch news", "company", company, "error", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch news"})
		}
		return
	}

	out := make([]dto.NewsResponse, 0, len(news))
	for _, n := range news {
		out = append(out, dto.NewsResponse{
			Headline:       n.Headline,
			Summary:        n.Summary,
			URL:            n.URL,
			Source:         n.SourceName,
			ImageURL:       n.ImageURL,
			PublishedAt:    n.PublishedAt,
			RelevanceScore: n.RelevanceScore,
			Sentiment: dto.SentimentResponse{
				Emoji: n.Sentiment.Emoji,
				Label: string(n.Sentiment.Label),
			},
		})
	}
	c.JSON(http.StatusOK, out)
}
