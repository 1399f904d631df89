// Package handler はbrandフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"research_backend/internal/feature/brand/domain"
	"research_backend/internal/feature/brand/domain/entity"
	"research_backend/internal/feature/brand/transport/http/dto"
	"research_backend/internal/feature/brand/usecase"
)

// BrandUsecase はブランド検出のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type BrandUsecase interface {
	DetectBrands(ctx context.Context, imageData []byte) ([]entity.BrandMatch, error)
}

// BrandHandler はブランド検出のHTTPリクエストを処理します。
type BrandHandler struct {
	uc BrandUsecase
}

// NewBrandHandler はBrandHandlerの新しいインスタンスを生成します。
func NewBrandHandler(uc BrandUsecase) *BrandHandler {
	return &BrandHandler{uc: uc}
}

// Detect は画像をアップロードしてロゴを検出し、企業に解決します。
//
// エンドポイント: POST /v1/brands/detect
// Content-Type: multipart/form-data
// フィールド: image（画像ファイル、最大10MB）
func (h *BrandHandler) Detect(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		slog.Warn("画像ファイルの取得に失敗", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "画像ファイルが必要です"})
		return
	}
	if file.Size > usecase.MaxImageSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "画像サイズが上限を超えています"})
		return
	}

	f, err := file.Open()
	if err != nil {
		slog.Error("画像ファイルのオープンに失敗", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "画像の読み込みに失敗しました"})
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("画像ファイルのクローズに失敗", "error", err)
		}
	}()

	imageData, err := io.ReadAll(io.LimitReader(f, usecase.MaxImageSize+1))
	if err != nil {
		slog.Error("画像データの読み取りに失敗", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "画像の読み込みに失敗しました"})
		return
	}

	matches, err := h.uc.DetectBrands(c.Request.Context(), imageData)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyImage):
			c.JSON(http.StatusBadRequest, gin.H{"error": "画像が空です"})
		case errors.Is(err, domain.ErrImageTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "画像サイズが上限を超えています"})
		case errors.Is(err, domain.ErrDetectorUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "ロゴ検出サービスが一時的に利用できません"})
		default:
			slog.Error("ロゴ検出に失敗", "error", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "ロゴ検出に失敗しました"})
		}
		return
	}

	out := make([]dto.BrandMatchResponse, 0, len(matches))
	for _, m := range matches {
		out = append(out, dto.BrandMatchResponse{
			Name:        m.Logo.Name,
			Confidence:  m.Logo.Confidence,
			Symbol:      m.Symbol,
			DisplayName: m.DisplayName,
			Resolved:    m.Resolved(),
		})
	}
	c.JSON(http.StatusOK, out)
}
