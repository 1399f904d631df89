// Package handler はcompanyフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"research_backend/internal/feature/company/domain"
	"research_backend/internal/feature/company/domain/entity"
	"research_backend/internal/feature/company/transport/http/dto"
)

// CompanyResolver は企業名解決のユースケースインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type CompanyResolver interface {
	Resolve(ctx context.Context, name string) (entity.ResolvedCompany, error)
	ListKnown() []entity.ResolvedCompany
}

// CompanyHandler は企業名解決に関するHTTPリクエストを処理します。
type CompanyHandler struct {
	uc CompanyResolver
}

// NewCompanyHandler は新しい CompanyHandler を作成します。
func NewCompanyHandler(uc CompanyResolver) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// List はエイリアステーブルに登録された企業の一覧を返します。
//
// エンドポイント: GET /v1/companies
func (h *CompanyHandler) List(c *gin.Context) {
	known := h.uc.ListKnown()
	out := make([]dto.CompanyItem, 0, len(known))
	for _, k := range known {
		out = append(out, dto.CompanyItem{Symbol: k.Symbol, DisplayName: k.DisplayName})
	}
	c.JSON(http.StatusOK, out)
}

// Resolve は企業名をティッカーシンボルに解決します。
//
// エンドポイント例:
// GET /v1/companies/resolve?name=coca-cola
func (h *CompanyHandler) Resolve(c *gin.Context) {
	name := c.Query("name")
	if strings.TrimSpace(name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	company, err := h.uc.Resolve(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrCompanyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "company not found"})
			return
		}
		slog.Error("company resolution failed", "name", name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.CompanyItem{Symbol: company.Symbol, DisplayName: company.DisplayName})
}
