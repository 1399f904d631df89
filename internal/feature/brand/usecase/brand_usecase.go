// Package usecase はbrandフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"research_backend/internal/feature/brand/domain"
	"research_backend/internal/feature/brand/domain/entity"
	companydomain "research_backend/internal/feature/company/domain"
	companyentity "research_backend/internal/feature/company/domain/entity"
)

const (
	// MaxImageSize は画像アップロードの最大サイズ（10MB）です。
	MaxImageSize = 10 * 1024 * 1024
	// DefaultMinConfidence は企業解決の対象とするロゴの最低信頼度です。
	DefaultMinConfidence float32 = 0.5
)

// LogoDetector は画像からロゴを検出するリポジトリインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type LogoDetector interface {
	// DetectLogos は画像バイト列からロゴを検出し、検出結果を返します。
	DetectLogos(ctx context.Context, imageData []byte) ([]entity.DetectedLogo, error)
}

// CompanyResolver はブランド名を企業に解決します。
type CompanyResolver interface {
	Resolve(ctx context.Context, name string) (companyentity.ResolvedCompany, error)
}

// LoadMinConfidence は BRAND_MIN_CONFIDENCE を読み込みます。未設定・不正値の場合はデフォルト値です。
func LoadMinConfidence() float32 {
	v := os.Getenv("BRAND_MIN_CONFIDENCE")
	if v == "" {
		return DefaultMinConfidence
	}
	f, err := strconv.ParseFloat(v, 32)
	if err != nil || f < 0 || f > 1 {
		slog.Warn("invalid BRAND_MIN_CONFIDENCE, using default", "value", v)
		return DefaultMinConfidence
	}
	return float32(f)
}

// BrandUsecase はロゴ検出と企業解決を組み合わせます。
type BrandUsecase struct {
	detector      LogoDetector
	resolver      CompanyResolver
	minConfidence float32
}

// NewBrandUsecase はBrandUsecaseの新しいインスタンスを生成します。
func NewBrandUsecase(detector LogoDetector, resolver CompanyResolver, minConfidence float32) *BrandUsecase {
	return &BrandUsecase{detector: detector, resolver: resolver, minConfidence: minConfidence}
}

// DetectBrands は画像内のロゴを検出し、最低信頼度以上のものを企業に解決します。
// 解決できないロゴはシンボルなしで返します。
func (u *BrandUsecase) DetectBrands(ctx context.Context, imageData []byte) ([]entity.BrandMatch, error) {
	if len(imageData) == 0 {
		return nil, domain.ErrEmptyImage
	}
	if len(imageData) > MaxImageSize {
		return nil, fmt.Errorf("%w: maximum is %d bytes", domain.ErrImageTooLarge, MaxImageSize)
	}

	logos, err := u.detector.DetectLogos(ctx, imageData)
	if err != nil {
		return nil, err
	}

	out := make([]entity.BrandMatch, 0, len(logos))
	for _, logo := range logos {
		if logo.Confidence < u.minConfidence {
			continue
		}
		match := entity.BrandMatch{Logo: logo}
		company, err := u.resolver.Resolve(ctx, logo.Name)
		switch {
		case err == nil:
			match.Symbol = company.Symbol
			match.DisplayName = company.DisplayName
		case errors.Is(err, companydomain.ErrCompanyNotFound):
			// 未解決のまま返す
		default:
			return nil, fmt.Errorf("resolve brand %q: %w", logo.Name, err)
		}
		out = append(out, match)
	}
	return out, nil
}
