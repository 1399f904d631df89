// Package vision はGoogle Cloud Vision APIを使用したロゴ検出クライアントを提供します。
package vision

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	gvision "cloud.google.com/go/vision/v2/apiv1"
	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"

	"research_backend/internal/feature/brand/domain"
	"research_backend/internal/feature/brand/domain/entity"
	"research_backend/internal/feature/brand/usecase"
	"research_backend/internal/shared/circuitbreaker"
)

// maxLogoResults はVision APIに要求する検出数の上限です。
const maxLogoResults = 10

// annotateFunc は BatchAnnotateImages 呼び出しです。テストで差し替えます。
type annotateFunc func(ctx context.Context, req *visionpb.BatchAnnotateImagesRequest) (*visionpb.BatchAnnotateImagesResponse, error)

// LogoDetector はCloud Visionでロゴを検出し、同じブランドの重複を1件にまとめます。
// API呼び出しはサーキットブレーカー越しに行います。
type LogoDetector struct {
	annotate annotateFunc
	closer   func() error
	breaker  *circuitbreaker.CircuitBreaker
}

var _ usecase.LogoDetector = (*LogoDetector)(nil)

// NewLogoDetector はADCでVisionクライアントを生成します。breaker が nil の場合はデフォルト設定を使います。
func NewLogoDetector(ctx context.Context, breaker *circuitbreaker.CircuitBreaker) (*LogoDetector, error) {
	client, err := gvision.NewImageAnnotatorClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create vision client: %w", err)
	}
	annotate := func(ctx context.Context, req *visionpb.BatchAnnotateImagesRequest) (*visionpb.BatchAnnotateImagesResponse, error) {
		return client.BatchAnnotateImages(ctx, req)
	}
	return newLogoDetector(annotate, client.Close, breaker), nil
}

func newLogoDetector(annotate annotateFunc, closer func() error, breaker *circuitbreaker.CircuitBreaker) *LogoDetector {
	if breaker == nil {
		breaker = circuitbreaker.New(circuitbreaker.AIProviderConfig("vision"))
	}
	return &LogoDetector{annotate: annotate, closer: closer, breaker: breaker}
}

// Close はVision APIクライアントを解放します。
func (d *LogoDetector) Close() error {
	if d.closer == nil {
		return nil
	}
	return d.closer()
}

// DetectLogos は画像内のロゴを信頼度の高い順に返します。
// ブレーカーが開いている間は domain.ErrDetectorUnavailable を返します。
func (d *LogoDetector) DetectLogos(ctx context.Context, imageData []byte) ([]entity.DetectedLogo, error) {
	res, err := d.breaker.Execute(func() (any, error) {
		resp, err := d.annotate(ctx, logoRequest(imageData))
		if err != nil {
			return nil, fmt.Errorf("vision API request failed: %w", err)
		}
		return toLogos(resp)
	})
	if errors.Is(err, circuitbreaker.ErrOpenState) {
		return nil, fmt.Errorf("%w: %w", domain.ErrDetectorUnavailable, err)
	}
	if err != nil {
		return nil, err
	}
	logos, _ := res.([]entity.DetectedLogo)
	return logos, nil
}

func logoRequest(imageData []byte) *visionpb.BatchAnnotateImagesRequest {
	return &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{{
			Image:    &visionpb.Image{Content: imageData},
			Features: []*visionpb.Feature{{Type: visionpb.Feature_LOGO_DETECTION, MaxResults: maxLogoResults}},
		}},
	}
}

// toLogos は先頭画像の注釈を変換します。
// 同名のロゴ（大文字小文字を区別しない）は最も高い信頼度の1件に統合し、信頼度の降順に並べます。
func toLogos(resp *visionpb.BatchAnnotateImagesResponse) ([]entity.DetectedLogo, error) {
	if len(resp.GetResponses()) == 0 {
		return nil, nil
	}
	first := resp.GetResponses()[0]
	if e := first.GetError(); e != nil {
		return nil, fmt.Errorf("vision API error: %s", e.GetMessage())
	}

	var logos []entity.DetectedLogo
	seen := make(map[string]int)
	for _, a := range first.GetLogoAnnotations() {
		name := strings.TrimSpace(a.GetDescription())
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if i, ok := seen[key]; ok {
			logos[i].Confidence = max(logos[i].Confidence, a.GetScore())
			continue
		}
		seen[key] = len(logos)
		logos = append(logos, entity.DetectedLogo{Name: name, Confidence: a.GetScore()})
	}

	slices.SortStableFunc(logos, func(a, b entity.DetectedLogo) int {
		return cmp.Compare(b.Confidence, a.Confidence)
	})
	return logos, nil
}
