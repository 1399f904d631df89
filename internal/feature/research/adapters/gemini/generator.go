package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"research_backend/internal/feature/research/domain"
	"research_backend/internal/feature/research/domain/entity"
	"research_backend/internal/feature/research/usecase"
	"research_backend/internal/shared/circuitbreaker"
)

// researchPayload はモデルが返すJSONの形です。
type researchPayload struct {
	Summary        string   `json:"summary"`
	Strengths      []string `json:"strengths"`
	Risks          []string `json:"risks"`
	Outlook        string   `json:"outlook"`
	Recommendation string   `json:"recommendation"`
}

var responseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"summary":        {Type: genai.TypeString},
		"strengths":      {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"risks":          {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"outlook":        {Type: genai.TypeString},
		"recommendation": {Type: genai.TypeString},
	},
	Required: []string{"summary", "strengths", "risks", "outlook", "recommendation"},
}

// GeminiGenerator はGoogle Gemini APIを使用してリサーチレポートを生成します。
type GeminiGenerator struct {
	client  *genai.Client
	model   string
	breaker *circuitbreaker.CircuitBreaker
}

// GeminiGeneratorがResearchGeneratorを実装していることをコンパイル時に検証します。
var _ usecase.ResearchGenerator = (*GeminiGenerator)(nil)

// NewGeminiGenerator はGeminiGeneratorの新しいインスタンスを生成します。
// APIKey が空の場合はADCを使用し、環境変数 GOOGLE_GENAI_USE_VERTEXAI, GOOGLE_CLOUD_PROJECT, GOOGLE_CLOUD_LOCATION が必要です。
func NewGeminiGenerator(ctx context.Context, cfg Config, breaker *circuitbreaker.CircuitBreaker) (*GeminiGenerator, error) {
	var cc *genai.ClientConfig
	if cfg.APIKey != "" {
		cc = &genai.ClientConfig{
			APIKey:      cfg.APIKey,
			Backend:     genai.BackendGeminiAPI,
			HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
		}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	if breaker == nil {
		breaker = circuitbreaker.New(circuitbreaker.AIProviderConfig("gemini"))
	}
	return &GeminiGenerator{client: client, model: model, breaker: breaker}, nil
}

// Generate はプロンプトからJSON形式のレポート本文を生成します。
// 応答が不正なJSONの場合も失敗としてサーキットブレーカーに計上されます。
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (entity.ResearchContent, error) {
	res, err := g.breaker.Execute(func() (any, error) {
		resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   responseSchema,
		})
		if err != nil {
			return nil, fmt.Errorf("gemini API request failed: %w", err)
		}
		return parseContent(resp.Text())
	})
	if errors.Is(err, circuitbreaker.ErrOpenState) {
		return entity.ResearchContent{}, fmt.Errorf("%w: %w", domain.ErrGeneratorUnavailable, err)
	}
	if err != nil {
		return entity.ResearchContent{}, err
	}
	return res.(entity.ResearchContent), nil
}

func parseContent(text string) (entity.ResearchContent, error) {
	text = strings.TrimSpace(text)
	// モデルがコードフェンスで囲んで返すことがある
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	var p researchPayload
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &p); err != nil {
		return entity.ResearchContent{}, fmt.Errorf("decode gemini response: %w", err)
	}
	if p.Summary == "" {
		return entity.ResearchContent{}, errors.New("gemini response has no summary")
	}
	return entity.ResearchContent{
		Summary:        p.Summary,
		Strengths:      p.Strengths,
		Risks:          p.Risks,
		Outlook:        p.Outlook,
		Recommendation: p.Recommendation,
	}, nil
}
