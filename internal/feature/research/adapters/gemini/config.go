// Package gemini はGoogle Gemini APIを使用したリサーチレポート生成クライアントを提供します。
package gemini

import "os"

// DefaultModel はGemini APIのデフォルトモデルです。
const DefaultModel = "gemini-2.5-flash"

// Config holds configuration for the Gemini client.
type Config struct {
	APIKey  string // 空の場合はADC（GOOGLE_GENAI_USE_VERTEXAI など）を使用
	Model   string
	BaseURL string // テストやプロキシ用。空の場合はSDKのデフォルト
}

// LoadConfig loads Gemini configuration from environment variables.
func LoadConfig() Config {
	cfg := Config{
		APIKey:  os.Getenv("GEMINI_API_KEY"),
		Model:   os.Getenv("GEMINI_MODEL"),
		BaseURL: os.Getenv("GEMINI_BASE_URL"),
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	return cfg
}
