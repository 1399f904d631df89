// Package entity はbrandフィーチャーのドメインモデルを定義します。
package entity

// DetectedLogo は画像から検出されたロゴを表します。
type DetectedLogo struct {
	Name       string  // 検出されたブランド名
	Confidence float32 // 信頼度スコア（0.0 ~ 1.0）
}

// BrandMatch は検出ロゴと、解決できた場合はその企業を表します。
type BrandMatch struct {
	Logo        DetectedLogo
	Symbol      string // 解決できなかった場合は空
	DisplayName string
}

// Resolved は企業に解決できたかを返します。
func (m BrandMatch) Resolved() bool { return m.Symbol != "" }
