// Package entity はresearchフィーチャーのドメインモデルを定義します。
package entity

import "time"

// ResearchContent はAIが生成するレポート本文です。
type ResearchContent struct {
	Summary        string   // 概要
	Strengths      []string // 強み
	Risks          []string // リスク
	Outlook        string   // 見通し
	Recommendation string   // 投資額を踏まえた推奨
}

// ResearchReport は企業ごとに生成されたリサーチレポートを表します。
type ResearchReport struct {
	ID               string
	Symbol           string
	CompanyName      string
	InvestmentAmount float64
	Content          ResearchContent
	Headlines        []string // 生成時に参照したニュース見出し
	GeneratedAt      time.Time
}
