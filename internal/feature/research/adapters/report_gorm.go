// Package adapters はresearchフィーチャーの永続化アダプターを提供します。
package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"research_backend/internal/feature/research/domain"
	"research_backend/internal/feature/research/domain/entity"
	"research_backend/internal/feature/research/usecase"
)

type reportGorm struct {
	db *gorm.DB
}

var _ usecase.ReportRepository = (*reportGorm)(nil)

// NewReportRepository はgormを使ったReportRepositoryを生成します。
func NewReportRepository(db *gorm.DB) *reportGorm {
	return &reportGorm{db: db}
}

// ResearchDocumentModel は research_documents テーブルの行です。
// レポート本体はJSONとして body に保存します。
type ResearchDocumentModel struct {
	ID        string    `gorm:"primaryKey;size:36"`
	CacheKey  string    `gorm:"size:255;not null;index"`
	Symbol    string    `gorm:"size:32;not null;index:research_sym_created,priority:1"`
	Body      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null;index:research_sym_created,priority:2"`
}

func (ResearchDocumentModel) TableName() string {
	return "research_documents"
}

// reportBody はbodyカラムに保存するJSON形式です。
type reportBody struct {
	CompanyName      string   `json:"company_name"`
	InvestmentAmount float64  `json:"investment_amount"`
	Summary          string   `json:"summary"`
	Strengths        []string `json:"strengths"`
	Risks            []string `json:"risks"`
	Outlook          string   `json:"outlook"`
	Recommendation   string   `json:"recommendation"`
	Headlines        []string `json:"headlines"`
}

func (r *reportGorm) Save(ctx context.Context, key string, report *entity.ResearchReport) error {
	b, err := json.Marshal(reportBody{
		CompanyName:      report.CompanyName,
		InvestmentAmount: report.InvestmentAmount,
		Summary:          report.Content.Summary,
		Strengths:        report.Content.Strengths,
		Risks:            report.Content.Risks,
		Outlook:          report.Content.Outlook,
		Recommendation:   report.Content.Recommendation,
		Headlines:        report.Headlines,
	})
	if err != nil {
		return fmt.Errorf("marshal research report: %w", err)
	}

	m := ResearchDocumentModel{
		ID:        report.ID,
		CacheKey:  key,
		Symbol:    report.Symbol,
		Body:      string(b),
		CreatedAt: report.GeneratedAt,
	}
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *reportGorm) LatestBySymbol(ctx context.Context, symbol string) (*entity.ResearchReport, error) {
	var m ResearchDocumentModel
	err := r.db.WithContext(ctx).
		Where("symbol = ?", symbol).
		Order("created_at DESC").
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrReportNotFound
	}
	if err != nil {
		return nil, err
	}

	var body reportBody
	if err := json.Unmarshal([]byte(m.Body), &body); err != nil {
		return nil, fmt.Errorf("decode research document %s: %w", m.ID, err)
	}
	return &entity.ResearchReport{
		ID:               m.ID,
		Symbol:           m.Symbol,
		CompanyName:      body.CompanyName,
		InvestmentAmount: body.InvestmentAmount,
		Content: entity.ResearchContent{
			Summary:        body.Summary,
			Strengths:      body.Strengths,
			Risks:          body.Risks,
			Outlook:        body.Outlook,
			Recommendation: body.Recommendation,
		},
		Headlines:   body.Headlines,
		GeneratedAt: m.CreatedAt,
	}, nil
}
