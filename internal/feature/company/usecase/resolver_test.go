package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"research_backend/internal/feature/company/domain"
	"research_backend/internal/feature/company/domain/entity"
)

// mockSymbolSearcher はSymbolSearcherインターフェースのモック実装です。
type mockSymbolSearcher struct {
	SearchFunc  func(ctx context.Context, query string) ([]entity.SearchResult, error)
	SearchCalls int
}

func (m *mockSymbolSearcher) SearchSymbol(ctx context.Context, query string) ([]entity.SearchResult, error) {
	m.SearchCalls++
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query)
	}
	return nil, nil
}

// TestResolver_Resolve_AllAliases は全エイリアスが大文字小文字・前後の空白に関係なく解決されることを検証します。
func TestResolver_Resolve_AllAliases(t *testing.T) {
	t.Parallel()

	r := NewResolver(nil)
	for _, a := range aliasTable {
		for _, input := range []string{a.key, strings.ToUpper(a.key), "  " + a.key + "\t"} {
			got, err := r.Resolve(context.Background(), input)
			require.NoError(t, err, "input %q", input)
			assert.Equal(t, a.company.Symbol, got.Symbol, "input %q", input)
		}
	}
}

// TestResolver_Resolve はResolveの各ルールをテーブル駆動テストで検証します。
func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected entity.ResolvedCompany
	}{
		{
			name:     "exact alias",
			input:    "apple",
			expected: entity.ResolvedCompany{Symbol: "AAPL", DisplayName: "Apple Inc."},
		},
		{
			name:     "several aliases share a symbol: coca-cola",
			input:    "coca-cola",
			expected: entity.ResolvedCompany{Symbol: "KO", DisplayName: "The Coca-Cola Company"},
		},
		{
			name:     "several aliases share a symbol: coke",
			input:    "Coke",
			expected: entity.ResolvedCompany{Symbol: "KO", DisplayName: "The Coca-Cola Company"},
		},
		{
			name:     "input contains alias",
			input:    "Apple Inc.",
			expected: entity.ResolvedCompany{Symbol: "AAPL", DisplayName: "Apple Inc."},
		},
		{
			name:     "alias contains input",
			input:    "netfl",
			expected: entity.ResolvedCompany{Symbol: "NFLX", DisplayName: "Netflix Inc."},
		},
		{
			name:     "first alias in table order wins",
			input:    "pepsico and coke",
			expected: entity.ResolvedCompany{Symbol: "KO", DisplayName: "The Coca-Cola Company"},
		},
		{
			name:     "ticker literal",
			input:    "AAPL",
			expected: entity.ResolvedCompany{Symbol: "AAPL", DisplayName: "AAPL"},
		},
		{
			name:     "lower-case ticker literal is upper-cased",
			input:    " xyz ",
			expected: entity.ResolvedCompany{Symbol: "XYZ", DisplayName: "XYZ"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			searcher := &mockSymbolSearcher{}
			r := NewResolver(searcher)

			got, err := r.Resolve(context.Background(), tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.Zero(t, searcher.SearchCalls, "live lookup should not run when a static rule matches")
		})
	}
}

// TestResolver_Resolve_LiveLookup は静的ルールで解決できない場合に外部検索へフォールバックすることを検証します。
func TestResolver_Resolve_LiveLookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		searchFunc func(ctx context.Context, query string) ([]entity.SearchResult, error)
		expected   entity.ResolvedCompany
		wantErr    bool
	}{
		{
			name: "success: first result is used",
			searchFunc: func(ctx context.Context, query string) ([]entity.SearchResult, error) {
				return []entity.SearchResult{
					{Symbol: "pltr", Description: "PALANTIR TECHNOLOGIES INC-A"},
					{Symbol: "PLTR.MX", Description: "PALANTIR TECHNOLOGIES INC"},
				}, nil
			},
			expected: entity.ResolvedCompany{Symbol: "PLTR", DisplayName: "PALANTIR TECHNOLOGIES INC-A"},
		},
		{
			name: "failure: provider error is swallowed into not found",
			searchFunc: func(ctx context.Context, query string) ([]entity.SearchResult, error) {
				return nil, errors.New("finnhub http 503")
			},
			wantErr: true,
		},
		{
			name: "failure: empty result",
			searchFunc: func(ctx context.Context, query string) ([]entity.SearchResult, error) {
				return []entity.SearchResult{}, nil
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			searcher := &mockSymbolSearcher{SearchFunc: tt.searchFunc}
			r := NewResolver(searcher)

			got, err := r.Resolve(context.Background(), "Palantir Technologies")

			assert.Equal(t, 1, searcher.SearchCalls)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// TestResolver_Resolve_NotFound は解決できない入力でErrCompanyNotFoundが返されることを検証します。
func TestResolver_Resolve_NotFound(t *testing.T) {
	t.Parallel()

	r := NewResolver(nil)
	for _, input := range []string{"", "   ", "Zzyzx Holdings Corporation", "123"} {
		_, err := r.Resolve(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrCompanyNotFound, "input %q", input)
	}
}

// TestResolver_ListKnown は銘柄ごとに1件ずつ、テーブル順で返されることを検証します。
func TestResolver_ListKnown(t *testing.T) {
	t.Parallel()

	known := NewResolver(nil).ListKnown()

	seen := map[string]bool{}
	for _, c := range known {
		assert.False(t, seen[c.Symbol], "duplicate symbol %s", c.Symbol)
		seen[c.Symbol] = true
	}
	require.NotEmpty(t, known)
	assert.Equal(t, "AAPL", known[0].Symbol)
	assert.True(t, seen["KO"])
}
