// Package usecase implements company name resolution.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"research_backend/internal/feature/company/domain"
	"research_backend/internal/feature/company/domain/entity"
)

// tickerLiteral matches input that already looks like a ticker symbol.
var tickerLiteral = regexp.MustCompile(`^[A-Z]{1,5}$`)

// SymbolSearcher looks up ticker symbols on a live provider.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SymbolSearcher interface {
	SearchSymbol(ctx context.Context, query string) ([]entity.SearchResult, error)
}

// Resolver maps free-text company names to ticker symbols.
// It is the single shared resolver for every feature that needs a symbol.
type Resolver struct {
	searcher SymbolSearcher
}

// NewResolver creates a Resolver. searcher may be nil, in which case the
// live lookup fallback is skipped.
func NewResolver(searcher SymbolSearcher) *Resolver {
	return &Resolver{searcher: searcher}
}

// Resolve maps name to a ResolvedCompany. The first matching rule wins:
// exact alias, substring alias, ticker literal, then live lookup.
// It returns domain.ErrCompanyNotFound when nothing matches.
func (r *Resolver) Resolve(ctx context.Context, name string) (entity.ResolvedCompany, error) {
	trimmed := strings.TrimSpace(name)
	normalized := strings.ToLower(trimmed)
	if normalized == "" {
		return entity.ResolvedCompany{}, fmt.Errorf("%w: empty name", domain.ErrCompanyNotFound)
	}

	// 1) 完全一致
	if c, ok := aliasIndex[normalized]; ok {
		return c, nil
	}

	// 2) 部分一致（双方向）。テーブル順で最初にヒットしたものを採用
	for _, a := range aliasTable {
		if strings.Contains(normalized, a.key) || strings.Contains(a.key, normalized) {
			return a.company, nil
		}
	}

	// 3) ティッカーそのものが入力された場合
	if upper := strings.ToUpper(trimmed); tickerLiteral.MatchString(upper) {
		return entity.ResolvedCompany{Symbol: upper, DisplayName: upper}, nil
	}

	// 4) 外部APIでの検索
	if c, ok := r.lookup(ctx, trimmed); ok {
		return c, nil
	}

	return entity.ResolvedCompany{}, fmt.Errorf("%w: %q", domain.ErrCompanyNotFound, trimmed)
}

// lookup queries the live searcher. Provider failures are logged and reported
// as a miss so callers see a uniform not-found result.
func (r *Resolver) lookup(ctx context.Context, name string) (entity.ResolvedCompany, bool) {
	if r.searcher == nil {
		return entity.ResolvedCompany{}, false
	}
	results, err := r.searcher.SearchSymbol(ctx, name)
	if err != nil {
		slog.Warn("symbol search failed", "query", name, "error", err)
		return entity.ResolvedCompany{}, false
	}
	if len(results) == 0 || results[0].Symbol == "" {
		return entity.ResolvedCompany{}, false
	}
	first := results[0]
	return entity.ResolvedCompany{
		Symbol:      strings.ToUpper(first.Symbol),
		DisplayName: first.Description,
	}, true
}

// ListKnown returns one entry per distinct symbol in the alias table, in table order.
func (r *Resolver) ListKnown() []entity.ResolvedCompany {
	seen := make(map[string]struct{}, len(aliasTable))
	out := make([]entity.ResolvedCompany, 0, len(aliasTable))
	for _, a := range aliasTable {
		if _, ok := seen[a.company.Symbol]; ok {
			continue
		}
		seen[a.company.Symbol] = struct{}{}
		out = append(out, a.company)
	}
	return out
}
