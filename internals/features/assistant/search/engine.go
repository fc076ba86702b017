// Package search finds catalog entries for free-text assistant queries.
//
// Substring matching over catalog fields runs first. When nothing matches, the
// first FallbackWindow entries are ranked by title similarity instead.
package search

import (
	"context"
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"evsu_library_backend/internals/features/catalog/books/model"
)

const (
	DefaultLimit   = 5
	FallbackWindow = 100
	MinSimilarity  = 0.6
)

// CatalogStore dipenuhi oleh books/repository.BookRepository.
// Kedua method wajib mengembalikan urutan stabil (primary key ascending).
type CatalogStore interface {
	MatchAny(ctx context.Context, terms []string, limit int) ([]model.BookModel, error)
	ListFirst(ctx context.Context, n int) ([]model.BookModel, error)
}

type Engine struct {
	Store CatalogStore
}

func NewEngine(store CatalogStore) *Engine { return &Engine{Store: store} }

// Search: limit <= 0 memakai DefaultLimit.
func (e *Engine) Search(ctx context.Context, query string, limit int) ([]model.BookModel, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	terms := strings.Fields(query)
	if len(terms) == 0 {
		return nil, nil
	}

	rows, err := e.Store.MatchAny(ctx, terms, limit)
	if err != nil {
		return nil, err
	}
	if len(rows) > 0 {
		return rows, nil
	}

	window, err := e.Store.ListFirst(ctx, FallbackWindow)
	if err != nil {
		return nil, err
	}
	return rankBySimilarity(window, strings.ToLower(query), limit), nil
}

type scored struct {
	book  model.BookModel
	ratio float64
}

func rankBySimilarity(rows []model.BookModel, lowered string, limit int) []model.BookModel {
	q := splitRunes(lowered)
	hits := make([]scored, 0, len(rows))
	for _, b := range rows {
		r := Similarity(q, splitRunes(strings.ToLower(b.Title)))
		if r >= MinSimilarity {
			hits = append(hits, scored{book: b, ratio: r})
		}
	}
	// stable: skor sama tetap urut kemunculan
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].ratio > hits[j].ratio })

	if len(hits) > limit {
		hits = hits[:limit]
	}
	out := make([]model.BookModel, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.book)
	}
	return out
}

// Similarity: rasio Ratcliff/Obershelp (2*M/T) di [0,1] per rune.
func Similarity(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	return difflib.NewMatcher(a, b).Ratio()
}

func splitRunes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
