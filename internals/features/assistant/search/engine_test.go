package search

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evsu_library_backend/internals/features/catalog/books/model"
)

// fakeStore: substring title/author saja, cukup untuk menguji alur engine.
type fakeStore struct {
	books      []model.BookModel
	matchCalls int
	listCalls  int
	err        error
}

func (f *fakeStore) MatchAny(_ context.Context, terms []string, limit int) ([]model.BookModel, error) {
	f.matchCalls++
	if f.err != nil {
		return nil, f.err
	}
	var out []model.BookModel
	for _, b := range f.books {
		for _, t := range terms {
			t = strings.ToLower(t)
			if strings.Contains(strings.ToLower(b.Title), t) || strings.Contains(strings.ToLower(b.Author), t) {
				out = append(out, b)
				break
			}
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeStore) ListFirst(_ context.Context, n int) ([]model.BookModel, error) {
	f.listCalls++
	if len(f.books) > n {
		return f.books[:n], nil
	}
	return f.books, nil
}

func book(id uint, title, author string) model.BookModel {
	return model.BookModel{ID: id, Title: title, Author: author}
}

func titles(rows []model.BookModel) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Title)
	}
	return out
}

func TestSearchEmptyQuery(t *testing.T) {
	store := &fakeStore{books: []model.BookModel{book(1, "Dune", "Herbert")}}
	rows, err := NewEngine(store).Search(context.Background(), "   \t ", 5)
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Zero(t, store.matchCalls)
	assert.Zero(t, store.listCalls)
}

func TestSearchSubstringPathAndLimit(t *testing.T) {
	store := &fakeStore{books: []model.BookModel{
		book(1, "Dune", "Frank Herbert"),
		book(2, "Dune Messiah", "Frank Herbert"),
		book(3, "Children of Dune", "Frank Herbert"),
		book(4, "Emma", "Jane Austen"),
	}}
	rows, err := NewEngine(store).Search(context.Background(), "dune", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Dune", "Dune Messiah"}, titles(rows))
	assert.Zero(t, store.listCalls)
}

func TestSearchDefaultLimit(t *testing.T) {
	var books []model.BookModel
	for i := uint(1); i <= 8; i++ {
		books = append(books, book(i, "Atlas", "Anon"))
	}
	rows, err := NewEngine(&fakeStore{books: books}).Search(context.Background(), "atlas", 0)
	require.NoError(t, err)
	assert.Len(t, rows, DefaultLimit)
}

func TestSearchSimilarityFallback(t *testing.T) {
	store := &fakeStore{books: []model.BookModel{
		book(1, "Emma", "Austen"),
		book(2, "Moby Dick", "Melville"),
		book(3, "Moby Dock", "Someone"),
	}}
	// tidak ada substring yang cocok: "mobi" vs "moby", "dik" vs "dick"
	rows, err := NewEngine(store).Search(context.Background(), "mobi dik", 5)
	require.NoError(t, err)
	assert.Equal(t, 1, store.listCalls)

	require.NotEmpty(t, rows)
	assert.NotContains(t, titles(rows), "Emma")
	for _, r := range rows {
		ratio := Similarity(splitRunes("mobi dik"), splitRunes(strings.ToLower(r.Title)))
		assert.GreaterOrEqual(t, ratio, MinSimilarity)
	}
}

func TestSearchFallbackStableOnTies(t *testing.T) {
	store := &fakeStore{books: []model.BookModel{
		book(1, "Catz", "A"),
		book(2, "Catz", "B"),
		book(3, "Catz", "C"),
	}}
	for i := 0; i < 3; i++ {
		rows, err := NewEngine(store).Search(context.Background(), "catx", 5)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, []uint{1, 2, 3}, []uint{rows[0].ID, rows[1].ID, rows[2].ID})
	}
}

func TestSearchFallbackDescendingRatio(t *testing.T) {
	store := &fakeStore{books: []model.BookModel{
		book(1, "Harry Potters", "X"),
		book(2, "Harry Potter", "Y"),
		book(3, "Harry Potter and the Chamber of Secrets", "Z"),
	}}
	rows, err := NewEngine(store).Search(context.Background(), "hary poter", 5)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, uint(2), rows[0].ID)
	assert.Equal(t, uint(1), rows[1].ID)
}

func TestSearchStoreError(t *testing.T) {
	boom := errors.New("db down")
	_, err := NewEngine(&fakeStore{err: boom}).Search(context.Background(), "dune", 5)
	assert.ErrorIs(t, err, boom)
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity(splitRunes("dune"), splitRunes("dune")), 1e-9)
	assert.InDelta(t, 0.0, Similarity(splitRunes("abc"), splitRunes("xyz")), 1e-9)
	// 2*3/8
	assert.InDelta(t, 0.75, Similarity(splitRunes("abcd"), splitRunes("abce")), 1e-9)
}
