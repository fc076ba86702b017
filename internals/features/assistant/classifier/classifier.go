// Package classifier sanitizes assistant queries and decides how each one is answered.
package classifier

import (
	"context"
	"regexp"
	"strings"

	"evsu_library_backend/internals/features/assistant/keywords"
	"evsu_library_backend/internals/features/catalog/books/model"
)

type Kind string

const (
	Blocked  Kind = "blocked"
	Greeting Kind = "greeting"
	NoMatch  Kind = "no-match"
	Answer   Kind = "answer"
)

type Verdict struct {
	Kind      Kind
	Sanitized string
	Matches   []model.BookModel
}

type Searcher interface {
	Search(ctx context.Context, query string, limit int) ([]model.BookModel, error)
}

var (
	lineBreaks = regexp.MustCompile(`[\r\n]+`)
	// \s di RE2 tidak mencakup \v dan spasi unicode
	whitespace  = regexp.MustCompile(`[\s\v\p{Z}\x{85}\x{1c}-\x{1f}]+`)
	nonPrinting = regexp.MustCompile(`[^\x20-\x7E]+`)
	quotes      = strings.NewReplacer("```", "", `"`, "'")
)

// Sanitize: gabung whitespace jadi satu spasi, buang karakter di luar ASCII
// printable, hapus ``` dan ganti " dengan ', lalu trim.
func Sanitize(raw string) string {
	s := lineBreaks.ReplaceAllString(raw, " ")
	s = whitespace.ReplaceAllString(s, " ")
	s = nonPrinting.ReplaceAllString(s, "")
	s = quotes.Replace(s)
	return strings.TrimSpace(s)
}

type Classifier struct {
	Keywords keywords.Set
	Searcher Searcher
	Limit    int
}

func New(set keywords.Set, searcher Searcher, limit int) *Classifier {
	return &Classifier{Keywords: set, Searcher: searcher, Limit: limit}
}

// Classify: cek off-topic lebih dulu, tanpa search. Error hanya dari Searcher.
func (c *Classifier) Classify(ctx context.Context, raw string) (Verdict, error) {
	v := Verdict{Sanitized: Sanitize(raw)}
	lowered := strings.ToLower(v.Sanitized)

	if c.Keywords.OffTopic.In(lowered) {
		v.Kind = Blocked
		return v, nil
	}

	matches, err := c.Searcher.Search(ctx, v.Sanitized, c.Limit)
	if err != nil {
		return v, err
	}
	if len(matches) == 0 {
		if c.Keywords.Greeting.In(lowered) {
			v.Kind = Greeting
		} else {
			v.Kind = NoMatch
		}
		return v, nil
	}

	v.Kind = Answer
	v.Matches = matches
	return v, nil
}
