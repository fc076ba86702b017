// Package summary looks up book synopses from Open Library and memoizes them per title.
package summary

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bytedance/sonic"
)

const (
	DefaultTimeout = 10 * time.Second
	MaxRunes       = 800
)

type OpenLibrary struct {
	BaseURL string
	http    *http.Client
}

func NewOpenLibrary(baseURL string, timeout time.Duration) *OpenLibrary {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &OpenLibrary{
		BaseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type searchResult struct {
	Docs []struct {
		Key string `json:"key"`
	} `json:"docs"`
}

// Fetch: cari judul, ambil record work pertama, kembalikan description.
// "" tanpa error = tidak ada dokumen atau description.
func (o *OpenLibrary) Fetch(ctx context.Context, title string) (string, error) {
	var found searchResult
	if err := o.getJSON(ctx, o.BaseURL+"/search.json?title="+url.QueryEscape(title), &found); err != nil {
		return "", err
	}
	if len(found.Docs) == 0 || found.Docs[0].Key == "" {
		return "", nil
	}

	var work map[string]any
	if err := o.getJSON(ctx, o.BaseURL+found.Docs[0].Key+".json", &work); err != nil {
		return "", err
	}
	return truncate(description(work["description"])), nil
}

// description bisa string atau {"type": ..., "value": "..."}.
func description(v any) string {
	switch d := v.(type) {
	case string:
		return d
	case map[string]any:
		if s, ok := d["value"].(string); ok {
			return s
		}
	}
	return ""
}

func truncate(s string) string {
	if utf8.RuneCountInString(s) <= MaxRunes {
		return s
	}
	r := []rune(s)
	return strings.TrimRight(string(r[:MaxRunes]), " \t\r\n\v\f") + "..."
}

func (o *OpenLibrary) getJSON(ctx context.Context, target string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := o.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("open library %s: %s", req.URL.Path, resp.Status)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return sonic.Unmarshal(raw, out)
}
