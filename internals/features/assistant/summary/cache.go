package summary

import (
	"context"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2/log"
)

// Store: key-value insert-if-absent. Nilai tidak pernah diinvalidasi.
type Store interface {
	Get(key string) (string, bool)
	PutIfAbsent(key, value string) string
}

type MemoryStore struct {
	m sync.Map
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) Get(key string) (string, bool) {
	v, ok := s.m.Load(key)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// PutIfAbsent mengembalikan nilai yang akhirnya tersimpan.
func (s *MemoryStore) PutIfAbsent(key, value string) string {
	v, _ := s.m.LoadOrStore(key, value)
	return v.(string)
}

type Fetcher interface {
	Fetch(ctx context.Context, title string) (string, error)
}

// Lookup: cache per judul lowercase di atas Fetcher.
// Hanya hasil yang tidak kosong yang disimpan; lookup gagal dicoba lagi di request lain.
type Lookup struct {
	Fetcher Fetcher
	Store   Store
}

func NewLookup(f Fetcher, s Store) *Lookup {
	if s == nil {
		s = NewMemoryStore()
	}
	return &Lookup{Fetcher: f, Store: s}
}

// Summary tidak pernah gagal; error fetch = "".
func (l *Lookup) Summary(ctx context.Context, title string) string {
	key := strings.ToLower(title)
	if v, ok := l.Store.Get(key); ok {
		return v
	}
	desc, err := l.Fetcher.Fetch(ctx, title)
	if err != nil {
		log.Warnf("[Summary] lookup %q: %v", title, err)
		return ""
	}
	if desc == "" {
		return ""
	}
	return l.Store.PutIfAbsent(key, desc)
}
