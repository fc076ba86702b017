// Package grouping folds raw catalog matches into one entry per (title, author)
// and renders them for the model prompt and for the chat widget.
package grouping

import (
	"sort"
	"strings"

	"evsu_library_backend/internals/features/catalog/books/model"
)

type GroupedEntry struct {
	Title           string   `json:"title"`
	Author          string   `json:"author"`
	TypeName        string   `json:"book_type,omitempty"`
	LocationName    string   `json:"book_location,omitempty"`
	TotalCopies     int      `json:"total_copies"`
	AvailableCopies int      `json:"copies_available"`
	Status          string   `json:"status,omitempty"`
	CallNumbers     []string `json:"call_numbers"`
	Summary         string   `json:"summary,omitempty"`
}

type groupKey struct{ title, author string }

func keyOf(b *model.BookModel) groupKey {
	return groupKey{strings.ToLower(b.Title), strings.ToLower(b.Author)}
}

// merge melipat satu anggota ke grup.
//   - title/author: dari anggota pertama
//   - type/location: nilai non-kosong terakhir
//   - total/available: dijumlah, inventory kosong = 0
//   - status: status inventory anggota terakhir yang punya inventory
//   - call number: set berurutan, kemunculan pertama dipertahankan
func merge(g *GroupedEntry, b *model.BookModel) {
	if t := b.TypeName(); t != "" {
		g.TypeName = t
	}
	if l := b.LocationName(); l != "" {
		g.LocationName = l
	}
	if inv := b.Inventory; inv != nil {
		g.TotalCopies += inv.TotalCopies
		g.AvailableCopies += inv.CopiesAvailable
		g.Status = inv.Status
	}
	if cn := b.CallNumberString(); cn != "" {
		for _, existing := range g.CallNumbers {
			if existing == cn {
				return
			}
		}
		g.CallNumbers = append(g.CallNumbers, cn)
	}
}

// Group mengelompokkan entries lalu mengurutkan berdasarkan judul lowercase.
func Group(entries []model.BookModel) []GroupedEntry {
	index := make(map[groupKey]int, len(entries))
	out := make([]GroupedEntry, 0, len(entries))

	for i := range entries {
		b := &entries[i]
		k := keyOf(b)
		pos, ok := index[k]
		if !ok {
			out = append(out, GroupedEntry{Title: b.Title, Author: b.Author, CallNumbers: []string{}})
			pos = len(out) - 1
			index[k] = pos
		}
		merge(&out[pos], b)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title)
	})
	return out
}
