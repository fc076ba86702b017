package grouping

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"evsu_library_backend/internals/features/assistant/keywords"
)

var triggers = keywords.Defaults().Table

func TestFormatContextBlock(t *testing.T) {
	block := FormatContextBlock(GroupedEntry{
		Title:           "Dune",
		Author:          "Frank Herbert",
		TotalCopies:     2,
		AvailableCopies: 0,
		Status:          "borrowed",
		LocationName:    "Shelf C",
		CallNumbers:     []string{"PS3558 c.1"},
	})
	assert.Contains(t, block, "Title: Dune\n")
	assert.Contains(t, block, "Available copies: 0\n")
	assert.Contains(t, block, "Total copies: 2\n")
	assert.Contains(t, block, "Type: unspecified\n")
	assert.Contains(t, block, "Location: Shelf C\n")
	assert.True(t, strings.HasSuffix(block, "Call numbers: PS3558 c.1"))
	assert.NotContains(t, block, "Summary:")

	withSummary := FormatContextBlock(GroupedEntry{Title: "Dune", Summary: "Spice."})
	assert.True(t, strings.HasSuffix(withSummary, "\nSummary: Spice."))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 35))
	assert.Equal(t, strings.Repeat("a", 35), Truncate(strings.Repeat("a", 35), 35))
	assert.Equal(t, strings.Repeat("a", 35)+"...", Truncate(strings.Repeat("a", 36), 35))
	assert.Equal(t, "ñññ...", Truncate("ññññ", 3))
}

func TestFormatHTMLSingleBookPlain(t *testing.T) {
	out := FormatHTMLResponse("Dune is on Shelf C.", []GroupedEntry{{Title: "Dune"}}, triggers)
	assert.Equal(t, "<p>Dune is on Shelf C.</p>", out)
}

func TestFormatHTMLTwoBooksTable(t *testing.T) {
	out := FormatHTMLResponse("Two results.", []GroupedEntry{
		{Title: "Dune", Author: "Herbert", AvailableCopies: 1, TotalCopies: 2},
		{Title: "Emma", Author: "Austen", AvailableCopies: 0, TotalCopies: 1},
	}, triggers)
	assert.True(t, strings.HasPrefix(out, "<p>Two results.</p><table"))
	assert.Contains(t, out, "<td>1/2</td>")
	assert.Contains(t, out, `class="status-available">Available`)
	assert.Contains(t, out, `class="status-unavailable">Unavailable`)
}

func TestFormatHTMLKeywordTriggersTable(t *testing.T) {
	out := FormatHTMLResponse("Here are the books you asked for.", []GroupedEntry{{Title: "Dune"}}, triggers)
	assert.Contains(t, out, "<table")
}

func TestFormatHTMLNoBooks(t *testing.T) {
	out := FormatHTMLResponse("Here are the books", nil, triggers)
	assert.Equal(t, "<p>Here are the books</p>", out)
}

func TestFormatHTMLEscapesAndTruncates(t *testing.T) {
	long := strings.Repeat("T", 40)
	out := FormatHTMLResponse("<b>hi</b>", []GroupedEntry{
		{Title: long, Author: strings.Repeat("A", 30)},
		{Title: "x"},
	}, triggers)
	assert.Contains(t, out, "<p>&lt;b&gt;hi&lt;/b&gt;</p>")
	assert.Contains(t, out, strings.Repeat("T", 35)+"...")
	assert.NotContains(t, out, strings.Repeat("T", 36))
	assert.Contains(t, out, strings.Repeat("A", 25)+"...")
}
