package grouping

import (
	"bytes"
	"html/template"
	"strconv"
	"strings"

	"evsu_library_backend/internals/features/assistant/keywords"
)

const (
	titleWidth  = 35
	authorWidth = 25
	unspecified = "unspecified"
)

func orUnspecified(s string) string {
	if s == "" {
		return unspecified
	}
	return s
}

// FormatContextBlock: blok teks tetap untuk konteks prompt model.
func FormatContextBlock(g GroupedEntry) string {
	var b strings.Builder
	b.WriteString("Title: " + g.Title + "\n")
	b.WriteString("Author: " + g.Author + "\n")
	b.WriteString("Status: " + orUnspecified(g.Status) + "\n")
	b.WriteString("Available copies: " + strconv.Itoa(g.AvailableCopies) + "\n")
	b.WriteString("Total copies: " + strconv.Itoa(g.TotalCopies) + "\n")
	b.WriteString("Type: " + orUnspecified(g.TypeName) + "\n")
	b.WriteString("Location: " + orUnspecified(g.LocationName) + "\n")
	callNumbers := unspecified
	if len(g.CallNumbers) > 0 {
		callNumbers = strings.Join(g.CallNumbers, "; ")
	}
	b.WriteString("Call numbers: " + callNumbers)
	if g.Summary != "" {
		b.WriteString("\nSummary: " + g.Summary)
	}
	return b.String()
}

func FormatContextBlocks(groups []GroupedEntry) []string {
	out := make([]string, 0, len(groups))
	for _, g := range groups {
		out = append(out, FormatContextBlock(g))
	}
	return out
}

// Truncate memotong per rune; hasil terpotong diberi "...".
func Truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width]) + "..."
}

type tableRow struct {
	Title       string
	Author      string
	Counts      string
	Status      string
	Available   bool
	CallNumbers string
}

var responseTmpl = template.Must(template.New("response").Parse(
	`<p>{{.Text}}</p>` +
		`{{if .Rows}}<table class="book-table">` +
		`<thead><tr><th>Title</th><th>Author</th><th>Available</th><th>Status</th><th>Call Numbers</th></tr></thead>` +
		`<tbody>{{range .Rows}}<tr>` +
		`<td>{{.Title}}</td><td>{{.Author}}</td><td>{{.Counts}}</td>` +
		`<td class="{{if .Available}}status-available{{else}}status-unavailable{{end}}">{{.Status}}</td>` +
		`<td>{{.CallNumbers}}</td>` +
		`</tr>{{end}}</tbody></table>{{end}}`,
))

// WantsTable: tabel hanya bila teks jawaban memuat kata kunci daftar buku
// atau ada lebih dari satu buku.
func WantsTable(text string, books []GroupedEntry, triggers keywords.Phrases) bool {
	if len(books) == 0 {
		return false
	}
	return len(books) > 1 || triggers.In(strings.ToLower(text))
}

// FormatHTMLResponse merender jawaban sebagai <p>, ditambah tabel bila WantsTable.
func FormatHTMLResponse(text string, books []GroupedEntry, triggers keywords.Phrases) string {
	data := struct {
		Text string
		Rows []tableRow
	}{Text: text}

	if WantsTable(text, books, triggers) {
		data.Rows = make([]tableRow, 0, len(books))
		for _, g := range books {
			status := "Unavailable"
			if g.AvailableCopies > 0 {
				status = "Available"
			}
			callNumbers := "-"
			if len(g.CallNumbers) > 0 {
				callNumbers = strings.Join(g.CallNumbers, ", ")
			}
			data.Rows = append(data.Rows, tableRow{
				Title:       Truncate(g.Title, titleWidth),
				Author:      Truncate(g.Author, authorWidth),
				Counts:      strconv.Itoa(g.AvailableCopies) + "/" + strconv.Itoa(g.TotalCopies),
				Status:      status,
				Available:   g.AvailableCopies > 0,
				CallNumbers: callNumbers,
			})
		}
	}

	var buf bytes.Buffer
	// template statis dan data string; Execute hanya gagal bila writer gagal
	_ = responseTmpl.Execute(&buf, data)
	return buf.String()
}
