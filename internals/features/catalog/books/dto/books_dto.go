// internals/features/catalog/books/dto/books_dto.go
package dto

import (
	"strings"
	"time"

	"gorm.io/datatypes"

	"evsu_library_backend/internals/features/catalog/books/model"
)

const dateLayout = "2006-01-02"

// ======================================================
// REQUEST
// ======================================================

type InventoryRequest struct {
	TotalCopies     *int       `json:"total_copies,omitempty"     validate:"omitempty,gte=0"`
	CopiesAvailable *int       `json:"copies_available,omitempty" validate:"omitempty,gte=0"`
	Status          *string    `json:"status,omitempty"           validate:"omitempty,oneof=available borrowed"`
	AddedAt         *time.Time `json:"added_at,omitempty"`
}

type CallNumberRequest struct {
	Classification *string `json:"classification,omitempty" validate:"omitempty,max=50"`
	Copyright      *string `json:"copyright,omitempty"      validate:"omitempty,max=50"`
	Authors        *string `json:"authors,omitempty"        validate:"omitempty,max=50"`
	Copy           *string `json:"copy,omitempty"           validate:"omitempty,max=50"`
}

type AcquisitionRequest struct {
	DateReceived  *string `json:"date_received,omitempty"  validate:"omitempty,datetime=2006-01-02"`
	SourceOfFund  *string `json:"source_of_fund,omitempty" validate:"omitempty,max=255"`
	Place         *string `json:"place,omitempty"          validate:"omitempty,max=255"`
	Publisher     *string `json:"publisher,omitempty"      validate:"omitempty,max=255"`
	PublishedYear *int    `json:"published_year,omitempty" validate:"omitempty,gte=1000,lte=3000"`
	DateCopyright *string `json:"date_copyright,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type BookCreateRequest struct {
	Title        string              `json:"title"                   validate:"required,min=1,max=255"`
	Author       string              `json:"author"                  validate:"required,min=1,max=255"`
	ISBN         *string             `json:"isbn,omitempty"          validate:"omitempty,max=64"`
	Category     *string             `json:"category,omitempty"      validate:"omitempty,max=100"`
	BookType     *string             `json:"book_type,omitempty"     validate:"omitempty,max=50"`
	BookLocation *string             `json:"book_location,omitempty" validate:"omitempty,max=50"`
	CallNumber   *CallNumberRequest  `json:"call_number,omitempty"`
	Inventory    *InventoryRequest   `json:"inventory,omitempty"`
	Acquisition  *AcquisitionRequest `json:"acquisition,omitempty"`
}

type BookUpdateRequest struct {
	Title        *string             `json:"title,omitempty"         validate:"omitempty,min=1,max=255"`
	Author       *string             `json:"author,omitempty"        validate:"omitempty,min=1,max=255"`
	ISBN         *string             `json:"isbn,omitempty"          validate:"omitempty,max=64"`
	Category     *string             `json:"category,omitempty"      validate:"omitempty,max=100"`
	BookType     *string             `json:"book_type,omitempty"     validate:"omitempty,max=50"`
	BookLocation *string             `json:"book_location,omitempty" validate:"omitempty,max=50"`
	CallNumber   *CallNumberRequest  `json:"call_number,omitempty"`
	Inventory    *InventoryRequest   `json:"inventory,omitempty"`
	Acquisition  *AcquisitionRequest `json:"acquisition,omitempty"`
}

type BooksListQuery struct {
	Q        string `query:"q"`
	Category string `query:"category"`
}

// ======================================================
// RESPONSE
// ======================================================

type InventoryResponse struct {
	TotalCopies     int        `json:"total_copies"`
	CopiesAvailable int        `json:"copies_available"`
	Status          string     `json:"status"`
	AddedAt         *time.Time `json:"added_at,omitempty"`
}

type AcquisitionResponse struct {
	DateReceived  *string `json:"date_received,omitempty"`
	SourceOfFund  *string `json:"source_of_fund,omitempty"`
	Place         *string `json:"place,omitempty"`
	Publisher     *string `json:"publisher,omitempty"`
	PublishedYear *int    `json:"published_year,omitempty"`
	DateCopyright *string `json:"date_copyright,omitempty"`
}

type BookResponse struct {
	ID           uint                 `json:"id"`
	Title        string               `json:"title"`
	Author       string               `json:"author"`
	ISBN         *string              `json:"isbn,omitempty"`
	Category     *string              `json:"category,omitempty"`
	BookType     *string              `json:"book_type,omitempty"`
	BookLocation *string              `json:"book_location,omitempty"`
	CallNumbers  *string              `json:"call_numbers,omitempty"`
	Inventory    *InventoryResponse   `json:"inventory,omitempty"`
	Acquisition  *AcquisitionResponse `json:"acquisition,omitempty"`
}

// ======================================================
// NORMALIZER
// ======================================================

func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	s := strings.TrimSpace(*p)
	return &s
}

// kosong → nil (supaya kolom unik seperti isbn tidak bentrok dengan "")
func blankToNil(p *string) *string {
	p = trimPtr(p)
	if p == nil || *p == "" {
		return nil
	}
	return p
}

func (r *BookCreateRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Author = strings.TrimSpace(r.Author)
	r.ISBN = blankToNil(r.ISBN)
	r.Category = blankToNil(r.Category)
	r.BookType = blankToNil(r.BookType)
	r.BookLocation = blankToNil(r.BookLocation)
}

func (r *BookUpdateRequest) Normalize() {
	r.Title = trimPtr(r.Title)
	r.Author = trimPtr(r.Author)
	r.ISBN = trimPtr(r.ISBN)
	r.Category = trimPtr(r.Category)
	r.BookType = trimPtr(r.BookType)
	r.BookLocation = trimPtr(r.BookLocation)
}

// ======================================================
// MAPPER
// ======================================================

func (r *BookCreateRequest) ToModel() *model.BookModel {
	return &model.BookModel{
		Title:    r.Title,
		Author:   r.Author,
		ISBN:     r.ISBN,
		Category: r.Category,
	}
}

func (r *BookUpdateRequest) ApplyToModel(m *model.BookModel) {
	if r.Title != nil {
		m.Title = *r.Title
	}
	if r.Author != nil {
		m.Author = *r.Author
	}
	if r.ISBN != nil {
		m.ISBN = blankToNil(r.ISBN)
	}
	if r.Category != nil {
		m.Category = blankToNil(r.Category)
	}
}

// ApplyTo menimpa field yang dikirim saja; sisanya tetap dari existing.
func (r *InventoryRequest) ApplyTo(existing *model.BookInventoryModel, bookID uint) *model.BookInventoryModel {
	out := model.BookInventoryModel{BookID: bookID}
	if existing != nil {
		out = *existing
		out.BookID = bookID
	}
	if r.TotalCopies != nil {
		out.TotalCopies = *r.TotalCopies
	}
	if r.CopiesAvailable != nil {
		out.CopiesAvailable = *r.CopiesAvailable
	}
	if r.AddedAt != nil {
		out.AddedAt = r.AddedAt
	}
	if r.Status != nil {
		out.Status = *r.Status
	} else if existing == nil || r.CopiesAvailable != nil {
		out.Status = DeriveStatus(out.CopiesAvailable)
	}
	return &out
}

func DeriveStatus(copiesAvailable int) string {
	if copiesAvailable > 0 {
		return model.BookStatusAvailable
	}
	return model.BookStatusBorrowed
}

func (r *CallNumberRequest) ApplyTo(existing *model.BookCallNumberModel, bookID uint) *model.BookCallNumberModel {
	out := model.BookCallNumberModel{BookID: bookID}
	if existing != nil {
		out = *existing
		out.BookID = bookID
	}
	if r.Classification != nil {
		out.Classification = blankToNil(r.Classification)
	}
	if r.Copyright != nil {
		out.Copyright = blankToNil(r.Copyright)
	}
	if r.Authors != nil {
		out.Authors = blankToNil(r.Authors)
	}
	if r.Copy != nil {
		out.Copy = blankToNil(r.Copy)
	}
	return &out
}

// Tanggal sudah lolos validator (format 2006-01-02).
func parseDate(s *string) *datatypes.Date {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, strings.TrimSpace(*s))
	if err != nil {
		return nil
	}
	d := datatypes.Date(t)
	return &d
}

func formatDate(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	s := time.Time(*d).Format(dateLayout)
	return &s
}

func (r *AcquisitionRequest) ApplyTo(existing *model.BookAcquisitionModel, bookID uint) *model.BookAcquisitionModel {
	out := model.BookAcquisitionModel{BookID: bookID}
	if existing != nil {
		out = *existing
		out.BookID = bookID
	}
	if r.DateReceived != nil {
		out.DateReceived = parseDate(r.DateReceived)
	}
	if r.SourceOfFund != nil {
		out.SourceOfFund = blankToNil(r.SourceOfFund)
	}
	if r.Place != nil {
		out.Place = blankToNil(r.Place)
	}
	if r.Publisher != nil {
		out.Publisher = blankToNil(r.Publisher)
	}
	if r.PublishedYear != nil {
		out.PublishedYear = r.PublishedYear
	}
	if r.DateCopyright != nil {
		out.DateCopyright = parseDate(r.DateCopyright)
	}
	return &out
}

func strOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func ToBookResponse(m *model.BookModel) BookResponse {
	resp := BookResponse{
		ID:           m.ID,
		Title:        m.Title,
		Author:       m.Author,
		ISBN:         m.ISBN,
		Category:     m.Category,
		BookType:     strOrNil(m.TypeName()),
		BookLocation: strOrNil(m.LocationName()),
		CallNumbers:  strOrNil(m.CallNumberString()),
	}
	if inv := m.Inventory; inv != nil {
		resp.Inventory = &InventoryResponse{
			TotalCopies:     inv.TotalCopies,
			CopiesAvailable: inv.CopiesAvailable,
			Status:          inv.Status,
			AddedAt:         inv.AddedAt,
		}
	}
	if acq := m.Acquisition; acq != nil {
		resp.Acquisition = &AcquisitionResponse{
			DateReceived:  formatDate(acq.DateReceived),
			SourceOfFund:  acq.SourceOfFund,
			Place:         acq.Place,
			Publisher:     acq.Publisher,
			PublishedYear: acq.PublishedYear,
			DateCopyright: formatDate(acq.DateCopyright),
		}
	}
	return resp
}

func ToBookResponses(rows []model.BookModel) []BookResponse {
	out := make([]BookResponse, 0, len(rows))
	for i := range rows {
		out = append(out, ToBookResponse(&rows[i]))
	}
	return out
}
