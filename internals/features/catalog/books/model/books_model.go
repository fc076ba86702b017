package model

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

const (
	BookStatusAvailable = "available"
	BookStatusBorrowed  = "borrowed"
)

type BookTypeModel struct {
	ID   uint   `gorm:"primaryKey;column:id"                                json:"id"`
	Name string `gorm:"type:varchar(50);uniqueIndex;not null;column:name" json:"name"`
}

func (BookTypeModel) TableName() string { return "book_types" }

type BookLocationModel struct {
	ID   uint   `gorm:"primaryKey;column:id"                                json:"id"`
	Name string `gorm:"type:varchar(50);uniqueIndex;not null;column:name" json:"name"`
}

func (BookLocationModel) TableName() string { return "book_locations" }

type BookModel struct {
	ID         uint    `gorm:"primaryKey;column:id"                       json:"id"`
	Title      string  `gorm:"type:varchar(255);not null;column:title"   json:"title"`
	Author     string  `gorm:"type:varchar(255);not null;column:author"  json:"author"`
	ISBN       *string `gorm:"type:varchar(64);uniqueIndex;column:isbn"  json:"isbn,omitempty"`
	Category   *string `gorm:"type:varchar(100);column:category"         json:"category,omitempty"`
	TypeID     *uint   `gorm:"column:type_id;index"                      json:"type_id,omitempty"`
	LocationID *uint   `gorm:"column:location_id;index"                  json:"location_id,omitempty"`

	Type        *BookTypeModel        `gorm:"foreignKey:TypeID"     json:"type,omitempty"`
	Location    *BookLocationModel    `gorm:"foreignKey:LocationID" json:"location,omitempty"`
	Inventory   *BookInventoryModel   `gorm:"foreignKey:BookID"     json:"inventory,omitempty"`
	CallNumber  *BookCallNumberModel  `gorm:"foreignKey:BookID"     json:"call_number,omitempty"`
	Acquisition *BookAcquisitionModel `gorm:"foreignKey:BookID"     json:"acquisition,omitempty"`
}

func (BookModel) TableName() string { return "books" }

func (b *BookModel) TypeName() string {
	if b.Type == nil {
		return ""
	}
	return b.Type.Name
}

func (b *BookModel) LocationName() string {
	if b.Location == nil {
		return ""
	}
	return b.Location.Name
}

func (b *BookModel) CategoryName() string {
	if b.Category == nil {
		return ""
	}
	return *b.Category
}

// CallNumberString = bagian call number yang tidak kosong, dipisah satu spasi.
func (b *BookModel) CallNumberString() string {
	if b.CallNumber == nil {
		return ""
	}
	return b.CallNumber.String()
}

type BookInventoryModel struct {
	BookID          uint       `gorm:"primaryKey;autoIncrement:false;column:book_id"           json:"book_id"`
	TotalCopies     int        `gorm:"not null;column:total_copies"                             json:"total_copies"`
	CopiesAvailable int        `gorm:"not null;column:copies_available"                         json:"copies_available"`
	Status          string     `gorm:"type:varchar(20);not null;column:status"                  json:"status"`
	AddedAt         *time.Time `gorm:"column:added_at"                                          json:"added_at,omitempty"`
}

func (BookInventoryModel) TableName() string { return "book_inventory" }

type BookCallNumberModel struct {
	BookID         uint    `gorm:"primaryKey;autoIncrement:false;column:book_id" json:"book_id"`
	Classification *string `gorm:"type:varchar(50);column:classification"       json:"classification,omitempty"`
	Copyright      *string `gorm:"type:varchar(50);column:copyright"            json:"copyright,omitempty"`
	Authors        *string `gorm:"type:varchar(50);column:authors"              json:"authors,omitempty"`
	Copy           *string `gorm:"type:varchar(50);column:copy"                 json:"copy,omitempty"`
}

func (BookCallNumberModel) TableName() string { return "book_call_numbers" }

func (c BookCallNumberModel) String() string {
	parts := make([]string, 0, 4)
	for _, p := range []*string{c.Classification, c.Copyright, c.Authors, c.Copy} {
		if p == nil {
			continue
		}
		if s := strings.TrimSpace(*p); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

type BookAcquisitionModel struct {
	BookID        uint            `gorm:"primaryKey;autoIncrement:false;column:book_id" json:"book_id"`
	DateReceived  *datatypes.Date `gorm:"column:date_received"                         json:"date_received,omitempty"`
	SourceOfFund  *string         `gorm:"type:varchar(255);column:source_of_fund"      json:"source_of_fund,omitempty"`
	Place         *string         `gorm:"type:varchar(255);column:place"               json:"place,omitempty"`
	Publisher     *string         `gorm:"type:varchar(255);column:publisher"           json:"publisher,omitempty"`
	PublishedYear *int            `gorm:"column:published_year"                        json:"published_year,omitempty"`
	DateCopyright *datatypes.Date `gorm:"column:date_copyright"                        json:"date_copyright,omitempty"`
}

func (BookAcquisitionModel) TableName() string { return "book_acquisitions" }
