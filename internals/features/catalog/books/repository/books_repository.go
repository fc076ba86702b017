// internals/features/catalog/books/repository/books_repository.go
package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"evsu_library_backend/internals/features/catalog/books/model"
)

type BookRepository struct {
	DB *gorm.DB
}

func NewBookRepository(db *gorm.DB) *BookRepository { return &BookRepository{DB: db} }

type ListFilter struct {
	Q        string
	Category string
	Offset   int
	Limit    int
}

// Sub-record one-to-one; nil = tidak diubah.
type SubRecords struct {
	Inventory   *model.BookInventoryModel
	CallNumber  *model.BookCallNumberModel
	Acquisition *model.BookAcquisitionModel
}

func withRelations(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Type").
		Preload("Location").
		Preload("Inventory").
		Preload("CallNumber").
		Preload("Acquisition")
}

/* ====================== READ ====================== */

func (r *BookRepository) List(ctx context.Context, f ListFilter) ([]model.BookModel, int64, error) {
	base := r.DB.WithContext(ctx).Model(&model.BookModel{})
	if q := strings.ToLower(strings.TrimSpace(f.Q)); q != "" {
		needle := "%" + escapeLike(q) + "%"
		base = base.Where(
			`LOWER(books.title) LIKE ? ESCAPE '\' OR LOWER(books.author) LIKE ? ESCAPE '\'`,
			needle, needle,
		)
	}
	if cat := strings.TrimSpace(f.Category); cat != "" {
		base = base.Where("LOWER(books.category) = ?", strings.ToLower(cat))
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.BookModel
	q := withRelations(base).Order("books.id ASC")
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *BookRepository) GetByID(ctx context.Context, id uint) (*model.BookModel, error) {
	var book model.BookModel
	if err := withRelations(r.DB.WithContext(ctx)).First(&book, id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *BookRepository) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	var cnt int64
	err := r.DB.WithContext(ctx).Model(&model.BookModel{}).
		Where("isbn = ?", isbn).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *BookRepository) ExistsByTitleAuthor(ctx context.Context, title, author string) (bool, error) {
	var cnt int64
	err := r.DB.WithContext(ctx).Model(&model.BookModel{}).
		Where("LOWER(title) = ? AND LOWER(author) = ?", strings.ToLower(title), strings.ToLower(author)).
		Count(&cnt).Error
	return cnt > 0, err
}

// HasCirculation: true kalau buku sudah punya riwayat transaksi.
func (r *BookRepository) HasCirculation(ctx context.Context, bookID uint) (bool, error) {
	var cnt int64
	err := r.DB.WithContext(ctx).Table("transactions").
		Where("book_id = ?", bookID).
		Count(&cnt).Error
	return cnt > 0, err
}

/* ====================== CATALOG SEARCH ====================== */

// Kolom yang dicocokkan substring (case-insensitive) oleh MatchAny.
// Bagian call number dicocokkan per kolom; term tanpa spasi tidak bisa
// melintasi pemisah spasi di string gabungannya.
var matchColumns = []string{
	"books.title",
	"books.author",
	"books.category",
	"book_types.name",
	"book_locations.name",
	"book_call_numbers.classification",
	"book_call_numbers.copyright",
	"book_call_numbers.authors",
	"book_call_numbers.copy",
}

// MatchAny mengembalikan buku yang salah satu term-nya muncul di salah satu kolom katalog,
// urut primary key, maksimal limit.
func (r *BookRepository) MatchAny(ctx context.Context, terms []string, limit int) ([]model.BookModel, error) {
	var (
		conds []string
		args  []any
	)
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		needle := "%" + escapeLike(t) + "%"
		for _, col := range matchColumns {
			conds = append(conds, "LOWER(COALESCE("+col+", '')) LIKE ? ESCAPE '\\'")
			args = append(args, needle)
		}
	}
	if len(conds) == 0 {
		return nil, nil
	}

	q := r.DB.WithContext(ctx).
		Model(&model.BookModel{}).
		Select("books.*").
		Joins("LEFT JOIN book_types ON book_types.id = books.type_id").
		Joins("LEFT JOIN book_locations ON book_locations.id = books.location_id").
		Joins("LEFT JOIN book_call_numbers ON book_call_numbers.book_id = books.id").
		Where(strings.Join(conds, " OR "), args...).
		Order("books.id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var rows []model.BookModel
	if err := withRelations(q).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListFirst: n buku pertama (urut primary key) untuk fallback similarity.
func (r *BookRepository) ListFirst(ctx context.Context, n int) ([]model.BookModel, error) {
	var rows []model.BookModel
	err := withRelations(r.DB.WithContext(ctx)).
		Order("books.id ASC").
		Limit(n).
		Find(&rows).Error
	return rows, err
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

/* ====================== WRITE ====================== */

// FindOrCreateType / FindOrCreateLocation: nama unik, dibuat kalau belum ada.
func FindOrCreateType(tx *gorm.DB, name string) (*model.BookTypeModel, error) {
	t := model.BookTypeModel{}
	if err := tx.Where(model.BookTypeModel{Name: name}).FirstOrCreate(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func FindOrCreateLocation(tx *gorm.DB, name string) (*model.BookLocationModel, error) {
	l := model.BookLocationModel{}
	if err := tx.Where(model.BookLocationModel{Name: name}).FirstOrCreate(&l).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func upsertSubRecords(tx *gorm.DB, bookID uint, sub SubRecords) error {
	// statement baru per Create; jangan pakai ulang satu instance untuk model berbeda
	upsert := func(v any) error {
		return tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(v).Error
	}
	if sub.Inventory != nil {
		sub.Inventory.BookID = bookID
		if err := upsert(sub.Inventory); err != nil {
			return err
		}
	}
	if sub.CallNumber != nil {
		sub.CallNumber.BookID = bookID
		if err := upsert(sub.CallNumber); err != nil {
			return err
		}
	}
	if sub.Acquisition != nil {
		sub.Acquisition.BookID = bookID
		if err := upsert(sub.Acquisition); err != nil {
			return err
		}
	}
	return nil
}

// Create menyimpan buku + sub-record dalam satu transaksi.
// Kolom type_id/location_id diisi lewat resolve (nama → id) sebelum insert.
func (r *BookRepository) Create(ctx context.Context, book *model.BookModel, typeName, locationName *string, sub SubRecords) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := resolveTypeAndLocation(tx, book, typeName, locationName); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Create(book).Error; err != nil {
			return err
		}
		return upsertSubRecords(tx, book.ID, sub)
	})
}

func (r *BookRepository) Update(ctx context.Context, book *model.BookModel, typeName, locationName *string, sub SubRecords) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := resolveTypeAndLocation(tx, book, typeName, locationName); err != nil {
			return err
		}
		if err := tx.Model(book).
			Omit(clause.Associations).
			Select("title", "author", "isbn", "category", "type_id", "location_id").
			Updates(book).Error; err != nil {
			return err
		}
		return upsertSubRecords(tx, book.ID, sub)
	})
}

// nil = tidak diubah, "" = dilepas.
func resolveTypeAndLocation(tx *gorm.DB, book *model.BookModel, typeName, locationName *string) error {
	if typeName != nil {
		if *typeName == "" {
			book.TypeID, book.Type = nil, nil
		} else {
			t, err := FindOrCreateType(tx, *typeName)
			if err != nil {
				return err
			}
			book.TypeID, book.Type = &t.ID, t
		}
	}
	if locationName != nil {
		if *locationName == "" {
			book.LocationID, book.Location = nil, nil
		} else {
			l, err := FindOrCreateLocation(tx, *locationName)
			if err != nil {
				return err
			}
			book.LocationID, book.Location = &l.ID, l
		}
	}
	return nil
}

// Delete menghapus sub-record lalu bukunya. RowsAffected 0 → gorm.ErrRecordNotFound.
func (r *BookRepository) Delete(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, sub := range []any{
			&model.BookInventoryModel{},
			&model.BookCallNumberModel{},
			&model.BookAcquisitionModel{},
		} {
			if err := tx.Where("book_id = ?", id).Delete(sub).Error; err != nil {
				return err
			}
		}
		res := tx.Delete(&model.BookModel{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
