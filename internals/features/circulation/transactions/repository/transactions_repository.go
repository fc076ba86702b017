package repository

import (
	"context"

	"gorm.io/gorm"

	"evsu_library_backend/internals/constants"
	bookModel "evsu_library_backend/internals/features/catalog/books/model"
	"evsu_library_backend/internals/features/circulation/transactions/model"
	userModel "evsu_library_backend/internals/features/users/users/model"
)

type TransactionRepository struct {
	DB *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{DB: db}
}

type ListFilter struct {
	UserID *uint
	BookID *uint
	Type   string
	Offset int
	Limit  int
}

func (r *TransactionRepository) List(ctx context.Context, f ListFilter) ([]model.TransactionModel, int64, error) {
	base := r.DB.WithContext(ctx).Model(&model.TransactionModel{})
	if f.UserID != nil {
		base = base.Where("user_id = ?", *f.UserID)
	}
	if f.BookID != nil {
		base = base.Where("book_id = ?", *f.BookID)
	}
	if f.Type != "" {
		base = base.Where("type = ?", f.Type)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []model.TransactionModel
	q := base.Order("timestamp DESC").Order("id DESC")
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *TransactionRepository) GetByID(ctx context.Context, id uint) (*model.TransactionModel, error) {
	var t model.TransactionModel
	if err := r.DB.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

/* ============ helper dalam transaksi DB (tx) ============ */

func UserExists(tx *gorm.DB, userID uint) (bool, error) {
	var cnt int64
	err := tx.Model(&userModel.UserModel{}).Where("id = ?", userID).Count(&cnt).Error
	return cnt > 0, err
}

func FindInventory(tx *gorm.DB, bookID uint) (*bookModel.BookInventoryModel, error) {
	var inv bookModel.BookInventoryModel
	if err := tx.Where("book_id = ?", bookID).First(&inv).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

func BookExists(tx *gorm.DB, bookID uint) (bool, error) {
	var cnt int64
	err := tx.Model(&bookModel.BookModel{}).Where("id = ?", bookID).Count(&cnt).Error
	return cnt > 0, err
}

// TakeCopy: kurangi stok hanya bila masih > 0. false = stok habis.
// RHS di SET memakai nilai lama, jadi status dihitung dari copies_available sebelum dikurangi.
func TakeCopy(tx *gorm.DB, bookID uint) (bool, error) {
	res := tx.Model(&bookModel.BookInventoryModel{}).
		Where("book_id = ? AND copies_available > 0", bookID).
		Updates(map[string]any{
			"copies_available": gorm.Expr("copies_available - 1"),
			"status": gorm.Expr("CASE WHEN copies_available - 1 > 0 THEN ? ELSE ? END",
				bookModel.BookStatusAvailable, bookModel.BookStatusBorrowed),
		})
	return res.RowsAffected > 0, res.Error
}

// PutCopy: tambah stok hanya bila masih < total_copies. false = sudah penuh.
func PutCopy(tx *gorm.DB, bookID uint) (bool, error) {
	res := tx.Model(&bookModel.BookInventoryModel{}).
		Where("book_id = ? AND copies_available < total_copies", bookID).
		Updates(map[string]any{
			"copies_available": gorm.Expr("copies_available + 1"),
			"status":           bookModel.BookStatusAvailable,
		})
	return res.RowsAffected > 0, res.Error
}

// OutstandingBorrows = jumlah borrow - jumlah return untuk pasangan user/book.
func OutstandingBorrows(tx *gorm.DB, userID, bookID uint) (int64, error) {
	var borrows, returns int64
	base := tx.Model(&model.TransactionModel{}).Where("user_id = ? AND book_id = ?", userID, bookID)
	if err := base.Session(&gorm.Session{}).Where("type = ?", constants.TransactionBorrow).Count(&borrows).Error; err != nil {
		return 0, err
	}
	if err := base.Session(&gorm.Session{}).Where("type = ?", constants.TransactionReturn).Count(&returns).Error; err != nil {
		return 0, err
	}
	return borrows - returns, nil
}

func Record(tx *gorm.DB, t *model.TransactionModel) error {
	return tx.Create(t).Error
}
