package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"evsu_library_backend/internals/constants"
	"evsu_library_backend/internals/features/circulation/transactions/dto"
	"evsu_library_backend/internals/features/circulation/transactions/model"
	"evsu_library_backend/internals/features/circulation/transactions/repository"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrBookNotFound        = errors.New("book not found")
	ErrNoCopiesAvailable   = errors.New("no copies available")
	ErrNoOutstandingBorrow = errors.New("no outstanding borrow for this user and book")
)

type TransactionService struct {
	DB   *gorm.DB
	Repo *repository.TransactionRepository
	Now  func() time.Time
}

func NewTransactionService(db *gorm.DB) *TransactionService {
	return &TransactionService{DB: db, Repo: repository.NewTransactionRepository(db), Now: time.Now}
}

func (s *TransactionService) List(ctx context.Context, f repository.ListFilter) ([]dto.TransactionResponse, int64, error) {
	rows, total, err := s.Repo.List(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("list transactions: %w", err)
	}
	return dto.FromModels(rows), total, nil
}

func (s *TransactionService) Get(ctx context.Context, id uint) (*dto.TransactionResponse, error) {
	t, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	resp := dto.FromModel(t)
	return &resp, nil
}

// Borrow: stok dikurangi secara kondisional (copies_available > 0) di dalam transaksi DB.
func (s *TransactionService) Borrow(ctx context.Context, userID, bookID uint) (*dto.CirculationResponse, error) {
	return s.circulate(ctx, userID, bookID, constants.TransactionBorrow, func(tx *gorm.DB) error {
		ok, err := repository.TakeCopy(tx, bookID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNoCopiesAvailable
		}
		return nil
	})
}

// Return: wajib ada borrow yang belum dikembalikan.
// Stok yang sudah penuh tidak dinaikkan lagi; transaksi tetap dicatat.
func (s *TransactionService) Return(ctx context.Context, userID, bookID uint) (*dto.CirculationResponse, error) {
	return s.circulate(ctx, userID, bookID, constants.TransactionReturn, func(tx *gorm.DB) error {
		n, err := repository.OutstandingBorrows(tx, userID, bookID)
		if err != nil {
			return err
		}
		if n <= 0 {
			return ErrNoOutstandingBorrow
		}
		ok, err := repository.PutCopy(tx, bookID)
		if err != nil {
			return err
		}
		if !ok {
			log.Warnf("[Circulation] return for book %d while inventory already full", bookID)
		}
		return nil
	})
}

func (s *TransactionService) circulate(
	ctx context.Context,
	userID, bookID uint,
	kind string,
	adjust func(tx *gorm.DB) error,
) (*dto.CirculationResponse, error) {
	var out dto.CirculationResponse

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if ok, err := repository.UserExists(tx, userID); err != nil {
			return err
		} else if !ok {
			return ErrUserNotFound
		}
		if ok, err := repository.BookExists(tx, bookID); err != nil {
			return err
		} else if !ok {
			return ErrBookNotFound
		}

		if err := adjust(tx); err != nil {
			return err
		}

		t := &model.TransactionModel{
			BookID:    bookID,
			UserID:    userID,
			Type:      kind,
			Status:    constants.TransactionDone,
			Timestamp: s.Now(),
		}
		if err := repository.Record(tx, t); err != nil {
			return err
		}

		out.Transaction = dto.FromModel(t)
		inv, err := repository.FindInventory(tx, bookID)
		switch {
		case err == nil:
			out.CopiesAvailable, out.BookStatus = inv.CopiesAvailable, inv.Status
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil
		default:
			return err
		}
	})
	if err != nil {
		if errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrBookNotFound) ||
			errors.Is(err, ErrNoCopiesAvailable) || errors.Is(err, ErrNoOutstandingBorrow) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", kind, err)
	}
	log.Infof("[Circulation] %s user=%d book=%d copies_available=%d", kind, userID, bookID, out.CopiesAvailable)
	return &out, nil
}
