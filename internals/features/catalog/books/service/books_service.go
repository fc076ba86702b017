// internals/features/catalog/books/service/books_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"evsu_library_backend/internals/features/catalog/books/dto"
	"evsu_library_backend/internals/features/catalog/books/model"
	"evsu_library_backend/internals/features/catalog/books/repository"
)

var (
	ErrBookNotFound     = errors.New("book not found")
	ErrISBNTaken        = errors.New("isbn already used by another book")
	ErrInvalidInventory = errors.New("copies_available must not exceed total_copies")
	ErrBookInUse        = errors.New("book has circulation history")
)

type BookService struct {
	Repo *repository.BookRepository
}

func NewBookService(db *gorm.DB) *BookService {
	return &BookService{Repo: repository.NewBookRepository(db)}
}

func (s *BookService) ListBooks(ctx context.Context, f repository.ListFilter) ([]dto.BookResponse, int64, error) {
	rows, total, err := s.Repo.List(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("list books: %w", err)
	}
	return dto.ToBookResponses(rows), total, nil
}

func (s *BookService) GetBook(ctx context.Context, id uint) (*dto.BookResponse, error) {
	book, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.ToBookResponse(book)
	return &resp, nil
}

func (s *BookService) CreateBook(ctx context.Context, req dto.BookCreateRequest) (*dto.BookResponse, error) {
	book := req.ToModel()

	var sub repository.SubRecords
	if req.Inventory != nil {
		sub.Inventory = req.Inventory.ApplyTo(nil, 0)
		if sub.Inventory.AddedAt == nil {
			now := time.Now()
			sub.Inventory.AddedAt = &now
		}
		if err := checkInventory(sub.Inventory); err != nil {
			return nil, err
		}
	}
	if req.CallNumber != nil {
		sub.CallNumber = req.CallNumber.ApplyTo(nil, 0)
	}
	if req.Acquisition != nil {
		sub.Acquisition = req.Acquisition.ApplyTo(nil, 0)
	}

	if err := s.Repo.Create(ctx, book, req.BookType, req.BookLocation, sub); err != nil {
		return nil, translateWriteErr("create book", err)
	}
	return s.GetBook(ctx, book.ID)
}

func (s *BookService) UpdateBook(ctx context.Context, id uint, req dto.BookUpdateRequest) (*dto.BookResponse, error) {
	book, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	req.ApplyToModel(book)

	var sub repository.SubRecords
	if req.Inventory != nil {
		sub.Inventory = req.Inventory.ApplyTo(book.Inventory, book.ID)
		if err := checkInventory(sub.Inventory); err != nil {
			return nil, err
		}
	}
	if req.CallNumber != nil {
		sub.CallNumber = req.CallNumber.ApplyTo(book.CallNumber, book.ID)
	}
	if req.Acquisition != nil {
		sub.Acquisition = req.Acquisition.ApplyTo(book.Acquisition, book.ID)
	}

	if err := s.Repo.Update(ctx, book, req.BookType, req.BookLocation, sub); err != nil {
		return nil, translateWriteErr("update book", err)
	}
	return s.GetBook(ctx, book.ID)
}

func (s *BookService) DeleteBook(ctx context.Context, id uint) error {
	used, err := s.Repo.HasCirculation(ctx, id)
	if err != nil {
		return fmt.Errorf("check circulation: %w", err)
	}
	if used {
		return ErrBookInUse
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookNotFound
		}
		return fmt.Errorf("delete book: %w", err)
	}
	return nil
}

func (s *BookService) find(ctx context.Context, id uint) (*model.BookModel, error) {
	book, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, fmt.Errorf("get book: %w", err)
	}
	return book, nil
}

func checkInventory(inv *model.BookInventoryModel) error {
	if inv.TotalCopies < 0 || inv.CopiesAvailable < 0 || inv.CopiesAvailable > inv.TotalCopies {
		return ErrInvalidInventory
	}
	return nil
}

func translateWriteErr(op string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrISBNTaken
	}
	return fmt.Errorf("%s: %w", op, err)
}
