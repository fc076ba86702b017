package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"evsu_library_backend/internals/features/users/librarians/dto"
	"evsu_library_backend/internals/features/users/librarians/model"
	"evsu_library_backend/internals/features/users/librarians/repository"
	helper "evsu_library_backend/internals/helpers"
)

var (
	ErrLibrarianNotFound = errors.New("librarian not found")
	ErrEmailTaken        = errors.New("email already registered")
)

type LibrarianService struct {
	Repo *repository.LibrarianRepository
}

func NewLibrarianService(db *gorm.DB) *LibrarianService {
	return &LibrarianService{Repo: repository.NewLibrarianRepository(db)}
}

func (s *LibrarianService) List(ctx context.Context, q string, offset, limit int) ([]dto.LibrarianResponse, int64, error) {
	rows, total, err := s.Repo.List(ctx, q, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list librarians: %w", err)
	}
	return dto.FromModels(rows), total, nil
}

func (s *LibrarianService) Get(ctx context.Context, id uint) (*dto.LibrarianResponse, error) {
	l, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.FromModel(l)
	return &resp, nil
}

func (s *LibrarianService) Create(ctx context.Context, req dto.LibrarianCreateRequest) (*dto.LibrarianResponse, error) {
	l := req.ToModel()
	if err := s.checkEmail(ctx, l.Email, 0); err != nil {
		return nil, err
	}
	hash, err := helper.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	l.Password = hash

	if err := s.Repo.Create(ctx, l); err != nil {
		return nil, translateWriteErr("create librarian", err)
	}
	resp := dto.FromModel(l)
	return &resp, nil
}

func (s *LibrarianService) Update(ctx context.Context, id uint, req dto.LibrarianUpdateRequest) (*dto.LibrarianResponse, error) {
	l, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	req.ApplyToModel(l)
	if err := s.checkEmail(ctx, l.Email, l.ID); err != nil {
		return nil, err
	}
	if req.Password != nil {
		hash, err := helper.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		l.Password = hash
	}
	if err := s.Repo.Update(ctx, l); err != nil {
		return nil, translateWriteErr("update librarian", err)
	}
	resp := dto.FromModel(l)
	return &resp, nil
}

func (s *LibrarianService) Delete(ctx context.Context, id uint) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLibrarianNotFound
		}
		return fmt.Errorf("delete librarian: %w", err)
	}
	return nil
}

func (s *LibrarianService) find(ctx context.Context, id uint) (*model.LibrarianModel, error) {
	l, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLibrarianNotFound
		}
		return nil, fmt.Errorf("get librarian: %w", err)
	}
	return l, nil
}

func (s *LibrarianService) checkEmail(ctx context.Context, email string, excludeID uint) error {
	taken, err := s.Repo.EmailTaken(ctx, email, excludeID)
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if taken {
		return ErrEmailTaken
	}
	return nil
}

func translateWriteErr(op string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrEmailTaken
	}
	return fmt.Errorf("%s: %w", op, err)
}
