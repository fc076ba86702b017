package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"evsu_library_backend/internals/features/users/users/dto"
	"evsu_library_backend/internals/features/users/users/model"
	"evsu_library_backend/internals/features/users/users/repository"
	helper "evsu_library_backend/internals/helpers"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrEmailTaken      = errors.New("email already registered")
	ErrStudentIDTaken  = errors.New("student_id already registered")
	ErrDuplicateRecord = errors.New("email or student_id already registered")
)

type UserService struct {
	Repo *repository.UserRepository
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{Repo: repository.NewUserRepository(db)}
}

func (s *UserService) ListUsers(ctx context.Context, f repository.ListFilter) ([]dto.UserResponse, int64, error) {
	rows, total, err := s.Repo.List(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	return dto.FromModels(rows), total, nil
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*dto.UserResponse, error) {
	u, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.FromModel(u)
	return &resp, nil
}

func (s *UserService) CreateUser(ctx context.Context, req dto.UserCreateRequest) (*dto.UserResponse, error) {
	u := req.ToModel()
	if err := s.checkUnique(ctx, u, 0); err != nil {
		return nil, err
	}
	hash, err := helper.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u.Password = hash

	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, translateWriteErr("create user", err)
	}
	resp := dto.FromModel(u)
	return &resp, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id uint, req dto.UserUpdateRequest) (*dto.UserResponse, error) {
	u, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	req.ApplyToModel(u)
	if err := s.checkUnique(ctx, u, u.ID); err != nil {
		return nil, err
	}
	if req.Password != nil {
		hash, err := helper.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		u.Password = hash
	}

	if err := s.Repo.Update(ctx, u); err != nil {
		return nil, translateWriteErr("update user", err)
	}
	resp := dto.FromModel(u)
	return &resp, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (s *UserService) find(ctx context.Context, id uint) (*model.UserModel, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *UserService) checkUnique(ctx context.Context, u *model.UserModel, excludeID uint) error {
	taken, err := s.Repo.EmailTaken(ctx, u.Email, excludeID)
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if taken {
		return ErrEmailTaken
	}
	if u.StudentID != nil {
		taken, err := s.Repo.StudentIDTaken(ctx, *u.StudentID, excludeID)
		if err != nil {
			return fmt.Errorf("check student_id: %w", err)
		}
		if taken {
			return ErrStudentIDTaken
		}
	}
	return nil
}

// race antar request: unique index tetap jadi penjaga terakhir
func translateWriteErr(op string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateRecord
	}
	return fmt.Errorf("%s: %w", op, err)
}
