package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"evsu_library_backend/internals/features/users/users/model"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

type ListFilter struct {
	Q      string
	Role   string
	Offset int
	Limit  int
}

func (r *UserRepository) List(ctx context.Context, f ListFilter) ([]model.UserModel, int64, error) {
	base := r.DB.WithContext(ctx).Model(&model.UserModel{})
	if q := strings.ToLower(strings.TrimSpace(f.Q)); q != "" {
		like := "%" + q + "%"
		base = base.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(COALESCE(student_id, '')) LIKE ?", like, like, like)
	}
	if role := strings.TrimSpace(f.Role); role != "" {
		base = base.Where("role = ?", strings.ToLower(role))
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.UserModel
	q := base.Order("id ASC")
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*model.UserModel, error) {
	var u model.UserModel
	if err := r.DB.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// EmailTaken: excludeID = 0 untuk create.
func (r *UserRepository) EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error) {
	return r.taken(ctx, "email", email, excludeID)
}

func (r *UserRepository) StudentIDTaken(ctx context.Context, studentID string, excludeID uint) (bool, error) {
	return r.taken(ctx, "student_id", studentID, excludeID)
}

func (r *UserRepository) taken(ctx context.Context, col, val string, excludeID uint) (bool, error) {
	var cnt int64
	q := r.DB.WithContext(ctx).Model(&model.UserModel{}).Where(col+" = ?", val)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&cnt).Error
	return cnt > 0, err
}

func (r *UserRepository) Create(ctx context.Context, u *model.UserModel) error {
	return r.DB.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) Update(ctx context.Context, u *model.UserModel) error {
	return r.DB.WithContext(ctx).Save(u).Error
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&model.UserModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
