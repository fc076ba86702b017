package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"evsu_library_backend/internals/features/users/librarians/model"
)

type LibrarianRepository struct {
	DB *gorm.DB
}

func NewLibrarianRepository(db *gorm.DB) *LibrarianRepository {
	return &LibrarianRepository{DB: db}
}

func (r *LibrarianRepository) List(ctx context.Context, q string, offset, limit int) ([]model.LibrarianModel, int64, error) {
	base := r.DB.WithContext(ctx).Model(&model.LibrarianModel{})
	if q = strings.ToLower(strings.TrimSpace(q)); q != "" {
		like := "%" + q + "%"
		base = base.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []model.LibrarianModel
	tx := base.Order("id ASC")
	if limit > 0 {
		tx = tx.Limit(limit).Offset(offset)
	}
	if err := tx.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *LibrarianRepository) GetByID(ctx context.Context, id uint) (*model.LibrarianModel, error) {
	var l model.LibrarianModel
	if err := r.DB.WithContext(ctx).First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LibrarianRepository) EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error) {
	var cnt int64
	q := r.DB.WithContext(ctx).Model(&model.LibrarianModel{}).Where("email = ?", email)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&cnt).Error
	return cnt > 0, err
}

func (r *LibrarianRepository) Create(ctx context.Context, l *model.LibrarianModel) error {
	return r.DB.WithContext(ctx).Create(l).Error
}

func (r *LibrarianRepository) Update(ctx context.Context, l *model.LibrarianModel) error {
	return r.DB.WithContext(ctx).Save(l).Error
}

func (r *LibrarianRepository) Delete(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&model.LibrarianModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
