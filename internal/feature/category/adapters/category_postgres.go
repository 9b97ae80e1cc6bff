// Package adapters provides the repository implementations for the category feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"finance_backend/internal/feature/category/domain/entity"
	"finance_backend/internal/feature/category/usecase"
)

// categoryPostgres is the PostgreSQL implementation of the CategoryRepository interface.
type categoryPostgres struct {
	db *gorm.DB
}

var _ usecase.CategoryRepository = (*categoryPostgres)(nil)

// NewCategoryPostgres creates a new categoryPostgres with the given DB connection.
func NewCategoryPostgres(db *gorm.DB) *categoryPostgres {
	return &categoryPostgres{db: db}
}

// ListAll returns every category in natural table order.
func (r *categoryPostgres) ListAll(ctx context.Context) ([]entity.Category, error) {
	var categories []entity.Category
	if err := r.db.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// ExistsByID reports whether a category with the given ID exists.
// This also satisfies the transaction feature's CategoryChecker interface.
func (r *categoryPostgres) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entity.Category{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
