// Package usecase implements the business logic for category operations.
package usecase

import (
	"context"

	"finance_backend/internal/feature/category/domain/entity"
)

// CategoryRepository abstracts the persistence layer for category data.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type CategoryRepository interface {
	ListAll(ctx context.Context) ([]entity.Category, error)
}

// CategoryUsecase provides business logic for category operations.
type CategoryUsecase struct {
	repo CategoryRepository
}

// NewCategoryUsecase creates a new CategoryUsecase with the given repository.
func NewCategoryUsecase(r CategoryRepository) *CategoryUsecase {
	return &CategoryUsecase{repo: r}
}

// ListCategories returns all categories in natural table order.
func (u *CategoryUsecase) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return u.repo.ListAll(ctx)
}
