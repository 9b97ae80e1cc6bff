// Package handler provides the HTTP handlers for the category feature.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"finance_backend/internal/feature/category/domain/entity"
	"finance_backend/internal/feature/category/transport/http/dto"
)

// CategoryUsecase defines the category operations used by this handler.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type CategoryUsecase interface {
	ListCategories(ctx context.Context) ([]entity.Category, error)
}

// CategoryHandler handles HTTP requests for category listing.
type CategoryHandler struct {
	uc CategoryUsecase
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(uc CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// List handles GET /categoria: every category, no filtering, no pagination.
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.uc.ListCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadRequest, err.Error())
		return
	}
	out := make([]dto.CategoryItem, 0, len(categories))
	for _, cat := range categories {
		out = append(out, dto.CategoryItem{ID: cat.ID, Descricao: cat.Descricao})
	}
	c.JSON(http.StatusOK, out)
}
