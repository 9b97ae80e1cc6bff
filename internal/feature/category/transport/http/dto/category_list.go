// Package dto defines the response shapes for the category feature.
package dto

// CategoryItem is one element of the GET /categoria response.
type CategoryItem struct {
	ID        uint   `json:"id"`
	Descricao string `json:"descricao"`
}
