// Package entity defines the domain models for the category feature.
package entity

// Category is a fixed classification for transactions. Categories are
// reference data seeded at migration time and never written by the API.
type Category struct {
	ID        uint   `gorm:"primaryKey"`
	Descricao string `gorm:"size:255;not null"`
}

// TableName maps the entity onto the categorias table.
func (Category) TableName() string { return "categorias" }
