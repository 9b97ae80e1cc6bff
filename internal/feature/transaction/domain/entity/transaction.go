// Package entity defines the domain models for the transaction feature.
package entity

import "time"

// Transaction kinds. Tipo only ever holds one of these two values.
const (
	TipoEntrada = "entrada"
	TipoSaida   = "saida"
)

// Transaction is a single financial record owned by one user.
// UsuarioID is immutable after creation; every read and write is scoped by it.
type Transaction struct {
	ID          uint      `gorm:"primaryKey"`
	Tipo        string    `gorm:"size:10;not null"`
	Descricao   string    `gorm:"size:255;not null"`
	Valor       int64     `gorm:"not null"`
	Data        time.Time `gorm:"type:date;not null"`
	UsuarioID   uint      `gorm:"not null;index"`
	CategoriaID uint      `gorm:"not null"`
}

// TableName maps the entity onto the transacoes table.
func (Transaction) TableName() string { return "transacoes" }

// TransactionWithCategory is the read model for transaction queries: the row
// joined with the description of its category.
type TransactionWithCategory struct {
	ID            uint
	Tipo          string
	Descricao     string
	Valor         int64
	Data          time.Time
	UsuarioID     uint
	CategoriaID   uint
	CategoriaNome string
}

// Extrato is the derived balance summary for one user: the independent sums
// of all entrada and saida amounts. It is recomputed on every request.
type Extrato struct {
	Entrada int64
	Saida   int64
}
