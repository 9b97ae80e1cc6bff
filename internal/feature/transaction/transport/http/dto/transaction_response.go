package dto

import "finance_backend/internal/feature/transaction/domain/entity"

// dateLayout is the wire format for transaction dates.
const dateLayout = "2006-01-02"

// TransactionResponse is one transaction joined with its category description.
type TransactionResponse struct {
	ID            uint   `json:"id"`
	Tipo          string `json:"tipo"`
	Descricao     string `json:"descricao"`
	Valor         int64  `json:"valor"`
	Data          string `json:"data"`
	UsuarioID     uint   `json:"usuario_id"`
	CategoriaID   uint   `json:"categoria_id"`
	CategoriaNome string `json:"categoria_nome"`
}

// FromEntity converts the read model into the wire shape.
func FromEntity(t entity.TransactionWithCategory) TransactionResponse {
	return TransactionResponse{
		ID:            t.ID,
		Tipo:          t.Tipo,
		Descricao:     t.Descricao,
		Valor:         t.Valor,
		Data:          t.Data.Format(dateLayout),
		UsuarioID:     t.UsuarioID,
		CategoriaID:   t.CategoriaID,
		CategoriaNome: t.CategoriaNome,
	}
}

// ExtratoResponse is the body of GET /transacao/extrato.
type ExtratoResponse struct {
	Entrada int64 `json:"entrada"`
	Saida   int64 `json:"saida"`
}
