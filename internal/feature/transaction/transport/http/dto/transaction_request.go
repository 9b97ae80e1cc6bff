// Package dto defines the request and response shapes for the transaction feature.
package dto

// TransactionRequest is the body of POST /transacao and PUT /transacao/:id.
// Data arrives as a string so the handler can apply the same "missing field"
// rule to every field; zero valor and zero categoria_id also count as missing.
type TransactionRequest struct {
	Descricao   string `json:"descricao"`
	Valor       int64  `json:"valor"`
	Data        string `json:"data"`
	CategoriaID uint   `json:"categoria_id"`
	Tipo        string `json:"tipo"`
}
