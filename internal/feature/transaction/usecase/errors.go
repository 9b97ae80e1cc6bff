// Package usecase implements the business logic for the transaction feature.
package usecase

import "errors"

// The error texts are the API's mensagem contract and are returned to
// clients verbatim, so they stay in Portuguese. The three ownership errors
// are deliberately distinct: "does not exist", "user owns nothing" and
// "exists but belongs to someone else" each carry their own message.
var (
	// ErrTransactionNotFound is returned when no transaction has the given ID.
	ErrTransactionNotFound = errors.New("Esta transação não existe no banco de dados.")

	// ErrNoTransactionsForUser is returned by Detail when the authenticated
	// user owns no transactions at all.
	ErrNoTransactionsForUser = errors.New("Não existe transação para o usuário autenticado.")

	// ErrTransactionNotOwned is returned when the transaction exists but
	// belongs to a different user.
	ErrTransactionNotOwned = errors.New("Esta transação não pertence ao usuário autenticado.")

	// ErrCategoryNotFound is returned when categoria_id references no category.
	ErrCategoryNotFound = errors.New("Categoria não encontrada.")

	// ErrInvalidTipo is returned when tipo is neither entrada nor saida.
	ErrInvalidTipo = errors.New("O campo 'tipo' aceita apenas os valores 'entrada' ou 'saida'.")

	// ErrCreateTransaction is returned when the insert affects zero rows.
	ErrCreateTransaction = errors.New("Não foi possível cadastrar a transação.")

	// ErrUpdateTransaction is returned when the update affects zero rows.
	ErrUpdateTransaction = errors.New("Não foi possível atualizar a transação.")

	// ErrDeleteTransaction is returned when the delete affects zero rows.
	ErrDeleteTransaction = errors.New("Não foi possível excluir a transação.")
)
