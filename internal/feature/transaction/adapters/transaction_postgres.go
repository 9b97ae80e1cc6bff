// Package adapters provides the repository implementations for the transaction feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"finance_backend/internal/feature/transaction/domain/entity"
	"finance_backend/internal/feature/transaction/usecase"
)

// joinedColumns selects the transaction row plus its category description,
// matching the shape of entity.TransactionWithCategory.
const joinedColumns = "t.id, t.tipo, t.descricao, t.valor, t.data, t.usuario_id, t.categoria_id, c.descricao AS categoria_nome"

// transactionPostgres is the PostgreSQL implementation of the
// TransactionRepository interface.
type transactionPostgres struct {
	db *gorm.DB
}

var _ usecase.TransactionRepository = (*transactionPostgres)(nil)

// NewTransactionPostgres creates a new transactionPostgres with the given DB connection.
func NewTransactionPostgres(db *gorm.DB) *transactionPostgres {
	return &transactionPostgres{db: db}
}

func (r *transactionPostgres) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("transacoes t").
		Select(joinedColumns).
		Joins("JOIN categorias c ON c.id = t.categoria_id")
}

// ListByUser returns the user's transactions joined with category
// descriptions, ordered by ascending ID.
func (r *transactionPostgres) ListByUser(ctx context.Context, userID uint) ([]entity.TransactionWithCategory, error) {
	var rows []entity.TransactionWithCategory
	if err := r.joined(ctx).
		Where("t.usuario_id = ?", userID).
		Order("t.id ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ExistsByID reports whether any transaction has the given ID.
func (r *transactionPostgres) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entity.Transaction{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountByUser returns how many transactions the user owns.
func (r *transactionPostgres) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entity.Transaction{}).
		Where("usuario_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// OwnedBy reports whether the transaction with the given ID belongs to the user.
func (r *transactionPostgres) OwnedBy(ctx context.Context, id, userID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entity.Transaction{}).
		Where("id = ? AND usuario_id = ?", id, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindWithCategory returns the owner-scoped transaction joined with its category.
func (r *transactionPostgres) FindWithCategory(ctx context.Context, id, userID uint) (*entity.TransactionWithCategory, error) {
	var rows []entity.TransactionWithCategory
	if err := r.joined(ctx).
		Where("t.id = ? AND t.usuario_id = ?", id, userID).
		Limit(1).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, usecase.ErrTransactionNotFound
	}
	return &rows[0], nil
}

// Create inserts the transaction.
func (r *transactionPostgres) Create(ctx context.Context, t *entity.Transaction) error {
	tx := r.db.WithContext(ctx).Create(t)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return usecase.ErrCreateTransaction
	}
	return nil
}

// LatestByUser returns the user's most recently inserted transaction (highest ID).
func (r *transactionPostgres) LatestByUser(ctx context.Context, userID uint) (*entity.TransactionWithCategory, error) {
	var rows []entity.TransactionWithCategory
	if err := r.joined(ctx).
		Where("t.usuario_id = ?", userID).
		Order("t.id DESC").
		Limit(1).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, usecase.ErrTransactionNotFound
	}
	return &rows[0], nil
}

// Update overwrites all mutable fields, scoped by both ID and owner.
func (r *transactionPostgres) Update(ctx context.Context, t *entity.Transaction) error {
	tx := r.db.WithContext(ctx).
		Model(&entity.Transaction{}).
		Where("id = ? AND usuario_id = ?", t.ID, t.UsuarioID).
		Updates(map[string]any{
			"descricao":    t.Descricao,
			"valor":        t.Valor,
			"data":         t.Data,
			"categoria_id": t.CategoriaID,
			"tipo":         t.Tipo,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return usecase.ErrUpdateTransaction
	}
	return nil
}

// DeleteOwned removes the transaction scoped by both ID and owner.
func (r *transactionPostgres) DeleteOwned(ctx context.Context, id, userID uint) error {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND usuario_id = ?", id, userID).
		Delete(&entity.Transaction{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return usecase.ErrDeleteTransaction
	}
	return nil
}

// SumByTipo sums valor over the user's transactions of one kind.
// COALESCE keeps the empty set at zero instead of NULL.
func (r *transactionPostgres) SumByTipo(ctx context.Context, userID uint, tipo string) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&entity.Transaction{}).
		Select("COALESCE(SUM(valor), 0)").
		Where("usuario_id = ? AND tipo = ?", userID, tipo).
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
