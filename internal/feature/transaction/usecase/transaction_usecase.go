package usecase

import (
	"context"
	"time"

	"finance_backend/internal/feature/transaction/domain/entity"
)

// TransactionRepository abstracts the persistence layer for transactions.
// Following Go convention, the interface is defined by the consumer (usecase),
// not the provider (adapters).
type TransactionRepository interface {
	// ListByUser returns all transactions owned by userID joined with their
	// category description, ordered by ascending ID.
	ListByUser(ctx context.Context, userID uint) ([]entity.TransactionWithCategory, error)

	// ExistsByID reports whether any transaction has the given ID.
	ExistsByID(ctx context.Context, id uint) (bool, error)

	// CountByUser returns how many transactions userID owns.
	CountByUser(ctx context.Context, userID uint) (int64, error)

	// OwnedBy reports whether the transaction with the given ID belongs to userID.
	OwnedBy(ctx context.Context, id, userID uint) (bool, error)

	// FindWithCategory returns the owner-scoped transaction joined with its
	// category. It returns ErrTransactionNotFound if no row matches.
	FindWithCategory(ctx context.Context, id, userID uint) (*entity.TransactionWithCategory, error)

	// Create persists a new transaction.
	// It returns ErrCreateTransaction if the insert affects zero rows.
	Create(ctx context.Context, t *entity.Transaction) error

	// LatestByUser returns the most recently inserted transaction for userID
	// (highest ID), joined with its category.
	LatestByUser(ctx context.Context, userID uint) (*entity.TransactionWithCategory, error)

	// Update overwrites all mutable fields, scoped by both ID and owner.
	// It returns ErrUpdateTransaction if the update affects zero rows.
	Update(ctx context.Context, t *entity.Transaction) error

	// DeleteOwned removes the transaction scoped by both ID and owner.
	// It returns ErrDeleteTransaction if the delete affects zero rows.
	DeleteOwned(ctx context.Context, id, userID uint) error

	// SumByTipo returns the sum of valor over the user's transactions of the
	// given kind, with zero for an empty set.
	SumByTipo(ctx context.Context, userID uint, tipo string) (int64, error)
}

// CategoryChecker verifies that a category exists. Implemented by the
// category feature's repository.
type CategoryChecker interface {
	ExistsByID(ctx context.Context, id uint) (bool, error)
}

// TransactionUsecase implements CRUD and the balance summary over
// owner-scoped transactions.
type TransactionUsecase struct {
	repo       TransactionRepository
	categories CategoryChecker
}

// NewTransactionUsecase creates a new TransactionUsecase with the given dependencies.
func NewTransactionUsecase(repo TransactionRepository, categories CategoryChecker) *TransactionUsecase {
	return &TransactionUsecase{repo: repo, categories: categories}
}

// ownershipCheck is one predicate of the layered ownership validation.
// Checks run in order; the first one that does not pass aborts with its failure.
type ownershipCheck struct {
	passes  func(ctx context.Context) (bool, error)
	failure error
}

func runChecks(ctx context.Context, checks []ownershipCheck) error {
	for _, check := range checks {
		ok, err := check.passes(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return check.failure
		}
	}
	return nil
}

// existsCheck fails with ErrTransactionNotFound when no transaction has the ID.
func (u *TransactionUsecase) existsCheck(id uint) ownershipCheck {
	return ownershipCheck{
		passes:  func(ctx context.Context) (bool, error) { return u.repo.ExistsByID(ctx, id) },
		failure: ErrTransactionNotFound,
	}
}

// hasAnyCheck fails with ErrNoTransactionsForUser when the user owns no rows.
func (u *TransactionUsecase) hasAnyCheck(userID uint) ownershipCheck {
	return ownershipCheck{
		passes: func(ctx context.Context) (bool, error) {
			n, err := u.repo.CountByUser(ctx, userID)
			return n > 0, err
		},
		failure: ErrNoTransactionsForUser,
	}
}

// ownedCheck fails with ErrTransactionNotOwned when the row belongs to
// someone else.
func (u *TransactionUsecase) ownedCheck(id, userID uint) ownershipCheck {
	return ownershipCheck{
		passes:  func(ctx context.Context) (bool, error) { return u.repo.OwnedBy(ctx, id, userID) },
		failure: ErrTransactionNotOwned,
	}
}

func validateTipo(tipo string) error {
	if tipo != entity.TipoEntrada && tipo != entity.TipoSaida {
		return ErrInvalidTipo
	}
	return nil
}

// List returns all of the user's transactions with category descriptions.
func (u *TransactionUsecase) List(ctx context.Context, userID uint) ([]entity.TransactionWithCategory, error) {
	return u.repo.ListByUser(ctx, userID)
}

// Detail returns one owner-scoped transaction after the full three-tier
// ownership validation: the ID must exist at all, the user must own at least
// one transaction, and the ID must belong to the user.
func (u *TransactionUsecase) Detail(ctx context.Context, userID, id uint) (*entity.TransactionWithCategory, error) {
	checks := []ownershipCheck{
		u.existsCheck(id),
		u.hasAnyCheck(userID),
		u.ownedCheck(id, userID),
	}
	if err := runChecks(ctx, checks); err != nil {
		return nil, err
	}
	return u.repo.FindWithCategory(ctx, id, userID)
}

// Create validates the kind and category, inserts the transaction with the
// caller as owner, and returns the user's most recently inserted row.
func (u *TransactionUsecase) Create(ctx context.Context, userID uint, descricao string, valor int64, data time.Time, categoriaID uint, tipo string) (*entity.TransactionWithCategory, error) {
	if err := validateTipo(tipo); err != nil {
		return nil, err
	}

	ok, err := u.categories.ExistsByID(ctx, categoriaID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCategoryNotFound
	}

	t := &entity.Transaction{
		Tipo:        tipo,
		Descricao:   descricao,
		Valor:       valor,
		Data:        data,
		UsuarioID:   userID,
		CategoriaID: categoriaID,
	}
	if err := u.repo.Create(ctx, t); err != nil {
		return nil, err
	}

	return u.repo.LatestByUser(ctx, userID)
}

// Update replaces all mutable fields of an owned transaction.
func (u *TransactionUsecase) Update(ctx context.Context, userID, id uint, descricao string, valor int64, data time.Time, categoriaID uint, tipo string) error {
	if err := validateTipo(tipo); err != nil {
		return err
	}

	checks := []ownershipCheck{
		u.existsCheck(id),
		u.ownedCheck(id, userID),
	}
	if err := runChecks(ctx, checks); err != nil {
		return err
	}

	ok, err := u.categories.ExistsByID(ctx, categoriaID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCategoryNotFound
	}

	return u.repo.Update(ctx, &entity.Transaction{
		ID:          id,
		Tipo:        tipo,
		Descricao:   descricao,
		Valor:       valor,
		Data:        data,
		UsuarioID:   userID,
		CategoriaID: categoriaID,
	})
}

// Delete removes an owned transaction.
func (u *TransactionUsecase) Delete(ctx context.Context, userID, id uint) error {
	checks := []ownershipCheck{
		u.existsCheck(id),
		u.ownedCheck(id, userID),
	}
	if err := runChecks(ctx, checks); err != nil {
		return err
	}
	return u.repo.DeleteOwned(ctx, id, userID)
}

// Extrato computes the user's balance summary. Each kind is summed
// independently; a user with no rows gets zero for both.
func (u *TransactionUsecase) Extrato(ctx context.Context, userID uint) (entity.Extrato, error) {
	entrada, err := u.repo.SumByTipo(ctx, userID, entity.TipoEntrada)
	if err != nil {
		return entity.Extrato{}, err
	}
	saida, err := u.repo.SumByTipo(ctx, userID, entity.TipoSaida)
	if err != nil {
		return entity.Extrato{}, err
	}
	return entity.Extrato{Entrada: entrada, Saida: saida}, nil
}
