package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	categoryentity "finance_backend/internal/feature/category/domain/entity"
	"finance_backend/internal/feature/transaction/domain/entity"
	"finance_backend/internal/feature/transaction/usecase"
)

// setupTestDB prepares an in-memory SQLite database with the transacoes and
// categorias tables, plus one seed category for the join.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&categoryentity.Category{}, &entity.Transaction{})
	require.NoError(t, err, "failed to migrate tables")

	require.NoError(t, db.Create(&categoryentity.Category{ID: 1, Descricao: "Mercado"}).Error,
		"failed to seed category")

	return db
}

var testDate = time.Date(2022, 3, 24, 0, 0, 0, 0, time.UTC)

func seedTransaction(t *testing.T, db *gorm.DB, userID uint, tipo string, valor int64) *entity.Transaction {
	t.Helper()

	tr := &entity.Transaction{
		Tipo:        tipo,
		Descricao:   "mercado",
		Valor:       valor,
		Data:        testDate,
		UsuarioID:   userID,
		CategoriaID: 1,
	}
	require.NoError(t, db.Create(tr).Error, "failed to seed transaction")
	return tr
}

func TestTransactionPostgres_ListByUser(t *testing.T) {
	t.Run("returns only the owner's rows joined with the category, id ascending", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTransactionPostgres(db)

		first := seedTransaction(t, db, 1, entity.TipoSaida, 5000)
		second := seedTransaction(t, db, 1, entity.TipoEntrada, 300000)
		seedTransaction(t, db, 2, entity.TipoSaida, 900)

		rows, err := repo.ListByUser(context.Background(), 1)

		assert.NoError(t, err, "failed to list transactions")
		require.Len(t, rows, 2)
		assert.Equal(t, first.ID, rows[0].ID, "rows must be ordered by ascending id")
		assert.Equal(t, second.ID, rows[1].ID)
		assert.Equal(t, "Mercado", rows[0].CategoriaNome, "join must carry the category description")
		assert.Equal(t, uint(1), rows[0].UsuarioID)
	})

	t.Run("user with no rows gets an empty slice", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTransactionPostgres(db)

		rows, err := repo.ListByUser(context.Background(), 1)

		assert.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestTransactionPostgres_OwnershipPredicates(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTransactionPostgres(db)

	tr := seedTransaction(t, db, 1, entity.TipoSaida, 5000)

	exists, err := repo.ExistsByID(context.Background(), tr.ID)
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByID(context.Background(), 999)
	assert.NoError(t, err)
	assert.False(t, exists)

	count, err := repo.CountByUser(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = repo.CountByUser(context.Background(), 2)
	assert.NoError(t, err)
	assert.Zero(t, count)

	owned, err := repo.OwnedBy(context.Background(), tr.ID, 1)
	assert.NoError(t, err)
	assert.True(t, owned)

	owned, err = repo.OwnedBy(context.Background(), tr.ID, 2)
	assert.NoError(t, err)
	assert.False(t, owned, "another user must not own the row")
}

func TestTransactionPostgres_FindWithCategory(t *testing.T) {
	t.Run("returns the owner-scoped joined row", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTransactionPostgres(db)

		tr := seedTransaction(t, db, 1, entity.TipoEntrada, 300000)

		found, err := repo.FindWithCategory(context.Background(), tr.ID, 1)

		assert.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, tr.ID, found.ID)
		assert.Equal(t, int64(300000), found.Valor)
		assert.Equal(t, "Mercado", found.CategoriaNome)
	})

	t.Run("wrong owner yields not found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTransactionPostgres(db)

		tr := seedTransaction(t, db, 1, entity.TipoEntrada, 300000)

		found, err := repo.FindWithCategory(context.Background(), tr.ID, 2)

		assert.Nil(t, found)
		assert.ErrorIs(t, err, usecase.ErrTransactionNotFound)
	})
}

func TestTransactionPostgres_Create_LatestByUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTransactionPostgres(db)

	err := repo.Create(context.Background(), &entity.Transaction{
		Tipo: entity.TipoSaida, Descricao: "padaria", Valor: 1200,
		Data: testDate, UsuarioID: 1, CategoriaID: 1,
	})
	require.NoError(t, err, "failed to create first transaction")

	err = repo.Create(context.Background(), &entity.Transaction{
		Tipo: entity.TipoSaida, Descricao: "farmácia", Valor: 4500,
		Data: testDate, UsuarioID: 1, CategoriaID: 1,
	})
	require.NoError(t, err, "failed to create second transaction")

	latest, err := repo.LatestByUser(context.Background(), 1)

	assert.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "farmácia", latest.Descricao, "latest must be the highest id")
	assert.Equal(t, "Mercado", latest.CategoriaNome)
}

func TestTransactionPostgres_Update(t *testing.T) {
	t.Run("replaces all mutable fields for the owner", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTransactionPostgres(db)

		tr := seedTransaction(t, db, 1, entity.TipoSaida, 5000)

		newDate := time.Date(2022, 4, 1, 0, 0, 0, 0, time.UTC)
		err := repo.Update(context.Background(), &entity.Transaction{
			ID: tr.ID, Tipo: entity.TipoEntrada, Descricao: "reembolso",
			Valor: 7500, Data: newDate, UsuarioID: 1, CategoriaID: 1,
		})
		assert.NoError(t, err, "failed to update transaction")

		found, err := repo.FindWithCategory(context.Background(), tr.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, entity.TipoEntrada, found.Tipo)
		assert.Equal(t, "reembolso", found.Descricao)
		assert.Equal(t, int64(7500), found.Valor)
	})

	t.Run("wrong owner affects zero rows", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTransactionPostgres(db)

		tr := seedTransaction(t, db, 1, entity.TipoSaida, 5000)

		err := repo.Update(context.Background(), &entity.Transaction{
			ID: tr.ID, Tipo: entity.TipoSaida, Descricao: "x",
			Valor: 1, Data: testDate, UsuarioID: 2, CategoriaID: 1,
		})

		assert.ErrorIs(t, err, usecase.ErrUpdateTransaction)
	})
}

func TestTransactionPostgres_DeleteOwned(t *testing.T) {
	t.Run("removes the owner's row", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTransactionPostgres(db)

		tr := seedTransaction(t, db, 1, entity.TipoSaida, 5000)

		err := repo.DeleteOwned(context.Background(), tr.ID, 1)
		assert.NoError(t, err, "failed to delete transaction")

		exists, err := repo.ExistsByID(context.Background(), tr.ID)
		require.NoError(t, err)
		assert.False(t, exists, "row should be gone")
	})

	t.Run("wrong owner affects zero rows and keeps the row", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTransactionPostgres(db)

		tr := seedTransaction(t, db, 1, entity.TipoSaida, 5000)

		err := repo.DeleteOwned(context.Background(), tr.ID, 2)

		assert.ErrorIs(t, err, usecase.ErrDeleteTransaction)

		exists, findErr := repo.ExistsByID(context.Background(), tr.ID)
		require.NoError(t, findErr)
		assert.True(t, exists, "row must survive a foreign delete attempt")
	})
}

func TestTransactionPostgres_SumByTipo(t *testing.T) {
	t.Run("sums each kind per owner", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTransactionPostgres(db)

		seedTransaction(t, db, 1, entity.TipoEntrada, 300000)
		seedTransaction(t, db, 1, entity.TipoEntrada, 50000)
		seedTransaction(t, db, 1, entity.TipoSaida, 125050)
		seedTransaction(t, db, 2, entity.TipoEntrada, 999999)

		entrada, err := repo.SumByTipo(context.Background(), 1, entity.TipoEntrada)
		assert.NoError(t, err)
		assert.Equal(t, int64(350000), entrada)

		saida, err := repo.SumByTipo(context.Background(), 1, entity.TipoSaida)
		assert.NoError(t, err)
		assert.Equal(t, int64(125050), saida)
	})

	t.Run("empty set sums to zero, not null", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTransactionPostgres(db)

		total, err := repo.SumByTipo(context.Background(), 1, entity.TipoEntrada)

		assert.NoError(t, err)
		assert.Zero(t, total)
	})
}
