package persistence

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stocktrack/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockCategoryRepository creates a GormCategoryRepository with a mocked SQL connection
func newMockCategoryRepository(t *testing.T) (*GormCategoryRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormCategoryRepository(gormDB), mock, mockDB
}

func TestGormCategoryRepository_FindByID_Errors(t *testing.T) {
	t.Run("maps record not found to domain not found", func(t *testing.T) {
		repo, mock, mockDB := newMockCategoryRepository(t)
		defer mockDB.Close()

		id := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "categories" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(id, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		_, err := repo.FindByID(context.Background(), id)

		require.Error(t, err)
		assert.True(t, shared.IsCode(err, shared.CodeNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wraps driver failures as persistence errors", func(t *testing.T) {
		repo, mock, mockDB := newMockCategoryRepository(t)
		defer mockDB.Close()

		id := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "categories" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(id, 1).
			WillReturnError(errors.New("connection reset"))

		_, err := repo.FindByID(context.Background(), id)

		require.Error(t, err)
		assert.True(t, shared.IsCode(err, shared.CodePersistence))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
