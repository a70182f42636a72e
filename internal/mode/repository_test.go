package mode

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestRepository_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	t.Run("ReturnsStoredSettings", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"is_drop_active", "revision", "updated_at"}).
			AddRow(true, int64(7), now)
		mock.ExpectQuery("SELECT is_drop_active, revision, updated_at").WillReturnRows(rows)

		settings, err := repo.Get(context.Background())
		assert.NoError(t, err)
		assert.True(t, settings.IsDropActive)
		assert.Equal(t, int64(7), settings.Revision)
	})

	t.Run("NoRowMeansInitialState", func(t *testing.T) {
		mock.ExpectQuery("SELECT is_drop_active, revision, updated_at").
			WillReturnError(sql.ErrNoRows)

		settings, err := repo.Get(context.Background())
		assert.NoError(t, err, "a never-written flag is NORMAL, not an error")
		assert.False(t, settings.IsDropActive)
		assert.Equal(t, int64(0), settings.Revision)
	})

	t.Run("QueryFailure", func(t *testing.T) {
		mock.ExpectQuery("SELECT is_drop_active, revision, updated_at").
			WillReturnError(errors.New("connection refused"))

		_, err := repo.Get(context.Background())
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Set(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	t.Run("UpsertsAndBumpsRevision", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"is_drop_active", "revision", "updated_at"}).
			AddRow(true, int64(8), now)
		mock.ExpectQuery("INSERT INTO homepage_settings").
			WithArgs(true).
			WillReturnRows(rows)

		settings, err := repo.Set(context.Background(), true)
		assert.NoError(t, err)
		assert.True(t, settings.IsDropActive)
		assert.Equal(t, int64(8), settings.Revision)
	})

	t.Run("WriteFailure", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO homepage_settings").
			WithArgs(false).
			WillReturnError(errors.New("connection refused"))

		_, err := repo.Set(context.Background(), false)
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
