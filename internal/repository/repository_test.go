package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/emsys-dev/employee-manager/backend/internal/config"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{}
	cfg.Database.QueryTimeout = 5

	return NewRepository(cfg, db), mock
}

func TestMigrate(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS accounts`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS employees`).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Migrate())
	require.NoError(t, mock.ExpectationsWereMet())
}
