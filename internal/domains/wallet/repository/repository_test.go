package repository_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	otelMocks "link/infras/otel/mocks"
	"link/infras/postgres"
	"link/internal/domains/wallet/model"
	"link/internal/domains/wallet/repository"
	"link/internal/scope"
)

func newRepository(t *testing.T) (repository.Wallet, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	conn := sqlx.NewDb(db, "postgres")

	return repository.New(&postgres.Connection{Read: conn, Write: conn}, otelMocks.NewOtel()), mock
}

func scopedContext() context.Context {
	return scope.WithRequest(context.Background(), scope.NewRequest(scope.CompanyScope(7, 3), "abcdefghij"))
}

func TestWallet_SpendIsOneConditionalStatement(t *testing.T) {
	repo, mock := newRepository(t)

	query := "UPDATE wallet_7_abcdefghij SET spent = spent + $1 WHERE linkWalletId = 50 AND spent + $1 <= maxLimit"

	mock.ExpectExec(query).WithArgs(10.0).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(query).WithArgs(46.0).WillReturnResult(sqlmock.NewResult(0, 0))

	charged, err := repo.Spend(scopedContext(), 50, 10)
	require.NoError(t, err)
	assert.True(t, charged)

	charged, err = repo.Spend(scopedContext(), 50, 46)
	require.NoError(t, err)
	assert.False(t, charged)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWallet_Delete(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectExec("DELETE FROM wallet_7_abcdefghij WHERE linkWalletId = $1").
		WithArgs(int64(50)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(scopedContext(), 50))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWallet_InsertKeepsModelColumns(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery("INSERT INTO wallet(maxLimit,spent) VALUES ($1,$2) RETURNING linkWalletId;").
		WithArgs(50.0, 0.0).
		WillReturnRows(sqlmock.NewRows([]string{"linkwalletid"}).AddRow(int64(50)))

	id, err := repo.Insert(context.Background(), model.Wallet{MaxLimit: 50})

	require.NoError(t, err)
	assert.Equal(t, int64(50), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}
