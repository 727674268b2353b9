package scope_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	otelMocks "link/infras/otel/mocks"
	"link/internal/scope"
	"link/shared/failure"
)

const queryCredentialBinding = "SELECT EXISTS(SELECT 1 FROM password WHERE passwordId = $1) AS found, " +
	"EXISTS(SELECT 1 FROM employee WHERE passwordId = $1) AS employeeBound, " +
	"EXISTS(SELECT 1 FROM company WHERE passwordId = $1) AS companyBound"

func TestStore_CredentialBinding(t *testing.T) {
	tests := []struct {
		name     string
		row      []bool
		wantFree bool
	}{
		{name: "fresh credential", row: []bool{true, false, false}, wantFree: true},
		{name: "missing credential", row: []bool{false, false, false}},
		{name: "bound to an employee", row: []bool{true, true, false}},
		{name: "bound to a company", row: []bool{true, false, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newSQLMock(t)
			store := scope.NewStore(db, otelMocks.NewOtel())

			mock.ExpectQuery(queryCredentialBinding).
				WithArgs(int64(12)).
				WillReturnRows(sqlmock.NewRows([]string{"found", "employeebound", "companybound"}).
					AddRow(tt.row[0], tt.row[1], tt.row[2]))

			binding, err := store.CredentialBinding(context.Background(), 12)

			require.NoError(t, err)
			assert.Equal(t, tt.row[0], binding.Exists)
			assert.Equal(t, tt.wantFree, binding.Free())
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStore_CredentialBindingDriverFailure(t *testing.T) {
	db, mock := newSQLMock(t)
	store := scope.NewStore(db, otelMocks.NewOtel())

	mock.ExpectQuery(queryCredentialBinding).
		WithArgs(int64(12)).
		WillReturnError(errors.New("connection reset"))

	_, err := store.CredentialBinding(context.Background(), 12)

	assert.True(t, failure.IsKind(err, failure.KindDatabase))
	assert.NoError(t, mock.ExpectationsWereMet())
}
