package scope_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "link/infras/otel/mocks"
	"link/internal/scope"
	"link/internal/scope/mocks"
	"link/shared/constant"
)

func TestTeardown_DropsCreatedSubsetAfterFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, sqlMock := newSQLMock(t)
	store := mocks.NewMockStore(ctrl)
	ledger := mocks.NewMockLedger(ctrl)

	ledger.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(3)

	expectViews(sqlMock, []string{
		"CREATE VIEW company_0_abcdefghij AS (SELECT * FROM company)",
		"CREATE VIEW building_0_abcdefghij AS (SELECT * FROM building)",
		"CREATE VIEW employee_0_abcdefghij AS (SELECT * FROM employee)",
	})
	sqlMock.ExpectExec("CREATE VIEW credential_0_abcdefghij AS (SELECT * FROM password)").
		WillReturnError(errors.New("out of shared memory"))

	materializer := scope.NewMaterializerWithSuffix(db, store, ledger, otelMocks.NewOtel(), testSuffix)

	req, err := materializer.Materialize(context.Background(), scope.OpenScope(0))
	assert.Error(t, err)

	sqlMock.ExpectExec("DROP VIEW IF EXISTS company_0_abcdefghij").WillReturnResult(sqlmock.NewResult(0, 0))
	sqlMock.ExpectExec("DROP VIEW IF EXISTS building_0_abcdefghij").WillReturnError(errors.New("connection reset"))
	sqlMock.ExpectExec("DROP VIEW IF EXISTS employee_0_abcdefghij").WillReturnResult(sqlmock.NewResult(0, 0))

	ledger.EXPECT().Forget(gomock.Any(), "company_0_abcdefghij", "employee_0_abcdefghij").Return(nil)

	teardowner := scope.NewTeardowner(db, ledger, otelMocks.NewOtel())
	teardowner.Teardown(context.Background(), req)

	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestTeardown_AllViews(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, sqlMock := newSQLMock(t)
	ledger := mocks.NewMockLedger(ctrl)

	req := scope.NewRequest(scope.CompanyScope(7, 3), testSuffix)

	names := make([]any, 0, 13)
	for _, name := range req.Created() {
		sqlMock.ExpectExec("DROP VIEW IF EXISTS " + name).WillReturnResult(sqlmock.NewResult(0, 0))

		names = append(names, name)
	}

	ledger.EXPECT().Forget(gomock.Any(), names...).Return(errors.New("redis down"))

	scope.NewTeardowner(db, ledger, otelMocks.NewOtel()).Teardown(context.Background(), req)

	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestTeardown_AlreadyDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, sqlMock := newSQLMock(t)
	ledger := mocks.NewMockLedger(ctrl)

	req := scope.NewRequest(scope.OpenScope(0), testSuffix, scope.TableWallet)

	sqlMock.ExpectExec("DROP VIEW IF EXISTS wallet_0_abcdefghij").
		WillReturnError(&pq.Error{Code: constant.PqErrorCodeUndefinedTable, Message: "view does not exist"})
	ledger.EXPECT().Forget(gomock.Any()).Return(nil)

	scope.NewTeardowner(db, ledger, otelMocks.NewOtel()).Teardown(context.Background(), req)

	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestTeardown_NothingCreated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, sqlMock := newSQLMock(t)
	ledger := mocks.NewMockLedger(ctrl)

	scope.NewTeardowner(db, ledger, otelMocks.NewOtel()).Teardown(context.Background(), nil)

	assert.NoError(t, sqlMock.ExpectationsWereMet())
}
