package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	otelMocks "link/infras/otel/mocks"
	"link/infras/postgres"
	"link/internal/scope"
	"link/shared"
	"link/shared/dto"
	"link/shared/failure"
	"link/shared/repository"
	"link/shared/statement"
)

type company struct {
	CompanyID   int64  `db:"companyid"`
	CompanyName string `db:"companyname"`
}

type tpaRoom struct {
	TPAID  int64 `db:"tpaid"`
	RoomID int64 `db:"roomid"`
}

func newSQLMock(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	conn := sqlx.NewDb(db, "postgres")

	return &postgres.Connection{Read: conn, Write: conn}, mock
}

func scopedContext() context.Context {
	return scope.WithRequest(context.Background(), scope.NewRequest(scope.CompanyScope(7, 3), "abcdefghij"))
}

func newCompanyRepository(t *testing.T) (repository.Repository[company], sqlmock.Sqlmock) {
	t.Helper()

	db, mock := newSQLMock(t)

	return repository.NewRepository[company](scope.TableCompany, db, otelMocks.NewOtel()), mock
}

func TestInsert_WritesBaseTable(t *testing.T) {
	repo, mock := newCompanyRepository(t)

	mock.ExpectQuery("INSERT INTO company(companyName,companyWebsite,passwordId) VALUES ($1::text,$2::text,$3) RETURNING companyId;").
		WithArgs("Acme", "acme.test", int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"companyid"}).AddRow(int64(3)))

	id, err := repo.Insert(context.Background(),
		[]string{"companyName", "companyWebsite", "passwordId"},
		[]any{"Acme", "acme.test", int64(7)})

	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert_DriverFailure(t *testing.T) {
	repo, mock := newCompanyRepository(t)

	mock.ExpectQuery("INSERT INTO company(companyName) VALUES ($1::text) RETURNING companyId;").
		WithArgs("Acme").
		WillReturnError(errors.New(`null value in column "passwordid"`))

	_, err := repo.Insert(context.Background(), []string{"companyName"}, []any{"Acme"})

	require.Error(t, err)
	assert.True(t, failure.IsKind(err, failure.KindDatabase))
	assert.Equal(t, `Database query failed: null value in column "passwordid"`, err.Error())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertDefaults(t *testing.T) {
	db, mock := newSQLMock(t)
	repo := repository.NewRepository[struct{}](scope.TableTPA, db, otelMocks.NewOtel())

	mock.ExpectQuery("INSERT INTO tpa DEFAULT VALUES RETURNING tpaId;").
		WillReturnRows(sqlmock.NewRows([]string{"tpaid"}).AddRow(int64(40)))

	id, err := repo.InsertDefaults(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(40), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_ReadsThroughView(t *testing.T) {
	repo, mock := newCompanyRepository(t)

	mock.ExpectQuery("SELECT companyid, companyname FROM company_7_abcdefghij WHERE (companyId = $1)").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"companyid", "companyname"}).AddRow(int64(3), "Acme"))

	got, err := repo.Get(scopedContext(), shared.FilterByID(3, "companyId"))

	require.NoError(t, err)
	assert.Equal(t, company{CompanyID: 3, CompanyName: "Acme"}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_NotFound(t *testing.T) {
	repo, mock := newCompanyRepository(t)

	mock.ExpectQuery("SELECT companyid, companyname FROM company_7_abcdefghij WHERE (companyId = $1)").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"companyid", "companyname"}))

	_, err := repo.Get(scopedContext(), shared.FilterByID(9, "companyId"))

	assert.True(t, failure.IsKind(err, failure.KindNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_TracesReturnedError(t *testing.T) {
	db, mock := newSQLMock(t)
	recorder := otelMocks.NewRecorder()
	repo := repository.NewRepository[company](scope.TableCompany, db, recorder)

	mock.ExpectQuery("SELECT companyid, companyname FROM company_7_abcdefghij WHERE (companyId = $1)").
		WithArgs(int64(9)).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.Get(scopedContext(), shared.FilterByID(9, "companyId"))
	require.Error(t, err)

	traced := recorder.Errors("repository.company.Get")
	require.Len(t, traced, 1)
	assert.True(t, failure.IsKind(traced[0], failure.KindDatabase))
}

func TestGet_WithoutScopedRequest(t *testing.T) {
	repo, mock := newCompanyRepository(t)

	_, err := repo.Get(context.Background(), shared.FilterByID(3, "companyId"))

	assert.True(t, failure.IsKind(err, failure.KindInternal))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAll_PagedAndSorted(t *testing.T) {
	repo, mock := newCompanyRepository(t)

	mock.ExpectQuery("SELECT companyid, companyname FROM company_7_abcdefghij ORDER BY companyName DESC LIMIT $1 OFFSET $2").
		WithArgs(10, 10).
		WillReturnRows(sqlmock.NewRows([]string{"companyid", "companyname"}).
			AddRow(int64(3), "Acme").
			AddRow(int64(4), "Globex"))

	got, err := repo.GetAll(scopedContext(), dto.QueryParams{Page: 2, Limit: 10, SortBy: "companyName", SortDir: dto.SortDirDesc}, dto.FilterGroup{})

	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAll_RejectsUnknownSortColumn(t *testing.T) {
	repo, mock := newCompanyRepository(t)

	_, err := repo.GetAll(scopedContext(), dto.QueryParams{SortBy: "1; DROP TABLE company"}, dto.FilterGroup{})

	assert.True(t, failure.IsKind(err, failure.KindBadRequest))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFind_NotFoundWhenEmpty(t *testing.T) {
	repo, mock := newCompanyRepository(t)

	mock.ExpectQuery("SELECT companyid, companyname FROM company_7_abcdefghij WHERE (companyName = $1)").
		WithArgs("Nobody").
		WillReturnRows(sqlmock.NewRows([]string{"companyid", "companyname"}))

	_, err := repo.Find(scopedContext(), shared.FilterByField("companyName", "Nobody"))

	assert.True(t, failure.IsKind(err, failure.KindNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCount(t *testing.T) {
	repo, mock := newCompanyRepository(t)

	mock.ExpectQuery("SELECT COUNT(*) FROM company_7_abcdefghij").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	count, err := repo.Count(scopedContext(), dto.FilterGroup{})
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_OnlyPresentCandidates(t *testing.T) {
	repo, mock := newCompanyRepository(t)

	mock.ExpectExec("UPDATE company_7_abcdefghij SET companyWebsite = $1 WHERE companyId = 3").
		WithArgs("x").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(scopedContext(), 3,
		[]string{"companyName", "companyWebsite", "passwordId"},
		[]any{statement.Absent, "x", statement.Absent})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_NoValidParametersExecutesNothing(t *testing.T) {
	repo, mock := newCompanyRepository(t)

	err := repo.Update(scopedContext(), 3,
		[]string{"companyName", "companyWebsite"},
		[]any{statement.Absent, statement.Absent})

	assert.True(t, failure.IsKind(err, failure.KindNoValidParameters))
	assert.Equal(t, failure.MessageNoValidParameters, err.Error())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	repo, mock := newCompanyRepository(t)

	mock.ExpectExec("DELETE FROM company_7_abcdefghij WHERE companyId = $1").
		WithArgs(int64(3)).
		WillReturnError(errors.New("violates foreign key constraint"))

	err := repo.Delete(scopedContext(), 3)

	assert.True(t, failure.IsKind(err, failure.KindDatabase))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompositeKeys(t *testing.T) {
	db, mock := newSQLMock(t)
	repo := repository.NewRepository[tpaRoom](scope.TableTPAxRoom, db, otelMocks.NewOtel())

	keys := []statement.Key{{Column: "tpaId", Value: 1}, {Column: "roomId", Value: 2}}

	mock.ExpectExec("UPDATE tpaxroom_7_abcdefghij SET roomId = $1 WHERE tpaId = 1 AND roomId = 2").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM tpaxroom_7_abcdefghij WHERE tpaId = $1 AND roomId = $2").
		WithArgs(int64(1), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateComposite(scopedContext(), keys, []string{"roomId"}, []any{int64(5)}))
	require.NoError(t, repo.DeleteComposite(scopedContext(), keys))

	assert.NoError(t, mock.ExpectationsWereMet())
}

type wallet struct {
	WalletID int64   `db:"linkwalletid"`
	MaxLimit float64 `db:"maxlimit"`
	Spent    float64 `db:"spent"`
}

func TestIncrementWithin(t *testing.T) {
	db, mock := newSQLMock(t)
	repo := repository.NewRepository[wallet](scope.TableWallet, db, otelMocks.NewOtel())

	query := "UPDATE wallet_7_abcdefghij SET spent = spent + $1 WHERE linkWalletId = 5 AND spent + $1 <= maxLimit"

	mock.ExpectExec(query).WithArgs(12.5).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(query).WithArgs(500.0).WillReturnResult(sqlmock.NewResult(0, 0))

	changed, err := repo.IncrementWithin(scopedContext(), 5, "spent", "maxLimit", 12.5)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = repo.IncrementWithin(scopedContext(), 5, "spent", "maxLimit", 500.0)
	require.NoError(t, err)
	assert.False(t, changed)

	assert.NoError(t, mock.ExpectationsWereMet())
}
