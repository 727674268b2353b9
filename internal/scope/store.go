package scope

//go:generate go run go.uber.org/mock/mockgen -source=./store.go -destination=./mocks/store_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"link/infras/otel"
	"link/infras/postgres"
	"link/shared/constant"
	"link/shared/failure"
	"link/shared/logger"
)

// EmployeeRef is the part of an employee row the filters are derived from.
type EmployeeRef struct {
	EmployeeID int64 `db:"employeeid"`
	PasswordID int64 `db:"passwordid"`
}

// PackageRefs holds the optional references gathered from visitor packages.
type PackageRefs struct {
	TempWifiAccessIDs []int64
	TPAIDs            []int64
	WalletIDs         []int64
}

type packageRow struct {
	TempWifiAccessID sql.NullInt64 `db:"tempwifiaccessid"`
	TPAID            sql.NullInt64 `db:"tpaid"`
	WalletID         sql.NullInt64 `db:"linkwalletid"`
}

// CredentialBinding says whether a password row exists and what it is
// already bound to.
type CredentialBinding struct {
	Exists   bool `db:"found"`
	Employee bool `db:"employeebound"`
	Company  bool `db:"companybound"`
}

// Free reports whether the credential exists and nothing is bound to it yet.
func (b CredentialBinding) Free() bool {
	return b.Exists && !b.Employee && !b.Company
}

// Store reads the base tables the scope is derived from. It runs before any
// view exists.
type Store interface {
	CredentialByAPIKey(ctx context.Context, apiKey string) (int64, error)
	EmployeeBound(ctx context.Context, credentialID int64) (bool, error)
	CompanyByCredential(ctx context.Context, credentialID int64) (int64, error)
	// CredentialBinding reads the credential from the base tables, so rows
	// the request's views hide are still seen.
	CredentialBinding(ctx context.Context, credentialID int64) (CredentialBinding, error)
	EmployeesByCompany(ctx context.Context, companyID int64) ([]EmployeeRef, error)
	BuildingsByCompany(ctx context.Context, companyID int64) ([]int64, error)
	PackageRefs(ctx context.Context, employeeIDs []int64) (PackageRefs, error)
}

type storeImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func NewStore(db *postgres.Connection, otel otel.Otel) Store {
	return &storeImpl{
		db:   db,
		otel: otel,
	}
}

const (
	queryCredentialByAPIKey  = "SELECT passwordId FROM password WHERE apiKey = $1 LIMIT 1"
	queryEmployeeBound       = "SELECT EXISTS(SELECT 1 FROM employee WHERE passwordId = $1)"
	queryCompanyByCredential = "SELECT companyId FROM company WHERE passwordId = $1 LIMIT 1"
	queryEmployeesByCompany  = "SELECT employeeId, passwordId FROM employee WHERE companyId = $1 ORDER BY employeeId"
	queryBuildingsByCompany  = "SELECT buildingId FROM building WHERE companyId = $1 ORDER BY buildingId"
	queryPackageRefs         = "SELECT tempWifiAccessId, tpaId, linkWalletId FROM visitorpackage WHERE employeeId = ANY($1) ORDER BY visitorPackageId"
)

const queryCredentialBinding = "SELECT EXISTS(SELECT 1 FROM password WHERE passwordId = $1) AS found, " +
	"EXISTS(SELECT 1 FROM employee WHERE passwordId = $1) AS employeeBound, " +
	"EXISTS(SELECT 1 FROM company WHERE passwordId = $1) AS companyBound"

func (s *storeImpl) CredentialByAPIKey(ctx context.Context, apiKey string) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelIsolationScopeName, constant.OtelIsolationScopeName+".store.CredentialByAPIKey")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.db.Read.GetContext(ctx, &id, queryCredentialByAPIKey, apiKey)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, failure.NotFound("credential not found")
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return 0, failure.Database(err)
	}

	return id, nil
}

func (s *storeImpl) EmployeeBound(ctx context.Context, credentialID int64) (bound bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelIsolationScopeName, constant.OtelIsolationScopeName+".store.EmployeeBound")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.db.Read.GetContext(ctx, &bound, queryEmployeeBound, credentialID); err != nil {
		logger.ErrorWithStack(err)

		return false, failure.Database(err)
	}

	return bound, nil
}

func (s *storeImpl) CompanyByCredential(ctx context.Context, credentialID int64) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelIsolationScopeName, constant.OtelIsolationScopeName+".store.CompanyByCredential")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.db.Read.GetContext(ctx, &id, queryCompanyByCredential, credentialID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, failure.NotFound("company not found")
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return 0, failure.Database(err)
	}

	return id, nil
}

func (s *storeImpl) CredentialBinding(ctx context.Context, credentialID int64) (binding CredentialBinding, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelIsolationScopeName, constant.OtelIsolationScopeName+".store.CredentialBinding")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.db.Read.GetContext(ctx, &binding, queryCredentialBinding, credentialID); err != nil {
		logger.ErrorWithStack(err)

		return binding, failure.Database(err)
	}

	return binding, nil
}

func (s *storeImpl) EmployeesByCompany(ctx context.Context, companyID int64) (refs []EmployeeRef, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelIsolationScopeName, constant.OtelIsolationScopeName+".store.EmployeesByCompany")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.db.Read.SelectContext(ctx, &refs, queryEmployeesByCompany, companyID); err != nil {
		logger.ErrorWithStack(err)

		return nil, failure.Database(err)
	}

	return refs, nil
}

func (s *storeImpl) BuildingsByCompany(ctx context.Context, companyID int64) (ids []int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelIsolationScopeName, constant.OtelIsolationScopeName+".store.BuildingsByCompany")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.db.Read.SelectContext(ctx, &ids, queryBuildingsByCompany, companyID); err != nil {
		logger.ErrorWithStack(err)

		return nil, failure.Database(err)
	}

	return ids, nil
}

func (s *storeImpl) PackageRefs(ctx context.Context, employeeIDs []int64) (refs PackageRefs, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelIsolationScopeName, constant.OtelIsolationScopeName+".store.PackageRefs")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if len(employeeIDs) == 0 {
		return refs, nil
	}

	var rows []packageRow

	if err = s.db.Read.SelectContext(ctx, &rows, queryPackageRefs, pq.Array(employeeIDs)); err != nil {
		logger.ErrorWithStack(err)

		return refs, failure.Database(fmt.Errorf("visitor package references: %w", err))
	}

	for _, row := range rows {
		if row.TempWifiAccessID.Valid {
			refs.TempWifiAccessIDs = append(refs.TempWifiAccessIDs, row.TempWifiAccessID.Int64)
		}

		if row.TPAID.Valid {
			refs.TPAIDs = append(refs.TPAIDs, row.TPAID.Int64)
		}

		if row.WalletID.Valid {
			refs.WalletIDs = append(refs.WalletIDs, row.WalletID.Int64)
		}
	}

	return refs, nil
}
