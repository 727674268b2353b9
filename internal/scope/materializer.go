package scope

//go:generate go run go.uber.org/mock/mockgen -source=./materializer.go -destination=./mocks/materializer_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"link/infras/otel"
	"link/infras/postgres"
	"link/shared/constant"
	"link/shared/failure"
	"link/shared/logger"
	"link/shared/timezone"
)

// emptySet stands in for an empty id set so the view exists and is empty.
const emptySet = "0"

// Materializer creates the thirteen views of one request.
type Materializer interface {
	Materialize(ctx context.Context, s Scope) (*Request, error)
}

type materializerImpl struct {
	db     *postgres.Connection
	store  Store
	ledger Ledger
	otel   otel.Otel
	suffix func() (string, error)
}

func NewMaterializer(db *postgres.Connection, store Store, ledger Ledger, otel otel.Otel) Materializer {
	return &materializerImpl{
		db:     db,
		store:  store,
		ledger: ledger,
		otel:   otel,
		suffix: NewSuffix,
	}
}

// Materialize creates one view per logical table. On failure the returned
// Request still lists the views that were created, and the error carries no
// detail beyond the failed outcome.
func (m *materializerImpl) Materialize(ctx context.Context, s Scope) (req *Request, err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelIsolationScopeName, constant.OtelIsolationScopeName+".Materialize")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	suffix, err := m.suffix()
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, failure.InitializationFailure()
	}

	req = &Request{scope: s, suffix: suffix, createdAt: timezone.Now()}
	log := logger.FromContext(ctx).With().Str("suffix", suffix).Str("scope", s.Kind.String()).Logger()

	var filters [tableCount]string

	if s.Kind == KindCompany {
		filters, err = m.companyFilters(ctx, s)
		if err != nil {
			log.Error().Err(err).Int64("companyId", s.CompanyID).Msg("failed to derive view filters")

			return req, failure.InitializationFailure()
		}
	}

	for _, table := range Tables() {
		name := ViewName(table, s.CredentialID, suffix)
		ddl := createView(name, table.Physical(), filters[table])

		if _, err = m.db.Write.ExecContext(ctx, ddl); err != nil {
			log.Error().Err(err).Str("view", name).Msg("failed to create view")

			return req, failure.InitializationFailure()
		}

		req.registry.register(table, name)

		if err := m.ledger.Record(ctx, req.createdAt, name); err != nil {
			log.Warn().Err(err).Str("view", name).Msg("failed to record view in ledger")
		}
	}

	scope.SetAttribute(constant.OtelViewAttributeKey, req.Created())
	log.Debug().Int("views", len(req.Created())).Msg("views materialized")

	return req, nil
}

func (m *materializerImpl) companyFilters(ctx context.Context, s Scope) (filters [tableCount]string, err error) {
	company := strconv.FormatInt(s.CompanyID, 10)

	employees, err := m.store.EmployeesByCompany(ctx, s.CompanyID)
	if err != nil {
		return filters, fmt.Errorf("employees: %w", err)
	}

	buildings, err := m.store.BuildingsByCompany(ctx, s.CompanyID)
	if err != nil {
		return filters, fmt.Errorf("buildings: %w", err)
	}

	employeeIDs := make([]int64, len(employees))
	credentialIDs := []int64{s.CredentialID}

	for i, employee := range employees {
		employeeIDs[i] = employee.EmployeeID
		credentialIDs = append(credentialIDs, employee.PasswordID)
	}

	refs, err := m.store.PackageRefs(ctx, employeeIDs)
	if err != nil {
		return filters, fmt.Errorf("package references: %w", err)
	}

	filters[TableCompany] = "companyId = " + company
	filters[TableBuilding] = "companyId = " + company
	filters[TableEmployee] = "companyId = " + company
	filters[TableCredential] = "passwordId IN (" + idSet(credentialIDs) + ")"
	filters[TableVisitorPackage] = "employeeId IN (" + idSet(employeeIDs) + ")"

	if len(buildings) == 0 {
		filters[TableWifiParams] = "wifiParamsId IN (" + emptySet + ")"
		filters[TableRoom] = "roomId IN (" + emptySet + ")"
		filters[TableAccessPoint] = "nfcReaderId IN (" + emptySet + ")"
	} else {
		inBuildings := idSet(buildings)

		filters[TableWifiParams] = "wifiParamsId IN (SELECT wifiParamsId FROM building WHERE buildingId IN (" + inBuildings + "))"
		filters[TableRoom] = "buildingId IN (" + inBuildings + ")"
		filters[TableAccessPoint] = "roomId IN (SELECT roomId FROM room WHERE buildingId IN (" + inBuildings + "))"
	}

	filters[TableTempWifiAccess] = "tempWifiAccessId IN (" + idSet(refs.TempWifiAccessIDs) + ")"
	filters[TableTPA] = "tpaId IN (" + idSet(refs.TPAIDs) + ")"
	filters[TableWallet] = "linkWalletId IN (" + idSet(refs.WalletIDs) + ")"
	filters[TableTPAxRoom] = "tpaId IN (" + idSet(refs.TPAIDs) + ")"

	return filters, nil
}

// idSet renders ids as a literal list. View definitions cannot take bind
// parameters.
func idSet(ids []int64) string {
	if len(ids) == 0 {
		return emptySet
	}

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}

	return strings.Join(parts, ",")
}

func createView(name, physical, filter string) string {
	if filter == "" {
		return fmt.Sprintf("CREATE VIEW %s AS (SELECT * FROM %s)", name, physical)
	}

	return fmt.Sprintf("CREATE VIEW %s AS (SELECT * FROM %s WHERE %s)", name, physical, filter)
}
