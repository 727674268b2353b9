//go:build integration
// +build integration

package scope_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"link/config"
	otelMocks "link/infras/otel/mocks"
	"link/infras/postgres"
	"link/internal/scope"
)

func setupTestDB(t *testing.T) *postgres.Connection {
	t.Helper()

	ctx := context.Background()

	container, err := tcPostgres.Run(ctx,
		"postgres:16-alpine",
		tcPostgres.WithDatabase("link"),
		tcPostgres.WithUsername("link"),
		tcPostgres.WithPassword("link"),
		tcPostgres.WithInitScripts("testdata/schema.sql", "testdata/seed.sql"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	conn, err := sqlx.Connect("postgres", dsn)
	require.NoError(t, err)

	t.Cleanup(func() { _ = conn.Close() })

	return &postgres.Connection{Read: conn, Write: conn}
}

func newIntegrationManager(db *postgres.Connection) scope.Manager {
	cfg := &config.Config{}
	cfg.Scope.TeardownTimeoutSeconds = 10

	tracer := otelMocks.NewOtel()
	store := scope.NewStore(db, tracer)
	ledger := scope.NewLedger(nil, cfg, tracer)

	return scope.NewManager(
		scope.NewResolver(store, cfg, tracer),
		scope.NewMaterializer(db, store, ledger, tracer),
		scope.NewTeardowner(db, ledger, tracer),
		cfg,
		tracer,
	)
}

func countRows(t *testing.T, ctx context.Context, db *postgres.Connection, table scope.Table) int {
	t.Helper()

	view, err := scope.View(ctx, table)
	require.NoError(t, err)

	var n int
	require.NoError(t, db.Write.GetContext(ctx, &n, "SELECT COUNT(*) FROM "+view))

	return n
}

func remainingViews(t *testing.T, db *postgres.Connection, suffix string) int {
	t.Helper()

	var n int
	require.NoError(t, db.Read.Get(&n, "SELECT COUNT(*) FROM pg_views WHERE viewname LIKE '%' || $1", suffix))

	return n
}

func TestIntegration_CompanyScopeFiltersEmployees(t *testing.T) {
	if _, ok := os.LookupEnv("SKIP_CONTAINER_TESTS"); ok {
		t.Skip("container tests disabled")
	}

	db := setupTestDB(t)
	manager := newIntegrationManager(db)

	var suffix string

	err := manager.Run(context.Background(), "acme-key", func(ctx context.Context) error {
		req, err := scope.FromContext(ctx)
		require.NoError(t, err)

		suffix = req.Suffix()
		assert.Equal(t, scope.CompanyScope(1, 1), req.Scope())

		employeeView, err := scope.View(ctx, scope.TableEmployee)
		require.NoError(t, err)

		var companies []int64
		require.NoError(t, db.Write.SelectContext(ctx, &companies, "SELECT companyId FROM "+employeeView))
		assert.Equal(t, []int64{1}, companies)

		assert.Equal(t, 2, countRows(t, ctx, db, scope.TableClient))
		assert.Equal(t, 1, countRows(t, ctx, db, scope.TableVisitorPackage))
		assert.Equal(t, 1, countRows(t, ctx, db, scope.TableTPAxRoom))
		assert.Equal(t, 1, countRows(t, ctx, db, scope.TableAccessPoint))
		assert.Equal(t, 2, countRows(t, ctx, db, scope.TableCredential))

		return nil
	})

	require.NoError(t, err)
	assert.Zero(t, remainingViews(t, db, suffix))
}

func TestIntegration_CompanyWithoutEmployees(t *testing.T) {
	if _, ok := os.LookupEnv("SKIP_CONTAINER_TESTS"); ok {
		t.Skip("container tests disabled")
	}

	db := setupTestDB(t)
	manager := newIntegrationManager(db)

	err := manager.Run(context.Background(), "empty-key", func(ctx context.Context) error {
		for _, table := range []scope.Table{
			scope.TableVisitorPackage,
			scope.TableTempWifiAccess,
			scope.TableTPA,
			scope.TableWallet,
			scope.TableTPAxRoom,
			scope.TableRoom,
			scope.TableWifiParams,
		} {
			assert.Zero(t, countRows(t, ctx, db, table), table.Name())
		}

		assert.Equal(t, 1, countRows(t, ctx, db, scope.TableCompany))

		return nil
	})

	require.NoError(t, err)
}

func TestIntegration_EmployeeCredentialIsOpen(t *testing.T) {
	if _, ok := os.LookupEnv("SKIP_CONTAINER_TESTS"); ok {
		t.Skip("container tests disabled")
	}

	db := setupTestDB(t)
	manager := newIntegrationManager(db)

	err := manager.Run(context.Background(), "alice-key", func(ctx context.Context) error {
		assert.Equal(t, 2, countRows(t, ctx, db, scope.TableEmployee))
		assert.Equal(t, 3, countRows(t, ctx, db, scope.TableCompany))

		return nil
	})

	require.NoError(t, err)
}
