package http_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"link/config"
	otelMocks "link/infras/otel/mocks"
	"link/infras/postgres"
	buildingMocks "link/internal/domains/building/service/mocks"
	companyDto "link/internal/domains/company/model/dto"
	companyMocks "link/internal/domains/company/service/mocks"
	credentialMocks "link/internal/domains/credential/service/mocks"
	employeeMocks "link/internal/domains/employee/service/mocks"
	roomMocks "link/internal/domains/room/service/mocks"
	packageMocks "link/internal/domains/visitorpackage/service/mocks"
	"link/internal/handlers/building"
	"link/internal/handlers/company"
	"link/internal/handlers/credential"
	"link/internal/handlers/employee"
	"link/internal/handlers/room"
	"link/internal/handlers/visitorpackage"
	"link/internal/scope"
	scopeMocks "link/internal/scope/mocks"
	"link/permissions"
	"link/shared/constant"
	transport "link/transport/http"
	"link/transport/http/middleware"
	"link/transport/http/router"
)

type server struct {
	handler    http.HandlerFunc
	manager    *scopeMocks.MockManager
	company    *companyMocks.MockCompany
	credential *credentialMocks.MockCredential
	released   *int
	sqlMock    sqlmock.Sqlmock
}

func newServer(t *testing.T) server {
	t.Helper()

	ctrl := gomock.NewController(t)
	tracer := otelMocks.NewOtel()

	db, sqlMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	conn := sqlx.NewDb(db, "postgres")

	cfg := &config.Config{}
	cfg.App.Name = "link"

	s := server{
		manager:    scopeMocks.NewMockManager(ctrl),
		company:    companyMocks.NewMockCompany(ctrl),
		credential: credentialMocks.NewMockCredential(ctrl),
		released:   new(int),
		sqlMock:    sqlMock,
	}

	handlers := router.DomainHandlers{
		Company:        company.New(s.company, tracer),
		Credential:     credential.New(s.credential, tracer),
		Building:       building.New(buildingMocks.NewMockBuilding(ctrl), tracer),
		Employee:       employee.New(employeeMocks.NewMockEmployee(ctrl), tracer),
		Room:           room.New(roomMocks.NewMockRoom(ctrl), tracer),
		VisitorPackage: visitorpackage.New(packageMocks.NewMockVisitorPackage(ctrl), tracer),
	}

	routes := router.New(
		handlers,
		middleware.NewAppMiddleware(tracer, cfg, nil),
		middleware.NewScopeMiddleware(s.manager, tracer, permissions.Get()),
	)

	h := transport.New(cfg, routes, &postgres.Connection{Read: conn, Write: conn}, nil)
	s.handler = h.Adaptor()

	return s
}

func (s server) expectResolve(key string, sc scope.Scope) {
	s.manager.EXPECT().Resolve(gomock.Any(), key).Return(sc, nil)
}

func (s server) expectEnter(sc scope.Scope) {
	s.manager.EXPECT().Enter(gomock.Any(), sc).
		Return(scope.NewRequest(sc, "abcdefghij"), func() { *s.released++ }, nil)
}

func TestHealth(t *testing.T) {
	s := newServer(t)

	s.sqlMock.ExpectPing()

	recorder := httptest.NewRecorder()
	s.handler(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.NotEmpty(t, recorder.Header().Get(constant.RequestHeaderRequestID))
}

func TestHealth_DatabaseDown(t *testing.T) {
	s := newServer(t)

	s.sqlMock.ExpectPing().WillReturnError(errors.New("connection refused"))

	recorder := httptest.NewRecorder()
	s.handler(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.Contains(t, recorder.Body.String(), constant.ResponseErrorUnhealthy)
}

func TestScopedRequest(t *testing.T) {
	s := newServer(t)

	s.expectResolve("acme-key", scope.CompanyScope(7, 3))
	s.expectEnter(scope.CompanyScope(7, 3))
	s.company.EXPECT().Get(gomock.Any(), int64(3)).Return(companyDto.CompanyResponse{ID: 3, Name: "Acme"}, nil)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/v1/companies/3", nil)
	request.Header.Set(constant.RequestHeaderAPIKey, "acme-key")

	s.handler(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"company_name":"Acme"`)
	assert.Equal(t, 1, *s.released)
}

func TestCompanyScopeCannotCreateCompanies(t *testing.T) {
	for _, path := range []string{"/v1/companies/", "/v1/companies"} {
		t.Run(path, func(t *testing.T) {
			s := newServer(t)

			s.expectResolve("acme-key", scope.CompanyScope(7, 3))

			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{"company_name":"Other","password_id":9}`))
			request.Header.Set(constant.RequestHeaderAPIKey, "acme-key")

			s.handler(recorder, request)

			assert.Equal(t, http.StatusForbidden, recorder.Code)
			assert.Zero(t, *s.released)
		})
	}
}

func TestOpenScopeCreatesCompanyWithoutTrailingSlash(t *testing.T) {
	s := newServer(t)

	s.expectResolve("", scope.OpenScope(0))
	s.expectEnter(scope.OpenScope(0))
	s.company.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(99), nil)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/v1/companies", strings.NewReader(`{"company_name":"Other","password_id":9}`))

	s.handler(recorder, request)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, 1, *s.released)
}

func TestUnknownRouteMaterializesNothing(t *testing.T) {
	s := newServer(t)

	s.expectResolve("acme-key", scope.CompanyScope(7, 3))

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/v1/nowhere", nil)
	request.Header.Set(constant.RequestHeaderAPIKey, "acme-key")

	s.handler(recorder, request)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Zero(t, *s.released)
}

func TestCompanyScopeCreatesCredential(t *testing.T) {
	s := newServer(t)

	s.expectResolve("acme-key", scope.CompanyScope(7, 3))
	s.expectEnter(scope.CompanyScope(7, 3))
	s.credential.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(21), nil)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/v1/credentials", strings.NewReader(`{"hash":"abc","salt":"xyz"}`))
	request.Header.Set(constant.RequestHeaderAPIKey, "acme-key")

	s.handler(recorder, request)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, 1, *s.released)
}
