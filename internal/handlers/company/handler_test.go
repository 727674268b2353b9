package company_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "link/infras/otel/mocks"
	"link/internal/domains/company/model/dto"
	"link/internal/domains/company/service/mocks"
	"link/internal/handlers/company"
	gDto "link/shared/dto"
	"link/shared/failure"
)

type result struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setup(t *testing.T) (*mocks.MockCompany, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockCompany(ctrl)
	handler := company.New(service, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return service, router
}

func serve(t *testing.T, router http.Handler, method, target, body string) (*httptest.ResponseRecorder, result) {
	t.Helper()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(method, target, strings.NewReader(body)))

	var res result
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))

	return recorder, res
}

func TestCreateCompany(t *testing.T) {
	service, router := setup(t)

	service.EXPECT().Create(gomock.Any(), dto.CreateCompanyRequest{Name: "Acme", PasswordID: 7}).Return(int64(3), nil)

	recorder, res := serve(t, router, http.MethodPost, "/v1/companies/", `{"company_name":"Acme","password_id":7}`)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.True(t, res.Success)
	assert.JSONEq(t, `{"id":3}`, string(res.Data))
}

func TestCreateCompany_InvalidBody(t *testing.T) {
	_, router := setup(t)

	recorder, res := serve(t, router, http.MethodPost, "/v1/companies/", `{"company_name":"  ","password_id":7}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.False(t, res.Success)
	assert.Equal(t, "company_name must not be blank", res.Message)
}

func TestGetCompanies_FiltersByName(t *testing.T) {
	service, router := setup(t)

	service.EXPECT().
		GetAll(gomock.Any(), gDto.QueryParams{Page: 2, Limit: 5}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCompaniesResponse, error) {
			require.Len(t, filter.Filters, 1)
			assert.Equal(t, "acm", filter.Filters[0].(gDto.Filter).Value)

			return dto.GetCompaniesResponse{Companies: []dto.CompanyResponse{{ID: 3, Name: "Acme"}}, TotalData: 1, TotalPage: 1}, nil
		})

	recorder, res := serve(t, router, http.MethodGet, "/v1/companies/?page=2&limit=5&company_name=acm", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, res.Success)
	assert.Contains(t, string(res.Data), `"company_name":"Acme"`)
}

func TestGetMyCompany(t *testing.T) {
	service, router := setup(t)

	service.EXPECT().Mine(gomock.Any()).Return(dto.CompanyResponse{}, failure.NotFound("company not found"))

	recorder, res := serve(t, router, http.MethodGet, "/v1/companies/me", "")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "company not found", res.Message)
	assert.Equal(t, "null", string(res.Data))
}

func TestGetCompanyByID(t *testing.T) {
	service, router := setup(t)

	service.EXPECT().Get(gomock.Any(), int64(3)).Return(dto.CompanyResponse{ID: 3, Name: "Acme", PasswordID: 7}, nil)

	recorder, res := serve(t, router, http.MethodGet, "/v1/companies/3", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"company_id":3,"company_name":"Acme","company_website":null,"password_id":7}`, string(res.Data))
}

func TestGetCompanyByID_InvalidID(t *testing.T) {
	_, router := setup(t)

	recorder, res := serve(t, router, http.MethodGet, "/v1/companies/abc", "")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.False(t, res.Success)
}

func TestUpdateCompany(t *testing.T) {
	service, router := setup(t)

	website := "acme.test"

	service.EXPECT().Update(gomock.Any(), dto.UpdateCompanyRequest{Website: &website}, int64(3)).Return(nil)

	recorder, res := serve(t, router, http.MethodPatch, "/v1/companies/3", `{"company_website":"acme.test"}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Company updated successfully", res.Message)
}

func TestDeleteCompany_DatabaseFailure(t *testing.T) {
	service, router := setup(t)

	service.EXPECT().Delete(gomock.Any(), int64(3)).Return(failure.Database(assert.AnError))

	recorder, res := serve(t, router, http.MethodDelete, "/v1/companies/3", "")

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.True(t, strings.HasPrefix(res.Message, failure.MessageDatabasePrefix))
}
