package credential_test

import (
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
	"link/internal/domains/credential/model/dto"
	"link/internal/domains/credential/service/mocks"
	"link/internal/handlers/credential"
	"link/shared/failure"
)

type result struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setup(t *testing.T) (*mocks.MockCredential, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockCredential(ctrl)
	handler := credential.New(service, otelMocks.NewOtel())

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

func TestCreateCredential(t *testing.T) {
	service, router := setup(t)

	username := "front-desk"

	service.EXPECT().
		Create(gomock.Any(), dto.CreateCredentialRequest{Username: &username, Hash: "abc", Salt: "xyz"}).
		Return(int64(12), nil)

	recorder, res := serve(t, router, http.MethodPost, "/v1/credentials/", `{"username":"front-desk","hash":"abc","salt":"xyz"}`)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.True(t, res.Success)
	assert.JSONEq(t, `{"id":12}`, string(res.Data))
}

func TestCreateCredential_MissingSalt(t *testing.T) {
	_, router := setup(t)

	recorder, res := serve(t, router, http.MethodPost, "/v1/credentials/", `{"hash":"abc"}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "salt is required", res.Message)
}

func TestGetCredentialByID_NotVisible(t *testing.T) {
	service, router := setup(t)

	service.EXPECT().Get(gomock.Any(), int64(12)).Return(dto.CredentialResponse{}, failure.NotFound("credential not found"))

	recorder, res := serve(t, router, http.MethodGet, "/v1/credentials/12", "")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.False(t, res.Success)
}

func TestUpdateCredential(t *testing.T) {
	service, router := setup(t)

	hash := "def"

	service.EXPECT().Update(gomock.Any(), dto.UpdateCredentialRequest{Hash: &hash}, int64(12)).Return(nil)

	recorder, res := serve(t, router, http.MethodPatch, "/v1/credentials/12", `{"hash":"def"}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Credential updated successfully", res.Message)
}

func TestDeleteCredential(t *testing.T) {
	service, router := setup(t)

	service.EXPECT().Delete(gomock.Any(), int64(12)).Return(nil)

	recorder, res := serve(t, router, http.MethodDelete, "/v1/credentials/12", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Credential deleted successfully", res.Message)
}
