package building_test

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
	"link/internal/domains/building/model/dto"
	"link/internal/domains/building/service/mocks"
	"link/internal/handlers/building"
	gDto "link/shared/dto"
	"link/shared/failure"
)

type result struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setup(t *testing.T) (*mocks.MockBuilding, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockBuilding(ctrl)
	handler := building.New(service, otelMocks.NewOtel())

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

func TestCreateBuilding_WithWifi(t *testing.T) {
	service, router := setup(t)

	service.EXPECT().Create(gomock.Any(), dto.CreateBuildingRequest{
		BranchName: "HQ",
		CompanyID:  3,
		Wifi:       &dto.WifiParamsRequest{SSID: "guest", NetworkType: "WPA2", Password: "secret"},
	}).Return(int64(11), nil)

	recorder, res := serve(t, router, http.MethodPost, "/v1/buildings/",
		`{"branch_name":"HQ","company_id":3,"wifi":{"ssid":"guest","network_type":"WPA2","password":"secret"}}`)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.JSONEq(t, `{"id":11}`, string(res.Data))
}

func TestCreateBuilding_InvalidNetworkType(t *testing.T) {
	_, router := setup(t)

	recorder, res := serve(t, router, http.MethodPost, "/v1/buildings/",
		`{"branch_name":"HQ","company_id":3,"wifi":{"ssid":"guest","network_type":"WPA9"}}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "network_type must be one of WPA WPA2 WPA3 WEP OPEN", res.Message)
}

func TestCreateBuilding_UnknownCompany(t *testing.T) {
	service, router := setup(t)

	service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), failure.BadRequestFromString("company does not exist"))

	recorder, res := serve(t, router, http.MethodPost, "/v1/buildings/", `{"branch_name":"HQ","company_id":99}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "company does not exist", res.Message)
}

func TestGetBuildings_Filters(t *testing.T) {
	service, router := setup(t)

	service.EXPECT().
		GetAll(gomock.Any(), gDto.QueryParams{Page: 1, Limit: 10}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBuildingsResponse, error) {
			assert.Len(t, filter.Filters, 2)

			return dto.GetBuildingsResponse{Buildings: []dto.BuildingResponse{}, TotalPage: 1}, nil
		})

	recorder, _ := serve(t, router, http.MethodGet, "/v1/buildings/?branch_name=hq&company_id=3", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestGetWifiParams_NotConfigured(t *testing.T) {
	service, router := setup(t)

	service.EXPECT().GetWifiParams(gomock.Any(), int64(11)).Return(dto.WifiParamsResponse{}, failure.NotFound("building has no wifi params"))

	recorder, res := serve(t, router, http.MethodGet, "/v1/buildings/11/wifi", "")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "building has no wifi params", res.Message)
}

func TestUpdateWifiParams(t *testing.T) {
	service, router := setup(t)

	ssid := "visitors"

	service.EXPECT().UpdateWifiParams(gomock.Any(), dto.UpdateWifiParamsRequest{SSID: &ssid}, int64(11)).Return(nil)

	recorder, _ := serve(t, router, http.MethodPatch, "/v1/buildings/11/wifi", `{"ssid":"visitors"}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestDeleteBuilding_InvalidID(t *testing.T) {
	_, router := setup(t)

	recorder, _ := serve(t, router, http.MethodDelete, "/v1/buildings/0", "")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
