package visitorpackage_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "link/infras/otel/mocks"
	"link/internal/domains/visitorpackage/model/dto"
	"link/internal/domains/visitorpackage/service/mocks"
	"link/internal/handlers/visitorpackage"
	gDto "link/shared/dto"
	"link/shared/failure"
)

type result struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

var now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func setup(t *testing.T) (*mocks.MockVisitorPackage, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockVisitorPackage(ctrl)
	handler := visitorpackage.New(service, otelMocks.NewOtel())
	visitorpackage.SetClock(&handler, func() time.Time { return now })

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

func TestCreateVisitorPackage(t *testing.T) {
	service, router := setup(t)

	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	service.EXPECT().Create(gomock.Any(), dto.CreateVisitorPackageRequest{
		EmployeeID: 4,
		MacAddress: "00:1a:2b:3c:4d:5e",
		RoomIDs:    []int64{5, 6},
		StartTime:  start,
		EndTime:    start.Add(8 * time.Hour),
		Limit:      50,
	}).Return(dto.CreatedVisitorPackage{VisitorPackageID: 20, ClientID: 8, TempWifiAccessID: 30, TPAID: 40, LinkWalletID: 50}, nil)

	recorder, res := serve(t, router, http.MethodPost, "/v1/visitor-packages/",
		`{"employee_id":4,"mac_address":"00:1a:2b:3c:4d:5e","room_ids":[5,6],"start_time":"2024-03-01T09:00:00Z","end_time":"2024-03-01T17:00:00Z","limit":50}`)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.JSONEq(t, `{"visitor_package_id":20,"client_id":8,"temp_wifi_access_id":30,"tpa_id":40,"link_wallet_id":50}`, string(res.Data))
}

func TestCreateVisitorPackage_Rejected(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "window ends before it starts",
			body: `{"employee_id":4,"mac_address":"00:1a:2b:3c:4d:5e","room_ids":[5],"start_time":"2024-03-01T17:00:00Z","end_time":"2024-03-01T09:00:00Z"}`,
		},
		{
			name: "no rooms",
			body: `{"employee_id":4,"mac_address":"00:1a:2b:3c:4d:5e","room_ids":[],"start_time":"2024-03-01T09:00:00Z","end_time":"2024-03-01T17:00:00Z"}`,
		},
		{
			name: "spent above limit",
			body: `{"employee_id":4,"mac_address":"00:1a:2b:3c:4d:5e","room_ids":[5],"start_time":"2024-03-01T09:00:00Z","end_time":"2024-03-01T17:00:00Z","limit":5,"spent":6}`,
		},
		{
			name: "bad mac address",
			body: `{"employee_id":4,"mac_address":"phone","room_ids":[5],"start_time":"2024-03-01T09:00:00Z","end_time":"2024-03-01T17:00:00Z"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, router := setup(t)

			recorder, res := serve(t, router, http.MethodPost, "/v1/visitor-packages/", tt.body)

			assert.Equal(t, http.StatusBadRequest, recorder.Code)
			assert.False(t, res.Success)
		})
	}
}

func TestGetVisitorPackages_Active(t *testing.T) {
	service, router := setup(t)

	service.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetVisitorPackagesResponse, error) {
			_, args := filter.GetWhereClause()
			assert.Equal(t, now, args["now_start"])
			assert.Equal(t, now, args["now_end"])
			assert.Equal(t, int64(4), args["employeeId"])

			return dto.GetVisitorPackagesResponse{VisitorPackages: []dto.VisitorPackageResponse{}, TotalPage: 1}, nil
		})

	recorder, _ := serve(t, router, http.MethodGet, "/v1/visitor-packages/?active=true&employee_id=4", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestGetVisitorPackageByID(t *testing.T) {
	service, router := setup(t)

	service.EXPECT().Get(gomock.Any(), int64(20)).Return(dto.VisitorPackageResponse{
		ID:      20,
		RoomIDs: []int64{5},
		Wallet:  &dto.WalletResponse{ID: 50, MaxLimit: 50, Spent: 10},
	}, nil)

	recorder, res := serve(t, router, http.MethodGet, "/v1/visitor-packages/20", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, string(res.Data), `"room_ids":[5]`)
	assert.Contains(t, string(res.Data), `"max_limit":50`)
}

func TestMoveRoom(t *testing.T) {
	service, router := setup(t)

	service.EXPECT().MoveRoom(gomock.Any(), int64(20), int64(5), int64(6)).Return(nil)

	recorder, res := serve(t, router, http.MethodPatch, "/v1/visitor-packages/20/rooms/5", `{"room_id":6}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Room grant moved successfully", res.Message)
}

func TestSpend_LimitExceeded(t *testing.T) {
	service, router := setup(t)

	service.EXPECT().Spend(gomock.Any(), int64(20), 45.5).
		Return(dto.WalletResponse{}, failure.BadRequestFromString("wallet limit exceeded"))

	recorder, res := serve(t, router, http.MethodPost, "/v1/visitor-packages/20/spend", `{"amount":45.5}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "wallet limit exceeded", res.Message)
}

func TestSpend(t *testing.T) {
	service, router := setup(t)

	service.EXPECT().Spend(gomock.Any(), int64(20), 5.0).
		Return(dto.WalletResponse{ID: 50, MaxLimit: 50, Spent: 15}, nil)

	recorder, res := serve(t, router, http.MethodPost, "/v1/visitor-packages/20/spend", `{"amount":5}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"link_wallet_id":50,"max_limit":50,"spent":15}`, string(res.Data))
}

func TestDeleteVisitorPackage(t *testing.T) {
	service, router := setup(t)

	service.EXPECT().Delete(gomock.Any(), int64(20)).Return(nil)

	recorder, _ := serve(t, router, http.MethodDelete, "/v1/visitor-packages/20", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
}
