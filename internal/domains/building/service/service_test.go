package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"link/infras/otel/mocks"
	buildingMocks "link/internal/domains/building/mocks"
	"link/internal/domains/building/model"
	"link/internal/domains/building/model/dto"
	"link/internal/domains/building/service"
	companyMocks "link/internal/domains/company/mocks"
	companyModel "link/internal/domains/company/model"
	wifiMocks "link/internal/domains/wifiparams/mocks"
	wifiModel "link/internal/domains/wifiparams/model"
	"link/shared/failure"
)

type buildingMockSet struct {
	repo    *buildingMocks.MockBuilding
	company *companyMocks.MockCompany
	wifi    *wifiMocks.MockWifiParams
}

func newService(t *testing.T) (service.Building, buildingMockSet) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := buildingMockSet{
		repo:    buildingMocks.NewMockBuilding(ctrl),
		company: companyMocks.NewMockCompany(ctrl),
		wifi:    wifiMocks.NewMockWifiParams(ctrl),
	}

	return service.New(m.repo, m.company, m.wifi, mocks.NewOtel()), m
}

func TestBuildingService_Create(t *testing.T) {
	wifi := &dto.WifiParamsRequest{SSID: "acme-guest", NetworkType: "WPA2", Password: "secret"}

	tests := []struct {
		name      string
		req       dto.CreateBuildingRequest
		setupMock func(m buildingMockSet)
		wantID    int64
		wantKind  failure.Kind
	}{
		{
			name: "with wifi params",
			req:  dto.CreateBuildingRequest{BranchName: "North", CompanyID: 3, Wifi: wifi},
			setupMock: func(m buildingMockSet) {
				wifiID := int64(11)

				gomock.InOrder(
					m.company.EXPECT().Get(gomock.Any(), int64(3)).Return(companyModel.Company{ID: 3}, nil),
					m.wifi.EXPECT().
						Insert(gomock.Any(), wifiModel.WifiParams{SSID: "acme-guest", NetworkType: "WPA2", Password: "secret"}).
						Return(wifiID, nil),
					m.repo.EXPECT().
						Insert(gomock.Any(), model.Building{BranchName: "North", CompanyID: 3, WifiParamsID: &wifiID}).
						Return(int64(5), nil),
				)
			},
			wantID: 5,
		},
		{
			name: "without wifi params",
			req:  dto.CreateBuildingRequest{BranchName: "South", CompanyID: 3},
			setupMock: func(m buildingMockSet) {
				m.company.EXPECT().Get(gomock.Any(), int64(3)).Return(companyModel.Company{ID: 3}, nil)
				m.repo.EXPECT().
					Insert(gomock.Any(), model.Building{BranchName: "South", CompanyID: 3}).
					Return(int64(6), nil)
			},
			wantID: 6,
		},
		{
			name: "company outside scope",
			req:  dto.CreateBuildingRequest{BranchName: "North", CompanyID: 4, Wifi: wifi},
			setupMock: func(m buildingMockSet) {
				m.company.EXPECT().Get(gomock.Any(), int64(4)).Return(companyModel.Company{}, failure.NotFound("company not found"))
			},
			wantKind: failure.KindBadRequest,
		},
		{
			name: "wifi insert fails",
			req:  dto.CreateBuildingRequest{BranchName: "North", CompanyID: 3, Wifi: wifi},
			setupMock: func(m buildingMockSet) {
				m.company.EXPECT().Get(gomock.Any(), int64(3)).Return(companyModel.Company{ID: 3}, nil)
				m.wifi.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(0), failure.Database(errors.New("boom")))
			},
			wantKind: failure.KindDatabase,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.setupMock(m)

			id, err := svc.Create(context.Background(), tt.req)

			if tt.wantKind != failure.KindUnknown {
				assert.True(t, failure.IsKind(err, tt.wantKind), err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}

func TestBuildingService_GetWifiParams(t *testing.T) {
	wifiID := int64(11)

	tests := []struct {
		name      string
		setupMock func(m buildingMockSet)
		wantKind  failure.Kind
	}{
		{
			name: "building with wifi",
			setupMock: func(m buildingMockSet) {
				m.repo.EXPECT().Get(gomock.Any(), int64(5)).Return(model.Building{ID: 5, WifiParamsID: &wifiID}, nil)
				m.wifi.EXPECT().Get(gomock.Any(), wifiID).Return(wifiModel.WifiParams{ID: wifiID, SSID: "acme-guest"}, nil)
			},
		},
		{
			name: "building without wifi",
			setupMock: func(m buildingMockSet) {
				m.repo.EXPECT().Get(gomock.Any(), int64(5)).Return(model.Building{ID: 5}, nil)
			},
			wantKind: failure.KindNotFound,
		},
		{
			name: "building not visible",
			setupMock: func(m buildingMockSet) {
				m.repo.EXPECT().Get(gomock.Any(), int64(5)).Return(model.Building{}, failure.NotFound("building not found"))
			},
			wantKind: failure.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.setupMock(m)

			res, err := svc.GetWifiParams(context.Background(), 5)

			if tt.wantKind != failure.KindUnknown {
				assert.True(t, failure.IsKind(err, tt.wantKind), err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "acme-guest", res.SSID)
			}
		})
	}
}

func TestBuildingService_UpdateWifiParams(t *testing.T) {
	svc, m := newService(t)

	wifiID := int64(11)
	ssid := "acme-visitors"

	m.repo.EXPECT().Get(gomock.Any(), int64(5)).Return(model.Building{ID: 5, WifiParamsID: &wifiID}, nil)
	m.wifi.EXPECT().Update(gomock.Any(), wifiID, wifiModel.Patch{SSID: &ssid}).Return(nil)

	require.NoError(t, svc.UpdateWifiParams(context.Background(), dto.UpdateWifiParamsRequest{SSID: &ssid}, 5))
}

func TestBuildingService_UpdateAndDelete(t *testing.T) {
	svc, m := newService(t)

	branch := "Harbour"

	m.repo.EXPECT().Update(gomock.Any(), int64(5), model.Patch{BranchName: &branch}).Return(nil)
	m.repo.EXPECT().Delete(gomock.Any(), int64(5)).Return(failure.Database(errors.New("violates foreign key constraint")))

	assert.NoError(t, svc.Update(context.Background(), dto.UpdateBuildingRequest{BranchName: &branch}, 5))
	assert.True(t, failure.IsKind(svc.Delete(context.Background(), 5), failure.KindDatabase))
}
