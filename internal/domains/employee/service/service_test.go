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
	buildingModel "link/internal/domains/building/model"
	credentialRepoMocks "link/internal/domains/credential/mocks"
	credentialService "link/internal/domains/credential/service"
	credentialMocks "link/internal/domains/credential/service/mocks"
	employeeMocks "link/internal/domains/employee/mocks"
	"link/internal/domains/employee/model"
	"link/internal/domains/employee/model/dto"
	"link/internal/domains/employee/service"
	"link/internal/scope"
	scopeMocks "link/internal/scope/mocks"
	gDto "link/shared/dto"
	"link/shared/failure"
)

type employeeMockSet struct {
	repo       *employeeMocks.MockEmployee
	building   *buildingMocks.MockBuilding
	credential *credentialMocks.MockCredential
}

func newService(t *testing.T) (service.Employee, employeeMockSet) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := employeeMockSet{
		repo:       employeeMocks.NewMockEmployee(ctrl),
		building:   buildingMocks.NewMockBuilding(ctrl),
		credential: credentialMocks.NewMockCredential(ctrl),
	}

	return service.New(m.repo, m.building, m.credential, mocks.NewOtel()), m
}

func TestEmployeeService_Create(t *testing.T) {
	req := dto.CreateEmployeeRequest{
		FirstName:  "Alice",
		Surname:    "Smith",
		CompanyID:  1,
		BuildingID: 2,
		PasswordID: 3,
	}

	tests := []struct {
		name      string
		setupMock func(m employeeMockSet)
		wantKind  failure.Kind
	}{
		{
			name: "successful creation",
			setupMock: func(m employeeMockSet) {
				m.building.EXPECT().Get(gomock.Any(), int64(2)).Return(buildingModel.Building{ID: 2, CompanyID: 1}, nil)
				m.credential.EXPECT().Claimable(gomock.Any(), int64(3)).Return(nil)
				m.repo.EXPECT().Insert(gomock.Any(), req.ToModel()).Return(int64(10), nil)
			},
		},
		{
			name: "building of another company",
			setupMock: func(m employeeMockSet) {
				m.building.EXPECT().Get(gomock.Any(), int64(2)).Return(buildingModel.Building{ID: 2, CompanyID: 9}, nil)
			},
			wantKind: failure.KindBadRequest,
		},
		{
			name: "building not visible",
			setupMock: func(m employeeMockSet) {
				m.building.EXPECT().Get(gomock.Any(), int64(2)).Return(buildingModel.Building{}, failure.NotFound("building not found"))
			},
			wantKind: failure.KindBadRequest,
		},
		{
			name: "unknown credential",
			setupMock: func(m employeeMockSet) {
				m.building.EXPECT().Get(gomock.Any(), int64(2)).Return(buildingModel.Building{ID: 2, CompanyID: 1}, nil)
				m.credential.EXPECT().Claimable(gomock.Any(), int64(3)).Return(failure.BadRequestFromString("credential does not exist"))
			},
			wantKind: failure.KindBadRequest,
		},
		{
			name: "credential already bound",
			setupMock: func(m employeeMockSet) {
				m.building.EXPECT().Get(gomock.Any(), int64(2)).Return(buildingModel.Building{ID: 2, CompanyID: 1}, nil)
				m.credential.EXPECT().Claimable(gomock.Any(), int64(3)).Return(failure.Conflict("credential is already bound"))
			},
			wantKind: failure.KindConflict,
		},
		{
			name: "insert fails",
			setupMock: func(m employeeMockSet) {
				m.building.EXPECT().Get(gomock.Any(), int64(2)).Return(buildingModel.Building{ID: 2, CompanyID: 1}, nil)
				m.credential.EXPECT().Claimable(gomock.Any(), int64(3)).Return(nil)
				m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(0), failure.Database(errors.New("boom")))
			},
			wantKind: failure.KindDatabase,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.setupMock(m)

			id, err := svc.Create(context.Background(), req)

			if tt.wantKind != failure.KindUnknown {
				assert.True(t, failure.IsKind(err, tt.wantKind), err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(10), id)
			}
		})
	}
}

// A company-scoped request cannot see a fresh credential through its views,
// and must not bind its own credential to an employee.
func TestEmployeeService_CreateChecksCredentialAgainstBaseTables(t *testing.T) {
	req := dto.CreateEmployeeRequest{FirstName: "Alice", Surname: "Smith", CompanyID: 1, BuildingID: 2, PasswordID: 3}

	tests := []struct {
		name       string
		binding    scope.CredentialBinding
		wantInsert bool
		wantKind   failure.Kind
	}{
		{
			name:       "fresh credential hidden by the views",
			binding:    scope.CredentialBinding{Exists: true},
			wantInsert: true,
		},
		{
			name:     "the company's own credential",
			binding:  scope.CredentialBinding{Exists: true, Company: true},
			wantKind: failure.KindConflict,
		},
		{
			name:     "another employee's credential",
			binding:  scope.CredentialBinding{Exists: true, Employee: true},
			wantKind: failure.KindConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := employeeMocks.NewMockEmployee(ctrl)
			building := buildingMocks.NewMockBuilding(ctrl)
			store := scopeMocks.NewMockStore(ctrl)

			credentials := credentialService.New(credentialRepoMocks.NewMockCredential(ctrl), store, mocks.NewOtel())
			svc := service.New(repo, building, credentials, mocks.NewOtel())

			building.EXPECT().Get(gomock.Any(), int64(2)).Return(buildingModel.Building{ID: 2, CompanyID: 1}, nil)
			store.EXPECT().CredentialBinding(gomock.Any(), int64(3)).Return(tt.binding, nil)

			if tt.wantInsert {
				repo.EXPECT().Insert(gomock.Any(), req.ToModel()).Return(int64(10), nil)
			}

			id, err := svc.Create(context.Background(), req)

			if tt.wantKind != failure.KindUnknown {
				assert.True(t, failure.IsKind(err, tt.wantKind), err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(10), id)
			}
		})
	}
}
func TestEmployeeService_Update(t *testing.T) {
	email := "alice@acme.test"
	building := int64(4)

	tests := []struct {
		name      string
		req       dto.UpdateEmployeeRequest
		setupMock func(m employeeMockSet)
		wantKind  failure.Kind
	}{
		{
			name: "contact details only",
			req:  dto.UpdateEmployeeRequest{Email: &email},
			setupMock: func(m employeeMockSet) {
				m.repo.EXPECT().Update(gomock.Any(), int64(10), model.Patch{Email: &email}).Return(nil)
			},
		},
		{
			name: "move within company",
			req:  dto.UpdateEmployeeRequest{BuildingID: &building},
			setupMock: func(m employeeMockSet) {
				m.repo.EXPECT().Get(gomock.Any(), int64(10)).Return(model.Employee{ID: 10, CompanyID: 1}, nil)
				m.building.EXPECT().Get(gomock.Any(), building).Return(buildingModel.Building{ID: building, CompanyID: 1}, nil)
				m.repo.EXPECT().Update(gomock.Any(), int64(10), model.Patch{BuildingID: &building}).Return(nil)
			},
		},
		{
			name: "move to another company's building",
			req:  dto.UpdateEmployeeRequest{BuildingID: &building},
			setupMock: func(m employeeMockSet) {
				m.repo.EXPECT().Get(gomock.Any(), int64(10)).Return(model.Employee{ID: 10, CompanyID: 1}, nil)
				m.building.EXPECT().Get(gomock.Any(), building).Return(buildingModel.Building{ID: building, CompanyID: 2}, nil)
			},
			wantKind: failure.KindBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.setupMock(m)

			err := svc.Update(context.Background(), tt.req, 10)

			if tt.wantKind != failure.KindUnknown {
				assert.True(t, failure.IsKind(err, tt.wantKind), err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEmployeeService_GetAll(t *testing.T) {
	svc, m := newService(t)

	m.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)
	m.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Employee{{ID: 1}, {ID: 2}, {ID: 3}}, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 2}, gDto.FilterGroup{})

	require.NoError(t, err)
	assert.Equal(t, 3, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
}
