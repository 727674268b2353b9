package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"link/infras/otel/mocks"
	companyMocks "link/internal/domains/company/mocks"
	"link/internal/domains/company/model"
	"link/internal/domains/company/model/dto"
	"link/internal/domains/company/service"
	credentialMocks "link/internal/domains/credential/service/mocks"
	"link/internal/scope"
	gDto "link/shared/dto"
	"link/shared/failure"
)

func newService(t *testing.T) (service.Company, *companyMocks.MockCompany, *credentialMocks.MockCredential) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := companyMocks.NewMockCompany(ctrl)
	mockCredential := credentialMocks.NewMockCredential(ctrl)

	return service.New(mockRepo, mockCredential, mocks.NewOtel()), mockRepo, mockCredential
}

func TestCompanyService_Create(t *testing.T) {
	svc, mockRepo, mockCredential := newService(t)

	req := dto.CreateCompanyRequest{Name: "Acme", PasswordID: 7}

	tests := []struct {
		name      string
		setupMock func()
		wantID    int64
		wantKind  failure.Kind
	}{
		{
			name: "successful creation",
			setupMock: func() {
				mockCredential.EXPECT().Claimable(gomock.Any(), int64(7)).Return(nil)
				mockRepo.EXPECT().
					Insert(gomock.Any(), model.Company{Name: "Acme", PasswordID: 7}).
					Return(int64(3), nil)
			},
			wantID: 3,
		},
		{
			name: "unknown credential",
			setupMock: func() {
				mockCredential.EXPECT().Claimable(gomock.Any(), int64(7)).Return(failure.BadRequestFromString("credential does not exist"))
			},
			wantKind: failure.KindBadRequest,
		},
		{
			name: "credential bound to an employee",
			setupMock: func() {
				mockCredential.EXPECT().Claimable(gomock.Any(), int64(7)).Return(failure.Conflict("credential is already bound"))
			},
			wantKind: failure.KindConflict,
		},
		{
			name: "credential lookup error",
			setupMock: func() {
				mockCredential.EXPECT().Claimable(gomock.Any(), int64(7)).Return(failure.Database(errors.New("boom")))
			},
			wantKind: failure.KindDatabase,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockCredential.EXPECT().Claimable(gomock.Any(), int64(7)).Return(nil)
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(0), failure.Database(errors.New("boom")))
			},
			wantKind: failure.KindDatabase,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			id, err := svc.Create(context.Background(), req)

			if tt.wantKind != failure.KindUnknown {
				assert.True(t, failure.IsKind(err, tt.wantKind), err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}

func TestCompanyService_GetAll(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	tests := []struct {
		name          string
		setupMock     func()
		wantErr       bool
		wantTotalPage int
	}{
		{
			name: "successful get all",
			setupMock: func() {
				mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(11, nil)
				mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Company{{ID: 1, Name: "Acme"}}, nil)
			},
			wantTotalPage: 2,
		},
		{
			name: "count error",
			setupMock: func() {
				mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
		{
			name: "get all error",
			setupMock: func() {
				mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
				mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("get all error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantTotalPage, res.TotalPage)
				assert.Len(t, res.Companies, 1)
			}
		})
	}
}

func TestCompanyService_Get(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	mockRepo.EXPECT().Get(gomock.Any(), int64(9)).Return(model.Company{}, failure.NotFound("company not found"))

	_, err := svc.Get(context.Background(), 9)

	assert.True(t, failure.IsKind(err, failure.KindNotFound))
}

func TestCompanyService_Mine(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	ctx := scope.WithRequest(context.Background(), scope.NewRequest(scope.CompanyScope(7, 3), "abcdefghij"))

	mockRepo.EXPECT().GetByCredentialID(gomock.Any(), int64(7)).Return(model.Company{ID: 3, Name: "Acme", PasswordID: 7}, nil)

	res, err := svc.Mine(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(3), res.ID)

	_, err = svc.Mine(context.Background())
	assert.True(t, failure.IsKind(err, failure.KindInternal))
}

func TestCompanyService_Update(t *testing.T) {
	svc, mockRepo, mockCredential := newService(t)

	website := "acme.test"
	passwordID := int64(8)

	tests := []struct {
		name      string
		req       dto.UpdateCompanyRequest
		setupMock func()
		wantKind  failure.Kind
	}{
		{
			name: "website only",
			req:  dto.UpdateCompanyRequest{Website: &website},
			setupMock: func() {
				mockRepo.EXPECT().Update(gomock.Any(), int64(3), model.Patch{Website: &website}).Return(nil)
			},
		},
		{
			name: "new credential must exist",
			req:  dto.UpdateCompanyRequest{PasswordID: &passwordID},
			setupMock: func() {
				mockCredential.EXPECT().Claimable(gomock.Any(), passwordID).Return(failure.BadRequestFromString("credential does not exist"))
			},
			wantKind: failure.KindBadRequest,
		},
		{
			name: "new credential already bound",
			req:  dto.UpdateCompanyRequest{PasswordID: &passwordID},
			setupMock: func() {
				mockCredential.EXPECT().Claimable(gomock.Any(), passwordID).Return(failure.Conflict("credential is already bound"))
			},
			wantKind: failure.KindConflict,
		},
		{
			name: "free credential",
			req:  dto.UpdateCompanyRequest{PasswordID: &passwordID},
			setupMock: func() {
				mockCredential.EXPECT().Claimable(gomock.Any(), passwordID).Return(nil)
				mockRepo.EXPECT().Update(gomock.Any(), int64(3), model.Patch{PasswordID: &passwordID}).Return(nil)
			},
		},
		{
			name: "nothing to update",
			req:  dto.UpdateCompanyRequest{},
			setupMock: func() {
				mockRepo.EXPECT().Update(gomock.Any(), int64(3), model.Patch{}).Return(failure.NoValidParameters())
			},
			wantKind: failure.KindNoValidParameters,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Update(context.Background(), tt.req, 3)

			if tt.wantKind != failure.KindUnknown {
				assert.True(t, failure.IsKind(err, tt.wantKind), err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCompanyService_Delete(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	mockRepo.EXPECT().Delete(gomock.Any(), int64(3)).Return(failure.Database(errors.New("violates foreign key constraint")))

	err := svc.Delete(context.Background(), 3)

	assert.True(t, failure.IsKind(err, failure.KindDatabase))
	assert.Equal(t, "Database query failed: violates foreign key constraint", failure.GetMessage(err))
}
