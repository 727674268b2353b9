package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"link/infras/otel"
	"link/internal/domains/company/model/dto"
	"link/internal/domains/company/repository"
	credentialService "link/internal/domains/credential/service"
	"link/internal/scope"
	"link/shared/constant"
	gDto "link/shared/dto"
	"link/shared/logger"
)

type Company interface {
	Create(ctx context.Context, req dto.CreateCompanyRequest) (int64, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCompaniesResponse, error)
	Get(ctx context.Context, id int64) (dto.CompanyResponse, error)
	Mine(ctx context.Context) (dto.CompanyResponse, error)
	Update(ctx context.Context, req dto.UpdateCompanyRequest, id int64) error
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo        repository.Company
	credentials credentialService.Credential
	otel        otel.Otel
}

func New(repo repository.Company, credentials credentialService.Credential, otel otel.Otel) Company {
	return &serviceImpl{
		repo:        repo,
		credentials: credentials,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCompanyRequest) (id int64, err error) {
	ctx, span := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".company.Create")
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	if err = s.credentials.Claimable(ctx, req.PasswordID); err != nil {
		return 0, err
	}

	id, err = s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("failed to create company")

		return 0, fmt.Errorf("failed to create company: %w", err)
	}

	return id, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCompaniesResponse, err error) {
	ctx, span := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".company.GetAll")
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count companies: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		return res, fmt.Errorf("failed to get companies: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.CompanyResponse, err error) {
	ctx, span := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".company.Get")
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	company, err := s.repo.Get(ctx, id)
	if err != nil {
		return res, fmt.Errorf("failed to get company: %w", err)
	}

	res.FromModel(company)

	return res, nil
}

// Mine returns the company owning the credential of the current request.
func (s *serviceImpl) Mine(ctx context.Context) (res dto.CompanyResponse, err error) {
	ctx, span := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".company.Mine")
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	req, err := scope.FromContext(ctx)
	if err != nil {
		return res, err
	}

	company, err := s.repo.GetByCredentialID(ctx, req.Scope().CredentialID)
	if err != nil {
		return res, fmt.Errorf("failed to get company: %w", err)
	}

	res.FromModel(company)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCompanyRequest, id int64) (err error) {
	ctx, span := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".company.Update")
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	if req.PasswordID != nil {
		if err = s.credentials.Claimable(ctx, *req.PasswordID); err != nil {
			return err
		}
	}

	if err = s.repo.Update(ctx, id, req.ToPatch()); err != nil {
		return fmt.Errorf("failed to update company: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".company.Delete")
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	if err = s.repo.Delete(ctx, id); err != nil {
		logger.FromContext(ctx).Error().Err(err).Int64("companyId", id).Msg("failed to delete company")

		return fmt.Errorf("failed to delete company: %w", err)
	}

	return nil
}
