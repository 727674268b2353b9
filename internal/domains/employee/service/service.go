package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"link/infras/otel"
	buildingRepo "link/internal/domains/building/repository"
	credentialService "link/internal/domains/credential/service"
	"link/internal/domains/employee/model/dto"
	"link/internal/domains/employee/repository"
	"link/shared/constant"
	gDto "link/shared/dto"
	"link/shared/failure"
	"link/shared/logger"
)

type Employee interface {
	Create(ctx context.Context, req dto.CreateEmployeeRequest) (int64, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetEmployeesResponse, error)
	Get(ctx context.Context, id int64) (dto.EmployeeResponse, error)
	Update(ctx context.Context, req dto.UpdateEmployeeRequest, id int64) error
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo         repository.Employee
	buildingRepo buildingRepo.Building
	credentials  credentialService.Credential
	otel         otel.Otel
}

func New(repo repository.Employee, buildingRepo buildingRepo.Building, credentials credentialService.Credential, otel otel.Otel) Employee {
	return &serviceImpl{
		repo:         repo,
		buildingRepo: buildingRepo,
		credentials:  credentials,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateEmployeeRequest) (id int64, err error) {
	ctx, span := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".employee.Create")
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	if err = s.checkBuilding(ctx, req.BuildingID, req.CompanyID); err != nil {
		return 0, err
	}

	if err = s.credentials.Claimable(ctx, req.PasswordID); err != nil {
		return 0, err
	}

	id, err = s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("failed to create employee")

		return 0, fmt.Errorf("failed to create employee: %w", err)
	}

	return id, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetEmployeesResponse, err error) {
	ctx, span := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".employee.GetAll")
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count employees: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		return res, fmt.Errorf("failed to get employees: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.EmployeeResponse, err error) {
	ctx, span := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".employee.Get")
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	employee, err := s.repo.Get(ctx, id)
	if err != nil {
		return res, fmt.Errorf("failed to get employee: %w", err)
	}

	res.FromModel(employee)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateEmployeeRequest, id int64) (err error) {
	ctx, span := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".employee.Update")
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	if req.BuildingID != nil {
		employee, err := s.repo.Get(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get employee: %w", err)
		}

		if err = s.checkBuilding(ctx, *req.BuildingID, employee.CompanyID); err != nil {
			return err
		}
	}

	if err = s.repo.Update(ctx, id, req.ToPatch()); err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".employee.Delete")
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	if err = s.repo.Delete(ctx, id); err != nil {
		logger.FromContext(ctx).Error().Err(err).Int64("employeeId", id).Msg("failed to delete employee")

		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}

// checkBuilding requires the building to be visible and owned by companyID.
func (s *serviceImpl) checkBuilding(ctx context.Context, buildingID, companyID int64) error {
	building, err := s.buildingRepo.Get(ctx, buildingID)
	if failure.IsKind(err, failure.KindNotFound) {
		return failure.BadRequestFromString("building does not exist")
	}

	if err != nil {
		return fmt.Errorf("failed to check building: %w", err)
	}

	if building.CompanyID != companyID {
		return failure.BadRequestFromString("building does not belong to the employee's company")
	}

	return nil
}
