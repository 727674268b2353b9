package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"link/infras/otel"
	"link/internal/domains/building/model/dto"
	"link/internal/domains/building/repository"
	companyRepo "link/internal/domains/company/repository"
	wifiRepo "link/internal/domains/wifiparams/repository"
	"link/shared/constant"
	gDto "link/shared/dto"
	"link/shared/failure"
	"link/shared/logger"
)

type Building interface {
	Create(ctx context.Context, req dto.CreateBuildingRequest) (int64, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBuildingsResponse, error)
	Get(ctx context.Context, id int64) (dto.BuildingResponse, error)
	Update(ctx context.Context, req dto.UpdateBuildingRequest, id int64) error
	Delete(ctx context.Context, id int64) error
	GetWifiParams(ctx context.Context, id int64) (dto.WifiParamsResponse, error)
	UpdateWifiParams(ctx context.Context, req dto.UpdateWifiParamsRequest, id int64) error
}

type serviceImpl struct {
	repo        repository.Building
	companyRepo companyRepo.Company
	wifiRepo    wifiRepo.WifiParams
	otel        otel.Otel
}

func New(repo repository.Building, companyRepo companyRepo.Company, wifiRepo wifiRepo.WifiParams, otel otel.Otel) Building {
	return &serviceImpl{
		repo:        repo,
		companyRepo: companyRepo,
		wifiRepo:    wifiRepo,
		otel:        otel,
	}
}

// Create registers a building under a company visible to the caller,
// creating its wifi parameters first when given.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBuildingRequest) (id int64, err error) {
	ctx, span := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".building.Create")
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	if _, err = s.companyRepo.Get(ctx, req.CompanyID); err != nil {
		if failure.IsKind(err, failure.KindNotFound) {
			return 0, failure.BadRequestFromString("company does not exist")
		}

		return 0, fmt.Errorf("failed to check company: %w", err)
	}

	var wifiParamsID *int64

	if req.Wifi != nil {
		wifiID, err := s.wifiRepo.Insert(ctx, req.Wifi.ToModel())
		if err != nil {
			logger.FromContext(ctx).Error().Err(err).Msg("failed to create wifi params")

			return 0, fmt.Errorf("failed to create wifi params: %w", err)
		}

		wifiParamsID = &wifiID
	}

	id, err = s.repo.Insert(ctx, req.ToModel(wifiParamsID))
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("failed to create building")

		return 0, fmt.Errorf("failed to create building: %w", err)
	}

	return id, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBuildingsResponse, err error) {
	ctx, span := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".building.GetAll")
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count buildings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		return res, fmt.Errorf("failed to get buildings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.BuildingResponse, err error) {
	ctx, span := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".building.Get")
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	building, err := s.repo.Get(ctx, id)
	if err != nil {
		return res, fmt.Errorf("failed to get building: %w", err)
	}

	res.FromModel(building)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBuildingRequest, id int64) (err error) {
	ctx, span := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".building.Update")
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	if err = s.repo.Update(ctx, id, req.ToPatch()); err != nil {
		return fmt.Errorf("failed to update building: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".building.Delete")
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	if err = s.repo.Delete(ctx, id); err != nil {
		logger.FromContext(ctx).Error().Err(err).Int64("buildingId", id).Msg("failed to delete building")

		return fmt.Errorf("failed to delete building: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetWifiParams(ctx context.Context, id int64) (res dto.WifiParamsResponse, err error) {
	ctx, span := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".building.GetWifiParams")
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	wifiParamsID, err := s.wifiParamsOf(ctx, id)
	if err != nil {
		return res, err
	}

	params, err := s.wifiRepo.Get(ctx, wifiParamsID)
	if err != nil {
		return res, fmt.Errorf("failed to get wifi params: %w", err)
	}

	res.FromModel(params)

	return res, nil
}

func (s *serviceImpl) UpdateWifiParams(ctx context.Context, req dto.UpdateWifiParamsRequest, id int64) (err error) {
	ctx, span := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".building.UpdateWifiParams")
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	wifiParamsID, err := s.wifiParamsOf(ctx, id)
	if err != nil {
		return err
	}

	if err = s.wifiRepo.Update(ctx, wifiParamsID, req.ToPatch()); err != nil {
		return fmt.Errorf("failed to update wifi params: %w", err)
	}

	return nil
}

func (s *serviceImpl) wifiParamsOf(ctx context.Context, buildingID int64) (int64, error) {
	building, err := s.repo.Get(ctx, buildingID)
	if err != nil {
		return 0, fmt.Errorf("failed to get building: %w", err)
	}

	if building.WifiParamsID == nil {
		return 0, failure.NotFound("building has no wifi params")
	}

	return *building.WifiParamsID, nil
}
