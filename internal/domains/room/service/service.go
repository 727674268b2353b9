package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"slices"

	"link/infras/otel"
	apModel "link/internal/domains/accesspoint/model"
	apRepo "link/internal/domains/accesspoint/repository"
	buildingRepo "link/internal/domains/building/repository"
	"link/internal/domains/room/model/dto"
	"link/internal/domains/room/repository"
	"link/shared/constant"
	gDto "link/shared/dto"
	"link/shared/failure"
	"link/shared/logger"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) (int64, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error)
	Get(ctx context.Context, id int64) (dto.RoomResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomRequest, id int64) error
	Delete(ctx context.Context, id int64) error
	GetAccessPoints(ctx context.Context, id int64) ([]dto.AccessPointResponse, error)
	AddAccessPoint(ctx context.Context, id int64) (int64, error)
	RemoveAccessPoint(ctx context.Context, id, accessPointID int64) error
}

type serviceImpl struct {
	repo         repository.Room
	buildingRepo buildingRepo.Building
	apRepo       apRepo.AccessPoint
	otel         otel.Otel
}

func New(repo repository.Room, buildingRepo buildingRepo.Building, apRepo apRepo.AccessPoint, otel otel.Otel) Room {
	return &serviceImpl{
		repo:         repo,
		buildingRepo: buildingRepo,
		apRepo:       apRepo,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (id int64, err error) {
	ctx, span := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Create")
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	if _, err = s.buildingRepo.Get(ctx, req.BuildingID); err != nil {
		if failure.IsKind(err, failure.KindNotFound) {
			return 0, failure.BadRequestFromString("building does not exist")
		}

		return 0, fmt.Errorf("failed to check building: %w", err)
	}

	id, err = s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("failed to create room")

		return 0, fmt.Errorf("failed to create room: %w", err)
	}

	return id, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomsResponse, err error) {
	ctx, span := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetAll")
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.RoomResponse, err error) {
	ctx, span := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Get")
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	room, err := s.repo.Get(ctx, id)
	if err != nil {
		return res, fmt.Errorf("failed to get room: %w", err)
	}

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest, id int64) (err error) {
	ctx, span := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Update")
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	if err = s.repo.Update(ctx, id, req.ToPatch()); err != nil {
		return fmt.Errorf("failed to update room: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Delete")
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	if err = s.repo.Delete(ctx, id); err != nil {
		logger.FromContext(ctx).Error().Err(err).Int64("roomId", id).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAccessPoints(ctx context.Context, id int64) (res []dto.AccessPointResponse, err error) {
	ctx, span := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetAccessPoints")
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	if _, err = s.repo.Get(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	models, err := s.apRepo.GetByRoomID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get access points: %w", err)
	}

	return dto.AccessPointsFromModels(models), nil
}

func (s *serviceImpl) AddAccessPoint(ctx context.Context, id int64) (accessPointID int64, err error) {
	ctx, span := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.AddAccessPoint")
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	if _, err = s.repo.Get(ctx, id); err != nil {
		return 0, fmt.Errorf("failed to get room: %w", err)
	}

	accessPointID, err = s.apRepo.Insert(ctx, apModel.AccessPoint{RoomID: id})
	if err != nil {
		return 0, fmt.Errorf("failed to create access point: %w", err)
	}

	return accessPointID, nil
}

// RemoveAccessPoint deletes a reader only when it is mounted in the given room.
func (s *serviceImpl) RemoveAccessPoint(ctx context.Context, id, accessPointID int64) (err error) {
	ctx, span := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.RemoveAccessPoint")
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	models, err := s.apRepo.GetByRoomID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get access points: %w", err)
	}

	mounted := slices.ContainsFunc(models, func(ap apModel.AccessPoint) bool {
		return ap.ID == accessPointID
	})

	if !mounted {
		return failure.NotFound(apModel.EntityName + " not found")
	}

	if err = s.apRepo.Delete(ctx, accessPointID); err != nil {
		return fmt.Errorf("failed to delete access point: %w", err)
	}

	return nil
}
