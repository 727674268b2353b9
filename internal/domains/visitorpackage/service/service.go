package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"slices"

	"link/infras/otel"
	buildingRepo "link/internal/domains/building/repository"
	clientModel "link/internal/domains/client/model"
	clientRepo "link/internal/domains/client/repository"
	employeeRepo "link/internal/domains/employee/repository"
	roomRepo "link/internal/domains/room/repository"
	twaModel "link/internal/domains/tempwifiaccess/model"
	twaRepo "link/internal/domains/tempwifiaccess/repository"
	tpaRepo "link/internal/domains/tpa/repository"
	tpaRoomModel "link/internal/domains/tpaxroom/model"
	tpaRoomRepo "link/internal/domains/tpaxroom/repository"
	"link/internal/domains/visitorpackage/model"
	"link/internal/domains/visitorpackage/model/dto"
	"link/internal/domains/visitorpackage/repository"
	walletModel "link/internal/domains/wallet/model"
	walletRepo "link/internal/domains/wallet/repository"
	"link/shared/constant"
	gDto "link/shared/dto"
	"link/shared/failure"
	"link/shared/logger"
)

type VisitorPackage interface {
	Create(ctx context.Context, req dto.CreateVisitorPackageRequest) (dto.CreatedVisitorPackage, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetVisitorPackagesResponse, error)
	Get(ctx context.Context, id int64) (dto.VisitorPackageResponse, error)
	Update(ctx context.Context, req dto.UpdateVisitorPackageRequest, id int64) error
	Delete(ctx context.Context, id int64) error
	MoveRoom(ctx context.Context, id, fromRoomID, toRoomID int64) error
	Spend(ctx context.Context, id int64, amount float64) (dto.WalletResponse, error)
}

// Repositories groups the tables the creation workflow writes to.
type Repositories struct {
	Package        repository.VisitorPackage
	Employee       employeeRepo.Employee
	Building       buildingRepo.Building
	Room           roomRepo.Room
	Client         clientRepo.Client
	TempWifiAccess twaRepo.TempWifiAccess
	TPA            tpaRepo.TPA
	TPARoom        tpaRoomRepo.TPARoom
	Wallet         walletRepo.Wallet
}

type serviceImpl struct {
	repos Repositories
	otel  otel.Otel
}

func New(repos Repositories, otel otel.Otel) VisitorPackage {
	return &serviceImpl{
		repos: repos,
		otel:  otel,
	}
}

// Create runs the package workflow one insert at a time and stops at the
// first failure. Rows inserted before the failure are left in place.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateVisitorPackageRequest) (res dto.CreatedVisitorPackage, err error) {
	ctx, span := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".visitorpackage.Create")
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	log := logger.FromContext(ctx)

	employee, err := s.repos.Employee.Get(ctx, req.EmployeeID)
	if failure.IsKind(err, failure.KindNotFound) {
		return res, failure.BadRequestFromString("employee does not exist")
	}

	if err != nil {
		return res, fmt.Errorf("failed to get employee: %w", err)
	}

	building, err := s.repos.Building.Get(ctx, employee.BuildingID)
	if err != nil {
		return res, fmt.Errorf("failed to get employee's building: %w", err)
	}

	if building.WifiParamsID == nil {
		return res, failure.BadRequestFromString("employee's building has no wifi params")
	}

	for _, roomID := range req.RoomIDs {
		room, err := s.repos.Room.Get(ctx, roomID)
		if failure.IsKind(err, failure.KindNotFound) {
			return res, failure.BadRequestFromString(fmt.Sprintf("room %d does not exist", roomID))
		}

		if err != nil {
			return res, fmt.Errorf("failed to get room: %w", err)
		}

		if room.BuildingID != building.ID {
			return res, failure.BadRequestFromString(fmt.Sprintf("room %d is not in the employee's building", roomID))
		}
	}

	res.ClientID, err = s.clientFor(ctx, req.MacAddress)
	if err != nil {
		return res, err
	}

	res.TempWifiAccessID, err = s.repos.TempWifiAccess.Insert(ctx, twaModel.TempWifiAccess{WifiParamsID: *building.WifiParamsID})
	if err != nil {
		log.Error().Err(err).Msg("failed to create temp wifi access")

		return res, fmt.Errorf("failed to create temp wifi access: %w", err)
	}

	res.TPAID, err = s.repos.TPA.Insert(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to create tpa")

		return res, fmt.Errorf("failed to create tpa: %w", err)
	}

	for _, roomID := range slices.Compact(slices.Sorted(slices.Values(req.RoomIDs))) {
		if err = s.repos.TPARoom.Insert(ctx, tpaRoomModel.TPARoom{TPAID: res.TPAID, RoomID: roomID}); err != nil {
			log.Error().Err(err).Int64("roomId", roomID).Msg("failed to link room to tpa")

			return res, fmt.Errorf("failed to link room to tpa: %w", err)
		}
	}

	res.LinkWalletID, err = s.repos.Wallet.Insert(ctx, walletModel.Wallet{MaxLimit: req.Limit, Spent: req.Spent})
	if err != nil {
		log.Error().Err(err).Msg("failed to create wallet")

		return res, fmt.Errorf("failed to create wallet: %w", err)
	}

	res.VisitorPackageID, err = s.repos.Package.Insert(ctx, model.VisitorPackage{
		TempWifiAccessID: &res.TempWifiAccessID,
		TPAID:            &res.TPAID,
		LinkWalletID:     &res.LinkWalletID,
		EmployeeID:       employee.ID,
		ClientID:         res.ClientID,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create visitor package")

		return res, fmt.Errorf("failed to create visitor package: %w", err)
	}

	log.Info().Int64("visitorPackageId", res.VisitorPackageID).Int64("employeeId", employee.ID).Msg("visitor package created")

	return res, nil
}

// clientFor returns the client registered for macAddress, registering it
// when it is new.
func (s *serviceImpl) clientFor(ctx context.Context, macAddress string) (int64, error) {
	client, err := s.repos.Client.GetByMacAddress(ctx, macAddress)
	if err == nil {
		return client.ID, nil
	}

	if !failure.IsKind(err, failure.KindNotFound) {
		return 0, fmt.Errorf("failed to get client: %w", err)
	}

	id, err := s.repos.Client.Insert(ctx, clientModel.Client{MacAddress: macAddress})
	if err != nil {
		return 0, fmt.Errorf("failed to create client: %w", err)
	}

	return id, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetVisitorPackagesResponse, err error) {
	ctx, span := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".visitorpackage.GetAll")
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	total, err := s.repos.Package.Count(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count visitor packages: %w", err)
	}

	models, err := s.repos.Package.GetAll(ctx, req, filter)
	if err != nil {
		return res, fmt.Errorf("failed to get visitor packages: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

// Get returns the package with the rooms its TPA opens and its wallet.
func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.VisitorPackageResponse, err error) {
	ctx, span := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".visitorpackage.Get")
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	pkg, err := s.repos.Package.Get(ctx, id)
	if err != nil {
		return res, fmt.Errorf("failed to get visitor package: %w", err)
	}

	res.FromModel(pkg)

	if pkg.TPAID != nil {
		links, err := s.repos.TPARoom.GetByTPAID(ctx, *pkg.TPAID)
		if err != nil {
			return res, fmt.Errorf("failed to get tpa rooms: %w", err)
		}

		for _, link := range links {
			res.RoomIDs = append(res.RoomIDs, link.RoomID)
		}
	}

	if pkg.LinkWalletID != nil {
		wallet, err := s.repos.Wallet.Get(ctx, *pkg.LinkWalletID)
		if err != nil {
			return res, fmt.Errorf("failed to get wallet: %w", err)
		}

		res.Wallet = &dto.WalletResponse{}
		res.Wallet.FromModel(wallet)
	}

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateVisitorPackageRequest, id int64) (err error) {
	ctx, span := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".visitorpackage.Update")
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	if req.StartTime != nil || req.EndTime != nil {
		pkg, err := s.repos.Package.Get(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get visitor package: %w", err)
		}

		start, end := pkg.StartTime, pkg.EndTime
		if req.StartTime != nil {
			start = *req.StartTime
		}

		if req.EndTime != nil {
			end = *req.EndTime
		}

		if !end.After(start) {
			return failure.BadRequestFromString("end_time must be after start_time")
		}
	}

	if err = s.repos.Package.Update(ctx, id, req.ToPatch()); err != nil {
		return fmt.Errorf("failed to update visitor package: %w", err)
	}

	return nil
}

// Delete removes the package and revokes its room grants. The wallet and
// wifi access rows are kept for accounting.
func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".visitorpackage.Delete")
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	pkg, err := s.repos.Package.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get visitor package: %w", err)
	}

	if err = s.repos.Package.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete visitor package: %w", err)
	}

	if pkg.TPAID == nil {
		return nil
	}

	links, err := s.repos.TPARoom.GetByTPAID(ctx, *pkg.TPAID)
	if err != nil {
		return fmt.Errorf("failed to get tpa rooms: %w", err)
	}

	for _, link := range links {
		if err = s.repos.TPARoom.Delete(ctx, link); err != nil {
			return fmt.Errorf("failed to unlink room from tpa: %w", err)
		}
	}

	if err = s.repos.TPA.Delete(ctx, *pkg.TPAID); err != nil {
		return fmt.Errorf("failed to delete tpa: %w", err)
	}

	return nil
}

// MoveRoom swaps one room of the package's TPA for another in the same
// building.
func (s *serviceImpl) MoveRoom(ctx context.Context, id, fromRoomID, toRoomID int64) (err error) {
	ctx, span := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".visitorpackage.MoveRoom")
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	pkg, err := s.repos.Package.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get visitor package: %w", err)
	}

	if pkg.TPAID == nil {
		return failure.NotFound("visitor package has no tpa")
	}

	from, err := s.repos.Room.Get(ctx, fromRoomID)
	if err != nil {
		return fmt.Errorf("failed to get room: %w", err)
	}

	to, err := s.repos.Room.Get(ctx, toRoomID)
	if failure.IsKind(err, failure.KindNotFound) {
		return failure.BadRequestFromString("room does not exist")
	}

	if err != nil {
		return fmt.Errorf("failed to get room: %w", err)
	}

	if from.BuildingID != to.BuildingID {
		return failure.BadRequestFromString("rooms must be in the same building")
	}

	link := tpaRoomModel.TPARoom{TPAID: *pkg.TPAID, RoomID: fromRoomID}

	if err = s.repos.TPARoom.MoveRoom(ctx, link, toRoomID); err != nil {
		return fmt.Errorf("failed to move tpa room: %w", err)
	}

	return nil
}

// Spend charges amount to the package wallet, refusing to pass its limit.
func (s *serviceImpl) Spend(ctx context.Context, id int64, amount float64) (res dto.WalletResponse, err error) {
	ctx, span := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".visitorpackage.Spend")
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	pkg, err := s.repos.Package.Get(ctx, id)
	if err != nil {
		return res, fmt.Errorf("failed to get visitor package: %w", err)
	}

	if pkg.LinkWalletID == nil {
		return res, failure.NotFound("visitor package has no wallet")
	}

	if amount <= 0 {
		return res, failure.BadRequestFromString("amount must be greater than 0")
	}

	charged, err := s.repos.Wallet.Spend(ctx, *pkg.LinkWalletID, amount)
	if err != nil {
		return res, fmt.Errorf("failed to charge wallet: %w", err)
	}

	wallet, err := s.repos.Wallet.Get(ctx, *pkg.LinkWalletID)
	if err != nil {
		return res, fmt.Errorf("failed to get wallet: %w", err)
	}

	if !charged {
		return res, failure.BadRequestFromString("wallet limit exceeded")
	}

	res.FromModel(wallet)

	return res, nil
}
