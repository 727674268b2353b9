//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"link/config"
	"link/infras/otel"
	"link/infras/postgres"
	"link/infras/redis"
	"link/internal/scope"
	"link/permissions"
	"link/shared/cache"
	"link/transport/http"
	"link/transport/http/middleware"
	"link/transport/http/router"

	accessPointRepository "link/internal/domains/accesspoint/repository"
	buildingRepository "link/internal/domains/building/repository"
	buildingService "link/internal/domains/building/service"
	clientRepository "link/internal/domains/client/repository"
	companyRepository "link/internal/domains/company/repository"
	companyService "link/internal/domains/company/service"
	credentialRepository "link/internal/domains/credential/repository"
	credentialService "link/internal/domains/credential/service"
	employeeRepository "link/internal/domains/employee/repository"
	employeeService "link/internal/domains/employee/service"
	roomRepository "link/internal/domains/room/repository"
	roomService "link/internal/domains/room/service"
	tempWifiAccessRepository "link/internal/domains/tempwifiaccess/repository"
	tpaRepository "link/internal/domains/tpa/repository"
	tpaRoomRepository "link/internal/domains/tpaxroom/repository"
	visitorPackageRepository "link/internal/domains/visitorpackage/repository"
	visitorPackageService "link/internal/domains/visitorpackage/service"
	walletRepository "link/internal/domains/wallet/repository"
	wifiParamsRepository "link/internal/domains/wifiparams/repository"

	buildingHandler "link/internal/handlers/building"
	companyHandler "link/internal/handlers/company"
	credentialHandler "link/internal/handlers/credential"
	employeeHandler "link/internal/handlers/employee"
	roomHandler "link/internal/handlers/room"
	visitorPackageHandler "link/internal/handlers/visitorpackage"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
)

var isolation = wire.NewSet(
	scope.NewStore,
	scope.NewLedger,
	scope.NewResolver,
	scope.NewMaterializer,
	scope.NewTeardowner,
	scope.NewManager,
	scope.NewSweeper,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewScopeMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var repositories = wire.NewSet(
	accessPointRepository.New,
	buildingRepository.New,
	clientRepository.New,
	companyRepository.New,
	credentialRepository.New,
	employeeRepository.New,
	roomRepository.New,
	tempWifiAccessRepository.New,
	tpaRepository.New,
	tpaRoomRepository.New,
	visitorPackageRepository.New,
	walletRepository.New,
	wifiParamsRepository.New,
)

var domains = wire.NewSet(
	repositories,
	credentialService.New,
	companyService.New,
	buildingService.New,
	employeeService.New,
	roomService.New,
	wire.Struct(new(visitorPackageService.Repositories), "*"),
	visitorPackageService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	companyHandler.New,
	credentialHandler.New,
	buildingHandler.New,
	employeeHandler.New,
	roomHandler.New,
	visitorPackageHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		isolation,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeSweeper() *scope.Sweeper {
	wire.Build(
		config.Get,
		infrastructures,
		scope.NewLedger,
		scope.NewSweeper,
	)

	return &scope.Sweeper{}
}
