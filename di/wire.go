//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/yamanfurkan353-eng/lumina/config"
	"github.com/yamanfurkan353-eng/lumina/infras/jwt"
	"github.com/yamanfurkan353-eng/lumina/infras/kafka"
	"github.com/yamanfurkan353-eng/lumina/infras/otel"
	"github.com/yamanfurkan353-eng/lumina/infras/postgres"
	"github.com/yamanfurkan353-eng/lumina/infras/redis"
	"github.com/yamanfurkan353-eng/lumina/infras/s3"
	"github.com/yamanfurkan353-eng/lumina/permissions"
	"github.com/yamanfurkan353-eng/lumina/shared/audit"
	"github.com/yamanfurkan353-eng/lumina/shared/cache"
	"github.com/yamanfurkan353-eng/lumina/transport/http"
	"github.com/yamanfurkan353-eng/lumina/transport/http/middleware"
	"github.com/yamanfurkan353-eng/lumina/transport/http/router"

	authService "github.com/yamanfurkan353-eng/lumina/internal/domains/auth/service"
	customerRepository "github.com/yamanfurkan353-eng/lumina/internal/domains/customer/repository"
	customerService "github.com/yamanfurkan353-eng/lumina/internal/domains/customer/service"
	dashboardService "github.com/yamanfurkan353-eng/lumina/internal/domains/dashboard/service"
	exportService "github.com/yamanfurkan353-eng/lumina/internal/domains/export/service"
	reservationRepository "github.com/yamanfurkan353-eng/lumina/internal/domains/reservation/repository"
	reservationService "github.com/yamanfurkan353-eng/lumina/internal/domains/reservation/service"
	roomRepository "github.com/yamanfurkan353-eng/lumina/internal/domains/room/repository"
	roomService "github.com/yamanfurkan353-eng/lumina/internal/domains/room/service"
	settingRepository "github.com/yamanfurkan353-eng/lumina/internal/domains/setting/repository"
	settingService "github.com/yamanfurkan353-eng/lumina/internal/domains/setting/service"
	userRepository "github.com/yamanfurkan353-eng/lumina/internal/domains/user/repository"
	userService "github.com/yamanfurkan353-eng/lumina/internal/domains/user/service"

	authHandler "github.com/yamanfurkan353-eng/lumina/internal/handlers/auth"
	customerHandler "github.com/yamanfurkan353-eng/lumina/internal/handlers/customer"
	dashboardHandler "github.com/yamanfurkan353-eng/lumina/internal/handlers/dashboard"
	exportHandler "github.com/yamanfurkan353-eng/lumina/internal/handlers/export"
	reservationHandler "github.com/yamanfurkan353-eng/lumina/internal/handlers/reservation"
	roomHandler "github.com/yamanfurkan353-eng/lumina/internal/handlers/room"
	settingHandler "github.com/yamanfurkan353-eng/lumina/internal/handlers/setting"
	userHandler "github.com/yamanfurkan353-eng/lumina/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	wire.Bind(new(postgres.Transactor), new(*postgres.Connection)),
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	permissions.Get,
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	audit.NewPublisher,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var customerDomain = wire.NewSet(
	customerRepository.New,
	customerService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var settingDomain = wire.NewSet(
	settingRepository.New,
	settingService.New,
)

var dashboardDomain = wire.NewSet(
	dashboardService.New,
)

var exportDomain = wire.NewSet(
	exportService.New,
)

var domains = wire.NewSet(
	roomDomain,
	customerDomain,
	reservationDomain,
	userDomain,
	authDomain,
	settingDomain,
	dashboardDomain,
	exportDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	roomHandler.New,
	customerHandler.New,
	reservationHandler.New,
	settingHandler.New,
	dashboardHandler.New,
	exportHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
