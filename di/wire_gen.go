// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

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
	"github.com/yamanfurkan353-eng/lumina/internal/domains/auth/service"
	repository4 "github.com/yamanfurkan353-eng/lumina/internal/domains/customer/repository"
	service4 "github.com/yamanfurkan353-eng/lumina/internal/domains/customer/service"
	service7 "github.com/yamanfurkan353-eng/lumina/internal/domains/dashboard/service"
	service8 "github.com/yamanfurkan353-eng/lumina/internal/domains/export/service"
	repository3 "github.com/yamanfurkan353-eng/lumina/internal/domains/reservation/repository"
	service5 "github.com/yamanfurkan353-eng/lumina/internal/domains/reservation/service"
	repository2 "github.com/yamanfurkan353-eng/lumina/internal/domains/room/repository"
	service3 "github.com/yamanfurkan353-eng/lumina/internal/domains/room/service"
	repository5 "github.com/yamanfurkan353-eng/lumina/internal/domains/setting/repository"
	service6 "github.com/yamanfurkan353-eng/lumina/internal/domains/setting/service"
	"github.com/yamanfurkan353-eng/lumina/internal/domains/user/repository"
	service2 "github.com/yamanfurkan353-eng/lumina/internal/domains/user/service"
	"github.com/yamanfurkan353-eng/lumina/internal/handlers/auth"
	"github.com/yamanfurkan353-eng/lumina/internal/handlers/customer"
	"github.com/yamanfurkan353-eng/lumina/internal/handlers/dashboard"
	"github.com/yamanfurkan353-eng/lumina/internal/handlers/export"
	"github.com/yamanfurkan353-eng/lumina/internal/handlers/reservation"
	"github.com/yamanfurkan353-eng/lumina/internal/handlers/room"
	"github.com/yamanfurkan353-eng/lumina/internal/handlers/setting"
	"github.com/yamanfurkan353-eng/lumina/internal/handlers/user"
	"github.com/yamanfurkan353-eng/lumina/permissions"
	"github.com/yamanfurkan353-eng/lumina/shared/audit"
	"github.com/yamanfurkan353-eng/lumina/shared/cache"
	"github.com/yamanfurkan353-eng/lumina/transport/http"
	"github.com/yamanfurkan353-eng/lumina/transport/http/middleware"
	"github.com/yamanfurkan353-eng/lumina/transport/http/router"
)

// Injectors from wire.go:

func InitializeService() *http.HTTP {
	configConfig := config.Get()
	connection := postgres.New(configConfig)
	otelOtel := otel.New(configConfig)
	repositoryUser := repository.New(connection, otelOtel)
	jwtJWT := jwt.New(configConfig)
	serviceAuth := service.New(repositoryUser, configConfig, otelOtel, jwtJWT)
	handler := auth.New(serviceAuth, otelOtel)
	client := redis.New(configConfig)
	redisCache := cache.NewRedisCache(client, otelOtel)
	serviceUser := service2.New(repositoryUser, configConfig, redisCache, otelOtel)
	userHandler := user.New(serviceUser, otelOtel)
	repositoryRoom := repository2.New(connection, otelOtel)
	repositoryReservation := repository3.New(connection, otelOtel)
	serviceRoom := service3.New(repositoryRoom, repositoryReservation, configConfig, redisCache, otelOtel)
	kafkaClient := kafka.New(configConfig)
	publisher := audit.NewPublisher(configConfig, kafkaClient)
	roomHandler := room.New(serviceRoom, publisher, otelOtel)
	repositoryCustomer := repository4.New(connection, otelOtel)
	serviceCustomer := service4.New(repositoryCustomer, repositoryReservation, configConfig, redisCache, otelOtel)
	customerHandler := customer.New(serviceCustomer, otelOtel)
	serviceReservation := service5.New(repositoryReservation, repositoryRoom, repositoryCustomer, connection, configConfig, redisCache, otelOtel)
	reservationHandler := reservation.New(serviceReservation, publisher, otelOtel)
	repositorySetting := repository5.New(connection, otelOtel)
	serviceSetting := service6.New(repositorySetting, configConfig, redisCache, otelOtel)
	settingHandler := setting.New(serviceSetting, otelOtel)
	serviceDashboard := service7.New(repositoryRoom, repositoryReservation, repositoryCustomer, configConfig, redisCache, otelOtel)
	dashboardHandler := dashboard.New(serviceDashboard, otelOtel)
	s3S3 := s3.New(configConfig, otelOtel)
	serviceExport := service8.New(repositoryReservation, repositoryCustomer, repositoryRoom, configConfig, otelOtel, s3S3)
	exportHandler := export.New(serviceExport, otelOtel)
	domainHandlers := router.DomainHandlers{
		Auth:        handler,
		User:        userHandler,
		Room:        roomHandler,
		Customer:    customerHandler,
		Reservation: reservationHandler,
		Setting:     settingHandler,
		Dashboard:   dashboardHandler,
		Export:      exportHandler,
	}
	routerRouter := router.New(domainHandlers)
	appMiddleware := middleware.NewAppMiddleware(otelOtel, configConfig, redisCache)
	permissionData := permissions.Get()
	authRole := middleware.NewAuthRoleMiddleware(jwtJWT, otelOtel, permissionData, configConfig)
	httpHTTP := http.New(configConfig, routerRouter, appMiddleware, authRole)
	return httpHTTP
}

// wire.go:

var configurations = wire.NewSet(config.Get)

var infrastructures = wire.NewSet(postgres.New, wire.Bind(new(postgres.Transactor), new(*postgres.Connection)), otel.New, redis.New, jwt.New, kafka.New, s3.New)

var middlewares = wire.NewSet(permissions.Get, middleware.NewAppMiddleware, middleware.NewAuthRoleMiddleware)

var sharedHelpers = wire.NewSet(cache.NewRedisCache, audit.NewPublisher)

var roomDomain = wire.NewSet(repository2.New, service3.New)

var customerDomain = wire.NewSet(repository4.New, service4.New)

var reservationDomain = wire.NewSet(repository3.New, service5.New)

var userDomain = wire.NewSet(repository.New, service2.New)

var authDomain = wire.NewSet(service.New)

var settingDomain = wire.NewSet(repository5.New, service6.New)

var dashboardDomain = wire.NewSet(service7.New)

var exportDomain = wire.NewSet(service8.New)

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

var routing = wire.NewSet(wire.Struct(new(router.DomainHandlers), "*"), auth.New, user.New, room.New, customer.New, reservation.New, setting.New, dashboard.New, export.New, router.New)
