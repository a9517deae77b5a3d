//go:build wireinject
// +build wireinject

package di

import (
	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/infras/redis"
	"hotel/permissions"
	"hotel/shared/cache"
	"hotel/transport/console"
	"hotel/transport/console/middleware"
	"hotel/transport/console/router"

	"github.com/google/wire"

	authService "hotel/internal/domains/auth/service"
	bookingRepository "hotel/internal/domains/booking/repository"
	bookingService "hotel/internal/domains/booking/service"
	hotelRepository "hotel/internal/domains/hotel/repository"
	hotelService "hotel/internal/domains/hotel/service"
	repairRepository "hotel/internal/domains/repair/repository"
	repairService "hotel/internal/domains/repair/service"
	roomRepository "hotel/internal/domains/room/repository"
	roomService "hotel/internal/domains/room/service"
	userRepository "hotel/internal/domains/user/repository"
	userService "hotel/internal/domains/user/service"
	authHandler "hotel/internal/handlers/auth"
	bookingHandler "hotel/internal/handlers/booking"
	hotelHandler "hotel/internal/handlers/hotel"
	repairHandler "hotel/internal/handlers/repair"
	roomHandler "hotel/internal/handlers/room"
	userHandler "hotel/internal/handlers/user"
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var middlewares = wire.NewSet(
	permissions.Get,
	middleware.NewRoleMiddleware,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var hotelDomain = wire.NewSet(
	hotelRepository.New,
	hotelService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var repairDomain = wire.NewSet(
	repairRepository.New,
	repairService.New,
)

var domains = wire.NewSet(
	userDomain,
	hotelDomain,
	authDomain,
	roomDomain,
	bookingDomain,
	repairDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	hotelHandler.New,
	roomHandler.New,
	bookingHandler.New,
	repairHandler.New,
	router.New,
)

func InitializeConsole(cfg *config.Config) *console.Console {
	wire.Build(
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		console.New,
	)

	return &console.Console{}
}
