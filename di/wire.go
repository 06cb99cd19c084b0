//go:build wireinject
// +build wireinject

package di

import (
	"luxehotel/config"
	"luxehotel/infras/kafka"
	"luxehotel/infras/otel"
	"luxehotel/infras/postgres"
	"luxehotel/infras/redis"
	"luxehotel/infras/s3"
	bookingHandler "luxehotel/internal/handlers/booking"
	catalogHandler "luxehotel/internal/handlers/catalog"
	contentHandler "luxehotel/internal/handlers/content"
	"luxehotel/shared/cache"
	"luxehotel/transport/http"
	"luxehotel/transport/http/middleware"
	"luxehotel/transport/http/router"

	"luxehotel/internal/domains/booking/pricing"
	bookingRepository "luxehotel/internal/domains/booking/repository"
	bookingService "luxehotel/internal/domains/booking/service"
	"luxehotel/internal/domains/booking/validation"
	catalogRepository "luxehotel/internal/domains/catalog/repository"
	catalogService "luxehotel/internal/domains/catalog/service"
	contentRepository "luxehotel/internal/domains/content/repository"
	contentService "luxehotel/internal/domains/content/service"
	"luxehotel/internal/domains/notification"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var catalogDomain = wire.NewSet(
	catalogRepository.New,
	catalogService.New,
)

var contentDomain = wire.NewSet(
	contentRepository.New,
	contentService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	pricing.New,
	validation.New,
	notification.New,
	ProvideWizardFactory,
	bookingService.New,
)

var domains = wire.NewSet(
	catalogDomain,
	contentDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	catalogHandler.New,
	bookingHandler.New,
	contentHandler.New,
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
