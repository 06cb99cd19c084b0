package service

import (
	"context"
	"luxehotel/config"
	"luxehotel/infras/otel"
	"luxehotel/internal/domains/content/model/dto"
	"luxehotel/internal/domains/content/repository"
	"luxehotel/shared"
	"luxehotel/shared/cache"
	"luxehotel/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAmenities    = "content:amenities"
	cacheGetTestimonials = "content:testimonials"
	cacheGetContact      = "content:contact"
)

type Content interface {
	GetAmenities(ctx context.Context) (dto.GetAmenitiesResponse, error)
	GetTestimonials(ctx context.Context) (dto.GetTestimonialsResponse, error)
	GetContact(ctx context.Context) (dto.GetContactResponse, error)
}

type serviceImpl struct {
	content repository.Content
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
}

func New(content repository.Content, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Content {
	return &serviceImpl{
		content: content,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
	}
}

func (s *serviceImpl) GetAmenities(ctx context.Context) (res dto.GetAmenitiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAmenities")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAmenities)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for amenities")

		return res, nil
	}

	res.FromModels(s.content.Amenities(), s.content.Highlights())

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save amenities to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetTestimonials(ctx context.Context) (res dto.GetTestimonialsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetTestimonials")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetTestimonials)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for testimonials")

		return res, nil
	}

	res.FromModels(s.content.Testimonials(), s.content.GuestStats())

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save testimonials to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetContact(ctx context.Context) (res dto.GetContactResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetContact")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetContact)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for contact info")

		return res, nil
	}

	res.FromModels(s.cfg.Hotel.Name, s.content.ContactChannels(), s.content.TransportOptions())

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save contact info to cache")
		}
	}()

	return res, nil
}
