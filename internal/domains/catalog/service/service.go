package service

import (
	"context"
	"luxehotel/config"
	"luxehotel/infras/otel"
	"luxehotel/infras/s3"
	"luxehotel/internal/domains/catalog/model"
	"luxehotel/internal/domains/catalog/model/dto"
	"luxehotel/internal/domains/catalog/repository"
	"luxehotel/shared"
	"luxehotel/shared/cache"
	"luxehotel/shared/constant"
	"luxehotel/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom     = "room:get"
	cacheGetAllRooms = "room:gets"
)

type Catalog interface {
	GetAll(ctx context.Context) (dto.GetRoomsResponse, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
}

type serviceImpl struct {
	catalog repository.Catalog
	cfg     *config.Config
	cache   cache.RedisCache
	media   s3.S3
	otel    otel.Otel
}

func New(catalog repository.Catalog, cfg *config.Config, cache cache.RedisCache, media s3.S3, otel otel.Otel) Catalog {
	return &serviceImpl{
		catalog: catalog,
		cfg:     cfg,
		cache:   cache,
		media:   media,
		otel:    otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAllRooms)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	res.FromModels(s.catalog.All(), s.imageURL)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRoom, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, ok := s.catalog.Lookup(id)
	if !ok {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	res.FromModel(room, s.imageURL(room))

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) imageURL(room model.Room) string {
	return s.media.PublicURL(s.cfg.External.S3.MediaBucket, room.ImageKey)
}
