package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"luxehotel/config"
	"luxehotel/infras/otel"
	"luxehotel/infras/s3"
	"luxehotel/internal/domains/booking/model"
	"luxehotel/internal/domains/booking/model/dto"
	"luxehotel/internal/domains/booking/repository"
	"luxehotel/internal/domains/booking/wizard"
	"luxehotel/shared"
	"luxehotel/shared/cache"
	"luxehotel/shared/constant"
	gDto "luxehotel/shared/dto"
	"luxehotel/shared/failure"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Open(ctx context.Context, req dto.OpenWizardRequest) (dto.WizardStateResponse, error)
	GetState(ctx context.Context, sessionID string) (dto.WizardStateResponse, error)
	UpdateDraft(ctx context.Context, sessionID string, req dto.UpdateDraftRequest) (dto.WizardStateResponse, error)
	Advance(ctx context.Context, sessionID string) (dto.WizardStateResponse, error)
	Retreat(ctx context.Context, sessionID string) (dto.WizardStateResponse, error)
	Submit(ctx context.Context, sessionID string) (dto.SubmitResponse, error)
	Cancel(ctx context.Context, sessionID string) error

	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo    repository.Booking
	factory *wizard.Factory
	cfg     *config.Config
	cache   cache.RedisCache
	media   s3.S3
	otel    otel.Otel

	mu       sync.RWMutex
	sessions map[string]*wizard.Wizard
}

func New(repo repository.Booking, factory *wizard.Factory, cfg *config.Config, cache cache.RedisCache, media s3.S3, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:     repo,
		factory:  factory,
		cfg:      cfg,
		cache:    cache,
		media:    media,
		otel:     otel,
		sessions: make(map[string]*wizard.Wizard),
	}
}

func (s *serviceImpl) Open(ctx context.Context, req dto.OpenWizardRequest) (res dto.WizardStateResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Open")
	defer scope.End()
	defer scope.TraceIfError(err)

	wiz := s.factory.Open(req.RoomID)
	sessionID := uuid.NewString()

	s.mu.Lock()
	s.sessions[sessionID] = wiz
	s.mu.Unlock()

	return s.stateResponse(sessionID, wiz), nil
}

func (s *serviceImpl) GetState(ctx context.Context, sessionID string) (res dto.WizardStateResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetState")
	defer scope.End()
	defer scope.TraceIfError(err)

	wiz, err := s.session(sessionID)
	if err != nil {
		return res, err
	}

	return s.stateResponse(sessionID, wiz), nil
}

func (s *serviceImpl) UpdateDraft(ctx context.Context, sessionID string, req dto.UpdateDraftRequest) (res dto.WizardStateResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateDraft")
	defer scope.End()
	defer scope.TraceIfError(err)

	wiz, err := s.session(sessionID)
	if err != nil {
		return res, err
	}

	patch, err := req.ToPatch()
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	if _, err = wiz.Apply(patch); err != nil {
		return res, err // nolint:wrapcheck
	}

	return s.stateResponse(sessionID, wiz), nil
}

func (s *serviceImpl) Advance(ctx context.Context, sessionID string) (res dto.WizardStateResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Advance")
	defer scope.End()
	defer scope.TraceIfError(err)

	wiz, err := s.session(sessionID)
	if err != nil {
		return res, err
	}

	if err = wiz.Advance(); err != nil {
		return res, err // nolint:wrapcheck
	}

	return s.stateResponse(sessionID, wiz), nil
}

func (s *serviceImpl) Retreat(ctx context.Context, sessionID string) (res dto.WizardStateResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Retreat")
	defer scope.End()
	defer scope.TraceIfError(err)

	wiz, err := s.session(sessionID)
	if err != nil {
		return res, err
	}

	if err = wiz.Retreat(); err != nil {
		return res, err // nolint:wrapcheck
	}

	return s.stateResponse(sessionID, wiz), nil
}

func (s *serviceImpl) Submit(ctx context.Context, sessionID string) (res dto.SubmitResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	wiz, err := s.session(sessionID)
	if err != nil {
		return res, err
	}

	result, err := wiz.Submit(ctx)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	res.FromResult(result)

	go func() {
		c := context.WithoutCancel(ctx)

		s.archiveReceipt(c, result.Record)
		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, sessionID string) (err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	wiz, err := s.session(sessionID)
	if err != nil {
		return err
	}

	wiz.Cancel()

	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) session(sessionID string) (*wizard.Wizard, error) {
	s.mu.RLock()
	wiz, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if !ok {
		return nil, failure.NotFound("booking session not found") // nolint:wrapcheck
	}

	return wiz, nil
}

func (s *serviceImpl) stateResponse(sessionID string, wiz *wizard.Wizard) dto.WizardStateResponse {
	quote, err := wiz.Quote()

	var res dto.WizardStateResponse
	res.FromWizard(sessionID, wiz.Step(), wiz.Draft(), quote, err == nil)

	return res
}

// archiveReceipt keeps a JSON copy of the confirmed record in object
// storage. It is strictly best-effort; the database row is the source
// of truth.
func (s *serviceImpl) archiveReceipt(ctx context.Context, record model.Booking) {
	var receipt dto.BookingResponse
	receipt.FromModel(record)

	data, err := json.Marshal(receipt)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode booking receipt")

		return
	}

	fileName := record.BookingNumber + ".json"
	if _, err := s.media.UploadFileBytes(ctx, s.cfg.External.S3.MediaBucket, s.cfg.External.S3.ReceiptDir, fileName, "application/json", data); err != nil {
		log.Error().Err(err).Str("bookingNumber", record.BookingNumber).Msg("failed to archive booking receipt")
	}
}
