package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/hotel/model"
	"hotel/internal/domains/hotel/model/dto"
	"hotel/internal/domains/hotel/repository"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"

	"github.com/rs/zerolog/log"
)

type Hotel interface {
	GetNearby(ctx context.Context, req dto.NearbyRequest) ([]dto.HotelResponse, error)
}

const cacheGetAllHotel = "hotel:get_all"

type serviceImpl struct {
	repo  repository.Hotel
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Hotel, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Hotel {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// GetNearby returns every hotel strictly closer than constant.NearbyRadius, in hotel id order.
func (s *serviceImpl) GetNearby(ctx context.Context, req dto.NearbyRequest) (res []dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetNearby")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	hotels, err := s.getAll(ctx)
	if err != nil {
		return nil, err
	}

	res = []dto.HotelResponse{}

	for _, hotel := range hotels {
		var hotelRes dto.HotelResponse

		hotelRes.FromModel(hotel, req)

		if hotelRes.Distance < constant.NearbyRadius {
			res = append(res, hotelRes)
		}
	}

	return res, nil
}

// getAll loads every hotel location. Hotels are never modified from the
// console, so the list is served from cache until it expires.
func (s *serviceImpl) getAll(ctx context.Context) ([]model.Hotel, error) {
	var hotels []model.Hotel

	if err := s.cache.Get(ctx, cacheGetAllHotel, &hotels); err == nil {
		log.Debug().Str("cacheKey", cacheGetAllHotel).Msg("cache hit for hotels")

		return hotels, nil
	}

	params := gDto.QueryParams{SortBy: model.FieldID, SortDir: gDto.SortDirAsc}

	hotels, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{},
		model.FieldID, model.FieldName, model.FieldLatitude, model.FieldLongitude)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotels")

		return nil, fmt.Errorf("failed to get hotels: %w", err)
	}

	if err := s.cache.Save(ctx, cacheGetAllHotel, hotels, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save hotels to cache")
	}

	return hotels, nil
}
