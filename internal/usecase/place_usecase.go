package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pizza-hunt-service/internal/domain"
	"github.com/pizza-hunt-service/internal/domain/repository"
	"github.com/pizza-hunt-service/internal/pkg/errors"
	"github.com/pizza-hunt-service/internal/pkg/utils"
	"github.com/pizza-hunt-service/internal/usecase/dto"
)

// PlaceUseCase - use case поиска пиццерий: валидация, кеш, запрос к
// upstream-источнику и обновление общего центра поиска
type PlaceUseCase struct {
	source        repository.PlaceSource
	cacheRepo     repository.CacheRepository
	streamRepo    repository.StreamRepository
	geocodeUC     *GeocodeUseCase
	center        *domain.SearchCenter
	logger        *zap.Logger
	cacheTTL      time.Duration
	defaultRadius float64
}

// NewPlaceUseCase - создание нового PlaceUseCase.
// streamRepo может быть nil - тогда события поиска не публикуются.
func NewPlaceUseCase(
	source repository.PlaceSource,
	cacheRepo repository.CacheRepository,
	streamRepo repository.StreamRepository,
	geocodeUC *GeocodeUseCase,
	center *domain.SearchCenter,
	logger *zap.Logger,
	cacheTTL time.Duration,
	defaultRadius float64,
) *PlaceUseCase {
	return &PlaceUseCase{
		source:        source,
		cacheRepo:     cacheRepo,
		streamRepo:    streamRepo,
		geocodeUC:     geocodeUC,
		center:        center,
		logger:        logger,
		cacheTTL:      cacheTTL,
		defaultRadius: defaultRadius,
	}
}

// FetchPlaces - поиск пиццерий вокруг явных координат или общего центра.
// Явные координаты после валидации становятся новым центром поиска.
func (uc *PlaceUseCase) FetchPlaces(ctx context.Context, req dto.PlacesRequest) (*dto.PlacesResponse, error) {
	radius := req.Radius
	if radius == 0 {
		radius = uc.defaultRadius
	}
	if !utils.ValidateRadius(radius) {
		return nil, errors.ErrInvalidRadius
	}

	var center domain.Point
	if req.Lat != nil && req.Lng != nil {
		if !utils.ValidateCoordinates(*req.Lat, *req.Lng) {
			return nil, errors.ErrInvalidCoordinates
		}
		center = domain.Point{Lat: *req.Lat, Lng: *req.Lng}
		uc.center.Set(center)
	} else {
		center = uc.center.Get()
	}

	places, err := uc.fetchAt(ctx, center, radius)
	if err != nil {
		return nil, err
	}

	return &dto.PlacesResponse{
		Success: true,
		Count:   len(places),
		Center:  center,
		Places:  places,
	}, nil
}

// SearchByCity - поиск города и ровно один последующий поиск пиццерий
// вокруг него; успешное геокодирование заменяет общий центр
func (uc *PlaceUseCase) SearchByCity(ctx context.Context, req dto.CitySearchRequest) (*dto.CitySearchResponse, error) {
	loc, err := uc.geocodeUC.Resolve(ctx, req.City)
	if err != nil {
		return nil, err
	}

	center := domain.Point{Lat: loc.Lat, Lng: loc.Lng}
	uc.center.Set(center)

	places, err := uc.fetchAt(ctx, center, uc.defaultRadius)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("City search completed",
		zap.String("city", loc.Label),
		zap.Int("places", len(places)))

	return &dto.CitySearchResponse{
		Success: true,
		City:    loc.Label,
		Lat:     loc.Lat,
		Lng:     loc.Lng,
		Count:   len(places),
		Places:  places,
	}, nil
}

// Prefetch - прогрев кеша для заданной области; не трогает общий центр
// и не публикует событий, иначе warmup-воркер зациклил бы сам себя
func (uc *PlaceUseCase) Prefetch(ctx context.Context, center domain.Point, radiusDeg float64) error {
	if cached, err := uc.cacheRepo.GetPlaces(ctx, center, radiusDeg); err == nil && cached != nil {
		return nil // уже тёплый
	}

	places, err := uc.source.FetchPlaces(ctx, center, radiusDeg)
	if err != nil {
		return err
	}

	return uc.cacheRepo.SetPlaces(ctx, center, radiusDeg, places, uc.cacheTTL)
}

// fetchAt - единичный fetch: кеш -> источник -> кеш -> событие поиска
func (uc *PlaceUseCase) fetchAt(ctx context.Context, center domain.Point, radiusDeg float64) ([]domain.Place, error) {
	if cached, err := uc.cacheRepo.GetPlaces(ctx, center, radiusDeg); err == nil && cached != nil {
		return cached, nil
	} else if err != nil {
		uc.logger.Warn("Places cache read failed", zap.Error(err))
	}

	places, err := uc.source.FetchPlaces(ctx, center, radiusDeg)
	if err != nil {
		uc.logger.Error("Failed to fetch places",
			zap.Float64("lat", center.Lat),
			zap.Float64("lng", center.Lng),
			zap.Error(err))
		return nil, err
	}

	if err := uc.cacheRepo.SetPlaces(ctx, center, radiusDeg, places, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache places", zap.Error(err))
	}

	uc.publishSearchEvent(ctx, center, radiusDeg)

	return places, nil
}

func (uc *PlaceUseCase) publishSearchEvent(ctx context.Context, center domain.Point, radiusDeg float64) {
	if uc.streamRepo == nil {
		return
	}

	event := domain.SearchEvent{
		ID:     uuid.New(),
		Lat:    center.Lat,
		Lng:    center.Lng,
		Radius: radiusDeg,
	}

	if err := uc.streamRepo.PublishToStream(ctx, domain.StreamPlacesSearched, event); err != nil {
		// событие best-effort: поиск от него не зависит
		uc.logger.Warn("Failed to publish search event", zap.Error(err))
	}
}
