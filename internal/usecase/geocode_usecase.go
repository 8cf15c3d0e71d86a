package usecase

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pizza-hunt-service/internal/domain"
	"github.com/pizza-hunt-service/internal/domain/repository"
	"github.com/pizza-hunt-service/internal/pkg/errors"
)

// GeocodeUseCase - use case для разрешения названия места в координаты
type GeocodeUseCase struct {
	geocoder  repository.Geocoder
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	cacheTTL  time.Duration
}

// NewGeocodeUseCase - создание нового GeocodeUseCase
func NewGeocodeUseCase(
	geocoder repository.Geocoder,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *GeocodeUseCase {
	return &GeocodeUseCase{
		geocoder:  geocoder,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// Resolve - геокодирование текстового запроса.
// Пустой или пробельный запрос отклоняется до любого сетевого вызова.
func (uc *GeocodeUseCase) Resolve(ctx context.Context, query string) (*domain.Location, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.ErrEmptyQuery
	}

	// Кеш: ошибки кеша деградируют до прямого запроса
	if cached, err := uc.cacheRepo.GetLocation(ctx, query); err == nil && cached != nil {
		return cached, nil
	}

	loc, err := uc.geocoder.Resolve(ctx, query)
	if err != nil {
		if err != errors.ErrCityNotFound {
			uc.logger.Error("Failed to resolve location", zap.String("query", query), zap.Error(err))
		}
		return nil, err
	}

	// not-found не кешируется, успешные ответы - да
	if err := uc.cacheRepo.SetLocation(ctx, query, loc, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache location", zap.String("query", query), zap.Error(err))
	}

	return loc, nil
}
