package repository

import (
	"context"
	"time"

	"github.com/pizza-hunt-service/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// GetPlaces получает закешированный результат поиска пиццерий
	GetPlaces(ctx context.Context, center domain.Point, radiusDeg float64) ([]domain.Place, error)

	// SetPlaces сохраняет результат поиска пиццерий
	SetPlaces(ctx context.Context, center domain.Point, radiusDeg float64, places []domain.Place, ttl time.Duration) error

	// GetLocation получает закешированный результат геокодирования
	GetLocation(ctx context.Context, query string) (*domain.Location, error)

	// SetLocation сохраняет результат геокодирования
	SetLocation(ctx context.Context, query string, loc *domain.Location, ttl time.Duration) error
}
