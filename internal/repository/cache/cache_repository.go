package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/pizza-hunt-service/internal/domain"
	"github.com/pizza-hunt-service/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

// PlacesKey - ключ кеша результатов поиска; координаты округляются,
// чтобы близкие центры попадали в одну запись
func PlacesKey(center domain.Point, radiusDeg float64) string {
	return fmt.Sprintf("places:%.4f:%.4f:%.3f", center.Lat, center.Lng, radiusDeg)
}

// LocationKey - ключ кеша геокодирования
func LocationKey(query string) string {
	return "geocode:" + strings.ToLower(strings.TrimSpace(query))
}

func (r *cacheRepository) GetPlaces(ctx context.Context, center domain.Point, radiusDeg float64) ([]domain.Place, error) {
	data, err := r.Get(ctx, PlacesKey(center, radiusDeg))
	if err != nil || data == nil {
		return nil, err
	}

	var places []domain.Place
	if err := json.Unmarshal(data, &places); err != nil {
		r.logger.Warn("Failed to unmarshal cached places", zap.Error(err))
		return nil, nil // трактуем битую запись как cache miss
	}
	return places, nil
}

func (r *cacheRepository) SetPlaces(ctx context.Context, center domain.Point, radiusDeg float64, places []domain.Place, ttl time.Duration) error {
	data, err := json.Marshal(places)
	if err != nil {
		return fmt.Errorf("failed to marshal places: %w", err)
	}
	return r.Set(ctx, PlacesKey(center, radiusDeg), data, ttl)
}

func (r *cacheRepository) GetLocation(ctx context.Context, query string) (*domain.Location, error) {
	data, err := r.Get(ctx, LocationKey(query))
	if err != nil || data == nil {
		return nil, err
	}

	var loc domain.Location
	if err := json.Unmarshal(data, &loc); err != nil {
		r.logger.Warn("Failed to unmarshal cached location", zap.Error(err))
		return nil, nil
	}
	return &loc, nil
}

func (r *cacheRepository) SetLocation(ctx context.Context, query string, loc *domain.Location, ttl time.Duration) error {
	data, err := json.Marshal(loc)
	if err != nil {
		return fmt.Errorf("failed to marshal location: %w", err)
	}
	return r.Set(ctx, LocationKey(query), data, ttl)
}
