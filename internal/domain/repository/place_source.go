package repository

import (
	"context"

	"github.com/pizza-hunt-service/internal/domain"
)

// PlaceSource - порт к upstream-сервису точек интереса.
// Реализация выбирается один раз при старте по конфигурации
// (Overpass или структурный places API), не per-request.
type PlaceSource interface {
	// FetchPlaces возвращает нормализованный список пиццерий вокруг центра.
	// Пустой список - валидный результат, не ошибка.
	FetchPlaces(ctx context.Context, center domain.Point, radiusDeg float64) ([]domain.Place, error)
}
