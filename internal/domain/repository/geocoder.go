package repository

import (
	"context"

	"github.com/pizza-hunt-service/internal/domain"
)

// Geocoder - порт к сервису геокодирования (название места -> координаты)
type Geocoder interface {
	// Resolve возвращает координаты и человекочитаемую подпись для запроса.
	// Ноль совпадений - errors.ErrCityNotFound.
	Resolve(ctx context.Context, query string) (*domain.Location, error)
}
