package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/pizza-hunt-service/internal/pkg/errors"
	"github.com/pizza-hunt-service/internal/pkg/utils"
	"github.com/pizza-hunt-service/internal/pkg/validator"
	"github.com/pizza-hunt-service/internal/usecase"
	"github.com/pizza-hunt-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// PlaceHandler - обработчик запросов поиска пиццерий
type PlaceHandler struct {
	placeUC *usecase.PlaceUseCase
	logger  *zap.Logger
}

// NewPlaceHandler - создание нового PlaceHandler
func NewPlaceHandler(placeUC *usecase.PlaceUseCase, logger *zap.Logger) *PlaceHandler {
	return &PlaceHandler{
		placeUC: placeUC,
		logger:  logger,
	}
}

// GetPizzaPlaces godoc
// @Summary Поиск пиццерий вокруг точки
// @Description Возвращает нормализованный список пиццерий в прямоугольнике center ± radius. Без lat/lng используется текущий общий центр поиска; переданные координаты становятся новым центром.
// @Tags Places
// @Produce json
// @Param lat query number false "Широта центра (-90..90)"
// @Param lng query number false "Долгота центра (-180..180)"
// @Param radius query number false "Радиус в градусах (0.001..1.0)" default(0.05)
// @Success 200 {object} dto.PlacesResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/pizza-places [get]
func (h *PlaceHandler) GetPizzaPlaces(c *fiber.Ctx) error {
	var req dto.PlacesRequest

	lat, ok, err := parseFloatQuery(c, "lat")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}
	if ok {
		req.Lat = &lat
	}

	lng, ok, err := parseFloatQuery(c, "lng")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}
	if ok {
		req.Lng = &lng
	}

	// lat и lng передаются только парой
	if (req.Lat == nil) != (req.Lng == nil) {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}

	radius, ok, err := parseFloatQuery(c, "radius")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRadius)
	}
	if ok {
		req.Radius = radius
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.placeUC.FetchPlaces(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(result)
}

// SearchCity godoc
// @Summary Поиск города по названию
// @Description Геокодирует название города и выполняет ровно один поиск пиццерий вокруг найденных координат. Найденный город становится новым центром поиска.
// @Tags Places
// @Produce json
// @Param city query string true "Название города"
// @Success 200 {object} dto.CitySearchResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/search-city [get]
func (h *PlaceHandler) SearchCity(c *fiber.Ctx) error {
	req := dto.CitySearchRequest{
		City: c.Query("city"),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrEmptyQuery)
	}

	result, err := h.placeUC.SearchByCity(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(result)
}

// parseFloatQuery возвращает (значение, присутствует ли параметр, ошибка парсинга)
func parseFloatQuery(c *fiber.Ctx, name string) (float64, bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}
