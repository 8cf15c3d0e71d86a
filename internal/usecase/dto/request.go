package dto

// PlacesRequest - запрос на поиск пиццерий.
// Lat/Lng опциональны: без них используется общий центр поиска.
type PlacesRequest struct {
	Lat    *float64 `json:"lat" validate:"omitempty,min=-90,max=90"`
	Lng    *float64 `json:"lng" validate:"omitempty,min=-180,max=180"`
	Radius float64  `json:"radius" validate:"omitempty,min=0.001,max=1"`
}

// CitySearchRequest - запрос на поиск города по названию
type CitySearchRequest struct {
	City string `json:"city" validate:"required"`
}
