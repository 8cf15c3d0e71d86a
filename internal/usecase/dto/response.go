package dto

import "github.com/pizza-hunt-service/internal/domain"

// PlacesResponse - конверт ответа на поиск пиццерий
type PlacesResponse struct {
	Success bool           `json:"success"`
	Count   int            `json:"count"`
	Center  domain.Point   `json:"center"`
	Places  []domain.Place `json:"places"`
}

// CitySearchResponse - конверт ответа на поиск города;
// включает результат одного последующего поиска пиццерий вокруг него
type CitySearchResponse struct {
	Success bool           `json:"success"`
	City    string         `json:"city"`
	Lat     float64        `json:"lat"`
	Lng     float64        `json:"lng"`
	Count   int            `json:"count"`
	Places  []domain.Place `json:"places"`
}
