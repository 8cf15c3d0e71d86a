package overpass

import (
	"strconv"
	"strings"

	"github.com/pizza-hunt-service/internal/domain"
)

type overpassElement struct {
	ID     int64    `json:"id"`
	Type   string   `json:"type"`
	Lat    *float64 `json:"lat,omitempty"`
	Lon    *float64 `json:"lon,omitempty"`
	Center *struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"center,omitempty"`
	Tags map[string]string `json:"tags,omitempty"`
}

// normalizeElement переводит сырой элемент Overpass в domain.Place.
// Возвращает false, если координаты невозможно определить ни напрямую,
// ни через центр площадного объекта.
func normalizeElement(el overpassElement) (domain.Place, bool) {
	var lat, lng float64
	switch {
	case el.Lat != nil && el.Lon != nil:
		lat, lng = *el.Lat, *el.Lon
	case el.Center != nil:
		lat, lng = el.Center.Lat, el.Center.Lon
	default:
		return domain.Place{}, false
	}

	tags := el.Tags
	if tags == nil {
		tags = map[string]string{}
	}

	name := tags["name"]
	if name == "" {
		name = "Pizza Place"
	}

	cuisine := tags["cuisine"]
	if cuisine == "" {
		cuisine = "pizza"
	}

	amenity := tags["amenity"]
	if amenity == "" {
		amenity = tags["shop"]
	}
	if amenity == "" {
		amenity = "restaurant"
	}

	return domain.Place{
		ID:           el.ID,
		Lat:          lat,
		Lng:          lng,
		Name:         name,
		Cuisine:      cuisine,
		Amenity:      amenity,
		Phone:        tags["phone"],
		Website:      tags["website"],
		Address:      buildAddress(tags),
		OpeningHours: tags["opening_hours"],
		Takeaway:     tags["takeaway"],
		Delivery:     tags["delivery"],
		Rating:       extractRating(tags),
	}, true
}

// buildAddress собирает адрес из addr:* тегов в порядке
// номер дома, улица, город; без тегов возвращает пустую строку
func buildAddress(tags map[string]string) string {
	parts := make([]string, 0, 3)
	if v := tags["addr:housenumber"]; v != "" {
		parts = append(parts, v)
	}
	if v := tags["addr:street"]; v != "" {
		parts = append(parts, v)
	}
	if v := tags["addr:city"]; v != "" {
		parts = append(parts, v)
	}
	return strings.Join(parts, ", ")
}

// extractRating парсит числовой тег rating; невалидное значение игнорируется
func extractRating(tags map[string]string) *float64 {
	raw := tags["rating"]
	if raw == "" {
		return nil
	}
	rating, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &rating
}
