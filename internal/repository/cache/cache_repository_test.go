package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pizza-hunt-service/internal/domain"
)

func TestPlacesKey(t *testing.T) {
	key := PlacesKey(domain.Point{Lat: 40.7589, Lng: -73.9851}, 0.05)
	assert.Equal(t, "places:40.7589:-73.9851:0.050", key)

	// близкие центры округляются в один и тот же ключ
	a := PlacesKey(domain.Point{Lat: 40.75891, Lng: -73.98512}, 0.05)
	b := PlacesKey(domain.Point{Lat: 40.75893, Lng: -73.98508}, 0.05)
	assert.Equal(t, a, b)

	// разный радиус - разные записи
	assert.NotEqual(t,
		PlacesKey(domain.Point{Lat: 40.7589, Lng: -73.9851}, 0.05),
		PlacesKey(domain.Point{Lat: 40.7589, Lng: -73.9851}, 0.1),
	)
}

func TestLocationKey(t *testing.T) {
	assert.Equal(t, "geocode:berlin", LocationKey("Berlin"))
	assert.Equal(t, "geocode:new york", LocationKey("  New York  "))
	assert.Equal(t, LocationKey("PARIS"), LocationKey("paris"))
}
