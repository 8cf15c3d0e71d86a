package overpass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAddress(t *testing.T) {
	t.Run("all components in order", func(t *testing.T) {
		tags := map[string]string{
			"addr:housenumber": "10",
			"addr:street":      "Main St",
			"addr:city":        "Springfield",
		}
		assert.Equal(t, "10, Main St, Springfield", buildAddress(tags))
	})

	t.Run("only city", func(t *testing.T) {
		tags := map[string]string{"addr:city": "Springfield"}
		assert.Equal(t, "Springfield", buildAddress(tags))
	})

	t.Run("no components", func(t *testing.T) {
		assert.Equal(t, "", buildAddress(map[string]string{}))
	})

	t.Run("housenumber and city without street", func(t *testing.T) {
		tags := map[string]string{
			"addr:housenumber": "10",
			"addr:city":        "Springfield",
		}
		assert.Equal(t, "10, Springfield", buildAddress(tags))
	})
}

func TestExtractRating(t *testing.T) {
	t.Run("valid rating", func(t *testing.T) {
		rating := extractRating(map[string]string{"rating": "4.5"})
		require.NotNil(t, rating)
		assert.Equal(t, 4.5, *rating)
	})

	t.Run("invalid rating ignored", func(t *testing.T) {
		assert.Nil(t, extractRating(map[string]string{"rating": "great"}))
	})

	t.Run("missing rating", func(t *testing.T) {
		assert.Nil(t, extractRating(map[string]string{}))
	})
}

func TestNormalizeElement(t *testing.T) {
	lat, lon := 40.7128, -74.0060

	t.Run("node with direct coordinates", func(t *testing.T) {
		el := overpassElement{
			ID:  123,
			Lat: &lat,
			Lon: &lon,
			Tags: map[string]string{
				"name":          "Tony's Pizza",
				"amenity":       "restaurant",
				"cuisine":       "pizza;italian",
				"phone":         "+1-212-555-0100",
				"website":       "https://tonys.example",
				"opening_hours": "Mo-Su 11:00-23:00",
				"takeaway":      "yes",
				"delivery":      "no",
			},
		}

		place, ok := normalizeElement(el)
		require.True(t, ok)
		assert.Equal(t, int64(123), place.ID)
		assert.Equal(t, lat, place.Lat)
		assert.Equal(t, lon, place.Lng)
		assert.Equal(t, "Tony's Pizza", place.Name)
		assert.Equal(t, "restaurant", place.Amenity)
		assert.Equal(t, "pizza;italian", place.Cuisine)
		assert.Equal(t, "yes", place.Takeaway)
		assert.Equal(t, "no", place.Delivery)
	})

	t.Run("way falls back to center", func(t *testing.T) {
		el := overpassElement{
			ID:   456,
			Type: "way",
			Center: &struct {
				Lat float64 `json:"lat"`
				Lon float64 `json:"lon"`
			}{Lat: 41.0, Lon: 2.0},
		}

		place, ok := normalizeElement(el)
		require.True(t, ok)
		assert.Equal(t, 41.0, place.Lat)
		assert.Equal(t, 2.0, place.Lng)
	})

	t.Run("element without coordinates is dropped", func(t *testing.T) {
		el := overpassElement{
			ID:   789,
			Tags: map[string]string{"name": "Ghost Pizza"},
		}

		_, ok := normalizeElement(el)
		assert.False(t, ok)
	})

	t.Run("missing tags degrade to defaults", func(t *testing.T) {
		el := overpassElement{ID: 1, Lat: &lat, Lon: &lon}

		place, ok := normalizeElement(el)
		require.True(t, ok)
		assert.Equal(t, "Pizza Place", place.Name)
		assert.Equal(t, "restaurant", place.Amenity)
		assert.Equal(t, "pizza", place.Cuisine)
		assert.Equal(t, "", place.Address)
		assert.Equal(t, "", place.Phone)
		assert.Equal(t, "", place.Website)
		assert.Equal(t, "", place.OpeningHours)
		assert.Nil(t, place.Rating)
	})

	t.Run("shop tag used when amenity missing", func(t *testing.T) {
		el := overpassElement{
			ID:  2,
			Lat: &lat,
			Lon: &lon,
			Tags: map[string]string{
				"shop":    "food",
				"cuisine": "pizza",
			},
		}

		place, ok := normalizeElement(el)
		require.True(t, ok)
		assert.Equal(t, "food", place.Amenity)
	})
}
