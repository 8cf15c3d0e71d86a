package utils

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// ValidateRadius проверяет валидность радиуса в градусах (0.001 - 1.0)
func ValidateRadius(radiusDeg float64) bool {
	return radiusDeg >= 0.001 && radiusDeg <= 1.0
}
