package errors

import "net/http"

var (
	ErrEmptyQuery = New(
		"VALIDATION_ERROR",
		"Search query must not be empty",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"VALIDATION_ERROR",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRadius = New(
		"VALIDATION_ERROR",
		"Invalid radius value",
		http.StatusBadRequest,
	)

	ErrCityNotFound = New(
		"CITY_NOT_FOUND",
		"City not found",
		http.StatusNotFound,
	)

	ErrUpstreamNetwork = New(
		"UPSTREAM_NETWORK_ERROR",
		"Failed to reach upstream service",
		http.StatusBadGateway,
	)

	ErrUpstreamFormat = New(
		"UPSTREAM_FORMAT_ERROR",
		"Upstream service returned an unexpected response",
		http.StatusBadGateway,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
