package domain

import "github.com/google/uuid"

// Stream names
const (
	StreamPlacesSearched = "stream:places:searched"
)

// SearchEvent - событие успешного поиска; публикуется после каждого
// некешированного fetch, чтобы warmup-воркер прогрел соседние области
type SearchEvent struct {
	ID     uuid.UUID `json:"id"`
	Lat    float64   `json:"lat"`
	Lng    float64   `json:"lng"`
	Radius float64   `json:"radius"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
