package domain

import "sync"

// SearchCenter - общий для всего процесса центр поиска.
// Каждое успешное геокодирование или явная передача координат атомарно
// заменяет центр; fetch без явных координат читает его. Обновления идут
// без какого-либо fencing: при конкурентных запросах побеждает тот, чья
// запись пришла последней, как и в исходном однопоточном поведении.
type SearchCenter struct {
	mu    sync.RWMutex
	point Point
}

func NewSearchCenter(fallback Point) *SearchCenter {
	return &SearchCenter{point: fallback}
}

func (c *SearchCenter) Get() Point {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.point
}

func (c *SearchCenter) Set(p Point) {
	c.mu.Lock()
	c.point = p
	c.mu.Unlock()
}
