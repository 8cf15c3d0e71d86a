package domain

type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// BoundingBox - прямоугольная область поиска.
// Считается простым смещением в градусах от центра, без геодезии -
// на городском масштабе погрешность несущественна.
type BoundingBox struct {
	South float64 `json:"south"`
	West  float64 `json:"west"`
	North float64 `json:"north"`
	East  float64 `json:"east"`
}

// NewBoundingBox строит bbox как center ± radius по каждой оси
func NewBoundingBox(center Point, radiusDeg float64) BoundingBox {
	return BoundingBox{
		South: center.Lat - radiusDeg,
		West:  center.Lng - radiusDeg,
		North: center.Lat + radiusDeg,
		East:  center.Lng + radiusDeg,
	}
}

// Place - нормализованная точка интереса (пиццерия).
// Все поля кроме координат деградируют до безопасных значений по умолчанию;
// запись без координат в выдачу не попадает вовсе.
type Place struct {
	ID           int64    `json:"id"`
	Lat          float64  `json:"lat"`
	Lng          float64  `json:"lng"`
	Name         string   `json:"name"`
	Cuisine      string   `json:"cuisine"`
	Amenity      string   `json:"amenity"`
	Phone        string   `json:"phone"`
	Website      string   `json:"website"`
	Address      string   `json:"address"`
	OpeningHours string   `json:"opening_hours"`
	Takeaway     string   `json:"takeaway"`
	Delivery     string   `json:"delivery"`
	Rating       *float64 `json:"rating"`
}

// Location - результат геокодирования текстового запроса
type Location struct {
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Label string  `json:"label"`
}
