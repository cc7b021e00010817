package geomath

// Point — координаты точки (WGS84)
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// BBox — прямоугольная область в градусах, используется как грубый
// предварительный фильтр перед точной проверкой расстояния
type BBox struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

// Contains проверяет, попадает ли точка в прямоугольник
func (b BBox) Contains(p Point) bool {
	return p.Lat <= b.North && p.Lat >= b.South && p.Lng <= b.East && p.Lng >= b.West
}
