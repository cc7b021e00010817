package geomath

import "math"

const (
	// EarthRadiusMeters — средний радиус Земли
	EarthRadiusMeters = 6371000.0

	// метров в одном градусе широты
	metersPerDegreeLat = 111320.0
)

// DistanceMeters вычисляет расстояние по дуге большого круга (Haversine).
// Симметрично: DistanceMeters(a, b) == DistanceMeters(b, a).
func DistanceMeters(a, b Point) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Lat*math.Pi/180)*math.Cos(b.Lat*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusMeters * c
}

// BoundingBox строит прямоугольник вокруг точки по линейной аппроксимации
// (1 градус широты ~ 111320 м, долгота масштабируется на cos(lat)).
// Это только предварительный фильтр: на высоких широтах и радиусах, сильно
// превышающих масштаб города, рамка неточна, и вызывающий код обязан
// дополнительно проверять точное расстояние.
func BoundingBox(center Point, radiusMeters float64) BBox {
	dLat := radiusMeters / metersPerDegreeLat

	cosLat := math.Cos(center.Lat * math.Pi / 180)
	if cosLat < 1e-9 {
		cosLat = 1e-9 // у полюсов рамка вырождается в полный круг долгот
	}
	dLng := radiusMeters / (metersPerDegreeLat * cosLat)

	return BBox{
		North: clampLat(center.Lat + dLat),
		South: clampLat(center.Lat - dLat),
		East:  center.Lng + dLng,
		West:  center.Lng - dLng,
	}
}
