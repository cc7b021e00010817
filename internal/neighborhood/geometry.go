package neighborhood

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/jtalface/open-government-platform/internal/geomath"
)

// ring — замкнутая последовательность точек полигона
type ring []geomath.Point

// polygon — кольца по соглашению GeoJSON: первое кольцо внешнее,
// остальные — дыры
type polygon struct {
	rings []ring
	bbox  geomath.BBox
}

// geoJSONGeometry — минимальная структура для разбора Polygon/MultiPolygon
type geoJSONGeometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// parseGeometry разбирает GeoJSON геометрию района.
// Поддерживаются только Polygon и MultiPolygon; всё остальное, как и кольца
// меньше чем из четырёх позиций, считается ошибкой качества данных.
func parseGeometry(raw json.RawMessage) ([]polygon, error) {
	var geom geoJSONGeometry
	if err := json.Unmarshal(raw, &geom); err != nil {
		return nil, fmt.Errorf("%w: invalid GeoJSON: %v", ErrMalformedGeometry, err)
	}

	switch geom.Type {
	case "Polygon":
		var coords [][][2]float64
		if err := json.Unmarshal(geom.Coordinates, &coords); err != nil {
			return nil, fmt.Errorf("%w: invalid polygon coordinates: %v", ErrMalformedGeometry, err)
		}
		poly, err := buildPolygon(coords)
		if err != nil {
			return nil, err
		}
		return []polygon{poly}, nil
	case "MultiPolygon":
		var coords [][][][2]float64
		if err := json.Unmarshal(geom.Coordinates, &coords); err != nil {
			return nil, fmt.Errorf("%w: invalid multipolygon coordinates: %v", ErrMalformedGeometry, err)
		}
		if len(coords) == 0 {
			return nil, fmt.Errorf("%w: empty multipolygon", ErrMalformedGeometry)
		}
		polys := make([]polygon, 0, len(coords))
		for _, pc := range coords {
			poly, err := buildPolygon(pc)
			if err != nil {
				return nil, err
			}
			polys = append(polys, poly)
		}
		return polys, nil
	default:
		return nil, fmt.Errorf("%w: unsupported geometry type %q", ErrMalformedGeometry, geom.Type)
	}
}

func buildPolygon(coords [][][2]float64) (polygon, error) {
	if len(coords) == 0 {
		return polygon{}, fmt.Errorf("%w: polygon without rings", ErrMalformedGeometry)
	}

	poly := polygon{rings: make([]ring, 0, len(coords))}
	for _, rc := range coords {
		// GeoJSON кольцо замкнуто, минимум 4 позиции
		if len(rc) < 4 {
			return polygon{}, fmt.Errorf("%w: ring with %d positions", ErrMalformedGeometry, len(rc))
		}
		// Незамкнутое кольцо молча теряет последний сегмент при расчете
		// расстояния до границы, поэтому отклоняется как испорченные данные
		if rc[0] != rc[len(rc)-1] {
			return polygon{}, fmt.Errorf("%w: ring is not closed", ErrMalformedGeometry)
		}
		r := make(ring, 0, len(rc))
		for _, pos := range rc {
			// Позиция GeoJSON: [lng, lat]
			r = append(r, geomath.Point{Lat: pos[1], Lng: pos[0]})
		}
		poly.rings = append(poly.rings, r)
	}

	poly.bbox = ringBBox(poly.rings[0])
	return poly, nil
}

func ringBBox(r ring) geomath.BBox {
	b := geomath.BBox{North: -90, South: 90, East: -180, West: 180}
	for _, p := range r {
		b.North = math.Max(b.North, p.Lat)
		b.South = math.Min(b.South, p.Lat)
		b.East = math.Max(b.East, p.Lng)
		b.West = math.Min(b.West, p.Lng)
	}
	return b
}

// contains проверяет попадание точки в полигон: внешнее кольцо должно
// содержать точку, дыры — нет
func (p polygon) contains(pt geomath.Point) bool {
	if !p.bbox.Contains(pt) {
		return false
	}
	if !pointInRing(pt, p.rings[0]) {
		return false
	}
	for i := 1; i < len(p.rings); i++ {
		if pointInRing(pt, p.rings[i]) {
			return false
		}
	}
	return true
}

// pointInRing — классический луч (even-odd).
// На самой границе из-за плавающей точки результат неустойчив, поэтому
// вызов корректно сочетать с distanceMeters как стабилизатором.
func pointInRing(pt geomath.Point, r ring) bool {
	n := len(r)
	if n < 3 {
		return false
	}
	inside := false
	x, y := pt.Lng, pt.Lat
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := r[i].Lng, r[i].Lat
		xj, yj := r[j].Lng, r[j].Lat
		intersect := ((yi > y) != (yj > y)) &&
			(x < (xj-xi)*(y-yi)/(yj-yi+1e-12)+xi)
		if intersect {
			inside = !inside
		}
	}
	return inside
}

// distanceMeters — расстояние от точки до полигона: 0 внутри, иначе минимум
// по всем сегментам всех колец. Расстояние до границы, а не до центроида,
// чтобы большие неправильные районы не проигрывали маленьким.
func (p polygon) distanceMeters(pt geomath.Point) float64 {
	if p.contains(pt) {
		return 0
	}
	best := math.MaxFloat64
	for _, r := range p.rings {
		for i := 0; i < len(r)-1; i++ {
			d := segmentDistanceMeters(pt, r[i], r[i+1])
			if d < best {
				best = d
			}
		}
	}
	return best
}

// segmentDistanceMeters — расстояние от точки до отрезка в локальной
// равнопромежуточной проекции вокруг точки запроса; на городских масштабах
// погрешность пренебрежима
func segmentDistanceMeters(pt, a, b geomath.Point) float64 {
	cosLat := math.Cos(pt.Lat * math.Pi / 180)
	project := func(p geomath.Point) (x, y float64) {
		return (p.Lng - pt.Lng) * 111320 * cosLat, (p.Lat - pt.Lat) * 111320
	}

	ax, ay := project(a)
	bx, by := project(b)

	dx, dy := bx-ax, by-ay
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(ax, ay)
	}

	// Проекция начала координат (точки запроса) на отрезок
	t := -(ax*dx + ay*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(ax+t*dx, ay+t*dy)
}
