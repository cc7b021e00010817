package geomath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters_ZeroForSamePoint(t *testing.T) {
	p := Point{Lat: 0, Lng: 0}
	assert.Equal(t, 0.0, DistanceMeters(p, p))

	moscow := Point{Lat: 55.7558, Lng: 37.6173}
	assert.Equal(t, 0.0, DistanceMeters(moscow, moscow))
}

func TestDistanceMeters_Symmetric(t *testing.T) {
	a := Point{Lat: 55.7558, Lng: 37.6173}
	b := Point{Lat: 59.9343, Lng: 30.3351}
	assert.Equal(t, DistanceMeters(a, b), DistanceMeters(b, a))
}

func TestDistanceMeters_OneDegreeAtEquator(t *testing.T) {
	// Один градус дуги при радиусе 6371000 м — это 6371000*pi/180
	d := DistanceMeters(Point{Lat: 0, Lng: 0}, Point{Lat: 0, Lng: 1})
	assert.InDelta(t, 111194.9, d, 1.0)
}

func TestBoundingBox_ContainsCenterAndScales(t *testing.T) {
	center := Point{Lat: 55.7558, Lng: 37.6173}
	box := BoundingBox(center, 1000)

	assert.True(t, box.Contains(center))
	assert.Greater(t, box.North, center.Lat)
	assert.Less(t, box.South, center.Lat)
	assert.Greater(t, box.East, center.Lng)
	assert.Less(t, box.West, center.Lng)

	// На широте Москвы градус долготы короче градуса широты,
	// поэтому рамка по долготе шире
	assert.Greater(t, box.East-box.West, box.North-box.South)
}

func TestBoundingBox_LatDegreeApproximation(t *testing.T) {
	box := BoundingBox(Point{Lat: 0, Lng: 0}, 111320)
	assert.InDelta(t, 1.0, box.North, 1e-9)
	assert.InDelta(t, -1.0, box.South, 1e-9)
	assert.InDelta(t, 1.0, box.East, 1e-9)
	assert.InDelta(t, -1.0, box.West, 1e-9)
}

func TestBoundingBox_ClampsAtPoles(t *testing.T) {
	box := BoundingBox(Point{Lat: 89.9999, Lng: 0}, 100000)
	assert.LessOrEqual(t, box.North, 90.0)
}
