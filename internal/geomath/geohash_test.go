package geomath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeGeohash_KnownValue(t *testing.T) {
	// Классический пример: маяк в Скагене
	hash := EncodeGeohash(57.64911, 10.40744, 7)
	assert.Equal(t, "u4pruyd", hash)
}

func TestEncodeGeohash_Deterministic(t *testing.T) {
	first := EncodeGeohash(55.7558, 37.6173, 7)
	second := EncodeGeohash(55.7558, 37.6173, 7)
	assert.Equal(t, first, second)
	assert.Len(t, first, 7)
}

func TestEncodeGeohash_DefaultPrecision(t *testing.T) {
	hash := EncodeGeohash(0, 0, 0)
	assert.Len(t, hash, DefaultGeohashPrecision)
}

func TestDecodeGeohash_LossyRoundTrip(t *testing.T) {
	lat, lng := 55.7558, 37.6173
	hash := EncodeGeohash(lat, lng, 7)

	decodedLat, decodedLng, err := DecodeGeohash(hash)
	require.NoError(t, err)

	// Точность 7 символов — ячейка ~153 м, центр ячейки лежит не дальше
	// её полудиагонали от исходной точки
	assert.InDelta(t, lat, decodedLat, 0.002)
	assert.InDelta(t, lng, decodedLng, 0.002)

	// Центр ячейки кодируется обратно в ту же ячейку
	assert.Equal(t, hash, EncodeGeohash(decodedLat, decodedLng, 7))
}

func TestDecodeGeohash_Invalid(t *testing.T) {
	_, _, err := DecodeGeohash("")
	assert.Error(t, err)

	// 'a' не входит в алфавит geohash base32
	_, _, err = DecodeGeohash("u4pruya")
	assert.Error(t, err)
}

func TestNeighbors_OrderAndDirections(t *testing.T) {
	hash := EncodeGeohash(55.7558, 37.6173, 7)
	neighbors, err := Neighbors(hash)
	require.NoError(t, err)
	// У внутренней ячейки ровно восемь соседей
	require.Len(t, neighbors, 8)

	centerLat, centerLng, err := DecodeGeohash(hash)
	require.NoError(t, err)

	seen := map[string]bool{hash: true}
	for _, n := range neighbors {
		assert.Len(t, n, 7)
		assert.False(t, seen[n], "neighbors must be distinct cells")
		seen[n] = true
	}

	// Порядок фиксирован: N, NE, E, SE, S, SW, W, NW
	wantLatSign := [8]int{1, 1, 0, -1, -1, -1, 0, 1}
	wantLngSign := [8]int{0, 1, 1, 1, 0, -1, -1, -1}
	for i, n := range neighbors {
		nLat, nLng, err := DecodeGeohash(n)
		require.NoError(t, err)
		assert.Equal(t, wantLatSign[i], sign(nLat-centerLat), "neighbor %d latitude direction", i)
		assert.Equal(t, wantLngSign[i], sign(nLng-centerLng), "neighbor %d longitude direction", i)
	}
}

func TestNeighbors_PolarRow(t *testing.T) {
	// Ячейки за полюсом не существуют: у приполюсного ряда меньше восьми
	// соседей, сама ячейка и дубликаты в результат не попадают
	for _, lat := range []float64{89.999, -89.999} {
		hash := EncodeGeohash(lat, 37.6173, 5)
		neighbors, err := Neighbors(hash)
		require.NoError(t, err)

		// N, NE и NW (или S, SE и SW на южном полюсе) пропущены
		assert.Len(t, neighbors, 5)

		seen := map[string]bool{hash: true}
		for _, n := range neighbors {
			assert.False(t, seen[n], "polar neighbors must be distinct cells")
			seen[n] = true
		}
	}
}

func TestNeighbors_InvalidHash(t *testing.T) {
	_, err := Neighbors("")
	assert.Error(t, err)
}

func sign(v float64) int {
	const eps = 1e-9
	switch {
	case v > eps:
		return 1
	case v < -eps:
		return -1
	default:
		return 0
	}
}
