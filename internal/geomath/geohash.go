package geomath

import (
	"fmt"
	"strings"
)

// DefaultGeohashPrecision — 7 символов, ячейка примерно 153x153 метра
const DefaultGeohashPrecision = 7

var geohashBase32 = []rune("0123456789bcdefghjkmnpqrstuvwxyz")

// EncodeGeohash кодирует координаты в base32 geohash заданной точности.
// Результат детерминирован: одинаковые координаты всегда дают одну строку.
func EncodeGeohash(lat, lng float64, precision int) string {
	if precision <= 0 {
		precision = DefaultGeohashPrecision
	}

	latInt := [2]float64{-90, 90}
	lngInt := [2]float64{-180, 180}
	bits := [5]int{16, 8, 4, 2, 1}

	bit := 0
	ch := 0
	even := true
	out := make([]rune, 0, precision)

	for len(out) < precision {
		if even {
			mid := (lngInt[0] + lngInt[1]) / 2
			if lng >= mid {
				ch |= bits[bit]
				lngInt[0] = mid
			} else {
				lngInt[1] = mid
			}
		} else {
			mid := (latInt[0] + latInt[1]) / 2
			if lat >= mid {
				ch |= bits[bit]
				latInt[0] = mid
			} else {
				latInt[1] = mid
			}
		}
		even = !even
		if bit < 4 {
			bit++
		} else {
			out = append(out, geohashBase32[ch])
			bit = 0
			ch = 0
		}
	}
	return string(out)
}

// DecodeGeohash возвращает центр ячейки geohash.
// Обратное преобразование с потерями: точность ограничена размером ячейки.
func DecodeGeohash(hash string) (lat, lng float64, err error) {
	latInt, lngInt, err := decodeBounds(hash)
	if err != nil {
		return 0, 0, err
	}
	return (latInt[0] + latInt[1]) / 2, (lngInt[0] + lngInt[1]) / 2, nil
}

// Neighbors возвращает соседние ячейки той же точности в фиксированном
// порядке: N, NE, E, SE, S, SW, W, NW. Долгота заворачивается через
// антимеридиан; ячейки за полюсом не существуют и пропускаются, поэтому
// у ячеек приполюсного ряда соседей меньше восьми.
func Neighbors(hash string) ([]string, error) {
	latInt, lngInt, err := decodeBounds(hash)
	if err != nil {
		return nil, err
	}

	lat := (latInt[0] + latInt[1]) / 2
	lng := (lngInt[0] + lngInt[1]) / 2
	dLat := latInt[1] - latInt[0]
	dLng := lngInt[1] - lngInt[0]

	// Смещение от центра на полный размер ячейки попадает в центр соседа
	offsets := [8][2]float64{
		{dLat, 0},      // N
		{dLat, dLng},   // NE
		{0, dLng},      // E
		{-dLat, dLng},  // SE
		{-dLat, 0},     // S
		{-dLat, -dLng}, // SW
		{0, -dLng},     // W
		{dLat, -dLng},  // NW
	}

	result := make([]string, 0, 8)
	for _, off := range offsets {
		nLat := lat + off[0]
		if nLat > 90 || nLat < -90 {
			continue
		}
		nLng := wrapLng(lng + off[1])
		result = append(result, EncodeGeohash(nLat, nLng, len(hash)))
	}
	return result, nil
}

// decodeBounds восстанавливает границы ячейки из строки geohash
func decodeBounds(hash string) (latInt, lngInt [2]float64, err error) {
	latInt = [2]float64{-90, 90}
	lngInt = [2]float64{-180, 180}

	if hash == "" {
		return latInt, lngInt, fmt.Errorf("geohash is empty")
	}

	even := true
	for _, c := range strings.ToLower(hash) {
		idx := strings.IndexRune(string(geohashBase32), c)
		if idx < 0 {
			return latInt, lngInt, fmt.Errorf("invalid geohash character %q", c)
		}
		for _, mask := range [5]int{16, 8, 4, 2, 1} {
			if even {
				mid := (lngInt[0] + lngInt[1]) / 2
				if idx&mask != 0 {
					lngInt[0] = mid
				} else {
					lngInt[1] = mid
				}
			} else {
				mid := (latInt[0] + latInt[1]) / 2
				if idx&mask != 0 {
					latInt[0] = mid
				} else {
					latInt[1] = mid
				}
			}
			even = !even
		}
	}
	return latInt, lngInt, nil
}

func clampLat(lat float64) float64 {
	if lat > 90 {
		return 90
	}
	if lat < -90 {
		return -90
	}
	return lat
}

func wrapLng(lng float64) float64 {
	for lng > 180 {
		lng -= 360
	}
	for lng < -180 {
		lng += 360
	}
	return lng
}
