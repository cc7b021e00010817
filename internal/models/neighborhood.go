package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Neighborhood — административный район муниципалитета.
// Геометрия хранится как GeoJSON Polygon/MultiPolygon и с точки зрения
// движка ранжирования доступна только на чтение.
type Neighborhood struct {
	ID             uuid.UUID       `json:"id"`
	MunicipalityID uuid.UUID       `json:"municipality_id"`
	Name           string          `json:"name"`
	Geometry       json.RawMessage `json:"geometry"`
	Active         bool            `json:"active"`
}
