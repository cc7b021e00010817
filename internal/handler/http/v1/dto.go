package v1

import (
	"time"

	"github.com/google/uuid"
)

// LocationDTO координаты точки
// @Description Координаты точки (WGS84)
type LocationDTO struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lng float64 `json:"lng" validate:"min=-180,max=180"`
}

// CreateIncidentRequest DTO для создания инцидента
// @Description DTO для создания инцидента
type CreateIncidentRequest struct {
	MunicipalityID uuid.UUID   `json:"municipality_id" validate:"required"`
	CategoryID     uuid.UUID   `json:"category_id" validate:"required"`
	Title          string      `json:"title" validate:"required,min=2,max=255"`
	Description    string      `json:"description,omitempty"`
	Location       LocationDTO `json:"location" validate:"required"`
	MediaURLs      []string    `json:"media_urls,omitempty" validate:"dive,url"`
}

// CastVoteRequest DTO для подачи голоса
// @Description DTO для подачи голоса за важность инцидента
type CastVoteRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Value  int    `json:"value" validate:"required,oneof=1 -1"`
	// Location — текущее местоположение голосующего; по нему один раз
	// определяется район голоса. Необязательно: без координат голос
	// учитывается только в глобальных счетчиках.
	Location *LocationDTO `json:"location,omitempty"`
}

// RemoveVoteRequest DTO для снятия голоса
// @Description DTO для снятия голоса
type RemoveVoteRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// VoteStatsResponse DTO агрегата голосов
// @Description Денормализованный агрегат голосов инцидента
type VoteStatsResponse struct {
	Total          int                       `json:"total"`
	Upvotes        int                       `json:"upvotes"`
	Downvotes      int                       `json:"downvotes"`
	ByNeighborhood map[string]map[string]int `json:"by_neighborhood,omitempty"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID              uuid.UUID         `json:"id"`
	MunicipalityID  uuid.UUID         `json:"municipality_id"`
	CategoryID      uuid.UUID         `json:"category_id"`
	Title           string            `json:"title"`
	Description     string            `json:"description,omitempty"`
	Location        LocationDTO       `json:"location"`
	Geohash         string            `json:"geohash"`
	NeighborhoodID  *uuid.UUID        `json:"neighborhood_id,omitempty"`
	MediaURLs       []string          `json:"media_urls,omitempty"`
	Status          string            `json:"status"`
	VoteStats       VoteStatsResponse `json:"vote_stats"`
	ImportanceScore float64           `json:"importance_score"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}
