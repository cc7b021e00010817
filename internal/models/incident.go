package models

import (
	"time"

	"github.com/google/uuid"
)

// FeedFilters — необязательные фильтры ранжированной ленты
type FeedFilters struct {
	CategoryID *uuid.UUID
	Status     string
}

type Incident struct {
	ID              uuid.UUID  `json:"id"`
	MunicipalityID  uuid.UUID  `json:"municipality_id"`
	CategoryID      uuid.UUID  `json:"category_id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Latitude        float64    `json:"latitude"`
	Longitude       float64    `json:"longitude"`
	Geohash         string     `json:"geohash"`
	NeighborhoodID  *uuid.UUID `json:"neighborhood_id,omitempty"`
	MediaURLs       []string   `json:"media_urls,omitempty"`
	Status          string     `json:"status"`
	VoteStats       VoteStats  `json:"vote_stats"`
	ImportanceScore float64    `json:"importance_score"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
