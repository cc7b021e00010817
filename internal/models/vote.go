package models

import (
	"time"

	"github.com/google/uuid"
)

// Vote представляет голос пользователя за важность инцидента.
// На пару (incident_id, user_id) существует не более одной записи:
// повторное голосование перезаписывает value, история не хранится.
type Vote struct {
	ID         int64      `json:"id"`
	IncidentID uuid.UUID  `json:"incident_id"`
	UserID     string     `json:"user_id"`
	Value      int        `json:"value"` // +1 или -1
	// NeighborhoodID — снимок района голосующего на момент первого голоса.
	// При перезаписи value не пересчитывается.
	NeighborhoodID *uuid.UUID `json:"neighborhood_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}
