package v1

import "github.com/jtalface/open-government-platform/internal/models"

// DTOToIncidentModel преобразует DTO создания в доменную модель
func DTOToIncidentModel(dto CreateIncidentRequest) *models.Incident {
	return &models.Incident{
		MunicipalityID: dto.MunicipalityID,
		CategoryID:     dto.CategoryID,
		Title:          dto.Title,
		Description:    dto.Description,
		Latitude:       dto.Location.Lat,
		Longitude:      dto.Location.Lng,
		MediaURLs:      dto.MediaURLs,
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:              model.ID,
		MunicipalityID:  model.MunicipalityID,
		CategoryID:      model.CategoryID,
		Title:           model.Title,
		Description:     model.Description,
		Location:        LocationDTO{Lat: model.Latitude, Lng: model.Longitude},
		Geohash:         model.Geohash,
		NeighborhoodID:  model.NeighborhoodID,
		MediaURLs:       model.MediaURLs,
		Status:          model.Status,
		VoteStats:       statsToResponse(model.VoteStats),
		ImportanceScore: model.ImportanceScore,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

func statsToResponse(stats models.VoteStats) VoteStatsResponse {
	resp := VoteStatsResponse{
		Total:     stats.Total,
		Upvotes:   stats.Upvotes,
		Downvotes: stats.Downvotes,
	}
	if len(stats.ByNeighborhood) > 0 {
		resp.ByNeighborhood = make(map[string]map[string]int, len(stats.ByNeighborhood))
		for id, nv := range stats.ByNeighborhood {
			resp.ByNeighborhood[id.String()] = map[string]int{
				"upvotes":   nv.Upvotes,
				"downvotes": nv.Downvotes,
			}
		}
	}
	return resp
}
