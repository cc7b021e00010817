package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты инцидентов и голосования
	incidents := api.Group("/incidents")
	{
		incidents.POST("", h.createIncident)
		incidents.GET("", h.rankedFeed)
		incidents.GET("/nearby", h.nearbyIncidents)
		incidents.GET("/:id", h.getIncident)
		incidents.POST("/:id/votes", h.castVote)
		incidents.DELETE("/:id/votes", h.removeVote)
		incidents.POST("/:id/recompute", h.recomputeIncident)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
