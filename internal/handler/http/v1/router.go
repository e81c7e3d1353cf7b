package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	protected := api.Group("")
	if len(h.cfg.APIKeys) > 0 {
		protected.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	}

	// Очередь офлайн-операций
	queue := protected.Group("/queue")
	{
		queue.POST("", h.enqueue)
		queue.GET("", h.listQueue)
		queue.GET("/ws", h.streamQueue)
		queue.GET("/:id", h.getAction)
		queue.PUT("/:id", h.updateAction)
		queue.DELETE("/:id", h.removeAction)
		queue.POST("/:id/send", h.sendAction)
	}

	sync := protected.Group("/sync")
	{
		sync.POST("/drain", h.drain)
		sync.GET("/status", h.syncStatus)
	}

	protected.GET("/occurrences", h.listOccurrences)

	catalog := protected.Group("/catalog")
	{
		catalog.POST("/refresh", h.refreshCatalog)
		catalog.GET("/:entity", h.getCatalog)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
