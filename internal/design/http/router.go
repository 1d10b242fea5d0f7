package http

import "github.com/gin-gonic/gin"

// Register attaches design routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.create)
	rg.GET("", h.list)
	rg.POST("/import", h.importSelection)
	rg.GET("/:public_id", h.get)
	rg.PATCH("/:public_id", h.modify)
	rg.POST("/:public_id/clone", h.clone)
	rg.POST("/:public_id/regenerate", h.regenerate)
	rg.PUT("/:public_id/services/:category", h.updateServiceConfig)
	rg.DELETE("/:public_id", h.delete)
	rg.GET("/:public_id/diagram.dot", h.diagramDOT)
}
