package http

import "github.com/gin-gonic/gin"

// Register attaches roster routes to the given (admin) router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.POST("", h.create)
	rg.POST("/bulk", h.bulkUpload)
	rg.GET("/by-wallet/:address", h.getByWallet)
	rg.PUT("/:id", h.update)
	rg.DELETE("/:id", h.delete)
}
