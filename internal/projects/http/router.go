package http

import "github.com/gin-gonic/gin"

// Register attaches the public catalog routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.GET("/:id", h.get)
	rg.POST("", h.create)
	rg.POST("/upload", h.upload)
	rg.PATCH("/:id/access", h.setAccessLevel)
}

// RegisterAdmin attaches the unfiltered read routes. These bypass the
// visibility filter and must stay behind the back-office auth middleware.
func (h *Handler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.GET("", h.adminList)
	rg.GET("/:id", h.adminGet)
}
