package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UniChain-25-26J-287/uni-repo-backend/internal/analytics"
)

// Handler bundles the dependencies for analytics HTTP endpoints.
type Handler struct {
	svc *analytics.Service
}

func New(svc *analytics.Service) *Handler {
	return &Handler{svc: svc}
}

// Register attaches analytics routes to the given (admin) router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.current)
	rg.GET("/snapshots/latest", h.latest)
}

func (h *Handler) current(c *gin.Context) {
	agg, err := h.svc.Current(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "analytics": agg})
}

func (h *Handler) latest(c *gin.Context) {
	agg, err := h.svc.Latest(c.Request.Context())
	if errors.Is(err, analytics.ErrNoSnapshot) {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "no snapshot yet"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "analytics": agg})
}
