package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/UniChain-25-26J-287/uni-repo-backend/internal/ai"
	"github.com/UniChain-25-26J-287/uni-repo-backend/internal/auth"
	"github.com/UniChain-25-26J-287/uni-repo-backend/internal/projects/store"
)

// Handler serves the summary and chat endpoints. Both read the catalog
// through the visibility filter, so the assistant can never describe a
// project the caller is not allowed to see.
type Handler struct {
	svc   *ai.Service
	store *store.Store
}

func New(svc *ai.Service, s *store.Store) *Handler {
	return &Handler{svc: svc, store: s}
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/summaries/:id", h.summarize)
	rg.POST("/chat", h.chat)
}

func (h *Handler) summarize(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid id"})
		return
	}

	p, err := h.store.GetVisibleByID(id, auth.ViewerAddress(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	}

	summary, err := h.svc.SummarizeProject(c.Request.Context(), p)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "summary": summary})
}

type chatReq struct {
	Message string       `json:"message"`
	History []ai.Message `json:"history"`
}

func (h *Handler) chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	visible := h.store.ListVisible(auth.ViewerAddress(c))
	answer, err := h.svc.Chat(c.Request.Context(), visible, req.History, req.Message)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "answer": answer})
}
