package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/UniChain-25-26J-287/uni-repo-backend/internal/chain"
)

// Handler serves the institution/department enumerations and on-chain user
// lookups consumed by the catalog pages.
type Handler struct {
	registry *chain.Registry
	client   *chain.Client
}

func New(registry *chain.Registry, client *chain.Client) *Handler {
	return &Handler{registry: registry, client: client}
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/institutions", h.institutions)
	rg.GET("/institutions/:id/departments", h.departmentsByInstitution)
	rg.GET("/departments", h.departments)
	rg.GET("/users/:address", h.userInfo)
}

func (h *Handler) institutions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "institutions": h.registry.Institutions()})
}

func (h *Handler) departments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "departments": h.registry.Departments()})
}

func (h *Handler) departmentsByInstitution(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid id"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "departments": h.registry.DepartmentsFor(id)})
}

func (h *Handler) userInfo(c *gin.Context) {
	info, err := h.client.GetUserInfo(c.Request.Context(), c.Param("address"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "user": info})
}
