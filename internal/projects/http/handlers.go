package http

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/UniChain-25-26J-287/uni-repo-backend/internal/auth"
	"github.com/UniChain-25-26J-287/uni-repo-backend/internal/projects/domain"
	"github.com/UniChain-25-26J-287/uni-repo-backend/internal/projects/store"
)

func (h *Handler) list(c *gin.Context) {
	viewer := auth.ViewerAddress(c)
	items := h.store.ListVisible(viewer)

	if dep := c.Query("department"); dep != "" {
		depID, err := strconv.ParseInt(dep, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid department"})
			return
		}
		items = filter(items, func(p domain.Project) bool { return p.DepartmentID == depID })
	}

	if yr := c.Query("year"); yr != "" {
		year, err := strconv.Atoi(yr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid year"})
			return
		}
		items = filter(items, func(p domain.Project) bool { return p.Year == year })
	}

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		needle := strings.ToLower(q)
		items = filter(items, func(p domain.Project) bool {
			return strings.Contains(strings.ToLower(p.Title), needle) ||
				strings.Contains(strings.ToLower(p.Description), needle)
		})
	}

	// Front-N truncation; the store keeps most-recent-first order.
	if lim := c.Query("limit"); lim != "" {
		n, err := strconv.Atoi(lim)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid limit"})
			return
		}
		if n < len(items) {
			items = items[:n]
		}
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": items})
}

func (h *Handler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid id"})
		return
	}

	p, err := h.store.GetVisibleByID(id, auth.ViewerAddress(c))
	if err != nil {
		// Missing and denied are the same 404 on purpose.
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

type createReq struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	DepartmentID int64  `json:"department_id"`
	Year         int    `json:"year"`
	AccessLevel  int    `json:"access_level"`
	IPFSHash     string `json:"ipfs_hash"`
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	level := domain.AccessLevel(req.AccessLevel)
	if !level.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid access level"})
		return
	}

	p, err := h.store.Add(c.Request.Context(), store.CreateInput{
		Title:        strings.TrimSpace(req.Title),
		Description:  strings.TrimSpace(req.Description),
		DepartmentID: req.DepartmentID,
		Year:         req.Year,
		AccessLevel:  level,
		IPFSHash:     strings.TrimSpace(req.IPFSHash),
		Author:       auth.ViewerAddress(c),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	h.registerOnChain(c, p)

	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": p})
}

// upload is the full flow: pin the file, archive a copy, then register the
// metadata like create does.
func (h *Handler) upload(c *gin.Context) {
	title := strings.TrimSpace(c.PostForm("title"))
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "title required"})
		return
	}

	depID, err := formInt64(c, "department_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid department_id"})
		return
	}
	year, err := formInt64(c, "year")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid year"})
		return
	}
	levelOrdinal, err := formInt64(c, "access_level")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid access level"})
		return
	}
	level := domain.AccessLevel(levelOrdinal)
	if !level.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid access level"})
		return
	}

	var ipfsHash string
	file, header, err := c.Request.FormFile("file")
	if err == nil {
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "unreadable file"})
			return
		}

		if h.pinning != nil && h.pinning.Enabled() {
			ipfsHash, err = h.pinning.PinFile(c.Request.Context(), header.Filename, data)
			if err != nil {
				c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "pinning failed: " + err.Error()})
				return
			}
		}

		if h.archive.Enabled() {
			hash := ipfsHash
			if hash == "" {
				hash = "unpinned"
			}
			if _, err := h.archive.Store(c.Request.Context(), hash, header.Filename, header.Header.Get("Content-Type"), data); err != nil {
				// Archive is best-effort; the pin is the canonical copy.
				log.Printf("archive copy failed: %v", err)
			}
		}
	}

	p, err := h.store.Add(c.Request.Context(), store.CreateInput{
		Title:        title,
		Description:  strings.TrimSpace(c.PostForm("description")),
		DepartmentID: depID,
		Year:         int(year),
		AccessLevel:  level,
		IPFSHash:     ipfsHash,
		Author:       auth.ViewerAddress(c),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	h.registerOnChain(c, p)

	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": p})
}

type accessReq struct {
	AccessLevel int `json:"access_level"`
}

func (h *Handler) setAccessLevel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid id"})
		return
	}

	var req accessReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	level := domain.AccessLevel(req.AccessLevel)
	if !level.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid access level"})
		return
	}

	actor := auth.ViewerAddress(c)

	cur, err := h.store.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	}

	cur.AccessLevel = level
	err = h.store.Update(c.Request.Context(), cur, actor)
	if errors.Is(err, domain.ErrUnauthorized) {
		c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "not an author"})
		return
	}
	if errors.Is(err, domain.ErrProjectNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	if h.chain != nil {
		if err := h.chain.SetAccessLevel(c.Request.Context(), id, level, actor); err != nil {
			log.Printf("chain access level sync failed for project %d: %v", id, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "project": cur})
}

func (h *Handler) adminList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": h.store.ListAll()})
}

func (h *Handler) adminGet(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid id"})
		return
	}

	p, err := h.store.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

// registerOnChain submits the record to the registry contract. Failures are
// logged, not surfaced: the catalog entry exists either way and the chain
// write can be retried by support tooling.
func (h *Handler) registerOnChain(c *gin.Context, p domain.Project) {
	if h.chain == nil {
		return
	}
	if _, _, err := h.chain.RegisterProject(c.Request.Context(), p, auth.ViewerAddress(c)); err != nil {
		log.Printf("chain registration failed for project %d: %v", p.ID, err)
	}
}

// formInt64 parses a required numeric form field. An absent field parses as
// zero; a present but non-numeric value is an error.
func formInt64(c *gin.Context, field string) (int64, error) {
	v := strings.TrimSpace(c.PostForm(field))
	if v == "" {
		return 0, nil
	}
	return strconv.ParseInt(v, 10, 64)
}

func filter(in []domain.Project, keep func(domain.Project) bool) []domain.Project {
	out := in[:0:0]
	for _, p := range in {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
