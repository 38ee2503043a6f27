package http

import (
	"encoding/csv"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/UniChain-25-26J-287/uni-repo-backend/internal/students"
	"github.com/UniChain-25-26J-287/uni-repo-backend/internal/students/domain"
)

type studentReq struct {
	WalletAddress string `json:"wallet_address"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	DepartmentID  int64  `json:"department_id"`
	InstitutionID int64  `json:"institution_id"`
	Year          int    `json:"year"`
	Status        string `json:"status"`
}

func (r studentReq) upsert() students.UpsertStudent {
	return students.UpsertStudent{
		WalletAddress: strings.TrimSpace(r.WalletAddress),
		Name:          strings.TrimSpace(r.Name),
		Email:         strings.TrimSpace(r.Email),
		DepartmentID:  r.DepartmentID,
		InstitutionID: r.InstitutionID,
		Year:          r.Year,
		Status:        r.Status,
	}
}

func (h *Handler) create(c *gin.Context) {
	var req studentReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.WalletAddress) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	s, err := h.repo.Create(c.Request.Context(), req.upsert())
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrInvalidStatus) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "student": s})
}

func (h *Handler) list(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		items []domain.Student
		err   error
	)
	switch {
	case c.Query("department") != "":
		var depID int64
		depID, err = strconv.ParseInt(c.Query("department"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid department"})
			return
		}
		items, err = h.repo.ListByDepartment(ctx, depID)
	case c.Query("institution") != "":
		var instID int64
		instID, err = strconv.ParseInt(c.Query("institution"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid institution"})
			return
		}
		items, err = h.repo.ListByInstitution(ctx, instID)
	default:
		items, err = h.repo.List(ctx)
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "students": items})
}

func (h *Handler) getByWallet(c *gin.Context) {
	s, err := h.repo.GetByWallet(c.Request.Context(), c.Param("address"))
	if errors.Is(err, domain.ErrStudentNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "student not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "student": s})
}

func (h *Handler) update(c *gin.Context) {
	var req studentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	s, err := h.repo.Update(c.Request.Context(), c.Param("id"), req.upsert())
	if errors.Is(err, domain.ErrStudentNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "student not found"})
		return
	}
	if errors.Is(err, domain.ErrInvalidStatus) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "student": s})
}

func (h *Handler) delete(c *gin.Context) {
	ok, err := h.repo.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "student not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// bulkUpload ingests a CSV roster export with the columns
// wallet_address,name,email,department_id,institution_id,year[,status].
func (h *Handler) bulkUpload(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "missing file"})
		return
	}
	defer file.Close()

	batch, err := parseRosterCSV(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if len(batch) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "empty roster"})
		return
	}

	created, err := h.repo.CreateBatch(c.Request.Context(), batch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "students": created, "count": len(created)})
}

func parseRosterCSV(r io.Reader) ([]students.UpsertStudent, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	var out []students.UpsertStudent
	first := true
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rec) < 6 {
			return nil, errors.New("row needs at least 6 columns")
		}

		// Skip a header row if present.
		if first {
			first = false
			if strings.EqualFold(rec[0], "wallet_address") {
				continue
			}
		}

		depID, err := strconv.ParseInt(strings.TrimSpace(rec[3]), 10, 64)
		if err != nil {
			return nil, errors.New("invalid department_id: " + rec[3])
		}
		instID, err := strconv.ParseInt(strings.TrimSpace(rec[4]), 10, 64)
		if err != nil {
			return nil, errors.New("invalid institution_id: " + rec[4])
		}
		year, err := strconv.Atoi(strings.TrimSpace(rec[5]))
		if err != nil {
			return nil, errors.New("invalid year: " + rec[5])
		}

		status := domain.StatusActive
		if len(rec) > 6 && strings.TrimSpace(rec[6]) != "" {
			status = strings.TrimSpace(rec[6])
		}

		out = append(out, students.UpsertStudent{
			WalletAddress: strings.TrimSpace(rec[0]),
			Name:          strings.TrimSpace(rec[1]),
			Email:         strings.TrimSpace(rec[2]),
			DepartmentID:  depID,
			InstitutionID: instID,
			Year:          year,
			Status:        status,
		})
	}
	return out, nil
}
