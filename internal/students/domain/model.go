package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status of a roster entry.
const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusGraduated = "graduated"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusActive, StatusInactive, StatusGraduated:
		return true
	}
	return false
}

// Student is one roster entry managed by the admin back-office.
type Student struct {
	ID            string    `json:"id"`
	WalletAddress string    `json:"wallet_address"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	DepartmentID  int64     `json:"department_id"`
	InstitutionID int64     `json:"institution_id"`
	Year          int       `json:"year"`
	Status        string    `json:"status"`
	DateAdded     time.Time `json:"date_added"`
}

// NewStudentID generates a roster id in the STU- form the back-office
// displays.
func NewStudentID() string {
	return "STU-" + strings.ToUpper(uuid.New().String()[:13])
}
