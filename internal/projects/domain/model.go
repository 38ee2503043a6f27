package domain

// AccessLevel is the visibility policy attached to a project.
// The ordinals match the on-chain enum and must not be reordered.
type AccessLevel int

const (
	AccessPublic     AccessLevel = 0
	AccessRestricted AccessLevel = 1
	AccessPrivate    AccessLevel = 2
)

// Valid reports whether the level is one of the three defined ordinals.
func (a AccessLevel) Valid() bool {
	return a >= AccessPublic && a <= AccessPrivate
}

func (a AccessLevel) String() string {
	switch a {
	case AccessPublic:
		return "public"
	case AccessRestricted:
		return "restricted"
	case AccessPrivate:
		return "private"
	default:
		return "unknown"
	}
}

// Project is the unit of content in the catalog.
// It is intentionally storage-agnostic and used across store and HTTP layers.
// UploadDate is Unix milliseconds, matching the contract's timestamp unit.
type Project struct {
	ID           int64       `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	DepartmentID int64       `json:"department_id"`
	Year         int         `json:"year"`
	AccessLevel  AccessLevel `json:"access_level"`
	IPFSHash     string      `json:"ipfs_hash"`
	Authors      []string    `json:"authors"`
	UploadDate   int64       `json:"upload_date"`
}
