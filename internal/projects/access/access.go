// Package access implements the project visibility filter.
//
// The rules are deliberately narrow: a public project is visible to anyone,
// everything else is visible to its authors only. Restricted projects are
// treated exactly like private ones; department-scoped visibility for the
// restricted level is a product decision that has not been taken.
package access

import (
	"strings"

	"github.com/UniChain-25-26J-287/uni-repo-backend/internal/projects/domain"
)

// CanView reports whether viewer may see the project's details.
// viewer is a wallet address, or empty for an anonymous viewer.
// Author matching is case-insensitive; hex addresses arrive in mixed case.
func CanView(p domain.Project, viewer string) bool {
	if p.AccessLevel == domain.AccessPublic {
		return true
	}
	if viewer == "" {
		return false
	}
	for _, a := range p.Authors {
		if strings.EqualFold(a, viewer) {
			return true
		}
	}
	return false
}

// FilterVisible returns the subset of all that viewer may see, preserving
// the input order. It never mutates its input.
func FilterVisible(all []domain.Project, viewer string) []domain.Project {
	out := make([]domain.Project, 0, len(all))
	for _, p := range all {
		if CanView(p, viewer) {
			out = append(out, p)
		}
	}
	return out
}

// FindVisible locates the record with the given id and checks visibility.
// A missing id and a denied view return the same ErrProjectNotFound, so the
// existence of a private record is not leaked through the error.
func FindVisible(all []domain.Project, id int64, viewer string) (domain.Project, error) {
	for _, p := range all {
		if p.ID == id {
			if !CanView(p, viewer) {
				break
			}
			return p, nil
		}
	}
	return domain.Project{}, domain.ErrProjectNotFound
}
