// Package analytics computes the aggregates behind the admin dashboard:
// catalog breakdowns from the project store and roster breakdowns from the
// students table.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/UniChain-25-26J-287/uni-repo-backend/internal/projects/domain"
)

// Catalog is the read surface the service needs from the project store.
type Catalog interface {
	ListAll() []domain.Project
}

// Aggregates is the dashboard payload.
type Aggregates struct {
	TotalProjects         int              `json:"total_projects"`
	ProjectsByDepartment  map[int64]int    `json:"projects_by_department"`
	ProjectsByYear        map[int]int      `json:"projects_by_year"`
	ProjectsByAccessLevel map[string]int   `json:"projects_by_access_level"`
	TotalStudents         int              `json:"total_students"`
	StudentsByStatus      map[string]int   `json:"students_by_status"`
	StudentsByDepartment  map[int64]int    `json:"students_by_department"`
	GeneratedAt           time.Time        `json:"generated_at"`
}

type Service struct {
	catalog Catalog
	repo    *SnapshotRepository // nil disables roster aggregates and snapshots
}

func NewService(catalog Catalog, repo *SnapshotRepository) *Service {
	return &Service{catalog: catalog, repo: repo}
}

// Current computes fresh aggregates.
func (s *Service) Current(ctx context.Context) (*Aggregates, error) {
	agg := &Aggregates{
		ProjectsByDepartment:  map[int64]int{},
		ProjectsByYear:        map[int]int{},
		ProjectsByAccessLevel: map[string]int{},
		StudentsByStatus:      map[string]int{},
		StudentsByDepartment:  map[int64]int{},
		GeneratedAt:           time.Now().UTC(),
	}

	for _, p := range s.catalog.ListAll() {
		agg.TotalProjects++
		agg.ProjectsByDepartment[p.DepartmentID]++
		agg.ProjectsByYear[p.Year]++
		agg.ProjectsByAccessLevel[p.AccessLevel.String()]++
	}

	if s.repo != nil {
		roster, err := s.repo.RosterCounts(ctx)
		if err != nil {
			return nil, fmt.Errorf("roster counts: %w", err)
		}
		agg.TotalStudents = roster.Total
		agg.StudentsByStatus = roster.ByStatus
		agg.StudentsByDepartment = roster.ByDepartment
	}

	return agg, nil
}

// Snapshot computes current aggregates and persists them for the nightly
// history view.
func (s *Service) Snapshot(ctx context.Context) (*Aggregates, error) {
	agg, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	if s.repo == nil {
		return agg, nil
	}
	if err := s.repo.Save(ctx, agg); err != nil {
		return nil, fmt.Errorf("save snapshot: %w", err)
	}
	return agg, nil
}

// Latest returns the most recent persisted snapshot.
func (s *Service) Latest(ctx context.Context) (*Aggregates, error) {
	if s.repo == nil {
		return nil, ErrNoSnapshot
	}
	return s.repo.Latest(ctx)
}
