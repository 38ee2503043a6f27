package analytics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UniChain-25-26J-287/uni-repo-backend/internal/projects/domain"
)

type fakeCatalog []domain.Project

func (f fakeCatalog) ListAll() []domain.Project { return f }

func TestCurrent_CatalogAggregates(t *testing.T) {
	catalog := fakeCatalog{
		{ID: 1, DepartmentID: 1, Year: 2023, AccessLevel: domain.AccessPublic},
		{ID: 2, DepartmentID: 1, Year: 2023, AccessLevel: domain.AccessRestricted},
		{ID: 3, DepartmentID: 2, Year: 2022, AccessLevel: domain.AccessPublic},
	}

	svc := NewService(catalog, nil)
	agg, err := svc.Current(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, agg.TotalProjects)
	assert.Equal(t, map[int64]int{1: 2, 2: 1}, agg.ProjectsByDepartment)
	assert.Equal(t, map[int]int{2023: 2, 2022: 1}, agg.ProjectsByYear)
	assert.Equal(t, map[string]int{"public": 2, "restricted": 1}, agg.ProjectsByAccessLevel)
	assert.Zero(t, agg.TotalStudents, "no roster without a snapshot repository")
	assert.False(t, agg.GeneratedAt.IsZero())
}

func TestSnapshot_WithoutRepositoryStillComputes(t *testing.T) {
	svc := NewService(fakeCatalog{{ID: 1, AccessLevel: domain.AccessPublic}}, nil)
	agg, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, agg.TotalProjects)
}

func TestLatest_WithoutRepository(t *testing.T) {
	svc := NewService(fakeCatalog{}, nil)
	_, err := svc.Latest(context.Background())
	assert.ErrorIs(t, err, ErrNoSnapshot)
}
