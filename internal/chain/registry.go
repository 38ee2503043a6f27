package chain

import (
	"context"
	"log"
	"sync"
)

// Registry caches the institution and department enumerations so catalog
// pages don't hit the gateway on every render. Refresh is best-effort: a
// failed refresh keeps the previous (or seeded) data.
type Registry struct {
	mu           sync.RWMutex
	client       *Client
	institutions []Institution
	departments  map[int64][]Department // keyed by institution id
	flat         []Department
}

func NewRegistry(client *Client) *Registry {
	return &Registry{
		client:       client,
		institutions: seedInstitutions(),
		departments:  seedDepartmentsByInstitution(),
		flat:         seedDepartments(),
	}
}

// Refresh pulls the current enumerations from the gateway.
func (r *Registry) Refresh(ctx context.Context) error {
	insts, err := r.client.Institutions(ctx)
	if err != nil {
		return err
	}

	byInst := make(map[int64][]Department, len(insts))
	var flat []Department
	for _, inst := range insts {
		deps, err := r.client.DepartmentsByInstitution(ctx, inst.ID)
		if err != nil {
			log.Printf("registry refresh: departments for institution %d: %v", inst.ID, err)
			continue
		}
		byInst[inst.ID] = deps
		flat = append(flat, deps...)
	}

	r.mu.Lock()
	r.institutions = insts
	r.departments = byInst
	r.flat = flat
	r.mu.Unlock()
	return nil
}

func (r *Registry) Institutions() []Institution {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Institution, len(r.institutions))
	copy(out, r.institutions)
	return out
}

func (r *Registry) Departments() []Department {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Department, len(r.flat))
	copy(out, r.flat)
	return out
}

func (r *Registry) DepartmentsFor(institutionID int64) []Department {
	r.mu.RLock()
	defer r.mu.RUnlock()
	deps := r.departments[institutionID]
	out := make([]Department, len(deps))
	copy(out, deps)
	return out
}

// Static fallback used until the first successful refresh. Matches the
// enumeration the catalog UI ships with.
func seedInstitutions() []Institution {
	return []Institution{
		{ID: 1, Name: "University of Technology"},
		{ID: 2, Name: "State University"},
		{ID: 3, Name: "National College"},
		{ID: 4, Name: "Technical Institute"},
		{ID: 5, Name: "Medical University"},
	}
}

func seedDepartments() []Department {
	return []Department{
		{ID: 1, Name: "Computer Science"},
		{ID: 2, Name: "Electrical Engineering"},
		{ID: 3, Name: "Mechanical Engineering"},
		{ID: 4, Name: "Civil Engineering"},
		{ID: 5, Name: "Economics"},
		{ID: 6, Name: "Business Administration"},
		{ID: 7, Name: "Mathematics"},
		{ID: 8, Name: "Physics"},
		{ID: 9, Name: "Chemistry"},
		{ID: 10, Name: "Biology"},
	}
}

func seedDepartmentsByInstitution() map[int64][]Department {
	all := seedDepartments()
	return map[int64][]Department{
		1: all[0:3],
		2: all[3:6],
		3: all[6:9],
		4: all[3:4],
		5: all[9:10],
	}
}
