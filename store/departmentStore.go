package store

import (
	"sync"

	"civicreport-be/models"
)

// DepartmentStore holds the fixed roster of city departments.
type DepartmentStore struct {
	mu    sync.RWMutex
	order []models.Department
	byID  map[string]models.Department
}

func NewDepartmentStore(departments []models.Department) *DepartmentStore {
	s := &DepartmentStore{byID: make(map[string]models.Department, len(departments))}
	for _, d := range departments {
		if _, ok := s.byID[d.ID]; ok {
			continue
		}
		s.order = append(s.order, d)
		s.byID[d.ID] = d
	}
	return s
}

// List returns all departments in roster order.
func (s *DepartmentStore) List() []models.Department {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Department{}, s.order...)
}

func (s *DepartmentStore) Get(id string) (models.Department, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.byID[id]
	if !ok {
		return models.Department{}, &NotFoundError{Kind: "department", ID: id}
	}
	return d, nil
}

func (s *DepartmentStore) Has(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.byID[id]
	return ok
}
