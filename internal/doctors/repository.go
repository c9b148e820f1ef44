package doctors

import (
	"context"
	"sort"
	"sync"
)

// Repository defines the interface for doctor storage.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Doctor, error)
	List(ctx context.Context) ([]*Doctor, error)
	ReplaceAvailability(ctx context.Context, id string, slots []string) (*Doctor, error)
}

// InMemoryRepository keeps the directory in process memory. It backs tests
// and deployments without a database.
type InMemoryRepository struct {
	mu      sync.RWMutex
	doctors map[string]*Doctor
}

// NewInMemoryRepository creates an empty in-memory repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{doctors: make(map[string]*Doctor)}
}

// Put inserts or replaces a doctor profile. Used for seeding.
func (r *InMemoryRepository) Put(doc *Doctor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *doc
	cp.Availability = append([]string(nil), doc.Availability...)
	r.doctors[doc.ID] = &cp
}

// GetByID retrieves a doctor by id.
func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.doctors[id]
	if !ok {
		return nil, ErrDoctorNotFound
	}
	cp := *doc
	cp.Availability = append([]string(nil), doc.Availability...)
	return &cp, nil
}

// List returns all doctors ordered by name for a stable directory.
func (r *InMemoryRepository) List(ctx context.Context) ([]*Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Doctor, 0, len(r.doctors))
	for _, doc := range r.doctors {
		cp := *doc
		cp.Availability = append([]string(nil), doc.Availability...)
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ReplaceAvailability swaps the slot template wholesale.
func (r *InMemoryRepository) ReplaceAvailability(ctx context.Context, id string, slots []string) (*Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, ok := r.doctors[id]
	if !ok {
		return nil, ErrDoctorNotFound
	}
	doc.Availability = append([]string(nil), slots...)
	cp := *doc
	cp.Availability = append([]string(nil), doc.Availability...)
	return &cp, nil
}
