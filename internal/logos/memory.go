package logos

import (
	"context"
	"sync"
)

// MemoryRepository keeps logos in process. It backs memory:// and tests.
type MemoryRepository struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]Logo
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[int64]Logo)}
}

func (r *MemoryRepository) List(ctx context.Context) ([]Logo, error) {
	return r.filter(func(Logo) bool { return true }), nil
}

func (r *MemoryRepository) ListActive(ctx context.Context) ([]Logo, error) {
	return r.filter(func(l Logo) bool { return l.IsActive }), nil
}

func (r *MemoryRepository) filter(keep func(Logo) bool) []Logo {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]Logo, 0, len(r.items))
	for _, l := range r.items {
		if keep(l) {
			items = append(items, clone(l))
		}
	}
	sortLogos(items)
	return items
}

func (r *MemoryRepository) Get(ctx context.Context, id int64) (Logo, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.items[id]
	return clone(l), ok, nil
}

func (r *MemoryRepository) Create(ctx context.Context, item Logo) (Logo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	item.ID = r.nextID
	r.items[item.ID] = clone(item)
	return clone(item), nil
}

func (r *MemoryRepository) Update(ctx context.Context, id int64, patch Patch) (Logo, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.items[id]
	if !ok {
		return Logo{}, false, nil
	}
	l = patch.Apply(clone(l))
	r.items[id] = l
	return clone(l), true, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

func clone(l Logo) Logo {
	if l.AltText != nil {
		l.AltText = stringPtr(*l.AltText)
	}
	if l.DarkModeURL != nil {
		l.DarkModeURL = stringPtr(*l.DarkModeURL)
	}
	return l
}
