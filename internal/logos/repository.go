package logos

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

var (
	ErrNotFound    = errors.New("logo not found")
	ErrUnavailable = errors.New("logo store unavailable")
)

// PersistenceError wraps a failure of the underlying store. Its detail is
// for logs only.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("logos %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	return &PersistenceError{Op: op, Err: err}
}

// Repository stores company logos. Absent rows are reported through the
// boolean results, never as errors. Lists are ordered by display order,
// then id.
type Repository interface {
	List(ctx context.Context) ([]Logo, error)
	ListActive(ctx context.Context) ([]Logo, error)
	Get(ctx context.Context, id int64) (Logo, bool, error)
	Create(ctx context.Context, item Logo) (Logo, error)
	Update(ctx context.Context, id int64, patch Patch) (Logo, bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

func sortLogos(items []Logo) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].DisplayOrder != items[j].DisplayOrder {
			return items[i].DisplayOrder < items[j].DisplayOrder
		}
		return items[i].ID < items[j].ID
	})
}

// UnavailableRepository is wired when no database is configured; every
// call fails so the API answers 500.
type UnavailableRepository struct{}

func (UnavailableRepository) List(context.Context) ([]Logo, error) {
	return nil, ErrUnavailable
}

func (UnavailableRepository) ListActive(context.Context) ([]Logo, error) {
	return nil, ErrUnavailable
}

func (UnavailableRepository) Get(context.Context, int64) (Logo, bool, error) {
	return Logo{}, false, ErrUnavailable
}

func (UnavailableRepository) Create(context.Context, Logo) (Logo, error) {
	return Logo{}, ErrUnavailable
}

func (UnavailableRepository) Update(context.Context, int64, Patch) (Logo, bool, error) {
	return Logo{}, false, ErrUnavailable
}

func (UnavailableRepository) Delete(context.Context, int64) (bool, error) {
	return false, ErrUnavailable
}
