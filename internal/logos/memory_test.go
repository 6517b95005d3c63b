package logos

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepositoryIDsAreFreshAndNeverReused(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	seen := map[int64]bool{}
	for i := 0; i < 5; i++ {
		l, err := repo.Create(ctx, Logo{Name: "x", ImageURL: "/x.png", DisplayOrder: 1, IsActive: true})
		require.NoError(t, err)
		assert.Positive(t, l.ID)
		assert.False(t, seen[l.ID])
		seen[l.ID] = true

		all, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, i+1)
	}

	deleted, err := repo.Delete(ctx, 5)
	require.NoError(t, err)
	require.True(t, deleted)

	l, err := repo.Create(ctx, Logo{Name: "y", ImageURL: "/y.png", DisplayOrder: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(6), l.ID)
}

func TestMemoryRepositoryOrderingAndActiveSubset(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	seed := []Logo{
		{Name: "c", ImageURL: "/c.png", DisplayOrder: 3, IsActive: true},
		{Name: "a", ImageURL: "/a.png", DisplayOrder: 1, IsActive: false},
		{Name: "b1", ImageURL: "/b.png", DisplayOrder: 2, IsActive: true},
		{Name: "b2", ImageURL: "/b.png", DisplayOrder: 2, IsActive: true},
	}
	for _, l := range seed {
		_, err := repo.Create(ctx, l)
		require.NoError(t, err)
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	names := make([]string, 0, len(all))
	for i, l := range all {
		names = append(names, l.Name)
		if i > 0 {
			assert.LessOrEqual(t, all[i-1].DisplayOrder, l.DisplayOrder)
		}
	}
	assert.Equal(t, []string{"a", "b1", "b2", "c"}, names)

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	var want []Logo
	for _, l := range all {
		if l.IsActive {
			want = append(want, l)
		}
	}
	assert.Equal(t, want, active)
}

func TestMemoryRepositoryGetUpdateDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	_, ok, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	created, err := repo.Create(ctx, Logo{Name: "Acme", ImageURL: "/a.png", DisplayOrder: 1, IsActive: true})
	require.NoError(t, err)

	inactive := false
	updated, ok, err := repo.Update(ctx, created.ID, Patch{IsActive: &inactive})
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "Acme", updated.Name)

	_, ok, err = repo.Update(ctx, 999, Patch{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, ok)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestMemoryRepositoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	created, err := repo.Create(ctx, Logo{Name: "Acme", ImageURL: "/a.png", AltText: stringPtr("alt"), DisplayOrder: 1})
	require.NoError(t, err)
	*created.AltText = "mutated"

	got, ok, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "alt", *got.AltText)
}

func TestUnavailableRepositoryFails(t *testing.T) {
	ctx := context.Background()
	var repo Repository = UnavailableRepository{}

	_, err := repo.List(ctx)
	assert.ErrorIs(t, err, ErrUnavailable)
	_, err = repo.ListActive(ctx)
	assert.ErrorIs(t, err, ErrUnavailable)
	_, _, err = repo.Get(ctx, 1)
	assert.ErrorIs(t, err, ErrUnavailable)
	_, err = repo.Create(ctx, Logo{})
	assert.ErrorIs(t, err, ErrUnavailable)
	_, _, err = repo.Update(ctx, 1, Patch{})
	assert.ErrorIs(t, err, ErrUnavailable)
	_, err = repo.Delete(ctx, 1)
	assert.ErrorIs(t, err, ErrUnavailable)
}
