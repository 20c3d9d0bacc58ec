package item

import (
	"catalog/pkg/nullable"
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func mustCreate(t *testing.T, s *Store, name string, price float64) int64 {
	t.Helper()
	item, err := s.Create(context.Background(), CreateParams{Name: name, Price: ptr(price)})
	require.NoError(t, err)
	return item.ID
}

func TestStoreCreateAssignsSequentialIDs(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	first, err := s.Create(ctx, CreateParams{Name: "Laptop", Price: ptr(999.99)})
	require.NoError(t, err)
	second, err := s.Create(ctx, CreateParams{Name: "Mouse", Price: ptr(19.99)})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.True(t, first.IsAvailable)
	assert.Nil(t, first.Description)
}

func TestStoreCreateKeepsOptionalFields(t *testing.T) {
	s := NewStore()

	item, err := s.Create(context.Background(), CreateParams{
		Name:        "Lamp",
		Description: ptr("desk lamp"),
		Price:       ptr(0.0),
		IsAvailable: ptr(false),
	})
	require.NoError(t, err)

	require.NotNil(t, item.Description)
	assert.Equal(t, "desk lamp", *item.Description)
	assert.Equal(t, 0.0, item.Price)
	assert.False(t, item.IsAvailable)
}

func TestStoreCreateValidation(t *testing.T) {
	tests := []struct {
		name   string
		params CreateParams
	}{
		{name: "missing name", params: CreateParams{Price: ptr(1.0)}},
		{name: "blank name", params: CreateParams{Name: "   ", Price: ptr(1.0)}},
		{name: "missing price", params: CreateParams{Name: "Laptop"}},
		{name: "negative price", params: CreateParams{Name: "Laptop", Price: ptr(-0.01)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()

			_, err := s.Create(context.Background(), tt.params)

			assert.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, 0, s.Count())
		})
	}
}

func TestStoreFailedCreateDoesNotConsumeID(t *testing.T) {
	s := NewStore()

	_, err := s.Create(context.Background(), CreateParams{Price: ptr(1.0)})
	require.Error(t, err)

	assert.Equal(t, int64(1), mustCreate(t, s, "Laptop", 1))
}

func TestStoreGetByIDRoundTrip(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	created, err := s.Create(ctx, CreateParams{Name: "Laptop", Description: ptr("pro"), Price: ptr(999.99)})
	require.NoError(t, err)

	got, err := s.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = s.GetByID(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreReturnsCopies(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	created, err := s.Create(ctx, CreateParams{Name: "Laptop", Description: ptr("pro"), Price: ptr(1.0)})
	require.NoError(t, err)
	*created.Description = "changed"

	got, err := s.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "pro", *got.Description)
}

func TestStoreUpdateEmptyPatchLeavesItemUnchanged(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	created, err := s.Create(ctx, CreateParams{Name: "Laptop", Description: ptr("pro"), Price: ptr(999.99)})
	require.NoError(t, err)

	updated, err := s.Update(ctx, created.ID, UpdateParams{})
	require.NoError(t, err)
	assert.Equal(t, created, updated)
}

func TestStoreUpdateMergesOnlyPresentFields(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	created, err := s.Create(ctx, CreateParams{Name: "Laptop", Description: ptr("pro"), Price: ptr(999.99)})
	require.NoError(t, err)

	updated, err := s.Update(ctx, created.ID, UpdateParams{Price: ptr(899.0), IsAvailable: ptr(false)})
	require.NoError(t, err)

	assert.Equal(t, "Laptop", updated.Name)
	assert.Equal(t, "pro", *updated.Description)
	assert.Equal(t, 899.0, updated.Price)
	assert.False(t, updated.IsAvailable)

	got, err := s.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestStoreUpdateDescription(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	created, err := s.Create(ctx, CreateParams{Name: "Laptop", Description: ptr("pro"), Price: ptr(1.0)})
	require.NoError(t, err)

	updated, err := s.Update(ctx, created.ID, UpdateParams{Description: nullable.Of("air")})
	require.NoError(t, err)
	assert.Equal(t, "air", *updated.Description)

	cleared, err := s.Update(ctx, created.ID, UpdateParams{Description: nullable.Null[string]()})
	require.NoError(t, err)
	assert.Nil(t, cleared.Description)
	assert.Equal(t, "Laptop", cleared.Name)
}

func TestStoreUpdateValidationLeavesItemUnchanged(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	id := mustCreate(t, s, "Laptop", 10)

	_, err := s.Update(ctx, id, UpdateParams{Name: ptr(""), Price: ptr(20.0)})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.Update(ctx, id, UpdateParams{Price: ptr(-1.0)})
	assert.ErrorIs(t, err, ErrValidation)

	got, err := s.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Laptop", got.Name)
	assert.Equal(t, 10.0, got.Price)
}

func TestStoreUpdateMissing(t *testing.T) {
	s := NewStore()

	_, err := s.Update(context.Background(), 7, UpdateParams{Name: ptr("x")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreDeleteNeverReusesIDs(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	laptop := mustCreate(t, s, "Laptop", 999.99)
	mustCreate(t, s, "Mouse", 19.99)

	deleted, err := s.Delete(ctx, laptop)
	require.NoError(t, err)
	assert.Equal(t, "Laptop", deleted.Name)

	_, err = s.GetByID(ctx, laptop)
	assert.ErrorIs(t, err, ErrNotFound)

	keyboard := mustCreate(t, s, "Keyboard", 49.99)
	assert.Equal(t, int64(3), keyboard)

	items, err := s.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(2), items[0].ID)
	assert.Equal(t, "Mouse", items[0].Name)
	assert.Equal(t, int64(3), items[1].ID)
	assert.Equal(t, "Keyboard", items[1].Name)

	_, err = s.Delete(ctx, laptop)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreDeletingNewestItemDoesNotRewindCounter(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	id := mustCreate(t, s, "Laptop", 1)
	_, err := s.Delete(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, int64(2), mustCreate(t, s, "Mouse", 1))
}

func TestStoreGetAllEmpty(t *testing.T) {
	items, err := NewStore().GetAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestStoreSearchByName(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	mustCreate(t, s, "Laptop Pro", 1999)
	mustCreate(t, s, "Mouse", 19.99)
	mustCreate(t, s, "Laptop Air", 999)

	for _, query := range []string{"PRO", "pro", "Laptop Pro", "top p"} {
		items, err := s.SearchByName(ctx, query)
		require.NoError(t, err)
		require.Len(t, items, 1, query)
		assert.Equal(t, "Laptop Pro", items[0].Name)
	}

	items, err := s.SearchByName(ctx, "laptop")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Laptop Pro", items[0].Name)
	assert.Equal(t, "Laptop Air", items[1].Name)

	items, err = s.SearchByName(ctx, "xyz")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	items, err = s.SearchByName(ctx, "")
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestStoreConcurrentCreatesYieldUniqueIDs(t *testing.T) {
	s := NewStore()
	const n = 100

	var wg sync.WaitGroup
	ids := make(chan int64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			item, err := s.Create(context.Background(), CreateParams{Name: fmt.Sprintf("item-%d", i), Price: ptr(1.0)})
			if err == nil {
				ids <- item.ID
			}
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := map[int64]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
	assert.Equal(t, n, s.Count())
}
