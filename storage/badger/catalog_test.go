package badger

import (
	"context"
	"fmt"
	"testing"

	"github.com/poiesic/assessrec/core"
	"github.com/poiesic/assessrec/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) storage.CatalogRepository {
	t.Helper()
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

func testItem(n int) *core.CatalogItem {
	url := fmt.Sprintf("https://example.com/view/item-%d", n)
	return &core.CatalogItem{
		Id:       core.IDFromContent(url),
		Label:    fmt.Sprintf("A%04d", n),
		Name:     fmt.Sprintf("Assessment %d", n),
		URL:      url,
		Category: core.CategorySkills,
		Skills:   []string{"python"},
		Text:     "A technical assessment.",
		Vector:   []float32{float32(n), 1},
	}
}

func TestAddItems(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	added, err := repo.AddItems(ctx, testItem(1), testItem(2))
	require.NoError(t, err)
	require.Len(t, added, 2)
	for _, item := range added {
		assert.False(t, item.InsertedAt.IsZero())
		assert.Equal(t, item.InsertedAt, item.UpdatedAt)
	}
}

func TestAddItems_DuplicateID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.AddItems(ctx, testItem(1))
	require.NoError(t, err)

	_, err = repo.AddItems(ctx, testItem(1))
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)
}

func TestGetItem(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	item := testItem(3)
	_, err := repo.AddItems(ctx, item)
	require.NoError(t, err)

	got, err := repo.GetItem(ctx, item.Id)
	require.NoError(t, err)
	assert.Equal(t, item.Label, got.Label)
	assert.Equal(t, item.Skills, got.Skills)
	assert.Equal(t, item.Vector, got.Vector)
}

func TestGetItem_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetItem(context.Background(), core.ID(999))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGetItems_SkipsMissing(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	item := testItem(4)
	_, err := repo.AddItems(ctx, item)
	require.NoError(t, err)

	got, err := repo.GetItems(ctx, item.Id, core.ID(12345))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, item.Id, got[0].Id)
}

func TestUpdateItems(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	item := testItem(5)
	_, err := repo.AddItems(ctx, item)
	require.NoError(t, err)

	item.Vector = []float32{9, 9}
	updated, err := repo.UpdateItems(ctx, item)
	require.NoError(t, err)
	require.Len(t, updated, 1)

	got, err := repo.GetItem(ctx, item.Id)
	require.NoError(t, err)
	assert.Equal(t, []float32{9, 9}, got.Vector)
}

func TestUpdateItems_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.UpdateItems(context.Background(), testItem(6))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDeleteItems(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	item := testItem(7)
	_, err := repo.AddItems(ctx, item)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteItems(ctx, item.Id))

	_, err = repo.GetItem(ctx, item.Id)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestDeleteItems_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.DeleteItems(context.Background(), core.ID(404))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestListItems_LabelOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	// Insert out of label order; listing must come back in label order.
	_, err := repo.AddItems(ctx, testItem(3), testItem(1), testItem(2))
	require.NoError(t, err)

	items, err := repo.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "A0001", items[0].Label)
	assert.Equal(t, "A0002", items[1].Label)
	assert.Equal(t, "A0003", items[2].Label)
}

func TestCount(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = repo.AddItems(ctx, testItem(1), testItem(2))
	require.NoError(t, err)

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
