package docstore

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ma3_reports/internal/models"
)

func testGormStore(t *testing.T) *GormStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Document{}))
	return NewGormStore(db)
}

func TestGormCollectionSetGet(t *testing.T) {
	ctx := context.Background()
	col := testGormStore(t).Collection("maps")

	require.NoError(t, col.Set(ctx, "1", map[string]any{"id": "1", "url": "https://example.com/map.png"}))

	doc, err := col.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "1", doc.ID)
	assert.Equal(t, "https://example.com/map.png", doc.Data["url"])

	_, err = col.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormCollectionDuplicateID(t *testing.T) {
	ctx := context.Background()
	col := testGormStore(t).Collection("maps")

	require.NoError(t, col.Set(ctx, "1", map[string]any{"id": "1"}))
	assert.ErrorIs(t, col.Set(ctx, "1", map[string]any{"id": "1"}), ErrDuplicateID)
}

func TestGormCollectionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := testGormStore(t)
	maps := store.Collection("maps")
	reports := store.Collection("reports")

	require.NoError(t, maps.Set(ctx, "1", map[string]any{"id": "1"}))
	require.NoError(t, reports.Set(ctx, "1", map[string]any{"id": "1"}))

	docs, err := maps.Find(ctx, Query{})
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestGormCollectionFind(t *testing.T) {
	ctx := context.Background()
	col := testGormStore(t).Collection("users")

	for i := 1; i <= 5; i++ {
		id := fmt.Sprintf("%d", i)
		userType := "user"
		if i%2 == 0 {
			userType = "admin"
		}
		require.NoError(t, col.Set(ctx, id, map[string]any{"id": id, "type": userType}))
	}

	docs, err := col.Find(ctx, Query{})
	require.NoError(t, err)
	require.Len(t, docs, 5)
	assert.Equal(t, "1", docs[0].ID)

	// JSON field filter
	docs, err = col.Find(ctx, Query{}.Where("type", "admin"))
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "2", docs[0].ID)
	assert.Equal(t, "4", docs[1].ID)

	// pagination
	docs, err = col.Find(ctx, Query{}.Limit(2).StartAfter("2"))
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "3", docs[0].ID)
	assert.Equal(t, "4", docs[1].ID)
}

func TestGormCollectionUpdateMergesFields(t *testing.T) {
	ctx := context.Background()
	col := testGormStore(t).Collection("routes")

	require.NoError(t, col.Set(ctx, "1", map[string]any{"id": "1", "name": "Main St", "active": true}))
	require.NoError(t, col.Update(ctx, "1", map[string]any{"name": "River Rd"}))

	doc, err := col.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "River Rd", doc.Data["name"])
	assert.Equal(t, true, doc.Data["active"])

	assert.ErrorIs(t, col.Update(ctx, "missing", map[string]any{"a": "b"}), ErrNotFound)
}

func TestGormCollectionDelete(t *testing.T) {
	ctx := context.Background()
	col := testGormStore(t).Collection("maps")

	require.NoError(t, col.Set(ctx, "1", map[string]any{"id": "1"}))
	require.NoError(t, col.Delete(ctx, "1"))
	assert.ErrorIs(t, col.Delete(ctx, "1"), ErrNotFound)
}

func TestGormCollectionDeleteMatching(t *testing.T) {
	ctx := context.Background()
	col := testGormStore(t).Collection("reports")

	for i := 0; i < 1200; i++ {
		id := fmt.Sprintf("%06d", i)
		require.NoError(t, col.Set(ctx, id, map[string]any{"id": id}))
	}

	ids, err := col.DeleteMatching(ctx, Query{})
	require.NoError(t, err)
	assert.Len(t, ids, 1200)

	remaining, err := col.Find(ctx, Query{})
	require.NoError(t, err)
	assert.Empty(t, remaining)
}
