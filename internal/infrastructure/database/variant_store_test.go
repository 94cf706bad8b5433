package database

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"framecast/internal/domain/model"
)

func testVariant(deviceID, hash, layout string) *model.DeviceVariant {
	return &model.DeviceVariant{
		DeviceID:    deviceID,
		BlobHash:    hash,
		Layout:      layout,
		Width:       800,
		Height:      480,
		Orientation: model.OrientationLandscape,
		StoragePath: "variants/" + deviceID + "/" + hash + "-" + layout + ".jpg",
		Size:        51200,
		RenderedAt:  time.Now(),
	}
}

func TestVariantUpsert_Idempotent(t *testing.T) {
	t.Parallel()
	uri := setupMongo(t)
	db := connectTest(t, uri, "variantupsert")

	store := NewVariantStore(db)
	hash := strings.Repeat("a", 64)

	first := testVariant("kitchen", hash, model.LayoutMonotych)
	require.NoError(t, store.Upsert(context.Background(), first))

	// Re-rendering replaces the record rather than adding a second one.
	second := testVariant("kitchen", hash, model.LayoutMonotych)
	second.Size = 60000
	require.NoError(t, store.Upsert(context.Background(), second))

	variants, err := store.ListByBlob(context.Background(), hash)
	require.NoError(t, err)
	require.Len(t, variants, 1)
	require.Equal(t, int64(60000), variants[0].Size)
}

func TestVariantUpsert_DistinctLayoutsCoexist(t *testing.T) {
	t.Parallel()
	uri := setupMongo(t)
	db := connectTest(t, uri, "variantlayouts")

	store := NewVariantStore(db)
	hash := strings.Repeat("b", 64)

	require.NoError(t, store.Upsert(context.Background(), testVariant("kitchen", hash, model.LayoutMonotych)))
	require.NoError(t, store.Upsert(context.Background(), testVariant("kitchen", hash, model.LayoutDiptych)))
	require.NoError(t, store.Upsert(context.Background(), testVariant("hall", hash, model.LayoutMonotych)))

	variants, err := store.ListByBlob(context.Background(), hash)
	require.NoError(t, err)
	require.Len(t, variants, 3)
}

func TestVariantDeleteByBlob(t *testing.T) {
	t.Parallel()
	uri := setupMongo(t)
	db := connectTest(t, uri, "variantdelete")

	store := NewVariantStore(db)
	target := strings.Repeat("c", 64)
	other := strings.Repeat("d", 64)

	require.NoError(t, store.Upsert(context.Background(), testVariant("kitchen", target, model.LayoutMonotych)))
	require.NoError(t, store.Upsert(context.Background(), testVariant("hall", target, model.LayoutDiptych)))
	require.NoError(t, store.Upsert(context.Background(), testVariant("kitchen", other, model.LayoutMonotych)))

	count, err := store.DeleteByBlob(context.Background(), target)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)

	remaining, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	require.Equal(t, other, remaining[0].BlobHash)
}
