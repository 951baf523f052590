package main

import (
	"context"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runBookStorageTests checks the behavior every storage backend must share.
// The storage is expected to be empty when called.
func runBookStorageTests(t *testing.T, store BookStorage) {
	t.Helper()
	ctx := context.Background()
	catalog := Book{
		ExternalID: uuid.Must(uuid.FromString(testBookUUID)),
		ParentID:   int64Ptr(0),
		IsCatalog:  true,
		Title:      "Catalog One",
		Author:     "Catalog One",
	}
	var catalogID int64

	t.Run("Get From Empty Store", func(t *testing.T) {
		books, err := store.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, books)
	})

	t.Run("Insert Assigns ID", func(t *testing.T) {
		saved, err := store.Save(ctx, catalog)
		require.NoError(t, err)
		assert.NotZero(t, saved.ID)
		catalogID = saved.ID

		other, err := store.Save(ctx, Book{
			ExternalID:       uuid.Must(uuid.FromString(testParentUUID)),
			ParentID:         &catalogID,
			ParentExternalID: uuid.NullUUID{UUID: catalog.ExternalID, Valid: true},
			Title:            "Book Two",
			Author:           "Author B",
		})
		require.NoError(t, err)
		assert.NotEqual(t, catalogID, other.ID)
	})

	t.Run("Get Existent Book", func(t *testing.T) {
		book, err := store.GetOne(ctx, catalogID)
		require.NoError(t, err)
		catalog.ID = catalogID
		assert.Equal(t, catalog, book)
		assert.False(t, book.ParentExternalID.Valid)
	})

	t.Run("Get Non-existent Book", func(t *testing.T) {
		_, err := store.GetOne(ctx, 999999)
		assert.ErrorIs(t, err, ErrBookNotFound)
	})

	t.Run("Get All Books", func(t *testing.T) {
		books, err := store.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, books, 2)
	})

	t.Run("Update Existent Book", func(t *testing.T) {
		updated := catalog
		updated.Title = "Catalog Renamed"
		updated.ParentID = nil
		_, err := store.Save(ctx, updated)
		require.NoError(t, err)

		book, err := store.GetOne(ctx, catalogID)
		require.NoError(t, err)
		assert.Equal(t, "Catalog Renamed", book.Title)
		assert.Nil(t, book.ParentID)

		books, err := store.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, books, 2)
	})

	t.Run("Delete Existent Book", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, catalogID))
		_, err := store.GetOne(ctx, catalogID)
		assert.ErrorIs(t, err, ErrBookNotFound)
	})

	t.Run("Delete Non-existent Book", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx, 999999))
	})

	t.Run("Delete All Books", func(t *testing.T) {
		require.NoError(t, store.DeleteAll(ctx))
		books, err := store.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, books)
	})
}
