package main

import (
	"errors"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func stringPtr(v string) *string { return &v }

const (
	testBookUUID   = "11111111-1111-1111-1111-111111111111"
	testParentUUID = "22222222-2222-2222-2222-222222222222"
)

// TestToRepresentation ensures all fields are copied and the nil parent uuid stays null.
func TestToRepresentation(t *testing.T) {
	t.Run("without parent uuid", func(t *testing.T) {
		book := Book{
			ID:         1,
			ExternalID: uuid.Must(uuid.FromString(testBookUUID)),
			ParentID:   int64Ptr(0),
			IsCatalog:  true,
			Title:      "Catalog One",
			Author:     "Catalog One",
		}
		rep, err := ToRepresentation(book)
		require.NoError(t, err)
		assert.Equal(t, int64(1), *rep.ID)
		assert.Equal(t, testBookUUID, *rep.UUID)
		assert.Equal(t, int64(0), *rep.ParentID)
		assert.Nil(t, rep.ParentUUID)
		assert.True(t, rep.IsCatalog)
		assert.Equal(t, "Catalog One", rep.Title)
		assert.Equal(t, "Catalog One", rep.Author)
	})

	t.Run("with parent uuid", func(t *testing.T) {
		book := Book{
			ID:               2,
			ExternalID:       uuid.Must(uuid.FromString(testBookUUID)),
			ParentID:         int64Ptr(1),
			ParentExternalID: uuid.NullUUID{UUID: uuid.Must(uuid.FromString(testParentUUID)), Valid: true},
			Title:            "Book Two",
			Author:           "Author B",
		}
		rep, err := ToRepresentation(book)
		require.NoError(t, err)
		require.NotNil(t, rep.ParentUUID)
		assert.Equal(t, testParentUUID, *rep.ParentUUID)
		assert.Equal(t, int64(1), *rep.ParentID)
		assert.False(t, rep.IsCatalog)
	})

	t.Run("without parent id", func(t *testing.T) {
		rep, err := ToRepresentation(Book{ID: 3, ExternalID: uuid.Must(uuid.FromString(testBookUUID))})
		require.NoError(t, err)
		assert.Nil(t, rep.ParentID)
	})

	t.Run("without external id", func(t *testing.T) {
		_, err := ToRepresentation(Book{ID: 4, Title: "broken"})
		assert.ErrorIs(t, err, ErrMissingExternalID)
	})
}

// TestToEntity ensures the id is never copied and uuids are parsed.
func TestToEntity(t *testing.T) {
	t.Run("valid representation", func(t *testing.T) {
		rep := BookRepresentation{
			ID:         int64Ptr(42),
			UUID:       stringPtr(testBookUUID),
			ParentID:   int64Ptr(7),
			ParentUUID: stringPtr(testParentUUID),
			IsCatalog:  true,
			Title:      "Title",
			Author:     "Author",
		}
		book, err := ToEntity(rep)
		require.NoError(t, err)
		assert.Equal(t, int64(0), book.ID)
		assert.Equal(t, testBookUUID, book.ExternalID.String())
		assert.Equal(t, int64(7), *book.ParentID)
		assert.True(t, book.ParentExternalID.Valid)
		assert.Equal(t, testParentUUID, book.ParentExternalID.UUID.String())
		assert.True(t, book.IsCatalog)
		assert.Equal(t, "Title", book.Title)
		assert.Equal(t, "Author", book.Author)
	})

	t.Run("null uuids", func(t *testing.T) {
		book, err := ToEntity(BookRepresentation{Title: "Title"})
		require.NoError(t, err)
		assert.Equal(t, uuid.Nil, book.ExternalID)
		assert.False(t, book.ParentExternalID.Valid)
		assert.Nil(t, book.ParentID)
	})

	testCases := []struct {
		name  string
		rep   BookRepresentation
		field string
	}{
		{"invalid uuid", BookRepresentation{UUID: stringPtr("not-a-uuid")}, "uuid"},
		{"invalid parent uuid", BookRepresentation{UUID: stringPtr(testBookUUID), ParentUUID: stringPtr("1234")}, "parentUuid"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ToEntity(tc.rep)
			var merr *MappingError
			require.ErrorAs(t, err, &merr)
			assert.Equal(t, tc.field, merr.Field)
			var verr *ValidationError
			assert.False(t, errors.As(err, &verr))
		})
	}
}

// TestMapperRoundTrip ensures a representation survives the way to the entity
// and back, except for its id which only the storage sets.
func TestMapperRoundTrip(t *testing.T) {
	reps := []BookRepresentation{
		{ID: int64Ptr(9), UUID: stringPtr(testBookUUID), ParentID: int64Ptr(0), IsCatalog: true, Title: "Catalog One", Author: "Catalog One"},
		{UUID: stringPtr(testBookUUID), ParentID: int64Ptr(1), ParentUUID: stringPtr(testParentUUID), Title: "Book Two", Author: "Author B"},
		{UUID: stringPtr(testParentUUID), Title: "", Author: ""},
	}
	for _, rep := range reps {
		book, err := ToEntity(rep)
		require.NoError(t, err)
		got, err := ToRepresentation(book)
		require.NoError(t, err)

		assert.Equal(t, int64(0), *got.ID)
		got.ID, rep.ID = nil, nil
		assert.Equal(t, rep, got)
	}
}
