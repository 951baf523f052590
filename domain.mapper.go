package main

import (
	"errors"
	"fmt"

	"github.com/gofrs/uuid"
)

// ErrMissingExternalID is returned when a stored book has no external id.
// Every book gets one at creation so this points to corrupted data.
var ErrMissingExternalID = errors.New("book has no external id")

// MappingError reports a representation field which could not be
// converted into its entity form. It is not a request binding failure
// so the handlers answer it like any other internal error.
type MappingError struct {
	Field string
	Err   error
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("failed to map %s: %v", e.Field, e.Err)
}

func (e *MappingError) Unwrap() error {
	return e.Err
}

// ToRepresentation converts a stored book into its wire form.
func ToRepresentation(b Book) (BookRepresentation, error) {
	if b.ExternalID == uuid.Nil {
		return BookRepresentation{}, fmt.Errorf("book %d: %w", b.ID, ErrMissingExternalID)
	}
	id := b.ID
	externalID := b.ExternalID.String()
	rep := BookRepresentation{
		ID:        &id,
		UUID:      &externalID,
		IsCatalog: b.IsCatalog,
		Title:     b.Title,
		Author:    b.Author,
	}
	if b.ParentID != nil {
		parentID := *b.ParentID
		rep.ParentID = &parentID
	}
	if b.ParentExternalID.Valid {
		parentExternalID := b.ParentExternalID.UUID.String()
		rep.ParentUUID = &parentExternalID
	}
	return rep, nil
}

// ToRepresentations maps a list of books, failing on the first bad one.
func ToRepresentations(books []Book) ([]BookRepresentation, error) {
	reps := make([]BookRepresentation, 0, len(books))
	for _, b := range books {
		rep, err := ToRepresentation(b)
		if err != nil {
			return nil, err
		}
		reps = append(reps, rep)
	}
	return reps, nil
}

// ToEntity converts a wire book into an entity. The ID is never copied
// since only the storage assigns it.
func ToEntity(rep BookRepresentation) (Book, error) {
	book := Book{
		IsCatalog: rep.IsCatalog,
		Title:     rep.Title,
		Author:    rep.Author,
	}
	if rep.UUID != nil {
		externalID, err := uuid.FromString(*rep.UUID)
		if err != nil {
			return Book{}, &MappingError{Field: "uuid", Err: err}
		}
		book.ExternalID = externalID
	}
	if rep.ParentID != nil {
		parentID := *rep.ParentID
		book.ParentID = &parentID
	}
	if rep.ParentUUID != nil {
		parentExternalID, err := uuid.FromString(*rep.ParentUUID)
		if err != nil {
			return Book{}, &MappingError{Field: "parentUuid", Err: err}
		}
		book.ParentExternalID = uuid.NullUUID{UUID: parentExternalID, Valid: true}
	}
	return book, nil
}
