package main

import (
	"context"

	"github.com/gofrs/uuid"
)

// Book represents a book entity as persisted by the storage backends.
// A catalog node is a Book with IsCatalog set, living in the same table.
type Book struct {
	ID               int64         `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	ExternalID       uuid.UUID     `json:"uuid" gorm:"column:uuid;type:uuid"`
	ParentID         *int64        `json:"parentId" gorm:"column:parent_id"`
	ParentExternalID uuid.NullUUID `json:"parentUuid" gorm:"column:parent_uuid;type:uuid"`
	IsCatalog        bool          `json:"isCatalog" gorm:"column:is_catalog;not null;default:false"`
	Title            string        `json:"title" gorm:"column:title"`
	Author           string        `json:"author" gorm:"column:author"`
}

// TableName tells gorm which table holds the books.
func (Book) TableName() string {
	return "books"
}

// BookRepresentation is the wire form of a book exposed over HTTP.
// Nullable fields are pointers so that absent values encode as null.
type BookRepresentation struct {
	ID         *int64  `json:"id" example:"1"`
	UUID       *string `json:"uuid" example:"123e4567-e89b-12d3-a456-426614174000"`
	ParentID   *int64  `json:"parentId" example:"0"`
	ParentUUID *string `json:"parentUuid" example:"123e4567-e89b-12d3-a456-426614174000"`
	IsCatalog  bool    `json:"isCatalog" example:"false"`
	Title      string  `json:"title" example:"The Great Gatsby"`
	Author     string  `json:"author" example:"F. Scott Fitzgerald"`
}

// BookStorage defines possible operations on book entity.
type BookStorage interface {
	// GetAll returns every stored book. No ordering is promised.
	GetAll(ctx context.Context) ([]Book, error)
	// GetOne returns ErrBookNotFound when the id is unknown.
	GetOne(ctx context.Context, id int64) (Book, error)
	// Save inserts the book when its ID is zero and assigns a new ID,
	// otherwise it replaces every column of the existing record.
	Save(ctx context.Context, book Book) (Book, error)
	// Delete is a no-op when the id is unknown.
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
}
