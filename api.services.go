package main

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

// BookServiceProvider describes the business operations on books.
type BookServiceProvider interface {
	GetAll(ctx context.Context) ([]BookRepresentation, error)
	GetOne(ctx context.Context, id int64) (BookRepresentation, error)
	Add(ctx context.Context, rep BookRepresentation) (BookRepresentation, error)
	Update(ctx context.Context, id int64, rep BookRepresentation) (BookRepresentation, error)
	Delete(ctx context.Context, id int64) error
}

type BookService struct {
	logger  *zap.Logger
	config  *Config
	ids     UIDHandler
	storage BookStorage
}

func NewBookService(logger *zap.Logger, config *Config, ids UIDHandler, storage BookStorage) BookServiceProvider {
	return &BookService{
		logger:  logger,
		config:  config,
		ids:     ids,
		storage: storage,
	}
}

// GetAll returns every book in the order given by the storage.
func (bs *BookService) GetAll(ctx context.Context) ([]BookRepresentation, error) {
	books, err := bs.storage.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToRepresentations(books)
}

// GetOne returns ErrBookNotFound when no book has the given id.
func (bs *BookService) GetOne(ctx context.Context, id int64) (BookRepresentation, error) {
	book, err := bs.storage.GetOne(ctx, id)
	if err != nil {
		return BookRepresentation{}, err
	}
	return ToRepresentation(book)
}

// Add stores a new book. Any id sent by the caller is ignored and a
// missing uuid is generated.
func (bs *BookService) Add(ctx context.Context, rep BookRepresentation) (BookRepresentation, error) {
	book, err := ToEntity(rep)
	if err != nil {
		return BookRepresentation{}, err
	}
	if book.ExternalID == uuid.Nil {
		if book.ExternalID, err = bs.ids.NewExternalID(); err != nil {
			return BookRepresentation{}, fmt.Errorf("failed to generate book uuid: %w", err)
		}
	}
	book, err = bs.storage.Save(ctx, book)
	if err != nil {
		bs.logger.Error("service: failed to add book", zap.String("book.uuid", book.ExternalID.String()), zap.Error(err))
		return BookRepresentation{}, err
	}
	bs.logger.Debug("service: book added", zap.Int64("book.id", book.ID))
	return ToRepresentation(book)
}

// Update replaces every field of an existing book except its id.
// An omitted uuid is the one exception: the stored uuid is kept.
// Nothing is written when the book does not exist.
func (bs *BookService) Update(ctx context.Context, id int64, rep BookRepresentation) (BookRepresentation, error) {
	existing, err := bs.storage.GetOne(ctx, id)
	if err != nil {
		return BookRepresentation{}, err
	}
	incoming, err := ToEntity(rep)
	if err != nil {
		return BookRepresentation{}, err
	}

	// the external id is mandatory so an omitted uuid keeps the stored one.
	if incoming.ExternalID != uuid.Nil {
		existing.ExternalID = incoming.ExternalID
	}
	existing.ParentID = incoming.ParentID
	existing.ParentExternalID = incoming.ParentExternalID
	existing.IsCatalog = incoming.IsCatalog
	existing.Title = incoming.Title
	existing.Author = incoming.Author

	book, err := bs.storage.Save(ctx, existing)
	if err != nil {
		bs.logger.Error("service: failed to update book", zap.Int64("book.id", id), zap.Error(err))
		return BookRepresentation{}, err
	}
	return ToRepresentation(book)
}

// Delete removes the book with the given id or returns ErrBookNotFound.
func (bs *BookService) Delete(ctx context.Context, id int64) error {
	if _, err := bs.storage.GetOne(ctx, id); err != nil {
		return err
	}
	if err := bs.storage.Delete(ctx, id); err != nil {
		bs.logger.Error("service: failed to delete book", zap.Int64("book.id", id), zap.Error(err))
		return err
	}
	return nil
}
