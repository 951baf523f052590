package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

// GetAllBooks godoc
//
//	@Summary		Get all books
//	@Description	Retrieves a collection of all books in the system.
//	@Tags			Book
//	@Produce		json
//	@Success		200	{array}		BookRepresentation
//	@Failure		500	{object}	APIError
//	@Router			/api/v1/book [get]
//	@Router			/api/v2/books [get]
func (api *APIHandler) GetAllBooks(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	requestID := GetValueFromContext(r.Context(), RequestIDContextKey)
	books, err := api.bookService.GetAll(r.Context())
	if err != nil {
		api.logger.Error("failed to get all books", zap.String("request.id", requestID), zap.Error(err))
		api.writeBookError(w, r, err, "get all books", 0)
		return
	}
	api.logger.Info("success to get all books", zap.String("request.id", requestID), zap.Int("books.total", len(books)))
	if err = WriteResponse(r.Context(), w, http.StatusOK, books); err != nil {
		api.logger.Error("failed to send response", zap.String("request.id", requestID), zap.Error(err))
	}
}

// GetOneBook godoc
//
//	@Summary		Get book by ID
//	@Description	Retrieves a book by its ID.
//	@Tags			Book
//	@Produce		json
//	@Param			id	path		int	true	"ID of the book to retrieve"	example(15)
//	@Success		200	{object}	BookRepresentation
//	@Failure		400	{object}	APIError
//	@Failure		404	{object}	APIError
//	@Failure		500	{object}	APIError
//	@Router			/api/v1/book/{id} [get]
//	@Router			/api/v2/books/{id} [get]
func (api *APIHandler) GetOneBook(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	requestID := GetValueFromContext(r.Context(), RequestIDContextKey)
	id, err := ParseBookID(ps.ByName("id"))
	if err != nil {
		api.logger.Error("book id provided is not valid", zap.String("book.id", ps.ByName("id")), zap.String("request.id", requestID))
		api.writeBookError(w, r, err, "get the book", 0)
		return
	}
	book, err := api.bookService.GetOne(r.Context(), id)
	if err != nil {
		api.logger.Error("failed to get book", zap.Int64("book.id", id), zap.String("request.id", requestID), zap.Error(err))
		api.writeBookError(w, r, err, "get the book", id)
		return
	}
	api.logger.Info("success to get book", zap.Int64("book.id", id), zap.String("request.id", requestID))
	if err = WriteResponse(r.Context(), w, http.StatusOK, book); err != nil {
		api.logger.Error("failed to send response", zap.String("request.id", requestID), zap.Error(err))
	}
}

// CreateBook godoc
//
//	@Summary		Add a new book
//	@Description	Adds a new book to the system. The id is assigned by the server.
//	@Tags			Book
//	@Accept			json
//	@Produce		json
//	@Param			book	body		BookRepresentation	true	"Book to add"
//	@Success		201		{object}	BookRepresentation
//	@Failure		400		{object}	APIError
//	@Failure		500		{object}	APIError
//	@Router			/api/v1/book [post]
//	@Router			/api/v2/books [post]
func (api *APIHandler) CreateBook(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var rep BookRepresentation
	requestID := GetValueFromContext(r.Context(), RequestIDContextKey)
	if err := DecodeBookRequestBody(w, r, &rep); err != nil {
		api.logger.Error("failed to create book", zap.String("request.id", requestID), zap.Error(err))
		api.writeBookError(w, r, err, "create the book", 0)
		return
	}

	book, err := api.bookService.Add(r.Context(), rep)
	if err != nil {
		api.logger.Error("failed to create book", zap.String("request.id", requestID), zap.Error(err))
		api.writeBookError(w, r, err, "create the book", 0)
		return
	}
	api.logger.Info("success to create book", zap.Int64("book.id", *book.ID), zap.String("request.id", requestID))
	if err = WriteResponse(r.Context(), w, http.StatusCreated, book); err != nil {
		api.logger.Error("failed to send response", zap.String("request.id", requestID), zap.Error(err))
	}
}

// UpdateBook godoc
//
//	@Summary		Update book by ID
//	@Description	Replaces every field of a book except its ID.
//	@Tags			Book
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"ID of the book to update"	example(15)
//	@Param			book	body		BookRepresentation	true	"New book values"
//	@Success		200		{object}	BookRepresentation
//	@Failure		400		{object}	APIError
//	@Failure		404		{object}	APIError
//	@Failure		500		{object}	APIError
//	@Router			/api/v1/book/{id} [put]
//	@Router			/api/v2/books/{id} [put]
func (api *APIHandler) UpdateBook(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var rep BookRepresentation
	requestID := GetValueFromContext(r.Context(), RequestIDContextKey)
	id, err := ParseBookID(ps.ByName("id"))
	if err != nil {
		api.logger.Error("book id provided is not valid", zap.String("book.id", ps.ByName("id")), zap.String("request.id", requestID))
		api.writeBookError(w, r, err, "update the book", 0)
		return
	}
	if err = DecodeBookRequestBody(w, r, &rep); err != nil {
		api.logger.Error("failed to update book", zap.Int64("book.id", id), zap.String("request.id", requestID), zap.Error(err))
		api.writeBookError(w, r, err, "update the book", id)
		return
	}

	book, err := api.bookService.Update(r.Context(), id, rep)
	if err != nil {
		api.logger.Error("failed to update book", zap.Int64("book.id", id), zap.String("request.id", requestID), zap.Error(err))
		api.writeBookError(w, r, err, "update the book", id)
		return
	}
	api.logger.Info("success to update book", zap.Int64("book.id", id), zap.String("request.id", requestID))
	if err = WriteResponse(r.Context(), w, http.StatusOK, book); err != nil {
		api.logger.Error("failed to send response", zap.String("request.id", requestID), zap.Error(err))
	}
}

// DeleteOneBook godoc
//
//	@Summary		Delete book by ID
//	@Description	Deletes a book by its ID.
//	@Tags			Book
//	@Param			id	path	int	true	"ID of the book to delete"	example(15)
//	@Success		204
//	@Failure		400	{object}	APIError
//	@Failure		404	{object}	APIError
//	@Failure		500	{object}	APIError
//	@Router			/api/v1/book/{id} [delete]
//	@Router			/api/v2/books/{id} [delete]
func (api *APIHandler) DeleteOneBook(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	requestID := GetValueFromContext(r.Context(), RequestIDContextKey)
	id, err := ParseBookID(ps.ByName("id"))
	if err != nil {
		api.logger.Error("book id provided is not valid", zap.String("book.id", ps.ByName("id")), zap.String("request.id", requestID))
		api.writeBookError(w, r, err, "delete the book", 0)
		return
	}
	if err = api.bookService.Delete(r.Context(), id); err != nil {
		api.logger.Error("failed to delete book", zap.Int64("book.id", id), zap.String("request.id", requestID), zap.Error(err))
		api.writeBookError(w, r, err, "delete the book", id)
		return
	}
	api.logger.Info("success to delete book", zap.Int64("book.id", id), zap.String("request.id", requestID))
	if err = WriteNoContent(r.Context(), w); err != nil {
		api.logger.Error("failed to send response", zap.String("request.id", requestID), zap.Error(err))
	}
}

// writeBookError translates a book operation error into its http status:
// 404 for a missing book, 413 for a too large body, 400 for a request which
// could not be bound and 500 for anything else, uuid mapping failures included.
func (api *APIHandler) writeBookError(w http.ResponseWriter, r *http.Request, err error, action string, id int64) {
	var verr *ValidationError
	var maxErr *http.MaxBytesError
	switch {
	case errors.Is(err, ErrBookNotFound):
		msg := fmt.Sprintf("book with id %d not found", id)
		api.writeError(w, r, http.StatusNotFound, msg, msg)
	case errors.As(err, &maxErr):
		api.writeError(w, r, http.StatusRequestEntityTooLarge, "failed to "+action,
			fmt.Sprintf("request body exceeds %d bytes", maxErr.Limit))
	case errors.As(err, &verr):
		api.writeError(w, r, http.StatusBadRequest, "failed to "+action, verr.Error())
	default:
		api.writeError(w, r, http.StatusInternalServerError, "failed to "+action, "internal server error")
	}
}
