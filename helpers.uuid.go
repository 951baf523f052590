package main

import (
	"github.com/gofrs/uuid"
)

var _ UIDHandler = (*IDsHandler)(nil) // ensure IDsHandler implements UIDHandler.

// UIDHandler provides request ids and book external ids.
type UIDHandler interface {
	Generate(prefix string) string
	NewExternalID() (uuid.UUID, error)
}

// IDsHandler implements the UIDHandler interface.
type IDsHandler struct{}

// NewIDsHandler returns a ready to use IDsHandler.
func NewIDsHandler() *IDsHandler {
	return &IDsHandler{}
}

// Generate provides a random unique identifier prefixed with its kind.
func (idh *IDsHandler) Generate(prefix string) string {
	id, _ := uuid.NewV4()
	return prefix + ":" + id.String()
}

// NewExternalID provides a random version 4 uuid for a new book.
func (idh *IDsHandler) NewExternalID() (uuid.UUID, error) {
	return uuid.NewV4()
}
