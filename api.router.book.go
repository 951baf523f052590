package main

import (
	"github.com/julienschmidt/httprouter"
)

// BookRoutesPrefixes lists the path prefixes the book endpoints are served under.
// The v1 singular form is kept for clients not yet migrated to v2.
var BookRoutesPrefixes = []string{"/api/v1/book", "/api/v2/books"}

// SetupBookRoutes injects the book related api endpoints.
func (api *APIHandler) SetupBookRoutes(router *httprouter.Router, m *MiddlewareMap) *httprouter.Router {
	router.RedirectTrailingSlash = true
	for _, prefix := range BookRoutesPrefixes {
		router.GET(prefix, m.public(api.GetAllBooks))
		router.POST(prefix, m.public(api.CreateBook))
		router.GET(prefix+"/:id", m.public(api.GetOneBook))
		router.PUT(prefix+"/:id", m.public(api.UpdateBook))
		router.DELETE(prefix+"/:id", m.public(api.DeleteOneBook))
	}
	return router
}
