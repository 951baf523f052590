package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestMiddlewareAPI() *APIHandler {
	return NewAPIHandler(zap.NewNop(), &Config{}, &Statistics{started: NewMockClocker().Now()}, NewMockClocker(), NewMockUIDHandler("abc", testGeneratedUUID), nil)
}

// TestMiddlewaresStacks ensures we get both public and ops middlewares
// stacks with exact number of elements in those stacks.
func TestMiddlewaresStacks(t *testing.T) {
	pub, ops := newTestMiddlewareAPI().MiddlewaresStacks()
	assert.Equal(t, 7, len(*pub))
	assert.Equal(t, 6, len(*ops))
}

// TestChain ensures each middleware in the stack is called as well the handler.
func TestChain(t *testing.T) {
	var ca, cb, cc, ch bool
	queue := make(chan int, 4)

	middlewareA := func(next httprouter.Handle) httprouter.Handle {
		return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
			queue <- 1
			ca = true
			next(w, r, ps)
		}
	}
	middlewareB := func(next httprouter.Handle) httprouter.Handle {
		return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
			queue <- 2
			cb = true
			next(w, r, ps)
		}
	}
	middlewareC := func(next httprouter.Handle) httprouter.Handle {
		return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
			queue <- 3
			cc = true
			next(w, r, ps)
		}
	}
	middlewares := Middlewares{
		middlewareA,
		middlewareB,
		middlewareC,
	}

	handler := func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		queue <- 4
		ch = true
	}

	chained := (&middlewares).Chain(handler)
	req := httptest.NewRequest("GET", "/api/v1/book", nil)
	w := httptest.NewRecorder()
	chained(w, req, nil)

	t.Run("check calling", func(t *testing.T) {
		assert.Equal(t, true, ca)
		assert.Equal(t, true, cb)
		assert.Equal(t, true, cc)
		assert.Equal(t, true, ch)
	})

	t.Run("check ordering", func(t *testing.T) {
		assert.Equal(t, 1, <-queue)
		assert.Equal(t, 2, <-queue)
		assert.Equal(t, 3, <-queue)
		assert.Equal(t, 4, <-queue)
	})
}

// TestRequestsCounterMiddleware ensures the request counter increment.
func TestRequestsCounterMiddleware(t *testing.T) {
	api := newTestMiddlewareAPI()
	req := httptest.NewRequest("GET", "/api/v1/book", nil)
	w := httptest.NewRecorder()
	var num uint64
	handler := func(w http.ResponseWriter, req *http.Request, ps httprouter.Params) {
		num = GetRequestNumberFromContext(req.Context())
	}
	wrapped := api.RequestsCounterMiddleware(handler)
	wrapped(w, req, nil)
	wrapped(w, req, nil)
	assert.Equal(t, uint64(2), num)
	assert.Equal(t, uint64(2), api.stats.called)
}

// TestRequestIDMiddleware ensures the request id lands into the context and the header.
func TestRequestIDMiddleware(t *testing.T) {
	api := newTestMiddlewareAPI()
	req := httptest.NewRequest("GET", "/api/v1/book", nil)
	w := httptest.NewRecorder()
	var requestID string
	handler := func(w http.ResponseWriter, req *http.Request, ps httprouter.Params) {
		requestID = GetValueFromContext(req.Context(), RequestIDContextKey)
	}
	api.RequestIDMiddleware(handler)(w, req, nil)
	assert.Equal(t, "r:abc", requestID)
	assert.Equal(t, "r:abc", w.Header().Get("X-Request-ID"))
}

// TestStatsMiddleware ensures each response status is counted.
func TestStatsMiddleware(t *testing.T) {
	api := newTestMiddlewareAPI()
	handler := func(w http.ResponseWriter, req *http.Request, ps httprouter.Params) {
		w.WriteHeader(http.StatusTeapot)
	}
	wrapped := api.StatsMiddleware(handler)
	wrapped(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil), nil)
	wrapped(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil), nil)
	assert.Equal(t, uint64(2), api.stats.status[http.StatusTeapot])
}

// TestCORSMiddleware ensures cors headers are set.
func TestCORSMiddleware(t *testing.T) {
	w := httptest.NewRecorder()
	CORSMiddleware(func(w http.ResponseWriter, req *http.Request, ps httprouter.Params) {})(w, httptest.NewRequest("GET", "/", nil), nil)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "X-Request-ID", w.Header().Get("Access-Control-Expose-Headers"))
}

// TestPanicRecoveryMiddleware ensures a panicking handler turns into a 500 response.
func TestPanicRecoveryMiddleware(t *testing.T) {
	api := newTestMiddlewareAPI()
	handler := func(w http.ResponseWriter, req *http.Request, ps httprouter.Params) {
		panic("boom")
	}
	w := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		api.PanicRecoveryMiddleware(handler)(w, httptest.NewRequest("GET", "/api/v1/book", nil), nil)
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var apiErr APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

// TestMaintenanceModeMiddleware ensures public requests are rejected during maintenance.
func TestMaintenanceModeMiddleware(t *testing.T) {
	api := newTestMiddlewareAPI()
	var called bool
	handler := func(w http.ResponseWriter, req *http.Request, ps httprouter.Params) {
		called = true
	}
	wrapped := api.MaintenanceModeMiddleware(handler)

	w := httptest.NewRecorder()
	wrapped(w, httptest.NewRequest("GET", "/api/v1/book", nil), nil)
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, w.Code)

	called = false
	api.mode.message = "back in 5 mins"
	api.mode.enabled.Store(true)
	w = httptest.NewRecorder()
	wrapped(w, httptest.NewRequest("GET", "/api/v1/book", nil), nil)
	assert.False(t, called)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var apiErr APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	assert.Equal(t, "service currently unavailable", apiErr.Message)
	assert.Equal(t, "back in 5 mins", apiErr.Details)
}
