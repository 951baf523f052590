package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

// StatusClientClosedRequest is the non standard code (from Nginx) used
// in the stats when the client went away before the response.
const StatusClientClosedRequest = 499

// CustomResponseWriter is a wrapper for http.ResponseWriter. It is
// used to record response details like status code and body size.
type CustomResponseWriter struct {
	http.ResponseWriter
	code  int
	bytes int
	wrote bool
}

// NewCustomResponseWriter provides CustomResponseWriter with 200 as status code.
func NewCustomResponseWriter(rw http.ResponseWriter) *CustomResponseWriter {
	return &CustomResponseWriter{
		ResponseWriter: rw,
		code:           http.StatusOK,
	}
}

// WriteHeader implements http.ResponseWriter interface.
func (cw *CustomResponseWriter) WriteHeader(code int) {
	if !cw.wrote {
		cw.code = code
		cw.wrote = true
		cw.ResponseWriter.WriteHeader(code)
	}
}

// Write implements http.ResponseWriter interface.
func (cw *CustomResponseWriter) Write(b []byte) (int, error) {
	if !cw.wrote {
		cw.WriteHeader(cw.code)
	}
	n, err := cw.ResponseWriter.Write(b)
	cw.bytes += n
	return n, err
}

// Status returns the written status code.
func (cw *CustomResponseWriter) Status() int {
	return cw.code
}

// Bytes returns bytes written as response body.
func (cw *CustomResponseWriter) Bytes() int {
	return cw.bytes
}

// Unwrap returns native response writer and used by
// the http.ResponseController during its operation.
func (cw *CustomResponseWriter) Unwrap() http.ResponseWriter {
	return cw.ResponseWriter
}

// APIError is the data model sent when an error occurred during request processing.
type APIError struct {
	Message    string `json:"message" example:"book with id 99 not found"`
	Details    string `json:"details" example:"book with id 99 not found"`
	Timestamp  string `json:"timestamp" example:"2023-10-01T12:00:00Z"`
	StatusCode int    `json:"statusCode" example:"404"`
}

// NewAPIError builds an error response. The details default to the message.
func NewAPIError(at time.Time, status int, message, details string) *APIError {
	if details == "" {
		details = message
	}
	return &APIError{
		Message:    message,
		Details:    details,
		Timestamp:  at.Format(time.RFC3339),
		StatusCode: status,
	}
}

// checkContext sets the status code to 499 in case the client cancelled the request,
// and to 504 if the request processing timed out. In both cases the response is not sent.
func checkContext(ctx context.Context, w http.ResponseWriter) error {
	err := ctx.Err()
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		w.WriteHeader(http.StatusGatewayTimeout)
	} else {
		w.WriteHeader(StatusClientClosedRequest)
	}
	return err
}

// WriteErrorResponse is used to send error response to client.
func WriteErrorResponse(ctx context.Context, w http.ResponseWriter, errResp *APIError) error {
	if err := checkContext(ctx, w); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(errResp.StatusCode)
	return json.NewEncoder(w).Encode(errResp)
}

// WriteResponse is used to send a json success response to client.
func WriteResponse(ctx context.Context, w http.ResponseWriter, status int, data interface{}) error {
	if err := checkContext(ctx, w); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// WriteNoContent is used to acknowledge a request with an empty body.
func WriteNoContent(ctx context.Context, w http.ResponseWriter) error {
	if err := checkContext(ctx, w); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}
