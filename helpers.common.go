package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
)

// ErrBookNotFound is returned when no book matches a given id.
var ErrBookNotFound = errors.New("book not found")

// ValidationError reports a request which could not be bound: a bad
// path id or a body which is not a book json object.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

type ContextKey string

const (
	RequestIDPrefix         string     = "r"
	RequestIDContextKey     ContextKey = "request.id"
	RequestNumberContextKey ContextKey = "request.number"
	MaxBookBodySize         int64      = 1 << 20
)

// GetValueFromContext returns the value of a given key in the context
// if this key is not available, it returns an empty string.
func GetValueFromContext(ctx context.Context, contextKey ContextKey) string {
	if val, ok := ctx.Value(contextKey).(string); ok {
		return val
	}
	return ""
}

// GetRequestNumberFromContext returns the request number set in
// the context. if not previously set then it returns 0.
func GetRequestNumberFromContext(ctx context.Context) uint64 {
	if val, ok := ctx.Value(RequestNumberContextKey).(uint64); ok {
		return val
	}
	return 0
}

// DecodeBookRequestBody reads the content of a book creation or update request.
// Unknown fields are ignored, wrong json types and trailing data are reported
// as a ValidationError. A body over MaxBookBodySize wraps *http.MaxBytesError.
func DecodeBookRequestBody(w http.ResponseWriter, r *http.Request, rep *BookRepresentation) error {
	if r.Body == nil || r.Body == http.NoBody {
		return &ValidationError{Field: "body", Err: errors.New("empty request body")}
	}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBookBodySize))
	if err := dec.Decode(rep); err != nil {
		return &ValidationError{Field: "body", Err: err}
	}
	if dec.More() {
		return &ValidationError{Field: "body", Err: errors.New("unexpected data after the book object")}
	}
	return nil
}

// ParseBookID converts the `id` path parameter into a book id.
func ParseBookID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &ValidationError{Field: "id", Err: fmt.Errorf("%q is not a valid book id", raw)}
	}
	return id, nil
}

// GetRequestSourceIP helps find the source IP of the caller.
func GetRequestSourceIP(r *http.Request) string {
	ip := r.Header.Get("X-REAL-IP")
	if net.ParseIP(ip) != nil {
		return ip
	}

	for _, ip := range strings.Split(r.Header.Get("X-FORWARDED-FOR"), ",") {
		ip = strings.TrimSpace(ip)
		if net.ParseIP(ip) != nil {
			return ip
		}
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return ""
	}
	if net.ParseIP(ip) != nil {
		return ip
	}
	return ""
}

// IsAppRunningInDocker checks the existence of the .dockerenv
// file at the root directory and returns a boolean result.
func IsAppRunningInDocker() bool {
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true
	}
	return false
}
