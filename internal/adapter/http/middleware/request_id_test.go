package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestID_GeneratesIdentifier(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	RequestID(next).ServeHTTP(rr, req)

	if seen == "" {
		t.Fatal("expected a generated request id in the context")
	}
	if got := rr.Header().Get(RequestIDHeader); got != seen {
		t.Fatalf("expected response header %q, got %q", seen, got)
	}
}

func TestRequestID_KeepsCallerIdentifier(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "caller-id-123")
	rr := httptest.NewRecorder()
	RequestID(next).ServeHTTP(rr, req)

	if seen != "caller-id-123" {
		t.Fatalf("expected caller id kept, got %q", seen)
	}
	if got := rr.Header().Get(RequestIDHeader); got != "caller-id-123" {
		t.Fatalf("expected response header caller-id-123, got %q", got)
	}
}

func TestRequestIDFromContext_MissingValue(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	if got := RequestIDFromContext(req.Context()); got != "" {
		t.Fatalf("expected empty id without middleware, got %q", got)
	}
}
