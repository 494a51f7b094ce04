package cli

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/strandlab/braidviz/pkg/pipeline"
)

func TestHandleBraid(t *testing.T) {
	runner := pipeline.NewRunner(nil, nil)
	handler := handleBraid(runner, Config{})

	req := httptest.NewRequest("GET", "/braid?n=3&word=1,-2,1", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q, want image/svg+xml", ct)
	}
	if !strings.Contains(rec.Body.String(), "<svg") {
		t.Error("body does not look like SVG")
	}
}

func TestHandleBraidJSON(t *testing.T) {
	runner := pipeline.NewRunner(nil, nil)
	handler := handleBraid(runner, Config{})

	req := httptest.NewRequest("GET", "/braid?n=2&word=1&format=json", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"crossings"`) {
		t.Error("json body missing crossings field")
	}
}

func TestHandleBraidInvalidWord(t *testing.T) {
	runner := pipeline.NewRunner(nil, nil)
	handler := handleBraid(runner, Config{})

	req := httptest.NewRequest("GET", "/braid?n=3&word=9", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != 400 {
		t.Fatalf("status = %d, want 400; body: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "INVALID_GENERATOR") {
		t.Errorf("body missing error code: %s", rec.Body.String())
	}
}

func TestHandleBraidUnknownFormat(t *testing.T) {
	runner := pipeline.NewRunner(nil, nil)
	handler := handleBraid(runner, Config{})

	req := httptest.NewRequest("GET", "/braid?n=2&word=1&format=gif", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != 400 {
		t.Fatalf("status = %d, want 400; body: %s", rec.Code, rec.Body.String())
	}
}

func TestHandleHealth(t *testing.T) {
	req := httptest.NewRequest("GET", "/healthz", nil)
	rec := httptest.NewRecorder()
	handleHealth(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestRequestIDHeader(t *testing.T) {
	runner := pipeline.NewRunner(nil, nil)
	handler := requestID(handleBraid(runner, Config{}))

	req := httptest.NewRequest("GET", "/braid?n=2&word=1", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}
}
