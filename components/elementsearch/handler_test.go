package elementsearch

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) resultsResponse {
	t.Helper()
	var payload resultsResponse
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return payload
}

func TestHandler_ReturnsResults(t *testing.T) {
	h := Handler(WithEntries(sampleEntries()))

	req := httptest.NewRequest(http.MethodGet, "/api/elements?q=terms&screen=checkboxes", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("unexpected content type %q", ct)
	}
	payload := decode(t, rec)
	if len(payload.Data) != 1 || payload.Data[0].Value != "accept-terms" {
		t.Fatalf("unexpected payload: %#v", payload)
	}
}

func TestHandler_CustomParams(t *testing.T) {
	h := Handler(
		WithEntries(sampleEntries()),
		WithSearchParam("search"),
		WithLimitParam("l"),
		WithScreenParam("s"),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/elements?search=t&l=1&s=toggles", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	payload := decode(t, rec)
	if len(payload.Data) != 1 || payload.Data[0].Screen != "toggles" {
		t.Fatalf("unexpected payload: %#v", payload)
	}
}

func TestHandler_EmptyDataIsArray(t *testing.T) {
	h := Handler()

	req := httptest.NewRequest(http.MethodGet, "/api/elements?q=anything", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	payload := decode(t, rec)
	if payload.Data == nil || len(payload.Data) != 0 {
		t.Fatalf("expected empty data array, got %#v", payload.Data)
	}
}

func TestHandler_GuardRejects(t *testing.T) {
	h := Handler(
		WithEntries(sampleEntries()),
		WithGuard(func(*http.Request) error {
			return StatusError{Code: http.StatusUnauthorized}
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/elements?q=terms", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	h := Handler(WithEntries(sampleEntries()))

	req := httptest.NewRequest(http.MethodPost, "/api/elements?q=terms", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow != "GET, HEAD" {
		t.Fatalf("unexpected Allow header %q", allow)
	}
}

func TestHandler_HeadHasNoBody(t *testing.T) {
	h := Handler(WithEntries(sampleEntries()))

	req := httptest.NewRequest(http.MethodHead, "/api/elements?q=terms", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || rec.Body.Len() != 0 {
		t.Fatalf("expected empty 200, got %d with %d bytes", rec.Code, rec.Body.Len())
	}
}
