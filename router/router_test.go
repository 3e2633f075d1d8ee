// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/receipt-processor/models"
	"github.com/danielhkuo/receipt-processor/store"
	"github.com/danielhkuo/receipt-processor/testutil"
)

func newTestRouter(t *testing.T) *http.ServeMux {
	t.Helper()
	return NewRouter(store.NewMemoryStore(), testutil.GetTestConfig())
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	mux := newTestRouter(t)

	tests := []struct {
		method string
		path   string
		body   any
		status int
	}{
		{"POST", "/receipts/process", testutil.TargetReceipt(), http.StatusOK},
		{"POST", "/receipts/process", map[string]any{}, http.StatusBadRequest},
		{"GET", "/receipts/unknown-id/points", nil, http.StatusNotFound},
		{"GET", "/health", nil, http.StatusOK},
		{"GET", "/metrics", nil, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := testutil.MakeRequest(tt.method, tt.path, tt.body, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tt.status {
				t.Errorf("Expected status %d, got %d: %s", tt.status, w.Code, w.Body.String())
			}
		})
	}
}

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	return NewHandler(store.NewMemoryStore(), testutil.GetTestConfig())
}

func TestCatchAllNotFound(t *testing.T) {
	// Same chain the server runs, so CORS and path checks are covered
	handler := newTestHandler(t)

	tests := []struct {
		method string
		path   string
	}{
		{"GET", "/"},
		{"GET", "/receipts"},
		{"GET", "/receipts/process"},
		{"PUT", "/receipts/process"},
		{"POST", "/receipts/abc/points"},
		{"DELETE", "/receipts/abc/points"},
		{"GET", "/receipts/abc/points/extra"},
		{"POST", "/health"},
		{"GET", "/unknown"},
		{"OPTIONS", "/receipts/process"},
		{"OPTIONS", "/nope"},
		{"HEAD", "/health"},
		{"HEAD", "/metrics"},
		{"HEAD", "/receipts/abc/points"},
		{"GET", "/receipts//points"},
		{"GET", "/health/"},
		{"GET", "/receipts/./process"},
		{"POST", "/receipts//process"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			testutil.AssertStatus(t, w, http.StatusNotFound)

			// HEAD responses carry no body
			if tt.method == "HEAD" {
				return
			}

			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Message != models.MessageNotFound {
				t.Errorf("Expected message %q, got %q", models.MessageNotFound, resp.Message)
			}
		})
	}
}

func TestHeadOnStoredReceipt(t *testing.T) {
	st := store.NewMemoryStore()
	handler := NewHandler(st, testutil.GetTestConfig())

	id := testutil.StoreTestReceipt(t, st, models.Receipt{Retailer: "Target"}, 28)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("HEAD", "/receipts/"+id+"/points", nil))

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestPreflight(t *testing.T) {
	handler := newTestHandler(t)

	tests := []struct {
		name   string
		path   string
		method string
		status int
	}{
		{"process route", "/receipts/process", "POST", http.StatusNoContent},
		{"points route", "/receipts/abc/points", "GET", http.StatusNoContent},
		{"wrong method for route", "/receipts/process", "DELETE", http.StatusNotFound},
		{"head on get route", "/health", "HEAD", http.StatusNotFound},
		{"unknown path", "/nope", "GET", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("OPTIONS", tt.path, nil)
			req.Header.Set("Origin", "http://localhost:5173")
			req.Header.Set("Access-Control-Request-Method", tt.method)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			testutil.AssertStatus(t, w, tt.status)
			if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:5173" {
				t.Error("Expected Access-Control-Allow-Origin to match request origin")
			}
		})
	}
}

func TestMetricsDisabled(t *testing.T) {
	cfg := testutil.GetTestConfig()
	cfg.MetricsEnabled = false
	mux := NewRouter(store.NewMemoryStore(), cfg)

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestMetricsExposeReceiptCounters(t *testing.T) {
	mux := newTestRouter(t)

	req := testutil.MakeRequest("POST", "/receipts/process", testutil.TargetReceipt(), nil)
	mux.ServeHTTP(httptest.NewRecorder(), req)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), "receipts_processed_total") {
		t.Error("Expected receipts_processed_total in metrics output")
	}
}

func TestEndToEnd(t *testing.T) {
	mux := newTestHandler(t)

	tests := []struct {
		name   string
		body   map[string]any
		points int
	}{
		{"target", testutil.TargetReceipt(), testutil.TargetReceiptPoints},
		{"corner market", testutil.CornerMarketReceipt(), testutil.CornerMarketReceiptPoints},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, testutil.MakeRequest("POST", "/receipts/process", tt.body, nil))
			testutil.AssertStatus(t, w, http.StatusOK)

			var created models.ProcessReceiptResponse
			testutil.AssertJSON(t, w, &created)

			w = httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest("GET", "/receipts/"+created.ID+"/points", nil))
			testutil.AssertStatus(t, w, http.StatusOK)

			var resp models.PointsResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Points != tt.points {
				t.Errorf("Expected %d points, got %d", tt.points, resp.Points)
			}
		})
	}
}
