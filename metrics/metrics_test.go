// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"
)

func TestInstrument_RecordsStatus(t *testing.T) {
	route := "/test/instrument"
	handler := Instrument(route, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	before := promtest.ToFloat64(httpRequests.WithLabelValues("GET", route, "404"))

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest("GET", "/test/instrument/abc", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected wrapped status 404, got %d", w.Code)
	}

	after := promtest.ToFloat64(httpRequests.WithLabelValues("GET", route, "404"))
	if after-before != 1 {
		t.Errorf("Expected request counter to increase by 1, got %v", after-before)
	}
}

func TestInstrument_DefaultsTo200(t *testing.T) {
	route := "/test/implicit-ok"
	handler := Instrument(route, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	before := promtest.ToFloat64(httpRequests.WithLabelValues("POST", route, "200"))

	handler(httptest.NewRecorder(), httptest.NewRequest("POST", "/x", nil))

	if got := promtest.ToFloat64(httpRequests.WithLabelValues("POST", route, "200")); got-before != 1 {
		t.Errorf("Expected one more 200 request, got %v", got-before)
	}
}

func TestRecordProcessed(t *testing.T) {
	accepted := promtest.ToFloat64(receiptsProcessed.WithLabelValues(ResultAccepted))
	invalid := promtest.ToFloat64(receiptsProcessed.WithLabelValues(ResultInvalid))

	RecordProcessed(ResultAccepted, 28)
	RecordProcessed(ResultInvalid, 0)

	if got := promtest.ToFloat64(receiptsProcessed.WithLabelValues(ResultAccepted)); got-accepted != 1 {
		t.Errorf("Expected accepted to increase by 1, got %v", got-accepted)
	}
	if got := promtest.ToFloat64(receiptsProcessed.WithLabelValues(ResultInvalid)); got-invalid != 1 {
		t.Errorf("Expected invalid to increase by 1, got %v", got-invalid)
	}
}

func TestRecordLookup(t *testing.T) {
	found := promtest.ToFloat64(lookups.WithLabelValues("found"))
	missing := promtest.ToFloat64(lookups.WithLabelValues("not_found"))

	RecordLookup(true)
	RecordLookup(false)
	RecordLookup(false)

	if got := promtest.ToFloat64(lookups.WithLabelValues("found")); got-found != 1 {
		t.Errorf("Expected found to increase by 1, got %v", got-found)
	}
	if got := promtest.ToFloat64(lookups.WithLabelValues("not_found")); got-missing != 2 {
		t.Errorf("Expected not_found to increase by 2, got %v", got-missing)
	}
}

func TestHandler_Exposition(t *testing.T) {
	RecordProcessed(ResultAccepted, 10)

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "receipts_processed_total") {
		t.Error("Expected receipts_processed_total in exposition")
	}
}
