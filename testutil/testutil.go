// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/danielhkuo/receipt-processor/cliparse"
	"github.com/danielhkuo/receipt-processor/models"
	"github.com/danielhkuo/receipt-processor/store"
)

// TargetReceiptPoints is the score of TargetReceipt
const TargetReceiptPoints = 28

// CornerMarketReceiptPoints is the score of CornerMarketReceipt
const CornerMarketReceiptPoints = 109

// SetupTestStores returns an isolated instance of every store backend,
// keyed by backend name. SQLite stores are closed when the test ends.
func SetupTestStores(t *testing.T) map[string]store.Store {
	t.Helper()

	return map[string]store.Store{
		models.StoreMemory: store.NewMemoryStore(),
		models.StoreSQLite: SetupSQLiteStore(t),
	}
}

// SetupSQLiteStore opens a private in-memory SQLite store
func SetupSQLiteStore(t *testing.T) *store.SQLStore {
	t.Helper()

	st, err := store.OpenSQLite(UniqueSQLiteURL())
	if err != nil {
		t.Fatalf("Failed to open sqlite store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

// UniqueSQLiteURL names a shared-cache in-memory database no other test uses
func UniqueSQLiteURL() string {
	return "file:" + uuid.NewString() + "?mode=memory&cache=shared"
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           8080,
		StoreType:      models.StoreMemory,
		LogLevel:       "info",
		LogFormat:      "text",
		MetricsEnabled: true,
	}
}

// TargetReceipt returns a request body worth 28 points
func TargetReceipt() map[string]any {
	return map[string]any{
		"retailer":     "Target",
		"purchaseDate": "2022-01-01",
		"purchaseTime": "13:01",
		"total":        "35.35",
		"items": []any{
			map[string]any{"shortDescription": "Mountain Dew 12PK", "price": "6.49"},
			map[string]any{"shortDescription": "Emils Cheese Pizza", "price": "12.25"},
			map[string]any{"shortDescription": "Knorr Creamy Chicken", "price": "1.26"},
			map[string]any{"shortDescription": "Doritos Nacho Cheese", "price": "3.35"},
			map[string]any{"shortDescription": "   Klarbrunn 12-PK 12 FL OZ  ", "price": "12.00"},
		},
	}
}

// CornerMarketReceipt returns a request body worth 109 points
func CornerMarketReceipt() map[string]any {
	item := func() map[string]any {
		return map[string]any{"shortDescription": "Gatorade", "price": "2.25"}
	}
	return map[string]any{
		"retailer":     "M&M Corner Market",
		"purchaseDate": "2022-03-20",
		"purchaseTime": "14:33",
		"total":        "9.00",
		"items":        []any{item(), item(), item(), item()},
	}
}

// StoreTestReceipt puts a receipt straight into the store and returns its id
func StoreTestReceipt(t *testing.T, st store.Store, receipt models.Receipt, points int) string {
	t.Helper()

	id, err := st.Put(context.Background(), receipt, points)
	if err != nil {
		t.Fatalf("Failed to store test receipt: %v", err)
	}
	return id
}

// CountReceipts returns how many receipts the store holds
func CountReceipts(t *testing.T, st store.Store) int {
	t.Helper()

	n, err := st.Count(context.Background())
	if err != nil {
		t.Fatalf("Failed to count receipts: %v", err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body any, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
