// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"testing"

	"github.com/danielhkuo/receipt-processor/models"
	"github.com/danielhkuo/receipt-processor/testutil"
)

// TestFullReceiptWorkflow tests the complete end-to-end workflow:
// 1. Submit two different receipts
// 2. Submit the first receipt again
// 3. Reject an invalid receipt
// 4. Look up every id and verify its points
func TestFullReceiptWorkflow(t *testing.T) {
	for name, st := range testutil.SetupTestStores(t) {
		t.Run(name, func(t *testing.T) {
			h := NewReceiptHandler(st)

			// Step 1: Submit two receipts
			submit := func(body map[string]any) string {
				w := processReceipt(t, h, body)
				if w.Code != http.StatusOK {
					t.Fatalf("Submit failed: %d - %s", w.Code, w.Body.String())
				}
				var resp models.ProcessReceiptResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.ID == "" {
					t.Fatal("Missing id in response")
				}
				return resp.ID
			}

			targetID := submit(testutil.TargetReceipt())
			marketID := submit(testutil.CornerMarketReceipt())
			t.Logf("Step 1 - Stored receipts %s and %s", targetID, marketID)

			// Step 2: The same receipt again gets its own id
			targetAgainID := submit(testutil.TargetReceipt())
			if targetAgainID == targetID {
				t.Fatal("Step 2 - Resubmitted receipt reused an id")
			}

			// Step 3: Invalid receipt is rejected without storing anything
			invalid := testutil.TargetReceipt()
			delete(invalid, "retailer")
			w := processReceipt(t, h, invalid)
			testutil.AssertStatus(t, w, http.StatusBadRequest)

			if n := testutil.CountReceipts(t, st); n != 3 {
				t.Fatalf("Step 3 - Expected 3 stored receipts, got %d", n)
			}

			// Step 4: Every id resolves to its receipt's points, repeatedly
			expected := map[string]int{
				targetID:      testutil.TargetReceiptPoints,
				targetAgainID: testutil.TargetReceiptPoints,
				marketID:      testutil.CornerMarketReceiptPoints,
			}
			for id, want := range expected {
				for i := 0; i < 2; i++ {
					w := getPoints(t, h, id)
					testutil.AssertStatus(t, w, http.StatusOK)

					var resp models.PointsResponse
					testutil.AssertJSON(t, w, &resp)
					if resp.Points != want {
						t.Errorf("Step 4 - Receipt %s: expected %d points, got %d", id, want, resp.Points)
					}
				}
			}
		})
	}
}
