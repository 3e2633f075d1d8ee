// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the receipt processor.

# Handler Types

ReceiptHandler depends only on a store.Store:

	receiptHandler := handlers.NewReceiptHandler(st)

# Processing

	POST /receipts/process → ProcessReceipt

The body is decoded into an untyped map so that missing fields and wrong
JSON types are reported by the validator rather than the decoder. A valid
receipt is scored, stored under a new UUID and answered with {"id": ...}.
Anything else is 400 with message "The receipt is invalid" and the
reason in the data field; nothing is stored. A receipt whose score does
not fit in an int is rejected the same way.

# Lookup

	GET /receipts/{id}/points → GetPoints

Answers {"points": N}, or 404 with "No receipt found for that id".
Points are never recomputed: a receipt keeps the score it was stored with.
*/
package handlers
